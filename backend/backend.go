// Package backend provides the parallel execution capability consumed by the
// range driver.
//
// Backends operate on jobs rather than on ranges directly: a job carries one
// sub-range together with its own sequential processing, erased behind a
// non-generic interface so that a single backend value can serve ranges of
// any element type. A backend never touches individual elements — however
// far it splits a job, every leaf bottoms out in the job's sequential path,
// so element shape handling is identical under every backend.
//
// A backend is selected once, at configuration time, and injected into the
// driver; it is not chosen per call.
package backend

// A Job is a splittable unit of fire-and-forget work.
type Job interface {
	// Size reports the number of elements the job covers.
	Size() int
	// Divisible reports whether the job can be split.
	Divisible() bool
	// Split divides the job into two independent halves. It is called only
	// when Divisible reports true.
	Split() (Job, Job)
	// Run processes the job's whole sub-range sequentially.
	Run()
}

// A FoldJob is a splittable unit of reducing work.
type FoldJob interface {
	Size() int
	Divisible() bool
	Split() (FoldJob, FoldJob)
	// Fold sequentially folds the job's sub-range starting from the partial
	// value acc, and returns the resulting partial value.
	Fold(acc any) any
}

// A Backend schedules splittable jobs.
//
// Both methods block until all sub-jobs have completed; the backend may use
// worker goroutines internally, but the caller observes a single synchronous
// call. No ordering is guaranteed across sub-jobs; within one leaf, the
// job's own sequential order applies. If job processing panics, the backend
// rethrows the recovered panic value to the caller once outstanding work has
// been accounted for; partial results are discarded.
type Backend interface {
	// ForEach runs j, splitting it as long as it reports itself divisible.
	ForEach(j Job)

	// Reduce splits j into sub-jobs, folds each leaf starting from init,
	// and combines the partial results pairwise with join.
	//
	// join must be associative, and init must be consistent with join's
	// identity: every leaf fold is seeded with init, so an init that is not
	// an identity for join contributes once per leaf. The combination order
	// of partials is backend-determined; a join that is associative but not
	// commutative is only guaranteed to match the sequential result on
	// backends that combine in range order.
	Reduce(j FoldJob, join func(x, y any) any, init any) any
}
