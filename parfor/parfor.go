// Package parfor applies operators to divisible ranges, either sequentially
// on the calling goroutine or through a parallel execution backend.
//
// Both entry points make the same two-way decision: if the range reports
// itself divisible and a backend is configured, the whole range is handed to
// the backend; otherwise it is traversed with a plain cursor loop. The
// backend splits the range into sub-ranges and processes each one with the
// same sequential loop the non-divisible path uses, so element shape
// handling is identical on both paths.
//
// There are no retries, no cancellation, and no partial-failure recovery: a
// panic in the operator aborts the whole call and propagates to the caller,
// and any partial reduction accumulated so far is discarded.
package parfor

import (
	"sync/atomic"

	"github.com/hpcgo/rangepar/backend"
	"github.com/hpcgo/rangepar/element"
	"github.com/hpcgo/rangepar/ranges"
)

type holder struct {
	b backend.Backend
}

var std atomic.Pointer[holder]

func init() {
	Use(backend.NewForkJoin())
}

// Use installs b as the backend used by ForEach and Reduce. Selection is
// meant to happen once, during program configuration, before any driver
// call; a nil b selects sequential-only execution.
func Use(b backend.Backend) {
	std.Store(&holder{b: b})
}

// Default returns the installed backend.
func Default() backend.Backend {
	return std.Load().b
}

// ForEach applies op to every element of r, using the installed backend for
// divisible ranges.
func ForEach[C ranges.Cursor[C, E], E any](r ranges.Range[C, E], op element.Visitor[E]) {
	ForEachOn(Default(), r, op)
}

// ForEachOn applies op to every element of r, delegating to b when r reports
// itself divisible. A nil backend traverses the range sequentially; work is
// never skipped.
//
// r and op are borrowed for the duration of the call and never copied per
// element. The sequential path preserves traversal order; the delegated path
// guarantees order only within a sub-range. If b parallelizes, op may be
// invoked concurrently from multiple goroutines on disjoint sub-ranges — a
// stateful op must be safe for that, which is the caller's responsibility.
func ForEachOn[C ranges.Cursor[C, E], E any](b backend.Backend, r ranges.Range[C, E], op element.Visitor[E]) {
	if b == nil || !r.IsDivisible() {
		forEachSeq(r, op)
		return
	}
	b.ForEach(forEachJob[C, E]{r: r, op: op})
}

// Reduce folds op's results over r with join, starting from init, using the
// installed backend for divisible ranges.
func Reduce[C ranges.Cursor[C, E], E, R any](r ranges.Range[C, E], op element.Mapper[E, R], join func(x, y R) R, init R) R {
	return ReduceOn(Default(), r, op, join, init)
}

// ReduceOn folds op's results over r with join, starting from init,
// delegating to b when r reports itself divisible. A nil backend folds the
// range sequentially.
//
// join must be associative, and init must be consistent with join's
// identity: on the delegated path, every sub-range fold is seeded with init
// and partial results combine in a backend-determined order. A join that is
// associative but not commutative is only guaranteed to match the sequential
// fold on backends that combine in range order; that obligation rests with
// the caller and is not enforced here.
func ReduceOn[C ranges.Cursor[C, E], E, R any](b backend.Backend, r ranges.Range[C, E], op element.Mapper[E, R], join func(x, y R) R, init R) R {
	if b == nil || !r.IsDivisible() {
		return reduceSeq(r, op, join, init)
	}
	result := b.Reduce(
		foldJob[C, E, R]{r: r, op: op, join: join},
		func(x, y any) any { return join(x.(R), y.(R)) },
		init,
	)
	return result.(R)
}

func forEachSeq[C ranges.Cursor[C, E], E any](r ranges.Range[C, E], op element.Visitor[E]) {
	for i, end := r.Begin(), r.End(); !i.Equal(end); i = i.Next() {
		op(i.Deref())
	}
}

func reduceSeq[C ranges.Cursor[C, E], E, R any](r ranges.Range[C, E], op element.Mapper[E, R], join func(x, y R) R, init R) R {
	acc := init
	for i, end := r.Begin(), r.End(); !i.Equal(end); i = i.Next() {
		acc = join(acc, op(i.Deref()))
	}
	return acc
}
