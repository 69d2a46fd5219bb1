package backend

// Sequential is the no-parallelism backend: jobs run on the calling
// goroutine, without splitting, in range order. It is the configuration to
// select when no parallel runtime is wanted; work is never skipped.
type Sequential struct{}

func (Sequential) ForEach(j Job) {
	j.Run()
}

func (Sequential) Reduce(j FoldJob, join func(x, y any) any, init any) any {
	return j.Fold(init)
}
