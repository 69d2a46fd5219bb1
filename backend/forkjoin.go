package backend

import (
	"sync"

	"github.com/hpcgo/rangepar/internal"
)

// ForkJoin executes jobs by recursive binary splitting, processing the right
// half of every split in its own goroutine while the calling goroutine
// descends into the left half. The Go scheduler distributes the resulting
// goroutine tree across CPUs.
//
// If one or more leaves panic, the corresponding goroutines recover the
// panics, and the call eventually panics with the left-most recovered panic
// value.
type ForkJoin struct {
	minSize int
}

// NewForkJoin returns a fork-join backend. WithMinSize sets the sub-range
// size at or below which splitting stops; the default is 1.
func NewForkJoin(opts ...Option) *ForkJoin {
	cfg := newConfig(opts)
	if cfg.minSize < 1 {
		cfg.minSize = 1
	}
	return &ForkJoin{minSize: cfg.minSize}
}

func (b *ForkJoin) ForEach(j Job) {
	if !j.Divisible() || j.Size() <= b.minSize {
		j.Run()
		return
	}
	left, right := j.Split()
	var p any
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer func() {
			p = internal.WrapPanic(recover())
			wg.Done()
		}()
		b.ForEach(right)
	}()
	b.ForEach(left)
	wg.Wait()
	if p != nil {
		panic(p)
	}
}

func (b *ForkJoin) Reduce(j FoldJob, join func(x, y any) any, init any) any {
	if !j.Divisible() || j.Size() <= b.minSize {
		return j.Fold(init)
	}
	left, right := j.Split()
	var lv, rv any
	var p any
	var wg sync.WaitGroup
	wg.Add(1)
	go func() {
		defer func() {
			p = internal.WrapPanic(recover())
			wg.Done()
		}()
		rv = b.Reduce(right, join, init)
	}()
	lv = b.Reduce(left, join, init)
	wg.Wait()
	if p != nil {
		panic(p)
	}
	return join(lv, rv)
}
