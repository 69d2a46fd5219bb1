package backend

import (
	"log/slog"

	"golang.org/x/sync/errgroup"

	"github.com/hpcgo/rangepar/internal"
)

// defaultGroupMinSize keeps small ranges off the pool; scheduling overhead
// dominates below this size.
const defaultGroupMinSize = 128

// Group executes jobs on a bounded pool of goroutines. The job is split down
// to its leaves first; every leaf is then submitted to an errgroup with a
// concurrency limit, and partial results are joined in range order once all
// leaves have completed. Because partials combine in range order, a join
// that is associative but not commutative still matches the sequential
// result under this backend.
//
// If one or more leaves panic, the call eventually panics with the left-most
// recovered panic value.
type Group struct {
	limit   int
	minSize int
	logger  *slog.Logger
}

// NewGroup returns a pool backend. WithLimit caps concurrently running
// leaves (default GOMAXPROCS), WithMinSize sets the sub-range size at or
// below which splitting stops (default 128), and WithLogger enables
// debug-level delegation tracing.
func NewGroup(opts ...Option) *Group {
	cfg := newConfig(opts)
	if cfg.minSize < 1 {
		cfg.minSize = defaultGroupMinSize
	}
	return &Group{limit: cfg.limit, minSize: cfg.minSize, logger: cfg.logger}
}

func (b *Group) ForEach(j Job) {
	leaves := b.forLeaves(j, nil)
	if len(leaves) == 1 {
		leaves[0].Run()
		return
	}
	if b.logger != nil {
		b.logger.Debug("delegating job", "size", j.Size(), "leaves", len(leaves), "limit", b.limit)
	}
	panics := make([]any, len(leaves))
	var g errgroup.Group
	g.SetLimit(b.limit)
	for i, leaf := range leaves {
		g.Go(func() error {
			defer func() {
				panics[i] = internal.WrapPanic(recover())
			}()
			leaf.Run()
			return nil
		})
	}
	// Leaves report failures through the panic slots, never through errors.
	_ = g.Wait()
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
}

func (b *Group) Reduce(j FoldJob, join func(x, y any) any, init any) any {
	leaves := b.foldLeaves(j, nil)
	if len(leaves) == 1 {
		return leaves[0].Fold(init)
	}
	if b.logger != nil {
		b.logger.Debug("delegating job", "size", j.Size(), "leaves", len(leaves), "limit", b.limit)
	}
	partials := make([]any, len(leaves))
	panics := make([]any, len(leaves))
	var g errgroup.Group
	g.SetLimit(b.limit)
	for i, leaf := range leaves {
		g.Go(func() error {
			defer func() {
				panics[i] = internal.WrapPanic(recover())
			}()
			partials[i] = leaf.Fold(init)
			return nil
		})
	}
	_ = g.Wait()
	for _, p := range panics {
		if p != nil {
			panic(p)
		}
	}
	acc := partials[0]
	for _, partial := range partials[1:] {
		acc = join(acc, partial)
	}
	return acc
}

// forLeaves splits j down to indivisible or minSize-bounded sub-jobs, in
// range order.
func (b *Group) forLeaves(j Job, acc []Job) []Job {
	if !j.Divisible() || j.Size() <= b.minSize {
		return append(acc, j)
	}
	left, right := j.Split()
	return b.forLeaves(right, b.forLeaves(left, acc))
}

func (b *Group) foldLeaves(j FoldJob, acc []FoldJob) []FoldJob {
	if !j.Divisible() || j.Size() <= b.minSize {
		return append(acc, j)
	}
	left, right := j.Split()
	return b.foldLeaves(right, b.foldLeaves(left, acc))
}
