package parfor

import (
	"github.com/hpcgo/rangepar/backend"
	"github.com/hpcgo/rangepar/element"
	"github.com/hpcgo/rangepar/ranges"
)

// forEachJob adapts one (range, operator) pair to the backend job contract.
// Splitting delegates to the range; leaf processing is the same sequential
// loop the non-divisible path uses.
type forEachJob[C ranges.Cursor[C, E], E any] struct {
	r  ranges.Range[C, E]
	op element.Visitor[E]
}

func (j forEachJob[C, E]) Size() int { return j.r.Size() }

func (j forEachJob[C, E]) Divisible() bool { return j.r.IsDivisible() }

func (j forEachJob[C, E]) Split() (backend.Job, backend.Job) {
	left, right := j.r.Split()
	return forEachJob[C, E]{r: left, op: j.op}, forEachJob[C, E]{r: right, op: j.op}
}

func (j forEachJob[C, E]) Run() { forEachSeq(j.r, j.op) }

// foldJob adapts one (range, operator, join) triple to the backend job
// contract. The typed accumulator crosses the backend seam as an any value
// and is unwrapped per sub-range, never per element.
type foldJob[C ranges.Cursor[C, E], E, R any] struct {
	r    ranges.Range[C, E]
	op   element.Mapper[E, R]
	join func(x, y R) R
}

func (j foldJob[C, E, R]) Size() int { return j.r.Size() }

func (j foldJob[C, E, R]) Divisible() bool { return j.r.IsDivisible() }

func (j foldJob[C, E, R]) Split() (backend.FoldJob, backend.FoldJob) {
	left, right := j.r.Split()
	return foldJob[C, E, R]{r: left, op: j.op, join: j.join},
		foldJob[C, E, R]{r: right, op: j.op, join: j.join}
}

func (j foldJob[C, E, R]) Fold(acc any) any {
	return reduceSeq(j.r, j.op, j.join, acc.(R))
}
