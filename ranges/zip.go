package ranges

import (
	"fmt"

	"github.com/hpcgo/rangepar/internal"
	"github.com/hpcgo/rangepar/tuple"
)

// A ZipCursor traverses two slices in lockstep, dereferencing to a pair.
type ZipCursor[A, B any] struct {
	a []A
	b []B
	i int
}

func (c ZipCursor[A, B]) Deref() tuple.Pair[A, B] {
	return tuple.MakePair(c.a[c.i], c.b[c.i])
}

func (c ZipCursor[A, B]) Next() ZipCursor[A, B] { return ZipCursor[A, B]{c.a, c.b, c.i + 1} }

func (c ZipCursor[A, B]) Equal(o ZipCursor[A, B]) bool { return c.i == o.i }

type zipRange[A, B any] struct {
	a         []A
	b         []B
	low, high int
	grain     int
}

// Zip returns a range over the elements of a and b taken pairwise, with a
// grain size derived from the slice length and the number of CPUs.
//
// Zip panics if the slices differ in length.
func Zip[A, B any](a []A, b []B) Range[ZipCursor[A, B], tuple.Pair[A, B]] {
	return ZipGrain(a, b, internal.Grain(len(a)))
}

// ZipGrain is Zip with an explicit grain size. It panics if the slices
// differ in length, or if grain < 1.
func ZipGrain[A, B any](a []A, b []B, grain int) Range[ZipCursor[A, B], tuple.Pair[A, B]] {
	if len(a) != len(b) {
		panic(fmt.Sprintf("mismatched zip lengths: %v:%v", len(a), len(b)))
	}
	if grain < 1 {
		panic(fmt.Sprintf("invalid grain: %v", grain))
	}
	return zipRange[A, B]{a: a, b: b, low: 0, high: len(a), grain: grain}
}

func (r zipRange[A, B]) Begin() ZipCursor[A, B] { return ZipCursor[A, B]{r.a, r.b, r.low} }

func (r zipRange[A, B]) End() ZipCursor[A, B] { return ZipCursor[A, B]{r.a, r.b, r.high} }

func (r zipRange[A, B]) Size() int { return r.high - r.low }

func (r zipRange[A, B]) IsDivisible() bool { return r.Size() > r.grain }

func (r zipRange[A, B]) Split() (Range[ZipCursor[A, B], tuple.Pair[A, B]], Range[ZipCursor[A, B], tuple.Pair[A, B]]) {
	mid := r.low + r.Size()/2
	return zipRange[A, B]{r.a, r.b, r.low, mid, r.grain}, zipRange[A, B]{r.a, r.b, mid, r.high, r.grain}
}
