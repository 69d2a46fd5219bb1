package ranges

import (
	"fmt"

	"github.com/hpcgo/rangepar/internal"
	"github.com/hpcgo/rangepar/tuple"
)

// An EnumCursor traverses a slice, dereferencing to an (index, value) pair.
type EnumCursor[T any] struct {
	s []T
	i int
}

func (c EnumCursor[T]) Deref() tuple.Pair[int, T] {
	return tuple.MakePair(c.i, c.s[c.i])
}

func (c EnumCursor[T]) Next() EnumCursor[T] { return EnumCursor[T]{c.s, c.i + 1} }

func (c EnumCursor[T]) Equal(o EnumCursor[T]) bool { return c.i == o.i }

type enumRange[T any] struct {
	s         []T
	low, high int
	grain     int
}

// Enumerate returns a range over the elements of s paired with their
// indices, with a grain size derived from len(s) and the number of CPUs.
func Enumerate[T any](s []T) Range[EnumCursor[T], tuple.Pair[int, T]] {
	return EnumerateGrain(s, internal.Grain(len(s)))
}

// EnumerateGrain is Enumerate with an explicit grain size. It panics if
// grain < 1.
func EnumerateGrain[T any](s []T, grain int) Range[EnumCursor[T], tuple.Pair[int, T]] {
	if grain < 1 {
		panic(fmt.Sprintf("invalid grain: %v", grain))
	}
	return enumRange[T]{s: s, low: 0, high: len(s), grain: grain}
}

func (r enumRange[T]) Begin() EnumCursor[T] { return EnumCursor[T]{r.s, r.low} }

func (r enumRange[T]) End() EnumCursor[T] { return EnumCursor[T]{r.s, r.high} }

func (r enumRange[T]) Size() int { return r.high - r.low }

func (r enumRange[T]) IsDivisible() bool { return r.Size() > r.grain }

func (r enumRange[T]) Split() (Range[EnumCursor[T], tuple.Pair[int, T]], Range[EnumCursor[T], tuple.Pair[int, T]]) {
	mid := r.low + r.Size()/2
	return enumRange[T]{r.s, r.low, mid, r.grain}, enumRange[T]{r.s, mid, r.high, r.grain}
}
