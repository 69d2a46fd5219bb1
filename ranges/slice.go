package ranges

import (
	"fmt"

	"github.com/hpcgo/rangepar/internal"
)

// A SliceCursor traverses the elements of a slice.
type SliceCursor[T any] struct {
	s []T
	i int
}

func (c SliceCursor[T]) Deref() T { return c.s[c.i] }

func (c SliceCursor[T]) Next() SliceCursor[T] { return SliceCursor[T]{c.s, c.i + 1} }

func (c SliceCursor[T]) Equal(o SliceCursor[T]) bool { return c.i == o.i }

// sliceRange is a blocked range over a window of a slice. The slice is
// borrowed, never copied.
type sliceRange[T any] struct {
	s         []T
	low, high int
	grain     int
}

// Slice returns a range over all elements of s, with a grain size derived
// from len(s) and the number of CPUs.
func Slice[T any](s []T) Range[SliceCursor[T], T] {
	return SliceGrain(s, internal.Grain(len(s)))
}

// SliceGrain returns a range over all elements of s that reports itself
// divisible as long as it covers more than grain elements.
//
// SliceGrain panics if grain < 1.
func SliceGrain[T any](s []T, grain int) Range[SliceCursor[T], T] {
	if grain < 1 {
		panic(fmt.Sprintf("invalid grain: %v", grain))
	}
	return sliceRange[T]{s: s, low: 0, high: len(s), grain: grain}
}

func (r sliceRange[T]) Begin() SliceCursor[T] { return SliceCursor[T]{r.s, r.low} }

func (r sliceRange[T]) End() SliceCursor[T] { return SliceCursor[T]{r.s, r.high} }

func (r sliceRange[T]) Size() int { return r.high - r.low }

func (r sliceRange[T]) IsDivisible() bool { return r.Size() > r.grain }

// Split divides the window at its midpoint; both halves keep borrowing the
// same underlying slice.
func (r sliceRange[T]) Split() (Range[SliceCursor[T], T], Range[SliceCursor[T], T]) {
	mid := r.low + r.Size()/2
	return sliceRange[T]{r.s, r.low, mid, r.grain}, sliceRange[T]{r.s, mid, r.high, r.grain}
}
