package ranges

import (
	"fmt"

	"github.com/hpcgo/rangepar/internal"
)

// An IntCursor traverses consecutive integers.
type IntCursor struct {
	i int
}

func (c IntCursor) Deref() int { return c.i }

func (c IntCursor) Next() IntCursor { return IntCursor{c.i + 1} }

func (c IntCursor) Equal(o IntCursor) bool { return c.i == o.i }

// intRange is a blocked range over the half-open interval [low, high).
type intRange struct {
	low, high int
	grain     int
}

// Ints returns a range over the half-open interval from low to high,
// including low but excluding high, with a grain size derived from the range
// size and the number of CPUs.
//
// Ints panics if high < low.
func Ints(low, high int) Range[IntCursor, int] {
	if high < low {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	return IntsGrain(low, high, internal.Grain(high-low))
}

// IntsGrain returns a range over the half-open interval from low to high
// that reports itself divisible as long as its size exceeds grain. A grain
// of at least the range size yields a range that is never divisible.
//
// IntsGrain panics if high < low, or if grain < 1.
func IntsGrain(low, high, grain int) Range[IntCursor, int] {
	if high < low {
		panic(fmt.Sprintf("invalid range: %v:%v", low, high))
	}
	if grain < 1 {
		panic(fmt.Sprintf("invalid grain: %v", grain))
	}
	return intRange{low: low, high: high, grain: grain}
}

func (r intRange) Begin() IntCursor { return IntCursor{r.low} }

func (r intRange) End() IntCursor { return IntCursor{r.high} }

func (r intRange) Size() int { return r.high - r.low }

func (r intRange) IsDivisible() bool { return r.Size() > r.grain }

// Split divides the range at its midpoint.
func (r intRange) Split() (Range[IntCursor, int], Range[IntCursor, int]) {
	mid := r.low + r.Size()/2
	return intRange{r.low, mid, r.grain}, intRange{mid, r.high, r.grain}
}
