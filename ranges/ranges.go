// Package ranges provides divisible ranges for parallel iteration.
//
// A range exposes a cursor pair, a size, and an IsDivisible predicate that
// reports whether the range can profitably be split for parallel execution.
// Divisible ranges split themselves into two independent halves on demand;
// how a range splits is defined by the range type itself, not by the code
// driving it.
package ranges

// A Cursor is an iterator-like handle over elements of type E. Cursors are
// value types: Next returns an advanced copy, and Equal compares positions.
// A cursor is borrowed from its range and must not outlive it.
type Cursor[C, E any] interface {
	// Deref returns the element at the cursor's position.
	Deref() E
	// Next returns a cursor advanced by one position.
	Next() C
	// Equal reports whether both cursors are at the same position.
	Equal(C) bool
}

// A Range is a sequence of elements of type E traversed with cursors of type
// C.
//
// IsDivisible must be a pure, side-effect-free query: its answer may depend
// only on the range's current size and shape, never on prior calls. Split is
// called only on ranges whose IsDivisible reports true; reporting a range
// divisible that cannot actually be split is a contract violation by the
// range type, with undefined split behavior.
type Range[C Cursor[C, E], E any] interface {
	Begin() C
	End() C
	Size() int
	IsDivisible() bool
	Split() (Range[C, E], Range[C, E])
}
