// Package tuple provides fixed-arity heterogeneous element types for ranges
// whose cursors dereference to more than one value at a time.
package tuple

// A Pair holds two values of independent types.
type Pair[A, B any] struct {
	First  A
	Second B
}

// MakePair returns a pair of the given values.
func MakePair[A, B any](first A, second B) Pair[A, B] {
	return Pair[A, B]{First: first, Second: second}
}

// Unpack returns the fields in positional order.
func (p Pair[A, B]) Unpack() (A, B) {
	return p.First, p.Second
}

// A Triple holds three values of independent types.
type Triple[A, B, C any] struct {
	First  A
	Second B
	Third  C
}

// MakeTriple returns a triple of the given values.
func MakeTriple[A, B, C any](first A, second B, third C) Triple[A, B, C] {
	return Triple[A, B, C]{First: first, Second: second, Third: third}
}

// Unpack returns the fields in positional order.
func (t Triple[A, B, C]) Unpack() (A, B, C) {
	return t.First, t.Second, t.Third
}
