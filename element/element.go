// Package element adapts user operators to the shape of range elements.
//
// A range element is one of three shapes: a plain scalar, a fixed-arity
// tuple, or a handle that dereferences to another element. An operator is
// written against the fully unpacked shape — a scalar operator takes one
// argument, a pair operator takes two — and the functions in this package
// resolve the shape chain into a single invocation form consumed by the
// range driver.
//
// Resolution happens at the call site's type, once per range type, through
// ordinary generic instantiation: there is no reflection and no per-element
// runtime type inspection. Handle chains of any depth are resolved by
// nesting Indirect (or MapIndirect); each application unwraps exactly one
// dereference level. Adapting an operator never touches the element itself.
package element

import "github.com/hpcgo/rangepar/tuple"

// A Visitor is the resolved invocation form of an operator with no result,
// as consumed by ForEach.
type Visitor[E any] func(E)

// A Mapper is the resolved invocation form of an operator producing a value
// of type R, as consumed by Reduce.
type Mapper[E, R any] func(E) R

// A Handle is a value that dereferences to another value, such as a nested
// cursor.
type Handle[E any] interface {
	Deref() E
}

// Scalar adapts an operator over a non-decomposable element. This is the
// base case of shape resolution: the element is passed to op as a single
// argument.
func Scalar[E any](op func(E)) Visitor[E] {
	return op
}

// Pair adapts an operator that takes the two fields of a pair element as
// separate arguments.
func Pair[A, B any](op func(A, B)) Visitor[tuple.Pair[A, B]] {
	return func(p tuple.Pair[A, B]) {
		op(p.First, p.Second)
	}
}

// Triple adapts an operator that takes the three fields of a triple element
// as separate arguments.
func Triple[A, B, C any](op func(A, B, C)) Visitor[tuple.Triple[A, B, C]] {
	return func(t tuple.Triple[A, B, C]) {
		op(t.First, t.Second, t.Third)
	}
}

// Indirect unwraps one dereference level and delegates to next. A handle
// pointing at a handle pointing at a pair is resolved by
// Indirect(Indirect(Pair(op))), and so on for deeper chains. The handle type
// is named explicitly at the call site, e.g.
//
//	element.Indirect[MyCursor](element.Pair(op))
func Indirect[H Handle[E], E any](next Visitor[E]) Visitor[H] {
	return func(h H) {
		next(h.Deref())
	}
}

// MapScalar adapts a value-producing operator over a non-decomposable
// element.
func MapScalar[E, R any](op func(E) R) Mapper[E, R] {
	return op
}

// MapPair adapts a value-producing operator that takes the two fields of a
// pair element as separate arguments.
func MapPair[A, B, R any](op func(A, B) R) Mapper[tuple.Pair[A, B], R] {
	return func(p tuple.Pair[A, B]) R {
		return op(p.First, p.Second)
	}
}

// MapTriple adapts a value-producing operator that takes the three fields of
// a triple element as separate arguments.
func MapTriple[A, B, C, R any](op func(A, B, C) R) Mapper[tuple.Triple[A, B, C], R] {
	return func(t tuple.Triple[A, B, C]) R {
		return op(t.First, t.Second, t.Third)
	}
}

// MapIndirect unwraps one dereference level and delegates to next.
func MapIndirect[H Handle[E], E, R any](next Mapper[E, R]) Mapper[H, R] {
	return func(h H) R {
		return next(h.Deref())
	}
}
