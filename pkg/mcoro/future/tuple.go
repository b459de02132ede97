package future

import "github.com/ib-77/mcoro/pkg/mcoro"

// Tuple is the value AndBoth and AndThen produce: an ordered, flattened
// list of the values their operands carried. Flattening keeps
// AndBoth(AndBoth(a, b), c) equal in shape to a hypothetical three-way
// AndBoth(a, b, c) instead of nesting Tuple-of-Tuple, and mcoro.Unit
// operands are elided entirely rather than occupying a slot.
type Tuple []any

func tupleAppend(t Tuple, v any) Tuple {
	switch x := v.(type) {
	case Tuple:
		return append(t, x...)
	case mcoro.Unit:
		return t
	default:
		return append(t, v)
	}
}

func flatten(lhs, rhs any) Tuple {
	t := tupleAppend(nil, lhs)
	return tupleAppend(t, rhs)
}

func elem[E any](t Tuple, i int) E {
	var zero E
	if i >= len(t) {
		return zero
	}
	v, ok := t[i].(E)
	if !ok {
		panic("mcoro/future: tuple element type mismatch")
	}
	return v
}

// Then0 attaches a stage that ignores an incoming Tuple entirely — the
// zero-arity end of the partial-application family below.
func Then0[U any](f *Future[Tuple], stage func() CallbackResult[U]) *Future[U] {
	return Then(f, func(Tuple) CallbackResult[U] { return stage() })
}

// Then1 attaches a stage consuming the first element of an incoming Tuple,
// leaving any further elements unread. This is what makes partial
// application work: a k-ary stage can consume the first k elements of an
// m-ary tuple for any k <= m.
func Then1[A, U any](f *Future[Tuple], stage func(A) CallbackResult[U]) *Future[U] {
	return Then(f, func(t Tuple) CallbackResult[U] {
		return stage(elem[A](t, 0))
	})
}

// Then2 attaches a stage consuming the first two elements of an incoming
// Tuple.
func Then2[A, B, U any](f *Future[Tuple], stage func(A, B) CallbackResult[U]) *Future[U] {
	return Then(f, func(t Tuple) CallbackResult[U] {
		return stage(elem[A](t, 0), elem[B](t, 1))
	})
}

// Then3 attaches a stage consuming the first three elements of an incoming
// Tuple.
func Then3[A, B, C, U any](f *Future[Tuple], stage func(A, B, C) CallbackResult[U]) *Future[U] {
	return Then(f, func(t Tuple) CallbackResult[U] {
		return stage(elem[A](t, 0), elem[B](t, 1), elem[C](t, 2))
	})
}
