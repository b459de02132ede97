package future

import "github.com/ib-77/mcoro/pkg/mcoro"

type callbackKind int

const (
	kindValue callbackKind = iota
	kindNested
	kindFailure
)

// CallbackResult is what a Then/Fail stage returns: either a plain value, a
// nested Future to fall through to, or a failure. It exists so a stage can
// hand back "wait for this other future instead" without the caller having
// to flatten it themselves — resolve does that.
type CallbackResult[T any] struct {
	kind   callbackKind
	value  T
	nested *Future[T]
	err    error
}

// Value builds a CallbackResult that resolves immediately to v.
func Value[T any](v T) CallbackResult[T] {
	return CallbackResult[T]{kind: kindValue, value: v}
}

// Nested builds a CallbackResult that defers to f: f's chain is evaluated
// directly into whatever promise resolve is given, so chaining a Then stage
// that returns Nested does not add an extra layer of Future wrapping.
func Nested[T any](f *Future[T]) CallbackResult[T] {
	return CallbackResult[T]{kind: kindNested, nested: f}
}

// FailWith builds a CallbackResult that resolves to a failure.
func FailWith[T any](err error) CallbackResult[T] {
	return CallbackResult[T]{kind: kindFailure, err: err}
}

// resolve delivers r into promise, flattening the Nested case by evaluating
// the nested future's chain in place instead of wrapping it.
func (r CallbackResult[T]) resolve(promise mcoro.Continuation[mcoro.Result[T]]) {
	switch r.kind {
	case kindValue:
		promise(mcoro.Success(r.value))
	case kindFailure:
		promise(mcoro.Fail[T](r.err))
	case kindNested:
		r.nested.take().EvaluateInto(promise)
	}
}
