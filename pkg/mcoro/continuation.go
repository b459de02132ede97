package mcoro

import "sync/atomic"

// Continuation is a single-shot sink: a callback that consumes exactly one
// value and returns nothing. It is the "rest of the computation" that an
// activator (see pkg/mcoro/chain) invokes once it has produced a result.
type Continuation[T any] func(T)

// Once wraps c so that any invocation past the first panics, turning a
// double-fire bug into a loud contract-check failure instead of silently
// running downstream work twice.
func Once[T any](c Continuation[T]) Continuation[T] {
	var fired atomic.Bool
	return func(v T) {
		if fired.Swap(true) {
			panic("mcoro: continuation invoked more than once")
		}
		c(v)
	}
}

// NoopSink returns a Continuation that discards whatever it receives. Used
// to drive an armed chain to completion for its side effects when nobody
// is holding a live consumer for its result.
func NoopSink[T any]() Continuation[T] {
	return func(T) {}
}
