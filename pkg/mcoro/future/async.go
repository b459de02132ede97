package future

import (
	"github.com/ib-77/mcoro/pkg/mcoro"
	"github.com/ib-77/mcoro/pkg/mcoro/chain"
)

// Async wraps a computation the same way Future does but does not expose
// Then, Fail, or Done: the only way out of an Async is Enqueue, which hops
// it onto an executor and hands back an ordinary Future that downstream
// code can attach handlers to. It exists for APIs that must guarantee a
// callback never runs inline on the caller's goroutine — a network client
// wrapping a background loop, for instance — by making that guarantee part
// of the type instead of a comment.
type Async[T any] struct {
	inner *Future[T]
}

// NewAsync wraps f as an Async, taking ownership of its chain.
func NewAsync[T any](f *Future[T]) *Async[T] {
	return &Async[T]{inner: f}
}

func (a *Async[T]) take() *chain.Chain[mcoro.Result[T]] {
	return a.inner.take()
}

// Enqueue submits a's result to ex and returns an ordinary Future that
// downstream code can call Then/Fail/Done on.
func (a *Async[T]) Enqueue(ex Executor) *Future[T] {
	return a.inner.Enqueue(ex)
}

// IgnoreResult evaluates a for its side effects and discards the outcome,
// without requiring an executor hop first.
func (a *Async[T]) IgnoreResult() {
	a.inner.IgnoreResult()
}

// awaitable is satisfied by both Future and Async, letting AndBothAsync,
// OrEitherAsync, and WhenAllAsync accept a mix of the two: per the mixing
// rule, if either operand is Async the combined result is Async.
type awaitable[T any] interface {
	take() *chain.Chain[mcoro.Result[T]]
}

// AndBothAsync is AndBoth for operands where at least one is Async: the
// combined Tuple can only be obtained by enqueueing onto an executor.
func AndBothAsync[A, B any](lhs awaitable[A], rhs awaitable[B]) *Async[Tuple] {
	return NewAsync(andBothChains[A, B](lhs.take(), rhs.take()))
}

// OrEitherAsync is OrEither for operands where at least one is Async.
func OrEitherAsync[T any](lhs, rhs awaitable[T]) *Async[T] {
	return NewAsync(orEitherChains[T](lhs.take(), rhs.take()))
}

// WhenAllAsync is WhenAll restricted to Async operands, matching the
// reference library's async_future.h when_all overload: since every
// operand is already Async, the aggregate is too.
func WhenAllAsync[T any](futures []*Async[T]) *Async[[]T] {
	chains := make([]*chain.Chain[mcoro.Result[T]], len(futures))
	for i, f := range futures {
		chains[i] = f.take()
	}
	return NewAsync(whenAllChains(chains))
}
