package future

import (
	"github.com/ib-77/mcoro/pkg/mcoro"
	"github.com/ib-77/mcoro/pkg/mcoro/chain"
)

// Future is a lazy, single-shot computation that eventually produces a
// mcoro.Result[T]. It is a thin wrapper over a chain.Chain — all of the
// armed/fired/cancelled bookkeeping and the drop-evaluates-armed-chain
// behavior live there.
//
// A Future must not be copied after it has been passed to Then, Fail, one
// of the combinators, or Done; those all take ownership of its chain and
// leave the Future they were handed empty.
type Future[T any] struct {
	ch *chain.Chain[mcoro.Result[T]]
}

func newFuture[T any](activator chain.Activator[mcoro.Result[T]]) *Future[T] {
	return &Future[T]{ch: chain.New[mcoro.Result[T]](activator)}
}

func fromChain[T any](c *chain.Chain[mcoro.Result[T]]) *Future[T] {
	return &Future[T]{ch: c}
}

// take detaches the underlying chain, leaving f empty. Every operation that
// consumes a Future — Then, Fail, Ensure, Done, Freeze, Enqueue, the
// combinators — goes through take so a Future can't be accidentally reused
// after it has been folded into something else.
func (f *Future[T]) take() *chain.Chain[mcoro.Result[T]] {
	c := f.ch
	f.ch = nil
	return c
}

// New builds a Future directly from an activator, the same way chain.New
// builds a Chain. Most callers reach for MakeSuccessful, MakeFailed, or a
// Then chain instead; New is for adapting a callback-based API (a network
// read, a timer) into the future/combinator world.
func New[T any](activator func(mcoro.Continuation[mcoro.Result[T]])) *Future[T] {
	return newFuture[T](activator)
}

// Then attaches a stage that runs when f resolves successfully. stage
// returns a CallbackResult[U], which may itself carry a nested Future — in
// that case the nested Future's chain is evaluated directly into the
// downstream promise rather than wrapped, so a Then chain never grows a
// layer of indirection per stage. If f fails, the failure is forwarded to
// U without stage ever running.
//
// A free function, not a method: U is a type parameter beyond Future[T]'s
// receiver, which Go generics do not allow on a method.
func Then[T, U any](f *Future[T], stage func(T) CallbackResult[U]) *Future[U] {
	c := f.take()
	next := chain.Transform[mcoro.Result[T], mcoro.Result[U]](c, func(r mcoro.Result[T], down mcoro.Continuation[mcoro.Result[U]]) {
		if r.IsFailure() {
			down(mcoro.FailFrom[T, U](r))
			return
		}
		stage(r.Value()).resolve(down)
	})
	return fromChain[U](next)
}

// Map attaches a pure transform that cannot itself fail. It is Then
// restricted to the CallbackResult Value case.
func Map[T, U any](f *Future[T], stage func(T) U) *Future[U] {
	return Then(f, func(v T) CallbackResult[U] {
		return Value(stage(v))
	})
}

// ThenTry attaches a transform in the (value, error) idiom instead of
// CallbackResult, for wrapping ordinary Go functions into a Then stage
// without the caller having to spell out Value/FailWith themselves.
func ThenTry[T, U any](f *Future[T], stage func(T) (U, error)) *Future[U] {
	return Then(f, func(v T) CallbackResult[U] {
		out, err := stage(v)
		if err != nil {
			return FailWith[U](err)
		}
		return Value(out)
	})
}

// ThenFuture chains f into other: once f resolves successfully, other's
// chain is evaluated in its place, producing other's value type. Failure
// bypasses other entirely, forwarded straight to U. This is the future/
// future overload of Then — sequencing two independently built futures
// instead of a value-producing stage.
func ThenFuture[T, U any](f *Future[T], other *Future[U]) *Future[U] {
	c := f.take()
	oc := other.take()
	next := chain.Transform[mcoro.Result[T], mcoro.Result[U]](c, func(r mcoro.Result[T], down mcoro.Continuation[mcoro.Result[U]]) {
		if r.IsFailure() {
			down(mcoro.FailFrom[T, U](r))
			return
		}
		oc.EvaluateInto(down)
	})
	return fromChain[U](next)
}

// Finally attaches a stage that runs regardless of whether f succeeded or
// failed, and fully controls the outgoing Result — it can turn a failure
// into a success, a success into a failure, or change the value type. The
// incoming Result is passed through mcoro.WithError rather than the
// concrete mcoro.Result[T], since stage only ever needs the read-only
// accessor contract, not the ID/CreatedAt bookkeeping fields.
func Finally[T, U any](f *Future[T], stage func(mcoro.WithError[T]) mcoro.Result[U]) *Future[U] {
	c := f.take()
	next := chain.Transform[mcoro.Result[T], mcoro.Result[U]](c, func(r mcoro.Result[T], down mcoro.Continuation[mcoro.Result[U]]) {
		down(stage(r))
	})
	return fromChain[U](next)
}

// Fail attaches a recovery stage that runs only if f failed, mirroring
// Then's success-only contract in the other direction. Like Then, its
// CallbackResult may carry a nested Future to fall back to.
func (f *Future[T]) Fail(stage func(error) CallbackResult[T]) *Future[T] {
	c := f.take()
	next := chain.Transform[mcoro.Result[T], mcoro.Result[T]](c, func(r mcoro.Result[T], down mcoro.Continuation[mcoro.Result[T]]) {
		if r.IsSuccess() {
			down(r)
			return
		}
		stage(r.Err()).resolve(down)
	})
	return fromChain[T](next)
}

// Ensure runs onSuccess for its side effect when f resolves successfully,
// without changing the value or failure that flows downstream. It never
// changes T, so unlike Then it can stay a method.
func (f *Future[T]) Ensure(onSuccess func(T)) *Future[T] {
	c := f.take()
	next := chain.Transform[mcoro.Result[T], mcoro.Result[T]](c, func(r mcoro.Result[T], down mcoro.Continuation[mcoro.Result[T]]) {
		if r.IsSuccess() {
			onSuccess(r.Value())
		}
		down(r)
	})
	return fromChain[T](next)
}

// Done evaluates the whole chain, delivering the final Result to sink. This
// is the only way to actually run a Future — everything before it just
// builds up an activator.
func (f *Future[T]) Done(sink func(mcoro.Result[T])) {
	f.take().EvaluateInto(sink)
}

// IgnoreResult evaluates f for its side effects and discards the outcome.
func (f *Future[T]) IgnoreResult() {
	f.take().EvaluateInto(mcoro.NoopSink[mcoro.Result[T]]())
}

// Freeze cancels f: if it is still armed and never evaluated, dropping it
// afterward will not trigger the discarding-evaluation-on-GC fallback. Use
// this when a Future is abandoned deliberately and its side effects must
// not run.
func (f *Future[T]) Freeze() {
	f.take().Cancel()
}

// Enqueue hops the rest of the pipeline onto ex: f's Result is handed to
// ex.Submit instead of being delivered inline, so whatever runs after
// Enqueue executes on ex's dispatch, not on whatever goroutine drove f to
// completion. This is the primitive an Async[T] uses to become a Future.
func (f *Future[T]) Enqueue(ex Executor) *Future[T] {
	c := f.take()
	next := chain.Transform[mcoro.Result[T], mcoro.Result[T]](c, func(r mcoro.Result[T], down mcoro.Continuation[mcoro.Result[T]]) {
		ex.Submit(func() { down(r) })
	})
	return fromChain[T](next)
}
