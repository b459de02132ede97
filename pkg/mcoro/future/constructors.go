package future

import "github.com/ib-77/mcoro/pkg/mcoro"

// MakeSuccessful builds an already-resolved, successful Future carrying v.
func MakeSuccessful[T any](v T) *Future[T] {
	return newFuture[T](func(p mcoro.Continuation[mcoro.Result[T]]) {
		p(mcoro.Success(v))
	})
}

// MakeSuccessfulUnit is MakeSuccessful for computations with no meaningful
// payload.
func MakeSuccessfulUnit() *Future[mcoro.Unit] {
	return MakeSuccessful(mcoro.Unit{})
}

// MakeFailed builds an already-resolved, failed Future carrying err.
func MakeFailed[T any](err error) *Future[T] {
	return newFuture[T](func(p mcoro.Continuation[mcoro.Result[T]]) {
		p(mcoro.Fail[T](err))
	})
}

// MakeSuccessfulFromFuture normalizes an already-built Future into the same
// shape MakeSuccessful/MakeFailed produce, for call sites that accept
// "either a bare value or a future of one" and want a single Future type to
// hand off to Then/WhenAll/etc. Since Future already is that representation
// here, this is an identity passthrough.
func MakeSuccessfulFromFuture[T any](f *Future[T]) *Future[T] {
	return f
}
