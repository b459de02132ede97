package mcoro

import (
	"time"

	"github.com/google/uuid"
)

// Unit is the value type used for computations that carry no meaningful
// payload, standing in for the C++ library's void specializations.
type Unit struct{}

// Result is a tagged union of a successful value of type T or a failure.
// Exactly one of the two states is inhabited at any time.
type Result[T any] struct {
	id        uuid.UUID
	createdAt time.Time
	value     T
	err       error
	isSuccess bool
}

// Success builds a successful Result carrying v.
func Success[T any](v T) Result[T] {
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		value:     v,
		isSuccess: true,
	}
}

// Fail builds a failed Result carrying err. Fail panics if err is nil —
// a failed Result without a reason is a programmer error, not a valid state.
func Fail[T any](err error) Result[T] {
	if err == nil {
		panic("mcoro: Fail called with a nil error")
	}
	return Result[T]{
		id:        uuid.New(),
		createdAt: time.Now().UTC(),
		err:       err,
		isSuccess: false,
	}
}

// FailFrom re-tags a failure carried by a Result of a different value type,
// preserving its identity and timestamp. Used when a stage forwards an
// upstream failure without ever producing a T of its own.
func FailFrom[In, Out any](from Result[In]) Result[Out] {
	if from.isSuccess {
		panic("mcoro: FailFrom called with a successful Result")
	}
	return Result[Out]{
		id:        from.id,
		createdAt: from.createdAt,
		err:       from.err,
		isSuccess: false,
	}
}

// IsSuccess reports whether the Result holds a value rather than a failure.
func (r Result[T]) IsSuccess() bool { return r.isSuccess }

// IsFailure is the complement of IsSuccess.
func (r Result[T]) IsFailure() bool { return !r.isSuccess }

// Value returns the carried value. Calling it on a failed Result returns
// the zero value of T.
func (r Result[T]) Value() T { return r.value }

// Err returns the carried failure, or nil for a successful Result.
func (r Result[T]) Err() error { return r.err }

// ID identifies this particular Result instance, useful for tracing which
// pipeline stage produced it; never inspected by the library itself.
func (r Result[T]) ID() uuid.UUID { return r.id }

// CreatedAt is the UTC time this Result was constructed.
func (r Result[T]) CreatedAt() time.Time { return r.createdAt }
