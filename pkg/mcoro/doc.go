// Package mcoro provides the value-level building blocks — Result[T] and
// Continuation[T] — that the continuation-chain monad in pkg/mcoro/chain
// and the future/combinator layer in pkg/mcoro/future are built from.
//
// It does not itself define any evaluation machinery; it only describes the
// shape of a finished computation (Result) and the shape of a single-shot
// sink that consumes one (Continuation).
package mcoro
