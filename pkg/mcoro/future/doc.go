// Package future layers a typed success/failure future over
// pkg/mcoro/chain's continuation-chain monad, and provides the combinators
// (WhenAll, WhenAny, WhenSeq, AndBoth, OrEither, AndThen) that aggregate
// several futures into one.
//
// Because a chain.Chain[T] is armed exactly once and Go generics forbid a
// method from introducing a type parameter beyond its receiver's, any
// operation that changes a Future's value type (Then, Map, ThenTry,
// Finally, the tuple partial-application helpers, every combinator) is a
// package-level function taking the Future as its first argument.
// Operations that keep the same value type (Fail, Ensure, Done, Freeze,
// Enqueue, IgnoreResult) are ordinary methods.
//
// Go has no operator overloading, so the C++ library's `&&`/`||`/`>>`
// become AndBoth, OrEither, and AndThen respectively; each doc comment
// names the operator it replaces.
package future
