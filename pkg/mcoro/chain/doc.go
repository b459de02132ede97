// Package chain implements the continuation-chain monad: a lazy, single-shot
// pipeline of activators that is built bottom-up and evaluated top-down.
//
// A Chain[T] owns an activator — a closure that, given a downstream sink,
// drives evaluation of everything built on top of it. Transform is the sole
// composition primitive; every higher-level combinator in pkg/mcoro/future
// lowers to it. Evaluation happens exactly once per chain: EvaluateInto
// consumes the chain, and a chain left armed when it becomes unreachable is
// still evaluated, with its result discarded, so side effects downstream of
// a stage still run (Freeze opts a chain out of this).
//
// Composition uses package-level functions instead of generic methods,
// because a method cannot introduce a new type parameter beyond its
// receiver's. The engine itself (activator-of-activators, lazy top-down
// evaluation) is a different animal from a fluent, eagerly-evaluated
// Result wrapper: nothing here runs until EvaluateInto is called.
package chain
