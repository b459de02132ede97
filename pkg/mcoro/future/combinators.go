package future

import (
	"github.com/ib-77/mcoro/pkg/mcoro"
	"github.com/ib-77/mcoro/pkg/mcoro/chain"
)

func takeAll[T any](futures []*Future[T]) []*chain.Chain[mcoro.Result[T]] {
	out := make([]*chain.Chain[mcoro.Result[T]], len(futures))
	for i, f := range futures {
		out[i] = f.take()
	}
	return out
}

func whenAllChains[T any](chains []*chain.Chain[mcoro.Result[T]]) *Future[[]T] {
	return newFuture[[]T](func(p mcoro.Continuation[mcoro.Result[[]T]]) {
		if len(chains) == 0 {
			p(mcoro.Success([]T{}))
			return
		}
		agg := &vectorAgg[T]{values: make([]T, len(chains)), remaining: len(chains), promise: p}
		for i, c := range chains {
			i, c := i, c
			c.EvaluateInto(func(r mcoro.Result[T]) { agg.assign(i, r) })
		}
	})
}

// WhenAll waits for every future to resolve and reports their values in
// input order, or the first failure it observes. An empty slice resolves
// immediately to an empty result.
func WhenAll[T any](futures []*Future[T]) *Future[[]T] {
	return whenAllChains(takeAll(futures))
}

// WhenAllSettled waits for every future to run to completion regardless of
// individual failures, unlike WhenAll's first-failure-wins behavior. If any
// operand failed, the result is a failure joining every operand's error
// with errors.Join — callers can pull the individual reasons back apart
// with mcoro.Errors. An empty slice resolves immediately to an empty
// success.
func WhenAllSettled[T any](futures []*Future[T]) *Future[[]T] {
	chains := takeAll(futures)
	return newFuture[[]T](func(p mcoro.Continuation[mcoro.Result[[]T]]) {
		if len(chains) == 0 {
			p(mcoro.Success([]T{}))
			return
		}
		agg := &settledAgg[T]{values: make([]T, len(chains)), remaining: len(chains), promise: p}
		for i, c := range chains {
			i, c := i, c
			c.EvaluateInto(func(r mcoro.Result[T]) { agg.assign(i, r) })
		}
	})
}

func whenAnyChains[T any](chains []*chain.Chain[mcoro.Result[T]]) *Future[T] {
	return newFuture[T](func(p mcoro.Continuation[mcoro.Result[T]]) {
		if len(chains) == 0 {
			var zero T
			p(mcoro.Success(zero))
			return
		}
		agg := &anyAgg[T]{promise: p}
		for _, c := range chains {
			c.EvaluateInto(func(r mcoro.Result[T]) { agg.assign(r) })
		}
	})
}

// WhenAny resolves as soon as the first of futures resolves, success or
// failure, and cancels nothing about the rest — they still run to
// completion, their results just go unobserved by this Future. An empty
// slice resolves immediately to a zero value, matching the reference
// library's behavior for an empty operand list.
func WhenAny[T any](futures []*Future[T]) *Future[T] {
	return whenAnyChains(takeAll(futures))
}

// WhenSeq evaluates futures one at a time, in order, only starting future
// i+1 once future i has resolved successfully. A failure anywhere in the
// sequence stops it and is forwarded as-is.
func WhenSeq[T any](futures []*Future[T]) *Future[[]T] {
	chains := takeAll(futures)
	return newFuture[[]T](func(p mcoro.Continuation[mcoro.Result[[]T]]) {
		if len(chains) == 0 {
			p(mcoro.Success([]T{}))
			return
		}
		sub := &seqSubmitter[T]{chains: chains, values: make([]T, len(chains)), promise: p}
		sub.step()
	})
}

func andBothChains[A, B any](lc *chain.Chain[mcoro.Result[A]], rc *chain.Chain[mcoro.Result[B]]) *Future[Tuple] {
	return newFuture[Tuple](func(p mcoro.Continuation[mcoro.Result[Tuple]]) {
		agg := &tupleAgg[A, B]{promise: p}
		lc.EvaluateInto(func(r mcoro.Result[A]) { agg.assignLHS(r) })
		rc.EvaluateInto(func(r mcoro.Result[B]) { agg.assignRHS(r) })
	})
}

// AndBoth runs lhs and rhs independently and combines their values into a
// Tuple once both succeed, or forwards whichever fails first. This is the
// Go stand-in for the reference library's && operator: Tuple<A,B> && C
// flattens to Tuple<A,B,C> because AndBoth's Tuple operand is flattened by
// flatten rather than nested.
func AndBoth[A, B any](lhs *Future[A], rhs *Future[B]) *Future[Tuple] {
	return andBothChains[A, B](lhs.take(), rhs.take())
}

func orEitherChains[T any](lc, rc *chain.Chain[mcoro.Result[T]]) *Future[T] {
	return newFuture[T](func(p mcoro.Continuation[mcoro.Result[T]]) {
		agg := &anyAgg[T]{promise: p}
		lc.EvaluateInto(func(r mcoro.Result[T]) { agg.assign(r) })
		rc.EvaluateInto(func(r mcoro.Result[T]) { agg.assign(r) })
	})
}

// OrEither resolves to whichever of lhs or rhs completes first, the Go
// stand-in for the reference library's || operator.
func OrEither[T any](lhs, rhs *Future[T]) *Future[T] {
	return orEitherChains[T](lhs.take(), rhs.take())
}

// AndThen is the Go stand-in for the reference library's >> operator:
// sequential-and. It differs from ThenFuture in staying value-combining
// like AndBoth (the Tuple carries both operands' values) rather than
// discarding lhs's value in favor of rhs's.
func AndThen[A, B any](lhs *Future[A], rhs *Future[B]) *Future[Tuple] {
	lc := lhs.take()
	rc := rhs.take()
	return newFuture[Tuple](func(p mcoro.Continuation[mcoro.Result[Tuple]]) {
		lc.EvaluateInto(func(lr mcoro.Result[A]) {
			if lr.IsFailure() {
				p(mcoro.FailFrom[A, Tuple](lr))
				return
			}
			rc.EvaluateInto(func(rr mcoro.Result[B]) {
				if rr.IsFailure() {
					p(mcoro.FailFrom[B, Tuple](rr))
					return
				}
				p(mcoro.Success(flatten(lr.Value(), rr.Value())))
			})
		})
	})
}
