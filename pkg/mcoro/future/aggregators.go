package future

import (
	"errors"
	"sync"

	"github.com/ib-77/mcoro/pkg/mcoro"
	"github.com/ib-77/mcoro/pkg/mcoro/chain"
)

// The C++ library leaves synchronization between concurrently-completing
// operands to the embedder. Go's aggregators guard their own state with a
// mutex instead: the cost is negligible next to a chain stage's own work,
// and it means WhenAll/WhenAny/AndBoth behave the same whether their
// operands resolve inline or from another goroutine via Enqueue.

// vectorAgg backs WhenAll: it waits for every operand and reports the
// first failure it sees, discarding results that arrive after that.
type vectorAgg[T any] struct {
	mu        sync.Mutex
	values    []T
	remaining int
	fired     bool
	promise   mcoro.Continuation[mcoro.Result[[]T]]
}

func (a *vectorAgg[T]) assign(i int, r mcoro.Result[T]) {
	a.mu.Lock()
	if a.fired {
		a.mu.Unlock()
		return
	}
	if r.IsFailure() {
		a.fired = true
		p := a.promise
		a.mu.Unlock()
		p(mcoro.FailFrom[T, []T](r))
		return
	}
	a.values[i] = r.Value()
	a.remaining--
	var out []T
	done := a.remaining == 0
	if done {
		a.fired = true
		out = a.values
	}
	p := a.promise
	a.mu.Unlock()
	if done {
		p(mcoro.Success(out))
	}
}

// settledAgg backs WhenAllSettled: unlike vectorAgg it never stops early —
// every operand runs to completion, and every failure observed is joined
// together with errors.Join instead of only the first one being kept, so a
// caller that wants every reason a batch failed can pull them back apart
// with mcoro.Errors.
type settledAgg[T any] struct {
	mu        sync.Mutex
	values    []T
	failed    []error
	remaining int
	promise   mcoro.Continuation[mcoro.Result[[]T]]
}

func (a *settledAgg[T]) assign(i int, r mcoro.Result[T]) {
	a.mu.Lock()
	if r.IsFailure() {
		a.failed = append(a.failed, r.Err())
	} else {
		a.values[i] = r.Value()
	}
	a.remaining--
	done := a.remaining == 0
	failed := a.failed
	values := a.values
	p := a.promise
	a.mu.Unlock()

	if !done {
		return
	}
	if len(failed) > 0 {
		p(mcoro.Fail[[]T](errors.Join(failed...)))
		return
	}
	p(mcoro.Success(values))
}

// anyAgg backs WhenAny and OrEither: the first operand to resolve, success
// or failure, wins and every later arrival is discarded.
type anyAgg[T any] struct {
	mu      sync.Mutex
	fired   bool
	promise mcoro.Continuation[mcoro.Result[T]]
}

func (a *anyAgg[T]) assign(r mcoro.Result[T]) {
	a.mu.Lock()
	if a.fired {
		a.mu.Unlock()
		return
	}
	a.fired = true
	p := a.promise
	a.mu.Unlock()
	p(r)
}

// tupleAgg backs AndBoth: it waits for both operands, of possibly different
// types, and flattens them into a Tuple once both have arrived.
type tupleAgg[A, B any] struct {
	mu      sync.Mutex
	lhs     *A
	rhs     *B
	fired   bool
	promise mcoro.Continuation[mcoro.Result[Tuple]]
}

func (a *tupleAgg[A, B]) fail(r mcoro.Result[Tuple]) {
	a.mu.Lock()
	if a.fired {
		a.mu.Unlock()
		return
	}
	a.fired = true
	p := a.promise
	a.mu.Unlock()
	p(r)
}

func (a *tupleAgg[A, B]) assignLHS(r mcoro.Result[A]) {
	if r.IsFailure() {
		a.fail(mcoro.FailFrom[A, Tuple](r))
		return
	}
	a.mu.Lock()
	if a.fired {
		a.mu.Unlock()
		return
	}
	v := r.Value()
	a.lhs = &v
	ready := a.lhs != nil && a.rhs != nil
	var out Tuple
	if ready {
		a.fired = true
		out = flatten(*a.lhs, *a.rhs)
	}
	p := a.promise
	a.mu.Unlock()
	if ready {
		p(mcoro.Success(out))
	}
}

func (a *tupleAgg[A, B]) assignRHS(r mcoro.Result[B]) {
	if r.IsFailure() {
		a.fail(mcoro.FailFrom[B, Tuple](r))
		return
	}
	a.mu.Lock()
	if a.fired {
		a.mu.Unlock()
		return
	}
	v := r.Value()
	a.rhs = &v
	ready := a.lhs != nil && a.rhs != nil
	var out Tuple
	if ready {
		a.fired = true
		out = flatten(*a.lhs, *a.rhs)
	}
	p := a.promise
	a.mu.Unlock()
	if ready {
		p(mcoro.Success(out))
	}
}

// seqSubmitter backs WhenSeq: chain i+1 is only evaluated once chain i has
// resolved successfully, so submitters that mutate shared state one at a
// time observe a fixed order regardless of how they'd interleave if run
// concurrently.
type seqSubmitter[T any] struct {
	chains  []*chain.Chain[mcoro.Result[T]]
	values  []T
	idx     int
	promise mcoro.Continuation[mcoro.Result[[]T]]
}

func (s *seqSubmitter[T]) step() {
	if s.idx >= len(s.chains) {
		return
	}
	i := s.idx
	s.idx++
	s.chains[i].EvaluateInto(func(r mcoro.Result[T]) {
		if r.IsFailure() {
			s.promise(mcoro.FailFrom[T, []T](r))
			return
		}
		s.values[i] = r.Value()
		if s.idx == len(s.chains) {
			s.promise(mcoro.Success(s.values))
			return
		}
		s.step()
	})
}
