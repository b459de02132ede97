package future

import (
	"testing"

	"github.com/ib-77/mcoro/pkg/mcoro"
)

func TestAsync_EnqueueYieldsAnOrdinaryFuture(t *testing.T) {
	t.Parallel()

	exec := &inlineExecutor{}
	a := NewAsync(MakeSuccessful(1))
	f := a.Enqueue(exec)

	var got mcoro.Result[int]
	f.Done(func(r mcoro.Result[int]) { got = r })

	if got.IsSuccess() {
		t.Fatalf("expected delivery to wait for the executor")
	}

	exec.submitted[0]()
	if !got.IsSuccess() || got.Value() != 1 {
		t.Fatalf("expected 1 once the executor ran, got %+v", got)
	}
}

func TestAndBothAsync_MixingEitherOperandBeingAsyncProducesAsync(t *testing.T) {
	t.Parallel()

	exec := &inlineExecutor{}
	lhs := NewAsync(MakeSuccessful(1))
	rhs := MakeSuccessful("two")

	combined := AndBothAsync[int, string](lhs, rhs)
	f := combined.Enqueue(exec)

	var got mcoro.Result[Tuple]
	f.Done(func(r mcoro.Result[Tuple]) { got = r })

	if got.IsSuccess() {
		t.Fatalf("expected the combined Async to require an executor hop before delivery")
	}

	exec.submitted[0]()
	if !got.IsSuccess() {
		t.Fatalf("expected success once the executor ran, got %+v", got)
	}
	tup := got.Value()
	if len(tup) != 2 || tup[0] != 1 || tup[1] != "two" {
		t.Fatalf("expected tuple [1 two], got %v", tup)
	}
}

func TestWhenAllAsync_AggregatesAsyncOperands(t *testing.T) {
	t.Parallel()

	exec := &inlineExecutor{}
	a := WhenAllAsync([]*Async[int]{
		NewAsync(MakeSuccessful(1)),
		NewAsync(MakeSuccessful(2)),
	})
	f := a.Enqueue(exec)

	var got mcoro.Result[[]int]
	f.Done(func(r mcoro.Result[[]int]) { got = r })

	exec.submitted[0]()
	if !got.IsSuccess() || got.Value()[0] != 1 || got.Value()[1] != 2 {
		t.Fatalf("expected [1 2], got %+v", got)
	}
}
