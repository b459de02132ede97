package future

import (
	"testing"

	"github.com/ib-77/mcoro/pkg/mcoro"
)

func TestThen2_PartiallyAppliesOverAWiderTuple(t *testing.T) {
	t.Parallel()

	triple := AndBoth(AndBoth(MakeSuccessful(1), MakeSuccessful(2)), MakeSuccessful(3))

	// A two-argument stage over a three-element tuple only consumes the
	// first two elements, ignoring the third.
	f := Then2(triple, func(a, b int) CallbackResult[int] {
		return Value(a + b)
	})

	var got mcoro.Result[int]
	f.Done(func(r mcoro.Result[int]) { got = r })

	if !got.IsSuccess() || got.Value() != 3 {
		t.Fatalf("expected 1+2=3 from a partially-applied stage, got %+v", got)
	}
}

func TestThen1_ConsumesOnlyFirstElement(t *testing.T) {
	t.Parallel()

	pair := AndBoth(MakeSuccessful("hello"), MakeSuccessful(99))

	f := Then1(pair, func(s string) CallbackResult[int] {
		return Value(len(s))
	})

	var got mcoro.Result[int]
	f.Done(func(r mcoro.Result[int]) { got = r })

	if !got.IsSuccess() || got.Value() != 5 {
		t.Fatalf("expected len(\"hello\")=5, got %+v", got)
	}
}

func TestThen0_IgnoresTupleEntirely(t *testing.T) {
	t.Parallel()

	pair := AndBoth(MakeSuccessful(1), MakeSuccessful(2))

	f := Then0(pair, func() CallbackResult[string] {
		return Value("ran")
	})

	var got mcoro.Result[string]
	f.Done(func(r mcoro.Result[string]) { got = r })

	if !got.IsSuccess() || got.Value() != "ran" {
		t.Fatalf("expected \"ran\", got %+v", got)
	}
}
