package chain

import (
	"runtime"
	"sync/atomic"

	"github.com/ib-77/mcoro/pkg/mcoro"
)

const (
	stateArmed int32 = iota
	stateFired
	stateCancelled
)

// Activator is the closure a Chain owns: given a downstream sink, it drives
// evaluation of the chain (and, transitively, everything transform built on
// top of the parent it closed over).
type Activator[T any] func(mcoro.Continuation[T])

// Chain is a lazily evaluated, single-shot pipeline stage. It must not be
// copied — copying a Chain after it has been handed to Transform or
// EvaluateInto observes undefined ownership, mirroring the copy-ctor assert
// in the source library. Always pass *Chain[T] by pointer.
type Chain[T any] struct {
	state     int32
	activator Activator[T]
}

// New builds an armed Chain from an activator. The activator captures all
// upstream state; it will be invoked at most once, either by EvaluateInto,
// by Transform folding it into a downstream chain's activator, or — if the
// Chain becomes unreachable while still armed — by a finalizer that drives
// it with a discarding sink.
func New[T any](activator Activator[T]) *Chain[T] {
	c := &Chain[T]{activator: activator}
	runtime.SetFinalizer(c, finalize[T])
	return c
}

// finalize drives an armed, otherwise-unreferenced chain to completion with
// a discarding sink, so that side effects buried in its stages still run
// even though nothing ever asked for its result. It is best-effort: Go has
// no deterministic destructors, so this fires whenever the garbage
// collector notices the Chain is unreachable, not synchronously at the
// point a caller stops referencing it. Freeze (see Cancel) clears the
// finalizer, opting a Chain out of this behavior entirely.
func finalize[T any](c *Chain[T]) {
	if atomic.CompareAndSwapInt32(&c.state, stateArmed, stateFired) {
		act := c.activator
		c.activator = nil
		if act != nil {
			act(mcoro.Once(mcoro.NoopSink[T]()))
		}
	}
}

// Armed reports whether the chain has not yet been evaluated, transformed,
// or cancelled.
func (c *Chain[T]) Armed() bool {
	return atomic.LoadInt32(&c.state) == stateArmed
}

// EvaluateInto consumes the chain, invoking its activator with sink. It is a
// no-op if the chain has already been evaluated, transformed away, or
// cancelled — matching the "may only transition once" invariant. sink is
// wrapped in mcoro.Once, so an activator that misbehaves and delivers twice
// panics instead of silently double-delivering.
func (c *Chain[T]) EvaluateInto(sink mcoro.Continuation[T]) {
	if !atomic.CompareAndSwapInt32(&c.state, stateArmed, stateFired) {
		return
	}
	runtime.SetFinalizer(c, nil)
	act := c.activator
	c.activator = nil
	act(mcoro.Once(sink))
}

// Cancel drops the activator without invoking it, and disarms the
// drop-evaluates-on-GC behavior. This is the primitive behind Future.Freeze.
func (c *Chain[T]) Cancel() {
	if atomic.CompareAndSwapInt32(&c.state, stateArmed, stateCancelled) {
		runtime.SetFinalizer(c, nil)
		c.activator = nil
	}
}

// Transform appends a stage to the chain, consuming c and returning a new
// chain whose activator, given a downstream continuation, drives c's
// activator with an adapter that funnels through stage. It is a free
// function rather than a method because Go does not allow a generic method
// to introduce a type parameter — U — beyond its receiver's. stage's
// continuation is wrapped in mcoro.Once so a stage that fires it twice
// panics instead of silently double-delivering downstream.
func Transform[T, U any](c *Chain[T], stage func(T, mcoro.Continuation[U])) *Chain[U] {
	if !atomic.CompareAndSwapInt32(&c.state, stateArmed, stateFired) {
		panic("mcoro/chain: chain already evaluated, transformed, or cancelled")
	}
	runtime.SetFinalizer(c, nil)
	parent := c.activator
	c.activator = nil

	return New[U](func(next mcoro.Continuation[U]) {
		guarded := mcoro.Once(next)
		parent(func(v T) {
			stage(v, guarded)
		})
	})
}
