package executor

import (
	"sync"

	"github.com/eapache/queue"
)

// FIFO is a future.Executor that never runs anything on its own: Submit
// only enqueues, and nothing is invoked until a caller drains it with
// RunOne or Run. This is the executor to reach for in a test, or in an
// embedder that already owns an event loop and wants enqueued
// continuations to run on it rather than on some goroutine of the
// library's choosing.
type FIFO struct {
	mu sync.Mutex
	q  *queue.Queue
}

// NewFIFO builds an empty FIFO executor.
func NewFIFO() *FIFO {
	return &FIFO{q: queue.New()}
}

// Submit enqueues work without running it.
func (f *FIFO) Submit(work func()) {
	f.mu.Lock()
	defer f.mu.Unlock()
	f.q.Add(work)
}

// Len reports how many units of work are waiting to run.
func (f *FIFO) Len() int {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.q.Length()
}

// RunOne runs the oldest pending unit of work, if any, and reports whether
// there was one to run.
func (f *FIFO) RunOne() bool {
	f.mu.Lock()
	if f.q.Length() == 0 {
		f.mu.Unlock()
		return false
	}
	work := f.q.Remove().(func())
	f.mu.Unlock()

	work()
	return true
}

// Run drains every unit of work pending at the moment it's called,
// including ones a running unit of work submits in turn.
func (f *FIFO) Run() {
	for f.RunOne() {
	}
}
