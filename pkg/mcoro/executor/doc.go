// Package executor provides two concrete future.Executor implementations.
//
// FIFO wraps a github.com/eapache/queue ring buffer and is drained
// manually by calling RunOne or Run — useful for tests and single-threaded
// event loops that want full control over when enqueued continuations run.
//
// Pool dispatches submitted work across a fixed number of worker
// goroutines: a bounded set of goroutines draining a shared channel, torn
// down by cancelling a context and waiting on a sync.WaitGroup.
package executor
