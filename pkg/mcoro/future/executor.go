package future

// Executor accepts units of work and guarantees each is eventually invoked
// exactly once on whatever context it controls. Enqueue uses it to hop the
// rest of a pipeline off of wherever it happens to be running.
//
// This is a contract only; pkg/mcoro/executor supplies two concrete
// implementations (a manually-drained FIFO queue and a bounded worker
// pool), but any type satisfying Submit works.
type Executor interface {
	Submit(work func())
}
