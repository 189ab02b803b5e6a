package executor

import (
	"context"
	"sync/atomic"
)

// Cancellation window states. A controller transitions out of statePending
// exactly once: to stateCancelled when a cancellation request wins, or to
// stateClosed when the worker starts the callback.
const (
	statePending int32 = iota
	stateCancelled
	stateClosed
)

// controller is the per-job cancellation controller. It owns the single
// cancellation domain for a job: the same context is observed by the delay
// wait and passed to the callback.
type controller struct {
	state  atomic.Int32
	ctx    context.Context
	cancel context.CancelFunc
}

func newController() *controller {
	ctx, cancel := context.WithCancel(context.Background())
	return &controller{ctx: ctx, cancel: cancel}
}

// requestCancel broadcasts cancellation to all observers of the job's
// context. It returns true only when the request arrived while the job was
// still cancellable, i.e. before the callback started; a request that loses
// that race still cancels the context so a running callback can observe it
// at its own suspension points, but returns false.
func (c *controller) requestCancel() bool {
	won := c.state.CompareAndSwap(statePending, stateCancelled)
	c.cancel()
	return won
}

// cancellable reports whether a cancellation request can still prevent the
// callback from running.
func (c *controller) cancellable() bool {
	return c.state.Load() == statePending
}

// closeWindow ends the job's cancellation window. The worker calls it after
// the wait completes and before invoking the callback; false means a
// cancellation request won the race and the callback must be skipped.
func (c *controller) closeWindow() bool {
	return c.state.CompareAndSwap(statePending, stateClosed)
}

// signal returns the context carrying the job's cancellation signal.
func (c *controller) signal() context.Context {
	return c.ctx
}

// release frees the controller's context once the job is terminal.
func (c *controller) release() {
	c.cancel()
}
