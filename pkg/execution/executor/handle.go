package executor

import (
	"context"
	"sync"
)

// Outcome is a job's terminal state as observed through its Handle.
type Outcome int

const (
	// OutcomePending means the job has not reached a terminal state yet.
	OutcomePending Outcome = iota

	// OutcomeCompleted means the callback ran and returned nil.
	OutcomeCompleted

	// OutcomeFailed means the callback returned an error or panicked.
	OutcomeFailed

	// OutcomeCancelled means the job was cancelled before the callback ran,
	// or the callback observed cancellation and unwound cooperatively.
	OutcomeCancelled
)

func (o Outcome) String() string {
	switch o {
	case OutcomePending:
		return "pending"
	case OutcomeCompleted:
		return "completed"
	case OutcomeFailed:
		return "failed"
	case OutcomeCancelled:
		return "cancelled"
	default:
		return "unknown"
	}
}

// Handle observes a job's eventual terminal outcome. Scheduling is
// fire-and-forget; the executor never requires anyone to read the handle,
// it exists for tests and observability.
type Handle struct {
	done    chan struct{}
	once    sync.Once
	outcome Outcome
	err     error
}

func newHandle() *Handle {
	return &Handle{done: make(chan struct{})}
}

// resolve records the terminal state and wakes all waiters. Only the first
// call has any effect.
func (h *Handle) resolve(outcome Outcome, err error) {
	h.once.Do(func() {
		h.outcome = outcome
		h.err = err
		close(h.done)
	})
}

// Done returns a channel that is closed when the job reaches a terminal
// state.
func (h *Handle) Done() <-chan struct{} {
	return h.done
}

// Outcome returns the job's terminal state, or OutcomePending if the job
// has not finished.
func (h *Handle) Outcome() Outcome {
	select {
	case <-h.done:
		return h.outcome
	default:
		return OutcomePending
	}
}

// Err returns the callback's error for a failed job, and nil otherwise.
func (h *Handle) Err() error {
	select {
	case <-h.done:
		return h.err
	default:
		return nil
	}
}

// Wait blocks until the job reaches a terminal state or ctx is cancelled.
// On a failed job it returns the callback's error; if ctx ends first it
// returns OutcomePending and the context's error.
func (h *Handle) Wait(ctx context.Context) (Outcome, error) {
	select {
	case <-h.done:
		return h.outcome, h.err
	case <-ctx.Done():
		return OutcomePending, ctx.Err()
	}
}
