package executor

import (
	"context"
	"math"
	"time"
)

// DefaultMaxWaitInterval is the largest single wait the delay loop will
// issue. It mirrors the historical platform limit of a 32-bit unsigned
// millisecond count (about 49.7 days); longer delays are decomposed into a
// sequence of waits of at most this length.
const DefaultMaxWaitInterval = time.Duration(math.MaxUint32) * time.Millisecond

type waitOutcome int

const (
	waitCompleted waitOutcome = iota
	waitCancelled
)

// waitUntil blocks until at is reached or ctx is cancelled. The remaining
// duration is recomputed from the clock on every iteration, so leftover
// time beyond maxInterval accumulates correctly across sub-waits. A
// deadline already in the past returns waitCompleted without arming a
// timer.
func waitUntil(ctx context.Context, at time.Time, maxInterval time.Duration) waitOutcome {
	for {
		select {
		case <-ctx.Done():
			return waitCancelled
		default:
		}

		remaining := time.Until(at)
		if remaining <= 0 {
			return waitCompleted
		}

		interval := remaining
		if interval > maxInterval {
			interval = maxInterval
		}

		timer := time.NewTimer(interval)
		select {
		case <-timer.C:
		case <-ctx.Done():
			timer.Stop()
			return waitCancelled
		}
	}
}
