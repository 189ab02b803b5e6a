/*
Package executor schedules callbacks for execution at future wall-clock
times and cancels them by id.

Every Schedule call spawns an independent worker goroutine; there is no
pooling, ordering or prioritization between jobs. The worker waits for the
scheduled instant, runs the callback, and always removes the job from the
executor's internal registry exactly once, so the pending set stays
accurate under any outcome.

Basic usage:

	exec := executor.New()
	defer exec.Dispose()

	id, handle, err := exec.Schedule(at, func(ctx context.Context) error {
		select {
		case <-ctx.Done():
			return ctx.Err() // cancelled, unwind cooperatively
		default:
		}
		return doWork()
	})
	if err != nil {
		return err
	}

	outcome, err := handle.Wait(context.Background())

Cancellation:

Cancellation is cooperative. Cancel before the scheduled instant aborts the
wait and the callback never runs. Cancel while the callback is running
returns false, but the job's context is still cancelled so the callback can
observe it and stop at its own suspension points; a callback that never
checks the context runs to completion. Dispose cancels every pending job
the same way and then rejects all further calls with ErrDisposed.

Long delays:

The underlying timer is only trusted up to Config.MaxWaitInterval per wait
(default about 49.7 days, the 32-bit millisecond bound). Longer delays are
transparently decomposed into a sequence of bounded waits, so a job may be
scheduled arbitrarily far in the future.

Outcomes:

A job's Handle resolves to exactly one of Completed, Failed or Cancelled.
Callback errors and panics resolve Failed and are logged; they never reach
other jobs or the caller of Schedule. Nothing ever has to read a Handle for
the executor to operate correctly.
*/
package executor
