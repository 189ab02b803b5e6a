/*
Package execution provides time-based callback execution primitives.

  - executor: one-shot execution of a callback at a wall-clock instant,
    with per-job cancellation, completion handles and disposal
  - recurring: a thin loop that repeatedly re-schedules a callback on an
    interval or cron expression via the executor

One-Shot Execution:

The executor runs each scheduled callback on its own worker:

	exec := executor.New()
	defer exec.Dispose()

	id, handle, err := exec.Schedule(time.Now().Add(time.Hour), func(ctx context.Context) error {
		return sendReminder(ctx)
	})

	// Change of plans:
	cancelled, _ := exec.Cancel(id)

Recurring Execution:

The recurring runner re-invokes Schedule for each occurrence:

	runner := recurring.New(exec, recurring.Every(time.Minute), task)
	runner.Start()
	defer runner.Stop()

All execution components are thread-safe. Cancellation is cooperative:
callbacks receive a context and are never forcibly terminated.
*/
package execution
