/*
Package timely provides one-shot and recurring execution of callbacks at
wall-clock times, with cooperative cancellation and guaranteed cleanup.

Execution (pkg/execution):
  - executor: Schedule a callback for a future instant, cancel it by id,
    observe its terminal outcome, dispose with bulk cancellation
  - recurring: Re-schedule a callback on an interval or cron expression
    using the executor

Metrics (pkg/metrics):
  - Prometheus instrumentation for executors and recurring runners

Example usage:

	import (
		"github.com/vnykmshr/timely/pkg/execution/executor"
	)

	exec := executor.New()
	defer exec.Dispose()

	id, handle, err := exec.ScheduleAfter(time.Minute, func(ctx context.Context) error {
		// Do work; return early if ctx is cancelled
		return nil
	})
	if err != nil {
		return err
	}

	exec.Cancel(id) // or wait: <-handle.Done()
*/
package timely
