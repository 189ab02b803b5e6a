/*
Package recurring turns the one-shot executor into a periodic scheduler.

A Runner owns a simple loop: compute the next activation from a Schedule,
schedule exactly one job for it, wait for that job to finish, repeat. At
any moment a runner has at most one job pending in the executor; stopping
the runner cancels that job. Occurrence failures are logged and do not
stop the loop.

	exec := executor.New()
	defer exec.Dispose()

	sched, err := recurring.Cron("0 0/5 * * * *") // every five minutes
	if err != nil {
		return err
	}

	runner := recurring.New(exec, sched, pollUpstream)
	if err := runner.Start(); err != nil {
		return err
	}
	defer func() { <-runner.Stop() }()

For fixed intervals use Every, which keeps sub-second resolution:

	runner := recurring.New(exec, recurring.Every(250*time.Millisecond), tick)
*/
package recurring
