// Package metrics provides Prometheus instrumentation for timely components.
//
// # Quick Start
//
// Enable metrics by using the metrics-enabled constructors:
//
//	exec := executor.NewWithMetrics("reminders")
//
// Then expose metrics via HTTP:
//
//	http.Handle("/metrics", promhttp.Handler())
//	log.Fatal(http.ListenAndServe(":8080", nil))
//
// # Custom Registry
//
// Use a custom Prometheus registry for isolation:
//
//	registry := prometheus.NewRegistry()
//	config := metrics.Config{
//		Enabled:  true,
//		Registry: registry,
//	}
//
//	exec := executor.NewWithConfigAndMetrics(executor.Config{}, "reminders", config)
//
// # Available Metrics
//
// ## Executor Metrics
//
//   - timely_executor_jobs_scheduled_total: Total number of jobs scheduled
//   - timely_executor_jobs_completed_total: Jobs whose callback ran and returned nil
//   - timely_executor_jobs_failed_total: Jobs whose callback returned an error or panicked
//   - timely_executor_jobs_cancelled_total: Jobs cancelled before or during execution
//   - timely_executor_jobs_pending: Jobs currently pending or running
//   - timely_executor_wait_duration_seconds: Time from scheduling to terminal state
//   - timely_executor_callback_duration_seconds: Time spent executing callbacks
//
// ## Recurring Runner Metrics
//
//   - timely_recurring_iterations_total: Occurrences scheduled by recurring runners
//   - timely_recurring_errors_total: Failed occurrences in recurring runners
//
// # Labels
//
//   - executor_name: User-provided name for the executor instance
//   - runner_name: User-provided name for the recurring runner instance
//
// # Performance
//
// Metrics are updated only when jobs change state; there are no background
// collectors beyond the one goroutine per job that watches its completion
// handle while metrics are enabled.
package metrics
