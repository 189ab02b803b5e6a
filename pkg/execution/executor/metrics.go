package executor

import (
	"context"
	"time"

	"github.com/prometheus/client_golang/prometheus"

	"github.com/vnykmshr/timely/pkg/metrics"
)

// MetricsExecutor wraps an Executor with Prometheus metrics collection.
type MetricsExecutor struct {
	exec     Executor
	name     string
	registry *metrics.Registry
	enabled  bool
}

// NewWithMetrics creates a new executor with metrics enabled.
func NewWithMetrics(name string) Executor {
	// Use a separate registry for each metrics-enabled component to avoid conflicts
	registry := prometheus.NewRegistry()
	config := metrics.Config{
		Enabled:  true,
		Registry: registry,
	}

	return NewWithConfigAndMetrics(Config{}, name, config)
}

// NewWithConfigAndMetrics creates a new executor with custom config and metrics.
func NewWithConfigAndMetrics(config Config, name string, metricsConfig metrics.Config) Executor {
	base := NewWithConfig(config)

	if !metricsConfig.Enabled {
		return base
	}

	registry := metrics.DefaultRegistry
	if metricsConfig.Registry != nil {
		registry = metrics.NewRegistry(metricsConfig.Registry)
	}

	return &MetricsExecutor{
		exec:     base,
		name:     name,
		registry: registry,
		enabled:  true,
	}
}

// Schedule registers the callback and records scheduling metrics. Each
// job's terminal outcome is counted by a goroutine watching its handle.
func (me *MetricsExecutor) Schedule(at time.Time, cb Callback) (JobID, *Handle, error) {
	wrapped := cb
	if me.enabled && cb != nil {
		wrapped = me.instrument(cb)
	}

	id, handle, err := me.exec.Schedule(at, wrapped)
	if err != nil {
		return id, handle, err
	}

	if me.enabled {
		me.registry.JobsScheduled.WithLabelValues(me.name).Inc()
		me.registry.JobsPending.WithLabelValues(me.name).Set(float64(me.exec.Len()))
		go me.observe(handle, time.Now())
	}

	return id, handle, nil
}

// ScheduleAfter registers the callback to run after the given delay.
func (me *MetricsExecutor) ScheduleAfter(delay time.Duration, cb Callback) (JobID, *Handle, error) {
	return me.Schedule(time.Now().Add(delay), cb)
}

// instrument wraps a callback to record its execution duration.
func (me *MetricsExecutor) instrument(cb Callback) Callback {
	return func(ctx context.Context) error {
		start := time.Now()
		err := cb(ctx)
		me.registry.CallbackDuration.WithLabelValues(me.name).Observe(time.Since(start).Seconds())
		return err
	}
}

// observe waits for the job's terminal state and updates outcome counters.
func (me *MetricsExecutor) observe(handle *Handle, scheduled time.Time) {
	<-handle.Done()

	me.registry.WaitDuration.WithLabelValues(me.name).Observe(time.Since(scheduled).Seconds())

	switch handle.Outcome() {
	case OutcomeCompleted:
		me.registry.JobsCompleted.WithLabelValues(me.name).Inc()
	case OutcomeFailed:
		me.registry.JobsFailed.WithLabelValues(me.name).Inc()
	case OutcomeCancelled:
		me.registry.JobsCancelled.WithLabelValues(me.name).Inc()
	}

	me.registry.JobsPending.WithLabelValues(me.name).Set(float64(me.exec.Len()))
}

// Cancel requests cancellation of a pending job.
func (me *MetricsExecutor) Cancel(id JobID) (bool, error) {
	return me.exec.Cancel(id)
}

// CancelAll cancels every pending job.
func (me *MetricsExecutor) CancelAll() error {
	return me.exec.CancelAll()
}

// Len returns the number of jobs currently pending or running.
func (me *MetricsExecutor) Len() int {
	return me.exec.Len()
}

// Dispose cancels every pending job and shuts the executor down.
func (me *MetricsExecutor) Dispose() {
	me.exec.Dispose()
}

// EnableMetrics enables metrics collection.
func (me *MetricsExecutor) EnableMetrics(config metrics.Config) error {
	me.enabled = config.Enabled

	if config.Registry != nil {
		me.registry = metrics.NewRegistry(config.Registry)
	}

	return nil
}

// DisableMetrics disables metrics collection.
func (me *MetricsExecutor) DisableMetrics() {
	me.enabled = false
}

// MetricsEnabled returns true if metrics are currently enabled.
func (me *MetricsExecutor) MetricsEnabled() bool {
	return me.enabled
}
