// Package metrics provides Prometheus instrumentation for timely components.
package metrics

import (
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/promauto"
)

// Registry holds all metric instances for timely components.
type Registry struct {
	// Executor Metrics
	JobsScheduled    *prometheus.CounterVec
	JobsCompleted    *prometheus.CounterVec
	JobsFailed       *prometheus.CounterVec
	JobsCancelled    *prometheus.CounterVec
	JobsPending      *prometheus.GaugeVec
	WaitDuration     *prometheus.HistogramVec
	CallbackDuration *prometheus.HistogramVec

	// Recurring Runner Metrics
	RunnerIterations *prometheus.CounterVec
	RunnerErrors     *prometheus.CounterVec
}

// DefaultRegistry is the default metrics registry used by timely components.
var DefaultRegistry *Registry

func init() {
	DefaultRegistry = NewRegistry(prometheus.DefaultRegisterer)
}

// NewRegistry creates a new metrics registry with the given Prometheus registerer.
func NewRegistry(reg prometheus.Registerer) *Registry {
	factory := promauto.With(reg)

	return &Registry{
		// Executor Metrics
		JobsScheduled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "timely",
				Subsystem: "executor",
				Name:      "jobs_scheduled_total",
				Help:      "Total number of jobs scheduled",
			},
			[]string{"executor_name"},
		),

		JobsCompleted: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "timely",
				Subsystem: "executor",
				Name:      "jobs_completed_total",
				Help:      "Total number of jobs whose callback ran and returned nil",
			},
			[]string{"executor_name"},
		),

		JobsFailed: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "timely",
				Subsystem: "executor",
				Name:      "jobs_failed_total",
				Help:      "Total number of jobs whose callback returned an error or panicked",
			},
			[]string{"executor_name"},
		),

		JobsCancelled: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "timely",
				Subsystem: "executor",
				Name:      "jobs_cancelled_total",
				Help:      "Total number of jobs cancelled before or during execution",
			},
			[]string{"executor_name"},
		),

		JobsPending: factory.NewGaugeVec(
			prometheus.GaugeOpts{
				Namespace: "timely",
				Subsystem: "executor",
				Name:      "jobs_pending",
				Help:      "Number of jobs currently pending or running",
			},
			[]string{"executor_name"},
		),

		WaitDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "timely",
				Subsystem: "executor",
				Name:      "wait_duration_seconds",
				Help:      "Time from scheduling a job to its terminal state",
				Buckets:   prometheus.ExponentialBuckets(0.01, 4, 12),
			},
			[]string{"executor_name"},
		),

		CallbackDuration: factory.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: "timely",
				Subsystem: "executor",
				Name:      "callback_duration_seconds",
				Help:      "Time spent executing job callbacks",
				Buckets:   prometheus.DefBuckets,
			},
			[]string{"executor_name"},
		),

		// Recurring Runner Metrics
		RunnerIterations: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "timely",
				Subsystem: "recurring",
				Name:      "iterations_total",
				Help:      "Total number of occurrences scheduled by recurring runners",
			},
			[]string{"runner_name"},
		),

		RunnerErrors: factory.NewCounterVec(
			prometheus.CounterOpts{
				Namespace: "timely",
				Subsystem: "recurring",
				Name:      "errors_total",
				Help:      "Total number of failed occurrences in recurring runners",
			},
			[]string{"runner_name"},
		),
	}
}
