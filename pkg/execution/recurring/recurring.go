package recurring

import (
	"errors"
	"fmt"
	"sync"
	"time"

	"github.com/robfig/cron/v3"
	"github.com/rs/zerolog"

	"github.com/vnykmshr/timely/pkg/execution/executor"
)

// Schedule computes activation times. It is robfig's cron.Schedule, so
// interval and cron schedules share one representation.
type Schedule = cron.Schedule

// cronParser accepts the six-field format with a seconds column.
var cronParser = cron.NewParser(cron.Second | cron.Minute | cron.Hour | cron.Dom | cron.Month | cron.Dow)

// Cron parses a six-field cron expression (seconds minutes hours dom month
// dow) into a Schedule.
func Cron(expr string) (Schedule, error) {
	if expr == "" {
		return nil, fmt.Errorf("cron expression cannot be empty")
	}

	schedule, err := cronParser.Parse(expr)
	if err != nil {
		return nil, fmt.Errorf("invalid cron expression: %w", err)
	}
	return schedule, nil
}

// intervalSchedule activates at a fixed delay after the previous
// activation. Unlike cron.Every it keeps full Duration resolution instead
// of rounding to whole seconds.
type intervalSchedule struct {
	interval time.Duration
}

func (s intervalSchedule) Next(t time.Time) time.Time {
	return t.Add(s.interval)
}

// Every returns a schedule that activates on a fixed interval.
func Every(interval time.Duration) Schedule {
	return intervalSchedule{interval: interval}
}

// Config holds runner configuration.
type Config struct {
	// Logger receives occurrence failures. Nil disables logging.
	Logger *zerolog.Logger

	// Location is the time zone used to evaluate the schedule.
	// Defaults to time.Local.
	Location *time.Location
}

// Runner repeatedly re-schedules a callback through an Executor: it
// computes the next activation time, schedules one job for it, waits for
// that job's handle, and loops until Stop is called or the executor goes
// away. The executor itself has no notion of recurrence.
type Runner struct {
	exec     executor.Executor
	sched    Schedule
	cb       executor.Callback
	log      zerolog.Logger
	location *time.Location

	mu      sync.Mutex
	running bool
	done    chan struct{}
	stopped chan struct{}
}

// New creates a runner with default configuration.
func New(exec executor.Executor, sched Schedule, cb executor.Callback) *Runner {
	return NewWithConfig(exec, sched, cb, Config{})
}

// NewWithConfig creates a runner with custom configuration.
func NewWithConfig(exec executor.Executor, sched Schedule, cb executor.Callback, cfg Config) *Runner {
	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	location := cfg.Location
	if location == nil {
		location = time.Local
	}

	return &Runner{
		exec:     exec,
		sched:    sched,
		cb:       cb,
		log:      log,
		location: location,
	}
}

// Start begins the scheduling loop.
func (r *Runner) Start() error {
	if r.exec == nil {
		return fmt.Errorf("executor cannot be nil")
	}
	if r.sched == nil {
		return fmt.Errorf("schedule cannot be nil")
	}
	if r.cb == nil {
		return fmt.Errorf("callback cannot be nil")
	}

	r.mu.Lock()
	defer r.mu.Unlock()

	if r.running {
		return fmt.Errorf("runner already running, call Stop() first")
	}

	r.running = true
	r.done = make(chan struct{})
	r.stopped = make(chan struct{})

	// The loop works on its own generation of channels so a later Start
	// can reassign the fields while an old loop is still unwinding.
	go r.run(r.done, r.stopped)
	return nil
}

// Stop requests the loop to end, cancelling any in-flight occurrence. The
// returned channel closes once the loop has exited.
func (r *Runner) Stop() <-chan struct{} {
	r.mu.Lock()
	if r.running {
		r.running = false
		close(r.done)
	}
	stopped := r.stopped
	r.mu.Unlock()

	if stopped == nil {
		// Never started.
		ch := make(chan struct{})
		close(ch)
		return ch
	}
	return stopped
}

func (r *Runner) run(done, stopped chan struct{}) {
	defer close(stopped)

	for {
		select {
		case <-done:
			return
		default:
		}

		next := r.sched.Next(time.Now().In(r.location))
		id, handle, err := r.exec.Schedule(next, r.cb)
		if err != nil {
			if !errors.Is(err, executor.ErrDisposed) {
				r.log.Error().Err(err).Msg("scheduling next occurrence failed")
			}
			return
		}

		select {
		case <-done:
			r.exec.Cancel(id)
			return
		case <-handle.Done():
		}

		switch handle.Outcome() {
		case executor.OutcomeFailed:
			// Occurrence errors are isolated; the loop keeps going.
			r.log.Warn().
				Err(handle.Err()).
				Str("job_id", string(id)).
				Msg("recurring occurrence failed")
		case executor.OutcomeCancelled:
			// Executor disposed or the job was cancelled out from under us.
			return
		}
	}
}
