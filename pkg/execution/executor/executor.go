package executor

import (
	"context"
	"errors"
	"fmt"
	"runtime/debug"
	"sync"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
)

// JobID uniquely identifies a scheduled job. Ids are generated internally
// and never reused while the job is pending.
type JobID string

func newJobID() JobID {
	return JobID(uuid.NewString())
}

// Callback is the work a job performs at its scheduled time. The context
// carries the job's cancellation signal; a callback that wants to stop
// promptly on Cancel or Dispose must observe it at its own suspension
// points. Returning the context's cancellation error counts as a
// cooperative cancellation, not a failure.
type Callback func(ctx context.Context) error

// Executor schedules callbacks for execution at future wall-clock times.
type Executor interface {
	// Schedule registers cb to run at the given time and spawns its worker
	// immediately. It never blocks on the wait or the callback. A time in
	// the past runs the callback right away.
	Schedule(at time.Time, cb Callback) (JobID, *Handle, error)

	// ScheduleAfter registers cb to run after the given delay.
	ScheduleAfter(delay time.Duration, cb Callback) (JobID, *Handle, error)

	// Cancel requests cancellation of a pending job. It returns true only
	// when the request prevented the callback from running. False means the
	// id is unknown, the job already finished, or its callback has already
	// started; in the last case the cancellation signal is still delivered
	// so a cooperating callback can unwind.
	Cancel(id JobID) (bool, error)

	// CancelAll cancels every pending job, best-effort.
	CancelAll() error

	// Len returns the number of jobs currently pending or running.
	Len() int

	// Dispose cancels every pending job and permanently shuts the executor
	// down. It is idempotent and does not block waiting for workers to
	// unwind; callers that need that wait on each job's Handle.
	Dispose()
}

// Config holds executor configuration.
type Config struct {
	// MaxWaitInterval caps a single timer wait inside the delay loop.
	// Defaults to DefaultMaxWaitInterval.
	MaxWaitInterval time.Duration

	// Logger receives callback failures, panics and internal consistency
	// reports. Nil disables logging.
	Logger *zerolog.Logger
}

type executor struct {
	maxInterval time.Duration
	log         zerolog.Logger
	reg         *registry

	mu       sync.Mutex
	disposed bool
}

// New creates an executor with default configuration.
func New() Executor {
	return NewWithConfig(Config{})
}

// NewWithConfig creates an executor with custom configuration.
func NewWithConfig(cfg Config) Executor {
	maxInterval := cfg.MaxWaitInterval
	if maxInterval <= 0 {
		maxInterval = DefaultMaxWaitInterval
	}

	log := zerolog.Nop()
	if cfg.Logger != nil {
		log = *cfg.Logger
	}

	return &executor{
		maxInterval: maxInterval,
		log:         log,
		reg:         newRegistry(),
	}
}

func (e *executor) Schedule(at time.Time, cb Callback) (JobID, *Handle, error) {
	if cb == nil {
		return "", nil, ErrNilCallback
	}
	if at.IsZero() {
		return "", nil, ErrZeroTime
	}

	// The disposed check and the insert share one critical section so a
	// concurrent Dispose either rejects this job or cancels it.
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return "", nil, ErrDisposed
	}

	j := &job{
		id:     newJobID(),
		at:     at,
		cb:     cb,
		ctl:    newController(),
		handle: newHandle(),
	}
	if err := e.reg.insert(j.id, j); err != nil {
		e.mu.Unlock()
		j.ctl.release()
		return "", nil, err
	}
	e.mu.Unlock()

	go e.run(j)
	return j.id, j.handle, nil
}

func (e *executor) ScheduleAfter(delay time.Duration, cb Callback) (JobID, *Handle, error) {
	return e.Schedule(time.Now().Add(delay), cb)
}

func (e *executor) Cancel(id JobID) (bool, error) {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return false, ErrDisposed
	}
	e.mu.Unlock()

	j, ok := e.reg.lookup(id)
	if !ok {
		return false, nil
	}
	return j.ctl.requestCancel(), nil
}

func (e *executor) CancelAll() error {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return ErrDisposed
	}
	e.mu.Unlock()

	e.cancelAll()
	return nil
}

// cancelAll requests cancellation of every registered job. It skips the
// disposed check so Dispose can use it after flipping the flag.
func (e *executor) cancelAll() int {
	jobs := e.reg.snapshot()
	for _, j := range jobs {
		j.ctl.requestCancel()
	}
	return len(jobs)
}

func (e *executor) Len() int {
	return e.reg.len()
}

func (e *executor) Dispose() {
	e.mu.Lock()
	if e.disposed {
		e.mu.Unlock()
		return
	}
	e.disposed = true
	e.mu.Unlock()

	n := e.cancelAll()
	if n > 0 {
		e.log.Debug().Int("pending", n).Msg("executor disposed, pending jobs cancelled")
	}
}

// run is the per-job worker. Whatever happens, the job leaves the registry
// exactly once and its handle resolves exactly once.
func (e *executor) run(j *job) {
	defer j.ctl.release()

	ctx := j.ctl.signal()

	if waitUntil(ctx, j.at, e.maxInterval) == waitCancelled {
		e.finish(j, OutcomeCancelled, nil)
		return
	}

	if !j.ctl.closeWindow() {
		// Cancellation won the race with the end of the wait.
		e.finish(j, OutcomeCancelled, nil)
		return
	}

	err := invoke(ctx, j.cb)
	switch {
	case err == nil:
		e.finish(j, OutcomeCompleted, nil)
	case ctx.Err() != nil && errors.Is(err, context.Canceled):
		// The callback observed the cancellation signal and unwound.
		e.finish(j, OutcomeCancelled, nil)
	default:
		e.log.Error().
			Err(err).
			Str("job_id", string(j.id)).
			Time("scheduled_at", j.at).
			Msg("callback failed")
		e.finish(j, OutcomeFailed, err)
	}
}

// invoke runs the callback, converting a panic into an error so one job can
// never take down another or the executor itself.
func invoke(ctx context.Context, cb Callback) (err error) {
	defer func() {
		if r := recover(); r != nil {
			err = fmt.Errorf("callback panicked: %v\nStack trace:\n%s", r, debug.Stack())
		}
	}()

	return cb(ctx)
}

// finish removes the job from the registry and resolves its handle. An id
// already absent at this point is an internal invariant violation; it is
// reported but never crashes the worker.
func (e *executor) finish(j *job, outcome Outcome, err error) {
	if _, ok := e.reg.remove(j.id); !ok {
		e.log.Error().
			Str("job_id", string(j.id)).
			Str("outcome", outcome.String()).
			Msg("job missing from registry at completion")
	}
	j.handle.resolve(outcome, err)
}
