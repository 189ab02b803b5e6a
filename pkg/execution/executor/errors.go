package executor

import "errors"

// Errors returned synchronously by Executor methods. Callback failures are
// never returned this way; they resolve the job's Handle and are logged.

var (
	// ErrDisposed indicates that a method was called after Dispose.
	ErrDisposed = errors.New("executor has been disposed")

	// ErrNilCallback indicates that Schedule was called with a nil callback.
	ErrNilCallback = errors.New("callback cannot be nil")

	// ErrZeroTime indicates that Schedule was called with the zero time.
	ErrZeroTime = errors.New("scheduled time cannot be zero")

	// ErrDuplicateJob indicates that a job id was registered twice.
	// Job ids are generated internally, so hitting this is a bug.
	ErrDuplicateJob = errors.New("job id already registered")
)
