package executor

import (
	"fmt"
	"sync"
	"time"
)

// job is a single scheduled callback invocation tracked by the registry.
// It is mutated only by its own worker and by cancellation requests.
type job struct {
	id     JobID
	at     time.Time
	cb     Callback
	ctl    *controller
	handle *Handle
}

// registry is the concurrent set of jobs that have a started worker and no
// terminal state yet. Workers, Cancel and Dispose all touch it without any
// caller-side locking.
type registry struct {
	mu   sync.RWMutex
	jobs map[JobID]*job
}

func newRegistry() *registry {
	return &registry{jobs: make(map[JobID]*job)}
}

func (r *registry) insert(id JobID, j *job) error {
	r.mu.Lock()
	defer r.mu.Unlock()

	if _, exists := r.jobs[id]; exists {
		return fmt.Errorf("insert job %s: %w", id, ErrDuplicateJob)
	}
	r.jobs[id] = j
	return nil
}

func (r *registry) lookup(id JobID) (*job, bool) {
	r.mu.RLock()
	defer r.mu.RUnlock()

	j, ok := r.jobs[id]
	return j, ok
}

// remove deletes the job and returns it. Exactly-once semantics: a second
// remover of the same id gets ok=false.
func (r *registry) remove(id JobID) (*job, bool) {
	r.mu.Lock()
	defer r.mu.Unlock()

	j, ok := r.jobs[id]
	if !ok {
		return nil, false
	}
	delete(r.jobs, id)
	return j, true
}

// snapshot returns the current jobs. The copy lets bulk cancellation walk
// the set while workers keep removing entries.
func (r *registry) snapshot() []*job {
	r.mu.RLock()
	defer r.mu.RUnlock()

	jobs := make([]*job, 0, len(r.jobs))
	for _, j := range r.jobs {
		jobs = append(jobs, j)
	}
	return jobs
}

func (r *registry) len() int {
	r.mu.RLock()
	defer r.mu.RUnlock()

	return len(r.jobs)
}
