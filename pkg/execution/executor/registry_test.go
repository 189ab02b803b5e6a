package executor

import (
	"errors"
	"fmt"
	"sync"
	"testing"
	"time"

	"github.com/vnykmshr/timely/internal/testutil"
)

func testJob(id JobID) *job {
	return &job{
		id:     id,
		at:     time.Now(),
		ctl:    newController(),
		handle: newHandle(),
	}
}

func TestRegistryInsertAndLookup(t *testing.T) {
	reg := newRegistry()
	j := testJob("a")

	testutil.AssertNoError(t, reg.insert(j.id, j))
	testutil.AssertEqual(t, reg.len(), 1)

	got, ok := reg.lookup("a")
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, got == j, true)

	_, ok = reg.lookup("b")
	testutil.AssertEqual(t, ok, false)
}

func TestRegistryDuplicateInsert(t *testing.T) {
	reg := newRegistry()
	testutil.AssertNoError(t, reg.insert("a", testJob("a")))

	err := reg.insert("a", testJob("a"))
	if !errors.Is(err, ErrDuplicateJob) {
		t.Fatalf("got %v, want ErrDuplicateJob", err)
	}
}

func TestRegistryRemoveExactlyOnce(t *testing.T) {
	reg := newRegistry()
	j := testJob("a")
	testutil.AssertNoError(t, reg.insert(j.id, j))

	got, ok := reg.remove("a")
	testutil.AssertEqual(t, ok, true)
	testutil.AssertEqual(t, got == j, true)

	_, ok = reg.remove("a")
	testutil.AssertEqual(t, ok, false)
	testutil.AssertEqual(t, reg.len(), 0)
}

func TestRegistrySnapshot(t *testing.T) {
	reg := newRegistry()
	for i := 0; i < 5; i++ {
		id := JobID(fmt.Sprintf("job-%d", i))
		testutil.AssertNoError(t, reg.insert(id, testJob(id)))
	}

	snap := reg.snapshot()
	testutil.AssertEqual(t, len(snap), 5)

	// Mutations after the snapshot do not affect it.
	reg.remove("job-0")
	testutil.AssertEqual(t, len(snap), 5)
	testutil.AssertEqual(t, reg.len(), 4)
}

func TestRegistryConcurrentUse(t *testing.T) {
	reg := newRegistry()
	const numJobs = 200

	var wg sync.WaitGroup
	for i := 0; i < numJobs; i++ {
		wg.Add(1)
		go func(n int) {
			defer wg.Done()
			id := JobID(fmt.Sprintf("job-%d", n))
			if err := reg.insert(id, testJob(id)); err != nil {
				t.Error(err)
			}
		}(i)
	}
	wg.Wait()
	testutil.AssertEqual(t, reg.len(), numJobs)

	// Two goroutines race to remove each id; exactly one must win.
	var removed int64
	var mu sync.Mutex
	for i := 0; i < numJobs; i++ {
		for r := 0; r < 2; r++ {
			wg.Add(1)
			go func(n int) {
				defer wg.Done()
				if _, ok := reg.remove(JobID(fmt.Sprintf("job-%d", n))); ok {
					mu.Lock()
					removed++
					mu.Unlock()
				}
			}(i)
		}
	}
	wg.Wait()

	testutil.AssertEqual(t, removed, int64(numJobs))
	testutil.AssertEqual(t, reg.len(), 0)
}
