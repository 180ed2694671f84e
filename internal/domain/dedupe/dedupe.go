// Package dedupe tracks request fingerprints so identical sweep submissions
// collapse onto a single job instead of being computed twice.
package dedupe

import (
	"context"
	"sync"
)

// Tracker maps request fingerprints to the job id already covering them.
// All methods are safe for concurrent use.
type Tracker interface {
	// Lookup returns the job id recorded for fp, if any.
	Lookup(ctx context.Context, fp string) (string, bool)

	// Record associates fp with jobID. When the tracker is full, the oldest
	// association is evicted first.
	Record(ctx context.Context, fp string, jobID string)

	// Forget drops fp so the request can be resubmitted. Used when a job
	// could not be enqueued or its result has been evicted.
	Forget(ctx context.Context, fp string)

	// Size returns the number of fingerprints currently tracked.
	Size() int
}

// inMemoryTracker implements Tracker with a map plus a FIFO ring of
// fingerprints for bounded eviction. A forgotten fingerprint keeps its ring
// slot until the slot is overwritten, so re-recording it must not append a
// second slot; slots tracks occupancy.
type inMemoryTracker struct {
	mu      sync.RWMutex
	jobs    map[string]string
	slots   map[string]struct{} // fingerprints holding a ring slot
	order   []string            // ring buffer of fingerprints in insertion order
	head    int                 // next slot to overwrite once the ring is full
	maxSize int
}

// NewInMemoryTracker creates a tracker holding at most maxSize fingerprints
// (adjustable via options).
func NewInMemoryTracker(opts ...Option) Tracker {
	t := &inMemoryTracker{
		maxSize: 10000,
	}
	for _, opt := range opts {
		opt(t)
	}
	t.jobs = make(map[string]string, t.maxSize)
	t.slots = make(map[string]struct{}, t.maxSize)
	t.order = make([]string, 0, t.maxSize)
	return t
}

func (t *inMemoryTracker) Lookup(_ context.Context, fp string) (string, bool) {
	t.mu.RLock()
	defer t.mu.RUnlock()
	id, ok := t.jobs[fp]
	return id, ok
}

func (t *inMemoryTracker) Record(_ context.Context, fp, jobID string) {
	t.mu.Lock()
	defer t.mu.Unlock()

	if _, occupied := t.slots[fp]; occupied {
		// fp still holds a ring slot, possibly from before a Forget.
		t.jobs[fp] = jobID
		return
	}

	if len(t.order) < t.maxSize {
		t.order = append(t.order, fp)
	} else {
		// Ring is full: evict the oldest fingerprint and reuse its slot.
		evicted := t.order[t.head]
		delete(t.jobs, evicted)
		delete(t.slots, evicted)
		t.order[t.head] = fp
		t.head = (t.head + 1) % t.maxSize
	}
	t.slots[fp] = struct{}{}
	t.jobs[fp] = jobID
}

func (t *inMemoryTracker) Forget(_ context.Context, fp string) {
	t.mu.Lock()
	defer t.mu.Unlock()
	// The ring slot stays occupied until it is overwritten; only the map
	// entry controls lookups.
	delete(t.jobs, fp)
}

func (t *inMemoryTracker) Size() int {
	t.mu.RLock()
	defer t.mu.RUnlock()
	return len(t.jobs)
}
