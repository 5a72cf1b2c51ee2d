package slidez

import (
	"sync"
	"time"
)

// LoadFailure records one failed media load.
type LoadFailure struct {
	URL string
	Err error
	At  time.Time
}

// failureRing keeps the most recent load failures, oldest first. A nil ring
// discards everything.
type failureRing struct {
	mu    sync.RWMutex
	items []LoadFailure
	head  int
	count int
}

func newFailureRing(size int) *failureRing {
	if size <= 0 {
		return nil
	}
	return &failureRing{items: make([]LoadFailure, size)}
}

func (r *failureRing) push(f LoadFailure) {
	if r == nil {
		return
	}
	r.mu.Lock()
	defer r.mu.Unlock()

	r.items[r.head] = f
	r.head = (r.head + 1) % len(r.items)
	if r.count < len(r.items) {
		r.count++
	}
}

func (r *failureRing) all() []LoadFailure {
	if r == nil {
		return nil
	}
	r.mu.RLock()
	defer r.mu.RUnlock()

	if r.count == 0 {
		return nil
	}
	size := len(r.items)
	out := make([]LoadFailure, r.count)
	start := (r.head - r.count + size) % size
	for i := range out {
		out[i] = r.items[(start+i)%size]
	}
	return out
}
