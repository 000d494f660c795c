package nav

import "sync"

// ScrollTracker coalesces scroll events the way a frame scheduler would:
// any number of Track calls between flushes collapse into one applied
// update, so the scrolled flag flips at most once per frame.
type ScrollTracker struct {
	mu        sync.Mutex
	pending   int
	scheduled bool
	offset    int
}

// Track records the latest scroll offset. It returns true when the caller
// should schedule a flush; while one is already scheduled further calls
// only overwrite the pending offset.
func (t *ScrollTracker) Track(offset int) bool {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.pending = offset
	if t.scheduled {
		return false
	}
	t.scheduled = true
	return true
}

// Flush applies the most recent pending offset and clears the schedule
func (t *ScrollTracker) Flush() {
	t.mu.Lock()
	defer t.mu.Unlock()

	t.offset = t.pending
	t.scheduled = false
}

// Offset returns the last applied scroll offset
func (t *ScrollTracker) Offset() int {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.offset
}

// IsScrolled reports whether the applied offset has passed the threshold
func (t *ScrollTracker) IsScrolled() bool {
	t.mu.Lock()
	defer t.mu.Unlock()
	return t.offset > ScrollThreshold
}
