package mock

import (
	"sync"
	"time"
)

// Time is a settable clock. Until SetCurrentTime is called it follows the wall clock.
type Time struct {
	mu      sync.RWMutex
	current time.Time
	frozen  bool
}

func NewTime() *Time {
	return &Time{}
}

func (t *Time) SetCurrentTime(currentTime time.Time) {
	t.mu.Lock()
	defer t.mu.Unlock()
	t.current = currentTime
	t.frozen = true
}

func (t *Time) Advance(d time.Duration) {
	t.mu.Lock()
	defer t.mu.Unlock()
	if !t.frozen {
		t.current = time.Now()
		t.frozen = true
	}
	t.current = t.current.Add(d)
}

func (t *Time) Now() time.Time {
	t.mu.RLock()
	defer t.mu.RUnlock()
	if !t.frozen {
		return time.Now()
	}
	return t.current
}
