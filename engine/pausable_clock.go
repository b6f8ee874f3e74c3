package engine

import (
	"sync"
	"time"
)

// PausableClock is session time that stands still while paused
// Backends pause it when the terminal or window loses focus so the frame
// delta of the first frame after refocus is zero instead of the whole absence.
type PausableClock struct {
	mu sync.Mutex

	source TimeProvider
	// frozenAt is the source reading when the current pause began, zero when running
	frozenAt time.Time
	// lost accumulates completed pauses
	lost time.Duration
}

// NewPausableClock creates a running clock reading from source
func NewPausableClock(source TimeProvider) *PausableClock {
	return &PausableClock{source: source}
}

// Now returns the source time minus all time spent paused
func (pc *PausableClock) Now() time.Time {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if !pc.frozenAt.IsZero() {
		return pc.frozenAt.Add(-pc.lost)
	}
	return pc.source.Now().Add(-pc.lost)
}

// Pause freezes Now; pausing twice is a no-op
func (pc *PausableClock) Pause() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.frozenAt.IsZero() {
		pc.frozenAt = pc.source.Now()
	}
}

// Resume lets Now advance again from where it froze
func (pc *PausableClock) Resume() {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.frozenAt.IsZero() {
		return
	}
	pc.lost += pc.source.Now().Sub(pc.frozenAt)
	pc.frozenAt = time.Time{}
}

func (pc *PausableClock) IsPaused() bool {
	pc.mu.Lock()
	defer pc.mu.Unlock()
	return !pc.frozenAt.IsZero()
}

// TotalPauseDuration includes a pause in progress
func (pc *PausableClock) TotalPauseDuration() time.Duration {
	pc.mu.Lock()
	defer pc.mu.Unlock()

	if pc.frozenAt.IsZero() {
		return pc.lost
	}
	return pc.lost + pc.source.Now().Sub(pc.frozenAt)
}
