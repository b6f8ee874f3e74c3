package engine

import (
	"log/slog"
	"time"
)

// Announcement is one message for assistive narration
type Announcement struct {
	Text string
	At   time.Time
}

// StatusRegion collects zone and collection announcements
// It stands in for a screen-reader live region: backends show the latest
// entry on the status line and every entry is also written to the log.
type StatusRegion struct {
	clock   TimeProvider
	logger  *slog.Logger
	entries []Announcement
	next    int
	count   int
}

// NewStatusRegion creates a region retaining the last capacity announcements
func NewStatusRegion(capacity int, clock TimeProvider, logger *slog.Logger) *StatusRegion {
	if capacity < 1 {
		capacity = 1
	}
	return &StatusRegion{
		clock:   clock,
		logger:  logger,
		entries: make([]Announcement, capacity),
	}
}

// Announce records a message
func (s *StatusRegion) Announce(text string) {
	s.entries[s.next] = Announcement{Text: text, At: s.clock.Now()}
	s.next = (s.next + 1) % len(s.entries)
	if s.count < len(s.entries) {
		s.count++
	}
	s.logger.Info("announce", "text", text)
}

// Latest returns the most recent announcement
func (s *StatusRegion) Latest() (Announcement, bool) {
	if s.count == 0 {
		return Announcement{}, false
	}
	i := (s.next - 1 + len(s.entries)) % len(s.entries)
	return s.entries[i], true
}

// Recent returns retained announcements, oldest first
func (s *StatusRegion) Recent() []Announcement {
	out := make([]Announcement, 0, s.count)
	start := (s.next - s.count + len(s.entries)) % len(s.entries)
	for i := 0; i < s.count; i++ {
		out = append(out, s.entries[(start+i)%len(s.entries)])
	}
	return out
}
