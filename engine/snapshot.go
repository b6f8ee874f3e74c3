package engine

import (
	"sync/atomic"

	"github.com/lixenwraith/tilefolio/world"
)

// Snapshot is an immutable copy of the observable game state
// It is published after every frame and click for readers on other goroutines.
type Snapshot struct {
	Frame     int64      `json:"frame"`
	X         float64    `json:"x"`
	Y         float64    `json:"y"`
	Dir       Direction  `json:"dir"`
	Zone      world.Zone `json:"zone"`
	Collected []string   `json:"collected"`
	Popup     string     `json:"popup,omitempty"`
	Paused    bool       `json:"paused"`
}

// Has reports whether the snapshot lists id as collected
func (s *Snapshot) Has(id string) bool {
	for _, c := range s.Collected {
		if c == id {
			return true
		}
	}
	return false
}

// SnapshotStore holds the latest published snapshot
type SnapshotStore struct {
	latest atomic.Pointer[Snapshot]
}

// Publish replaces the latest snapshot
func (s *SnapshotStore) Publish(snap *Snapshot) {
	s.latest.Store(snap)
}

// Load returns the latest snapshot, nil before the first publish
func (s *SnapshotStore) Load() *Snapshot {
	return s.latest.Load()
}
