package input

import "time"

// Snapshot is the pressed-key set sampled once per simulation tick
type Snapshot [keyCount]bool

// Pressed reports whether k is held in this snapshot
func (s Snapshot) Pressed(k Key) bool {
	return k < keyCount && s[k]
}

// Intent returns the raw direction in {-1,0,1} per axis
// Opposing keys cancel. Screen convention: y grows downward.
func (s Snapshot) Intent() (vx, vy float64) {
	if s[KeyLeft] {
		vx--
	}
	if s[KeyRight] {
		vx++
	}
	if s[KeyUp] {
		vy--
	}
	if s[KeyDown] {
		vy++
	}
	return vx, vy
}

// Any reports whether any key is held
func (s Snapshot) Any() bool {
	for _, p := range s {
		if p {
			return true
		}
	}
	return false
}

// State tracks which movement keys are currently down
// Backends with real key-up events use Press/Release. Backends that only see
// key-down repeats use PressUntil and Expire: a key stays held until its
// deadline passes without a new repeat.
// Not safe for concurrent use; the writer and the tick reader share one goroutine.
type State struct {
	pressed  [keyCount]bool
	deadline [keyCount]time.Time
}

// Press marks k as held with no deadline
func (s *State) Press(k Key) {
	if k >= keyCount {
		return
	}
	s.pressed[k] = true
	s.deadline[k] = time.Time{}
}

// PressUntil marks k as held until the given deadline
func (s *State) PressUntil(k Key, deadline time.Time) {
	if k >= keyCount {
		return
	}
	s.pressed[k] = true
	s.deadline[k] = deadline
}

// Held reports whether k is currently down
func (s *State) Held(k Key) bool {
	return k < keyCount && s.pressed[k]
}

// Release marks k as up
func (s *State) Release(k Key) {
	if k >= keyCount {
		return
	}
	s.pressed[k] = false
	s.deadline[k] = time.Time{}
}

// Expire releases every key whose deadline is at or before now
func (s *State) Expire(now time.Time) {
	for k := range s.pressed {
		if s.pressed[k] && !s.deadline[k].IsZero() && !now.Before(s.deadline[k]) {
			s.pressed[k] = false
			s.deadline[k] = time.Time{}
		}
	}
}

// Clear releases all keys, used when focus is lost
func (s *State) Clear() {
	*s = State{}
}

// Snapshot returns the current pressed-key set
func (s *State) Snapshot() Snapshot {
	return Snapshot(s.pressed)
}
