package constants

import "time"

// Audio Device
const (
	AudioSampleRate = 48000
	AudioBufferSize = 100 * time.Millisecond
)

// Collect Chime Timing
const (
	ChimeNoteDuration = 90 * time.Millisecond
	ChimeAttack       = 5 * time.Millisecond
	ChimeRelease      = 60 * time.Millisecond
	ChimeVolume       = 0.18
)

// Gate Sweep Timing
const (
	SweepDuration = 350 * time.Millisecond
	SweepLowHz    = 180.0
	SweepHighHz   = 720.0
	SweepVolume   = 0.12
)
