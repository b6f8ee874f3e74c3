package audio

import (
	"io"
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/tilefolio/constants"
)

const (
	sampleRate = beep.SampleRate(constants.AudioSampleRate)
)

// SoundManager plays the game's audio cues
// Every method is safe before Initialize and after Cleanup; cues are dropped
// while the speaker is unavailable or muted.
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	initialized bool
	muted       bool
	volume      float64
	logger      *slog.Logger
}

// NewSoundManager creates a new sound manager at full master volume
func NewSoundManager(logger *slog.Logger) *SoundManager {
	if logger == nil {
		logger = slog.New(slog.NewTextHandler(io.Discard, nil))
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: 1,
		logger: logger,
	}
}

// Initialize sets up the audio system
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	err := speaker.Init(sampleRate, sampleRate.N(constants.AudioBufferSize))
	if err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Debug("audio initialized", "rate", int(sampleRate))
	return nil
}

// Cleanup stops all sounds and closes the speaker
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}

	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	speaker.Close()
	sm.initialized = false
}

// SetMuted drops subsequent cues while muted
func (sm *SoundManager) SetMuted(muted bool) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = muted
}

// SetVolume sets the master volume, clamped to [0,1]
func (sm *SoundManager) SetVolume(v float64) {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.volume = min(max(v, 0), 1)
}

// Enabled reports whether cues reach the speaker
func (sm *SoundManager) Enabled() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.initialized && !sm.muted && sm.volume > 0
}

// PlayCollect plays the rising chime for a first-time item find
func (sm *SoundManager) PlayCollect() {
	sm.play(NewChime(sampleRate))
}

// PlayGate plays the whoosh of a gate teleport
func (sm *SoundManager) PlayGate() {
	sm.play(NewSweep(sampleRate))
}

func (sm *SoundManager) play(s beep.Streamer) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted || sm.volume <= 0 {
		return
	}

	// Gain scales by 1+Gain
	cue := &effects.Gain{Streamer: s, Gain: sm.volume - 1}
	speaker.Lock()
	sm.mixer.Add(cue)
	speaker.Unlock()
}
