package audio

import (
	"log/slog"
	"sync"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/speaker"

	"github.com/lixenwraith/gravitor/engine"
	"github.com/lixenwraith/gravitor/parameter"
)

const sampleRate = beep.SampleRate(parameter.AudioSampleRate)

// SoundManager plays event cues through a single mixer on the speaker
// Every method is safe before Initialize and after Cleanup; cues are then dropped
type SoundManager struct {
	mu          sync.Mutex
	mixer       *beep.Mixer
	volume      float64
	initialized bool
	muted       bool
	logger      *slog.Logger

	played [cueCount]uint64
}

// NewSoundManager creates a sound manager; volume is in beep's exponential units
func NewSoundManager(volume float64, logger *slog.Logger) *SoundManager {
	if logger == nil {
		logger = slog.New(slog.DiscardHandler)
	}
	return &SoundManager{
		mixer:  &beep.Mixer{},
		volume: volume,
		logger: logger.With("component", "audio"),
	}
}

// Initialize opens the speaker; a missing audio device is returned, not fatal
func (sm *SoundManager) Initialize() error {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if sm.initialized {
		return nil
	}

	if err := speaker.Init(sampleRate, sampleRate.N(parameter.AudioBufferTime)); err != nil {
		return err
	}

	speaker.Play(sm.mixer)
	sm.initialized = true
	sm.logger.Info("audio initialized", "rate", int(sampleRate), "volume", sm.volume)
	return nil
}

// Cleanup silences pending cues; beep has no speaker close, so the mixer is just emptied
func (sm *SoundManager) Cleanup() {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized {
		return
	}
	speaker.Lock()
	sm.mixer.Clear()
	speaker.Unlock()
	sm.initialized = false
}

// Play queues a cue on the mixer
func (sm *SoundManager) Play(cue Cue) {
	sm.mu.Lock()
	defer sm.mu.Unlock()

	if !sm.initialized || sm.muted {
		return
	}
	s := NewCue(cue, sampleRate)
	if s == nil {
		return
	}
	sm.played[cue]++

	speaker.Lock()
	sm.mixer.Add(newVolume(s, sm.volume))
	speaker.Unlock()
}

// ToggleMute flips effect muting and returns the new state; queued cues finish playing
func (sm *SoundManager) ToggleMute() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	sm.muted = !sm.muted
	sm.logger.Info("audio mute", "muted", sm.muted)
	return sm.muted
}

func (sm *SoundManager) IsMuted() bool {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	return sm.muted
}

// Played returns how many times a cue has been queued
func (sm *SoundManager) Played(cue Cue) uint64 {
	sm.mu.Lock()
	defer sm.mu.Unlock()
	if cue < 0 || cue >= cueCount {
		return 0
	}
	return sm.played[cue]
}

// HandleEvent maps game events to cues
func (sm *SoundManager) HandleEvent(ev engine.Event) {
	if cue, ok := CueForEvent(ev.Type); ok {
		sm.Play(cue)
	}
}

// CueForEvent returns the cue for an event type; most events are silent
func CueForEvent(t engine.EventType) (Cue, bool) {
	switch t {
	case engine.EventAsteroidCaptured:
		return CueCapture, true
	case engine.EventAsteroidWellCaptured:
		return CueWellCapture, true
	case engine.EventAsteroidEscaped:
		return CueEscape, true
	default:
		return 0, false
	}
}
