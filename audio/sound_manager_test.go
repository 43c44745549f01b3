package audio

import (
	"math"
	"testing"
	"time"

	"github.com/gopxl/beep"

	"github.com/lixenwraith/gravitor/engine"
	"github.com/lixenwraith/gravitor/vmath"
)

// drain streams s to exhaustion and returns the sample count and peak amplitude
func drain(t *testing.T, s beep.Streamer) (int, float64) {
	t.Helper()
	buf := make([][2]float64, 512)
	total, peak := 0, 0.0
	for i := 0; i < 10000; i++ {
		n, ok := s.Stream(buf)
		for _, smp := range buf[:n] {
			peak = math.Max(peak, math.Max(math.Abs(smp[0]), math.Abs(smp[1])))
		}
		total += n
		if !ok {
			return total, peak
		}
	}
	t.Fatal("streamer never drained")
	return 0, 0
}

func TestCueLengths(t *testing.T) {
	for cue := Cue(0); cue < cueCount; cue++ {
		t.Run(cue.String(), func(t *testing.T) {
			s := NewCue(cue, sampleRate)
			if s == nil {
				t.Fatal("NewCue returned nil")
			}
			n, peak := drain(t, s)
			want := sampleRate.N(CueDuration(cue))
			if diff := n - want; diff < -2 || diff > 2 {
				t.Errorf("cue length = %d samples, want ~%d", n, want)
			}
			if peak == 0 || peak > 2 {
				t.Errorf("peak amplitude = %v", peak)
			}
		})
	}
}

func TestUnknownCue(t *testing.T) {
	if NewCue(Cue(99), sampleRate) != nil {
		t.Error("NewCue(99) returned a streamer")
	}
	if Cue(99).String() != "Unknown" {
		t.Errorf("Cue(99).String() = %q", Cue(99).String())
	}
}

func TestEnvelopeRamps(t *testing.T) {
	rate := beep.SampleRate(1000)
	d := 100 * time.Millisecond

	// A 0 Hz square stays at +1, so the output is the envelope itself
	env := NewEnvelope(NewOscillator(0, d, WaveSquare, rate), d, 10*time.Millisecond, 20*time.Millisecond, rate)
	buf := make([][2]float64, 100)
	n, _ := env.Stream(buf)
	if n != 100 {
		t.Fatalf("streamed %d samples, want 100", n)
	}
	if buf[0][0] != 0 {
		t.Errorf("first sample = %v, want 0 at attack start", buf[0][0])
	}
	if buf[50][0] != 1 {
		t.Errorf("sustain sample = %v, want 1", buf[50][0])
	}
	if v := buf[99][0]; v <= 0 || v > 0.1 {
		t.Errorf("last sample = %v, want near 0 at release end", v)
	}
}

func TestCueForEvent(t *testing.T) {
	tests := []struct {
		ev   engine.EventType
		cue  Cue
		want bool
	}{
		{engine.EventAsteroidCaptured, CueCapture, true},
		{engine.EventAsteroidWellCaptured, CueWellCapture, true},
		{engine.EventAsteroidEscaped, CueEscape, true},
		{engine.EventAsteroidSpawned, 0, false},
		{engine.EventWellOpened, 0, false},
		{engine.EventWellExpired, 0, false},
	}
	for _, tt := range tests {
		cue, ok := CueForEvent(tt.ev)
		if ok != tt.want || (ok && cue != tt.cue) {
			t.Errorf("CueForEvent(%v) = %v, %v", tt.ev, cue, ok)
		}
	}
}

// TestSoundManagerGracefulDegradation verifies cues are dropped without a speaker
func TestSoundManagerGracefulDegradation(t *testing.T) {
	sm := NewSoundManager(0, nil)

	sm.HandleEvent(engine.Event{Type: engine.EventAsteroidCaptured})
	sm.Play(CueEscape)
	sm.Cleanup()

	if sm.Played(CueCapture) != 0 || sm.Played(CueEscape) != 0 {
		t.Error("cues counted while uninitialized")
	}
	if sm.mixer.Len() != 0 {
		t.Errorf("mixer holds %d streamers", sm.mixer.Len())
	}
}

// TestSoundManagerQueuesCues drives the mixer directly, no audio device needed
func TestSoundManagerQueuesCues(t *testing.T) {
	sm := NewSoundManager(-1, nil)
	sm.initialized = true

	sm.HandleEvent(engine.Event{Type: engine.EventAsteroidCaptured})
	sm.HandleEvent(engine.Event{Type: engine.EventAsteroidCaptured})
	sm.HandleEvent(engine.Event{Type: engine.EventAsteroidEscaped})
	sm.HandleEvent(engine.Event{Type: engine.EventWellOpened})

	if got := sm.Played(CueCapture); got != 2 {
		t.Errorf("Played(Capture) = %d, want 2", got)
	}
	if got := sm.Played(CueEscape); got != 1 {
		t.Errorf("Played(Escape) = %d, want 1", got)
	}
	if got := sm.Played(Cue(-1)); got != 0 {
		t.Errorf("Played(-1) = %d", got)
	}
	if sm.mixer.Len() != 3 {
		t.Errorf("mixer holds %d streamers, want 3", sm.mixer.Len())
	}
}

func TestSoundManagerMute(t *testing.T) {
	sm := NewSoundManager(0, nil)
	sm.initialized = true

	if !sm.ToggleMute() {
		t.Fatal("ToggleMute() = false, want muted")
	}
	sm.Play(CueCapture)
	if sm.Played(CueCapture) != 0 {
		t.Error("muted manager queued a cue")
	}

	if sm.ToggleMute() {
		t.Fatal("second ToggleMute() = true")
	}
	sm.Play(CueCapture)
	if sm.Played(CueCapture) != 1 {
		t.Error("unmuted manager dropped a cue")
	}
}

// TestSoundManagerAsGameHandler checks a captured asteroid reaches the mixer
func TestSoundManagerAsGameHandler(t *testing.T) {
	cfg := engine.DefaultConfig()
	cfg.Spawn.IntervalTicks = 0
	g, err := engine.NewGame(cfg, nil)
	if err != nil {
		t.Fatalf("NewGame: %v", err)
	}

	sm := NewSoundManager(0, nil)
	sm.initialized = true
	g.AddHandler(sm)

	c := g.Snapshot().Planet.Location
	g.AddAsteroid(c.Add(vmath.NewVector(-200, 0)), vmath.NewVector(50, 0), 6)
	for i := 0; i < 300 && sm.Played(CueCapture) == 0; i++ {
		g.Step()
	}
	if sm.Played(CueCapture) != 1 {
		t.Errorf("Played(Capture) = %d after head-on approach", sm.Played(CueCapture))
	}
}
