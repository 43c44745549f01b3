package audio

import (
	"math"
	"time"

	"github.com/gopxl/beep"
	"github.com/gopxl/beep/effects"

	"github.com/lixenwraith/gravitor/parameter"
	"github.com/lixenwraith/gravitor/vmath"
)

// WaveType defines oscillator wave shapes
type WaveType int

const (
	WaveSine WaveType = iota
	WaveSquare
	WaveNoise
)

// Cue identifies a sound effect
type Cue int

const (
	CueCapture Cue = iota
	CueWellCapture
	CueEscape
	cueCount
)

func (c Cue) String() string {
	switch c {
	case CueCapture:
		return "Capture"
	case CueWellCapture:
		return "WellCapture"
	case CueEscape:
		return "Escape"
	default:
		return "Unknown"
	}
}

// oscillator generates a raw wave for a fixed number of samples
type oscillator struct {
	freq     float64
	phase    float64
	duration int
	position int
	wave     WaveType
	rate     beep.SampleRate
	noise    *vmath.FastRand
}

// NewOscillator creates a finite tone streamer
func NewOscillator(freq float64, duration time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	return &oscillator{
		freq:     freq,
		duration: rate.N(duration),
		wave:     wave,
		rate:     rate,
		noise:    vmath.NewFastRand(uint64(freq*1000) + 1),
	}
}

func (o *oscillator) Stream(samples [][2]float64) (n int, ok bool) {
	for i := range samples {
		if o.position >= o.duration {
			return i, i > 0
		}

		var val float64
		switch o.wave {
		case WaveSine:
			val = math.Sin(2 * math.Pi * o.phase)
		case WaveSquare:
			if o.phase < 0.5 {
				val = 1.0
			} else {
				val = -1.0
			}
		case WaveNoise:
			val = o.noise.Float64()*2 - 1
		}

		samples[i][0] = val
		samples[i][1] = val

		o.phase += o.freq / float64(o.rate)
		o.phase -= math.Floor(o.phase)
		o.position++
	}
	return len(samples), true
}

func (o *oscillator) Err() error { return nil }

// envelope applies linear attack and release to a stream
type envelope struct {
	streamer       beep.Streamer
	position       int
	attackSamples  int
	releaseSamples int
	totalSamples   int
}

// NewEnvelope shapes s over duration; attack and release are clipped to fit
func NewEnvelope(s beep.Streamer, duration, attack, release time.Duration, rate beep.SampleRate) beep.Streamer {
	total := rate.N(duration)
	att := min(rate.N(attack), total)
	rel := min(rate.N(release), total-att)
	return &envelope{
		streamer:       s,
		attackSamples:  att,
		releaseSamples: rel,
		totalSamples:   total,
	}
}

func (e *envelope) Stream(samples [][2]float64) (n int, ok bool) {
	n, ok = e.streamer.Stream(samples)

	releaseStart := e.totalSamples - e.releaseSamples
	for i := 0; i < n; i++ {
		if e.position >= e.totalSamples {
			return i, i > 0
		}

		vol := 1.0
		if e.position < e.attackSamples {
			vol = float64(e.position) / float64(e.attackSamples)
		}
		if e.position >= releaseStart && e.releaseSamples > 0 {
			vol = float64(e.totalSamples-e.position) / float64(e.releaseSamples)
		}

		samples[i][0] *= vol
		samples[i][1] *= vol
		e.position++
	}
	return n, ok
}

func (e *envelope) Err() error { return e.streamer.Err() }

// newVolume wraps s in beep's exponential volume; volume 0 leaves the level unchanged
func newVolume(s beep.Streamer, volume float64) beep.Streamer {
	return &effects.Volume{Streamer: s, Base: 2, Volume: volume}
}

// tone is an enveloped oscillator with short ramps to avoid clicks
func tone(freq float64, d time.Duration, wave WaveType, rate beep.SampleRate) beep.Streamer {
	ramp := d / 8
	return NewEnvelope(NewOscillator(freq, d, wave, rate), d, ramp, ramp*2, rate)
}

// NewCue builds the streamer for a cue
func NewCue(cue Cue, rate beep.SampleRate) beep.Streamer {
	switch cue {
	case CueCapture:
		// Rising fifth
		half := parameter.CaptureToneDuration / 2
		return beep.Seq(
			tone(parameter.CaptureToneHz, half, WaveSine, rate),
			tone(parameter.CaptureToneHz*1.5, half, WaveSine, rate),
		)
	case CueWellCapture:
		return tone(parameter.WellCaptureToneHz, parameter.WellCaptureToneDuration, WaveSquare, rate)
	case CueEscape:
		// Noise burst trailing into a low thud
		burst := parameter.EscapeToneDuration / 3
		return beep.Seq(
			newVolume(tone(parameter.EscapeToneHz, burst, WaveNoise, rate), -2),
			tone(parameter.EscapeToneHz, parameter.EscapeToneDuration-burst, WaveSine, rate),
		)
	default:
		return nil
	}
}

// CueDuration is the playing time of a cue
func CueDuration(cue Cue) time.Duration {
	switch cue {
	case CueCapture:
		return parameter.CaptureToneDuration
	case CueWellCapture:
		return parameter.WellCaptureToneDuration
	case CueEscape:
		return parameter.EscapeToneDuration
	default:
		return 0
	}
}
