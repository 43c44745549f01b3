package parameter

import "time"

// Audio cues
const (
	AudioSampleRate = 48000
	AudioBufferTime = 100 * time.Millisecond

	CaptureToneHz       = 660.0
	CaptureToneDuration = 180 * time.Millisecond

	WellCaptureToneHz       = 440.0
	WellCaptureToneDuration = 120 * time.Millisecond

	EscapeToneHz       = 180.0
	EscapeToneDuration = 90 * time.Millisecond

	// AudioVolume is in beep's exponential volume units (0 = unchanged, negative is quieter)
	AudioVolume = -1.5
)
