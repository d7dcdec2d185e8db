package kick

import (
	"errors"
	"fmt"
)

// Params holds every tunable of a generated track.
type Params struct {
	Duration     float64 // total length in seconds
	BPM          float64 // beats per minute
	SampleRate   int     // samples per second
	KickDuration float64 // length of one kick in seconds
	F0           float64 // kick start frequency in Hz
	F1           float64 // kick end frequency in Hz
	Decay        float64 // envelope time constant in seconds
	Output       string  // path of the wave file
}

// DefaultParams returns one minute of kicks at 120 BPM, 44.1 kHz.
func DefaultParams() Params {
	return Params{
		Duration:     60,
		BPM:          120,
		SampleRate:   44100,
		KickDuration: 0.2,
		F0:           80,
		F1:           40,
		Decay:        0.05,
		Output:       "kick_drum.wav",
	}
}

// ErrInvalidParams is wrapped by the errors returned from Validate.
var ErrInvalidParams = errors.New("invalid parameters")

// Validate reports the first non-positive parameter. The synthesis functions
// accept degenerate values and produce silence instead, so only callers
// taking user input need to validate.
func (p Params) Validate() error {
	checks := []struct {
		name string
		v    float64
	}{
		{"duration", p.Duration},
		{"bpm", p.BPM},
		{"sample rate", float64(p.SampleRate)},
		{"kick duration", p.KickDuration},
		{"f0", p.F0},
		{"f1", p.F1},
		{"decay", p.Decay},
	}
	for _, c := range checks {
		if !(c.v > 0) {
			return fmt.Errorf("%w: %s must be positive, got %v", ErrInvalidParams, c.name, c.v)
		}
	}
	if p.Output == "" {
		return fmt.Errorf("%w: empty output path", ErrInvalidParams)
	}
	return nil
}

// TotalSamples returns the length of the track buffer.
func (p Params) TotalSamples() int {
	return sampleCount(p.Duration, p.SampleRate)
}

func sampleCount(dur float64, rate int) int {
	if !(dur > 0) || rate <= 0 {
		return 0
	}
	return int(dur * float64(rate))
}
