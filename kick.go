// Package kick renders a mono track of kick drums repeating at a fixed tempo
// and writes it as 16-bit PCM wave data.
//
// A track is produced in four steps: one kick is synthesized as a decaying
// pitch-dropping sine, copies of it are added into a silent buffer at every
// beat, the buffer is normalized to a peak of 1 and finally quantized to
// 16-bit samples.
package kick

import (
	"fmt"

	"go.uber.org/zap"

	"github.com/arl/kick/wave"
)

// A Track is a rendered sequence of 16-bit samples.
type Track struct {
	Samples    []int16
	SampleRate int
	Beats      int     // beats placed
	Peak       float64 // peak absolute value before normalization
}

// Duration returns the track length in seconds.
func (t Track) Duration() float64 {
	if t.SampleRate <= 0 {
		return 0
	}
	return float64(len(t.Samples)) / float64(t.SampleRate)
}

// Generate renders the track described by p.
func Generate(p Params) Track {
	buf := make([]float64, p.TotalSamples())
	kick := Synthesize(p.KickDuration, p.SampleRate, p.F0, p.F1, p.Decay)
	beats := Sequence(buf, kick, p.Duration, p.BPM, p.SampleRate)
	peak := Normalize(buf)

	return Track{
		Samples:    Quantize(buf),
		SampleRate: p.SampleRate,
		Beats:      beats,
		Peak:       peak,
	}
}

// WriteFile writes t to a wave file at path. The file is closed even when
// writing fails, in which case it may be left incomplete.
func WriteFile(path string, t Track) (err error) {
	w, err := wave.NewFile(path, t.SampleRate)
	if err != nil {
		return fmt.Errorf("create %s: %w", path, err)
	}
	defer func() {
		if cerr := w.Close(); cerr != nil && err == nil {
			err = fmt.Errorf("write %s: %w", path, cerr)
		}
	}()

	if _, err := w.Write(t.Samples); err != nil {
		return fmt.Errorf("write %s: %w", path, err)
	}
	return nil
}

// Run generates the track described by p and writes it to p.Output.
func Run(p Params, logger *zap.Logger) (Track, error) {
	logger = logger.With(zap.String("output", p.Output))
	logger.Debug("rendering track",
		zap.Float64("duration", p.Duration),
		zap.Float64("bpm", p.BPM),
		zap.Int("sampleRate", p.SampleRate),
		zap.Float64("kickDuration", p.KickDuration),
		zap.Float64("f0", p.F0),
		zap.Float64("f1", p.F1),
		zap.Float64("decay", p.Decay),
	)

	t := Generate(p)
	if t.Beats == 0 {
		logger.Warn("no beat fits in the track, output is silent")
	}
	logger.Debug("track rendered",
		zap.Int("samples", len(t.Samples)),
		zap.Int("beats", t.Beats),
		zap.Float64("peak", t.Peak),
	)

	if err := WriteFile(p.Output, t); err != nil {
		return Track{}, err
	}
	logger.Debug("track written", zap.Int("bytes", wave.HeaderSize+wave.SampleSize*len(t.Samples)))
	return t, nil
}
