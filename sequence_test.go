package kick

import (
	"testing"

	"github.com/google/go-cmp/cmp"
)

func TestBeatOffsets(t *testing.T) {
	t.Run("one minute at 120", func(t *testing.T) {
		offs := BeatOffsets(60, 120, 44100)
		assert(t, len(offs), 120)
		assert(t, offs[1], 22050)
		assert(t, offs[119], 119*22050)
	})

	t.Run("one second at 120", func(t *testing.T) {
		if diff := cmp.Diff(BeatOffsets(1, 120, 1000), []int{0, 500}); diff != "" {
			t.Errorf("offsets mismatch (-got +want):\n%s", diff)
		}
	})

	t.Run("partial beat", func(t *testing.T) {
		// 1.4s holds 2 whole beats of 0.5s, the trailing 0.4s is not a beat.
		if diff := cmp.Diff(BeatOffsets(1.4, 120, 1000), []int{0, 500}); diff != "" {
			t.Errorf("offsets mismatch (-got +want):\n%s", diff)
		}
	})

	t.Run("degenerate", func(t *testing.T) {
		assert(t, len(BeatOffsets(0, 120, 1000)), 0)
		assert(t, len(BeatOffsets(1, 0, 1000)), 0)
		assert(t, len(BeatOffsets(1, -120, 1000)), 0)
		assert(t, len(BeatOffsets(1, 120, 0)), 0)
	})
}

func TestSequence(t *testing.T) {
	t.Run("every beat placed", func(t *testing.T) {
		p := DefaultParams()
		buf := make([]float64, p.TotalSamples())
		kick := Synthesize(p.KickDuration, p.SampleRate, p.F0, p.F1, p.Decay)
		assert(t, Sequence(buf, kick, p.Duration, p.BPM, p.SampleRate), 120)
	})

	t.Run("drops trailing beat", func(t *testing.T) {
		buf := make([]float64, 1000)
		kick := makefill(600, 1.0)

		assert(t, Sequence(buf, kick, 1, 120, 1000), 1)
		assert(t, allEqual(buf[:600], 1.0), true)
		assert(t, allEqual(buf[600:], 0.0), true)
	})

	t.Run("overlaps accumulate", func(t *testing.T) {
		buf := make([]float64, 1000)
		kick := makefill(300, 1.0)

		// Beats every 250 samples, the fourth one would end at 1050.
		assert(t, Sequence(buf, kick, 1, 240, 1000), 3)
		assert(t, allEqual(buf[:250], 1.0), true)
		assert(t, allEqual(buf[250:300], 2.0), true)
		assert(t, allEqual(buf[300:500], 1.0), true)
		assert(t, allEqual(buf[500:550], 2.0), true)
		assert(t, allEqual(buf[550:800], 1.0), true)
		assert(t, allEqual(buf[800:], 0.0), true)
	})

	t.Run("adds to existing content", func(t *testing.T) {
		buf := makefill(10, 0.5)
		assert(t, Sequence(buf, []float64{1, 1}, 1, 60, 10), 1)

		want := []float64{1.5, 1.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5, 0.5}
		if diff := cmp.Diff(buf, want); diff != "" {
			t.Errorf("buffer mismatch (-got +want):\n%s", diff)
		}
	})

	t.Run("nothing to place", func(t *testing.T) {
		buf := make([]float64, 1000)
		assert(t, Sequence(buf, nil, 1, 120, 1000), 0)
		assert(t, Sequence(buf, []float64{1}, 0, 120, 1000), 0)
		assert(t, Sequence(nil, []float64{1}, 1, 120, 1000), 0)
		assert(t, allEqual(buf, 0.0), true)
	})
}
