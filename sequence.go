package kick

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// BeatOffsets returns the sample offset of every whole beat that starts
// within dur seconds at the given tempo.
func BeatOffsets(dur, bpm float64, rate int) []int {
	if !(bpm > 0) || !(dur > 0) || rate <= 0 {
		return nil
	}

	interval := 60 / bpm
	count := math.Floor(dur / interval)
	if math.IsInf(count, 0) || math.IsNaN(count) {
		return nil
	}

	offsets := make([]int, int(count))
	for i := range offsets {
		offsets[i] = int(float64(i) * interval * float64(rate))
	}
	return offsets
}

// Sequence adds kick into buf at every beat offset and returns the number of
// beats placed. A beat whose kick would run past the end of buf is dropped,
// not truncated. Overlapping kicks accumulate.
func Sequence(buf, kick []float64, dur, bpm float64, rate int) int {
	if len(kick) == 0 {
		return 0
	}

	placed := 0
	for _, start := range BeatOffsets(dur, bpm, rate) {
		end := start + len(kick)
		if end > len(buf) {
			continue
		}
		floats.Add(buf[start:end], kick)
		placed++
	}
	return placed
}
