package kick

import (
	"math"

	"gonum.org/v1/gonum/floats"
)

// FullScale is the magnitude a sample of 1.0 quantizes to.
const FullScale = math.MaxInt16

// Peak returns the maximum absolute value in buf, or 0 if buf is empty.
func Peak(buf []float64) float64 {
	if len(buf) == 0 {
		return 0
	}
	return math.Max(floats.Max(buf), -floats.Min(buf))
}

// Normalize scales buf in place so that its peak absolute value is 1 and
// returns the peak found before scaling. A silent buffer is left untouched.
func Normalize(buf []float64) float64 {
	peak := Peak(buf)
	if peak > 0 {
		for i := range buf {
			buf[i] /= peak
		}
	}
	return peak
}

// Quantize converts normalized samples to 16-bit PCM, truncating toward zero.
// Samples outside [-1, 1] are clamped to ±FullScale rather than wrapped.
func Quantize(buf []float64) []int16 {
	out := make([]int16, len(buf))
	for i, x := range buf {
		v := x * FullScale
		switch {
		case v > FullScale:
			v = FullScale
		case v < -FullScale:
			v = -FullScale
		case math.IsNaN(v):
			v = 0
		}
		out[i] = int16(v)
	}
	return out
}
