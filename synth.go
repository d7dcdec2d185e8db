package kick

import "math"

// Envelope returns the exponential decay factor exp(-t/tau) at time t.
// A non-positive tau yields an impulse: 1 at t <= 0, 0 afterwards.
func Envelope(t, tau float64) float64 {
	if tau <= 0 {
		if t <= 0 {
			return 1
		}
		return 0
	}
	return math.Exp(-t / tau)
}

// Synthesize returns one kick: a sine whose frequency sweeps linearly from
// f0 to f1 over dur seconds, shaped by a decay envelope of time constant tau.
// The result has int(dur*rate) samples taken at i*dur/n, and is empty when
// dur or rate is not positive.
func Synthesize(dur float64, rate int, f0, f1, tau float64) []float64 {
	n := sampleCount(dur, rate)
	if n == 0 {
		return nil
	}

	sweep := (f1 - f0) / (2 * dur)
	out := make([]float64, n)
	for i := range out {
		t := float64(i) * dur / float64(n)
		phase := 2 * math.Pi * (f0*t + sweep*t*t)
		out[i] = math.Sin(phase) * Envelope(t, tau)
	}
	return out
}
