package design

import "github.com/cwbudde/algo-hilocut/dsp/core"

const (
	// MinFrequency is the lowest cutoff the designers produce (Hz).
	MinFrequency = 20.0
	// MaxFrequency is the highest cutoff the designers produce (Hz).
	MaxFrequency = 20000.0
	// NyquistGuard caps the cutoff at this fraction of the sample rate so
	// the bilinear pre-warp stays well away from the Nyquist singularity.
	NyquistGuard = 0.49
)

// ClampFrequency limits freq to [MinFrequency, min(MaxFrequency,
// NyquistGuard*sampleRate)]. NaN maps to MinFrequency. At sample rates so
// low that the guard falls below MinFrequency, the guard wins.
func ClampFrequency(freq, sampleRate float64) float64 {
	hi := MaxFrequency
	if g := NyquistGuard * sampleRate; g < hi {
		hi = g
	}
	lo := MinFrequency
	if lo > hi {
		lo = hi
	}
	return core.Clamp(freq, lo, hi)
}
