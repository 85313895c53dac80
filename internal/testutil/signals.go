// Package testutil holds deterministic signals and assertions shared by
// the filter tests.
package testutil

import (
	"math"
	"math/rand"
)

// DeterministicSine returns length samples of a sine starting at phase 0.
func DeterministicSine(freqHz, sampleRate, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range out {
		out[i] = amplitude * math.Sin(step*float64(i))
	}
	return out
}

// DeterministicNoise returns uniform white noise in [-amplitude, amplitude]
// from a fixed seed.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse returns a unit impulse at pos.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// Blocks splits x into consecutive sub-slices of at most size samples.
// The sub-slices alias x.
func Blocks(x []float64, size int) [][]float64 {
	if size <= 0 {
		return nil
	}
	blocks := make([][]float64, 0, (len(x)+size-1)/size)
	for start := 0; start < len(x); start += size {
		blocks = append(blocks, x[start:min(start+size, len(x))])
	}
	return blocks
}
