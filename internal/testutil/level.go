package testutil

import "math"

// RMS returns the root-mean-square level of x, or 0 for an empty slice.
func RMS(x []float64) float64 {
	if len(x) == 0 {
		return 0
	}
	var sum float64
	for _, v := range x {
		sum += v * v
	}
	return math.Sqrt(sum / float64(len(x)))
}

// GainDB returns the RMS level of out relative to in, in dB.
func GainDB(in, out []float64) float64 {
	return 20 * math.Log10(RMS(out)/RMS(in))
}
