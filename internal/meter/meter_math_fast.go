//go:build fastmath

package meter

import "github.com/meko-christian/algo-approx"

// dbPerNeper converts a natural log of an amplitude ratio to dB: 20/ln(10).
const dbPerNeper = 8.685889638065035

// amplitudeToDB computes 20*log10(x) using fast approximation.
func amplitudeToDB(x float64) float64 {
	return approx.FastLog(x) * dbPerNeper
}

// mathSqrt computes sqrt(x) using fast approximation.
func mathSqrt(x float64) float64 {
	return approx.FastSqrt(x)
}
