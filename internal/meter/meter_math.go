//go:build !fastmath

package meter

import "math"

// amplitudeToDB computes 20*log10(x) using standard library math.
func amplitudeToDB(x float64) float64 {
	return 20 * math.Log10(x)
}

// mathSqrt computes sqrt(x) using standard library math.
func mathSqrt(x float64) float64 {
	return math.Sqrt(x)
}
