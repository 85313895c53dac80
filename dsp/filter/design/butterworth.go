package design

import (
	"math"

	"github.com/cwbudde/algo-hilocut/dsp/filter/biquad"
)

// ButterworthHP designs a highpass Butterworth cascade of the given order.
//
// Even orders yield exactly order/2 second-order sections ordered from the
// lowest to the highest Q. For odd orders a first-order section
// (B2=A2=0) is appended. Non-positive orders or invalid sample rates
// return nil. The cutoff is clamped with ClampFrequency.
func ButterworthHP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validSampleRate(sampleRate) {
		return nil
	}
	return ButterworthHPInto(make([]biquad.Coefficients, 0, SectionCount(order)), freq, order, sampleRate)
}

// ButterworthLP designs a lowpass Butterworth cascade of the given order.
// Section layout and clamping match ButterworthHP.
func ButterworthLP(freq float64, order int, sampleRate float64) []biquad.Coefficients {
	if order <= 0 || !validSampleRate(sampleRate) {
		return nil
	}
	return ButterworthLPInto(make([]biquad.Coefficients, 0, SectionCount(order)), freq, order, sampleRate)
}

// ButterworthHPInto is ButterworthHP writing into dst[:0]. It does not
// allocate when cap(dst) >= SectionCount(order).
func ButterworthHPInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworthInto(dst, freq, order, sampleRate, Highpass, butterworthFirstOrderHP)
}

// ButterworthLPInto is ButterworthLP writing into dst[:0]. It does not
// allocate when cap(dst) >= SectionCount(order).
func ButterworthLPInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64) []biquad.Coefficients {
	return butterworthInto(dst, freq, order, sampleRate, Lowpass, butterworthFirstOrderLP)
}

// SectionCount returns the number of sections a Butterworth cascade of
// the given order needs.
func SectionCount(order int) int {
	if order <= 0 {
		return 0
	}
	return (order + 1) / 2
}

type secondOrderFn func(freq, q, sampleRate float64) biquad.Coefficients

type firstOrderFn func(freq, sampleRate float64) biquad.Coefficients

func butterworthInto(dst []biquad.Coefficients, freq float64, order int, sampleRate float64,
	second secondOrderFn, first firstOrderFn,
) []biquad.Coefficients {
	dst = dst[:0]
	if order <= 0 || !validSampleRate(sampleRate) {
		return dst
	}

	freq = ClampFrequency(freq, sampleRate)

	for i := range order / 2 {
		dst = append(dst, second(freq, butterworthQ(order, i), sampleRate))
	}
	if order%2 != 0 {
		dst = append(dst, first(freq, sampleRate))
	}
	return dst
}

// butterworthQ returns the quality factor of pole pair index for an
// even-order Butterworth polynomial:
//
//	Q_i = 1 / (2 cos((2i+1)π / 2N))
//
// For odd orders the pole angles shift to iπ/N with the real pole handled
// by the first-order section.
func butterworthQ(order, index int) float64 {
	var theta float64
	if order%2 == 0 {
		theta = math.Pi * float64(2*index+1) / (2 * float64(order))
	} else {
		theta = math.Pi * float64(index+1) / float64(order)
	}

	c := math.Cos(theta)
	if c <= 0 {
		return defaultQ
	}

	return 1 / (2 * c)
}

// butterworthFirstOrderLP designs a first-order lowpass section.
func butterworthFirstOrderLP(freq, sampleRate float64) biquad.Coefficients {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return biquad.Coefficients{}
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: k * norm,
		B1: k * norm,
		A1: (k - 1) * norm,
	}
}

// butterworthFirstOrderHP designs a first-order highpass section.
func butterworthFirstOrderHP(freq, sampleRate float64) biquad.Coefficients {
	if _, ok := normalizedW0(freq, sampleRate); !ok {
		return biquad.Coefficients{}
	}

	k := math.Tan(math.Pi * freq / sampleRate)
	norm := 1 / (1 + k)

	return biquad.Coefficients{
		B0: norm,
		B1: -norm,
		A1: (k - 1) * norm,
	}
}
