package response

import (
	"errors"
	"fmt"
	"math"
	"math/cmplx"

	algofft "github.com/MeKo-Christian/algo-fft"
	"github.com/cwbudde/algo-vecmath"

	"github.com/cwbudde/algo-hilocut/dsp/core"
)

var (
	// ErrInvalidSize is returned when the measurement length is not a power
	// of two of at least 2 samples.
	ErrInvalidSize = errors.New("response: size must be a power of two >= 2")
	// ErrNilProcessor is returned when no processor function is given.
	ErrNilProcessor = errors.New("response: nil processor")
)

// Func processes buf in place, carrying state across calls.
type Func func(buf []float64)

// Response is a measured magnitude and phase response over the bins
// 0..size/2 of an FFT.
type Response struct {
	sampleRate float64
	size       int
	magnitude  []float64
	phase      []float64
}

// Measure captures size samples of proc's impulse response and returns its
// spectrum. size must be long enough for the response to decay.
func Measure(proc Func, size int, sampleRate float64) (*Response, error) {
	if proc == nil {
		return nil, ErrNilProcessor
	}
	if size < 2 || size&(size-1) != 0 {
		return nil, fmt.Errorf("%w: %d", ErrInvalidSize, size)
	}
	if !(sampleRate > 0) || core.IsInf(sampleRate) {
		return nil, fmt.Errorf("response: %w: %v", core.ErrInvalidSampleRate, sampleRate)
	}

	ir := make([]float64, size)
	ir[0] = 1
	proc(ir)

	in := make([]complex128, size)
	for i, v := range ir {
		in[i] = complex(v, 0)
	}

	plan, err := algofft.NewPlan64(size)
	if err != nil {
		return nil, fmt.Errorf("response: fft plan: %w", err)
	}
	out := make([]complex128, size)
	if err := plan.Forward(out, in); err != nil {
		return nil, fmt.Errorf("response: fft: %w", err)
	}

	bins := size/2 + 1
	re := make([]float64, bins)
	im := make([]float64, bins)
	phase := make([]float64, bins)
	for k := range bins {
		re[k] = real(out[k])
		im[k] = imag(out[k])
		phase[k] = cmplx.Phase(out[k])
	}

	mag := make([]float64, bins)
	vecmath.Magnitude(mag, re, im)

	return &Response{
		sampleRate: sampleRate,
		size:       size,
		magnitude:  mag,
		phase:      unwrapPhase(phase),
	}, nil
}

// Bins returns the number of bins from DC to Nyquist.
func (r *Response) Bins() int { return len(r.magnitude) }

// BinWidth returns the bin spacing in Hz.
func (r *Response) BinWidth() float64 { return r.sampleRate / float64(r.size) }

// SampleRate returns the sample rate the response was measured at.
func (r *Response) SampleRate() float64 { return r.sampleRate }

// Bin returns the bin nearest to freqHz, clamped to [0, Bins()-1].
func (r *Response) Bin(freqHz float64) int {
	k := int(math.Round(freqHz / r.BinWidth()))
	return core.ClampInt(k, 0, r.Bins()-1)
}

// Magnitude returns the linear magnitude at the bin nearest to freqHz.
func (r *Response) Magnitude(freqHz float64) float64 {
	return r.magnitude[r.Bin(freqHz)]
}

// MagnitudeDB returns the magnitude at the bin nearest to freqHz in dB.
func (r *Response) MagnitudeDB(freqHz float64) float64 {
	return core.LinearToDB(r.Magnitude(freqHz))
}

// Phase returns the unwrapped phase in radians at the bin nearest to freqHz.
func (r *Response) Phase(freqHz float64) float64 {
	return r.phase[r.Bin(freqHz)]
}

// GroupDelay returns the group delay in seconds at the bin nearest to
// freqHz, from a centered difference of the unwrapped phase.
func (r *Response) GroupDelay(freqHz float64) float64 {
	k := r.Bin(freqHz)
	lo, hi := max(k-1, 0), min(k+1, r.Bins()-1)
	if hi == lo {
		return 0
	}
	dw := 2 * math.Pi * r.BinWidth() * float64(hi-lo)
	return -(r.phase[hi] - r.phase[lo]) / dw
}

// MagnitudesDB returns the full magnitude response in dB, one value per bin.
func (r *Response) MagnitudesDB() []float64 {
	out := make([]float64, len(r.magnitude))
	for i, m := range r.magnitude {
		out[i] = core.LinearToDB(m)
	}
	return out
}

func unwrapPhase(phase []float64) []float64 {
	offset := 0.0
	prev := phase[0]
	for i := 1; i < len(phase); i++ {
		raw := phase[i]
		switch d := raw - prev; {
		case d > math.Pi:
			offset -= 2 * math.Pi
		case d < -math.Pi:
			offset += 2 * math.Pi
		}
		prev = raw
		phase[i] = raw + offset
	}
	return phase
}
