package response

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-hilocut/dsp/core"
)

// ErrInvalidTone is returned for probe tones outside (0, sampleRate/2) or
// too short to settle.
var ErrInvalidTone = errors.New("response: invalid probe tone")

// ToneGainDB drives proc with length samples of a sine at freqHz and
// returns the output level relative to the input at that frequency, in
// dB. Only the second half of the run is analyzed, so start-up transients
// are excluded.
func ToneGainDB(proc Func, freqHz, sampleRate float64, length int) (float64, error) {
	if proc == nil {
		return 0, ErrNilProcessor
	}
	if !(sampleRate > 0) || core.IsInf(sampleRate) {
		return 0, fmt.Errorf("response: %w: %v", core.ErrInvalidSampleRate, sampleRate)
	}
	if !(freqHz > 0) || freqHz >= sampleRate/2 || length < 4 {
		return 0, fmt.Errorf("%w: %v Hz, %d samples", ErrInvalidTone, freqHz, length)
	}

	in := make([]float64, length)
	step := 2 * math.Pi * freqHz / sampleRate
	for i := range in {
		in[i] = math.Sin(step * float64(i))
	}
	out := append([]float64(nil), in...)
	proc(out)

	half := length / 2
	ref := newGoertzel(freqHz, sampleRate)
	ref.processBlock(in[half:])
	got := newGoertzel(freqHz, sampleRate)
	got.processBlock(out[half:])

	return core.LinearPowerToDB(got.power() / ref.power()), nil
}

// goertzel evaluates a single DFT bin over the samples fed to it.
type goertzel struct {
	coeff  float64
	s0, s1 float64
}

func newGoertzel(freqHz, sampleRate float64) *goertzel {
	return &goertzel{coeff: 2 * math.Cos(2*math.Pi*freqHz/sampleRate)}
}

func (g *goertzel) processBlock(input []float64) {
	s0, s1 := g.s0, g.s1
	coeff := g.coeff
	for _, x := range input {
		s := x + coeff*s0 - s1
		s1 = s0
		s0 = s
	}
	g.s0, g.s1 = s0, s1
}

// power is |X[k]|^2 for the samples processed so far.
func (g *goertzel) power() float64 {
	return max(g.s0*g.s0+g.s1*g.s1-g.coeff*g.s0*g.s1, 0)
}
