package cut

import (
	"math"
	"math/cmplx"

	"github.com/cwbudde/algo-hilocut/dsp/filter/biquad"
)

// Chain is a fixed cascade of MaxStages stages processed in series.
// Active stages always form a leading prefix when configured through
// ApplySlope.
type Chain struct {
	stages [MaxStages]Stage
}

// ApplySlope loads coeffs into the leading stages and bypasses the rest.
//
// coeffs must hold exactly slope.Stages() sets, ordered by section index
// as the designers return them; coeffs[i] goes to stage i. On error the
// chain is left unchanged. The swap takes effect at the next processed
// sample with no crossfade.
func (c *Chain) ApplySlope(coeffs []biquad.Coefficients, slope Slope) error {
	if !slope.Valid() {
		return ErrInvalidSlope
	}
	active := slope.Stages()
	if len(coeffs) != active {
		return ErrSectionCount
	}

	for i := range c.stages {
		c.stages[i].SetBypassed(true)
	}
	for i := 0; i < active; i++ {
		c.stages[i].SetCoefficients(coeffs[i])
		c.stages[i].SetBypassed(false)
	}

	return nil
}

// ProcessBlock filters buf in place through every active stage.
func (c *Chain) ProcessBlock(buf []float64) {
	for i := range c.stages {
		c.stages[i].ProcessBlock(buf)
	}
}

// ProcessSample cascades one sample through every active stage.
func (c *Chain) ProcessSample(x float64) float64 {
	for i := range c.stages {
		x = c.stages[i].ProcessSample(x)
	}
	return x
}

// Reset clears every stage's state, bypassed or not.
func (c *Chain) Reset() {
	for i := range c.stages {
		c.stages[i].Reset()
	}
}

// ActiveStages returns the number of stages that are not bypassed.
func (c *Chain) ActiveStages() int {
	n := 0
	for i := range c.stages {
		if !c.stages[i].Bypassed() {
			n++
		}
	}
	return n
}

// Stage returns a pointer to stage i for inspection.
func (c *Chain) Stage(i int) *Stage {
	return &c.stages[i]
}

// Bypassed reports whether stage i is bypassed.
func (c *Chain) Bypassed(i int) bool {
	return c.stages[i].Bypassed()
}

// SetBypassed toggles stage i directly, outside of ApplySlope.
func (c *Chain) SetBypassed(i int, bypassed bool) {
	c.stages[i].SetBypassed(bypassed)
}

// Response returns the complex frequency response of the active stages.
func (c *Chain) Response(freqHz, sampleRate float64) complex128 {
	h := complex(1, 0)
	for i := range c.stages {
		if c.stages[i].Bypassed() {
			continue
		}
		h *= c.stages[i].Coefficients().Response(freqHz, sampleRate)
	}
	return h
}

// MagnitudeDB returns the magnitude response of the active stages in dB.
func (c *Chain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return 20 * math.Log10(cmplx.Abs(c.Response(freqHz, sampleRate)))
}
