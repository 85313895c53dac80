package cut

import (
	"github.com/cwbudde/algo-hilocut/dsp/core"
	"github.com/cwbudde/algo-hilocut/dsp/filter/biquad"
)

// Stage is one slot of a Chain: a biquad section plus a bypass flag.
// The zero Stage is bypassed.
type Stage struct {
	section biquad.Section
	active  bool
}

// Coefficients returns the stage's current coefficient set.
func (s *Stage) Coefficients() biquad.Coefficients {
	return s.section.Coefficients()
}

// SetCoefficients replaces the whole coefficient set, keeping filter state.
func (s *Stage) SetCoefficients(c biquad.Coefficients) {
	s.section.SetCoefficients(c)
}

// Bypassed reports whether the stage passes samples through unmodified.
func (s *Stage) Bypassed() bool {
	return !s.active
}

// SetBypassed toggles the stage. A bypassed stage keeps its state frozen
// until it is activated again.
func (s *Stage) SetBypassed(bypassed bool) {
	s.active = !bypassed
}

// ProcessSample filters one sample, or returns x when bypassed.
func (s *Stage) ProcessSample(x float64) float64 {
	if !s.active {
		return x
	}
	return s.section.ProcessSample(x)
}

// ProcessBlock filters buf in place. Bypassed stages leave buf untouched.
func (s *Stage) ProcessBlock(buf []float64) {
	if !s.active || len(buf) == 0 {
		return
	}
	s.section.ProcessBlock(buf)

	st := s.section.State()
	s.section.SetState([2]float64{core.FlushDenormals(st[0]), core.FlushDenormals(st[1])})
}

// Reset clears the delay line.
func (s *Stage) Reset() {
	s.section.Reset()
}

// State returns the delay-line state.
func (s *Stage) State() [2]float64 {
	return s.section.State()
}
