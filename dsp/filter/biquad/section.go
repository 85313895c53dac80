package biquad

import (
	"sync"

	"github.com/cwbudde/algo-hilocut/dsp/filter/biquad/internal/arch/registry"
	"github.com/cwbudde/algo-vecmath/cpu"
)

// Coefficients holds the transfer function coefficients for a single
// second-order section. a0 is normalized to 1 and not stored.
//
// The sign convention follows Direct Form II Transposed:
//
//	y  = B0*x + d0
//	d0 = B1*x - A1*y + d1
//	d1 = B2*x - A2*y
//
// Coefficients is a plain value: a section receives a full copy on every
// update, so a reader never observes a half-written set.
type Coefficients struct {
	B0, B1, B2 float64 // feedforward (numerator)
	A1, A2     float64 // feedback (denominator)
}

// Identity returns the pass-through coefficient set (H(z) = 1).
func Identity() Coefficients {
	return Coefficients{B0: 1}
}

// IsIdentity reports whether c is the pass-through set.
func (c Coefficients) IsIdentity() bool {
	return c == Identity()
}

// Section is a single biquad filter with coefficients and internal state.
type Section struct {
	coeffs Coefficients

	d0, d1 float64
}

var (
	processBlockImpl     registry.ProcessBlockFn
	processBlockName     string
	processBlockInitOnce sync.Once
)

// NewSection returns a Section initialized with the given coefficients
// and zero state.
func NewSection(c Coefficients) *Section {
	return &Section{coeffs: c}
}

// Coefficients returns the section's current coefficient set.
func (s *Section) Coefficients() Coefficients {
	return s.coeffs
}

// SetCoefficients replaces the whole coefficient set. The delay-line state
// is kept, so the new response takes effect at the next sample without
// restarting the filter.
func (s *Section) SetCoefficients(c Coefficients) {
	s.coeffs = c
}

// ProcessSample filters one input sample and returns the output.
func (s *Section) ProcessSample(x float64) float64 {
	c := &s.coeffs
	y := c.B0*x + s.d0
	s.d0 = c.B1*x - c.A1*y + s.d1
	s.d1 = c.B2*x - c.A2*y

	return y
}

// ProcessBlock filters a block of samples in-place. Zero-alloc.
func (s *Section) ProcessBlock(buf []float64) {
	if len(buf) == 0 {
		return
	}

	processBlockInitOnce.Do(initProcessBlockKernel)

	c := registry.Coefficients(s.coeffs)
	s.d0, s.d1 = processBlockImpl(c, s.d0, s.d1, buf)
}

// ProcessBlockTo filters src into dst. Both slices must have the same length.
// Zero-alloc.
func (s *Section) ProcessBlockTo(dst, src []float64) {
	if len(src) == 0 {
		return
	}
	_ = dst[len(src)-1] // bounds check hint

	c := &s.coeffs
	for i, x := range src {
		y := c.B0*x + s.d0
		s.d0 = c.B1*x - c.A1*y + s.d1
		s.d1 = c.B2*x - c.A2*y
		dst[i] = y
	}
}

// Reset clears the delay line to zero.
func (s *Section) Reset() {
	s.d0 = 0
	s.d1 = 0
}

// State returns the current delay-line state [d0, d1].
func (s *Section) State() [2]float64 {
	return [2]float64{s.d0, s.d1}
}

// SetState restores a previously saved delay-line state.
func (s *Section) SetState(state [2]float64) {
	s.d0 = state[0]
	s.d1 = state[1]
}

// KernelName reports which block kernel ProcessBlock dispatches to.
func KernelName() string {
	processBlockInitOnce.Do(initProcessBlockKernel)
	return processBlockName
}

func initProcessBlockKernel() {
	entry := registry.Global.Lookup(cpu.DetectFeatures())
	if entry == nil {
		panic("biquad: no ProcessBlock kernel registered (missing generic fallback?)")
	}

	if entry.ProcessBlock == nil {
		panic("biquad: selected kernel missing ProcessBlock")
	}

	processBlockImpl = entry.ProcessBlock
	processBlockName = entry.Name
}
