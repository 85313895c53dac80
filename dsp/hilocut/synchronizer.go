package hilocut

import (
	"github.com/cwbudde/algo-hilocut/dsp/core"
	"github.com/cwbudde/algo-hilocut/dsp/filter/biquad"
	"github.com/cwbudde/algo-hilocut/dsp/filter/cut"
	"github.com/cwbudde/algo-hilocut/dsp/filter/design"
)

// Synchronizer keeps every channel's chains in step with one Settings
// snapshot. Coefficients are designed once per band and copied into each
// channel's stages.
type Synchronizer struct {
	channels [core.MaxChannels]ChannelChain

	lowCut  [cut.MaxStages]biquad.Coefficients
	highCut [cut.MaxStages]biquad.Coefficients
}

// Update designs both bands for s at sampleRate and applies them to every
// channel. It does not allocate. On error no chain is modified.
func (y *Synchronizer) Update(s Settings, sampleRate float64) error {
	if !(sampleRate > 0) || core.IsInf(sampleRate) {
		return core.ErrInvalidSampleRate
	}
	s = s.Clamped()

	low := design.ButterworthHPInto(y.lowCut[:0], s.LowCutFreq, s.LowCutSlope.Order(), sampleRate)
	high := design.ButterworthLPInto(y.highCut[:0], s.HighCutFreq, s.HighCutSlope.Order(), sampleRate)
	if len(low) != s.LowCutSlope.Stages() || len(high) != s.HighCutSlope.Stages() {
		return cut.ErrSectionCount
	}

	for i := range y.channels {
		ch := &y.channels[i]
		if err := ch.LowCut.ApplySlope(low, s.LowCutSlope); err != nil {
			return err
		}
		if err := ch.HighCut.ApplySlope(high, s.HighCutSlope); err != nil {
			return err
		}
	}

	return nil
}

// Channel returns the chain for channel i (0 = left, 1 = right).
func (y *Synchronizer) Channel(i int) *ChannelChain {
	return &y.channels[i]
}

// Reset clears the filter state of every channel.
func (y *Synchronizer) Reset() {
	for i := range y.channels {
		y.channels[i].Reset()
	}
}
