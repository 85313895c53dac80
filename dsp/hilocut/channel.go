package hilocut

import "github.com/cwbudde/algo-hilocut/dsp/filter/cut"

// ChannelChain is the filter path of one audio channel: low cut, then
// high cut.
type ChannelChain struct {
	LowCut  cut.Chain
	HighCut cut.Chain
}

// ProcessBlock filters buf in place through both bands.
func (c *ChannelChain) ProcessBlock(buf []float64) {
	c.LowCut.ProcessBlock(buf)
	c.HighCut.ProcessBlock(buf)
}

// ProcessSample filters one sample through both bands.
func (c *ChannelChain) ProcessSample(x float64) float64 {
	return c.HighCut.ProcessSample(c.LowCut.ProcessSample(x))
}

// Reset clears the state of every stage in both bands.
func (c *ChannelChain) Reset() {
	c.LowCut.Reset()
	c.HighCut.Reset()
}

// MagnitudeDB returns the combined magnitude response of both bands.
func (c *ChannelChain) MagnitudeDB(freqHz, sampleRate float64) float64 {
	return c.LowCut.MagnitudeDB(freqHz, sampleRate) + c.HighCut.MagnitudeDB(freqHz, sampleRate)
}
