// Package hilocut is a stereo low-cut / high-cut filter engine.
//
// Each channel runs a [ChannelChain]: a Butterworth highpass cascade (the
// low cut) followed by a Butterworth lowpass cascade (the high cut), each
// with 12 to 48 dB/oct of slope. Cutoff and slope come from a lock-free
// [Parameters] store that control threads write and the audio thread
// snapshots once per block.
//
// [Processor] is the host-facing surface:
//
//	s := hilocut.DefaultSettings()
//	s.LowCutFreq, s.LowCutSlope = 80, cut.Slope24
//	p := hilocut.New(hilocut.WithSettings(s))
//	if err := p.Prepare(48000, 512); err != nil { ... }
//	p.Process([][]float64{left, right}) // audio thread, in place
//	p.ParametersChanged(newSettings)    // any thread
//
// Process recomputes coefficients for both bands at the start of every
// block and applies the same sequence to every channel, so left and right
// stay linked while keeping independent filter state. Coefficient swaps
// take effect at the next sample without crossfading. Process performs no
// heap allocation and takes no locks.
package hilocut
