package hilocut

import (
	"math"
	"sync/atomic"

	"github.com/cwbudde/algo-hilocut/dsp/filter/cut"
)

// Parameters is a lock-free control parameter store. Every parameter lives
// in its own atomic word, so writers on UI or network goroutines never
// block the audio thread. A snapshot may mix values from two concurrent
// Store calls; each individual value is never torn.
//
// Use NewParameters; the zero value holds out-of-range frequencies until
// the first write.
type Parameters struct {
	lowCutFreq   atomic.Uint64
	highCutFreq  atomic.Uint64
	lowCutSlope  atomic.Int32
	highCutSlope atomic.Int32

	gain      atomic.Uint64
	delayTime atomic.Uint64
	feedback  atomic.Uint64
	chorusMix atomic.Uint64
}

// NewParameters returns a store initialized to s (clamped).
func NewParameters(s Settings) *Parameters {
	p := &Parameters{}
	p.Store(s)
	return p
}

// Store publishes every field of s, clamped to its valid range.
func (p *Parameters) Store(s Settings) {
	s = s.Clamped()
	storeFloat(&p.lowCutFreq, s.LowCutFreq)
	storeFloat(&p.highCutFreq, s.HighCutFreq)
	p.lowCutSlope.Store(int32(s.LowCutSlope))
	p.highCutSlope.Store(int32(s.HighCutSlope))
	storeFloat(&p.gain, s.Gain)
	storeFloat(&p.delayTime, s.DelayTime)
	storeFloat(&p.feedback, s.Feedback)
	storeFloat(&p.chorusMix, s.ChorusMix)
}

// Snapshot reads each parameter with a single atomic load.
func (p *Parameters) Snapshot() Settings {
	return Settings{
		LowCutFreq:   loadFloat(&p.lowCutFreq),
		HighCutFreq:  loadFloat(&p.highCutFreq),
		LowCutSlope:  cut.Slope(p.lowCutSlope.Load()),
		HighCutSlope: cut.Slope(p.highCutSlope.Load()),
		Gain:         loadFloat(&p.gain),
		DelayTime:    loadFloat(&p.delayTime),
		Feedback:     loadFloat(&p.feedback),
		ChorusMix:    loadFloat(&p.chorusMix),
	}
}

// LowCutFreq returns the low-cut cutoff in Hz.
func (p *Parameters) LowCutFreq() float64 { return loadFloat(&p.lowCutFreq) }

// SetLowCutFreq sets the low-cut cutoff, clamped to [MinFrequency, MaxFrequency].
func (p *Parameters) SetLowCutFreq(hz float64) {
	storeFloat(&p.lowCutFreq, clampFreq(hz, DefaultLowCutFreq))
}

// HighCutFreq returns the high-cut cutoff in Hz.
func (p *Parameters) HighCutFreq() float64 { return loadFloat(&p.highCutFreq) }

// SetHighCutFreq sets the high-cut cutoff, clamped to [MinFrequency, MaxFrequency].
func (p *Parameters) SetHighCutFreq(hz float64) {
	storeFloat(&p.highCutFreq, clampFreq(hz, DefaultHighCutFreq))
}

// LowCutSlope returns the low-cut slope.
func (p *Parameters) LowCutSlope() cut.Slope { return cut.Slope(p.lowCutSlope.Load()) }

// SetLowCutSlope sets the low-cut slope, clamped to a valid slope.
func (p *Parameters) SetLowCutSlope(s cut.Slope) {
	p.lowCutSlope.Store(int32(cut.ClampSlope(int(s))))
}

// HighCutSlope returns the high-cut slope.
func (p *Parameters) HighCutSlope() cut.Slope { return cut.Slope(p.highCutSlope.Load()) }

// SetHighCutSlope sets the high-cut slope, clamped to a valid slope.
func (p *Parameters) SetHighCutSlope(s cut.Slope) {
	p.highCutSlope.Store(int32(cut.ClampSlope(int(s))))
}

func storeFloat(w *atomic.Uint64, v float64) {
	w.Store(math.Float64bits(v))
}

func loadFloat(w *atomic.Uint64) float64 {
	return math.Float64frombits(w.Load())
}
