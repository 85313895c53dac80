package hilocut

import (
	"math"

	"github.com/cwbudde/algo-hilocut/dsp/core"
	"github.com/cwbudde/algo-hilocut/dsp/filter/cut"
)

// Parameter ranges and defaults of the plugin parameter layout.
const (
	MinFrequency = 20.0
	MaxFrequency = 20000.0

	DefaultLowCutFreq  = MinFrequency
	DefaultHighCutFreq = MaxFrequency
	DefaultSlope       = cut.Slope12

	DefaultGain      = 0.0
	DefaultDelayTime = 0.25
	DefaultFeedback  = 0.25
	DefaultChorusMix = 0.0
)

// Settings is one snapshot of the control parameters.
//
// Gain, DelayTime, Feedback and ChorusMix are carried for the host's
// auxiliary effects; the filter engine does not read them.
type Settings struct {
	LowCutFreq   float64   `json:"lowCutFreq"`
	HighCutFreq  float64   `json:"highCutFreq"`
	LowCutSlope  cut.Slope `json:"lowCutSlope"`
	HighCutSlope cut.Slope `json:"highCutSlope"`

	Gain      float64 `json:"gain"`
	DelayTime float64 `json:"delayTime"`
	Feedback  float64 `json:"feedback"`
	ChorusMix float64 `json:"chorusMix"`
}

// DefaultSettings returns the parameter layout defaults: both bands fully
// open at 12 dB/oct.
func DefaultSettings() Settings {
	return Settings{
		LowCutFreq:   DefaultLowCutFreq,
		HighCutFreq:  DefaultHighCutFreq,
		LowCutSlope:  DefaultSlope,
		HighCutSlope: DefaultSlope,
		Gain:         DefaultGain,
		DelayTime:    DefaultDelayTime,
		Feedback:     DefaultFeedback,
		ChorusMix:    DefaultChorusMix,
	}
}

// Clamped returns s with every field forced into its valid range.
// Frequencies go to [MinFrequency, MaxFrequency], slopes to the nearest
// valid slope, mix-style values to [0, 1]. Non-finite values fall back to
// their defaults.
func (s Settings) Clamped() Settings {
	s.LowCutFreq = clampFreq(s.LowCutFreq, DefaultLowCutFreq)
	s.HighCutFreq = clampFreq(s.HighCutFreq, DefaultHighCutFreq)
	s.LowCutSlope = cut.ClampSlope(int(s.LowCutSlope))
	s.HighCutSlope = cut.ClampSlope(int(s.HighCutSlope))

	s.Gain = finiteOr(s.Gain, DefaultGain)
	s.DelayTime = math.Max(finiteOr(s.DelayTime, DefaultDelayTime), 0)
	s.Feedback = core.Clamp(finiteOr(s.Feedback, DefaultFeedback), 0, 1)
	s.ChorusMix = core.Clamp(finiteOr(s.ChorusMix, DefaultChorusMix), 0, 1)

	return s
}

func clampFreq(freq, fallback float64) float64 {
	if math.IsNaN(freq) {
		return fallback
	}
	return core.Clamp(freq, MinFrequency, MaxFrequency)
}

func finiteOr(v, fallback float64) float64 {
	if !core.IsFinite(v) {
		return fallback
	}
	return v
}
