package signal

import (
	"errors"
	"fmt"
	"math"

	"github.com/cwbudde/algo-hilocut/dsp/core"
)

var (
	// ErrInvalidAmplitude is returned for negative or non-finite amplitudes.
	ErrInvalidAmplitude = errors.New("signal: amplitude must be finite and >= 0")
	// ErrInvalidFrequency is returned for frequencies outside [0, sampleRate/2).
	ErrInvalidFrequency = errors.New("signal: frequency must be in [0, nyquist)")
)

// Source produces consecutive samples of an endless signal.
type Source interface {
	// Fill overwrites dst with the next len(dst) samples.
	Fill(dst []float64)
}

const defaultSeed = 0x9e3779b97f4a7c15

// Option configures a Noise source.
type Option func(*Noise)

// WithSeed sets the noise seed. Zero selects the default seed.
func WithSeed(seed uint64) Option {
	return func(n *Noise) {
		if seed != 0 {
			n.seed = seed
		}
	}
}

// Noise is uniform white noise in [-amplitude, amplitude] from an
// xorshift64* generator. The sequence is fully determined by the seed.
type Noise struct {
	amplitude float64
	seed      uint64
	state     uint64
}

// NewNoise creates a white-noise source.
func NewNoise(amplitude float64, opts ...Option) (*Noise, error) {
	if amplitude < 0 || !core.IsFinite(amplitude) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmplitude, amplitude)
	}
	n := &Noise{amplitude: amplitude, seed: defaultSeed}
	for _, opt := range opts {
		if opt != nil {
			opt(n)
		}
	}
	n.Reset()
	return n, nil
}

// Fill implements Source.
func (n *Noise) Fill(dst []float64) {
	x := n.state
	for i := range dst {
		x ^= x >> 12
		x ^= x << 25
		x ^= x >> 27
		u := float64((x*0x2545f4914f6cdd1d)>>11) / (1 << 53)
		dst[i] = (2*u - 1) * n.amplitude
	}
	n.state = x
}

// Reset restarts the sequence from the seed.
func (n *Noise) Reset() {
	n.state = n.seed
}

// Sine is a phase-continuous sine oscillator.
type Sine struct {
	amplitude float64
	step      float64
	phase     float64
}

// NewSine creates a sine source at freqHz. The sample rate comes from the
// processor options (default 48 kHz).
func NewSine(freqHz, amplitude float64, opts ...core.ProcessorOption) (*Sine, error) {
	cfg := core.ApplyProcessorOptions(opts...)
	if amplitude < 0 || !core.IsFinite(amplitude) {
		return nil, fmt.Errorf("%w: %v", ErrInvalidAmplitude, amplitude)
	}
	if !(freqHz >= 0) || freqHz >= cfg.SampleRate/2 {
		return nil, fmt.Errorf("%w: %v Hz at %v Hz", ErrInvalidFrequency, freqHz, cfg.SampleRate)
	}
	return &Sine{
		amplitude: amplitude,
		step:      2 * math.Pi * freqHz / cfg.SampleRate,
	}, nil
}

// Fill implements Source.
func (s *Sine) Fill(dst []float64) {
	for i := range dst {
		dst[i] = s.amplitude * math.Sin(s.phase)
		s.phase += s.step
		if s.phase >= 2*math.Pi {
			s.phase -= 2 * math.Pi
		}
	}
}

// Reset returns the oscillator to phase zero.
func (s *Sine) Reset() {
	s.phase = 0
}
