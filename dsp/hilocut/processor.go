package hilocut

import (
	"fmt"

	"github.com/cwbudde/algo-hilocut/dsp/core"
)

// Option configures a Processor.
type Option func(*Processor)

// WithSettings sets the initial control parameters.
func WithSettings(s Settings) Option {
	return func(p *Processor) {
		p.params.Store(s)
	}
}

// WithParameters makes the processor read from an existing store, e.g.
// one shared with a remote control surface.
func WithParameters(params *Parameters) Option {
	return func(p *Processor) {
		if params != nil {
			p.params = params
		}
	}
}

// WithStream applies stream options (channel count, default sample rate
// and block size) used until the next Prepare.
func WithStream(opts ...core.ProcessorOption) Option {
	return func(p *Processor) {
		for _, opt := range opts {
			if opt != nil {
				opt(&p.cfg)
			}
		}
	}
}

// Processor is the host-facing filter engine for a mono or stereo stream.
type Processor struct {
	cfg      core.ProcessorConfig
	params   *Parameters
	sync     Synchronizer
	prepared bool
}

// New creates an unprepared processor with default settings and a stereo
// 48 kHz stream configuration.
func New(opts ...Option) *Processor {
	p := &Processor{
		cfg:    core.DefaultProcessorConfig(),
		params: NewParameters(DefaultSettings()),
	}
	for _, opt := range opts {
		if opt != nil {
			opt(p)
		}
	}
	return p
}

// Prepare (re)initializes the stream: it validates the configuration,
// clears all filter state and designs coefficients from the current
// parameters. It must not run concurrently with Process.
func (p *Processor) Prepare(sampleRate float64, maxBlockSize int) error {
	cfg := p.cfg
	cfg.SampleRate = sampleRate
	cfg.BlockSize = maxBlockSize
	if err := cfg.Validate(); err != nil {
		return fmt.Errorf("hilocut: prepare: %w", err)
	}

	p.sync.Reset()
	if err := p.sync.Update(p.params.Snapshot(), sampleRate); err != nil {
		return fmt.Errorf("hilocut: prepare: %w", err)
	}

	p.cfg = cfg
	p.prepared = true
	return nil
}

// Process filters block in place, one slice per channel. Coefficients are
// refreshed from the parameter store first. Channels beyond the
// configured count are left untouched; before Prepare the whole block is.
func (p *Processor) Process(block [][]float64) {
	if !p.prepared {
		return
	}

	// Update only fails on a bad sample rate, which Prepare rules out.
	// A failed update keeps the previous coefficients.
	_ = p.sync.Update(p.params.Snapshot(), p.cfg.SampleRate)

	n := min(len(block), p.cfg.Channels)
	for ch := range n {
		p.sync.channels[ch].ProcessBlock(block[ch])
	}
}

// ParametersChanged publishes new control parameters. It is safe to call
// from any goroutine; the change is picked up at the next Process.
func (p *Processor) ParametersChanged(s Settings) {
	p.params.Store(s)
}

// Parameters returns the processor's parameter store.
func (p *Processor) Parameters() *Parameters {
	return p.params
}

// Prepared reports whether Prepare has succeeded.
func (p *Processor) Prepared() bool {
	return p.prepared
}

// SampleRate returns the prepared sample rate.
func (p *Processor) SampleRate() float64 {
	return p.cfg.SampleRate
}

// MaxBlockSize returns the prepared maximum block size.
func (p *Processor) MaxBlockSize() int {
	return p.cfg.BlockSize
}

// Channels returns the number of channels Process filters.
func (p *Processor) Channels() int {
	return p.cfg.Channels
}

// Channel returns the filter path of channel i for inspection.
func (p *Processor) Channel(i int) *ChannelChain {
	return p.sync.Channel(i)
}

// Reset clears all filter state without changing coefficients.
func (p *Processor) Reset() {
	p.sync.Reset()
}

// TailSeconds returns the processing tail reported to hosts. IIR state
// is not flushed after input stops, so the tail is zero.
func (p *Processor) TailSeconds() float64 {
	return 0
}
