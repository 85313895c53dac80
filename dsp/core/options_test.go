package core

import (
	"errors"
	"math"
	"testing"
)

func TestApplyProcessorOptions(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(96000), WithBlockSize(2048), WithChannels(1))
	if cfg.SampleRate != 96000 {
		t.Fatalf("sample rate = %v, want 96000", cfg.SampleRate)
	}
	if cfg.BlockSize != 2048 {
		t.Fatalf("block size = %d, want 2048", cfg.BlockSize)
	}
	if cfg.Channels != 1 {
		t.Fatalf("channels = %d, want 1", cfg.Channels)
	}
}

func TestInvalidOptionsIgnored(t *testing.T) {
	cfg := ApplyProcessorOptions(WithSampleRate(0), WithBlockSize(-1), WithChannels(3), nil)
	def := DefaultProcessorConfig()
	if cfg != def {
		t.Fatalf("cfg = %#v, want %#v", cfg, def)
	}
}

func TestValidate(t *testing.T) {
	tests := []struct {
		name string
		cfg  ProcessorConfig
		want error
	}{
		{name: "default", cfg: DefaultProcessorConfig(), want: nil},
		{name: "zero rate", cfg: ProcessorConfig{SampleRate: 0, BlockSize: 64, Channels: 2}, want: ErrInvalidSampleRate},
		{name: "nan rate", cfg: ProcessorConfig{SampleRate: math.NaN(), BlockSize: 64, Channels: 2}, want: ErrInvalidSampleRate},
		{name: "inf rate", cfg: ProcessorConfig{SampleRate: math.Inf(1), BlockSize: 64, Channels: 2}, want: ErrInvalidSampleRate},
		{name: "zero block", cfg: ProcessorConfig{SampleRate: 44100, BlockSize: 0, Channels: 2}, want: ErrInvalidBlockSize},
		{name: "no channels", cfg: ProcessorConfig{SampleRate: 44100, BlockSize: 64, Channels: 0}, want: ErrInvalidChannels},
		{name: "surround", cfg: ProcessorConfig{SampleRate: 44100, BlockSize: 64, Channels: 6}, want: ErrInvalidChannels},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := tt.cfg.Validate()
			if tt.want == nil {
				if err != nil {
					t.Fatalf("Validate() = %v, want nil", err)
				}
				return
			}
			if !errors.Is(err, tt.want) {
				t.Fatalf("Validate() = %v, want %v", err, tt.want)
			}
		})
	}
}
