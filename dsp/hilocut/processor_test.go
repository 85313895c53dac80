package hilocut

import (
	"errors"
	"math"
	"testing"

	"github.com/cwbudde/algo-hilocut/dsp/core"
	"github.com/cwbudde/algo-hilocut/dsp/filter/cut"
	"github.com/cwbudde/algo-hilocut/internal/testutil"
)

const (
	testSampleRate = 48000.0
	testBlockSize  = 512
)

func newPrepared(t *testing.T, s Settings, opts ...Option) *Processor {
	t.Helper()
	p := New(append([]Option{WithSettings(s)}, opts...)...)
	if err := p.Prepare(testSampleRate, testBlockSize); err != nil {
		t.Fatalf("Prepare: %v", err)
	}
	return p
}

// runMono streams x through channel 0 of p in testBlockSize blocks.
func runMono(p *Processor, x []float64) {
	for _, b := range testutil.Blocks(x, testBlockSize) {
		p.Process([][]float64{b})
	}
}

// settledGainDB returns the steady-state RMS gain for a sine at freq,
// measured over the last second of a two-second run.
func settledGainDB(p *Processor, freq float64) float64 {
	in := testutil.DeterministicSine(freq, testSampleRate, 0.5, 2*int(testSampleRate))
	out := append([]float64(nil), in...)
	runMono(p, out)

	tail := len(in) - int(testSampleRate)
	return testutil.GainDB(in[tail:], out[tail:])
}

func TestProcessor_FortyEightDBLowCutScenario(t *testing.T) {
	s := DefaultSettings()
	s.LowCutFreq = 1000
	s.LowCutSlope = cut.Slope48

	p := newPrepared(t, s)
	low := &p.Channel(0).LowCut
	if low.ActiveStages() != 4 {
		t.Fatalf("active low-cut stages = %d, want 4", low.ActiveStages())
	}

	testutil.RequireDBNear(t, "gain one octave below cutoff", settledGainDB(p, 500), -48.2, 1)

	p.Reset()
	if got := settledGainDB(p, 100); got > -120 {
		t.Fatalf("gain at 100 Hz = %.1f dB, want < -120 dB", got)
	}
}

func TestProcessor_DefaultsPassAudio(t *testing.T) {
	p := newPrepared(t, DefaultSettings())
	for _, f := range []float64{200, 1000, 5000} {
		p.Reset()
		testutil.RequireDBNear(t, "passband gain", settledGainDB(p, f), 0, 0.05)
	}
}

func TestProcessor_HighCut(t *testing.T) {
	s := DefaultSettings()
	s.HighCutFreq = 2000
	s.HighCutSlope = cut.Slope24

	p := newPrepared(t, s)
	// One octave above the cutoff a 4th-order Butterworth is down ~24 dB.
	if got := settledGainDB(p, 4000); got > -22 || got < -27 {
		t.Fatalf("gain at 4 kHz = %.2f dB, want about -24 dB", got)
	}
}

func TestProcessor_StableOverLongRun(t *testing.T) {
	for _, slope := range cut.Slopes() {
		s := Settings{
			LowCutFreq:   MinFrequency,
			HighCutFreq:  MaxFrequency,
			LowCutSlope:  slope,
			HighCutSlope: slope,
		}
		p := newPrepared(t, s)

		noise := testutil.DeterministicNoise(int64(slope)+1, 1, 16*testBlockSize)
		blocks := testutil.Blocks(noise, testBlockSize)
		left := make([]float64, testBlockSize)
		right := make([]float64, testBlockSize)

		blockCount := 10000
		if testing.Short() {
			blockCount = 500
		}
		for i := range blockCount {
			copy(left, blocks[i%len(blocks)])
			copy(right, blocks[(i+3)%len(blocks)])
			p.Process([][]float64{left, right})

			for j := range left {
				if math.IsNaN(left[j]) || math.Abs(left[j]) > 8 || math.Abs(right[j]) > 8 {
					t.Fatalf("slope %v block %d: diverged (%v, %v)", slope, i, left[j], right[j])
				}
			}
		}
	}
}

func TestProcessor_SlopeChangeMidStream(t *testing.T) {
	s := DefaultSettings()
	s.LowCutFreq = 1000
	p := newPrepared(t, s)

	in := testutil.DeterministicNoise(7, 0.5, testBlockSize)
	block := append([]float64(nil), in...)
	p.Process([][]float64{block, make([]float64, testBlockSize)})

	low := &p.Channel(0).LowCut
	if low.ActiveStages() != 1 {
		t.Fatalf("active stages before change = %d", low.ActiveStages())
	}

	s.LowCutSlope = cut.Slope48
	p.ParametersChanged(s)
	for i := 1; i < cut.MaxStages; i++ {
		if !low.Bypassed(i) {
			t.Fatalf("stage %d active before the next block", i)
		}
	}

	block = append(block[:0], in...)
	p.Process([][]float64{block, make([]float64, testBlockSize)})
	if len(block) != testBlockSize {
		t.Fatalf("block length changed to %d", len(block))
	}
	for ch := range 2 {
		for i := range cut.MaxStages {
			if p.Channel(ch).LowCut.Bypassed(i) {
				t.Fatalf("channel %d stage %d still bypassed after change", ch, i)
			}
		}
	}
}

func TestProcessor_ProcessZeroAlloc(t *testing.T) {
	p := newPrepared(t, DefaultSettings())
	left := testutil.DeterministicNoise(1, 0.5, testBlockSize)
	right := testutil.DeterministicNoise(2, 0.5, testBlockSize)
	block := [][]float64{left, right}

	gentle := Settings{LowCutFreq: 100, HighCutFreq: 10000, LowCutSlope: cut.Slope12, HighCutSlope: cut.Slope12}
	steep := Settings{LowCutFreq: 400, HighCutFreq: 4000, LowCutSlope: cut.Slope48, HighCutSlope: cut.Slope36}

	n := 0
	allocs := testing.AllocsPerRun(200, func() {
		if n%2 == 0 {
			p.ParametersChanged(steep)
		} else {
			p.ParametersChanged(gentle)
		}
		n++
		p.Process(block)
	})
	if allocs != 0 {
		t.Fatalf("Process allocated %.1f times per run", allocs)
	}
}

func TestProcessor_StereoChannelsIndependent(t *testing.T) {
	s := DefaultSettings()
	s.LowCutFreq = 300
	s.LowCutSlope = cut.Slope36
	p := newPrepared(t, s)

	left := testutil.DeterministicNoise(3, 0.5, testBlockSize)
	right := make([]float64, testBlockSize)
	p.Process([][]float64{left, right})

	for i, v := range right {
		if v != 0 {
			t.Fatalf("silent right channel produced %v at %d", v, i)
		}
	}
	if p.Channel(0).LowCut.Stage(0).State() == ([2]float64{}) {
		t.Fatal("left channel state did not advance")
	}

	// Identical input on a fresh processor yields identical channels.
	q := newPrepared(t, s)
	a := testutil.DeterministicNoise(4, 0.5, testBlockSize)
	b := append([]float64(nil), a...)
	q.Process([][]float64{a, b})
	testutil.RequireSliceNearlyEqual(t, a, b, 0)
}

func TestProcessor_Mono(t *testing.T) {
	s := DefaultSettings()
	s.LowCutFreq = 2000
	s.LowCutSlope = cut.Slope48
	p := newPrepared(t, s, WithStream(core.WithChannels(1)))
	if p.Channels() != 1 {
		t.Fatalf("Channels() = %d, want 1", p.Channels())
	}

	mono := testutil.DeterministicNoise(5, 0.5, testBlockSize)
	extra := testutil.DeterministicNoise(6, 0.5, testBlockSize)
	extraCopy := append([]float64(nil), extra...)
	monoCopy := append([]float64(nil), mono...)

	p.Process([][]float64{mono, extra})

	testutil.RequireSliceNearlyEqual(t, extra, extraCopy, 0)
	if d, _ := testutil.MaxAbsDiff(mono, monoCopy); d == 0 {
		t.Fatal("mono channel was not filtered")
	}

	// Fewer buffers than channels is fine as well.
	p.Process(nil)
}

func TestProcessor_UnpreparedIsNoOp(t *testing.T) {
	s := DefaultSettings()
	s.LowCutFreq = 5000
	p := New(WithSettings(s))
	if p.Prepared() {
		t.Fatal("new processor reports prepared")
	}

	in := testutil.DeterministicNoise(8, 0.5, 64)
	buf := append([]float64(nil), in...)
	p.Process([][]float64{buf})
	testutil.RequireSliceNearlyEqual(t, buf, in, 0)
}

func TestProcessor_PrepareErrors(t *testing.T) {
	tests := []struct {
		name  string
		sr    float64
		block int
		want  error
	}{
		{"zero rate", 0, 512, core.ErrInvalidSampleRate},
		{"negative rate", -48000, 512, core.ErrInvalidSampleRate},
		{"nan rate", math.NaN(), 512, core.ErrInvalidSampleRate},
		{"inf rate", math.Inf(1), 512, core.ErrInvalidSampleRate},
		{"zero block", 48000, 0, core.ErrInvalidBlockSize},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			p := New()
			if err := p.Prepare(tt.sr, tt.block); !errors.Is(err, tt.want) {
				t.Fatalf("Prepare err = %v, want %v", err, tt.want)
			}
			if p.Prepared() {
				t.Fatal("failed Prepare marked processor prepared")
			}
		})
	}
}

func TestProcessor_PrepareResetsState(t *testing.T) {
	s := DefaultSettings()
	s.LowCutFreq = 500
	p := newPrepared(t, s)

	runMono(p, testutil.DeterministicNoise(9, 0.5, 4*testBlockSize))
	if p.Channel(0).LowCut.Stage(0).State() == ([2]float64{}) {
		t.Fatal("state did not advance")
	}

	if err := p.Prepare(44100, 256); err != nil {
		t.Fatal(err)
	}
	if p.SampleRate() != 44100 || p.MaxBlockSize() != 256 {
		t.Fatalf("prepared stream = %v Hz / %d", p.SampleRate(), p.MaxBlockSize())
	}
	for ch := range 2 {
		for i := range cut.MaxStages {
			if st := p.Channel(ch).LowCut.Stage(i).State(); st != ([2]float64{}) {
				t.Fatalf("channel %d stage %d state after Prepare = %v", ch, i, st)
			}
		}
	}
}

func TestProcessor_SharedParameters(t *testing.T) {
	params := NewParameters(DefaultSettings())
	p := New(WithParameters(params))
	if err := p.Prepare(testSampleRate, testBlockSize); err != nil {
		t.Fatal(err)
	}
	if p.Parameters() != params {
		t.Fatal("processor does not use the shared store")
	}

	params.SetHighCutSlope(cut.Slope36)
	p.Process([][]float64{make([]float64, 16), make([]float64, 16)})
	if got := p.Channel(1).HighCut.ActiveStages(); got != 3 {
		t.Fatalf("high-cut active stages = %d, want 3", got)
	}
	if p.TailSeconds() != 0 {
		t.Fatal("TailSeconds must be zero")
	}
}
