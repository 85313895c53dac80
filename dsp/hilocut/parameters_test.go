package hilocut

import (
	"sync"
	"testing"

	"github.com/cwbudde/algo-hilocut/dsp/filter/cut"
)

func TestParametersSnapshotRoundTrip(t *testing.T) {
	s := Settings{
		LowCutFreq:   120,
		HighCutFreq:  9000,
		LowCutSlope:  cut.Slope36,
		HighCutSlope: cut.Slope24,
		Gain:         -3,
		DelayTime:    0.5,
		Feedback:     0.4,
		ChorusMix:    0.1,
	}
	p := NewParameters(s)
	if got := p.Snapshot(); got != s {
		t.Fatalf("Snapshot() = %+v, want %+v", got, s)
	}
}

func TestParametersSettersClamp(t *testing.T) {
	p := NewParameters(DefaultSettings())

	p.SetLowCutFreq(1)
	p.SetHighCutFreq(1e6)
	p.SetLowCutSlope(cut.Slope(9))
	p.SetHighCutSlope(cut.Slope(-1))

	if p.LowCutFreq() != MinFrequency {
		t.Fatalf("LowCutFreq = %v", p.LowCutFreq())
	}
	if p.HighCutFreq() != MaxFrequency {
		t.Fatalf("HighCutFreq = %v", p.HighCutFreq())
	}
	if p.LowCutSlope() != cut.Slope48 || p.HighCutSlope() != cut.Slope12 {
		t.Fatalf("slopes = %v / %v", p.LowCutSlope(), p.HighCutSlope())
	}

	p.SetLowCutFreq(440)
	if got := p.Snapshot().LowCutFreq; got != 440 {
		t.Fatalf("snapshot LowCutFreq = %v, want 440", got)
	}
}

func TestParametersConcurrentAccess(t *testing.T) {
	p := NewParameters(DefaultSettings())

	var wg sync.WaitGroup
	wg.Add(2)
	go func() {
		defer wg.Done()
		for i := range 2000 {
			p.SetLowCutFreq(float64(20 + i))
			p.SetLowCutSlope(cut.Slope(i % 4))
		}
	}()
	go func() {
		defer wg.Done()
		for range 2000 {
			s := p.Snapshot()
			if s.LowCutFreq < MinFrequency || s.LowCutFreq > MaxFrequency || !s.LowCutSlope.Valid() {
				t.Errorf("torn snapshot: %+v", s)
				return
			}
		}
	}()
	wg.Wait()
}

func TestParametersSnapshotZeroAlloc(t *testing.T) {
	p := NewParameters(DefaultSettings())
	allocs := testing.AllocsPerRun(100, func() {
		_ = p.Snapshot()
	})
	if allocs != 0 {
		t.Fatalf("Snapshot allocated %.1f times per run", allocs)
	}
}
