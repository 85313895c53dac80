package remote

import (
	"encoding/json"
	"errors"
	"testing"

	"github.com/cwbudde/algo-hilocut/dsp/filter/cut"
	"github.com/cwbudde/algo-hilocut/dsp/hilocut"
)

func TestApply(t *testing.T) {
	p := hilocut.NewParameters(hilocut.DefaultSettings())

	steps := []struct {
		command, payload string
	}{
		{CommandLowCutFreq, "250"},
		{CommandLowCutSlope, "36 dB/oct"},
		{CommandHighCutFreq, " 7500.5 "},
		{CommandHighCutSlope, "3"},
	}
	for _, s := range steps {
		if err := Apply(p, s.command, s.payload); err != nil {
			t.Fatalf("Apply(%s, %q): %v", s.command, s.payload, err)
		}
	}

	got := p.Snapshot()
	if got.LowCutFreq != 250 || got.LowCutSlope != cut.Slope36 {
		t.Fatalf("low cut = %v / %v", got.LowCutFreq, got.LowCutSlope)
	}
	if got.HighCutFreq != 7500.5 || got.HighCutSlope != cut.Slope48 {
		t.Fatalf("high cut = %v / %v", got.HighCutFreq, got.HighCutSlope)
	}
}

func TestApplyClampsFrequency(t *testing.T) {
	p := hilocut.NewParameters(hilocut.DefaultSettings())
	if err := Apply(p, CommandHighCutFreq, "99999"); err != nil {
		t.Fatal(err)
	}
	if p.HighCutFreq() != hilocut.MaxFrequency {
		t.Fatalf("HighCutFreq = %v", p.HighCutFreq())
	}
}

func TestApplyRejects(t *testing.T) {
	p := hilocut.NewParameters(hilocut.DefaultSettings())
	before := p.Snapshot()

	if err := Apply(p, "volume", "1"); !errors.Is(err, ErrUnknownCommand) {
		t.Fatalf("unknown command err = %v", err)
	}
	if err := Apply(p, CommandLowCutSlope, "18"); !errors.Is(err, cut.ErrInvalidSlope) {
		t.Fatalf("bad slope err = %v", err)
	}
	if err := Apply(p, CommandLowCutFreq, "loud"); err == nil {
		t.Fatal("expected error for non-numeric frequency")
	}

	if p.Snapshot() != before {
		t.Fatal("rejected commands changed parameters")
	}
}

func TestCommandFromTopic(t *testing.T) {
	tests := []struct {
		topic string
		want  string
		ok    bool
	}{
		{"studio/hilocut/lowcut/freq/set", "lowcut/freq", true},
		{"studio/hilocut/highcut/slope/set", "highcut/slope", true},
		{"studio/hilocut/state", "", false},
		{"other/lowcut/freq/set", "", false},
	}
	for _, tt := range tests {
		got, ok := commandFromTopic("studio/hilocut", tt.topic)
		if ok != tt.ok || got != tt.want {
			t.Fatalf("commandFromTopic(%q) = %q, %v", tt.topic, got, ok)
		}
	}
}

func TestStateJSON(t *testing.T) {
	s := hilocut.DefaultSettings()
	s.LowCutFreq = 80
	s.LowCutSlope = cut.Slope24
	p := hilocut.NewParameters(s)

	data, err := stateJSON(p)
	if err != nil {
		t.Fatal(err)
	}

	var fields map[string]any
	if err := json.Unmarshal(data, &fields); err != nil {
		t.Fatal(err)
	}
	if fields["lowCutFreq"] != 80.0 || fields["lowCutSlope"] != "24 dB/oct" {
		t.Fatalf("state = %s", data)
	}

	var back hilocut.Settings
	if err := json.Unmarshal(data, &back); err != nil {
		t.Fatal(err)
	}
	if back != s {
		t.Fatalf("state round trip = %+v, want %+v", back, s)
	}
}
