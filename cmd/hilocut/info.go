package main

import (
	"flag"
	"fmt"
	"io"
	"text/tabwriter"

	"github.com/cwbudde/algo-hilocut/dsp/core"
	"github.com/cwbudde/algo-hilocut/dsp/filter/biquad"
	"github.com/cwbudde/algo-hilocut/dsp/filter/cut"
	"github.com/cwbudde/algo-hilocut/dsp/hilocut"
	"github.com/cwbudde/algo-hilocut/measure/response"
)

var probeFrequencies = []float64{20, 31.5, 63, 125, 250, 500, 1000, 2000, 4000, 8000, 16000, 20000}

func runInfo(args []string, w io.Writer) error {
	fs := flag.NewFlagSet("info", flag.ContinueOnError)
	sr := fs.Float64("sr", 48000, "sample rate in Hz")
	lowCut := fs.Float64("lowcut", hilocut.DefaultLowCutFreq, "low-cut frequency in Hz")
	highCut := fs.Float64("highcut", hilocut.DefaultHighCutFreq, "high-cut frequency in Hz")
	fftSize := fs.Int("fft", 1<<16, "impulse-response length for the measured column (power of two, 0 disables)")

	s := hilocut.DefaultSettings()
	fs.TextVar(&s.LowCutSlope, "lowslope", hilocut.DefaultSlope, "low-cut slope (12, 24, 36, 48)")
	fs.TextVar(&s.HighCutSlope, "highslope", hilocut.DefaultSlope, "high-cut slope (12, 24, 36, 48)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	s.LowCutFreq = *lowCut
	s.HighCutFreq = *highCut

	return printInfo(w, s, *sr, *fftSize)
}

func printInfo(w io.Writer, s hilocut.Settings, sampleRate float64, fftSize int) error {
	p := hilocut.New(hilocut.WithSettings(s), hilocut.WithStream(core.WithChannels(1)))
	if err := p.Prepare(sampleRate, max(fftSize, 1)); err != nil {
		return err
	}
	s = p.Parameters().Snapshot()
	ch := p.Channel(0)

	fmt.Fprintf(w, "Sample rate: %.0f Hz   Kernel: %s\n", sampleRate, biquad.KernelName())
	fmt.Fprintf(w, "Low cut:  %.1f Hz, %v\n", s.LowCutFreq, s.LowCutSlope)
	fmt.Fprintf(w, "High cut: %.1f Hz, %v\n\n", s.HighCutFreq, s.HighCutSlope)

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Band\tStage\tB0\tB1\tB2\tA1\tA2\tStable\n")
	fmt.Fprintf(tw, "----\t-----\t--\t--\t--\t--\t--\t------\n")
	writeStages(tw, "low cut", &ch.LowCut)
	writeStages(tw, "high cut", &ch.HighCut)
	if err := tw.Flush(); err != nil {
		return err
	}
	fmt.Fprintln(w)

	var measured *response.Response
	if fftSize > 0 {
		var err error
		measured, err = response.Measure(func(buf []float64) {
			p.Process([][]float64{buf})
		}, fftSize, sampleRate)
		if err != nil {
			return err
		}
	}

	tw = tabwriter.NewWriter(w, 0, 0, 2, ' ', 0)
	fmt.Fprintf(tw, "Freq [Hz]\tLow cut [dB]\tHigh cut [dB]\tTotal [dB]\tMeasured [dB]\n")
	fmt.Fprintf(tw, "---------\t------------\t-------------\t----------\t-------------\n")
	for _, f := range probeFrequencies {
		if f >= sampleRate/2 {
			break
		}
		low := ch.LowCut.MagnitudeDB(f, sampleRate)
		high := ch.HighCut.MagnitudeDB(f, sampleRate)
		meas := "-"
		if measured != nil {
			meas = fmt.Sprintf("%.2f", measured.MagnitudeDB(f))
		}
		fmt.Fprintf(tw, "%g\t%.2f\t%.2f\t%.2f\t%s\n", f, low, high, low+high, meas)
	}
	return tw.Flush()
}

func writeStages(w io.Writer, band string, chain *cut.Chain) {
	for i := range cut.MaxStages {
		if chain.Bypassed(i) {
			fmt.Fprintf(w, "%s\t%d\tbypassed\t\t\t\t\t\n", band, i)
			continue
		}
		c := chain.Stage(i).Coefficients()
		fmt.Fprintf(w, "%s\t%d\t%.8f\t%.8f\t%.8f\t%.8f\t%.8f\t%v\n",
			band, i, c.B0, c.B1, c.B2, c.A1, c.A2, c.IsStable())
	}
}
