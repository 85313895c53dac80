package main

import (
	"flag"
	"log"
	"os"
	"os/signal"
	"syscall"
	"time"

	"github.com/cwbudde/algo-hilocut/dsp/hilocut"
	dspsignal "github.com/cwbudde/algo-hilocut/dsp/signal"
	"github.com/cwbudde/algo-hilocut/internal/config"
	"github.com/cwbudde/algo-hilocut/internal/meter"
	"github.com/cwbudde/algo-hilocut/internal/player"
	"github.com/cwbudde/algo-hilocut/internal/remote"
)

func runPlay(args []string) error {
	cfg := config.Load()

	fs := flag.NewFlagSet("play", flag.ContinueOnError)
	sampleRate := fs.Int("sr", cfg.SampleRate, "sample rate in Hz")
	blockSize := fs.Int("block", cfg.BlockSize, "processing block size in samples")
	level := fs.Float64("level", cfg.NoiseLevel, "noise amplitude (0..1)")
	duration := fs.Duration("duration", 0, "stop after this long (0 plays until interrupted)")

	s := cfg.Settings
	lowCut := fs.Float64("lowcut", s.LowCutFreq, "low-cut frequency in Hz")
	highCut := fs.Float64("highcut", s.HighCutFreq, "high-cut frequency in Hz")
	fs.TextVar(&s.LowCutSlope, "lowslope", s.LowCutSlope, "low-cut slope (12, 24, 36, 48)")
	fs.TextVar(&s.HighCutSlope, "highslope", s.HighCutSlope, "high-cut slope (12, 24, 36, 48)")

	if err := fs.Parse(args); err != nil {
		return err
	}
	s.LowCutFreq = *lowCut
	s.HighCutFreq = *highCut

	params := hilocut.NewParameters(s)
	proc := hilocut.New(hilocut.WithParameters(params))
	if err := proc.Prepare(float64(*sampleRate), *blockSize); err != nil {
		return err
	}

	noiseL, err := dspsignal.NewNoise(*level, dspsignal.WithSeed(1))
	if err != nil {
		return err
	}
	noiseR, err := dspsignal.NewNoise(*level, dspsignal.WithSeed(2))
	if err != nil {
		return err
	}

	var m meter.Meter
	block := make([][]float64, 2)
	render := func(left, right []float64) {
		noiseL.Fill(left)
		noiseR.Fill(right)
		block[0], block[1] = left, right
		proc.Process(block)
		m.Add(left)
		m.Add(right)
	}

	out, err := player.New(*sampleRate, *blockSize)
	if err != nil {
		return err
	}
	defer out.Close()

	if cfg.MQTTBroker != "" {
		rc, err := remote.NewClient(remote.Options{
			Broker:   cfg.MQTTBroker,
			Port:     cfg.MQTTPort,
			User:     cfg.MQTTUser,
			Password: cfg.MQTTPassword,
			Topic:    cfg.MQTTTopic,
		}, params)
		if err != nil {
			return err
		}
		defer rc.Close()
	}

	out.Start(render)
	cur := params.Snapshot()
	log.Printf("Playing noise: low cut %.0f Hz %v, high cut %.0f Hz %v",
		cur.LowCutFreq, cur.LowCutSlope, cur.HighCutFreq, cur.HighCutSlope)

	sigChan := make(chan os.Signal, 1)
	signal.Notify(sigChan, syscall.SIGINT, syscall.SIGTERM)

	var stop <-chan time.Time
	if *duration > 0 {
		stop = time.After(*duration)
	}

	interval := cfg.MeterInterval
	if interval <= 0 {
		interval = time.Second
	}
	ticker := time.NewTicker(interval)
	defer ticker.Stop()

	for {
		select {
		case <-ticker.C:
			l := m.Take()
			cur := params.Snapshot()
			log.Printf("Level: peak %.1f dB, rms %.1f dB (low cut %.0f Hz %v, high cut %.0f Hz %v)",
				l.PeakDB, l.RMSDB, cur.LowCutFreq, cur.LowCutSlope, cur.HighCutFreq, cur.HighCutSlope)
		case <-sigChan:
			log.Println("Shutting down...")
			return nil
		case <-stop:
			return nil
		}
	}
}
