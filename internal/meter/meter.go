// Package meter tracks peak and RMS levels of an audio stream.
package meter

import (
	"sync"

	"github.com/cwbudde/algo-vecmath"
)

// FloorDB is the level reported for silence.
const FloorDB = -120.0

// Level is one meter reading.
type Level struct {
	PeakDB  float64
	RMSDB   float64
	Samples int
}

// Meter accumulates block levels until the next Take. It is safe for one
// writer and any number of readers.
type Meter struct {
	mu    sync.Mutex
	peak  float64
	sumSq float64
	n     int
}

// Add accumulates block into the current reading.
func (m *Meter) Add(block []float64) {
	if len(block) == 0 {
		return
	}
	peak := vecmath.MaxAbs(block)
	energy := vecmath.DotProduct(block, block)

	m.mu.Lock()
	m.peak = max(m.peak, peak)
	m.sumSq += energy
	m.n += len(block)
	m.mu.Unlock()
}

// Take returns the reading since the last Take and starts a new one.
func (m *Meter) Take() Level {
	m.mu.Lock()
	peak, sumSq, n := m.peak, m.sumSq, m.n
	m.peak, m.sumSq, m.n = 0, 0, 0
	m.mu.Unlock()

	l := Level{PeakDB: FloorDB, RMSDB: FloorDB, Samples: n}
	if n == 0 {
		return l
	}
	l.PeakDB = toDB(peak)
	l.RMSDB = toDB(mathSqrt(sumSq / float64(n)))
	return l
}

func toDB(linear float64) float64 {
	if !(linear > 0) {
		return FloorDB
	}
	return max(amplitudeToDB(linear), FloorDB)
}
