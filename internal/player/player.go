// Package player streams rendered stereo blocks to the sound card.
package player

import (
	"math"
	"time"

	oto "github.com/ebitengine/oto/v3"
)

// RenderFunc fills one stereo block. left and right have equal length and
// are reused between calls.
type RenderFunc func(left, right []float64)

// Player owns the audio device context.
type Player struct {
	context    *oto.Context
	player     *oto.Player
	sampleRate int
	blockSize  int
	stopChan   chan struct{}
}

// New opens the audio device for stereo float32 output.
func New(sampleRate, blockSize int) (*Player, error) {
	otoContext, readyChan, err := oto.NewContext(&oto.NewContextOptions{
		SampleRate:   sampleRate,
		ChannelCount: 2,
		Format:       oto.FormatFloat32LE,
		BufferSize:   100 * time.Millisecond,
	})
	if err != nil {
		return nil, err
	}

	<-readyChan

	return &Player{
		context:    otoContext,
		sampleRate: sampleRate,
		blockSize:  blockSize,
		stopChan:   make(chan struct{}),
	}, nil
}

// Start begins playback, pulling blocks from render on the device goroutine.
func (p *Player) Start(render RenderFunc) {
	p.player = p.context.NewPlayer(newBlockReader(render, p.blockSize, p.stopChan))
	p.player.Play()
}

// Stop pauses playback. It may be called once.
func (p *Player) Stop() {
	close(p.stopChan)
	if p.player != nil {
		p.player.Pause()
	}
}

// Close stops playback and releases the player.
func (p *Player) Close() error {
	p.Stop()
	if p.player != nil {
		return p.player.Close()
	}
	return nil
}

// blockReader adapts a RenderFunc to the io.Reader oto pulls from.
type blockReader struct {
	render   RenderFunc
	stopChan <-chan struct{}

	left, right []float64
	buffer      []byte
	bufPos      int
}

func newBlockReader(render RenderFunc, blockSize int, stopChan <-chan struct{}) *blockReader {
	return &blockReader{
		render:   render,
		stopChan: stopChan,
		left:     make([]float64, blockSize),
		right:    make([]float64, blockSize),
		buffer:   make([]byte, 0, blockSize*2*4),
	}
}

func (r *blockReader) Read(buf []byte) (int, error) {
	totalRead := 0

	for totalRead < len(buf) {
		if r.bufPos >= len(r.buffer) {
			select {
			case <-r.stopChan:
				return totalRead, nil
			default:
			}

			r.render(r.left, r.right)
			r.buffer = interleaveFloat32LE(r.buffer[:0], r.left, r.right)
			r.bufPos = 0
		}

		n := copy(buf[totalRead:], r.buffer[r.bufPos:])
		r.bufPos += n
		totalRead += n
	}

	return totalRead, nil
}

// interleaveFloat32LE appends left/right frames to dst as clipped
// little-endian float32 pairs.
func interleaveFloat32LE(dst []byte, left, right []float64) []byte {
	for i := range left {
		dst = appendSample(dst, left[i])
		dst = appendSample(dst, right[i])
	}
	return dst
}

func appendSample(dst []byte, sample float64) []byte {
	clamped := math.Max(-1, math.Min(1, sample))
	bits := math.Float32bits(float32(clamped))
	return append(dst, byte(bits), byte(bits>>8), byte(bits>>16), byte(bits>>24))
}
