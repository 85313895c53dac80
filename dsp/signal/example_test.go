package signal_test

import (
	"fmt"
	"math"

	"github.com/cwbudde/algo-hilocut/dsp/core"
	"github.com/cwbudde/algo-hilocut/dsp/signal"
)

func ExampleSine_Fill() {
	s, err := signal.NewSine(250, 1, core.WithSampleRate(1000))
	if err != nil {
		panic(err)
	}

	x := make([]float64, 5)
	s.Fill(x)
	rounded := make([]int, len(x))
	for i, v := range x {
		rounded[i] = int(math.Round(v))
	}

	fmt.Println(rounded)
	// Output: [0 1 0 -1 0]
}
