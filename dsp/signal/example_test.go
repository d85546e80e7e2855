package signal_test

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/signal"
)

func ExampleSample() {
	s := signal.Sample([]float64{1}, 4)
	fmt.Printf("%.1f %.1f %.1f %.1f\n", s[0], s[1], s[2], s[3])

	// Output:
	// 0.0 1.0 0.0 -1.0
}

func ExampleGenerator_SineMixture() {
	g := signal.NewGenerator(core.WithSampleRate(8))
	x, err := g.SineMixture([]float64{1, 2}, 0.5, 3)
	if err != nil {
		panic(err)
	}

	fmt.Printf("%.3f %.3f %.3f\n", x[0], x[1], x[2])

	// Output:
	// 0.000 0.854 0.500
}
