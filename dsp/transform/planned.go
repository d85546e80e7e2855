package transform

import (
	"fmt"

	algofft "github.com/MeKo-Christian/algo-fft"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/num"
)

// Planned computes the full spectrum with an algo-fft complex128 plan.
//
// It accepts the same lengths as [FFT] and serves as an optimized reference
// for it. A fresh plan is created per call.
type Planned struct{}

// Name returns "planned".
func (Planned) Name() string { return "planned" }

// Transform runs a forward algo-fft plan over samples promoted to complex128.
func (Planned) Transform(samples []float64) ([]num.Complex, error) {
	n := len(samples)
	switch {
	case n == 0:
		return []num.Complex{}, nil
	case !core.IsPowerOf2(n):
		return nil, fmt.Errorf("%w: %d samples", ErrNotPowerOfTwo, n)
	case n == 1:
		return []num.Complex{num.Real(samples[0])}, nil
	}

	plan, err := algofft.NewPlan64(n)
	if err != nil {
		return nil, fmt.Errorf("transform: failed to create FFT plan: %w", err)
	}

	src := make([]complex128, n)
	for i, v := range samples {
		src[i] = complex(v, 0)
	}

	dst := make([]complex128, n)
	if err := plan.Forward(dst, src); err != nil {
		return nil, fmt.Errorf("transform: failed to compute FFT: %w", err)
	}

	out := make([]num.Complex, n)
	for i, c := range dst {
		out[i] = num.FromComplex128(c)
	}

	return out, nil
}
