package transform

import (
	"fmt"

	"github.com/cwbudde/algo-dft/dsp/num"
)

// DFT computes bins [start, end) of the discrete Fourier transform of
// samples by direct summation.
//
// Output index i holds bin start+i:
//
//	X[k] = sum_n samples[n] * exp(-i*2*pi*k*n/N)
//
// Any N is accepted, including zero with an empty range.
func DFT(samples []float64, start, end int) ([]num.Complex, error) {
	n := len(samples)
	if start < 0 || end > n || start > end {
		return nil, fmt.Errorf("%w: [%d, %d) for %d samples", ErrInvalidRange, start, end, n)
	}

	out := make([]num.Complex, end-start)
	for i := range out {
		k := start + i

		var sum num.Complex
		for j, x := range samples {
			// k*j is reduced mod n to keep the twiddle angle in [0, 2*pi).
			w := num.Twiddle((k*j)%n, n)
			sum.Accumulate(num.Real(x).Mul(w))
		}
		out[i] = sum
	}

	return out, nil
}
