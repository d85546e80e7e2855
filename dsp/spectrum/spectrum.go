package spectrum

import (
	"fmt"
	"sync"

	"github.com/cwbudde/algo-vecmath"
	"gonum.org/v1/gonum/floats"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/num"
)

// scratchBuf holds pooled scratch memory for complex-to-real unpacking.
type scratchBuf struct {
	data []float64
}

var scratchPool = sync.Pool{
	New: func() any { return &scratchBuf{} },
}

func getScratch(n int) (re, im []float64, buf *scratchBuf) {
	buf = scratchPool.Get().(*scratchBuf)
	buf.data = core.EnsureLen(buf.data, 2*n)
	return buf.data[:n], buf.data[n : 2*n], buf
}

func putScratch(buf *scratchBuf) {
	scratchPool.Put(buf)
}

// split unpacks bins into pooled real and imaginary slices.
func split(bins []num.Complex) (re, im []float64, buf *scratchBuf) {
	re, im, buf = getScratch(len(bins))
	for i, c := range bins {
		re[i] = c.Re
		im[i] = c.Im
	}
	return re, im, buf
}

// Magnitude returns |X[k]| for each bin.
//
// This uses SIMD-optimized kernels when available (AVX2, SSE2, NEON).
// Scratch buffers are pooled, so in steady state this allocates only the
// output slice. The result matches num.Complex.Magnitude per bin.
func Magnitude(bins []num.Complex) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	re, im, buf := split(bins)
	vecmath.Magnitude(out, re, im)
	putScratch(buf)
	return out
}

// Power returns |X[k]|^2 for each bin.
func Power(bins []num.Complex) []float64 {
	if len(bins) == 0 {
		return nil
	}

	out := make([]float64, len(bins))
	re, im, buf := split(bins)
	vecmath.Power(out, re, im)
	putScratch(buf)
	return out
}

// MagnitudeDB returns 20*log10(|X[k]|) for each bin. Empty bins map to -Inf.
func MagnitudeDB(bins []num.Complex) []float64 {
	out := Magnitude(bins)
	for i, m := range out {
		out[i] = core.LinearToDB(m)
	}
	return out
}

// BinFrequency returns the center frequency of bin k for an n-point
// transform at sampleRate: k*sampleRate/n.
func BinFrequency(k, n int, sampleRate float64) (float64, error) {
	if n <= 0 {
		return 0, fmt.Errorf("bin frequency transform size must be > 0: %d", n)
	}
	if sampleRate <= 0 {
		return 0, fmt.Errorf("bin frequency sampleRate must be > 0: %f", sampleRate)
	}
	return float64(k) * sampleRate / float64(n), nil
}

// AmplitudeSpectrum converts the magnitudes of the first n/2+1 bins of an
// n-point transform of a real signal to single-sided sine amplitudes.
// DC and Nyquist are scaled by 1/n, all other bins by 2/n.
func AmplitudeSpectrum(mags []float64, n int) ([]float64, error) {
	if n <= 0 {
		return nil, fmt.Errorf("amplitude spectrum transform size must be > 0: %d", n)
	}
	half := n/2 + 1
	if len(mags) < half {
		return nil, fmt.Errorf("amplitude spectrum needs %d bins, got %d", half, len(mags))
	}

	out := make([]float64, half)
	copy(out, mags[:half])
	floats.Scale(2/float64(n), out)
	out[0] /= 2
	if n%2 == 0 && n > 1 {
		out[half-1] /= 2
	}
	return out, nil
}

// Peak returns the index and value of the largest magnitude.
// It returns (-1, 0) for empty input.
func Peak(mags []float64) (int, float64) {
	if len(mags) == 0 {
		return -1, 0
	}
	i := floats.MaxIdx(mags)
	return i, mags[i]
}

// Peaks returns the indices of local maxima strictly above threshold, in
// increasing order. End points count as maxima when they exceed their single
// neighbour.
func Peaks(mags []float64, threshold float64) []int {
	var out []int
	for i, m := range mags {
		if !(m > threshold) {
			continue
		}
		if i > 0 && mags[i-1] > m {
			continue
		}
		if i+1 < len(mags) && mags[i+1] >= m {
			continue
		}
		out = append(out, i)
	}
	return out
}
