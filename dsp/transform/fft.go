package transform

import (
	"fmt"

	"golang.org/x/sync/semaphore"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/num"
)

// FFT computes all N bins of the discrete Fourier transform of samples using
// recursive radix-2 decimation-in-time.
//
// N must be zero or a power of two; otherwise the returned error wraps
// [ErrNotPowerOfTwo]. FFT of an empty input is an empty slice and FFT of a
// single sample x is [x + 0i].
//
// opts may enable fork-join execution (core.WithParallelThreshold,
// core.WithWorkers). The sample rate option has no effect here.
func FFT(samples []float64, opts ...core.ProcessorOption) ([]num.Complex, error) {
	n := len(samples)
	if n == 0 {
		return []num.Complex{}, nil
	}
	if !core.IsPowerOf2(n) {
		return nil, fmt.Errorf("%w: %d samples", ErrNotPowerOfTwo, n)
	}

	r := radix2{samples: samples}

	cfg := core.ApplyProcessorOptions(opts...)
	if cfg.Parallel() && n >= cfg.ParallelThreshold {
		r.threshold = cfg.ParallelThreshold
		r.sem = semaphore.NewWeighted(int64(cfg.Workers))
	}

	out := make([]num.Complex, n)
	r.transform(out, 0, 1)

	return out, nil
}

// ZeroPad returns a copy of samples extended with zeros to the next power of
// two, making it a valid FFT input. Bin k of the padded transform corresponds
// to frequency k*sampleRate/len(padded).
func ZeroPad(samples []float64) []float64 {
	if len(samples) == 0 {
		return []float64{}
	}
	return core.ZeroPadded(samples, core.NextPowerOf2(len(samples)))
}

// radix2 holds the shared input buffer of one FFT call. Sub-problems are
// addressed as (offset, stride) views over samples, so nothing is copied on
// the divide step.
type radix2 struct {
	samples []float64

	// Fork-join settings. sem is nil for sequential execution.
	threshold int
	sem       *semaphore.Weighted
}

// transform writes the len(out)-point DFT of
// samples[offset], samples[offset+stride], samples[offset+2*stride], ...
// into out. len(out) is a power of two.
//
// The even-indexed half is transformed into out[:n/2] and the odd-indexed
// half into out[n/2:], then both are merged in place by the butterfly.
func (r *radix2) transform(out []num.Complex, offset, stride int) {
	n := len(out)
	if n == 1 {
		out[0] = num.Real(r.samples[offset])
		return
	}

	half := n / 2
	even, odd := out[:half], out[half:]

	if r.sem != nil && n >= r.threshold && r.sem.TryAcquire(1) {
		done := make(chan struct{})
		go func() {
			defer close(done)
			defer r.sem.Release(1)
			r.transform(odd, offset+stride, 2*stride)
		}()
		r.transform(even, offset, 2*stride)
		<-done
	} else {
		r.transform(even, offset, 2*stride)
		r.transform(odd, offset+stride, 2*stride)
	}

	for k := range half {
		t := even[k]
		u := num.Twiddle(k, n).Mul(odd[k])
		even[k] = t.Add(u)
		odd[k] = t.Sub(u)
	}
}
