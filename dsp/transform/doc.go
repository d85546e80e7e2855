// Package transform computes the forward Fourier transform of real,
// uniformly sampled signals.
//
// Two algorithms are provided:
//
//   - [DFT]: direct summation over an arbitrary half-open range of bins,
//     O((end-start)*N). Works for any N.
//   - [FFT]: recursive radix-2 decimation-in-time Cooley-Tukey, O(N log N).
//     N must be zero or a power of two.
//
// Both return []num.Complex. For the same input they agree on every bin
// they both produce, within floating-point tolerance.
//
// # Usage
//
//	bins, err := transform.FFT(samples)
//	part, err := transform.DFT(samples, 5, 15) // bins 5..14
//
// The [Transformer] interface wraps the algorithms as interchangeable
// strategies ([Direct], [Fast], [Planned]) so callers can select one by
// name with [Lookup].
//
// # Errors
//
// Inputs are validated up front. A non-power-of-two FFT length yields an
// error wrapping [ErrNotPowerOfTwo]; a DFT range outside [0, N] or with
// start > end yields an error wrapping [ErrInvalidRange]. Inputs are never
// padded implicitly: callers that want zero-padding use [ZeroPad].
//
// # Parallelism
//
// FFT accepts core.ProcessorOption values. With core.WithParallelThreshold
// the two half-size sub-transforms of sufficiently large sub-problems run
// concurrently, bounded by core.WithWorkers. Results are identical to the
// sequential run.
package transform
