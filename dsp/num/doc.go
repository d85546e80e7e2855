// Package num provides the complex value type used by the transforms.
//
// [Complex] is a plain (real, imaginary) pair with value semantics. All
// arithmetic returns new values, except [Complex.Accumulate] which adds into
// its receiver so that long sums avoid temporaries. Operations are total over
// IEEE-754: NaN and Inf propagate but nothing panics.
//
// Conversion helpers bridge to Go's builtin complex128 for interop with
// third-party FFT backends.
package num
