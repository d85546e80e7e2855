// Package signal generates deterministic test signals for the transforms.
//
// [Sample] is the quick path: a sum of unit-amplitude sines spanning one
// second at a sample rate equal to the sample count, so a frequency f lands
// exactly on transform bin f. [Generator] exposes the same synthesis with a
// configurable sample rate plus seeded white noise.
package signal
