package testutil

import "math/rand"

// DeterministicNoise generates white noise in [-amplitude, amplitude] with a
// fixed seed for reproducibility.
func DeterministicNoise(seed int64, amplitude float64, length int) []float64 {
	out := make([]float64, length)
	rng := rand.New(rand.NewSource(seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out
}

// Impulse generates a unit impulse at the given position.
func Impulse(length, pos int) []float64 {
	out := make([]float64, length)
	if pos >= 0 && pos < length {
		out[pos] = 1
	}
	return out
}

// DC generates a constant-valued signal.
func DC(value float64, length int) []float64 {
	out := make([]float64, length)
	for i := range out {
		out[i] = value
	}
	return out
}

// PowersOf2 returns 1, 2, 4, ... up to and including limit.
func PowersOf2(limit int) []int {
	var sizes []int
	for n := 1; n <= limit; n <<= 1 {
		sizes = append(sizes, n)
	}
	return sizes
}
