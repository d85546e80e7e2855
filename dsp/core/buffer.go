package core

// EnsureLen returns a slice with the requested length, reusing buf capacity if possible.
func EnsureLen(buf []float64, n int) []float64 {
	if n <= 0 {
		return buf[:0]
	}
	if cap(buf) >= n {
		return buf[:n]
	}
	return make([]float64, n)
}

// ZeroPadded returns a copy of src extended with zeros to length n.
// If n is not larger than len(src), the copy has len(src) elements.
func ZeroPadded(src []float64, n int) []float64 {
	if n < len(src) {
		n = len(src)
	}
	out := make([]float64, n)
	copy(out, src)
	return out
}
