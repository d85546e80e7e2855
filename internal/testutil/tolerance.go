package testutil

import (
	"fmt"
	"math"
	"testing"

	"github.com/cwbudde/algo-dft/dsp/num"
)

// RequireSliceNearlyEqual fails t if got and want differ in length or if
// any element pair exceeds eps (absolute tolerance).
func RequireSliceNearlyEqual(t *testing.T, got, want []float64, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for i := range got {
		diff := math.Abs(got[i] - want[i])
		if diff > eps {
			t.Fatalf("index %d: got %v, want %v (diff %v > eps %v)", i, got[i], want[i], diff, eps)
		}
	}
}

// RequireBinsNearlyEqual fails t if got and want differ in length or if the
// distance |got[k]-want[k]| exceeds eps*max(1, |want[k]|), i.e. absolute
// tolerance near zero and relative tolerance for large bins.
func RequireBinsNearlyEqual(t *testing.T, got, want []num.Complex, eps float64) {
	t.Helper()
	if len(got) != len(want) {
		t.Fatalf("length mismatch: got %d, want %d", len(got), len(want))
	}
	for k := range got {
		diff := got[k].Sub(want[k]).Magnitude()
		limit := eps * math.Max(1, want[k].Magnitude())
		if !(diff <= limit) {
			t.Fatalf("bin %d: got %v, want %v (diff %v > %v)", k, got[k], want[k], diff, limit)
		}
	}
}

// RequireFinite fails t if any element is NaN or Inf.
func RequireFinite(t *testing.T, data []float64) {
	t.Helper()
	for i, v := range data {
		if math.IsNaN(v) || math.IsInf(v, 0) {
			t.Fatalf("index %d: non-finite value %v", i, v)
		}
	}
}

// MaxAbsDiff returns the maximum absolute difference between two slices.
// Returns an error if the slices differ in length.
func MaxAbsDiff(a, b []float64) (float64, error) {
	if len(a) != len(b) {
		return 0, fmt.Errorf("length mismatch: %d vs %d", len(a), len(b))
	}
	maxDiff := 0.0
	for i := range a {
		d := math.Abs(a[i] - b[i])
		if d > maxDiff {
			maxDiff = d
		}
	}
	return maxDiff, nil
}

// Magnitudes returns |bins[k]| for each bin.
func Magnitudes(bins []num.Complex) []float64 {
	out := make([]float64, len(bins))
	for i, b := range bins {
		out[i] = b.Magnitude()
	}
	return out
}
