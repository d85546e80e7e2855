package spectrum

import (
	"math"
	"testing"

	"github.com/cwbudde/algo-dft/dsp/num"
	"github.com/cwbudde/algo-dft/internal/testutil"
)

func TestMagnitudePower(t *testing.T) {
	bins := []num.Complex{{Re: 3, Im: 4}, {Re: -1, Im: -1}, {}}

	mag := Magnitude(bins)
	if len(mag) != len(bins) {
		t.Fatalf("Magnitude length mismatch: got=%d want=%d", len(mag), len(bins))
	}
	testutil.RequireSliceNearlyEqual(t, mag, []float64{5, math.Sqrt2, 0}, 1e-12)

	pow := Power(bins)
	testutil.RequireSliceNearlyEqual(t, pow, []float64{25, 2, 0}, 1e-12)
}

func TestMagnitudeMatchesScalar(t *testing.T) {
	noise := testutil.DeterministicNoise(7, 10, 257)
	bins := make([]num.Complex, len(noise)-1)
	for i := range bins {
		bins[i] = num.Complex{Re: noise[i], Im: noise[i+1]}
	}

	testutil.RequireSliceNearlyEqual(t, Magnitude(bins), testutil.Magnitudes(bins), 1e-12)
}

func TestEmptyInputs(t *testing.T) {
	if Magnitude(nil) != nil || Power(nil) != nil {
		t.Fatal("expected nil for empty input")
	}
	if i, v := Peak(nil); i != -1 || v != 0 {
		t.Fatalf("Peak(nil) = (%d, %v), want (-1, 0)", i, v)
	}
	if len(Peaks(nil, 0)) != 0 {
		t.Fatal("expected no peaks")
	}
}

func TestMagnitudeDB(t *testing.T) {
	db := MagnitudeDB([]num.Complex{{Re: 10}, {}})
	if math.Abs(db[0]-20) > 1e-12 {
		t.Fatalf("db[0] = %v, want 20", db[0])
	}
	if !math.IsInf(db[1], -1) {
		t.Fatalf("db[1] = %v, want -Inf", db[1])
	}
}

func TestBinFrequency(t *testing.T) {
	f, err := BinFrequency(4, 32, 32)
	if err != nil {
		t.Fatalf("BinFrequency error: %v", err)
	}
	if f != 4 {
		t.Fatalf("BinFrequency = %v, want 4", f)
	}

	f, err = BinFrequency(1, 1024, 48000)
	if err != nil {
		t.Fatalf("BinFrequency error: %v", err)
	}
	if math.Abs(f-46.875) > 1e-12 {
		t.Fatalf("BinFrequency = %v, want 46.875", f)
	}

	if _, err := BinFrequency(1, 0, 48000); err == nil {
		t.Fatal("expected error for zero size")
	}
	if _, err := BinFrequency(1, 8, 0); err == nil {
		t.Fatal("expected error for zero sample rate")
	}
}

func TestAmplitudeSpectrum(t *testing.T) {
	// |X| of a unit sine at bin 2 of a 16-point transform is 8.
	mags := make([]float64, 16)
	mags[0] = 16
	mags[2] = 8
	mags[8] = 16

	amp, err := AmplitudeSpectrum(mags, 16)
	if err != nil {
		t.Fatalf("AmplitudeSpectrum error: %v", err)
	}
	if len(amp) != 9 {
		t.Fatalf("len = %d, want 9", len(amp))
	}
	if amp[0] != 1 || amp[2] != 1 || amp[8] != 1 {
		t.Fatalf("unexpected amplitudes: %v", amp)
	}

	if _, err := AmplitudeSpectrum(mags[:4], 16); err == nil {
		t.Fatal("expected error for short input")
	}
	if _, err := AmplitudeSpectrum(mags, 0); err == nil {
		t.Fatal("expected error for zero size")
	}
}

func TestPeaks(t *testing.T) {
	mags := []float64{0.1, 0.2, 16, 0.3, 16, 0.2, 0.5, 0.4}

	got := Peaks(mags, 1)
	if len(got) != 2 || got[0] != 2 || got[1] != 4 {
		t.Fatalf("Peaks = %v, want [2 4]", got)
	}

	got = Peaks(mags, 0.15)
	if len(got) != 3 || got[2] != 6 {
		t.Fatalf("Peaks = %v, want [2 4 6]", got)
	}

	i, v := Peak(mags)
	if i != 2 || v != 16 {
		t.Fatalf("Peak = (%d, %v), want (2, 16)", i, v)
	}
}
