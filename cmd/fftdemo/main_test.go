package main

import (
	"bytes"
	"strings"
	"testing"
)

func runDemo(t *testing.T, args ...string) (code int, stdout, stderr string) {
	t.Helper()
	var out, errOut bytes.Buffer
	code = run(args, &out, &errOut)
	return code, out.String(), errOut.String()
}

func TestRunDefaults(t *testing.T) {
	code, out, errOut := runDemo(t)
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut)
	}

	for _, name := range []string{"direct", "fast", "planned"} {
		if !strings.Contains(out, name) {
			t.Fatalf("output missing %q column:\n%s", name, out)
		}
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	if len(lines) != 2+10 {
		t.Fatalf("got %d lines, want 12:\n%s", len(lines), out)
	}

	// Bin 10 holds the 10 Hz tone: |X| = size/2 = 64 in every column.
	row := strings.Fields(lines[2+5])
	if row[0] != "10" {
		t.Fatalf("row = %v, want bin 10", row)
	}
	for _, v := range row[2:] {
		if v != "64.000000" {
			t.Fatalf("row = %v, want 64.000000 magnitudes", row)
		}
	}
}

func TestRunTwoTone(t *testing.T) {
	code, out, errOut := runDemo(t, "-freqs", "2, 4", "-size", "32", "-from", "0", "-to", "5", "-strategy", "fast")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut)
	}
	if strings.Contains(out, "direct") || strings.Contains(out, "planned") {
		t.Fatalf("unexpected extra columns:\n%s", out)
	}

	lines := strings.Split(strings.TrimSpace(out), "\n")
	for _, bin := range []int{2, 4} {
		row := strings.Fields(lines[2+bin])
		if row[2] != "16.000000" {
			t.Fatalf("bin %d row = %v, want magnitude 16", bin, row)
		}
	}
}

func TestRunParallelAndDB(t *testing.T) {
	code, out, errOut := runDemo(t, "-strategy", "fast", "-size", "1024", "-parallel", "64", "-db", "-from", "10", "-to", "11")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut)
	}
	// 20*log10(512)
	if !strings.Contains(out, "54.185") {
		t.Fatalf("expected dB magnitude in output:\n%s", out)
	}
}

func TestRunPadding(t *testing.T) {
	code, _, errOut := runDemo(t, "-size", "100", "-strategy", "fast")
	if code != 1 || !strings.Contains(errOut, "not a power of two") {
		t.Fatalf("exit code = %d, stderr = %q; want power-of-two error", code, errOut)
	}

	code, out, errOut := runDemo(t, "-size", "100", "-strategy", "fast", "-pad", "-from", "0", "-to", "2")
	if code != 0 {
		t.Fatalf("exit code = %d, stderr = %q", code, errOut)
	}
	// 128-point bins at a 100 Hz sample rate are 0.78125 Hz apart.
	if !strings.Contains(out, "0.78") {
		t.Fatalf("expected padded bin spacing:\n%s", out)
	}

	code, _, errOut = runDemo(t, "-size", "100", "-strategy", "direct")
	if code != 0 {
		t.Fatalf("direct must accept size 100: code = %d, stderr = %q", code, errOut)
	}
}

func TestRunErrors(t *testing.T) {
	tests := []struct {
		name string
		args []string
		code int
	}{
		{name: "empty freqs", args: []string{"-freqs", " , "}, code: 2},
		{name: "bad freq", args: []string{"-freqs", "ten"}, code: 2},
		{name: "unknown flag", args: []string{"-nope"}, code: 2},
		{name: "unknown strategy", args: []string{"-strategy", "bluestein"}, code: 1},
		{name: "reversed range", args: []string{"-from", "10", "-to", "5"}, code: 1},
		{name: "range past size", args: []string{"-size", "8", "-to", "9"}, code: 1},
		{name: "negative size", args: []string{"-size", "-1"}, code: 1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			code, _, errOut := runDemo(t, tt.args...)
			if code != tt.code {
				t.Fatalf("exit code = %d, want %d (stderr %q)", code, tt.code, errOut)
			}
			if errOut == "" {
				t.Fatal("expected diagnostics on stderr")
			}
		})
	}
}

func TestRunHelp(t *testing.T) {
	code, _, errOut := runDemo(t, "-h")
	if code != 0 {
		t.Fatalf("exit code = %d, want 0", code)
	}
	if !strings.Contains(errOut, "Usage: fftdemo") {
		t.Fatalf("usage not printed: %q", errOut)
	}
}

func TestParseFreqs(t *testing.T) {
	got, err := parseFreqs("10, 12.5,,3")
	if err != nil {
		t.Fatalf("parseFreqs error: %v", err)
	}
	want := []float64{10, 12.5, 3}
	if len(got) != len(want) {
		t.Fatalf("parseFreqs = %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Fatalf("parseFreqs = %v, want %v", got, want)
		}
	}
}
