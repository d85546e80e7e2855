// Command fftdemo samples a sine mixture and prints transform magnitudes.
//
// Usage:
//
//	fftdemo [flags]
//
// The signal spans one second at a sample rate equal to -size, so a sine at
// f Hz lands on bin f. Rows cover bins [-from, -to); one column is printed per
// strategy. The direct strategy only evaluates the requested bins.
//
// Examples:
//
//	fftdemo
//	fftdemo -freqs 2,4 -size 32 -from 0 -to 5
//	fftdemo -strategy fast -size 65536 -parallel 4096 -from 0 -to 16
//	fftdemo -size 100 -pad -strategy fast
//	fftdemo -db
package main

import (
	"errors"
	"flag"
	"fmt"
	"io"
	"os"
	"strconv"
	"strings"
	"text/tabwriter"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/num"
	"github.com/cwbudde/algo-dft/dsp/signal"
	"github.com/cwbudde/algo-dft/dsp/spectrum"
	"github.com/cwbudde/algo-dft/dsp/transform"
)

type options struct {
	freqs    []float64
	size     int
	from, to int
	strategy string
	db       bool
	pad      bool
	parallel int
}

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	fs := flag.NewFlagSet("fftdemo", flag.ContinueOnError)
	fs.SetOutput(stderr)

	freqs := fs.String("freqs", "10,12", "comma-separated sine frequencies in Hz")
	size := fs.Int("size", 128, "number of samples (sample rate = size)")
	from := fs.Int("from", 5, "first bin to print")
	to := fs.Int("to", 15, "end of bin range (exclusive)")
	strategy := fs.String("strategy", "all", "transform strategy: all, "+strings.Join(transform.StrategyNames(), ", "))
	db := fs.Bool("db", false, "print magnitudes in dB")
	pad := fs.Bool("pad", false, "zero-pad to the next power of two")
	parallel := fs.Int("parallel", 0, "fork-join threshold for the fast strategy (0 = sequential)")
	fs.Usage = func() {
		fmt.Fprintf(stderr, "Usage: fftdemo [flags]\n\n")
		fmt.Fprintf(stderr, "Samples a sine mixture and prints transform magnitudes per bin.\n\n")
		fmt.Fprintf(stderr, "Flags:\n")
		fs.PrintDefaults()
		fmt.Fprintf(stderr, "\nExamples:\n")
		fmt.Fprintf(stderr, "  fftdemo -freqs 2,4 -size 32 -from 0 -to 5\n")
		fmt.Fprintf(stderr, "  fftdemo -strategy fast -size 65536 -parallel 4096\n")
	}
	if err := fs.Parse(args); err != nil {
		if errors.Is(err, flag.ErrHelp) {
			return 0
		}
		return 2
	}

	parsed, err := parseFreqs(*freqs)
	if err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 2
	}

	opts := options{
		freqs:    parsed,
		size:     *size,
		from:     *from,
		to:       *to,
		strategy: *strategy,
		db:       *db,
		pad:      *pad,
		parallel: *parallel,
	}

	if err := printMagnitudes(stdout, opts); err != nil {
		fmt.Fprintf(stderr, "error: %v\n", err)
		return 1
	}
	return 0
}

func parseFreqs(s string) ([]float64, error) {
	var out []float64
	for _, field := range strings.Split(s, ",") {
		field = strings.TrimSpace(field)
		if field == "" {
			continue
		}
		f, err := strconv.ParseFloat(field, 64)
		if err != nil {
			return nil, fmt.Errorf("invalid frequency %q: %w", field, err)
		}
		out = append(out, f)
	}
	if len(out) == 0 {
		return nil, fmt.Errorf("at least one frequency is required")
	}
	return out, nil
}

type column struct {
	name string
	mags []float64
}

func printMagnitudes(w io.Writer, opts options) error {
	if opts.size < 0 {
		return fmt.Errorf("size must be >= 0: %d", opts.size)
	}

	samples := signal.Sample(opts.freqs, opts.size)
	if opts.pad {
		samples = transform.ZeroPad(samples)
	}
	n := len(samples)

	cols, err := computeColumns(samples, opts)
	if err != nil {
		return err
	}

	tw := tabwriter.NewWriter(w, 0, 0, 2, ' ', tabwriter.AlignRight)
	header := "Bin\tFreq [Hz]\t"
	rule := "---\t---------\t"
	for _, c := range cols {
		header += c.name + "\t"
		rule += strings.Repeat("-", len(c.name)) + "\t"
	}
	if _, err := fmt.Fprintln(tw, header); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}
	if _, err := fmt.Fprintln(tw, rule); err != nil {
		return fmt.Errorf("failed to write output header: %w", err)
	}

	// Sample rate equals the unpadded size; padding refines bin spacing.
	rate := float64(opts.size)
	for i := range opts.to - opts.from {
		k := opts.from + i
		row := strconv.Itoa(k) + "\t"
		if hz, err := spectrum.BinFrequency(k, n, rate); err == nil {
			row += strconv.FormatFloat(hz, 'f', 3, 64) + "\t"
		} else {
			row += "-\t"
		}
		for _, c := range cols {
			v := c.mags[i]
			if opts.db {
				v = core.LinearToDB(v)
			}
			row += strconv.FormatFloat(v, 'f', 6, 64) + "\t"
		}
		if _, err := fmt.Fprintln(tw, row); err != nil {
			return fmt.Errorf("failed to write output row: %w", err)
		}
	}

	if err := tw.Flush(); err != nil {
		return fmt.Errorf("failed to flush output: %w", err)
	}
	return nil
}

// computeColumns returns the magnitudes of bins [from, to) for every
// selected strategy.
func computeColumns(samples []float64, opts options) ([]column, error) {
	var fastOpts []core.ProcessorOption
	if opts.parallel > 0 {
		fastOpts = append(fastOpts, core.WithParallelThreshold(opts.parallel))
	}

	var strategies []transform.Transformer
	if strings.EqualFold(strings.TrimSpace(opts.strategy), "all") {
		strategies = transform.Strategies(fastOpts...)
	} else {
		s, err := transform.Lookup(opts.strategy, fastOpts...)
		if err != nil {
			return nil, err
		}
		strategies = []transform.Transformer{s}
	}

	cols := make([]column, 0, len(strategies))
	for _, s := range strategies {
		var (
			bins []num.Complex
			err  error
		)
		if _, direct := s.(transform.Direct); direct {
			bins, err = transform.DFT(samples, opts.from, opts.to)
		} else {
			bins, err = s.Transform(samples)
			if err == nil {
				bins, err = binRange(bins, opts.from, opts.to)
			}
		}
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		cols = append(cols, column{name: s.Name(), mags: spectrum.Magnitude(bins)})
	}
	return cols, nil
}

func binRange(bins []num.Complex, from, to int) ([]num.Complex, error) {
	if from < 0 || to > len(bins) || from > to {
		return nil, fmt.Errorf("%w: [%d, %d) for %d bins", transform.ErrInvalidRange, from, to, len(bins))
	}
	return bins[from:to], nil
}
