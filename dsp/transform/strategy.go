package transform

import (
	"fmt"
	"sort"
	"strings"

	"github.com/cwbudde/algo-dft/dsp/core"
	"github.com/cwbudde/algo-dft/dsp/num"
)

// Transformer computes the full N-bin spectrum of a real signal.
type Transformer interface {
	Name() string
	Transform(samples []float64) ([]num.Complex, error)
}

// Direct computes the full spectrum with [DFT].
type Direct struct{}

// Name returns "direct".
func (Direct) Name() string { return "direct" }

// Transform returns DFT(samples, 0, len(samples)).
func (Direct) Transform(samples []float64) ([]num.Complex, error) {
	return DFT(samples, 0, len(samples))
}

// Fast computes the full spectrum with [FFT].
type Fast struct {
	Options []core.ProcessorOption
}

// Name returns "fast".
func (Fast) Name() string { return "fast" }

// Transform returns FFT(samples, f.Options...).
func (f Fast) Transform(samples []float64) ([]num.Complex, error) {
	return FFT(samples, f.Options...)
}

// Strategies returns one instance of every built-in strategy.
// Fast is configured with opts.
func Strategies(opts ...core.ProcessorOption) []Transformer {
	return []Transformer{
		Direct{},
		Fast{Options: opts},
		Planned{},
	}
}

// Lookup returns the built-in strategy with the given case-insensitive name.
func Lookup(name string, opts ...core.ProcessorOption) (Transformer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	for _, s := range Strategies(opts...) {
		if s.Name() == name {
			return s, nil
		}
	}
	return nil, fmt.Errorf("%w: %q (available: %s)", ErrUnknownStrategy, name, strings.Join(StrategyNames(), ", "))
}

// StrategyNames returns the sorted names of the built-in strategies.
func StrategyNames() []string {
	all := Strategies()
	names := make([]string, len(all))
	for i, s := range all {
		names[i] = s.Name()
	}
	sort.Strings(names)
	return names
}
