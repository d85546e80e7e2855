package signal

import (
	"fmt"
	"math"
	"math/rand"

	"github.com/cwbudde/algo-dft/dsp/core"
)

// Sample returns length samples of the sum of unit-amplitude sine waves at
// the given frequencies, sampled at rate 1/length over one period of 1:
//
//	s[i] = sum_f sin(2*pi*f*i/length)
//
// A non-positive length yields an empty slice. An empty frequency list
// yields silence.
func Sample(frequencies []float64, length int) []float64 {
	if length <= 0 {
		return []float64{}
	}
	return mixture(frequencies, 1, float64(length), length)
}

// Generator creates deterministic signals from a shared configuration.
type Generator struct {
	cfg  core.ProcessorConfig
	seed int64
}

// Option configures a Generator.
type Option func(*Generator)

// WithSeed sets deterministic random seed for noise generation.
func WithSeed(seed int64) Option {
	return func(g *Generator) {
		g.seed = seed
	}
}

// NewGenerator creates a configured signal generator.
func NewGenerator(opts ...core.ProcessorOption) *Generator {
	return NewGeneratorWithOptions(opts)
}

// NewGeneratorWithOptions creates a configured signal generator with signal-specific options.
func NewGeneratorWithOptions(coreOpts []core.ProcessorOption, opts ...Option) *Generator {
	g := &Generator{
		cfg:  core.ApplyProcessorOptions(coreOpts...),
		seed: 1,
	}
	for _, opt := range opts {
		if opt != nil {
			opt(g)
		}
	}
	return g
}

// Config returns the generator processor configuration.
func (g *Generator) Config() core.ProcessorConfig {
	return g.cfg
}

// Seed returns the noise seed.
func (g *Generator) Seed() int64 {
	return g.seed
}

// Sine generates a single sine wave.
func (g *Generator) Sine(freqHz, amplitude float64, samples int) ([]float64, error) {
	return g.SineMixture([]float64{freqHz}, amplitude, samples)
}

// SineMixture generates the sum of sines at freqsHz, each with the given
// amplitude, starting at phase zero.
func (g *Generator) SineMixture(freqsHz []float64, amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("sine samples must be > 0: %d", samples)
	}
	if g.cfg.SampleRate <= 0 {
		return nil, fmt.Errorf("sine sample rate must be > 0: %f", g.cfg.SampleRate)
	}
	for i, f := range freqsHz {
		if math.IsNaN(f) || math.IsInf(f, 0) {
			return nil, fmt.Errorf("sine frequency must be finite at index %d: %v", i, f)
		}
	}
	return mixture(freqsHz, amplitude, g.cfg.SampleRate, samples), nil
}

// WhiteNoise generates deterministic white noise in [-amplitude, amplitude].
func (g *Generator) WhiteNoise(amplitude float64, samples int) ([]float64, error) {
	if samples <= 0 {
		return nil, fmt.Errorf("noise samples must be > 0: %d", samples)
	}
	if amplitude < 0 {
		return nil, fmt.Errorf("noise amplitude must be >= 0: %f", amplitude)
	}
	out := make([]float64, samples)
	rng := rand.New(rand.NewSource(g.seed))
	for i := range out {
		out[i] = (rng.Float64()*2 - 1) * amplitude
	}
	return out, nil
}

func mixture(freqsHz []float64, amplitude, sampleRate float64, samples int) []float64 {
	out := make([]float64, samples)
	for _, f := range freqsHz {
		step := 2 * math.Pi * f / sampleRate
		for i := range out {
			out[i] += amplitude * math.Sin(step*float64(i))
		}
	}
	return out
}
