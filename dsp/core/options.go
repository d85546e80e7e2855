package core

import "runtime"

// ProcessorConfig defines settings shared by the generators and transforms.
type ProcessorConfig struct {
	// SampleRate is the sampling rate in Hz used to place sines and bins.
	SampleRate float64

	// ParallelThreshold is the smallest FFT sub-problem size that is split
	// across goroutines. Zero disables parallel execution.
	ParallelThreshold int

	// Workers bounds the number of extra goroutines a parallel FFT may use.
	Workers int
}

// ProcessorOption mutates a ProcessorConfig.
type ProcessorOption func(*ProcessorConfig)

// DefaultProcessorConfig returns sequential, single-threaded defaults.
func DefaultProcessorConfig() ProcessorConfig {
	return ProcessorConfig{
		SampleRate: 48000,
		Workers:    runtime.GOMAXPROCS(0),
	}
}

// WithSampleRate sets the processing sample rate.
func WithSampleRate(sampleRate float64) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if sampleRate > 0 {
			cfg.SampleRate = sampleRate
		}
	}
}

// WithParallelThreshold enables fork-join FFT execution for sub-problems of
// at least n points. n must be a power of two >= 2; other values are ignored.
func WithParallelThreshold(n int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if n >= 2 && IsPowerOf2(n) {
			cfg.ParallelThreshold = n
		}
	}
}

// WithWorkers sets the maximum number of extra goroutines.
func WithWorkers(workers int) ProcessorOption {
	return func(cfg *ProcessorConfig) {
		if workers > 0 {
			cfg.Workers = workers
		}
	}
}

// ApplyProcessorOptions applies zero or more options to the default config.
func ApplyProcessorOptions(opts ...ProcessorOption) ProcessorConfig {
	cfg := DefaultProcessorConfig()
	for _, opt := range opts {
		if opt != nil {
			opt(&cfg)
		}
	}
	return cfg
}

// Parallel reports whether the config asks for fork-join execution.
func (cfg ProcessorConfig) Parallel() bool {
	return cfg.ParallelThreshold > 0 && cfg.Workers > 0
}
