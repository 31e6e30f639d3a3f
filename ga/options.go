package ga

import (
	"log/slog"
	"math/rand/v2"
)

type options struct {
	rng    *rand.Rand
	logger *slog.Logger
}

// Option configures a Population.
type Option func(*options)

// WithRand sets the random source used for initialization, selection,
// crossover and mutation. Passing a seeded generator makes a run
// reproducible. If nil is passed, a randomly seeded generator is used.
func WithRand(rng *rand.Rand) Option {
	return func(o *options) {
		o.rng = rng
	}
}

// WithLogger sets the logger. If nil is passed, log output is discarded.
func WithLogger(logger *slog.Logger) Option {
	return func(o *options) {
		o.logger = logger
	}
}

func applyOptions(opts []Option) options {
	var o options
	for _, opt := range opts {
		opt(&o)
	}
	if o.rng == nil {
		o.rng = rand.New(rand.NewPCG(rand.Uint64(), rand.Uint64()))
	}
	if o.logger == nil {
		o.logger = slog.New(slog.DiscardHandler)
	}
	return o
}
