package gen

import "math/rand"

// Options configures a generator's stochastic behavior: which RNG
// drives edge-inclusion trials and weight sampling, and which
// WeightFunc assigns each edge's weight.
type Options struct {
	rng    *rand.Rand
	weight WeightFunc
}

// Option mutates Options.
type Option func(*Options)

func defaultOptions() Options {
	return Options{rng: nil, weight: ConstantWeight(DefaultWeight)}
}

func resolveOptions(opts []Option) Options {
	o := defaultOptions()
	for _, opt := range opts {
		opt(&o)
	}
	return o
}

// WithSeed drives the generator from a freshly seeded RNG, for
// reproducible sampling and weight assignment.
func WithSeed(seed int64) Option {
	return func(o *Options) { o.rng = rand.New(rand.NewSource(seed)) }
}

// WithRand drives the generator from an explicit RNG. A nil rng is a
// no-op, leaving whatever source was already configured.
func WithRand(rng *rand.Rand) Option {
	return func(o *Options) {
		if rng != nil {
			o.rng = rng
		}
	}
}

// WithWeight overrides the default constant weight of 1. A nil
// WeightFunc is a no-op.
func WithWeight(w WeightFunc) Option {
	return func(o *Options) {
		if w != nil {
			o.weight = w
		}
	}
}
