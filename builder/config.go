package builder

import (
	"math/rand"
)

// defaultSeed keeps unseeded builds reproducible.
const defaultSeed int64 = 1

// builderConfig is the immutable, resolved configuration passed to constructors.
type builderConfig struct {
	rng      *rand.Rand
	weightFn WeightFn
}

// Option customizes builderConfig.
type Option func(*builderConfig)

// newBuilderConfig applies opts over the defaults: seed 1, unit weights.
func newBuilderConfig(opts ...Option) builderConfig {
	cfg := builderConfig{
		rng:      rand.New(rand.NewSource(defaultSeed)),
		weightFn: DefaultWeightFn,
	}
	for _, opt := range opts {
		opt(&cfg)
	}

	return cfg
}

// WithSeed fixes the random source used by stochastic constructors and weight functions.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithWeightFn sets the edge weight generator. Panics on nil.
func WithWeightFn(fn WeightFn) Option {
	if fn == nil {
		panic("builder: WithWeightFn(nil)")
	}
	return func(c *builderConfig) {
		c.weightFn = fn
	}
}

// WithConstantWeight gives every edge weight w.
func WithConstantWeight(w int64) Option {
	return WithWeightFn(ConstantWeightFn(w))
}

// WithUniformWeight draws weights uniformly from [min, max].
func WithUniformWeight(min, max int64) Option {
	return WithWeightFn(UniformWeightFn(min, max))
}
