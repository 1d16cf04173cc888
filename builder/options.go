// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// options.go — functional options for the stochastic constructors.
//
// Option constructors validate and panic on meaningless input; the
// constructors themselves only return errors.

package builder

import "math/rand"

// DefaultSeed is used when no WithSeed option is given.
const DefaultSeed int64 = 1

// DefaultGridSize is the side of the square grid RandomMetric samples from.
const DefaultGridSize = 100

// builderConfig is the resolved option set of one constructor call.
type builderConfig struct {
	rng  *rand.Rand
	grid int
}

// Option customizes a constructor call.
type Option func(*builderConfig)

// WithSeed selects a deterministic RNG stream.
func WithSeed(seed int64) Option {
	return func(c *builderConfig) {
		c.rng = rand.New(rand.NewSource(seed))
	}
}

// WithGridSize sets the side of the sampling grid used by RandomMetric.
// Panics when size < 1.
func WithGridSize(size int) Option {
	if size < 1 {
		panic("builder: WithGridSize(<1)")
	}

	return func(c *builderConfig) {
		c.grid = size
	}
}

// newConfig applies opts over the defaults.
func newConfig(opts []Option) builderConfig {
	cfg := builderConfig{
		rng:  rand.New(rand.NewSource(DefaultSeed)),
		grid: DefaultGridSize,
	}
	for _, o := range opts {
		o(&cfg)
	}

	return cfg
}
