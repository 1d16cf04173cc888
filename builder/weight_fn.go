// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// weight_fn.go — edge weight generators.

package builder

import (
	"fmt"
	"math/rand"
)

// DefaultEdgeWeight is the weight used by DefaultWeightFn.
const DefaultEdgeWeight = 1

// WeightFn produces the weight of edge {i,j} (i < j). It must draw only from
// rng so a fixed seed gives a fixed matrix.
type WeightFn func(rng *rand.Rand, i, j int) int

// DefaultWeightFn always returns DefaultEdgeWeight.
func DefaultWeightFn(_ *rand.Rand, _, _ int) int { return DefaultEdgeWeight }

// ConstantWeightFn returns a WeightFn yielding value. Panics if value < 1.
func ConstantWeightFn(value int) WeightFn {
	if value < 1 {
		panic(fmt.Sprintf("ConstantWeightFn: value must be ≥ 1, got %d", value))
	}

	return func(_ *rand.Rand, _, _ int) int { return value }
}

// UniformWeightFn returns a WeightFn sampling uniformly in [min, max].
// Panics unless 1 ≤ min ≤ max.
func UniformWeightFn(min, max int) WeightFn {
	if min < 1 || max < min {
		panic(fmt.Sprintf("UniformWeightFn: require 1 ≤ min ≤ max, got min=%d, max=%d", min, max))
	}

	return func(rng *rand.Rand, _, _ int) int {
		if max == min {
			return min
		}

		return min + rng.Intn(max-min+1)
	}
}
