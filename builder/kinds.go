// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// kinds.go - name-based dispatch used by the command line.

package builder

import (
	"sort"

	"github.com/katalvlaran/hamcycle/matrix"
)

// Kind names accepted by ByName.
const (
	KindComplete = "complete"
	KindStar     = "star"
	KindCycle    = "cycle"
	KindMetric   = "metric"
	KindSparse   = "sparse"
)

// sparseProbability is the edge probability used by KindSparse.
const sparseProbability = 0.5

// ByName builds an instance of the named kind with n vertices.
// maxWeight is the upper weight bound for random kinds and the uniform weight
// for star and cycle; it must be ≥ 1. Metric instances ignore it.
func ByName(kind string, n, maxWeight int, opts ...Option) (*matrix.Dense, error) {
	if maxWeight < 1 {
		return nil, builderErrorf("ByName", ErrInvalidWeight, "maxWeight=%d", maxWeight)
	}
	switch kind {
	case KindComplete:
		return Complete(n, UniformWeightFn(1, maxWeight), opts...)
	case KindStar:
		return Star(n, maxWeight)
	case KindCycle:
		return Cycle(n, maxWeight)
	case KindMetric:
		return RandomMetric(n, opts...)
	case KindSparse:
		return RandomSparse(n, sparseProbability, UniformWeightFn(1, maxWeight), opts...)
	default:
		return nil, builderErrorf("ByName", ErrUnknownKind, "kind=%q", kind)
	}
}

// Kinds returns the accepted kind names, sorted.
func Kinds() []string {
	out := []string{KindComplete, KindStar, KindCycle, KindMetric, KindSparse}
	sort.Strings(out)

	return out
}
