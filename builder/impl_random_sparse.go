// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_random_sparse.go - RandomSparse(n, p, fn): Erdős–Rényi style graph.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); 0 ≤ p ≤ 1 (else ErrInvalidProbability).
//   - Each pair i<j is kept with probability p, in row-major order; the
//     weight comes from fn (DefaultWeightFn when nil) and is mirrored.
//   - The result may be disconnected.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/hamcycle/matrix"

const (
	methodRandomSparse = "RandomSparse"
	minSparseNodes     = 1
)

// RandomSparse returns a symmetric random graph with edge probability p.
func RandomSparse(n int, p float64, fn WeightFn, opts ...Option) (*matrix.Dense, error) {
	if n < minSparseNodes {
		return nil, builderErrorf(methodRandomSparse, ErrTooFewVertices, "n=%d < min=%d", n, minSparseNodes)
	}
	if p < 0 || p > 1 {
		return nil, builderErrorf(methodRandomSparse, ErrInvalidProbability, "p=%g", p)
	}
	if fn == nil {
		fn = DefaultWeightFn
	}
	cfg := newConfig(opts)

	b, err := matrix.NewBuilder(n)
	if err != nil {
		return nil, builderErrorf(methodRandomSparse, err, "n=%d", n)
	}
	var i, j, w int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if cfg.rng.Float64() >= p {
				continue
			}
			w = fn(cfg.rng, i, j)
			if w < 1 {
				return nil, builderErrorf(methodRandomSparse, ErrInvalidWeight, "w(%d,%d)=%d", i, j, w)
			}
			if err = b.SetSymmetric(i, j, w); err != nil {
				return nil, builderErrorf(methodRandomSparse, err, "set(%d,%d)", i, j)
			}
		}
	}

	return b.Build(), nil
}
