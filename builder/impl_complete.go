// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_complete.go - Complete(n, fn): every unordered pair connected.
//
// Contract:
//   - n ≥ 1 (else ErrTooFewVertices); fn == nil means DefaultWeightFn.
//   - fn is called once per pair i<j in row-major order; the weight is
//     mirrored to j→i.
//   - A weight < 1 from fn is reported as ErrInvalidWeight.
//
// Complexity: O(n²).

package builder

import "github.com/katalvlaran/hamcycle/matrix"

const (
	methodComplete   = "Complete"
	minCompleteNodes = 1
)

// Complete returns the complete graph K_n with weights from fn.
func Complete(n int, fn WeightFn, opts ...Option) (*matrix.Dense, error) {
	if n < minCompleteNodes {
		return nil, builderErrorf(methodComplete, ErrTooFewVertices, "n=%d < min=%d", n, minCompleteNodes)
	}
	if fn == nil {
		fn = DefaultWeightFn
	}
	cfg := newConfig(opts)

	b, err := matrix.NewBuilder(n)
	if err != nil {
		return nil, builderErrorf(methodComplete, err, "n=%d", n)
	}
	var i, j, w int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			w = fn(cfg.rng, i, j)
			if w < 1 {
				return nil, builderErrorf(methodComplete, ErrInvalidWeight, "w(%d,%d)=%d", i, j, w)
			}
			if err = b.SetSymmetric(i, j, w); err != nil {
				return nil, builderErrorf(methodComplete, err, "set(%d,%d)", i, j)
			}
		}
	}

	return b.Build(), nil
}
