// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_star.go - Star(n, w): hub 0 with n-1 spokes.
//
// Contract:
//   - n ≥ 2 (else ErrTooFewVertices), w ≥ 1 (else ErrInvalidWeight).
//   - Edges 0↔i for i = 1..n-1; no leaf-leaf edges, so for n ≥ 3 the
//     graph has no Hamiltonian cycle.
//
// Complexity: O(n²) allocation, O(n) writes.

package builder

import "github.com/katalvlaran/hamcycle/matrix"

const (
	methodStar   = "Star"
	minStarNodes = 2
)

// Star returns a star centered at vertex 0 with uniform spoke weight w.
func Star(n, w int) (*matrix.Dense, error) {
	if n < minStarNodes {
		return nil, builderErrorf(methodStar, ErrTooFewVertices, "n=%d < min=%d", n, minStarNodes)
	}
	if w < 1 {
		return nil, builderErrorf(methodStar, ErrInvalidWeight, "w=%d", w)
	}

	b, err := matrix.NewBuilder(n)
	if err != nil {
		return nil, builderErrorf(methodStar, err, "n=%d", n)
	}
	for i := 1; i < n; i++ {
		if err = b.SetSymmetric(0, i, w); err != nil {
			return nil, builderErrorf(methodStar, err, "spoke %d", i)
		}
	}

	return b.Build(), nil
}
