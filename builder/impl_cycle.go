// SPDX-License-Identifier: MIT
// Package: hamcycle/builder
//
// impl_cycle.go - Cycle(n, w): the ring 0-1-…-(n-1)-0.
//
// Contract:
//   - n ≥ 3 (else ErrTooFewVertices), w ≥ 1 (else ErrInvalidWeight).
//   - Only ring edges are present, so the ring itself (either direction) is
//     the unique Hamiltonian cycle, of cost n·w.
//
// Complexity: O(n²) allocation, O(n) writes.

package builder

import "github.com/katalvlaran/hamcycle/matrix"

const (
	methodCycle   = "Cycle"
	minCycleNodes = 3
)

// Cycle returns the n-vertex ring with uniform weight w.
func Cycle(n, w int) (*matrix.Dense, error) {
	if n < minCycleNodes {
		return nil, builderErrorf(methodCycle, ErrTooFewVertices, "n=%d < min=%d", n, minCycleNodes)
	}
	if w < 1 {
		return nil, builderErrorf(methodCycle, ErrInvalidWeight, "w=%d", w)
	}

	b, err := matrix.NewBuilder(n)
	if err != nil {
		return nil, builderErrorf(methodCycle, err, "n=%d", n)
	}
	for i := 0; i < n; i++ {
		if err = b.SetSymmetric(i, (i+1)%n, w); err != nil {
			return nil, builderErrorf(methodCycle, err, "edge %d", i)
		}
	}

	return b.Build(), nil
}
