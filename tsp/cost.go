// Package tsp — cost utilities shared by the exact and approximate solvers.
//
// Two evaluation modes exist because the solvers represent cycles differently:
//
//   - TourCost:  closed evaluation. The last→first edge is added, so the
//     sequence [0 1 3 2] is priced as 0→1→3→2→0. Used for exact tours.
//   - PathCost:  open evaluation. Only consecutive pairs are summed; the caller
//     already appended the closing vertex, as in [0 1 3 2 0]. Used for
//     approximate tours.
//
// For every closed sequence p, TourCost(g, p) == PathCost(g, append(p, p[0])).
//
// A missing edge (zero weight) contributes 0. Whether a zero pair is acceptable
// is the caller's business; MissingEdges counts them.
//
// Complexity: O(len(path)) time, O(1) extra space.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/hamcycle/matrix"
)

// TourCost returns the weight of the closed cycle through tour.
//
// Contract:
//   - g non-nil (ErrNilGraph).
//   - 2 ≤ len(tour) ≤ n+1 (ErrPathLength).
//   - every index in [0, n) (matrix.ErrOutOfRange); indices never wrap.
func TourCost(g *matrix.Dense, tour []int) (int, error) {
	sum, err := PathCost(g, tour)
	if err != nil {
		return 0, err
	}

	return sum + g.Weight(tour[len(tour)-1], tour[0]), nil
}

// PathCost returns the sum of weights along consecutive pairs of path.
// Same contract as TourCost; no closing edge is added.
func PathCost(g *matrix.Dense, path []int) (int, error) {
	if err := checkPath(g, path); err != nil {
		return 0, err
	}

	var (
		sum int
		i   int
	)
	for i = 0; i+1 < len(path); i++ {
		sum += g.Weight(path[i], path[i+1])
	}

	return sum, nil
}

// MissingEdges counts consecutive pairs of path that have no edge in g.
// Same contract as PathCost.
func MissingEdges(g *matrix.Dense, path []int) (int, error) {
	if err := checkPath(g, path); err != nil {
		return 0, err
	}

	var (
		cnt int
		i   int
	)
	for i = 0; i+1 < len(path); i++ {
		if !g.HasEdge(path[i], path[i+1]) {
			cnt++
		}
	}

	return cnt, nil
}

// checkPath enforces the evaluator preconditions.
func checkPath(g *matrix.Dense, path []int) error {
	if g == nil {
		return ErrNilGraph
	}
	n := g.Size()
	if len(path) < 2 || len(path) > n+1 {
		return fmt.Errorf("tsp: len(path)=%d, n=%d: %w", len(path), n, ErrPathLength)
	}
	for i, v := range path {
		if v < 0 || v >= n {
			return fmt.Errorf("tsp: path[%d]=%d: %w", i, v, matrix.ErrOutOfRange)
		}
	}

	return nil
}
