// Package tsp - unified dispatcher for TSP solvers.
//
// Entry points:
//   - Solve:     validate options + graph, then route to TSPApprox or TSPExact.
//   - SolveRows: build a *matrix.Dense from caller rows first (malformed input
//     is rejected here with matrix sentinels), then Solve.
//
// Three disjoint outcomes reach the caller:
//   - error:                 invalid input or violated precondition;
//   - Status == NoSolution:  exact search proved there is no Hamiltonian cycle;
//   - Status == Solved:      Tour and Cost are set.
package tsp

import "github.com/katalvlaran/hamcycle/matrix"

// Solve validates g and opts and runs the selected algorithm.
//
// Errors: ErrUnsupportedAlgorithm, ErrInvalidOptions, ErrNilGraph, ErrTooSmall,
// ErrStartOutOfRange, plus the solver-specific errors of TSPApprox/TSPExact.
func Solve(g *matrix.Dense, opts Options) (TSResult, error) {
	if _, err := validateAll(g, opts); err != nil {
		return TSResult{}, err
	}

	switch opts.Algo {
	case Approx:
		return TSPApprox(g, opts)
	case Exact:
		return TSPExact(g, opts)
	default:
		return TSResult{}, ErrUnsupportedAlgorithm
	}
}

// SolveRows is Solve on a freshly validated copy of rows.
func SolveRows(rows [][]int, opts Options) (TSResult, error) {
	g, err := matrix.New(rows)
	if err != nil {
		return TSResult{}, err
	}

	return Solve(g, opts)
}
