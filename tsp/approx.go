// Package tsp — MST doubling 2-approximation.
//
// TSPApprox computes an approximate Hamiltonian cycle with the classic
// tree-doubling pipeline:
//
//  1. Minimum spanning tree (Prim, see mst.go).
//  2. Double every tree edge, giving an Eulerian multigraph (multigraph.go).
//  3. Depth-first preorder walk of the doubled tree, skipping visited
//     vertices, closed with the start vertex (preorder.go).
//  4. Open-path cost of the resulting n+1 sequence (cost.go).
//
// Mathematical guarantee:
//   - When the input satisfies the triangle inequality, cost ≤ 2·OPT. The
//     code does not check the triangle inequality; non-metric input gets a
//     valid traversal with no bound.
//
// Non-complete input:
//   - The walk may jump between vertices that share no edge (for example two
//     leaves of a star). Such jumps are priced at 0 by the matrix encoding and
//     counted in TSResult.MissingEdges. The exact solver, in contrast, reports
//     StatusNoSolution for the same graph.
//
// Complexity: O(n² + E log E) dominated by the MST.
package tsp

import "github.com/katalvlaran/hamcycle/matrix"

// TSPApprox runs the tree-doubling pipeline on g starting at opts.StartVertex.
// Only opts.StartVertex is read; the remaining fields are ignored.
//
// Returns StatusSolved with a closed tour of n+1 vertices, or an error:
// ErrNilGraph, ErrTooSmall, ErrStartOutOfRange, ErrDisconnected.
func TSPApprox(g *matrix.Dense, opts Options) (TSResult, error) {
	n, err := validateGraph(g)
	if err != nil {
		return TSResult{}, err
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}

	tree, err := MinimumSpanningTree(g)
	if err != nil {
		return TSResult{}, err
	}
	tm, err := tree.Matrix()
	if err != nil {
		return TSResult{}, err
	}
	mg, err := Double(tm)
	if err != nil {
		return TSResult{}, err
	}

	tour, err := PreorderTour(mg, opts.StartVertex)
	if err != nil {
		return TSResult{}, err
	}

	// The tour is closed explicitly: open evaluation prices the closing edge.
	cost, err := PathCost(g, tour)
	if err != nil {
		return TSResult{}, err
	}
	missing, err := MissingEdges(g, tour)
	if err != nil {
		return TSResult{}, err
	}

	// Cheap invariant check; catches wiring mistakes early.
	if err = ValidateTour(tour, n, opts.StartVertex); err != nil {
		return TSResult{}, err
	}

	return TSResult{
		Status:       StatusSolved,
		Tour:         tour,
		Cost:         cost,
		MissingEdges: missing,
	}, nil
}
