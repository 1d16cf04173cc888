// Package tsp - validation shared by the solvers.
//
// Malformed matrices never reach this file: matrix.New already rejected them.
// What remains are solver preconditions (nil graph, n < 2, start range,
// option sanity), reported with the sentinels from types.go.
package tsp

import (
	"fmt"

	"github.com/katalvlaran/hamcycle/matrix"
)

// validateGraph checks g != nil and n ≥ 2, returning n.
func validateGraph(g *matrix.Dense) (int, error) {
	if g == nil {
		return 0, ErrNilGraph
	}
	n := g.Size()
	if n < 2 {
		return 0, fmt.Errorf("tsp: n=%d: %w", n, ErrTooSmall)
	}

	return n, nil
}

// validateStartVertex verifies that start ∈ [0, n).
func validateStartVertex(n, start int) error {
	if start < 0 || start >= n {
		return fmt.Errorf("tsp: start=%d, n=%d: %w", start, n, ErrStartOutOfRange)
	}

	return nil
}

// validateOptions checks option values that do not depend on the graph.
func validateOptions(opts Options) error {
	switch opts.Algo {
	case Approx, Exact:
	default:
		return fmt.Errorf("tsp: algo=%d: %w", int(opts.Algo), ErrUnsupportedAlgorithm)
	}
	if opts.MaxExactVertices < 0 {
		return fmt.Errorf("tsp: MaxExactVertices=%d: %w", opts.MaxExactVertices, ErrInvalidOptions)
	}

	return nil
}

// validateAll runs graph, options and start checks in that order.
func validateAll(g *matrix.Dense, opts Options) (int, error) {
	if err := validateOptions(opts); err != nil {
		return 0, err
	}
	n, err := validateGraph(g)
	if err != nil {
		return 0, err
	}
	if err = validateStartVertex(n, opts.StartVertex); err != nil {
		return 0, err
	}

	return n, nil
}
