package tsp

import (
	"context"
	"errors"
	"strings"
)

// Sentinel errors. Invalid matrices are reported by the matrix package
// sentinels (matrix.ErrNonSquare, matrix.ErrNegativeWeight, ...); the errors
// below cover precondition violations detected by the solvers themselves.
var (
	// ErrNilGraph is returned when a nil *matrix.Dense is passed to a solver.
	ErrNilGraph = errors.New("tsp: graph is nil")

	// ErrTooSmall is returned when the graph has fewer than two vertices.
	ErrTooSmall = errors.New("tsp: graph needs at least 2 vertices")

	// ErrDisconnected is returned when no spanning tree (or traversal) can
	// reach every vertex.
	ErrDisconnected = errors.New("tsp: graph is disconnected")

	// ErrStartOutOfRange is returned when the start vertex is outside [0, n).
	ErrStartOutOfRange = errors.New("tsp: start vertex out of range")

	// ErrPathLength is returned by the evaluators when a path has fewer than
	// two entries or more than n+1.
	ErrPathLength = errors.New("tsp: invalid path length")

	// ErrInvalidTour is returned by ValidateTour / ValidatePath when a
	// sequence is not a Hamiltonian cycle (or path) over the graph.
	ErrInvalidTour = errors.New("tsp: not a hamiltonian tour")

	// ErrTooLarge is returned by the exact solver when n exceeds
	// Options.MaxExactVertices.
	ErrTooLarge = errors.New("tsp: graph too large for exact search")

	// ErrUnsupportedAlgorithm is returned for an unknown Algorithm value.
	ErrUnsupportedAlgorithm = errors.New("tsp: unsupported algorithm")

	// ErrInvalidOptions is returned for out-of-domain option values.
	ErrInvalidOptions = errors.New("tsp: invalid options")
)

// Status tells a found tour apart from a proven absence of one.
type Status int

const (
	// StatusSolved means Tour and Cost hold a solution.
	StatusSolved Status = iota
	// StatusNoSolution means the exact search proved that no Hamiltonian
	// cycle exists. It is an expected outcome, not an error.
	StatusNoSolution
)

// String implements fmt.Stringer.
func (s Status) String() string {
	switch s {
	case StatusSolved:
		return "solved"
	case StatusNoSolution:
		return "no_solution"
	default:
		return "unknown"
	}
}

// TSResult holds the outcome of a TSP solver.
type TSResult struct {
	// Status is StatusSolved or StatusNoSolution.
	Status Status

	// Tour is the visiting order.
	//   - Exact:  n entries, Tour[0] == start; the closing edge back to start is implicit.
	//   - Approx: n+1 entries, Tour[0] == Tour[n] == start.
	// Nil when Status == StatusNoSolution.
	Tour []int

	// Cost is the total weight of the closed cycle.
	Cost int

	// MissingEdges counts consecutive tour pairs with no edge in the graph.
	// Always 0 for exact solutions; the approximate walk may shortcut across
	// absent edges when the input is not complete.
	MissingEdges int

	// Explored is the number of complete permutations evaluated by the
	// exact search (0 for the approximate solver).
	Explored int
}

// Found reports whether the result carries a tour.
func (r TSResult) Found() bool { return r.Status == StatusSolved && len(r.Tour) > 0 }

// ClosedTour returns the tour with the start vertex appended when the closing
// edge is implicit. The result is always a fresh slice.
func (r TSResult) ClosedTour() []int {
	if len(r.Tour) == 0 {
		return nil
	}
	out := make([]int, len(r.Tour), len(r.Tour)+1)
	copy(out, r.Tour)
	if len(out) < 2 || out[0] != out[len(out)-1] {
		out = append(out, out[0])
	}

	return out
}

// Algorithm selects a solver in Solve.
type Algorithm int

const (
	// Approx runs the MST doubling 2-approximation.
	Approx Algorithm = iota
	// Exact runs the permutation search.
	Exact
)

// String implements fmt.Stringer.
func (a Algorithm) String() string {
	switch a {
	case Approx:
		return "approx"
	case Exact:
		return "exact"
	default:
		return "unknown"
	}
}

// ParseAlgorithm maps "approx" / "exact" (case-insensitive) to an Algorithm.
func ParseAlgorithm(s string) (Algorithm, error) {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "approx", "approximate", "mst":
		return Approx, nil
	case "exact", "bruteforce", "brute-force":
		return Exact, nil
	default:
		return 0, ErrUnsupportedAlgorithm
	}
}

// DefaultMaxExactVertices is the default ceiling for the exact search.
// 12 vertices means 11! ≈ 4·10⁷ leaves in the worst case.
const DefaultMaxExactVertices = 12

// cancelCheckInterval is the number of search nodes between two context polls.
const cancelCheckInterval = 4096

// Options configures Solve, TSPExact and TSPApprox.
type Options struct {
	// Algo selects the solver used by Solve.
	Algo Algorithm

	// StartVertex is the fixed first vertex of every tour.
	StartVertex int

	// Pruning enables adjacency pruning in the exact search. The answer is
	// identical either way; pruning only skips hopeless branches.
	Pruning bool

	// MaxExactVertices bounds the exact search; 0 disables the ceiling.
	MaxExactVertices int

	// Ctx, when non-nil, cancels the exact search early.
	Ctx context.Context
}

// DefaultOptions returns the approximate solver starting at vertex 0, with
// pruning on and the default exact ceiling.
func DefaultOptions() Options {
	return Options{
		Algo:             Approx,
		StartVertex:      0,
		Pruning:          true,
		MaxExactVertices: DefaultMaxExactVertices,
		Ctx:              nil,
	}
}
