// Package tsp — tour utilities shared by exact and approximate solvers.
//
// These helpers operate purely on tour structure (index sequences) and never
// read weights:
//   - ValidateTour: closed Hamiltonian cycle, len == n+1, first == last == start.
//   - ValidatePath: open Hamiltonian path, len == n, first == start.
//   - CloseTour:   append the start vertex to an open path.
//   - CopyTour:    independent copy of a tour slice.
package tsp

import "fmt"

// ValidateTour enforces the closed-cycle invariants:
//
//	len(tour) == n+1, tour[0] == tour[n] == start,
//	each vertex v ∈ [0, n) appears exactly once in tour[0:n].
//
// Complexity: O(n) time, O(n) space.
func ValidateTour(tour []int, n, start int) error {
	if n <= 0 {
		return fmt.Errorf("tsp: n=%d: %w", n, ErrTooSmall)
	}
	if len(tour) != n+1 {
		return fmt.Errorf("tsp: len(tour)=%d, want %d: %w", len(tour), n+1, ErrInvalidTour)
	}
	if tour[n] != start {
		return fmt.Errorf("tsp: tour ends at %d, want %d: %w", tour[n], start, ErrInvalidTour)
	}

	return ValidatePath(tour[:n], n, start)
}

// ValidatePath enforces the open-path invariants:
//
//	len(path) == n, path[0] == start, every vertex in [0, n) exactly once.
//
// Complexity: O(n) time, O(n) space.
func ValidatePath(path []int, n, start int) error {
	if n <= 0 {
		return fmt.Errorf("tsp: n=%d: %w", n, ErrTooSmall)
	}
	if err := validateStartVertex(n, start); err != nil {
		return err
	}
	if len(path) != n {
		return fmt.Errorf("tsp: len(path)=%d, want %d: %w", len(path), n, ErrInvalidTour)
	}
	if path[0] != start {
		return fmt.Errorf("tsp: path starts at %d, want %d: %w", path[0], start, ErrInvalidTour)
	}

	seen := make([]bool, n)
	for i, v := range path {
		if v < 0 || v >= n {
			return fmt.Errorf("tsp: path[%d]=%d out of range: %w", i, v, ErrInvalidTour)
		}
		if seen[v] {
			return fmt.Errorf("tsp: vertex %d repeated at %d: %w", v, i, ErrInvalidTour)
		}
		seen[v] = true
	}

	return nil
}

// CloseTour returns a copy of path with path[0] appended.
// An empty path yields nil.
func CloseTour(path []int) []int {
	if len(path) == 0 {
		return nil
	}
	out := make([]int, len(path)+1)
	copy(out, path)
	out[len(path)] = path[0]

	return out
}

// CopyTour returns an independent copy of t (nil for nil).
func CopyTour(t []int) []int {
	if t == nil {
		return nil
	}

	return append([]int(nil), t...)
}
