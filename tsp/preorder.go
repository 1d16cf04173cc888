package tsp

import (
	"fmt"

	"github.com/katalvlaran/hamcycle/matrix"
)

// PreorderTour walks the doubled spanning tree mg depth-first from start and
// returns the vertices in preorder, closed with start: len == n+1,
// tour[0] == tour[n] == start, every vertex exactly once in tour[0:n].
//
// Neighbour order. Among the unvisited neighbours of a vertex (row scan,
// ascending index) the lowest index is expanded first. This is the same
// sequence as the recursive formulation that collects neighbours ascending,
// recurses into the most recently collected one first, emits each vertex
// after its children and finally reverses the emission: reversing a postorder
// taken over reversed children yields the preorder over ascending children.
//
// Visited set. A single array shared by the whole walk, with an explicit
// stack instead of recursion. On a tree a sibling subtree can only be reached
// through an already visited ancestor, so this matches per-call copies of the
// visited set while staying O(n) in memory. On a non-tree input the shared
// set still guarantees that no vertex is emitted twice.
//
// Errors:
//   - ErrNilGraph, ErrTooSmall;
//   - ErrStartOutOfRange when start ∉ [0, n);
//   - ErrDisconnected when some vertex is not reachable from start.
//
// Complexity: O(n²) time (one row scan per vertex), O(n) extra space.
func PreorderTour(mg *matrix.Dense, start int) ([]int, error) {
	n, err := validateGraph(mg)
	if err != nil {
		return nil, err
	}
	if err = validateStartVertex(n, start); err != nil {
		return nil, err
	}

	var (
		visited = make([]bool, n)
		tour    = make([]int, 0, n+1)
		stack   = make([]int, 0, n)
		u, v    int
	)
	stack = append(stack, start)
	for len(stack) > 0 {
		u = stack[len(stack)-1]
		stack = stack[:len(stack)-1]
		if visited[u] {
			continue
		}
		visited[u] = true
		tour = append(tour, u)

		// Push descending so the smallest unvisited neighbour is popped next.
		for v = n - 1; v >= 0; v-- {
			if !visited[v] && mg.HasEdge(u, v) {
				stack = append(stack, v)
			}
		}
	}

	if len(tour) != n {
		return nil, fmt.Errorf("tsp: walk from %d reached %d of %d vertices: %w", start, len(tour), n, ErrDisconnected)
	}

	return append(tour, start), nil
}
