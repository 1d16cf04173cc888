// Package tsp provides Travelling Salesman Problem solvers over a dense
// integer weight matrix (*matrix.Dense, zero off-diagonal = no edge).
//
// Two strategies are offered:
//
//   - TSPExact — exhaustive permutation search with the start vertex fixed.
//
//   - Complexity: O(n!) time, O(n) memory.
//
//   - Optional adjacency pruning (Options.Pruning) skips branches that
//     cannot close a Hamiltonian cycle; the answer is unchanged.
//
//   - If no Hamiltonian cycle exists the result has Status == StatusNoSolution.
//
//   - TSPApprox — minimum spanning tree, doubled into an Eulerian multigraph,
//     walked in preorder: the classic 2-approximation for metric instances.
//
//   - Complexity: O(n² log n).
//
// The building blocks are exported individually: TourCost/PathCost
// (evaluation), MinimumSpanningTree (Prim), Double (multigraph) and
// PreorderTour (tour extraction).
//
// Invalid matrices are rejected by the matrix package before any solver runs.
// Precondition violations (n < 2, disconnected graph, start out of range, an
// instance above Options.MaxExactVertices) are returned as sentinel errors from
// this package; nothing here panics on user input, and nothing here logs.
//
// Use TSPExact for small instances (n≲12); use TSPApprox for everything else.
package tsp
