// Package hamcycle finds Hamiltonian cycles of minimum weight (TSP tours) in
// graphs given as dense integer adjacency matrices.
//
// Two strategies are offered:
//
//	• Exact: fix the start vertex and enumerate every order of the others,
//	  optionally skipping branches that follow a missing edge. Proves "no
//	  solution" when the graph has no Hamiltonian cycle.
//	• Approximate: Prim's minimum spanning tree, doubled into an Eulerian
//	  multigraph, walked in preorder. At most twice the optimum on metric
//	  input; on sparse input the walk may cross missing edges, which are
//	  counted.
//
// Packages:
//
//	matrix/   — immutable n×n weight matrix (0 = no edge) and a mutable builder
//	tsp/      — tour evaluator, MST, doubler, preorder walk, exact search, Solve
//	builder/  — deterministic generators: complete, star, cycle, euclidean, sparse
//	loader/   — text ⇄ matrix (one row per line)
//	cmd/hamcycle — command line front end (internal/cli)
//
// Quick example:
//
//	res, err := tsp.SolveRows([][]int{
//		{0, 10, 15, 20},
//		{10, 0, 35, 25},
//		{15, 35, 0, 30},
//		{20, 25, 30, 0},
//	}, tsp.Options{Algo: tsp.Exact, Pruning: true})
//	// res.ClosedTour() == [0 1 3 2 0], res.Cost == 80
//
//	go install github.com/katalvlaran/hamcycle/cmd/hamcycle@latest
package hamcycle
