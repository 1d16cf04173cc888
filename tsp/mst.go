// Package tsp — Prim's minimum spanning tree over candidate edges.
//
// Pipeline:
//  1. CandidateEdges lists every pair {i<j} with g[i][j] != 0 in row-major
//     order and stable-sorts it by weight. The position of an edge in this
//     list is its rank; ties are therefore broken by row-major order.
//  2. The tree is seeded with the globally smallest candidate (rank 0); both
//     endpoints become visited.
//  3. Every candidate touching a visited vertex sits in a min-heap keyed by
//     (weight, rank). Popping yields the true minimum among eligible edges.
//     Entries whose both endpoints became visited are discarded lazily; edges
//     with no visited endpoint are not in the heap yet and wait for one.
//  4. Stop at n-1 edges. An empty heap before that means the graph is
//     disconnected.
//
// The tree is returned both as an edge list and, through Matrix, as the n×n
// sparse weight matrix consumed by Double.
//
// Complexity: O(n²) enumeration + O(E log E) heap work, E ≤ n(n-1)/2.
package tsp

import (
	"container/heap"
	"fmt"
	"sort"

	"github.com/katalvlaran/hamcycle/matrix"
)

// Edge is a candidate or tree edge. Ordering is defined by Weight alone.
type Edge struct {
	Src    int
	Dst    int
	Weight int
}

// SpanningTree is the result of MinimumSpanningTree.
type SpanningTree struct {
	// Edges in acceptance order; Edges[0] is the smallest edge of the graph.
	Edges []Edge

	// Weight is the sum of Edges[i].Weight.
	Weight int

	// n is the order of the source graph.
	n int
}

// Size returns the number of vertices spanned.
func (t *SpanningTree) Size() int { return t.n }

// Matrix returns the tree as an n×n matrix with [Src][Dst] = Weight for every
// tree edge and zero elsewhere. Only one direction of each edge is stored;
// Double adds the other.
func (t *SpanningTree) Matrix() (*matrix.Dense, error) {
	b, err := matrix.NewBuilder(t.n)
	if err != nil {
		return nil, fmt.Errorf("tsp: tree matrix: %w", err)
	}
	for _, e := range t.Edges {
		if err = b.Set(e.Src, e.Dst, e.Weight); err != nil {
			return nil, fmt.Errorf("tsp: tree edge %d-%d: %w", e.Src, e.Dst, err)
		}
	}

	return b.Build(), nil
}

// CandidateEdges enumerates the upper triangle of g (each unordered pair once)
// and returns the non-zero entries sorted ascending by weight. The sort is
// stable, so equal weights keep row-major order.
//
// Complexity: O(n² + E log E).
func CandidateEdges(g *matrix.Dense) []Edge {
	n := g.Size()
	edges := make([]Edge, 0, n*(n-1)/2)

	var i, j int
	for i = 0; i < n; i++ {
		for j = i + 1; j < n; j++ {
			if w := g.Weight(i, j); w != 0 {
				edges = append(edges, Edge{Src: i, Dst: j, Weight: w})
			}
		}
	}
	sort.SliceStable(edges, func(a, b int) bool { return edges[a].Weight < edges[b].Weight })

	return edges
}

// MinimumSpanningTree builds a spanning tree of g with exactly n-1 edges.
//
// Errors:
//   - ErrNilGraph, ErrTooSmall for n < 2;
//   - ErrDisconnected when no edge exists or some vertex is unreachable.
func MinimumSpanningTree(g *matrix.Dense) (*SpanningTree, error) {
	n, err := validateGraph(g)
	if err != nil {
		return nil, err
	}

	cands := CandidateEdges(g)
	if len(cands) == 0 {
		return nil, fmt.Errorf("tsp: no edges among %d vertices: %w", n, ErrDisconnected)
	}

	// incident[v] lists ranks of candidates touching v, ascending.
	incident := make([][]int, n)
	for r, e := range cands {
		incident[e.Src] = append(incident[e.Src], r)
		incident[e.Dst] = append(incident[e.Dst], r)
	}

	var (
		visited = make([]bool, n)
		tree    = &SpanningTree{Edges: make([]Edge, 0, n-1), n: n}
		pq      = &rankPQ{cands: cands}
	)

	// enqueue pushes the candidates at v that have exactly one visited endpoint.
	enqueue := func(v int) {
		for _, r := range incident[v] {
			e := cands[r]
			if !visited[e.Src] || !visited[e.Dst] {
				heap.Push(pq, r)
			}
		}
	}

	first := cands[0]
	tree.Edges = append(tree.Edges, first)
	tree.Weight += first.Weight
	visited[first.Src], visited[first.Dst] = true, true
	enqueue(first.Src)
	enqueue(first.Dst)

	for len(tree.Edges) < n-1 {
		if pq.Len() == 0 {
			return nil, fmt.Errorf("tsp: spanning tree stopped at %d of %d edges: %w",
				len(tree.Edges), n-1, ErrDisconnected)
		}
		e := cands[heap.Pop(pq).(int)]

		// Exactly one endpoint must be visited; otherwise the entry is stale.
		var next int
		switch {
		case visited[e.Src] && !visited[e.Dst]:
			next = e.Dst
		case !visited[e.Src] && visited[e.Dst]:
			next = e.Src
		default:
			continue
		}
		tree.Edges = append(tree.Edges, e)
		tree.Weight += e.Weight
		visited[next] = true
		enqueue(next)
	}

	return tree, nil
}

// rankPQ is a min-heap of candidate ranks ordered by (weight, rank).
type rankPQ struct {
	cands []Edge
	ranks []int
}

func (pq *rankPQ) Len() int { return len(pq.ranks) }

func (pq *rankPQ) Less(i, j int) bool {
	a, b := pq.ranks[i], pq.ranks[j]
	if wa, wb := pq.cands[a].Weight, pq.cands[b].Weight; wa != wb {
		return wa < wb
	}

	return a < b
}

func (pq *rankPQ) Swap(i, j int) { pq.ranks[i], pq.ranks[j] = pq.ranks[j], pq.ranks[i] }

func (pq *rankPQ) Push(x interface{}) { pq.ranks = append(pq.ranks, x.(int)) }

func (pq *rankPQ) Pop() interface{} {
	old := pq.ranks
	n := len(old)
	r := old[n-1]
	pq.ranks = old[:n-1]

	return r
}
