package tsp_test

import (
	"testing"

	"github.com/katalvlaran/hamcycle/builder"
	"github.com/katalvlaran/hamcycle/matrix"
	"github.com/katalvlaran/hamcycle/tsp"
	"github.com/stretchr/testify/require"
)

func TestCandidateEdges_StableOrder(t *testing.T) {
	g := mustDense(t, [][]int{
		{0, 2, 1, 2},
		{2, 0, 0, 1},
		{1, 0, 0, 3},
		{2, 1, 3, 0},
	})
	got := tsp.CandidateEdges(g)
	want := []tsp.Edge{
		{Src: 0, Dst: 2, Weight: 1},
		{Src: 1, Dst: 3, Weight: 1},
		{Src: 0, Dst: 1, Weight: 2},
		{Src: 0, Dst: 3, Weight: 2},
		{Src: 2, Dst: 3, Weight: 3},
	}
	require.Equal(t, want, got)
}

func TestMinimumSpanningTree_FourCity(t *testing.T) {
	tree, err := tsp.MinimumSpanningTree(mustDense(t, fourCity))
	require.NoError(t, err)
	require.Equal(t, 4, tree.Size())
	require.Equal(t, []tsp.Edge{
		{Src: 0, Dst: 1, Weight: 10},
		{Src: 0, Dst: 2, Weight: 15},
		{Src: 0, Dst: 3, Weight: 20},
	}, tree.Edges)
	require.Equal(t, 45, tree.Weight)

	m, err := tree.Matrix()
	require.NoError(t, err)
	require.Equal(t, 3, m.EdgeCount())
	require.Equal(t, 10, m.Weight(0, 1))
	require.Equal(t, 0, m.Weight(1, 0))
}

func TestMinimumSpanningTree_Disconnected(t *testing.T) {
	twoBlocks := mustDense(t, [][]int{
		{0, 1, 0, 0},
		{1, 0, 0, 0},
		{0, 0, 0, 2},
		{0, 0, 2, 0},
	})
	_, err := tsp.MinimumSpanningTree(twoBlocks)
	require.ErrorIs(t, err, tsp.ErrDisconnected)

	noEdges := mustDense(t, [][]int{{0, 0}, {0, 0}})
	_, err = tsp.MinimumSpanningTree(noEdges)
	require.ErrorIs(t, err, tsp.ErrDisconnected)
}

func TestMinimumSpanningTree_Errors(t *testing.T) {
	_, err := tsp.MinimumSpanningTree(nil)
	require.ErrorIs(t, err, tsp.ErrNilGraph)

	_, err = tsp.MinimumSpanningTree(mustDense(t, [][]int{{0}}))
	require.ErrorIs(t, err, tsp.ErrTooSmall)
}

// TestMinimumSpanningTree_Minimal compares Prim against exhaustive search over
// every (n-1)-edge subset on small random graphs.
func TestMinimumSpanningTree_Minimal(t *testing.T) {
	for seed := int64(1); seed <= 8; seed++ {
		g, err := builder.Complete(6, builder.UniformWeightFn(1, 9), builder.WithSeed(seed))
		require.NoError(t, err)

		tree, err := tsp.MinimumSpanningTree(g)
		require.NoError(t, err)
		require.Len(t, tree.Edges, g.Size()-1)
		require.True(t, spans(g.Size(), tree.Edges), "seed %d: not spanning", seed)
		require.Equal(t, bruteForceMST(g), tree.Weight, "seed %d", seed)
	}
}

// spans reports whether edges connect all n vertices (union-find).
func spans(n int, edges []tsp.Edge) bool {
	parent := make([]int, n)
	for i := range parent {
		parent[i] = i
	}
	var find func(int) int
	find = func(x int) int {
		for parent[x] != x {
			parent[x] = parent[parent[x]]
			x = parent[x]
		}

		return x
	}
	comps := n
	for _, e := range edges {
		a, b := find(e.Src), find(e.Dst)
		if a != b {
			parent[a] = b
			comps--
		}
	}

	return comps == 1
}

func bruteForceMST(g *matrix.Dense) int {
	edges := tsp.CandidateEdges(g)
	n := g.Size()
	best := -1
	pick := make([]tsp.Edge, 0, n-1)

	var rec func(from int)
	rec = func(from int) {
		if len(pick) == n-1 {
			if !spans(n, pick) {
				return
			}
			w := 0
			for _, e := range pick {
				w += e.Weight
			}
			if best < 0 || w < best {
				best = w
			}
			return
		}
		for i := from; i < len(edges); i++ {
			pick = append(pick, edges[i])
			rec(i + 1)
			pick = pick[:len(pick)-1]
		}
	}
	rec(0)

	return best
}
