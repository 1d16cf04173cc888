package tsp_test

import (
	"testing"

	"github.com/katalvlaran/hamcycle/matrix"
	"github.com/katalvlaran/hamcycle/tsp"
	"github.com/stretchr/testify/require"
)

func TestSolve_Dispatch(t *testing.T) {
	g := mustDense(t, fourCity)

	opts := tsp.DefaultOptions()
	res, err := tsp.Solve(g, opts)
	require.NoError(t, err)
	require.Len(t, res.Tour, 5)

	opts.Algo = tsp.Exact
	res, err = tsp.Solve(g, opts)
	require.NoError(t, err)
	require.Equal(t, 80, res.Cost)
	require.Len(t, res.Tour, 4)
}

func TestSolve_Errors(t *testing.T) {
	g := mustDense(t, fourCity)

	opts := tsp.DefaultOptions()
	opts.Algo = tsp.Algorithm(42)
	_, err := tsp.Solve(g, opts)
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	opts = tsp.DefaultOptions()
	opts.MaxExactVertices = -3
	_, err = tsp.Solve(g, opts)
	require.ErrorIs(t, err, tsp.ErrInvalidOptions)

	_, err = tsp.SolveRows([][]int{{0, 1}, {1}}, tsp.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrNonSquare)

	_, err = tsp.SolveRows([][]int{{0, -1}, {1, 0}}, tsp.DefaultOptions())
	require.ErrorIs(t, err, matrix.ErrNegativeWeight)
}

func TestParseAlgorithm(t *testing.T) {
	cases := map[string]tsp.Algorithm{
		"approx":      tsp.Approx,
		" MST ":       tsp.Approx,
		"exact":       tsp.Exact,
		"Brute-Force": tsp.Exact,
	}
	for in, want := range cases {
		got, err := tsp.ParseAlgorithm(in)
		require.NoError(t, err, in)
		require.Equal(t, want, got, in)
	}

	_, err := tsp.ParseAlgorithm("christofides")
	require.ErrorIs(t, err, tsp.ErrUnsupportedAlgorithm)

	require.Equal(t, "approx", tsp.Approx.String())
	require.Equal(t, "exact", tsp.Exact.String())
	require.Equal(t, "no_solution", tsp.StatusNoSolution.String())
}
