package tsp_test

import (
	"testing"

	"github.com/katalvlaran/hamcycle/matrix"
	"github.com/stretchr/testify/require"
)

// fourCity is the classic 4-city instance; optimum 80 via 0→1→3→2→0.
var fourCity = [][]int{
	{0, 10, 15, 20},
	{10, 0, 35, 25},
	{15, 35, 0, 30},
	{20, 25, 30, 0},
}

// mustDense builds a matrix or fails the test.
func mustDense(t testing.TB, rows [][]int) *matrix.Dense {
	t.Helper()
	g, err := matrix.New(rows)
	require.NoError(t, err)

	return g
}

// factorial of small n.
func factorial(n int) int {
	out := 1
	for i := 2; i <= n; i++ {
		out *= i
	}

	return out
}
