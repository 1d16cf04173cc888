package tsp_test

import (
	"testing"

	"github.com/katalvlaran/hamcycle/matrix"
	"github.com/katalvlaran/hamcycle/tsp"
	"github.com/stretchr/testify/require"
)

func TestTourCost_FourCity(t *testing.T) {
	g := mustDense(t, fourCity)

	cost, err := tsp.TourCost(g, []int{0, 1, 3, 2})
	require.NoError(t, err)
	require.Equal(t, 80, cost)

	// Idempotent on repeated evaluation.
	again, err := tsp.TourCost(g, []int{0, 1, 3, 2})
	require.NoError(t, err)
	require.Equal(t, cost, again)
}

func TestPathCost_OpenVersusClosed(t *testing.T) {
	g := mustDense(t, fourCity)

	open, err := tsp.PathCost(g, []int{0, 1, 3, 2})
	require.NoError(t, err)
	require.Equal(t, 65, open)

	closed, err := tsp.PathCost(g, []int{0, 1, 3, 2, 0})
	require.NoError(t, err)
	require.Equal(t, 80, closed)
}

func TestPathCost_MissingEdgeIsZero(t *testing.T) {
	g := mustDense(t, [][]int{
		{0, 4, 0},
		{4, 0, 6},
		{0, 6, 0},
	})
	cost, err := tsp.PathCost(g, []int{0, 2, 1})
	require.NoError(t, err)
	require.Equal(t, 6, cost)

	missing, err := tsp.MissingEdges(g, []int{0, 2, 1, 0})
	require.NoError(t, err)
	require.Equal(t, 1, missing)
}

func TestCost_Errors(t *testing.T) {
	g := mustDense(t, fourCity)

	_, err := tsp.PathCost(nil, []int{0, 1})
	require.ErrorIs(t, err, tsp.ErrNilGraph)

	_, err = tsp.PathCost(g, []int{0})
	require.ErrorIs(t, err, tsp.ErrPathLength)

	_, err = tsp.PathCost(g, []int{0, 1, 2, 3, 0, 1})
	require.ErrorIs(t, err, tsp.ErrPathLength)

	_, err = tsp.TourCost(g, []int{0, 7})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)

	_, err = tsp.MissingEdges(g, []int{-1, 0})
	require.ErrorIs(t, err, matrix.ErrOutOfRange)
}

func TestValidateTour(t *testing.T) {
	require.NoError(t, tsp.ValidateTour([]int{0, 2, 1, 0}, 3, 0))
	require.NoError(t, tsp.ValidatePath([]int{1, 0, 2}, 3, 1))

	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 0}, 3, 0), tsp.ErrInvalidTour)
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 2, 1}, 3, 0), tsp.ErrInvalidTour)
	require.ErrorIs(t, tsp.ValidateTour([]int{0, 1, 1, 0}, 3, 0), tsp.ErrInvalidTour)
	require.ErrorIs(t, tsp.ValidatePath([]int{0, 1, 5}, 3, 0), tsp.ErrInvalidTour)
	require.ErrorIs(t, tsp.ValidatePath([]int{0, 1, 2}, 3, 4), tsp.ErrStartOutOfRange)
	require.ErrorIs(t, tsp.ValidateTour(nil, 0, 0), tsp.ErrTooSmall)
}

func TestCloseAndCopyTour(t *testing.T) {
	require.Nil(t, tsp.CloseTour(nil))
	require.Equal(t, []int{2, 0, 1, 2}, tsp.CloseTour([]int{2, 0, 1}))

	src := []int{0, 1, 2}
	cp := tsp.CopyTour(src)
	cp[0] = 9
	require.Equal(t, 0, src[0])
	require.Nil(t, tsp.CopyTour(nil))
}

func TestTSResult_ClosedTour(t *testing.T) {
	require.Equal(t, []int{0, 1, 3, 2, 0}, tsp.TSResult{Tour: []int{0, 1, 3, 2}}.ClosedTour())
	require.Equal(t, []int{0, 1, 0}, tsp.TSResult{Tour: []int{0, 1, 0}}.ClosedTour())
	require.Nil(t, tsp.TSResult{}.ClosedTour())
}
