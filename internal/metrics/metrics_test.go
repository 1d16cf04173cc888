package metrics_test

import (
	"os"
	"path/filepath"
	"strings"
	"testing"
	"time"

	"github.com/katalvlaran/hamcycle/internal/metrics"
	"github.com/prometheus/client_golang/prometheus/testutil"
	"github.com/stretchr/testify/require"
)

func TestObserve(t *testing.T) {
	r := metrics.New(false)
	r.Observe("exact", "solved", 4, true, 80, 3*time.Millisecond)
	r.Observe("exact", "no_solution", 5, false, 0, time.Millisecond)

	require.Equal(t, 1.0, testutil.ToFloat64(r.Solves.WithLabelValues("exact", "solved")))
	require.Equal(t, 1.0, testutil.ToFloat64(r.Solves.WithLabelValues("exact", "no_solution")))
	require.Equal(t, 80.0, testutil.ToFloat64(r.TourCost.WithLabelValues("exact")))
	require.Equal(t, 5.0, testutil.ToFloat64(r.Vertices))
	require.Equal(t, 1, testutil.CollectAndCount(r.Duration))
}

func TestWriteTextfile(t *testing.T) {
	r := metrics.New(false)
	r.Observe("approx", "solved", 6, true, 120, time.Microsecond)

	path := filepath.Join(t.TempDir(), "hamcycle.prom")
	require.NoError(t, r.WriteTextfile(path))

	data, err := os.ReadFile(path)
	require.NoError(t, err)
	body := string(data)
	require.True(t, strings.Contains(body, `hamcycle_solves_total{algorithm="approx",status="solved"} 1`), body)
	require.Contains(t, body, `hamcycle_tour_cost{algorithm="approx"} 120`)
	require.Contains(t, body, "hamcycle_graph_vertices 6")

	require.Error(t, r.WriteTextfile(filepath.Join(t.TempDir(), "missing", "x.prom")))
}

func TestNew_WithRuntime(t *testing.T) {
	r := metrics.New(true)
	mfs, err := r.Registry.Gather()
	require.NoError(t, err)
	require.NotEmpty(t, mfs)
}
