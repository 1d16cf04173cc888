package cli

import (
	"bytes"
	"context"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/katalvlaran/hamcycle/internal/report"
	"github.com/katalvlaran/hamcycle/loader"
	"github.com/stretchr/testify/require"
	"gopkg.in/yaml.v3"
)

const fourCity = `0 10 15 20
10 0 35 25
15 35 0 30
20 25 30 0
`

const star = `0 1 1 1
1 0 0 0
1 0 0 0
1 0 0 0
`

// writeConfig writes a minimal config so tests never read the user's files.
func writeConfig(t *testing.T) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "hamcycle.yaml")
	require.NoError(t, os.WriteFile(path, []byte("log: {level: warn, format: text}\n"), 0o600))

	return path
}

func writeGraph(t *testing.T, body string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), "graph.txt")
	require.NoError(t, os.WriteFile(path, []byte(body), 0o600))

	return path
}

// run executes the command tree and returns stdout and the error.
func run(t *testing.T, args ...string) (string, error) {
	t.Helper()
	var stdout, stderr bytes.Buffer
	cmd := NewRootCommand(context.Background(), "test", &stdout, &stderr)
	cmd.SetArgs(append([]string{"--config", writeConfig(t)}, args...))
	err := cmd.Execute()

	return stdout.String(), err
}

func TestSolve_ExactText(t *testing.T) {
	out, err := run(t, "--algo", "exact", writeGraph(t, fourCity))
	require.NoError(t, err)
	require.Contains(t, out, "file path: ")
	require.Contains(t, out, "Solution Exists:\n")
	require.Contains(t, out, "Path: [0, 1, 3, 2]\n")
	require.Contains(t, out, "Distance: 80\n")
}

func TestSolve_ApproxDefault(t *testing.T) {
	out, err := run(t, writeGraph(t, fourCity))
	require.NoError(t, err)
	require.Contains(t, out, "Algorithm: approx\n")
	require.Contains(t, out, "Path: [0, 1, 2, 3, 0]\n")
	require.Contains(t, out, "Distance: 95\n")
}

func TestSolve_BothYAML(t *testing.T) {
	out, err := run(t, "--algo", "both", "--format", "yaml", writeGraph(t, fourCity))
	require.NoError(t, err)

	var doc struct {
		Runs []report.Report `yaml:"runs"`
	}
	require.NoError(t, yaml.Unmarshal([]byte(out), &doc))
	require.Len(t, doc.Runs, 2)
	require.Equal(t, "approx", doc.Runs[0].Algorithm)
	require.Equal(t, "exact", doc.Runs[1].Algorithm)
	require.Equal(t, 80, doc.Runs[1].Distance)
	require.Equal(t, []int{0, 1, 2, 3, 0}, doc.Runs[0].Path)
	require.Equal(t, []int{0, 1, 3, 2}, doc.Runs[1].Path)
	require.LessOrEqual(t, doc.Runs[0].Distance, 2*doc.Runs[1].Distance)
}

func TestSolve_NoSolutionIsSuccess(t *testing.T) {
	out, err := run(t, "--algo", "exact", writeGraph(t, star))
	require.NoError(t, err)
	require.Contains(t, out, report.NoSolutionMessage)

	out, err = run(t, "--algo", "exact", "--no-prune", writeGraph(t, star))
	require.NoError(t, err)
	require.Contains(t, out, report.NoSolutionMessage)
}

func TestSolve_ExitCodes(t *testing.T) {
	_, err := run(t)
	require.Equal(t, ExitUsage, ExitCode(err))

	_, err = run(t, filepath.Join(t.TempDir(), "missing.txt"))
	require.Equal(t, ExitFailure, ExitCode(err))

	_, err = run(t, t.TempDir())
	require.Equal(t, ExitFailure, ExitCode(err), "unreadable input: %v", err)

	_, err = run(t, writeGraph(t, "0 1 2\n1 0\n"))
	require.Equal(t, ExitDataErr, ExitCode(err))

	_, err = run(t, writeGraph(t, "0 -1\n-1 0\n"))
	require.Equal(t, ExitDataErr, ExitCode(err))

	_, err = run(t, "--start", "9", writeGraph(t, fourCity))
	require.Equal(t, ExitDataErr, ExitCode(err))

	_, err = run(t, "--algo", "exact", "--max-exact", "3", writeGraph(t, fourCity))
	require.Equal(t, ExitDataErr, ExitCode(err))

	_, err = run(t, "--algo", "christofides", writeGraph(t, fourCity))
	require.Equal(t, ExitUsage, ExitCode(err))

	require.Equal(t, ExitOK, ExitCode(nil))
	require.Equal(t, ExitInterrupt, ExitCode(context.Canceled))
}

func TestSolve_PlotAndMetrics(t *testing.T) {
	dir := t.TempDir()
	plot := filepath.Join(dir, "tour.png")
	prom := filepath.Join(dir, "hamcycle.prom")

	_, err := run(t, "--algo", "both", "--plot", plot, "--metrics-file", prom, writeGraph(t, fourCity))
	require.NoError(t, err)

	info, err := os.Stat(plot)
	require.NoError(t, err)
	require.NotZero(t, info.Size())

	data, err := os.ReadFile(prom)
	require.NoError(t, err)
	require.Contains(t, string(data), `hamcycle_solves_total{algorithm="exact",status="solved"} 1`)
	require.Contains(t, string(data), `hamcycle_tour_cost{algorithm="exact"} 80`)
}

func TestGenerate(t *testing.T) {
	out, err := run(t, "generate", "star", "-n", "4", "-w", "3")
	require.NoError(t, err)
	g, err := loader.Load(strings.NewReader(out))
	require.NoError(t, err)
	require.Equal(t, 4, g.Size())
	require.Equal(t, 3, g.Weight(0, 2))
	require.False(t, g.HasEdge(1, 2))

	path := filepath.Join(t.TempDir(), "metric.txt")
	_, err = run(t, "generate", "metric", "-n", "5", "--seed", "9", "-O", path)
	require.NoError(t, err)
	g, err = loader.LoadFile(path)
	require.NoError(t, err)
	require.Equal(t, 5, g.Size())

	_, err = run(t, "generate", "hypercube")
	require.Equal(t, ExitDataErr, ExitCode(err))

	_, err = run(t, "generate")
	require.Equal(t, ExitUsage, ExitCode(err))
}
