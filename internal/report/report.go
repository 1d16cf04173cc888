// Package report presents solver results as text or YAML.
package report

import (
	"fmt"
	"io"
	"strconv"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// NoSolutionMessage is printed when the search proves there is no cycle.
const NoSolutionMessage = "There is no Solution for a Hamiltonian Cycle, exiting..."

// Report is the outcome of one solver run.
type Report struct {
	RunID        string        `yaml:"run_id"`
	Algorithm    string        `yaml:"algorithm"`
	Graph        [][]int       `yaml:"graph,flow"`
	Found        bool          `yaml:"found"`
	Path         []int         `yaml:"path,flow,omitempty"`
	Distance     int           `yaml:"distance"`
	MissingEdges int           `yaml:"missing_edges,omitempty"`
	Explored     int           `yaml:"explored,omitempty"`
	Elapsed      time.Duration `yaml:"-"`
	Seconds      float64       `yaml:"seconds"`
}

// New stamps a report with a fresh run id. Seconds mirrors elapsed.
func New(algorithm string, graph [][]int, elapsed time.Duration) Report {
	return Report{
		RunID:     uuid.NewString(),
		Algorithm: algorithm,
		Graph:     graph,
		Elapsed:   elapsed,
		Seconds:   elapsed.Seconds(),
	}
}

// WriteText prints r in the line oriented human form.
func WriteText(w io.Writer, r Report) error {
	var b strings.Builder
	if !r.Found {
		b.WriteString(NoSolutionMessage)
		b.WriteByte('\n')
		_, err := io.WriteString(w, b.String())
		return errors.Wrap(err, "write report")
	}

	fmt.Fprintf(&b, "Graph: %s\n", formatMatrix(r.Graph))
	b.WriteString("Solution Exists:\n")
	fmt.Fprintf(&b, "Algorithm: %s\n", r.Algorithm)
	fmt.Fprintf(&b, "Path: %s\n", formatInts(r.Path))
	fmt.Fprintf(&b, "Distance: %d\n", r.Distance)
	if r.MissingEdges > 0 {
		fmt.Fprintf(&b, "Missing Edges: %d\n", r.MissingEdges)
	}
	fmt.Fprintf(&b, "Time: %s\n", strconv.FormatFloat(r.Elapsed.Seconds(), 'f', -1, 64))

	_, err := io.WriteString(w, b.String())
	return errors.Wrap(err, "write report")
}

// WriteYAML emits all reports as one YAML document.
func WriteYAML(w io.Writer, reports []Report) error {
	enc := yaml.NewEncoder(w)
	enc.SetIndent(2)
	if err := enc.Encode(struct {
		Runs []Report `yaml:"runs"`
	}{reports}); err != nil {
		return errors.Wrap(err, "encode report")
	}

	return errors.Wrap(enc.Close(), "encode report")
}

func formatInts(xs []int) string {
	parts := make([]string, len(xs))
	for i, x := range xs {
		parts[i] = strconv.Itoa(x)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}

func formatMatrix(rows [][]int) string {
	parts := make([]string, len(rows))
	for i, row := range rows {
		parts[i] = formatInts(row)
	}

	return "[" + strings.Join(parts, ", ") + "]"
}
