// Package metrics records solver runs in a dedicated Prometheus registry and
// exports them in the node_exporter textfile format.
package metrics

import (
	"time"

	"github.com/pkg/errors"
	"github.com/prometheus/client_golang/prometheus"
	"github.com/prometheus/client_golang/prometheus/collectors"
)

const namespace = "hamcycle"

// Recorder owns a registry and the solver collectors registered on it.
type Recorder struct {
	// Registry is the dedicated Prometheus registry for one command run
	Registry *prometheus.Registry
	// Solves counts runs by algorithm and outcome
	Solves *prometheus.CounterVec
	// Duration records solve durations in seconds
	Duration *prometheus.HistogramVec
	// TourCost holds the cost of the last tour per algorithm
	TourCost *prometheus.GaugeVec
	// Vertices holds the order of the last graph solved
	Vertices prometheus.Gauge
}

// New builds a Recorder. withRuntime adds the Go and process collectors.
func New(withRuntime bool) *Recorder {
	r := &Recorder{
		Registry: prometheus.NewRegistry(),
		Solves: prometheus.NewCounterVec(
			prometheus.CounterOpts{Namespace: namespace, Name: "solves_total", Help: "Solver runs by algorithm and status."},
			[]string{"algorithm", "status"},
		),
		Duration: prometheus.NewHistogramVec(
			prometheus.HistogramOpts{
				Namespace: namespace,
				Name:      "solve_duration_seconds",
				Help:      "Solver wall time in seconds.",
				Buckets:   prometheus.ExponentialBuckets(1e-6, 10, 9),
			},
			[]string{"algorithm"},
		),
		TourCost: prometheus.NewGaugeVec(
			prometheus.GaugeOpts{Namespace: namespace, Name: "tour_cost", Help: "Cost of the last tour found."},
			[]string{"algorithm"},
		),
		Vertices: prometheus.NewGauge(
			prometheus.GaugeOpts{Namespace: namespace, Name: "graph_vertices", Help: "Vertices in the last graph solved."},
		),
	}
	r.Registry.MustRegister(r.Solves, r.Duration, r.TourCost, r.Vertices)
	if withRuntime {
		r.Registry.MustRegister(collectors.NewGoCollector())
		r.Registry.MustRegister(collectors.NewProcessCollector(collectors.ProcessCollectorOpts{}))
	}

	return r
}

// Observe records one solver run. cost is ignored unless found.
func (r *Recorder) Observe(algorithm, status string, vertices int, found bool, cost int, elapsed time.Duration) {
	r.Solves.WithLabelValues(algorithm, status).Inc()
	r.Duration.WithLabelValues(algorithm).Observe(elapsed.Seconds())
	r.Vertices.Set(float64(vertices))
	if found {
		r.TourCost.WithLabelValues(algorithm).Set(float64(cost))
	}
}

// WriteTextfile writes every metric in the registry to path atomically.
func (r *Recorder) WriteTextfile(path string) error {
	if err := prometheus.WriteToTextfile(path, r.Registry); err != nil {
		return errors.Wrapf(err, "write metrics %s", path)
	}

	return nil
}
