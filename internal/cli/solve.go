package cli

import (
	"context"
	"fmt"
	"io"
	"time"

	"github.com/katalvlaran/hamcycle/internal/config"
	"github.com/katalvlaran/hamcycle/internal/logging"
	"github.com/katalvlaran/hamcycle/internal/metrics"
	"github.com/katalvlaran/hamcycle/internal/render"
	"github.com/katalvlaran/hamcycle/internal/report"
	"github.com/katalvlaran/hamcycle/loader"
	"github.com/katalvlaran/hamcycle/matrix"
	"github.com/katalvlaran/hamcycle/tsp"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"
	"github.com/spf13/cobra"
)

func newSolveAction(ctx context.Context, input *Input, stdout, stderr io.Writer) func(*cobra.Command, []string) error {
	return func(cmd *cobra.Command, args []string) error {
		cfg, cfgPath, err := config.Load(input.configPath)
		if err != nil {
			return err
		}
		input.merge(cmd.Flags(), cfg)
		if err = cfg.Validate(); err != nil {
			return withCode(ExitUsage, err)
		}

		runCtx, err := newLogger(ctx, cfg.Log.Level, cfg.Log.Format, stderr)
		if err != nil {
			return withCode(ExitUsage, err)
		}
		if cfgPath != "" {
			logging.Logger(runCtx).Debugf("Using config %s", cfgPath)
		}

		return runSolve(runCtx, cfg, args[0], stdout)
	}
}

// runSolve loads the graph, runs the configured algorithms and writes every
// requested output.
func runSolve(ctx context.Context, cfg *config.Config, graphPath string, stdout io.Writer) error {
	log := logging.Logger(ctx)

	if cfg.Output.Format == config.FormatText {
		fmt.Fprintf(stdout, "file path: %s\n", graphPath)
	}
	g, err := loader.LoadFile(graphPath)
	switch {
	case errors.Is(err, loader.ErrOpen):
		return withCode(ExitFailure, errors.Wrap(err, "problem opening the file"))
	case err != nil:
		return withCode(ExitDataErr, errors.Wrapf(err, "read graph %s", graphPath))
	}
	log.WithFields(logrus.Fields{"vertices": g.Size(), "symmetric": g.IsSymmetric()}).Debug("graph loaded")

	var (
		rec     = metrics.New(cfg.Output.MetricsFile != "")
		reports []report.Report
		plotted *report.Report
	)
	for _, algo := range algorithms(cfg.Solver.Algorithm) {
		r, err := solveOne(ctx, g, algo, cfg.Solver, rec)
		if err != nil {
			return err
		}
		reports = append(reports, r)
	}

	switch cfg.Output.Format {
	case config.FormatYAML:
		if err = report.WriteYAML(stdout, reports); err != nil {
			return err
		}
	default:
		for _, r := range reports {
			if err = report.WriteText(stdout, r); err != nil {
				return err
			}
		}
	}

	// The exact tour is preferred for the diagram when both ran.
	for i := len(reports) - 1; i >= 0; i-- {
		if reports[i].Found {
			plotted = &reports[i]
			break
		}
	}
	if cfg.Output.Plot != "" {
		if plotted == nil {
			log.Warn("no tour to plot")
		} else {
			title := fmt.Sprintf("%s tour, cost %d", plotted.Algorithm, plotted.Distance)
			if err = render.Tour(g, plotted.Path, title, cfg.Output.Plot); err != nil {
				return err
			}
			log.Infof("tour diagram written to %s", cfg.Output.Plot)
		}
	}

	if cfg.Output.MetricsFile != "" {
		if err = rec.WriteTextfile(cfg.Output.MetricsFile); err != nil {
			return err
		}
		log.Debugf("metrics written to %s", cfg.Output.MetricsFile)
	}

	return nil
}

// algorithms expands the configured name into the solvers to run, in order.
func algorithms(name string) []tsp.Algorithm {
	switch name {
	case config.AlgorithmExact:
		return []tsp.Algorithm{tsp.Exact}
	case config.AlgorithmBoth:
		return []tsp.Algorithm{tsp.Approx, tsp.Exact}
	default:
		return []tsp.Algorithm{tsp.Approx}
	}
}

func solveOne(ctx context.Context, g *matrix.Dense, algo tsp.Algorithm, sc config.SolverConfig, rec *metrics.Recorder) (report.Report, error) {
	log := logging.Logger(ctx).WithField("algorithm", algo.String())
	opts := tsp.Options{
		Algo:             algo,
		StartVertex:      sc.Start,
		Pruning:          sc.PruningEnabled(),
		MaxExactVertices: sc.MaxExact(),
		Ctx:              ctx,
	}

	start := time.Now()
	res, err := tsp.Solve(g, opts)
	elapsed := time.Since(start)
	if err != nil {
		if errors.Is(err, context.Canceled) {
			return report.Report{}, withCode(ExitInterrupt, err)
		}
		return report.Report{}, withCode(ExitDataErr, errors.Wrapf(err, "%s solver", algo))
	}
	rec.Observe(algo.String(), res.Status.String(), g.Size(), res.Found(), res.Cost, elapsed)

	r := report.New(algo.String(), g.Rows(), elapsed)
	r.Found = res.Found()
	r.Explored = res.Explored
	if r.Found {
		// Exact tours list n vertices, approximate tours n+1 (closed).
		r.Path = tsp.CopyTour(res.Tour)
		r.Distance = res.Cost
		r.MissingEdges = res.MissingEdges
	}
	log.WithFields(logrus.Fields{
		"status":  res.Status.String(),
		"cost":    res.Cost,
		"elapsed": elapsed,
	}).Debug("solve finished")
	if res.MissingEdges > 0 {
		log.Warnf("tour crosses %d missing edges; the graph has no Hamiltonian cycle along this walk", res.MissingEdges)
	}

	return r, nil
}
