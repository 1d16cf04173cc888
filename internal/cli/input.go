package cli

import (
	"github.com/katalvlaran/hamcycle/internal/config"
	"github.com/spf13/pflag"
)

// Input contains the flag values of the root command
type Input struct {
	configPath  string
	algorithm   string
	start       int
	noPrune     bool
	maxExact    int
	format      string
	plotPath    string
	metricsFile string
	verbose     bool
	logFormat   string
}

// bindSolveFlags registers the solve flags on fs.
func bindSolveFlags(fs *pflag.FlagSet, in *Input) {
	fs.StringVarP(&in.algorithm, "algo", "a", config.AlgorithmApprox, "algorithm: approx, exact or both")
	fs.IntVarP(&in.start, "start", "s", 0, "start vertex")
	fs.BoolVar(&in.noPrune, "no-prune", false, "disable adjacency pruning in the exact search")
	fs.IntVar(&in.maxExact, "max-exact", config.DefaultMaxExactVertices, "largest graph the exact search accepts (0 = no limit)")
	fs.StringVarP(&in.format, "format", "o", config.FormatText, "output format: text or yaml")
	fs.StringVar(&in.plotPath, "plot", "", "render the tour to this file (.png, .svg, .pdf)")
	fs.StringVar(&in.metricsFile, "metrics-file", "", "write Prometheus metrics in textfile format to this path")
	fs.StringVar(&in.logFormat, "log-format", config.LogFormatAuto, "log format: auto, text or json")
}

// merge applies the flags the user actually set on top of cfg.
func (in *Input) merge(fs *pflag.FlagSet, cfg *config.Config) {
	if fs.Changed("algo") {
		cfg.Solver.Algorithm = in.algorithm
	}
	if fs.Changed("start") {
		cfg.Solver.Start = in.start
	}
	if fs.Changed("no-prune") {
		on := !in.noPrune
		cfg.Solver.Pruning = &on
	}
	if fs.Changed("max-exact") {
		limit := in.maxExact
		cfg.Solver.MaxExactVertices = &limit
	}
	if fs.Changed("format") {
		cfg.Output.Format = in.format
	}
	if fs.Changed("plot") {
		cfg.Output.Plot = in.plotPath
	}
	if fs.Changed("metrics-file") {
		cfg.Output.MetricsFile = in.metricsFile
	}
	if fs.Changed("log-format") {
		cfg.Log.Format = in.logFormat
	}
	if in.verbose {
		cfg.Log.Level = "debug"
	}
}
