// Package config loads the hamcycle configuration file.
//
// Config file locations (priority order):
//  1. the --config flag
//  2. $HAMCYCLE_CONFIG
//  3. ./hamcycle.yaml
//  4. $XDG_CONFIG_HOME/hamcycle/config.yaml, then the XDG system dirs
//
// No file found means Default(). Command line flags override file values.
package config

import (
	"os"

	"github.com/pkg/errors"
	"gopkg.in/yaml.v3"
)

// Algorithm names accepted in solver.algorithm.
const (
	AlgorithmApprox = "approx"
	AlgorithmExact  = "exact"
	AlgorithmBoth   = "both"
)

// Output formats accepted in output.format.
const (
	FormatText = "text"
	FormatYAML = "yaml"
)

// Log formats accepted in log.format.
const (
	LogFormatAuto = "auto"
	LogFormatText = "text"
	LogFormatJSON = "json"
)

// DefaultMaxExactVertices mirrors tsp.DefaultMaxExactVertices.
const DefaultMaxExactVertices = 12

// Config is the root of hamcycle.yaml.
type Config struct {
	Solver SolverConfig `yaml:"solver"`
	Output OutputConfig `yaml:"output"`
	Log    LogConfig    `yaml:"log"`
}

// SolverConfig selects the algorithm and its knobs.
type SolverConfig struct {
	Algorithm string `yaml:"algorithm"`
	Start     int    `yaml:"start"`
	// Pruning and MaxExactVertices are pointers so an absent key keeps the
	// default while an explicit false / 0 is honoured (0 = no limit).
	Pruning          *bool `yaml:"pruning,omitempty"`
	MaxExactVertices *int  `yaml:"max_exact_vertices,omitempty"`
}

// OutputConfig controls presentation and side outputs.
type OutputConfig struct {
	Format      string `yaml:"format"`
	Plot        string `yaml:"plot,omitempty"`
	MetricsFile string `yaml:"metrics_file,omitempty"`
}

// LogConfig controls the logger.
type LogConfig struct {
	Level  string `yaml:"level"`
	Format string `yaml:"format"`
}

// PruningEnabled reports the effective pruning flag.
func (s SolverConfig) PruningEnabled() bool {
	return s.Pruning == nil || *s.Pruning
}

// MaxExact reports the effective exact-search ceiling; 0 means no limit.
func (s SolverConfig) MaxExact() int {
	if s.MaxExactVertices == nil {
		return DefaultMaxExactVertices
	}

	return *s.MaxExactVertices
}

// Load resolves the config path and loads it, or returns defaults if none found.
// The returned string is the path that was read ("" for defaults).
func Load(explicitPath string) (*Config, string, error) {
	path := explicitPath
	if path == "" {
		path = FindConfigPath()
	}
	if path == "" {
		return Default(), "", nil
	}

	cfg, err := LoadFromPath(path)
	if err != nil {
		return nil, path, err
	}

	return cfg, path, nil
}

// LoadFromPath loads and validates config from a specific path.
func LoadFromPath(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, errors.Wrap(err, "read config")
	}

	var cfg Config
	if err = yaml.Unmarshal(data, &cfg); err != nil {
		return nil, errors.Wrapf(err, "parse config %s", path)
	}
	cfg.applyDefaults()
	if err = cfg.Validate(); err != nil {
		return nil, errors.Wrapf(err, "config %s", path)
	}

	return &cfg, nil
}

// Default returns the built-in configuration.
func Default() *Config {
	cfg := &Config{}
	cfg.applyDefaults()

	return cfg
}

// applyDefaults fills in missing values with defaults
func (c *Config) applyDefaults() {
	if c.Solver.Algorithm == "" {
		c.Solver.Algorithm = AlgorithmApprox
	}
	if c.Solver.Pruning == nil {
		on := true
		c.Solver.Pruning = &on
	}
	if c.Solver.MaxExactVertices == nil {
		limit := DefaultMaxExactVertices
		c.Solver.MaxExactVertices = &limit
	}
	if c.Output.Format == "" {
		c.Output.Format = FormatText
	}
	if c.Log.Level == "" {
		c.Log.Level = "info"
	}
	if c.Log.Format == "" {
		c.Log.Format = LogFormatAuto
	}
}

// Validate rejects values no command can act on.
func (c *Config) Validate() error {
	switch c.Solver.Algorithm {
	case AlgorithmApprox, AlgorithmExact, AlgorithmBoth:
	default:
		return errors.Errorf("solver.algorithm %q: want approx, exact or both", c.Solver.Algorithm)
	}
	if c.Solver.Start < 0 {
		return errors.Errorf("solver.start %d: must be ≥ 0", c.Solver.Start)
	}
	if c.Solver.MaxExact() < 0 {
		return errors.Errorf("solver.max_exact_vertices %d: must be ≥ 0", c.Solver.MaxExact())
	}
	switch c.Output.Format {
	case FormatText, FormatYAML:
	default:
		return errors.Errorf("output.format %q: want text or yaml", c.Output.Format)
	}
	switch c.Log.Format {
	case LogFormatAuto, LogFormatText, LogFormatJSON:
	default:
		return errors.Errorf("log.format %q: want auto, text or json", c.Log.Format)
	}
	switch c.Log.Level {
	case "trace", "debug", "info", "warn", "warning", "error":
	default:
		return errors.Errorf("log.level %q", c.Log.Level)
	}

	return nil
}
