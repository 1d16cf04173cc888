// Package cli implements the hamcycle command tree.
package cli

import (
	"context"
	"fmt"
	"io"
	"os"

	"github.com/katalvlaran/hamcycle/internal/logging"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

var exitFunc = os.Exit

// Execute is the entry point to running the CLI
func Execute(ctx context.Context, version string) {
	rootCmd := NewRootCommand(ctx, version, os.Stdout, os.Stderr)
	rootCmd.SetArgs(os.Args[1:])
	if err := rootCmd.Execute(); err != nil {
		fmt.Fprintln(os.Stderr, "hamcycle:", err)
		exitFunc(ExitCode(err))
	}
}

// NewRootCommand builds the command tree writing results to stdout and logs
// to stderr.
func NewRootCommand(ctx context.Context, version string, stdout, stderr io.Writer) *cobra.Command {
	input := new(Input)
	rootCmd := &cobra.Command{
		Use:   "hamcycle [flags] <graph-file>",
		Short: "Find Hamiltonian cycles (TSP tours) in a weighted adjacency matrix",
		Long: "hamcycle reads a square weight matrix (one row per line, 0 = no edge) and\n" +
			"computes a tour with the MST 2-approximation, exhaustive search, or both.",
		Args:          requireGraphFile,
		RunE:          newSolveAction(ctx, input, stdout, stderr),
		Version:       version,
		SilenceUsage:  true,
		SilenceErrors: true,
	}
	rootCmd.SetOut(stdout)
	rootCmd.SetErr(stderr)
	rootCmd.PersistentFlags().BoolVarP(&input.verbose, "verbose", "v", false, "verbose output")
	rootCmd.PersistentFlags().StringVarP(&input.configPath, "config", "c", "", "path to config file (default: search $HAMCYCLE_CONFIG, ./hamcycle.yaml, XDG config dirs)")
	bindSolveFlags(rootCmd.Flags(), input)

	rootCmd.AddCommand(newGenerateCommand(ctx, stdout))

	return rootCmd
}

func requireGraphFile(_ *cobra.Command, args []string) error {
	switch len(args) {
	case 0:
		return withCode(ExitUsage, errors.New("no graph file given"))
	case 1:
		return nil
	default:
		return withCode(ExitUsage, errors.Errorf("expected one graph file, got %d arguments", len(args)))
	}
}

// newLogger builds the run logger and stores it in ctx.
func newLogger(ctx context.Context, level, format string, stderr io.Writer) (context.Context, error) {
	logger, err := logging.New(logging.Config{Level: level, Format: format}, stderr)
	if err != nil {
		return ctx, err
	}

	return logging.WithLogger(ctx, logger), nil
}
