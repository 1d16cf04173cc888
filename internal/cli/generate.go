package cli

import (
	"context"
	"io"
	"os"
	"strings"

	"github.com/katalvlaran/hamcycle/builder"
	"github.com/katalvlaran/hamcycle/internal/logging"
	"github.com/katalvlaran/hamcycle/loader"
	"github.com/pkg/errors"
	"github.com/spf13/cobra"
)

type generateInput struct {
	vertices int
	seed     int64
	weight   int
	output   string
}

func newGenerateCommand(ctx context.Context, stdout io.Writer) *cobra.Command {
	in := new(generateInput)
	cmd := &cobra.Command{
		Use:   "generate <kind>",
		Short: "Write a generated weight matrix",
		Long:  "Kinds: " + strings.Join(builder.Kinds(), ", ") + ".",
		Args: func(_ *cobra.Command, args []string) error {
			if len(args) != 1 {
				return withCode(ExitUsage, errors.Errorf("expected one kind (%s)", strings.Join(builder.Kinds(), ", ")))
			}
			return nil
		},
		RunE: func(_ *cobra.Command, args []string) error {
			return runGenerate(ctx, args[0], in, stdout)
		},
		SilenceUsage: true,
	}
	cmd.Flags().IntVarP(&in.vertices, "vertices", "n", 6, "number of vertices")
	cmd.Flags().Int64Var(&in.seed, "seed", builder.DefaultSeed, "random seed")
	cmd.Flags().IntVarP(&in.weight, "weight", "w", 100, "maximum (or uniform) edge weight")
	cmd.Flags().StringVarP(&in.output, "output", "O", "", "write to file instead of stdout")

	return cmd
}

func runGenerate(ctx context.Context, kind string, in *generateInput, stdout io.Writer) error {
	g, err := builder.ByName(kind, in.vertices, in.weight, builder.WithSeed(in.seed))
	if err != nil {
		return withCode(ExitDataErr, err)
	}
	logging.Logger(ctx).Debugf("generated %s graph with %d vertices", kind, g.Size())

	out := stdout
	if in.output != "" {
		f, err := os.Create(in.output)
		if err != nil {
			return errors.Wrap(err, "create output")
		}
		defer f.Close()
		out = f
	}

	return loader.Write(out, g)
}
