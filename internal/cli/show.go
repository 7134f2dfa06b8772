package cli

import (
	"context"
	"fmt"
	"os"

	"github.com/muesli/termenv"
	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphfall/pkg/pipeline"
	"github.com/matzehuels/glyphfall/pkg/render/sink"
)

// showCommand creates the show command, which prints one grid to the terminal.
func (c *CLI) showCommand() *cobra.Command {
	var (
		gen   genFlags
		plain bool
	)

	cmd := &cobra.Command{
		Use:   "show",
		Short: "Print a grid as colored terminal text",
		Args:  cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts, err := c.options(cmd, &gen)
			if err != nil {
				return err
			}
			profile := termenv.EnvColorProfile()
			if plain {
				profile = termenv.Ascii
			}
			return c.runShow(cmd.Context(), opts, profile)
		},
	}

	gen.register(cmd)
	cmd.Flags().BoolVar(&plain, "plain", false, "print symbols without color")

	return cmd
}

func (c *CLI) runShow(ctx context.Context, opts pipeline.Options, profile termenv.Profile) error {
	runner := pipeline.NewRunner(nil, nil, loggerFromContext(ctx))
	defer runner.Close()

	g, err := runner.Generate(ctx, opts)
	if err != nil {
		return err
	}
	frame := sink.RenderANSI(g, sink.WithANSIText(opts.Text), sink.WithColorProfile(profile))
	if _, err := os.Stdout.Write(frame); err != nil {
		return fmt.Errorf("write stdout: %w", err)
	}
	loggerFromContext(ctx).Debug("shown", "seed", opts.Seed, "glyphs", g.Stats().Glyphs)
	return nil
}
