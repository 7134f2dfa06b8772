package cli

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphfall/pkg/cache"
	"github.com/matzehuels/glyphfall/pkg/pipeline"
)

// renderOpts holds the render-only flags.
type renderOpts struct {
	output     string   // output file path (or base path for multiple formats)
	formats    []string // output formats
	cellSize   float64  // SVG cell edge length
	background string   // SVG background fill
	font       string   // SVG font family
	scale      float64  // PNG scale factor
	noCache    bool     // disable the artifact cache
	refresh    bool     // re-render and overwrite cached artifacts
}

// renderCommand creates the render command.
//
// A single format without -o is written to stdout so the LaTeX output can be
// piped like the reference one-liner. Several formats, or -o, write files.
func (c *CLI) renderCommand() *cobra.Command {
	var (
		gen        genFlags
		opts       renderOpts
		formatsStr string
	)

	cmd := &cobra.Command{
		Use:   "render",
		Short: "Generate a grid and render it to one or more formats",
		Example: `  glyphfall render > rain.tex
  glyphfall render -f svg,png -o rain --seed 7
  glyphfall render -f json --rows 10 --cols 10 --scan wrap`,
		Args: cobra.NoArgs,
		RunE: func(cmd *cobra.Command, args []string) error {
			opts.formats = parseFormats(formatsStr)
			if err := pipeline.ValidateFormats(opts.formats); err != nil {
				return err
			}
			po, err := c.options(cmd, &gen)
			if err != nil {
				return err
			}
			po.Formats = opts.formats
			po.CellSize = opts.cellSize
			po.Background = opts.background
			po.Font = opts.font
			po.Scale = opts.scale
			po.Refresh = opts.refresh
			return c.runRender(cmd.Context(), po, &opts)
		},
	}

	gen.register(cmd)
	cmd.Flags().StringVarP(&opts.output, "output", "o", "", "output file (single format) or base path (multiple)")
	cmd.Flags().StringVarP(&formatsStr, "format", "f", "", "output format(s): "+strings.Join(pipeline.FormatNames(), ", ")+" (comma-separated, default latex)")
	cmd.Flags().Float64Var(&opts.cellSize, "cell-size", pipeline.DefaultCellSize, "SVG cell size in pixels")
	cmd.Flags().StringVar(&opts.background, "background", "", "SVG/PNG/PDF background color (default #000000)")
	cmd.Flags().StringVar(&opts.font, "font", "", "SVG/PNG/PDF font family (default DejaVu Sans Mono)")
	cmd.Flags().Float64Var(&opts.scale, "scale", pipeline.DefaultScale, "PNG scale factor")
	cmd.Flags().BoolVar(&opts.noCache, "no-cache", false, "disable the artifact cache")
	cmd.Flags().BoolVar(&opts.refresh, "refresh", false, "re-render even when cached")
	_ = cmd.RegisterFlagCompletionFunc("format", cobra.FixedCompletions(pipeline.FormatNames(), cobra.ShellCompDirectiveNoFileComp))

	return cmd
}

func (c *CLI) runRender(ctx context.Context, po pipeline.Options, opts *renderOpts) error {
	logger := loggerFromContext(ctx)
	prog := newProgress(logger, "render")

	runner, err := c.newRunner(ctx, opts.noCache, cache.NewDefaultKeyer())
	if err != nil {
		return err
	}
	defer runner.Close()

	logger.Debug("rendering", "rows", po.Rows, "cols", po.Cols, "seed", po.Seed, "formats", po.Formats)
	spin := newSpinnerWithContext(ctx, "Rendering "+strings.Join(po.Formats, ", "))
	spin.Start()
	result, err := runner.Execute(ctx, po)
	if err != nil {
		spin.StopWithError(err.Error())
		return err
	}
	spin.Stop()

	if len(po.Formats) == 1 && opts.output == "" {
		if _, err := os.Stdout.Write(result.Artifacts[po.Formats[0]]); err != nil {
			return fmt.Errorf("write stdout: %w", err)
		}
		prog.done("format", po.Formats[0], "seed", result.Seed, "cached", result.CacheInfo.RenderHit)
		return nil
	}

	paths, err := writeArtifacts(result.Artifacts, po.Formats, opts.output)
	if err != nil {
		return err
	}
	printSuccess("Rendered %d file(s) (seed %d)", len(paths), result.Seed)
	for _, p := range paths {
		printFile(p)
	}
	printStats(result.Stats.Grid, result.CacheInfo.RenderHit)
	prog.done("files", len(paths), "seed", result.Seed)
	return nil
}

// writeArtifacts writes each format's artifact and returns the paths in
// format order. With a single format, output is used verbatim; otherwise it
// is a base path that gets the format extension.
func writeArtifacts(artifacts map[string][]byte, formats []string, output string) ([]string, error) {
	base := output
	if base == "" {
		base = defaultBase
	}
	if len(formats) > 1 {
		base = strings.TrimSuffix(base, filepath.Ext(base))
	}

	paths := make([]string, 0, len(formats))
	for _, f := range formats {
		path := base
		if len(formats) > 1 || output == "" {
			path = base + "." + pipeline.Extension(f)
		}
		if dir := filepath.Dir(path); dir != "." {
			if err := os.MkdirAll(dir, 0o755); err != nil {
				return paths, fmt.Errorf("create %s: %w", dir, err)
			}
		}
		if err := os.WriteFile(path, artifacts[f], 0o644); err != nil {
			return paths, fmt.Errorf("write %s: %w", path, err)
		}
		paths = append(paths, path)
	}
	return paths, nil
}
