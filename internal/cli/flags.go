package cli

import (
	"github.com/spf13/cobra"

	"github.com/matzehuels/glyphfall/pkg/pipeline"
	"github.com/matzehuels/glyphfall/pkg/rain"
)

// genFlags holds the generation flags shared by render, show, watch and serve.
// Only flags the user actually set override the loaded configuration.
type genFlags struct {
	rows       int
	cols       int
	seed       uint64
	workers    int
	stayBlank  float64
	stayGlyph  float64
	hue        int
	saturation float64
	brightness float64
	delta      float64
	scan       string
	symbols    []string
}

// register adds the generation flags to cmd. Defaults shown in help are the
// built-in ones; the config file may change them.
func (f *genFlags) register(cmd *cobra.Command) {
	d := pipeline.DefaultOptions()
	fs := cmd.Flags()
	fs.IntVar(&f.rows, "rows", d.Rows, "grid rows")
	fs.IntVar(&f.cols, "cols", d.Cols, "grid columns")
	fs.Uint64Var(&f.seed, "seed", 0, "random seed (0 picks a fresh one)")
	fs.IntVar(&f.workers, "workers", 0, "generation goroutines (0 = one per column)")
	fs.Float64Var(&f.stayBlank, "stay-blank", d.StayBlank, "probability a blank cell is followed by a blank")
	fs.Float64Var(&f.stayGlyph, "stay-glyph", d.StayGlyph, "probability a glyph is followed by a glyph")
	fs.IntVar(&f.hue, "hue", d.Hue, "chain head hue in degrees")
	fs.Float64Var(&f.saturation, "saturation", d.Saturation, "chain head saturation")
	fs.Float64Var(&f.brightness, "brightness", d.Brightness, "chain head brightness")
	fs.Float64Var(&f.delta, "delta", d.Delta, "brightness added per step away from the head")
	fs.StringVar(&f.scan, "scan", d.Scan, "coloring scan: head, wrap")
	fs.StringSliceVar(&f.symbols, "symbols", nil, "symbol pool (comma-separated, replaces the configured pool)")
	_ = cmd.RegisterFlagCompletionFunc("scan", cobra.FixedCompletions(
		[]string{string(rain.ScanHead), string(rain.ScanWrap)}, cobra.ShellCompDirectiveNoFileComp))
}

// apply copies every flag the user set onto opts.
func (f *genFlags) apply(cmd *cobra.Command, opts *pipeline.Options) {
	changed := cmd.Flags().Changed
	if changed("rows") {
		opts.Rows = f.rows
	}
	if changed("cols") {
		opts.Cols = f.cols
	}
	if changed("seed") {
		opts.Seed = f.seed
	}
	if changed("workers") {
		opts.Workers = f.workers
	}
	if changed("stay-blank") {
		opts.StayBlank = f.stayBlank
	}
	if changed("stay-glyph") {
		opts.StayGlyph = f.stayGlyph
	}
	if changed("hue") {
		opts.Hue = f.hue
	}
	if changed("saturation") {
		opts.Saturation = f.saturation
	}
	if changed("brightness") {
		opts.Brightness = f.brightness
	}
	if changed("delta") {
		opts.Delta = f.delta
	}
	if changed("scan") {
		opts.Scan = f.scan
	}
	if changed("symbols") {
		opts.Symbols = f.symbols
	}
}

// options loads the configuration, applies the set flags and fills in a
// fresh seed when none is fixed.
func (c *CLI) options(cmd *cobra.Command, f *genFlags) (pipeline.Options, error) {
	cfg, err := c.loadConfig()
	if err != nil {
		return pipeline.Options{}, err
	}
	opts := pipeline.FromConfig(cfg)
	f.apply(cmd, &opts)
	if opts.Seed == 0 {
		opts.Seed = randomSeed()
	}
	return opts, nil
}
