// Package pipeline provides the generate → render pipeline for glyphfall.
//
// The CLI and the HTTP API both run grids through this package so that
// defaults, validation and caching behave identically at every entry point.
//
// # Architecture
//
// The pipeline consists of two stages:
//
//  1. Generate: Build a rows × cols grid with [rain.Generate]
//  2. Render: Write the grid in each requested format (LaTeX, JSON, SVG, ...)
//
// Generation is deterministic for a fixed seed, so rendered artifacts are
// cached under a hash of the generation options.
//
// # Usage
//
// Create a Runner and execute the pipeline:
//
//	runner := pipeline.NewRunner(cache, nil, logger)
//	opts := pipeline.DefaultOptions()
//	opts.Formats = []string{"latex", "svg"}
//	result, err := runner.Execute(ctx, opts)
//	if err != nil {
//	    log.Fatal(err)
//	}
//	tex := result.Artifacts["latex"]
package pipeline

import (
	"io"
	"maps"
	"math"
	"slices"
	"strings"
	"time"

	"github.com/charmbracelet/log"

	"github.com/matzehuels/glyphfall/pkg/cache"
	"github.com/matzehuels/glyphfall/pkg/config"
	apperr "github.com/matzehuels/glyphfall/pkg/errors"
	"github.com/matzehuels/glyphfall/pkg/rain"
	"github.com/matzehuels/glyphfall/pkg/render/sink"
)

// =============================================================================
// Default Values - Single Source of Truth for CLI and API
// =============================================================================

const (
	// DefaultSeed replaces a zero seed so that a bare Options value is
	// reproducible. Entry points that want fresh output pick their own seed.
	DefaultSeed = uint64(42)

	// DefaultCellSize is the SVG cell edge length.
	DefaultCellSize = sink.DefaultCellSize

	// DefaultScale is the PNG scale factor.
	DefaultScale = 2.0

	// DefaultFormat is the format rendered when none is requested.
	DefaultFormat = FormatLaTeX
)

// Format constants for output formats.
const (
	FormatLaTeX = "latex"
	FormatJSON  = "json"
	FormatSVG   = "svg"
	FormatPNG   = "png"
	FormatPDF   = "pdf"
	FormatANSI  = "ansi"
	FormatXLSX  = "xlsx"
)

// ValidFormats is the set of supported output formats.
var ValidFormats = map[string]bool{
	FormatLaTeX: true,
	FormatJSON:  true,
	FormatSVG:   true,
	FormatPNG:   true,
	FormatPDF:   true,
	FormatANSI:  true,
	FormatXLSX:  true,
}

// formatInfo maps formats to file extensions and MIME types.
var formatInfo = map[string]struct{ ext, mime string }{
	FormatLaTeX: {"tex", "application/x-latex"},
	FormatJSON:  {"json", "application/json"},
	FormatSVG:   {"svg", "image/svg+xml"},
	FormatPNG:   {"png", "image/png"},
	FormatPDF:   {"pdf", "application/pdf"},
	FormatANSI:  {"ans", "text/plain; charset=utf-8"},
	FormatXLSX:  {"xlsx", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet"},
}

// FormatNames returns the supported formats in sorted order.
func FormatNames() []string {
	names := make([]string, 0, len(ValidFormats))
	for f := range ValidFormats {
		names = append(names, f)
	}
	slices.Sort(names)
	return names
}

// Extension returns the file extension (without dot) for a format.
func Extension(format string) string { return formatInfo[format].ext }

// ContentType returns the MIME type for a format.
func ContentType(format string) string { return formatInfo[format].mime }

// =============================================================================
// Options - Pipeline Configuration
// =============================================================================

// Options contains all configuration for the pipeline.
// This struct supports JSON serialization for API requests.
//
// Probabilities and colors have meaningful zero values, so callers start
// from [DefaultOptions] or [FromConfig] and override fields. Only Rows,
// Cols, Scan, Symbols, Seed, Formats, CellSize and Scale are defaulted when
// zero.
type Options struct {
	// Generate options
	Rows       int      `json:"rows"`
	Cols       int      `json:"cols"`
	StayBlank  float64  `json:"stay_blank"`
	StayGlyph  float64  `json:"stay_glyph"`
	Hue        int      `json:"hue"`
	Saturation float64  `json:"saturation"`
	Brightness float64  `json:"brightness"`
	Delta      float64  `json:"delta"`
	Scan       string   `json:"scan,omitempty"`
	Symbols    []string `json:"symbols,omitempty"`
	Seed       uint64   `json:"seed,omitempty"`
	Workers    int      `json:"-"`

	// Render options
	Formats    []string          `json:"formats,omitempty"`
	Text       map[string]string `json:"text,omitempty"`
	CellSize   float64           `json:"cell_size,omitempty"`
	Background string            `json:"background,omitempty"`
	Font       string            `json:"font,omitempty"`
	Scale      float64           `json:"scale,omitempty"`
	Refresh    bool              `json:"refresh,omitempty"`

	// Runtime options (not serialized)
	Logger *log.Logger `json:"-"`

	// validated tracks whether ValidateAndSetDefaults has been called.
	validated bool
}

// Result contains the outputs of a pipeline run.
type Result struct {
	// Grid is the generated grid.
	Grid *rain.Grid

	// GridHash identifies the grid by its generation options.
	GridHash string

	// Seed is the seed the grid was generated with.
	Seed uint64

	// Artifacts contains rendered outputs keyed by format.
	Artifacts map[string][]byte

	// Stats contains timing and grid information.
	Stats Stats

	// CacheInfo tracks which stages hit the cache.
	CacheInfo CacheInfo
}

// Stats contains pipeline execution statistics.
type Stats struct {
	Grid         rain.Stats
	GenerateTime time.Duration
	RenderTime   time.Duration
}

// CacheInfo tracks cache hits for each pipeline stage.
type CacheInfo struct {
	RenderHit bool // Whether all artifacts came from cache
}

// DefaultOptions returns options equal to the built-in configuration.
func DefaultOptions() Options {
	return FromConfig(config.Default())
}

// FromConfig converts a loaded configuration to pipeline options.
func FromConfig(c config.Config) Options {
	return Options{
		Rows:       c.Grid.Rows,
		Cols:       c.Grid.Cols,
		StayBlank:  c.Markov.StayBlank,
		StayGlyph:  c.Markov.StayGlyph,
		Hue:        c.Color.Hue,
		Saturation: c.Color.Saturation,
		Brightness: c.Color.Brightness,
		Delta:      c.Color.Delta,
		Scan:       c.Color.Scan,
		Symbols:    slices.Clone(c.Symbols.Pool),
		Text:       maps.Clone(c.Symbols.Text),
		Seed:       c.Grid.Seed,
		Workers:    c.Grid.Workers,
	}
}

// =============================================================================
// Validation Functions
// =============================================================================

// ValidateFormat checks that a format is valid.
func ValidateFormat(format string) error {
	if !ValidFormats[format] {
		return apperr.New(apperr.ErrCodeInvalidFormat, "invalid format: %q (must be one of: %s)",
			format, strings.Join(FormatNames(), ", "))
	}
	return nil
}

// ValidateFormats checks that all formats are valid.
func ValidateFormats(formats []string) error {
	for _, f := range formats {
		if err := ValidateFormat(f); err != nil {
			return err
		}
	}
	return nil
}

// =============================================================================
// Options Methods
// =============================================================================

// ValidateAndSetDefaults checks all fields and applies defaults.
// This method is idempotent - calling it multiple times has the same effect as calling it once.
func (o *Options) ValidateAndSetDefaults() error {
	if o.validated {
		return nil
	}
	if err := o.ValidateForGenerate(); err != nil {
		return err
	}
	if err := o.ValidateForRender(); err != nil {
		return err
	}
	o.validated = true
	return nil
}

// ValidateForGenerate applies generation defaults and checks the grid
// size, symbol pool and scan mode.
func (o *Options) ValidateForGenerate() error {
	if o.Rows == 0 {
		o.Rows = config.DefaultRows
	}
	if o.Cols == 0 {
		o.Cols = config.DefaultCols
	}
	if o.Scan == "" {
		o.Scan = string(rain.ScanHead)
	}
	if len(o.Symbols) == 0 {
		o.Symbols = config.DefaultPool()
	}
	if o.Seed == 0 {
		o.Seed = DefaultSeed
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}

	if err := apperr.ValidateGridSize(o.Rows, o.Cols); err != nil {
		return err
	}
	if err := apperr.ValidateSymbols(o.Symbols); err != nil {
		return err
	}
	if o.Workers < 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "workers must not be negative")
	}
	if err := requireFinite(map[string]float64{
		"stay_blank": o.StayBlank,
		"stay_glyph": o.StayGlyph,
		"saturation": o.Saturation,
		"brightness": o.Brightness,
		"delta":      o.Delta,
	}); err != nil {
		return err
	}
	_, err := rain.ParseScanMode(o.Scan)
	return err
}

// SetRenderDefaults sets default values for rendering.
func (o *Options) SetRenderDefaults() {
	if len(o.Formats) == 0 {
		o.Formats = []string{DefaultFormat}
	}
	if o.CellSize == 0 {
		o.CellSize = DefaultCellSize
	}
	if o.Scale == 0 {
		o.Scale = DefaultScale
	}
	if o.Logger == nil {
		o.Logger = log.NewWithOptions(io.Discard, log.Options{})
	}
}

// ValidateForRender validates and sets defaults for rendering.
func (o *Options) ValidateForRender() error {
	o.SetRenderDefaults()
	if err := requireFinite(map[string]float64{"cell_size": o.CellSize, "scale": o.Scale}); err != nil {
		return err
	}
	if o.CellSize < 0 || o.Scale < 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "cell_size and scale must not be negative")
	}
	return ValidateFormats(o.Formats)
}

// RainConfig returns the generator configuration described by o.
func (o *Options) RainConfig() (rain.Config, error) {
	scan, err := rain.ParseScanMode(o.Scan)
	if err != nil {
		return rain.Config{}, err
	}
	return rain.Config{
		Transition: rain.Transition{StayBlank: o.StayBlank, StayGlyph: o.StayGlyph},
		Symbols:    o.Symbols,
		Base:       rain.HSB(o.Hue, o.Saturation, o.Brightness),
		Transform:  rain.Brighten{Delta: o.Delta},
		Scan:       scan,
	}, nil
}

// gridKey lists every option that changes the generated cells.
type gridKey struct {
	Rows       int             `json:"rows"`
	Cols       int             `json:"cols"`
	Transition rain.Transition `json:"transition"`
	Base       rain.Color      `json:"base"`
	Delta      float64         `json:"delta"`
	Scan       string          `json:"scan"`
	Symbols    []string        `json:"symbols"`
	Seed       uint64          `json:"seed"`
}

// requireFinite rejects NaN and infinite values, reporting the first
// offending name in sorted order.
func requireFinite(values map[string]float64) error {
	for _, name := range slices.Sorted(maps.Keys(values)) {
		if v := values[name]; math.IsNaN(v) || math.IsInf(v, 0) {
			return apperr.New(apperr.ErrCodeInvalidInput, "%s must be a finite number, got %v", name, v)
		}
	}
	return nil
}

// GridHash returns a hash identifying the grid these options generate.
// Worker count is excluded because it never changes the output. It fails
// only for non-finite values, which validation rejects.
func (o *Options) GridHash() (string, error) {
	return cache.HashJSON(gridKey{
		Rows:       o.Rows,
		Cols:       o.Cols,
		Transition: rain.Transition{StayBlank: o.StayBlank, StayGlyph: o.StayGlyph},
		Base:       rain.HSB(o.Hue, o.Saturation, o.Brightness),
		Delta:      o.Delta,
		Scan:       o.Scan,
		Symbols:    o.Symbols,
		Seed:       o.Seed,
	})
}

// ArtifactKeyOpts returns cache key options for artifact rendering.
func (o *Options) ArtifactKeyOpts(format string) cache.ArtifactKeyOpts {
	opts := cache.ArtifactKeyOpts{Format: format}
	switch format {
	case FormatSVG, FormatPDF:
		opts.CellSize = o.CellSize
		opts.Background, opts.Font = o.Background, o.Font
	case FormatPNG:
		opts.CellSize = o.CellSize
		opts.Scale = o.Scale
		opts.Background, opts.Font = o.Background, o.Font
	}
	if format != FormatLaTeX && len(o.Text) > 0 {
		opts.TextHash, _ = cache.HashJSON(o.Text)
	}
	return opts
}
