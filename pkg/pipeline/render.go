package pipeline

import (
	"context"
	"fmt"
	"time"

	"github.com/matzehuels/glyphfall/pkg/observability"
	"github.com/matzehuels/glyphfall/pkg/rain"
	"github.com/matzehuels/glyphfall/pkg/render/sink"
)

// Render generates output artifacts in the requested formats.
func Render(ctx context.Context, g *rain.Grid, opts Options) (artifacts map[string][]byte, err error) {
	opts.SetRenderDefaults()

	hooks := observability.Pipeline()
	hooks.OnRenderStart(ctx, opts.Formats)
	start := time.Now()
	defer func() { hooks.OnRenderComplete(ctx, opts.Formats, time.Since(start), err) }()

	svgOpts := buildSVGOptions(opts)
	artifacts = make(map[string][]byte, len(opts.Formats))

	for _, format := range opts.Formats {
		if err := ctx.Err(); err != nil {
			return nil, err
		}

		var data []byte
		var err error

		switch format {
		case FormatLaTeX:
			data = sink.RenderLaTeX(g)
		case FormatJSON:
			data, err = sink.RenderJSON(g,
				sink.WithJSONSeed(opts.Seed),
				sink.WithJSONScan(rain.ScanMode(opts.Scan)),
				sink.WithJSONText(opts.Text))
		case FormatSVG:
			data = sink.RenderSVG(g, svgOpts...)
		case FormatPNG:
			data, err = sink.RenderPNG(ctx, g, sink.WithPNGSVGOptions(svgOpts...), sink.WithScale(opts.Scale))
		case FormatPDF:
			data, err = sink.RenderPDF(ctx, g, sink.WithPDFSVGOptions(svgOpts...))
		case FormatANSI:
			data = sink.RenderANSI(g, sink.WithANSIText(opts.Text))
		case FormatXLSX:
			data, err = sink.RenderXLSX(g, sink.WithXLSXText(opts.Text))
		default:
			return nil, ValidateFormat(format)
		}

		if err != nil {
			return nil, fmt.Errorf("render %s: %w", format, err)
		}
		opts.Logger.Debug("rendered", "format", format, "bytes", len(data))
		artifacts[format] = data
	}

	return artifacts, nil
}

// buildSVGOptions builds SVG rendering options shared by the SVG, PNG and
// PDF sinks.
func buildSVGOptions(opts Options) []sink.SVGOption {
	svgOpts := []sink.SVGOption{sink.WithCellSize(opts.CellSize)}
	if len(opts.Text) > 0 {
		svgOpts = append(svgOpts, sink.WithText(opts.Text))
	}
	if opts.Background != "" {
		svgOpts = append(svgOpts, sink.WithBackground(opts.Background))
	}
	if opts.Font != "" {
		svgOpts = append(svgOpts, sink.WithFont(opts.Font))
	}
	return svgOpts
}
