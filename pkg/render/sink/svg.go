package sink

import (
	"bytes"
	"fmt"
	"html"

	"github.com/matzehuels/glyphfall/pkg/rain"
)

// DefaultCellSize is the edge length of one grid cell in SVG user units.
const DefaultCellSize = 16.0

// SVGOption configures SVG rendering.
type SVGOption func(*svgRenderer)

type svgRenderer struct {
	cellSize   float64
	text       map[string]string
	background string
	font       string
}

// WithCellSize sets the edge length of one cell.
func WithCellSize(size float64) SVGOption {
	return func(r *svgRenderer) {
		if size > 0 {
			r.cellSize = size
		}
	}
}

// WithText sets the display text table used for symbols.
func WithText(text map[string]string) SVGOption { return func(r *svgRenderer) { r.text = text } }

// WithBackground sets the background fill (default black).
func WithBackground(color string) SVGOption { return func(r *svgRenderer) { r.background = color } }

// WithFont sets the font-family of glyph text.
func WithFont(family string) SVGOption { return func(r *svgRenderer) { r.font = family } }

// RenderSVG draws each glyph as a centered text element on a filled
// background. Empty and unset cells draw nothing.
func RenderSVG(g *rain.Grid, opts ...SVGOption) []byte {
	r := newSVGRenderer(opts...)

	width := float64(g.Cols) * r.cellSize
	height := float64(g.Rows) * r.cellSize

	var buf bytes.Buffer
	fmt.Fprintf(&buf, `<svg xmlns="http://www.w3.org/2000/svg" viewBox="0 0 %.1f %.1f" width="%.0f" height="%.0f">`+"\n",
		width, height, width, height)
	fmt.Fprintf(&buf, `  <rect width="100%%" height="100%%" fill="%s"/>`+"\n", html.EscapeString(r.background))
	fmt.Fprintf(&buf, `  <g font-family="%s" font-size="%.1f" text-anchor="middle" dominant-baseline="central">`+"\n",
		html.EscapeString(r.font), r.cellSize*0.8)

	for i, row := range g.Cells {
		for j, c := range row {
			if !c.IsGlyph() {
				continue
			}
			x := (float64(j) + 0.5) * r.cellSize
			y := (float64(i) + 0.5) * r.cellSize
			fmt.Fprintf(&buf, `    <text x="%.1f" y="%.1f" fill="%s">%s</text>`+"\n",
				x, y, hexColor(c.Color), html.EscapeString(label(r.text, c.Symbol)))
		}
	}

	buf.WriteString("  </g>\n</svg>\n")
	return buf.Bytes()
}

func newSVGRenderer(opts ...SVGOption) svgRenderer {
	r := svgRenderer{
		cellSize:   DefaultCellSize,
		background: "#000000",
		font:       "DejaVu Sans Mono, monospace",
	}
	for _, opt := range opts {
		opt(&r)
	}
	return r
}
