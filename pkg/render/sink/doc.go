// Package sink renders a generated [rain.Grid] into output formats.
//
// # Overview
//
// A "sink" turns the row-major cell grid into bytes. This package provides:
//
//   - LaTeX: an xcolor array in inline math, the canonical output
//   - JSON: cells, colors and grid statistics for external tools
//   - SVG: glyphs as colored text on a black background
//   - PDF and PNG: SVG converted with rsvg-convert
//   - ANSI: truecolor terminal text
//   - XLSX: a spreadsheet with one colored glyph per cell
//
// Unset and empty cells render identically in every sink.
//
// # Symbols and Display Text
//
// Symbols are LaTeX math-mode strings such as `\forall`. The LaTeX sink
// writes them verbatim. The other sinks look each symbol up in a display
// text table (see [WithText] and friends) and fall back to the raw symbol
// when it has no entry.
//
// # Colors
//
// Cell colors are HSB triples whose brightness may exceed 1 on long chains.
// LaTeX output keeps the raw values. Every other sink clamps saturation and
// brightness to [0, 1] and converts to RGB with go-colorful.
//
//	svg := sink.RenderSVG(grid, sink.WithText(text), sink.WithCellSize(18))
//	pdf, err := sink.RenderPDF(ctx, grid, sink.WithPDFSVGOptions(sink.WithText(text)))
//
// [rain.Grid]: github.com/matzehuels/glyphfall/pkg/rain.Grid
package sink
