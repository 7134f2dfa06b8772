// Package render converts SVG documents to other formats.
//
// [ToPDF] and [ToPNG] shell out to rsvg-convert (from librsvg). They are used
// by the PDF and PNG sinks in the [sink] subpackage, which renders grids.
//
//	svg := sink.RenderSVG(grid)
//	pdf, err := render.ToPDF(ctx, svg)
//	png, err := render.ToPNG(ctx, svg, 2.0) // 2x scale
//
// When rsvg-convert is not on PATH both functions fail with an
// UNSUPPORTED error so that callers can report a clear install hint.
//
// [sink]: github.com/matzehuels/glyphfall/pkg/render/sink
package render
