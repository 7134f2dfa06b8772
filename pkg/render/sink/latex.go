package sink

import (
	"bytes"
	"fmt"
	"strings"

	"github.com/matzehuels/glyphfall/pkg/rain"
)

// RenderLaTeX writes the grid as an xcolor-colored array in inline math.
// Columns are packed without spacing, rows are separated by `\\` and a
// newline, and cells by " & ". Glyph cells read
// `{ \color[Hsb]{h, s.ss, b.bb} symbol }`; empty and unset cells are empty.
// The document needs \usepackage{xcolor}.
func RenderLaTeX(g *rain.Grid) []byte {
	var buf bytes.Buffer
	buf.WriteString("\\(\\arraycolsep=0em\\def\\arraystretch{1}\n \\begin{array}{")
	buf.WriteString(strings.Repeat("c", g.Cols))
	buf.WriteString("}\n")

	for i, row := range g.Cells {
		if i > 0 {
			buf.WriteString("\\\\\n")
		}
		for j, c := range row {
			if j > 0 {
				buf.WriteString(" & ")
			}
			writeLaTeXCell(&buf, c)
		}
	}

	buf.WriteString("\n\\end{array}\\)")
	return buf.Bytes()
}

func writeLaTeXCell(buf *bytes.Buffer, c rain.Cell) {
	if !c.IsGlyph() {
		return
	}
	fmt.Fprintf(buf, "{ \\color[Hsb]{%d, %.2f, %.2f} %s }",
		c.Color.Hue, c.Color.Saturation, c.Color.Brightness, c.Symbol)
}
