package sink

import (
	"fmt"
	"strings"

	"github.com/xuri/excelize/v2"

	"github.com/matzehuels/glyphfall/pkg/rain"
)

// XLSXOption configures spreadsheet rendering.
type XLSXOption func(*xlsxRenderer)

type xlsxRenderer struct {
	text  map[string]string
	sheet string
	width float64
}

// WithXLSXText sets the display text table used for symbols.
func WithXLSXText(text map[string]string) XLSXOption {
	return func(r *xlsxRenderer) { r.text = text }
}

// WithSheetName sets the worksheet name (default "Glyphs").
func WithSheetName(name string) XLSXOption {
	return func(r *xlsxRenderer) {
		if name != "" {
			r.sheet = name
		}
	}
}

// RenderXLSX writes the grid to a single-sheet workbook. Cell (i, j) of the
// grid is spreadsheet cell (row i+1, column j+1). Glyph cells hold their
// display text in a font of the cell's color; every cell has a black fill.
func RenderXLSX(g *rain.Grid, opts ...XLSXOption) ([]byte, error) {
	r := xlsxRenderer{sheet: "Glyphs", width: 3}
	for _, opt := range opts {
		opt(&r)
	}

	f := excelize.NewFile()
	defer f.Close()

	if err := f.SetSheetName(f.GetSheetName(0), r.sheet); err != nil {
		return nil, fmt.Errorf("rename sheet: %w", err)
	}

	blank, err := f.NewStyle(&excelize.Style{Fill: blackFill()})
	if err != nil {
		return nil, fmt.Errorf("create style: %w", err)
	}
	lastCol, err := excelize.ColumnNumberToName(g.Cols)
	if err != nil {
		return nil, fmt.Errorf("grid columns: %w", err)
	}
	lastCell, err := excelize.CoordinatesToCellName(g.Cols, g.Rows)
	if err != nil {
		return nil, fmt.Errorf("grid size: %w", err)
	}
	if err := f.SetColWidth(r.sheet, "A", lastCol, r.width); err != nil {
		return nil, err
	}
	if err := f.SetCellStyle(r.sheet, "A1", lastCell, blank); err != nil {
		return nil, err
	}

	styles := make(map[string]int)
	for i, row := range g.Cells {
		for j, c := range row {
			if !c.IsGlyph() {
				continue
			}
			cell, err := excelize.CoordinatesToCellName(j+1, i+1)
			if err != nil {
				return nil, err
			}
			hex := strings.TrimPrefix(hexColor(c.Color), "#")
			id, ok := styles[hex]
			if !ok {
				id, err = f.NewStyle(&excelize.Style{
					Font:      &excelize.Font{Color: hex},
					Fill:      blackFill(),
					Alignment: &excelize.Alignment{Horizontal: "center"},
				})
				if err != nil {
					return nil, fmt.Errorf("create style: %w", err)
				}
				styles[hex] = id
			}
			if err := f.SetCellValue(r.sheet, cell, label(r.text, c.Symbol)); err != nil {
				return nil, err
			}
			if err := f.SetCellStyle(r.sheet, cell, cell, id); err != nil {
				return nil, err
			}
		}
	}

	buf, err := f.WriteToBuffer()
	if err != nil {
		return nil, fmt.Errorf("write workbook: %w", err)
	}
	return buf.Bytes(), nil
}

func blackFill() excelize.Fill {
	return excelize.Fill{Type: "pattern", Pattern: 1, Color: []string{"000000"}}
}
