package sink

import (
	"encoding/json"

	"github.com/matzehuels/glyphfall/pkg/rain"
)

// JSONOption configures JSON rendering via [RenderJSON].
type JSONOption func(*jsonRenderer)

type jsonRenderer struct {
	seed uint64
	scan rain.ScanMode
	text map[string]string
}

// WithJSONSeed records the seed that produced the grid, enabling
// reproducible re-generation.
func WithJSONSeed(seed uint64) JSONOption { return func(r *jsonRenderer) { r.seed = seed } }

// WithJSONScan records the coloring scan mode.
func WithJSONScan(s rain.ScanMode) JSONOption { return func(r *jsonRenderer) { r.scan = s } }

// WithJSONText adds a display text field to each glyph cell.
func WithJSONText(text map[string]string) JSONOption {
	return func(r *jsonRenderer) { r.text = text }
}

type jsonOutput struct {
	Rows  int           `json:"rows"`
	Cols  int           `json:"cols"`
	Seed  uint64        `json:"seed,omitempty"`
	Scan  string        `json:"scan,omitempty"`
	Stats rain.Stats    `json:"stats"`
	Cells [][]*jsonCell `json:"cells"`
}

// jsonCell is null in the cells array for empty and unset positions.
type jsonCell struct {
	Symbol string     `json:"symbol"`
	Text   string     `json:"text,omitempty"`
	Color  rain.Color `json:"color"`
	Hex    string     `json:"hex"`
}

// RenderJSON exports the grid as a pretty-printed JSON document. Cells are
// row-major; non-glyph positions are null. Each glyph carries its raw HSB
// color and the clamped RGB hex used by the graphical sinks.
func RenderJSON(g *rain.Grid, opts ...JSONOption) ([]byte, error) {
	r := jsonRenderer{}
	for _, opt := range opts {
		opt(&r)
	}

	out := jsonOutput{
		Rows:  g.Rows,
		Cols:  g.Cols,
		Seed:  r.seed,
		Scan:  string(r.scan),
		Stats: g.Stats(),
		Cells: make([][]*jsonCell, len(g.Cells)),
	}
	for i, row := range g.Cells {
		cells := make([]*jsonCell, len(row))
		for j, c := range row {
			if !c.IsGlyph() {
				continue
			}
			cells[j] = &jsonCell{
				Symbol: c.Symbol,
				Color:  c.Color,
				Hex:    hexColor(c.Color),
			}
			if r.text != nil {
				cells[j].Text = label(r.text, c.Symbol)
			}
		}
		out.Cells[i] = cells
	}
	return json.MarshalIndent(out, "", "  ")
}
