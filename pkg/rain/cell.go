package rain

// CellKind tags a [Cell].
type CellKind uint8

const (
	// CellUnset marks a position the coloring pass never visited.
	// It renders exactly like CellEmpty.
	CellUnset CellKind = iota
	CellEmpty
	CellGlyph
)

func (k CellKind) String() string {
	switch k {
	case CellUnset:
		return "unset"
	case CellEmpty:
		return "empty"
	case CellGlyph:
		return "glyph"
	default:
		return "unknown"
	}
}

// Cell is the final outcome for one grid position. Symbol and Color are only
// meaningful when Kind is CellGlyph. The zero Cell is unset.
type Cell struct {
	Kind   CellKind
	Symbol string
	Color  Color
}

// Empty returns an empty cell.
func Empty() Cell { return Cell{Kind: CellEmpty} }

// Glyph returns a glyph cell.
func Glyph(symbol string, c Color) Cell {
	return Cell{Kind: CellGlyph, Symbol: symbol, Color: c}
}

// IsGlyph reports whether c holds a symbol.
func (c Cell) IsGlyph() bool { return c.Kind == CellGlyph }
