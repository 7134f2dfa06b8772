package rain

// Stats summarizes a grid.
type Stats struct {
	Cells        int `json:"cells"`
	Glyphs       int `json:"glyphs"`
	Chains       int `json:"chains"`
	LongestChain int `json:"longest_chain"`
}

// Stats counts glyphs and chains. A chain is a maximal vertical run of glyph
// cells within one column.
func (g *Grid) Stats() Stats {
	s := Stats{Cells: g.Rows * g.Cols}
	for j := 0; j < g.Cols; j++ {
		run := 0
		for i := 0; i < g.Rows; i++ {
			if !g.Cells[i][j].IsGlyph() {
				run = 0
				continue
			}
			s.Glyphs++
			if run == 0 {
				s.Chains++
			}
			run++
			s.LongestChain = max(s.LongestChain, run)
		}
	}
	return s
}
