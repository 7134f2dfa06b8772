package rain

import (
	"context"
	"reflect"
	"testing"

	apperr "github.com/matzehuels/glyphfall/pkg/errors"
)

func TestTransposeTwice(t *testing.T) {
	m := [][]int{{1, 2, 3}, {4, 5, 6}}
	tr := Transpose(m)
	if want := [][]int{{1, 4}, {2, 5}, {3, 6}}; !reflect.DeepEqual(tr, want) {
		t.Fatalf("Transpose = %v, want %v", tr, want)
	}
	if back := Transpose(tr); !reflect.DeepEqual(back, m) {
		t.Errorf("Transpose twice = %v, want %v", back, m)
	}
	if Transpose[int](nil) != nil {
		t.Error("Transpose(nil) should be nil")
	}
}

func TestGenerateWithShapeAndOrder(t *testing.T) {
	const rows, cols = 12, 7
	g, err := GenerateWith(rows, cols, testConfig(), NewSource(5))
	if err != nil {
		t.Fatal(err)
	}
	if g.Rows != rows || g.Cols != cols || len(g.Cells) != rows {
		t.Fatalf("grid shape = %dx%d (%d rows stored)", g.Rows, g.Cols, len(g.Cells))
	}
	for i, row := range g.Cells {
		if len(row) != cols {
			t.Fatalf("row %d has %d cells, want %d", i, len(row), cols)
		}
	}

	// Regenerate the columns in order from an identical source.
	src := NewSource(5)
	for j := 0; j < cols; j++ {
		want, _ := GenerateColumn(rows, testConfig(), src)
		if got := g.Column(j); !reflect.DeepEqual(got, want) {
			t.Errorf("column %d does not match sequential generation", j)
		}
	}

	if !reflect.DeepEqual(Transpose(g.Columns()), g.Cells) {
		t.Error("Columns() transposed back should equal Cells")
	}
}

func TestGenerateSingleCell(t *testing.T) {
	for seed := uint64(0); seed < 64; seed++ {
		g, err := GenerateWith(1, 1, testConfig(), NewSource(seed))
		if err != nil {
			t.Fatal(err)
		}
		c := g.At(0, 0)
		switch c.Kind {
		case CellEmpty:
		case CellGlyph:
			if c.Color != testBase {
				t.Errorf("seed %d: glyph color = %+v, want base", seed, c.Color)
			}
		default:
			t.Errorf("seed %d: cell kind = %s", seed, c.Kind)
		}
	}
}

func TestGenerateIndependentOfWorkers(t *testing.T) {
	ctx := context.Background()
	base, err := Generate(ctx, 30, 20, testConfig(), 99, 1)
	if err != nil {
		t.Fatal(err)
	}
	for _, workers := range []int{0, 2, 8, 64} {
		g, err := Generate(ctx, 30, 20, testConfig(), 99, workers)
		if err != nil {
			t.Fatal(err)
		}
		if !reflect.DeepEqual(g, base) {
			t.Errorf("workers=%d produced a different grid", workers)
		}
	}

	other, _ := Generate(ctx, 30, 20, testConfig(), 100, 1)
	if reflect.DeepEqual(other, base) {
		t.Error("different seeds should produce different grids")
	}
}

func TestGenerateCancelled(t *testing.T) {
	ctx, cancel := context.WithCancel(context.Background())
	cancel()
	if _, err := Generate(ctx, 10, 10, testConfig(), 1, 2); err == nil {
		t.Error("Generate with cancelled context should fail")
	}
}

func TestGenerateInvalidInput(t *testing.T) {
	ctx := context.Background()
	sizes := [][2]int{{0, 5}, {5, 0}, {-1, 3}}
	for _, s := range sizes {
		if _, err := Generate(ctx, s[0], s[1], testConfig(), 1, 0); !apperr.Is(err, apperr.ErrCodeInvalidInput) {
			t.Errorf("Generate(%dx%d) error = %v, want INVALID_INPUT", s[0], s[1], err)
		}
		if _, err := GenerateWith(s[0], s[1], testConfig(), NewSource(1)); !apperr.Is(err, apperr.ErrCodeInvalidInput) {
			t.Errorf("GenerateWith(%dx%d) error = %v, want INVALID_INPUT", s[0], s[1], err)
		}
	}

	cfg := testConfig()
	cfg.Symbols = nil
	if _, err := Generate(ctx, 3, 3, cfg, 1, 0); !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("empty pool error = %v, want INVALID_INPUT", err)
	}
}

func TestFromColumnsRagged(t *testing.T) {
	_, err := FromColumns([][]Cell{{Empty(), Empty()}, {Empty()}})
	if !apperr.Is(err, apperr.ErrCodeInvalidInput) {
		t.Errorf("ragged columns error = %v, want INVALID_INPUT", err)
	}
}

func TestStats(t *testing.T) {
	g := Glyph("x", testBase)
	e := Empty()
	u := Cell{}
	grid, err := FromColumns([][]Cell{
		{g, g, e, g},
		{u, u, u, u},
		{g, g, g, e},
	})
	if err != nil {
		t.Fatal(err)
	}

	got := grid.Stats()
	want := Stats{Cells: 12, Glyphs: 6, Chains: 3, LongestChain: 3}
	if got != want {
		t.Errorf("Stats() = %+v, want %+v", got, want)
	}
}
