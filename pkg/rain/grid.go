package rain

import (
	"context"
	"fmt"

	"golang.org/x/sync/errgroup"

	apperr "github.com/matzehuels/glyphfall/pkg/errors"
)

// Grid is a generated frame stored row-major: Cells[i][j] is position i of
// column j.
type Grid struct {
	Rows  int
	Cols  int
	Cells [][]Cell
}

// At returns the cell at row i, column j.
func (g *Grid) At(i, j int) Cell { return g.Cells[i][j] }

// Column returns a copy of column j, top to bottom.
func (g *Grid) Column(j int) []Cell {
	col := make([]Cell, g.Rows)
	for i := range col {
		col[i] = g.Cells[i][j]
	}
	return col
}

// Columns returns the grid in column-major order.
func (g *Grid) Columns() [][]Cell { return Transpose(g.Cells) }

// Transpose swaps rows and columns of a rectangular matrix. The width is
// taken from the first row. Transpose(Transpose(m)) equals m for any
// non-empty rectangular m.
func Transpose[T any](m [][]T) [][]T {
	if len(m) == 0 {
		return nil
	}
	out := make([][]T, len(m[0]))
	for j := range out {
		out[j] = make([]T, len(m))
		for i := range m {
			out[j][i] = m[i][j]
		}
	}
	return out
}

// FromColumns assembles a grid from column-major data. All columns must have
// the same, positive length.
func FromColumns(columns [][]Cell) (*Grid, error) {
	if len(columns) == 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "grid needs at least one column")
	}
	rows := len(columns[0])
	if rows == 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "grid needs at least one row")
	}
	for j, col := range columns {
		if len(col) != rows {
			return nil, apperr.New(apperr.ErrCodeInvalidInput, "column %d has %d cells, want %d", j, len(col), rows)
		}
	}
	return &Grid{Rows: rows, Cols: len(columns), Cells: Transpose(columns)}, nil
}

func validateSize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "grid size must be positive, got %dx%d", rows, cols)
	}
	return nil
}

// GenerateWith builds a rows×cols grid drawing every column, in order, from
// the single source src.
func GenerateWith(rows, cols int, cfg Config, src Source) (*Grid, error) {
	if err := validateSize(rows, cols); err != nil {
		return nil, err
	}
	columns := make([][]Cell, cols)
	for j := range columns {
		col, err := GenerateColumn(rows, cfg, src)
		if err != nil {
			return nil, fmt.Errorf("column %d: %w", j, err)
		}
		columns[j] = col
	}
	return FromColumns(columns)
}

// Generate builds a rows×cols grid with one [ColumnSource] per column.
// Columns are generated concurrently by at most workers goroutines
// (unbounded when workers <= 0). The result depends only on seed and cfg.
func Generate(ctx context.Context, rows, cols int, cfg Config, seed uint64, workers int) (*Grid, error) {
	if err := validateSize(rows, cols); err != nil {
		return nil, err
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	g, ctx := errgroup.WithContext(ctx)
	if workers > 0 {
		g.SetLimit(workers)
	}

	columns := make([][]Cell, cols)
	for j := range columns {
		g.Go(func() error {
			if err := ctx.Err(); err != nil {
				return err
			}
			col, err := GenerateColumn(rows, cfg, ColumnSource(seed, j))
			if err != nil {
				return fmt.Errorf("column %d: %w", j, err)
			}
			columns[j] = col
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}
	return FromColumns(columns)
}
