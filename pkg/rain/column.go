package rain

import (
	apperr "github.com/matzehuels/glyphfall/pkg/errors"
)

// ScanMode selects which positions the coloring pass visits.
type ScanMode string

const (
	// ScanHead walks from the first blank back to index 0. Positions after
	// the first blank stay unset.
	ScanHead ScanMode = "head"

	// ScanWrap keeps walking past index 0, wrapping to the end of the
	// column, until every position has been visited once.
	ScanWrap ScanMode = "wrap"
)

// ValidScanModes is the set of supported scan modes.
var ValidScanModes = map[ScanMode]bool{
	ScanHead: true,
	ScanWrap: true,
}

// ParseScanMode converts s to a ScanMode. The empty string means ScanHead.
func ParseScanMode(s string) (ScanMode, error) {
	if s == "" {
		return ScanHead, nil
	}
	m := ScanMode(s)
	if !ValidScanModes[m] {
		return "", apperr.New(apperr.ErrCodeInvalidScan, "invalid scan mode: %q (must be one of: head, wrap)", s)
	}
	return m, nil
}

// Config holds everything needed to generate a column besides its length
// and random source.
type Config struct {
	Transition Transition
	Symbols    []string
	Base       Color
	Transform  Transform
	Scan       ScanMode
}

// Validate reports configuration that would make generation fail.
// Probabilities and color ranges are deliberately not checked.
func (c Config) Validate() error {
	if len(c.Symbols) == 0 {
		return apperr.New(apperr.ErrCodeInvalidInput, "symbol pool must not be empty")
	}
	if c.Transform == nil {
		return apperr.New(apperr.ErrCodeInvalidInput, "color transform is required")
	}
	if c.Scan != "" && !ValidScanModes[c.Scan] {
		return apperr.New(apperr.ErrCodeInvalidScan, "invalid scan mode: %q", c.Scan)
	}
	return nil
}

// Colorize turns a mark sequence into cells.
//
// The walk starts at [FirstBlank] and moves toward index 0. A blank mark
// resets the running color to cfg.Base and yields an empty cell. A glyph mark
// yields a cell with a symbol drawn uniformly from cfg.Symbols and the running
// color, then advances the running color with cfg.Transform. The head of
// every chain (the glyph next to the blank, or the last index of an all-glyph
// column) therefore carries cfg.Base and brightness grows toward index 0.
//
// With [ScanHead] the walk stops at index 0 and every position after the
// first blank is left as [CellUnset], whatever its mark. With [ScanWrap] the
// walk wraps to the end of the column and covers all positions.
func Colorize(marks []Mark, cfg Config, src Source) ([]Cell, error) {
	if len(marks) == 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "column length must be positive, got 0")
	}
	if err := cfg.Validate(); err != nil {
		return nil, err
	}

	n := len(marks)
	cells := make([]Cell, n)
	start := FirstBlank(marks)
	steps := start + 1
	if cfg.Scan == ScanWrap {
		steps = n
	}

	running := cfg.Base
	for i := 0; i < steps; i++ {
		pos := ((start-i)%n + n) % n
		if marks[pos] == MarkBlank {
			running = cfg.Base
			cells[pos] = Empty()
			continue
		}
		symbol := cfg.Symbols[src.IntN(len(cfg.Symbols))]
		cells[pos] = Glyph(symbol, running)
		running = cfg.Transform.Apply(running)
	}
	return cells, nil
}

// GenerateColumn marks and colors one column of the given length.
// Marking draws come from src before any symbol draws.
func GenerateColumn(length int, cfg Config, src Source) ([]Cell, error) {
	if err := cfg.Validate(); err != nil {
		return nil, err
	}
	marks, err := Marks(length, cfg.Transition, src)
	if err != nil {
		return nil, err
	}
	return Colorize(marks, cfg, src)
}
