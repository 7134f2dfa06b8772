package rain

import (
	"math/rand/v2"

	apperr "github.com/matzehuels/glyphfall/pkg/errors"
)

// Source yields the random draws used during generation.
// *math/rand/v2.Rand satisfies it. Implementations need not be safe for
// concurrent use.
type Source interface {
	// Float64 returns a uniform draw in [0, 1).
	Float64() float64
	// IntN returns a uniform draw in [0, n).
	IntN(n int) int
}

// NewSource returns a PCG-backed source seeded with seed.
func NewSource(seed uint64) *rand.Rand {
	return rand.New(rand.NewPCG(seed, seed^0xdeadbeef))
}

// columnStream separates per-column PCG streams from the [NewSource] stream.
const columnStream = 0x9e3779b97f4a7c15

// ColumnSource returns the source [Generate] uses for column col.
// The same (seed, col) pair always yields the same sequence.
func ColumnSource(seed uint64, col int) *rand.Rand {
	return rand.New(rand.NewPCG(seed, columnStream+uint64(col)))
}

// Mark classifies one column position before coloring.
type Mark uint8

const (
	MarkBlank Mark = iota
	MarkGlyph
)

func (m Mark) String() string {
	switch m {
	case MarkBlank:
		return "blank"
	case MarkGlyph:
		return "glyph"
	default:
		return "unknown"
	}
}

// Transition holds the stay probabilities of the two-state marking chain.
// Values are not validated; 0 forces a switch on every step and 1 makes a
// state absorbing.
type Transition struct {
	StayBlank float64 `json:"stay_blank" toml:"stay_blank"`
	StayGlyph float64 `json:"stay_glyph" toml:"stay_glyph"`
}

// Next consumes one draw from src and returns the state following state.
// Staying wins ties: a draw equal to the stay probability keeps the state.
func (t Transition) Next(state Mark, src Source) Mark {
	r := src.Float64()
	if state == MarkBlank {
		if r <= t.StayBlank {
			return MarkBlank
		}
		return MarkGlyph
	}
	if r <= t.StayGlyph {
		return MarkGlyph
	}
	return MarkBlank
}

// Marks runs the chain for length steps starting from [MarkGlyph] and returns
// every state it visits after the start. It consumes exactly length draws.
func Marks(length int, t Transition, src Source) ([]Mark, error) {
	if length <= 0 {
		return nil, apperr.New(apperr.ErrCodeInvalidInput, "column length must be positive, got %d", length)
	}
	marks := make([]Mark, length)
	state := MarkGlyph
	for i := range marks {
		state = t.Next(state, src)
		marks[i] = state
	}
	return marks, nil
}

// FirstBlank returns the lowest index holding [MarkBlank]. When there is no
// blank it returns len(marks)-1, so an all-glyph column is treated as one
// chain ending at the bottom. An empty slice yields -1.
func FirstBlank(marks []Mark) int {
	for i, m := range marks {
		if m == MarkBlank {
			return i
		}
	}
	return len(marks) - 1
}
