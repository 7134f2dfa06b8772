package rain

import "math"

// scripted replays fixed draws. Float64 cycles through floats; IntN cycles
// through ints (reduced mod n), returning 0 when none are given.
type scripted struct {
	floats []float64
	ints   []int
	fi, ii int
	nf     int
}

func (s *scripted) Float64() float64 {
	v := s.floats[s.fi%len(s.floats)]
	s.fi++
	s.nf++
	return v
}

func (s *scripted) IntN(n int) int {
	if len(s.ints) == 0 {
		return 0
	}
	v := s.ints[s.ii%len(s.ints)] % n
	s.ii++
	return v
}

func approx(a, b float64) bool { return math.Abs(a-b) < 1e-9 }

var testBase = HSB(201, 1, 0.2)

func testConfig() Config {
	return Config{
		Transition: Transition{StayBlank: 0.95, StayGlyph: 0.95},
		Symbols:    []string{`\forall`, `\exists`, `\in`, `f`, `g`},
		Base:       testBase,
		Transform:  Brighten{Delta: 0.05},
	}
}
