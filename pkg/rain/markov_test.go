package rain

import (
	"testing"

	apperr "github.com/matzehuels/glyphfall/pkg/errors"
)

func TestTransitionNext(t *testing.T) {
	tr := Transition{StayBlank: 0.5, StayGlyph: 0.95}
	tests := []struct {
		name  string
		state Mark
		draw  float64
		want  Mark
	}{
		{"blank stays below", MarkBlank, 0.1, MarkBlank},
		{"blank stays on tie", MarkBlank, 0.5, MarkBlank},
		{"blank switches above", MarkBlank, 0.6, MarkGlyph},
		{"glyph stays below", MarkGlyph, 0.2, MarkGlyph},
		{"glyph stays on tie", MarkGlyph, 0.95, MarkGlyph},
		{"glyph switches above", MarkGlyph, 0.96, MarkBlank},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			src := &scripted{floats: []float64{tt.draw}}
			if got := tr.Next(tt.state, src); got != tt.want {
				t.Errorf("Next(%s, %v) = %s, want %s", tt.state, tt.draw, got, tt.want)
			}
			if src.nf != 1 {
				t.Errorf("Next consumed %d draws, want 1", src.nf)
			}
		})
	}
}

func TestMarksLength(t *testing.T) {
	src := NewSource(7)
	for length := 1; length <= 64; length++ {
		marks, err := Marks(length, Transition{StayBlank: 0.7, StayGlyph: 0.7}, src)
		if err != nil {
			t.Fatalf("Marks(%d) error: %v", length, err)
		}
		if len(marks) != length {
			t.Errorf("Marks(%d) returned %d marks", length, len(marks))
		}
	}
}

func TestMarksConsumesOneDrawPerPosition(t *testing.T) {
	src := &scripted{floats: []float64{0.1, 0.9, 0.3}}
	if _, err := Marks(10, Transition{StayBlank: 0.5, StayGlyph: 0.5}, src); err != nil {
		t.Fatal(err)
	}
	if src.nf != 10 {
		t.Errorf("consumed %d draws, want 10", src.nf)
	}
}

func TestMarksStartFromGlyph(t *testing.T) {
	tr := Transition{StayBlank: 0.5, StayGlyph: 0.5}

	marks, _ := Marks(1, tr, &scripted{floats: []float64{0.4}})
	if marks[0] != MarkGlyph {
		t.Errorf("low first draw: got %s, want glyph", marks[0])
	}

	marks, _ = Marks(1, tr, &scripted{floats: []float64{0.6}})
	if marks[0] != MarkBlank {
		t.Errorf("high first draw: got %s, want blank", marks[0])
	}
}

func TestMarksDegenerateProbabilities(t *testing.T) {
	// p = 0 forces alternation starting with a switch away from glyph.
	marks, _ := Marks(6, Transition{}, &scripted{floats: []float64{0.5}})
	want := []Mark{MarkBlank, MarkGlyph, MarkBlank, MarkGlyph, MarkBlank, MarkGlyph}
	for i := range want {
		if marks[i] != want[i] {
			t.Fatalf("p=0 marks = %v, want %v", marks, want)
		}
	}

	// p = 1 keeps the initial glyph state forever.
	marks, _ = Marks(6, Transition{StayBlank: 1, StayGlyph: 1}, &scripted{floats: []float64{0.999}})
	for i, m := range marks {
		if m != MarkGlyph {
			t.Fatalf("p=1 mark %d = %s, want glyph", i, m)
		}
	}
}

func TestMarksInvalidLength(t *testing.T) {
	for _, length := range []int{0, -1, -50} {
		_, err := Marks(length, Transition{}, NewSource(1))
		if !apperr.Is(err, apperr.ErrCodeInvalidInput) {
			t.Errorf("Marks(%d) error = %v, want INVALID_INPUT", length, err)
		}
	}
}

func TestFirstBlank(t *testing.T) {
	G, B := MarkGlyph, MarkBlank
	tests := []struct {
		name  string
		marks []Mark
		want  int
	}{
		{"blank first", []Mark{B, G, G}, 0},
		{"blank middle", []Mark{G, B, G, G, B}, 1},
		{"blank last", []Mark{G, G, G, B}, 3},
		{"all glyph", []Mark{G, G, G, G}, 3},
		{"single glyph", []Mark{G}, 0},
		{"single blank", []Mark{B}, 0},
		{"empty", nil, -1},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := FirstBlank(tt.marks); got != tt.want {
				t.Errorf("FirstBlank(%v) = %d, want %d", tt.marks, got, tt.want)
			}
		})
	}
}

func TestMarkString(t *testing.T) {
	if MarkBlank.String() != "blank" || MarkGlyph.String() != "glyph" || Mark(9).String() != "unknown" {
		t.Error("unexpected Mark.String values")
	}
}
