package rain

// Color is a hue/saturation/brightness triple.
//
// Hue is conventionally in [0, 360) and saturation and brightness in [0, 1],
// but none of the ranges are enforced: brightness in particular is allowed to
// grow past 1 as a chain gets longer. Renderers clamp at display time.
type Color struct {
	Hue        int     `json:"h"`
	Saturation float64 `json:"s"`
	Brightness float64 `json:"b"`
}

// HSB returns the color with the given hue, saturation and brightness.
func HSB(h int, s, b float64) Color {
	return Color{Hue: h, Saturation: s, Brightness: b}
}

// Brighten returns a copy of c with brightness increased by delta.
func (c Color) Brighten(delta float64) Color {
	c.Brightness += delta
	return c
}

// Transform advances a chain color from one glyph to the next.
type Transform interface {
	Apply(c Color) Color
}

// TransformFunc adapts a plain function to [Transform].
type TransformFunc func(Color) Color

// Apply calls f(c).
func (f TransformFunc) Apply(c Color) Color { return f(c) }

// Brighten is the reference [Transform]: every step adds Delta to the
// brightness.
type Brighten struct {
	Delta float64 `json:"delta"`
}

// Apply returns c brightened by b.Delta.
func (b Brighten) Apply(c Color) Color { return c.Brighten(b.Delta) }
