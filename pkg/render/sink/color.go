package sink

import (
	"math"

	"github.com/lucasb-eyer/go-colorful"

	"github.com/matzehuels/glyphfall/pkg/rain"
)

// hexColor returns the display color of c as "#rrggbb".
func hexColor(c rain.Color) string {
	return toRGB(c).Hex()
}

func toRGB(c rain.Color) colorful.Color {
	h := math.Mod(float64(c.Hue), 360)
	if h < 0 {
		h += 360
	}
	return colorful.Hsv(h, clamp01(c.Saturation), clamp01(c.Brightness)).Clamped()
}

func clamp01(v float64) float64 {
	return math.Min(1, math.Max(0, v))
}

// label returns the display text for a symbol.
func label(text map[string]string, symbol string) string {
	if s, ok := text[symbol]; ok && s != "" {
		return s
	}
	return symbol
}
