package sink

import (
	"bytes"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/termenv"

	"github.com/matzehuels/glyphfall/pkg/rain"
)

// ANSIOption configures terminal rendering.
type ANSIOption func(*ansiRenderer)

type ansiRenderer struct {
	text    map[string]string
	profile termenv.Profile
}

// WithANSIText sets the display text table used for symbols.
func WithANSIText(text map[string]string) ANSIOption {
	return func(r *ansiRenderer) { r.text = text }
}

// WithColorProfile limits the escape sequences to a terminal profile.
// The default is 24-bit truecolor; termenv.Ascii produces plain text.
func WithColorProfile(p termenv.Profile) ANSIOption {
	return func(r *ansiRenderer) { r.profile = p }
}

// RenderANSI renders the grid as lines of colored terminal text. Every cell
// is padded to the width of the widest label so columns stay aligned.
func RenderANSI(g *rain.Grid, opts ...ANSIOption) []byte {
	r := ansiRenderer{profile: termenv.TrueColor}
	for _, opt := range opts {
		opt(&r)
	}

	lr := lipgloss.NewRenderer(io.Discard)
	lr.SetColorProfile(r.profile)

	width := 1
	for _, row := range g.Cells {
		for _, c := range row {
			if c.IsGlyph() {
				width = max(width, lipgloss.Width(label(r.text, c.Symbol)))
			}
		}
	}
	blank := strings.Repeat(" ", width)

	styles := make(map[string]lipgloss.Style)
	var buf bytes.Buffer
	for _, row := range g.Cells {
		for _, c := range row {
			if !c.IsGlyph() {
				buf.WriteString(blank)
				continue
			}
			hex := hexColor(c.Color)
			st, ok := styles[hex]
			if !ok {
				st = lr.NewStyle().Foreground(lipgloss.Color(hex))
				styles[hex] = st
			}
			text := label(r.text, c.Symbol)
			buf.WriteString(st.Render(text))
			buf.WriteString(strings.Repeat(" ", width-lipgloss.Width(text)))
		}
		buf.WriteByte('\n')
	}
	return buf.Bytes()
}
