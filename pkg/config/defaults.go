package config

import "maps"

// Default generation parameters.
const (
	DefaultRows       = 50
	DefaultCols       = 38
	DefaultStayBlank  = 0.95
	DefaultStayGlyph  = 0.95
	DefaultHue        = 201
	DefaultSaturation = 1.0
	DefaultBrightness = 0.2
	DefaultDelta      = 0.05
	DefaultScan       = "head"
)

// defaultPool is the symbol pool used when no config file overrides it.
// Entries are LaTeX math-mode fragments.
var defaultPool = []string{
	`\forall`, `\exists`, `\in`, `\wedge`, `\vee`, `f`, `g`, `\sigma`, `\phi`,
	`\varepsilon`, `\delta`, `\nexists`, `\circ`, `\mathbb{R}`, `\mathbb{N}`,
	`\mathbb{Z}`, `\mathbb{Q}`, `\mathbb{C}`, `K`, `\mathcal{L}`, `G`, `E_n`, `e`,
	`\simeq`, `\sim`, `\trianglelefteq`, `\sum`, `a_n`, `\times`, `\mathcal{P}`,
	`\emptyset`, `\mathcal{N}`, `\prod`, `\cap`, `\cup`, `\mathfrak{G}`,
	`\subseteq`, `\notin`, `q`, `=`, `\nu`, `\Omega`, `\partial`, `\int`,
	`\mathfrak{S}`, `\mathfrak{P}`, `\infty`,
}

// defaultText maps LaTeX fragments to the Unicode shown by non-LaTeX sinks.
// Fragments without an entry are displayed verbatim.
var defaultText = map[string]string{
	`\forall`:         "∀",
	`\exists`:         "∃",
	`\in`:             "∈",
	`\wedge`:          "∧",
	`\vee`:            "∨",
	`\sigma`:          "σ",
	`\phi`:            "ϕ",
	`\varepsilon`:     "ε",
	`\delta`:          "δ",
	`\nexists`:        "∄",
	`\circ`:           "∘",
	`\mathbb{R}`:      "ℝ",
	`\mathbb{N}`:      "ℕ",
	`\mathbb{Z}`:      "ℤ",
	`\mathbb{Q}`:      "ℚ",
	`\mathbb{C}`:      "ℂ",
	`\mathcal{L}`:     "ℒ",
	`E_n`:             "Eₙ",
	`\simeq`:          "≃",
	`\sim`:            "∼",
	`\trianglelefteq`: "⊴",
	`\sum`:            "∑",
	`a_n`:             "aₙ",
	`\times`:          "×",
	`\mathcal{P}`:     "𝒫",
	`\emptyset`:       "∅",
	`\mathcal{N}`:     "𝒩",
	`\prod`:           "∏",
	`\cap`:            "∩",
	`\cup`:            "∪",
	`\mathfrak{G}`:    "𝔊",
	`\subseteq`:       "⊆",
	`\notin`:          "∉",
	`\nu`:             "ν",
	`\Omega`:          "Ω",
	`\partial`:        "∂",
	`\int`:            "∫",
	`\mathfrak{S}`:    "𝔖",
	`\mathfrak{P}`:    "𝔓",
	`\infty`:          "∞",
}

// DefaultPool returns a copy of the built-in symbol pool.
func DefaultPool() []string {
	return append([]string(nil), defaultPool...)
}

// DefaultText returns a copy of the built-in display-text table.
func DefaultText() map[string]string {
	return maps.Clone(defaultText)
}

// Default returns the built-in configuration.
func Default() Config {
	return Config{
		Grid: GridConfig{
			Rows: DefaultRows,
			Cols: DefaultCols,
		},
		Markov: MarkovConfig{
			StayBlank: DefaultStayBlank,
			StayGlyph: DefaultStayGlyph,
		},
		Color: ColorConfig{
			Hue:        DefaultHue,
			Saturation: DefaultSaturation,
			Brightness: DefaultBrightness,
			Delta:      DefaultDelta,
			Scan:       DefaultScan,
		},
		Symbols: SymbolsConfig{
			Pool: DefaultPool(),
			Text: DefaultText(),
		},
	}
}
