// Package config loads glyphfall settings from TOML files.
//
// A config file only needs to name the values it changes; everything else
// keeps the built-in defaults from [Default]:
//
//	[grid]
//	rows = 24
//	cols = 80
//
//	[markov]
//	stay_blank = 0.9
//	stay_glyph = 0.97
//
//	[color]
//	hue = 120
//	delta = 0.04
//	scan = "wrap"
//
//	[symbols]
//	pool = ["0", "1"]
//
//	[symbols.text]
//	"\\forall" = "∀"
//
// Unknown keys are rejected so that typos surface as errors.
package config

import (
	"bytes"
	"io"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/BurntSushi/toml"

	apperr "github.com/matzehuels/glyphfall/pkg/errors"
	"github.com/matzehuels/glyphfall/pkg/rain"
)

const (
	appName  = "glyphfall"
	fileName = "config.toml"
)

// Config is the complete user-facing configuration.
type Config struct {
	Grid    GridConfig    `toml:"grid"`
	Markov  MarkovConfig  `toml:"markov"`
	Color   ColorConfig   `toml:"color"`
	Symbols SymbolsConfig `toml:"symbols"`
}

// GridConfig sets the frame size and randomness.
type GridConfig struct {
	Rows    int    `toml:"rows"`
	Cols    int    `toml:"cols"`
	Seed    uint64 `toml:"seed,omitempty"`    // 0 picks a fresh seed per run
	Workers int    `toml:"workers,omitempty"` // 0 means one goroutine per column
}

// MarkovConfig holds the stay probabilities of the marking chain.
type MarkovConfig struct {
	StayBlank float64 `toml:"stay_blank"`
	StayGlyph float64 `toml:"stay_glyph"`
}

// ColorConfig sets the chain head color and how it changes along a chain.
type ColorConfig struct {
	Hue        int     `toml:"hue"`
	Saturation float64 `toml:"saturation"`
	Brightness float64 `toml:"brightness"`
	Delta      float64 `toml:"delta"`
	Scan       string  `toml:"scan"`
}

// SymbolsConfig holds the glyph pool and its display text.
type SymbolsConfig struct {
	Pool []string          `toml:"pool"`
	Text map[string]string `toml:"text,omitempty"`
}

// Parse decodes TOML data on top of the defaults.
func Parse(data []byte) (Config, error) {
	cfg := Default()
	cfg.Symbols.Text = nil

	md, err := toml.Decode(string(data), &cfg)
	if err != nil {
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "parse config")
	}
	if undecoded := md.Undecoded(); len(undecoded) > 0 {
		keys := make([]string, len(undecoded))
		for i, k := range undecoded {
			keys[i] = k.String()
		}
		sort.Strings(keys)
		return Config{}, apperr.New(apperr.ErrCodeInvalidConfig, "unknown config keys: %s", strings.Join(keys, ", "))
	}

	text := DefaultText()
	for k, v := range cfg.Symbols.Text {
		text[k] = v
	}
	cfg.Symbols.Text = text

	if err := cfg.Validate(); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Load reads and parses the config file at path.
func Load(path string) (Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		if os.IsNotExist(err) {
			return Config{}, apperr.Wrap(apperr.ErrCodeNotFound, err, "config file %s", path)
		}
		return Config{}, apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "read config %s", path)
	}
	cfg, err := Parse(data)
	if err != nil {
		return Config{}, apperr.Wrap(apperr.GetCode(err), err, "config %s", path)
	}
	return cfg, nil
}

// LoadDefault loads the config from [DefaultPath] when that file exists and
// returns the built-in defaults otherwise. The returned path is empty when no
// file was read.
func LoadDefault() (Config, string, error) {
	path, err := DefaultPath()
	if err != nil {
		return Default(), "", nil
	}
	if _, err := os.Stat(path); err != nil {
		return Default(), "", nil
	}
	cfg, err := Load(path)
	if err != nil {
		return Config{}, "", err
	}
	return cfg, path, nil
}

// DefaultPath returns the config path using the XDG standard
// (~/.config/glyphfall/config.toml).
func DefaultPath() (string, error) {
	if configHome := os.Getenv("XDG_CONFIG_HOME"); configHome != "" {
		return filepath.Join(configHome, appName, fileName), nil
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "", err
	}
	return filepath.Join(home, ".config", appName, fileName), nil
}

// Validate checks the values generation cannot work without. Probabilities
// and color ranges are left unchecked on purpose.
func (c Config) Validate() error {
	if c.Grid.Rows <= 0 || c.Grid.Cols <= 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "grid size must be positive, got %dx%d", c.Grid.Rows, c.Grid.Cols)
	}
	if c.Grid.Workers < 0 {
		return apperr.New(apperr.ErrCodeInvalidConfig, "workers must not be negative")
	}
	if err := apperr.ValidateSymbols(c.Symbols.Pool); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "symbols.pool")
	}
	if _, err := rain.ParseScanMode(c.Color.Scan); err != nil {
		return apperr.Wrap(apperr.ErrCodeInvalidConfig, err, "color.scan")
	}
	return nil
}

// Encode writes c as TOML.
func (c Config) Encode(w io.Writer) error {
	return toml.NewEncoder(w).Encode(c)
}

// Marshal returns c as TOML.
func (c Config) Marshal() ([]byte, error) {
	var buf bytes.Buffer
	if err := c.Encode(&buf); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}

// WriteDefault writes the built-in config to path, creating parent
// directories. It refuses to overwrite an existing file unless force is set.
func WriteDefault(path string, force bool) error {
	if !force {
		if _, err := os.Stat(path); err == nil {
			return apperr.New(apperr.ErrCodeInvalidInput, "%s already exists (use --force to overwrite)", path)
		}
	}
	data, err := Default().Marshal()
	if err != nil {
		return err
	}
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
