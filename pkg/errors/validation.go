package errors

import (
	"unicode"
	"unicode/utf8"
)

// Limits applied to untrusted input (HTTP requests, config files).
const (
	MaxGridRows   = 500
	MaxGridCols   = 500
	MaxSymbolLen  = 64
	MaxSymbolPool = 1024
)

// ValidateGridSize checks that a requested grid is non-empty and within
// [MaxGridRows] x [MaxGridCols].
func ValidateGridSize(rows, cols int) error {
	if rows <= 0 || cols <= 0 {
		return New(ErrCodeInvalidInput, "grid size must be positive, got %dx%d", rows, cols)
	}
	if rows > MaxGridRows || cols > MaxGridCols {
		return New(ErrCodeInvalidInput, "grid too large: %dx%d (max %dx%d)", rows, cols, MaxGridRows, MaxGridCols)
	}
	return nil
}

// ValidateSymbol validates a single symbol of the glyph pool.
//
// The validation rules are intentionally conservative:
//   - No empty symbols
//   - Valid UTF-8 only
//   - No control characters (they would corrupt every output format)
//   - Maximum length of MaxSymbolLen bytes
func ValidateSymbol(s string) error {
	if s == "" {
		return New(ErrCodeInvalidInput, "symbol cannot be empty")
	}
	if len(s) > MaxSymbolLen {
		return New(ErrCodeInvalidInput, "symbol too long (max %d bytes): %q", MaxSymbolLen, s)
	}
	if !utf8.ValidString(s) {
		return New(ErrCodeInvalidInput, "symbol is not valid UTF-8: %q", s)
	}
	for _, r := range s {
		if unicode.IsControl(r) {
			return New(ErrCodeInvalidInput, "symbol contains control characters: %q", s)
		}
	}
	return nil
}

// ValidateSymbols validates a whole symbol pool.
func ValidateSymbols(pool []string) error {
	if len(pool) == 0 {
		return New(ErrCodeInvalidInput, "symbol pool must not be empty")
	}
	if len(pool) > MaxSymbolPool {
		return New(ErrCodeInvalidInput, "symbol pool too large (max %d entries)", MaxSymbolPool)
	}
	for _, s := range pool {
		if err := ValidateSymbol(s); err != nil {
			return err
		}
	}
	return nil
}
