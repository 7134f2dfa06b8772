// Package cache stores rendered artifacts so repeated renders of the same
// grid can skip generation and conversion.
//
// Three backends implement [Cache]:
//   - [FileCache]: one JSON file per entry under the user cache directory (CLI)
//   - [RedisCache]: shared cache for API deployments
//   - [NullCache]: disables caching
//
// Keys are produced by a [Keyer] so that every entry point computes identical
// keys for identical options. [ScopedKeyer] prefixes keys for isolation.
package cache

import (
	"context"
	"time"
)

// TTLs per entry type.
const (
	// TTLArtifact is how long a rendered artifact stays valid. Generation is
	// deterministic for a given seed, so entries only expire to bound disk use.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
// Implementations must be safe for concurrent use.
type Cache interface {
	// Get returns the data stored under key. A miss is (nil, false, nil).
	Get(ctx context.Context, key string) ([]byte, bool, error)
	// Set stores data under key. A ttl <= 0 means no expiry.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error
	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error
	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// ArtifactKey identifies one rendered format of one grid.
	ArtifactKey(gridHash string, opts ArtifactKeyOpts) string
}

// ArtifactKeyOpts holds the render options that change an artifact's bytes.
type ArtifactKeyOpts struct {
	Format     string  `json:"format"`
	CellSize   float64 `json:"cell_size,omitempty"`
	Scale      float64 `json:"scale,omitempty"`
	TextHash   string  `json:"text_hash,omitempty"`
	Background string  `json:"background,omitempty"`
	Font       string  `json:"font,omitempty"`
}

// DefaultKeyer is the standard [Keyer].
type DefaultKeyer struct{}

// NewDefaultKeyer returns a DefaultKeyer.
func NewDefaultKeyer() Keyer { return DefaultKeyer{} }

// ArtifactKey returns "artifact:<format>:<sha256(gridHash, opts)>".
func (DefaultKeyer) ArtifactKey(gridHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact:"+opts.Format, gridHash, opts)
}
