// Package cache stores computed layouts and rendered artifacts.
//
// Three backends implement [Cache]: [FileCache] for the CLI, [RedisCache]
// and [MongoCache] for the HTTP server. [NullCache] disables caching.
// Keys are built by a [Keyer] so that backends never see raw documents.
package cache

import (
	"context"
	"time"
)

// Cache TTLs.
const (
	// TTLLayout is how long a computed layout stays cached.
	TTLLayout = 7 * 24 * time.Hour

	// TTLArtifact is how long a rendered artifact stays cached.
	TTLArtifact = 7 * 24 * time.Hour
)

// Cache is a byte-oriented key/value store with expiry.
type Cache interface {
	// Get returns the value for key and whether it was found.
	// Expired entries are reported as misses.
	Get(ctx context.Context, key string) ([]byte, bool, error)

	// Set stores data under key. A zero ttl never expires.
	Set(ctx context.Context, key string, data []byte, ttl time.Duration) error

	// Delete removes key. Deleting a missing key is not an error.
	Delete(ctx context.Context, key string) error

	// Close releases backend resources.
	Close() error
}

// Keyer builds cache keys.
type Keyer interface {
	// LayoutKey returns the key for the layout of a document.
	LayoutKey(docHash string, opts LayoutKeyOpts) string

	// ArtifactKey returns the key for a rendered layout result.
	ArtifactKey(resultHash string, opts ArtifactKeyOpts) string
}

// LayoutKeyOpts holds the inputs besides the document that change a layout.
type LayoutKeyOpts struct {
	Width  int `json:"width"`
	Height int `json:"height"`
}

// ArtifactKeyOpts holds the inputs besides the layout that change an artifact.
type ArtifactKeyOpts struct {
	Format string `json:"format"`
	Style  string `json:"style,omitempty"`
	Scale  int    `json:"scale,omitempty"`
	Labels bool   `json:"labels,omitempty"`
	Grid   bool   `json:"grid,omitempty"`
}

// DefaultKeyer builds unscoped keys.
type DefaultKeyer struct{}

// NewDefaultKeyer creates the default keyer.
func NewDefaultKeyer() Keyer {
	return DefaultKeyer{}
}

// LayoutKey generates a key for layout caching.
func (DefaultKeyer) LayoutKey(docHash string, opts LayoutKeyOpts) string {
	return hashKey("layout", docHash, opts)
}

// ArtifactKey generates a key for artifact caching.
func (DefaultKeyer) ArtifactKey(resultHash string, opts ArtifactKeyOpts) string {
	return hashKey("artifact", resultHash, opts)
}

var _ Keyer = DefaultKeyer{}
