package texture

import (
	"fmt"
	"image"
	"os"
	"path/filepath"
	"sync"
)

// Resolver resolves a texture path to a decoded NRGBA image.
type Resolver interface {
	Resolve(path string) *image.NRGBA
}

// Cache is a concurrency-safe texture cache keyed by cleaned path.
// Failed loads are cached too, so a missing file is reported once.
type Cache struct {
	mu    sync.RWMutex
	items map[string]*cacheEntry
}

type cacheEntry struct {
	img *image.NRGBA
	err error
}

func NewCache() *Cache {
	return &Cache{items: make(map[string]*cacheEntry)}
}

// Resolve loads and caches a texture. Returns nil if it cannot be decoded.
func (c *Cache) Resolve(path string) *image.NRGBA {
	path = filepath.Clean(path)

	// Fast path: read lock
	c.mu.RLock()
	if entry, exists := c.items[path]; exists {
		c.mu.RUnlock()
		return entry.img
	}
	c.mu.RUnlock()

	// Slow path: load from disk
	img, err := LoadTexture(path)

	// Write lock with double-check
	c.mu.Lock()
	if entry, exists := c.items[path]; exists {
		c.mu.Unlock()
		return entry.img
	}
	c.items[path] = &cacheEntry{img: img, err: err}
	c.mu.Unlock()

	if err != nil {
		fmt.Fprintf(os.Stderr, "  warning: %v\n", err)
	}
	return img
}

// Len returns the number of cached paths, failed loads included.
func (c *Cache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.items)
}
