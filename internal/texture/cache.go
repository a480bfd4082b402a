package texture

import (
	"fmt"
	"sync/atomic"

	lru "github.com/hashicorp/golang-lru/v2"
)

// Cache is an explicitly constructed, bounded texture cache keyed by source
// name. Callers pass it by reference to whoever needs decoded textures;
// there is no process-wide instance. Safe for concurrent use.
type Cache struct {
	images  *lru.Cache[string, *Image]
	surface atomic.Uint32
}

// NewCache returns a cache holding at most capacity decoded images.
func NewCache(capacity int) (*Cache, error) {
	images, err := lru.New[string, *Image](capacity)
	if err != nil {
		return nil, fmt.Errorf("texture cache: %w", err)
	}
	return &Cache{images: images}, nil
}

// Load returns the cached image for name, decoding data on a miss. A fresh
// decode is assigned a surface handle before it enters the cache.
func (c *Cache) Load(name string, data []byte) (*Image, error) {
	if img, ok := c.images.Get(name); ok {
		return img, nil
	}
	img, err := Decode(data, name)
	if err != nil {
		return nil, err
	}
	img.Surface = Surface(c.surface.Add(1))
	c.images.Add(name, img)
	return img, nil
}

// Get returns the cached image for name without decoding.
func (c *Cache) Get(name string) (*Image, bool) {
	return c.images.Get(name)
}

// Len returns the number of cached images.
func (c *Cache) Len() int {
	return c.images.Len()
}
