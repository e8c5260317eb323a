package magick

import (
	"context"
	"sync"
)

// InfoCache provides thread-safe caching of identify metadata to avoid
// re-running the external tool for paths already inspected.
//
// Entries are keyed by the exact path string; different spellings of the same
// file cache separately. Entries persist until Evict or Clear; callers that
// modify a file (mogrify, format change) should evict its entry.
type InfoCache struct {
	mu    sync.RWMutex
	infos map[string]*ImageInfo
}

// NewInfoCache creates an empty cache ready for concurrent use.
func NewInfoCache() *InfoCache {
	return &InfoCache{
		infos: make(map[string]*ImageInfo),
	}
}

// Info returns the metadata for the image at path, running identify only on a
// cache miss.
func (c *InfoCache) Info(ctx context.Context, path string, runner *Runner) (*ImageInfo, error) {
	c.mu.RLock()
	if info, ok := c.infos[path]; ok {
		c.mu.RUnlock()
		return info, nil
	}
	c.mu.RUnlock()

	img, err := OpenImage(path, runner)
	if err != nil {
		return nil, err
	}
	info, err := img.Info(ctx)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.infos[path] = info
	c.mu.Unlock()

	return info, nil
}

// Evict removes the entry for path, if present.
func (c *InfoCache) Evict(path string) {
	c.mu.Lock()
	delete(c.infos, path)
	c.mu.Unlock()
}

// Clear removes all entries.
func (c *InfoCache) Clear() {
	c.mu.Lock()
	c.infos = make(map[string]*ImageInfo)
	c.mu.Unlock()
}
