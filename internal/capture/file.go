package capture

import (
	"fmt"
	"image"
	_ "image/gif"  // Register GIF format decoder
	_ "image/jpeg" // Register JPEG format decoder
	_ "image/png"  // Register PNG format decoder
	"os"
	"sync"

	"github.com/anthonynsimon/bild/clone"

	"github.com/ironsheep/color-inspect-mcp/internal/sampler"
)

// FileCache caches decoded image files so repeated sampling sessions against
// the same file skip the disk read and decode.
//
// Decoded images are normalized to *image.RGBA once, at load time, which is
// what lets frames serve pixel reads without per-pixel color conversion.
// FileCache is safe for concurrent use; cached frames stay in memory until
// Evict or Clear.
type FileCache struct {
	mu     sync.RWMutex
	frames map[string]*image.RGBA
}

// NewFileCache creates an empty cache.
func NewFileCache() *FileCache {
	return &FileCache{
		frames: make(map[string]*image.RGBA),
	}
}

// Load returns the RGBA frame for a PNG, JPEG or GIF file, decoding and
// caching it on first use. The cache key is the exact path string.
func (c *FileCache) Load(path string) (*image.RGBA, error) {
	c.mu.RLock()
	if img, ok := c.frames[path]; ok {
		c.mu.RUnlock()
		return img, nil
	}
	c.mu.RUnlock()

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}
	defer f.Close()

	decoded, _, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	img := clone.AsRGBA(decoded)

	c.mu.Lock()
	c.frames[path] = img
	c.mu.Unlock()

	return img, nil
}

// Evict removes one path from the cache. Unknown paths are ignored.
func (c *FileCache) Evict(path string) {
	c.mu.Lock()
	delete(c.frames, path)
	c.mu.Unlock()
}

// Clear empties the cache.
func (c *FileCache) Clear() {
	c.mu.Lock()
	c.frames = make(map[string]*image.RGBA)
	c.mu.Unlock()
}

// Source returns a capture provider that loads the given file through the
// cache when its session begins.
func (c *FileCache) Source(path string) *FileSource {
	return &FileSource{cache: c, path: path}
}

// FileSource is a capture provider backed by one image file.
type FileSource struct {
	cache *FileCache
	path  string
}

// Capture loads the file and returns it as a frame.
func (s *FileSource) Capture() (sampler.Frame, error) {
	img, err := s.cache.Load(s.path)
	if err != nil {
		return nil, err
	}
	return sampler.NewImageFrame(img), nil
}
