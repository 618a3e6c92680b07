package imaging

import (
	"bytes"
	"fmt"
	"image"
	"os"
	"sync"

	"github.com/disintegration/imaging"
)

// AllowedFormats lists the encodings accepted for source photos, keyed by
// the format name reported by image.DecodeConfig.
var AllowedFormats = map[string]string{
	"jpeg": "image/jpeg",
	"png":  "image/png",
}

// Source is a decoded photo together with the facts needed to re-encode
// results and report metadata.
type Source struct {
	// Image is the decoded photo, already rotated upright according to its
	// EXIF orientation tag.
	Image image.Image

	// Format is "jpeg" or "png", detected from the file contents.
	Format string

	// FileSizeBytes is the size of the encoded input.
	FileSizeBytes int64
}

// ImageCache provides thread-safe caching of decoded photos so that repeated
// clicks on the same photo skip decoding.
//
// Only source pixels are cached; masks and recolored results are never
// kept. Callers must treat Source.Image as read-only.
//
// ImageCache is safe for concurrent use by multiple goroutines.
//
// # Example Usage
//
//	cache := imaging.NewImageCache()
//	src, err := cache.Load("/path/to/room.jpg")
//	if err != nil {
//	    log.Fatal(err)
//	}
//	cache.Evict("/path/to/room.jpg") // Optional: free memory
type ImageCache struct {
	mu     sync.RWMutex
	images map[string]*Source
}

// NewImageCache creates and initializes a new empty image cache.
func NewImageCache() *ImageCache {
	return &ImageCache{
		images: make(map[string]*Source),
	}
}

// Load retrieves a photo from the cache or decodes it from disk.
//
// The photo is cached using the exact path string provided. Different paths
// to the same file result in separate cache entries.
//
// # Errors
//
//   - Returns error if the file does not exist or cannot be read
//   - Returns error if the file is not a JPEG or PNG image
func (c *ImageCache) Load(path string) (*Source, error) {
	c.mu.RLock()
	if src, ok := c.images[path]; ok {
		c.mu.RUnlock()
		return src, nil
	}
	c.mu.RUnlock()

	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to open image: %w", err)
	}

	src, err := DecodeBytes(data)
	if err != nil {
		return nil, err
	}

	c.mu.Lock()
	c.images[path] = src
	c.mu.Unlock()

	return src, nil
}

// Clear removes all photos from the cache.
func (c *ImageCache) Clear() {
	c.mu.Lock()
	c.images = make(map[string]*Source)
	c.mu.Unlock()
}

// Evict removes a specific photo from the cache by its path. Unknown paths
// are ignored.
func (c *ImageCache) Evict(path string) {
	c.mu.Lock()
	delete(c.images, path)
	c.mu.Unlock()
}

// Len reports the number of cached photos.
func (c *ImageCache) Len() int {
	c.mu.RLock()
	defer c.mu.RUnlock()
	return len(c.images)
}

// DecodeBytes decodes an in-memory JPEG or PNG photo.
//
// The format is sniffed from the content, not a file name, and anything
// outside AllowedFormats is rejected before full decoding. JPEG photos are
// rotated upright according to their EXIF orientation so click coordinates
// match what the user sees.
func DecodeBytes(data []byte) (*Source, error) {
	_, format, err := image.DecodeConfig(bytes.NewReader(data))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}
	if _, ok := AllowedFormats[format]; !ok {
		return nil, fmt.Errorf("unsupported image format %q: only JPEG and PNG are accepted", format)
	}

	img, err := imaging.Decode(bytes.NewReader(data), imaging.AutoOrientation(true))
	if err != nil {
		return nil, fmt.Errorf("failed to decode image: %w", err)
	}

	return &Source{
		Image:         img,
		Format:        format,
		FileSizeBytes: int64(len(data)),
	}, nil
}

// ImageInfo contains metadata about a loaded photo.
type ImageInfo struct {
	// Width is the upright image width in pixels.
	Width int `json:"width"`

	// Height is the upright image height in pixels.
	Height int `json:"height"`

	// Format is "jpeg" or "png".
	Format string `json:"format"`

	// MimeType is the MIME type matching Format.
	MimeType string `json:"mime_type"`

	// FileSizeBytes is the size of the image file on disk in bytes.
	FileSizeBytes int64 `json:"file_size_bytes"`
}

// LoadImageInfo loads a photo into the cache (if not already cached) and
// returns its metadata.
func LoadImageInfo(cache *ImageCache, path string) (*ImageInfo, error) {
	src, err := cache.Load(path)
	if err != nil {
		return nil, err
	}

	bounds := src.Image.Bounds()
	return &ImageInfo{
		Width:         bounds.Dx(),
		Height:        bounds.Dy(),
		Format:        src.Format,
		MimeType:      AllowedFormats[src.Format],
		FileSizeBytes: src.FileSizeBytes,
	}, nil
}
