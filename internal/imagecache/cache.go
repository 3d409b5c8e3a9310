// Package imagecache decodes image files into small thumbnails for display.
// A Cache belongs to one screen; Release drops everything it loaded.
package imagecache

import (
	"errors"
	"fmt"
	"image"
	_ "image/gif"
	_ "image/jpeg"
	_ "image/png"
	"log/slog"
	"os"

	"golang.org/x/image/draw"
)

var ErrNoPath = errors.New("no image path")

// Thumbnail is a decoded image scaled to fit the cache's bounding box
type Thumbnail struct {
	Path   string
	Format string
	Image  *image.RGBA
	Source image.Point // Original dimensions
}

// Size returns the thumbnail dimensions
func (t *Thumbnail) Size() image.Point {
	return t.Image.Bounds().Size()
}

type Cache struct {
	maxSide int
	entries map[string]*Thumbnail
	logger  *slog.Logger
}

// New returns an empty cache producing thumbnails no larger than
// maxSide x maxSide.
func New(maxSide int, logger *slog.Logger) *Cache {
	if maxSide <= 0 {
		maxSide = 100
	}
	return &Cache{
		maxSide: maxSide,
		entries: make(map[string]*Thumbnail),
		logger:  logger,
	}
}

// Load returns the thumbnail for path, decoding it on first use
func (c *Cache) Load(path string) (*Thumbnail, error) {
	if path == "" {
		return nil, ErrNoPath
	}
	if thumb, ok := c.entries[path]; ok {
		return thumb, nil
	}

	thumb, err := c.decode(path)
	if err != nil {
		c.logger.Warn("⚠️ [ImageCache] Failed to load image", "path", path, "error", err)
		return nil, err
	}

	c.entries[path] = thumb
	c.logger.Debug("🖼️ [ImageCache] Image loaded", "path", path, "format", thumb.Format)
	return thumb, nil
}

// Check decodes path without keeping the result
func (c *Cache) Check(path string) error {
	if path == "" {
		return ErrNoPath
	}
	_, err := c.decode(path)
	return err
}

// Len reports how many thumbnails are held
func (c *Cache) Len() int {
	return len(c.entries)
}

// Release drops every held thumbnail
func (c *Cache) Release() {
	if len(c.entries) > 0 {
		c.logger.Debug("🧹 [ImageCache] Releasing images", "count", len(c.entries))
	}
	c.entries = make(map[string]*Thumbnail)
}

func (c *Cache) decode(path string) (*Thumbnail, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("open image: %w", err)
	}
	defer f.Close()

	src, format, err := image.Decode(f)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}

	srcSize := src.Bounds().Size()
	dstSize := fit(srcSize, c.maxSide)

	dst := image.NewRGBA(image.Rect(0, 0, dstSize.X, dstSize.Y))
	draw.CatmullRom.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Over, nil)

	return &Thumbnail{
		Path:   path,
		Format: format,
		Image:  dst,
		Source: srcSize,
	}, nil
}

// fit scales size down to fit in a maxSide square, keeping aspect ratio.
// Images already inside the box keep their size.
func fit(size image.Point, maxSide int) image.Point {
	if size.X <= maxSide && size.Y <= maxSide {
		return size
	}
	if size.X >= size.Y {
		h := size.Y * maxSide / size.X
		if h < 1 {
			h = 1
		}
		return image.Pt(maxSide, h)
	}
	w := size.X * maxSide / size.Y
	if w < 1 {
		w = 1
	}
	return image.Pt(w, maxSide)
}
