package render

import (
	"fmt"
	"image"
	"image/color"
	"image/png"
	"io"
	"os"
	"path/filepath"

	"golang.org/x/image/draw"
)

// ImageSurface is a Surface backed by an in-memory RGBA image. It is used for
// headless runs and PNG snapshots.
type ImageSurface struct {
	img *image.RGBA
}

// NewImageSurface creates a transparent surface of the given size.
func NewImageSurface(width, height int) *ImageSurface {
	return &ImageSurface{img: image.NewRGBA(image.Rect(0, 0, width, height))}
}

// Width returns the surface width in pixels.
func (s *ImageSurface) Width() int {
	return s.img.Bounds().Dx()
}

// Height returns the surface height in pixels.
func (s *ImageSurface) Height() int {
	return s.img.Bounds().Dy()
}

// Image returns the backing image.
func (s *ImageSurface) Image() *image.RGBA {
	return s.img
}

// Clear replaces every pixel with c.
func (s *ImageSurface) Clear(c color.Color) {
	draw.Draw(s.img, s.img.Bounds(), image.NewUniform(c), image.Point{}, draw.Src)
}

// FillRect implements Surface. Translucent colors blend over existing pixels.
func (s *ImageSurface) FillRect(x, y, w, h int, c color.Color) {
	if w <= 0 || h <= 0 || c == nil {
		return
	}
	r := image.Rect(x, y, x+w, y+h).Intersect(s.img.Bounds())
	if r.Empty() {
		return
	}
	draw.Draw(s.img, r, image.NewUniform(c), image.Point{}, draw.Over)
}

// DrawImage implements Surface using nearest-neighbour scaling so pixel art
// stays crisp.
func (s *ImageSurface) DrawImage(img image.Image, x, y, w, h int) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	src := img.Bounds()
	if src.Empty() {
		return
	}
	dr := image.Rect(x, y, x+w, y+h)
	if !dr.Overlaps(s.img.Bounds()) {
		return
	}
	if src.Dx() == w && src.Dy() == h {
		draw.Draw(s.img, dr, img, src.Min, draw.Over)
		return
	}
	draw.NearestNeighbor.Scale(s.img, dr, img, src, draw.Over, nil)
}

// WritePNG encodes the surface as PNG.
func (s *ImageSurface) WritePNG(w io.Writer) error {
	if err := png.Encode(w, s.img); err != nil {
		return fmt.Errorf("render: cannot encode png: %w", err)
	}
	return nil
}

// SavePNG writes the surface to path, creating parent directories.
func (s *ImageSurface) SavePNG(path string) error {
	if dir := filepath.Dir(path); dir != "" {
		if err := os.MkdirAll(dir, 0o755); err != nil {
			return fmt.Errorf("render: cannot create directory %s: %w", dir, err)
		}
	}
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("render: cannot create %s: %w", path, err)
	}
	if err := s.WritePNG(f); err != nil {
		f.Close()
		return err
	}
	return f.Close()
}
