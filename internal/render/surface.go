// Package render holds the paint pipeline: per-layer queues filled during a
// simulation tick and flushed once per frame onto a raster Surface.
package render

import (
	"image"
	"image/color"
)

// Surface is a raster target that accepts fills and blits.
// The engine never reads pixels back from it.
type Surface interface {
	// FillRect paints a w x h rectangle with its top-left corner at (x, y).
	FillRect(x, y, w, h int, c color.Color)

	// DrawImage blits img scaled to w x h with its top-left corner at (x, y).
	DrawImage(img image.Image, x, y, w, h int)
}

// Renderable is anything that can draw itself onto a Surface.
type Renderable interface {
	Render(dst Surface)
}

// RenderFunc adapts a plain function to Renderable.
type RenderFunc func(dst Surface)

// Render calls f(dst).
func (f RenderFunc) Render(dst Surface) {
	f(dst)
}
