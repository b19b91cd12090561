package render

import (
	"image"
	"image/color"
	"testing"
)

// recorder is a Surface that remembers the order of fills.
type recorder struct {
	fills []color.Color
	blits int
}

func (r *recorder) FillRect(x, y, w, h int, c color.Color) {
	r.fills = append(r.fills, c)
}

func (r *recorder) DrawImage(img image.Image, x, y, w, h int) {
	r.blits++
}

func fill(c color.Color) Renderable {
	return RenderFunc(func(dst Surface) {
		dst.FillRect(0, 0, 1, 1, c)
	})
}

func TestLayersFlushOrder(t *testing.T) {
	l := NewLayers(1)
	red := color.RGBA{R: 255, A: 255}
	green := color.RGBA{G: 255, A: 255}
	blue := color.RGBA{B: 255, A: 255}

	l.Paint(fill(blue), 2)
	l.Paint(fill(red), 0)
	l.Paint(fill(green), 1)
	l.Paint(fill(red), 0)

	if l.Len() != 3 {
		t.Errorf("Len() = %d, expected 3", l.Len())
	}
	if l.Pending() != 4 {
		t.Errorf("Pending() = %d, expected 4", l.Pending())
	}

	var rec recorder
	l.Flush(&rec)

	expected := []color.Color{red, red, green, blue}
	if len(rec.fills) != len(expected) {
		t.Fatalf("got %d fills, expected %d", len(rec.fills), len(expected))
	}
	for i := range expected {
		if rec.fills[i] != expected[i] {
			t.Errorf("fill %d = %v, expected %v", i, rec.fills[i], expected[i])
		}
	}

	if l.Pending() != 0 {
		t.Errorf("Pending() after Flush = %d, expected 0", l.Pending())
	}

	// A second flush draws nothing.
	rec = recorder{}
	l.Flush(&rec)
	if len(rec.fills) != 0 {
		t.Errorf("second Flush drew %d fills, expected 0", len(rec.fills))
	}
}

func TestLayersNegativeIndex(t *testing.T) {
	l := NewLayers(0)
	l.Paint(fill(color.Black), -3)

	if l.Len() != 1 {
		t.Errorf("Len() = %d, expected 1", l.Len())
	}
	if l.Pending() != 1 {
		t.Errorf("Pending() = %d, expected 1", l.Pending())
	}
}

func TestLayersClear(t *testing.T) {
	l := NewLayers(2)
	l.Paint(fill(color.White), 1)
	l.Paint(nil, 0)
	l.Clear()

	if l.Pending() != 0 {
		t.Errorf("Pending() after Clear = %d, expected 0", l.Pending())
	}
}
