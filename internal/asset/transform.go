package asset

import (
	"image"
	"math"

	"golang.org/x/image/draw"
	"golang.org/x/image/math/f64"
)

// Mirror returns img flipped horizontally.
func Mirror(img image.Image) *image.RGBA {
	b := img.Bounds()
	m := f64.Aff3{
		-1, 0, float64(b.Max.X),
		0, 1, float64(-b.Min.Y),
	}
	return transform(img, b.Dx(), b.Dy(), m)
}

// Flip returns img flipped vertically.
func Flip(img image.Image) *image.RGBA {
	b := img.Bounds()
	m := f64.Aff3{
		1, 0, float64(-b.Min.X),
		0, -1, float64(b.Max.Y),
	}
	return transform(img, b.Dx(), b.Dy(), m)
}

// Rotate returns img rotated clockwise by a multiple of 90 degrees.
// Other angles return img unchanged.
func Rotate(img image.Image, degrees int) image.Image {
	turns := ((degrees % 360) + 360) % 360
	if turns%90 != 0 || turns == 0 {
		return img
	}

	b := img.Bounds()
	w, h := b.Dx(), b.Dy()
	rad := float64(turns) * math.Pi / 180
	sin, cos := math.Round(math.Sin(rad)), math.Round(math.Cos(rad))

	dw, dh := w, h
	if turns != 180 {
		dw, dh = h, w
	}

	// Rotate around the source center, then move that center to the
	// destination center.
	scx := float64(b.Min.X) + float64(w)/2
	scy := float64(b.Min.Y) + float64(h)/2
	dcx, dcy := float64(dw)/2, float64(dh)/2
	m := f64.Aff3{
		cos, -sin, dcx - cos*scx + sin*scy,
		sin, cos, dcy - sin*scx - cos*scy,
	}
	return transform(img, dw, dh, m)
}

// transform maps src into a new w x h image through m, which maps source
// coordinates to destination coordinates.
func transform(src image.Image, w, h int, m f64.Aff3) *image.RGBA {
	dst := image.NewRGBA(image.Rect(0, 0, w, h))
	draw.NearestNeighbor.Transform(dst, m, src, src.Bounds(), draw.Src, nil)
	return dst
}
