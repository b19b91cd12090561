// Package core provides the fundamental value types of the engine: geometry,
// motion integration, collision sides, colors, commands and runtime settings.
// It has no dependencies on rendering or terminal libraries so the simulation
// kernel built on top of it stays pure and testable.
package core

import "math"

// Rect is an axis-aligned rectangle positioned by its top-left corner.
//
// Edges follow the inclusive last-pixel convention: a rect at X=0 with
// Width=2 covers pixels 0 and 1, so Right() is 1. Every overlap and
// penetration test in the engine depends on this.
type Rect struct {
	X, Y          float64
	Width, Height float64
}

// NewRect creates a new rectangle with the given position and dimensions.
func NewRect(x, y, width, height float64) Rect {
	return Rect{X: x, Y: y, Width: width, Height: height}
}

// Left returns the x-coordinate of the left edge.
func (r Rect) Left() float64 {
	return r.X
}

// Top returns the y-coordinate of the top edge.
func (r Rect) Top() float64 {
	return r.Y
}

// Right returns the x-coordinate of the last column covered by the rect.
func (r Rect) Right() float64 {
	return r.X + r.Width - 1
}

// Bottom returns the y-coordinate of the last row covered by the rect.
func (r Rect) Bottom() float64 {
	return r.Y + r.Height - 1
}

// CenterX returns x plus half the width, rounded down.
func (r Rect) CenterX() float64 {
	return r.X + math.Floor(r.Width/2)
}

// CenterY returns y plus half the height, rounded down.
func (r Rect) CenterY() float64 {
	return r.Y + math.Floor(r.Height/2)
}

// Center returns the center point of the rectangle.
func (r Rect) Center() (float64, float64) {
	return r.CenterX(), r.CenterY()
}

// SetLeft places the left edge at x.
func (r *Rect) SetLeft(x float64) {
	r.X = x
}

// SetTop places the top edge at y.
func (r *Rect) SetTop(y float64) {
	r.Y = y
}

// SetRight back-solves X so that Right() == x.
func (r *Rect) SetRight(x float64) {
	r.X = x - r.Width + 1
}

// SetBottom back-solves Y so that Bottom() == y.
func (r *Rect) SetBottom(y float64) {
	r.Y = y - r.Height + 1
}

// SetCenterX back-solves X so that CenterX() == x.
func (r *Rect) SetCenterX(x float64) {
	r.X = x - math.Floor(r.Width/2)
}

// SetCenterY back-solves Y so that CenterY() == y.
func (r *Rect) SetCenterY(y float64) {
	r.Y = y - math.Floor(r.Height/2)
}

// SetCenter moves the rect so that its center lands on (x, y).
func (r *Rect) SetCenter(x, y float64) {
	r.SetCenterX(x)
	r.SetCenterY(y)
}

// Move shifts the rect by the given deltas.
func (r *Rect) Move(dx, dy float64) {
	r.X += dx
	r.Y += dy
}

// Overlaps reports whether r and other share at least one pixel.
// Rects are only apart when strictly separated on some axis, so equal
// edges count as touching.
func (r Rect) Overlaps(other Rect) bool {
	return !(r.Left() > other.Right() ||
		r.Right() < other.Left() ||
		r.Top() > other.Bottom() ||
		r.Bottom() < other.Top())
}

// Penetration reports the sides of other that r is pushing into, judged by
// r's center against other's edges. At most one horizontal and one vertical
// flag is set.
func (r Rect) Penetration(other Rect) Direction {
	var d Direction
	cx, cy := r.Center()

	if cx <= other.Left() && r.Right() < other.Right() {
		d.Right = true
	} else if cx >= other.Right() && r.Left() > other.Left() {
		d.Left = true
	}

	if cy <= other.Top() && r.Bottom() < other.Bottom() {
		d.Bottom = true
	} else if cy >= other.Bottom() && r.Top() > other.Top() {
		d.Top = true
	}

	return d
}

// Contains returns true if the point (x, y) is inside this rectangle.
// Both edges are inclusive.
func (r Rect) Contains(x, y float64) bool {
	return x >= r.Left() && x <= r.Right() && y >= r.Top() && y <= r.Bottom()
}

// Clamp restricts a value to be within [min, max].
func Clamp(val, min, max int) int {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}

// ClampF restricts a float64 value to be within [min, max].
func ClampF(val, min, max float64) float64 {
	if val < min {
		return min
	}
	if val > max {
		return max
	}
	return val
}
