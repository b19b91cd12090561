package engine

import (
	"image"
	"image/color"
	"math"

	"github.com/vovakirdan/quick/internal/core"
	"github.com/vovakirdan/quick/internal/render"
)

// NeverExpire disables the expiration countdown.
const NeverExpire = -1

// Entity is a positioned, sized body simulated by a Scene.
//
// Setters return the entity so construction can be chained:
//
//	ball := engine.NewEntity().
//		SetSize(4, 4).
//		SetSpeed(1, -1).
//		SetSolid(true)
type Entity struct {
	rect         core.Rect
	motion       core.Motion
	lastX, lastY float64

	color  color.Color
	anim   *Animation
	layer  int
	hidden bool

	text      string
	textColor color.Color

	tags       map[string]struct{}
	essential  bool
	solid      bool
	expired    bool
	expiration int
	ticks      int
	boundary   *core.Rect

	scene    *Scene
	delegate Delegate
}

// NewEntity creates a visible entity at the origin with no size.
func NewEntity() *Entity {
	return &Entity{expiration: NeverExpire}
}

// Rect returns the entity's geometry.
func (e *Entity) Rect() core.Rect { return e.rect }

// X returns the left edge.
func (e *Entity) X() float64 { return e.rect.X }

// Y returns the top edge.
func (e *Entity) Y() float64 { return e.rect.Y }

// Width returns the width in pixels.
func (e *Entity) Width() float64 { return e.rect.Width }

// Height returns the height in pixels.
func (e *Entity) Height() float64 { return e.rect.Height }

// Left returns the first column.
func (e *Entity) Left() float64 { return e.rect.Left() }

// Top returns the first row.
func (e *Entity) Top() float64 { return e.rect.Top() }

// Right returns the last column.
func (e *Entity) Right() float64 { return e.rect.Right() }

// Bottom returns the last row.
func (e *Entity) Bottom() float64 { return e.rect.Bottom() }

// CenterX returns the horizontal center.
func (e *Entity) CenterX() float64 { return e.rect.CenterX() }

// CenterY returns the vertical center.
func (e *Entity) CenterY() float64 { return e.rect.CenterY() }

// SetX places the left edge at x.
func (e *Entity) SetX(x float64) *Entity {
	e.rect.SetLeft(x)
	return e
}

// SetY places the top edge at y.
func (e *Entity) SetY(y float64) *Entity {
	e.rect.SetTop(y)
	return e
}

// SetLeft is an alias of SetX.
func (e *Entity) SetLeft(x float64) *Entity { return e.SetX(x) }

// SetTop is an alias of SetY.
func (e *Entity) SetTop(y float64) *Entity { return e.SetY(y) }

// SetRight moves the entity so that its last column is x.
func (e *Entity) SetRight(x float64) *Entity {
	e.rect.SetRight(x)
	return e
}

// SetBottom moves the entity so that its last row is y.
func (e *Entity) SetBottom(y float64) *Entity {
	e.rect.SetBottom(y)
	return e
}

// SetCenterX moves the entity horizontally so that CenterX() == x.
func (e *Entity) SetCenterX(x float64) *Entity {
	e.rect.SetCenterX(x)
	return e
}

// SetCenterY moves the entity vertically so that CenterY() == y.
func (e *Entity) SetCenterY(y float64) *Entity {
	e.rect.SetCenterY(y)
	return e
}

// SetCenter centers the entity on (x, y).
func (e *Entity) SetCenter(x, y float64) *Entity {
	e.rect.SetCenter(x, y)
	return e
}

// SetPosition places the top-left corner at (x, y).
func (e *Entity) SetPosition(x, y float64) *Entity {
	e.rect.X, e.rect.Y = x, y
	return e
}

// SetWidth resizes the entity horizontally.
func (e *Entity) SetWidth(w float64) *Entity {
	e.rect.Width = w
	return e
}

// SetHeight resizes the entity vertically.
func (e *Entity) SetHeight(h float64) *Entity {
	e.rect.Height = h
	return e
}

// SetSize resizes the entity.
func (e *Entity) SetSize(w, h float64) *Entity {
	e.rect.Width, e.rect.Height = w, h
	return e
}

// MoveX shifts the entity horizontally by dx.
func (e *Entity) MoveX(dx float64) *Entity {
	e.rect.X += dx
	return e
}

// MoveY shifts the entity vertically by dy.
func (e *Entity) MoveY(dy float64) *Entity {
	e.rect.Y += dy
	return e
}

// Move shifts the entity by (dx, dy).
func (e *Entity) Move(dx, dy float64) *Entity {
	e.rect.Move(dx, dy)
	return e
}

// Motion returns the velocity state.
func (e *Entity) Motion() core.Motion { return e.motion }

// SpeedX returns the horizontal speed in pixels per tick.
func (e *Entity) SpeedX() float64 { return e.motion.SpeedX }

// SpeedY returns the vertical speed in pixels per tick.
func (e *Entity) SpeedY() float64 { return e.motion.SpeedY }

// SetSpeedX sets the horizontal speed.
func (e *Entity) SetSpeedX(v float64) *Entity {
	e.motion.SpeedX = v
	return e
}

// SetSpeedY sets the vertical speed.
func (e *Entity) SetSpeedY(v float64) *Entity {
	e.motion.SpeedY = v
	return e
}

// SetSpeed sets both speed components.
func (e *Entity) SetSpeed(x, y float64) *Entity {
	e.motion.SpeedX, e.motion.SpeedY = x, y
	return e
}

// AccelerationX returns the horizontal acceleration.
func (e *Entity) AccelerationX() float64 { return e.motion.AccelX }

// AccelerationY returns the vertical acceleration.
func (e *Entity) AccelerationY() float64 { return e.motion.AccelY }

// SetAccelerationX sets the horizontal acceleration.
func (e *Entity) SetAccelerationX(v float64) *Entity {
	e.motion.AccelX = v
	return e
}

// SetAccelerationY sets the vertical acceleration.
func (e *Entity) SetAccelerationY(v float64) *Entity {
	e.motion.AccelY = v
	return e
}

// SetAcceleration sets both acceleration components.
func (e *Entity) SetAcceleration(x, y float64) *Entity {
	e.motion.AccelX, e.motion.AccelY = x, y
	return e
}

// SetMaxSpeedX limits |SpeedX| after each integration step; 0 removes the
// limit.
func (e *Entity) SetMaxSpeedX(v float64) *Entity {
	e.motion.MaxSpeedX = v
	return e
}

// SetMaxSpeedY limits |SpeedY| after each integration step; 0 removes the
// limit.
func (e *Entity) SetMaxSpeedY(v float64) *Entity {
	e.motion.MaxSpeedY = v
	return e
}

// Stop zeroes the velocity.
func (e *Entity) Stop() *Entity {
	e.motion.Stop()
	return e
}

// Angle returns the heading of the velocity in degrees.
func (e *Entity) Angle() float64 {
	return e.motion.Angle()
}

// SetSpeedToAngle points the velocity at degrees with the given magnitude.
func (e *Entity) SetSpeedToAngle(speed, degrees float64) *Entity {
	e.motion.SetSpeedToAngle(speed, degrees)
	return e
}

// SetSpeedToPoint aims the entity's center at (x, y). The speed is split
// between the axes in proportion to the Manhattan distance.
func (e *Entity) SetSpeedToPoint(speed, x, y float64) *Entity {
	dx := x - e.CenterX()
	dy := y - e.CenterY()
	dist := math.Abs(dx) + math.Abs(dy)
	if dist == 0 {
		return e.Stop()
	}
	return e.SetSpeed(dx*speed/dist, dy*speed/dist)
}

// Direction reports where the last Sync moved the entity.
func (e *Entity) Direction() core.Direction {
	var d core.Direction
	if e.rect.X < e.lastX {
		d.Left = true
	} else if e.rect.X > e.lastX {
		d.Right = true
	}
	if e.rect.Y < e.lastY {
		d.Top = true
	} else if e.rect.Y > e.lastY {
		d.Bottom = true
	}
	return d
}

// BounceX reverses the horizontal speed and applies one step of it.
func (e *Entity) BounceX() *Entity {
	e.motion.SpeedX = -e.motion.SpeedX
	return e.MoveX(e.motion.SpeedX)
}

// BounceY reverses the vertical speed and applies one step of it.
func (e *Entity) BounceY() *Entity {
	e.motion.SpeedY = -e.motion.SpeedY
	return e.MoveY(e.motion.SpeedY)
}

// BounceFrom bounces off the sides flagged in d, but only on axes where the
// entity is moving towards the flagged side.
func (e *Entity) BounceFrom(d core.Direction) *Entity {
	if (e.motion.SpeedX < 0 && d.Left) || (e.motion.SpeedX > 0 && d.Right) {
		e.BounceX()
	}
	if (e.motion.SpeedY < 0 && d.Top) || (e.motion.SpeedY > 0 && d.Bottom) {
		e.BounceY()
	}
	return e
}

// Overlaps reports whether e and other share at least one pixel.
func (e *Entity) Overlaps(other *Entity) bool {
	return e.rect.Overlaps(other.rect)
}

// Collision reports which sides of other e is pushing into.
func (e *Entity) Collision(other *Entity) core.Direction {
	return e.rect.Penetration(other.rect)
}

// Color returns the fill color, or nil.
func (e *Entity) Color() color.Color { return e.color }

// SetColor sets the fill color; nil disables the fill.
func (e *Entity) SetColor(c color.Color) *Entity {
	e.color = c
	return e
}

// Animation returns the attached animation, or nil.
func (e *Entity) Animation() *Animation { return e.anim }

// SetAnimation attaches a, rewinds it and resizes the entity to its first
// frame. Setting the animation already attached keeps its timing.
func (e *Entity) SetAnimation(a *Animation) *Entity {
	if e.anim == a {
		return e
	}
	e.anim = a
	if a == nil {
		return e
	}
	a.SetFrameIndex(0)
	if a.Image() != nil {
		e.SetSize(float64(a.Width()), float64(a.Height()))
	}
	return e
}

// SetImage attaches a single static frame showing img.
func (e *Entity) SetImage(img image.Image) *Entity {
	return e.SetAnimation(NewAnimation(Frame{Image: img}))
}

// Image returns the current animation frame, or nil.
func (e *Entity) Image() image.Image {
	if e.anim == nil {
		return nil
	}
	return e.anim.Image()
}

// Layer returns the paint layer.
func (e *Entity) Layer() int { return e.layer }

// SetLayer picks the paint layer; negative values are treated as 0.
func (e *Entity) SetLayer(layer int) *Entity {
	e.layer = max(layer, 0)
	return e
}

// Visible reports whether the entity is painted.
func (e *Entity) Visible() bool { return !e.hidden }

// SetVisible shows or hides the entity. Hidden entities still move and collide.
func (e *Entity) SetVisible(v bool) *Entity {
	e.hidden = !v
	return e
}

// AddTag labels the entity.
func (e *Entity) AddTag(tag string) *Entity {
	if e.tags == nil {
		e.tags = make(map[string]struct{})
	}
	e.tags[tag] = struct{}{}
	return e
}

// RemoveTag drops a label added with AddTag.
func (e *Entity) RemoveTag(tag string) *Entity {
	delete(e.tags, tag)
	return e
}

// HasTag reports whether the entity carries tag.
func (e *Entity) HasTag(tag string) bool {
	_, ok := e.tags[tag]
	return ok
}

// Essential reports whether expiring the entity ends its scene.
func (e *Entity) Essential() bool { return e.essential }

// SetEssential marks the entity as essential: when it expires, its scene
// expires too.
func (e *Entity) SetEssential(v bool) *Entity {
	e.essential = v
	return e
}

// Solid reports whether the entity takes part in collision detection.
func (e *Entity) Solid() bool { return e.solid }

// SetSolid includes the entity in collision detection.
func (e *Entity) SetSolid(v bool) *Entity {
	e.solid = v
	return e
}

// Expire marks the entity for removal at its next Sync.
func (e *Entity) Expire() *Entity {
	e.expired = true
	return e
}

// Expired reports whether the entity is marked for removal.
func (e *Entity) Expired() bool { return e.expired }

// Expiration returns the tick at which the entity expires, or a value <= 0 for never.
func (e *Entity) Expiration() int { return e.expiration }

// SetExpiration expires the entity when its tick counter reaches n.
// Values <= 0 never expire.
func (e *Entity) SetExpiration(n int) *Entity {
	e.expiration = n
	return e
}

// ExpireIn expires the entity n ticks from now.
func (e *Entity) ExpireIn(n int) *Entity {
	if n <= 0 {
		return e.Expire()
	}
	return e.SetExpiration(e.ticks + n)
}

// Ticks returns how many times Sync has run on a live entity.
func (e *Entity) Ticks() int { return e.ticks }

// Boundary returns the containment rect, if any.
func (e *Entity) Boundary() (core.Rect, bool) {
	if e.boundary == nil {
		return core.Rect{}, false
	}
	return *e.boundary, true
}

// SetBoundary makes the entity call OffBoundary whenever it stops touching r.
func (e *Entity) SetBoundary(r core.Rect) *Entity {
	e.boundary = &r
	return e
}

// SetBoundaryToScene uses the owning scene's area as boundary. It has no
// effect before the entity is added to a scene.
func (e *Entity) SetBoundaryToScene() *Entity {
	if e.scene != nil {
		e.SetBoundary(e.scene.Boundary())
	}
	return e
}

// ClearBoundary removes the containment rect.
func (e *Entity) ClearBoundary() *Entity {
	e.boundary = nil
	return e
}

// Scene returns the scene that owns the entity, or nil.
func (e *Entity) Scene() *Scene { return e.scene }

// Delegate returns the hooks set with SetDelegate, or nil.
func (e *Entity) Delegate() Delegate { return e.delegate }

// SetDelegate replaces the entity's hooks; nil restores the defaults.
func (e *Entity) SetDelegate(d Delegate) *Entity {
	e.delegate = d
	return e
}

func (e *Entity) hooks() Delegate {
	if e.delegate != nil {
		return e.delegate
	}
	return Hooks{}
}

// Update runs the delegate's Update hook.
func (e *Entity) Update() {
	e.hooks().Update(e)
}

// Sync advances the entity by one tick and reports whether it is expired.
//
// The order is fixed: expiration countdown, animation, speed integration,
// movement, boundary check. An entity that was already expired is left
// untouched.
func (e *Entity) Sync() bool {
	if e.expired {
		return true
	}

	e.ticks++
	if e.ticks == e.expiration {
		e.Expire()
	}

	if e.anim != nil && e.anim.Update() {
		e.hooks().OnAnimationLoop(e)
	}

	e.motion.Integrate()
	e.lastX, e.lastY = e.rect.X, e.rect.Y
	e.rect.Move(e.motion.SpeedX, e.motion.SpeedY)

	if e.boundary != nil && !e.rect.Overlaps(*e.boundary) {
		e.hooks().OffBoundary(e)
	}

	return e.expired
}

// Render draws the fill color and then the current frame. Children of a
// scene are offset by the scene's negated position, so moving a scene pans
// its contents like a camera.
func (e *Entity) Render(dst render.Surface) {
	if e.hidden {
		return
	}
	px, py := e.parentOffset()
	x := int(math.Floor(e.rect.X + px))
	y := int(math.Floor(e.rect.Y + py))
	w, h := int(e.rect.Width), int(e.rect.Height)

	if e.color != nil {
		dst.FillRect(x, y, w, h, e.color)
	}
	if img := e.Image(); img != nil {
		dst.DrawImage(img, x, y, w, h)
	}
}

func (e *Entity) parentOffset() (float64, float64) {
	if e.scene == nil {
		return 0, 0
	}
	return -e.scene.X(), -e.scene.Y()
}
