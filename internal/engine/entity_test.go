package engine

import (
	"image"
	"image/color"
	"testing"

	"github.com/vovakirdan/quick/internal/core"
)

func TestEntitySyncIntegratesBeforeMoving(t *testing.T) {
	e := NewEntity().SetPosition(10, 10).SetSpeed(1, -2).SetAcceleration(0.5, 0)

	e.Sync()
	if e.SpeedX() != 1.5 {
		t.Errorf("SpeedX() = %v, expected 1.5", e.SpeedX())
	}
	if e.X() != 11.5 || e.Y() != 8 {
		t.Errorf("position = (%v, %v), expected (11.5, 8)", e.X(), e.Y())
	}
}

func TestEntityZeroAccelerationKeepsSpeed(t *testing.T) {
	e := NewEntity().SetSpeed(3, -1)
	for i := 0; i < 10; i++ {
		e.Sync()
	}
	if e.SpeedX() != 3 || e.SpeedY() != -1 {
		t.Errorf("speed = (%v, %v), expected (3, -1)", e.SpeedX(), e.SpeedY())
	}
	if e.X() != 30 || e.Y() != -10 {
		t.Errorf("position = (%v, %v), expected (30, -10)", e.X(), e.Y())
	}
}

func TestEntityMaxSpeedKeepsSign(t *testing.T) {
	tests := []struct {
		name     string
		speed    float64
		accel    float64
		max      float64
		expected float64
	}{
		{"positive over limit", 4, 2, 5, 5},
		{"negative over limit", -4, -2, 5, -5},
		{"within limit", 1, 1, 5, 2},
		{"no limit", 100, 1, 0, 101},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEntity().SetSpeedY(tc.speed).SetAccelerationY(tc.accel).SetMaxSpeedY(tc.max)
			e.Sync()
			if e.SpeedY() != tc.expected {
				t.Errorf("SpeedY() = %v, expected %v", e.SpeedY(), tc.expected)
			}
		})
	}
}

func TestEntityExpiration(t *testing.T) {
	e := NewEntity().SetExpiration(3)

	for i := 1; i <= 2; i++ {
		if e.Sync() {
			t.Fatalf("Sync() #%d = true, expected false", i)
		}
	}
	if !e.Sync() {
		t.Errorf("Sync() #3 = false, expected true")
	}
	if e.Ticks() != 3 {
		t.Errorf("Ticks() = %d, expected 3", e.Ticks())
	}

	// Expired entities are frozen.
	e.SetSpeed(1, 1)
	e.Sync()
	if e.Ticks() != 3 || e.X() != 0 {
		t.Errorf("expired entity advanced: ticks = %d, x = %v", e.Ticks(), e.X())
	}
}

func TestEntityNeverExpires(t *testing.T) {
	for _, n := range []int{NeverExpire, 0} {
		e := NewEntity().SetExpiration(n)
		for i := 0; i < 50; i++ {
			if e.Sync() {
				t.Fatalf("SetExpiration(%d): expired after %d ticks", n, i+1)
			}
		}
	}
}

func TestEntityExpireIn(t *testing.T) {
	e := NewEntity()
	e.Sync()
	e.Sync()
	e.ExpireIn(2)

	if e.Sync() {
		t.Errorf("expired one tick early")
	}
	if !e.Sync() {
		t.Errorf("ExpireIn(2) did not expire after two ticks")
	}
}

func TestEntityBoundary(t *testing.T) {
	bounds := core.NewRect(0, 0, 10, 10)

	t.Run("default hook expires", func(t *testing.T) {
		e := NewEntity().SetSize(2, 2).SetPosition(8, 0).SetSpeedX(1).SetBoundary(bounds)
		if e.Sync() {
			t.Fatalf("expired while still touching the boundary")
		}
		if !e.Sync() {
			t.Errorf("Sync() = false after leaving the boundary, expected true")
		}
	})

	t.Run("wrap around", func(t *testing.T) {
		wrap := Funcs{OffBoundaryFunc: func(e *Entity) { e.SetX(0) }}
		e := NewEntity().SetSize(2, 2).SetPosition(9, 0).SetSpeedX(2).
			SetBoundary(bounds).SetDelegate(wrap)

		if e.Sync() {
			t.Fatalf("wrapping entity expired")
		}
		if e.X() != 0 {
			t.Errorf("X() = %v after wrap, expected 0", e.X())
		}
		got, ok := e.Boundary()
		if !ok || got != bounds {
			t.Errorf("Boundary() = %v, %v, expected %v, true", got, ok, bounds)
		}
	})

	t.Run("cleared", func(t *testing.T) {
		e := NewEntity().SetSize(1, 1).SetPosition(50, 50).SetBoundary(bounds).ClearBoundary()
		if e.Sync() {
			t.Errorf("entity without boundary expired")
		}
	})
}

func TestEntityDirection(t *testing.T) {
	tests := []struct {
		name     string
		dx, dy   float64
		expected core.Direction
	}{
		{"still", 0, 0, core.Direction{}},
		{"left and down", -1, 2, core.Direction{Left: true, Bottom: true}},
		{"right and up", 0.5, -0.5, core.Direction{Right: true, Top: true}},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEntity().SetSpeed(tc.dx, tc.dy)
			e.Sync()
			if got := e.Direction(); got != tc.expected {
				t.Errorf("Direction() = %v, expected %v", got, tc.expected)
			}
		})
	}
}

func TestEntityBounceFrom(t *testing.T) {
	tests := []struct {
		name         string
		sx, sy       float64
		side         core.Direction
		expectX      float64
		expectY      float64
		expectSpeedX float64
		expectSpeedY float64
	}{
		{"moving into the right side", 2, 0, core.Direction{Right: true}, -2, 0, -2, 0},
		{"moving away from the right side", -2, 0, core.Direction{Right: true}, 0, 0, -2, 0},
		{"corner", 1, 1, core.Direction{Right: true, Bottom: true}, -1, -1, -1, -1},
		{"top only", 1, -3, core.Direction{Top: true}, 0, 3, 1, 3},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			e := NewEntity().SetSpeed(tc.sx, tc.sy)
			e.BounceFrom(tc.side)
			if e.X() != tc.expectX || e.Y() != tc.expectY {
				t.Errorf("position = (%v, %v), expected (%v, %v)", e.X(), e.Y(), tc.expectX, tc.expectY)
			}
			if e.SpeedX() != tc.expectSpeedX || e.SpeedY() != tc.expectSpeedY {
				t.Errorf("speed = (%v, %v), expected (%v, %v)", e.SpeedX(), e.SpeedY(), tc.expectSpeedX, tc.expectSpeedY)
			}
		})
	}
}

func TestEntitySetSpeedToPoint(t *testing.T) {
	e := NewEntity().SetSize(1, 1).SetPosition(0, 0)
	e.SetSpeedToPoint(4, 3, -1)
	if e.SpeedX() != 3 || e.SpeedY() != -1 {
		t.Errorf("speed = (%v, %v), expected (3, -1)", e.SpeedX(), e.SpeedY())
	}

	e.SetSpeedToPoint(4, e.CenterX(), e.CenterY())
	if e.SpeedX() != 0 || e.SpeedY() != 0 {
		t.Errorf("speed towards own center = (%v, %v), expected (0, 0)", e.SpeedX(), e.SpeedY())
	}
}

func TestEntityCollisionIsMirrored(t *testing.T) {
	a := NewEntity().SetSize(2, 2).SetPosition(0, 0)
	b := NewEntity().SetSize(2, 2).SetPosition(1, 1)

	if !a.Overlaps(b) || !b.Overlaps(a) {
		t.Fatalf("Overlaps() not symmetric")
	}
	if got := a.Collision(b); got != (core.Direction{Right: true, Bottom: true}) {
		t.Errorf("a.Collision(b) = %v, expected right+bottom", got)
	}
	if got := b.Collision(a); got != (core.Direction{Left: true, Top: true}) {
		t.Errorf("b.Collision(a) = %v, expected left+top", got)
	}
}

func TestEntityTags(t *testing.T) {
	e := NewEntity().AddTag("brick").AddTag("gold")
	if !e.HasTag("brick") || !e.HasTag("gold") {
		t.Errorf("HasTag() = false for added tags")
	}
	e.RemoveTag("gold")
	if e.HasTag("gold") {
		t.Errorf("HasTag(gold) = true after RemoveTag")
	}
	if NewEntity().HasTag("brick") {
		t.Errorf("HasTag() = true on an untagged entity")
	}
}

func TestEntitySetImageResizes(t *testing.T) {
	img := image.NewRGBA(image.Rect(0, 0, 6, 3))
	e := NewEntity().SetImage(img)
	if e.Width() != 6 || e.Height() != 3 {
		t.Errorf("size = %vx%v, expected 6x3", e.Width(), e.Height())
	}

	a := e.Animation()
	e.SetSize(1, 1).SetAnimation(a)
	if e.Width() != 1 {
		t.Errorf("re-setting the same animation resized the entity")
	}
}

type recordedDraw struct {
	kind       string
	x, y, w, h int
}

type recorder struct {
	draws []recordedDraw
}

func (r *recorder) FillRect(x, y, w, h int, _ color.Color) {
	r.draws = append(r.draws, recordedDraw{"fill", x, y, w, h})
}

func (r *recorder) DrawImage(_ image.Image, x, y, w, h int) {
	r.draws = append(r.draws, recordedDraw{"image", x, y, w, h})
}

func TestEntityRender(t *testing.T) {
	t.Run("color then image, floored", func(t *testing.T) {
		img := image.NewRGBA(image.Rect(0, 0, 2, 2))
		e := NewEntity().SetImage(img).SetColor(core.Red).SetPosition(1.7, -0.5)

		var r recorder
		e.Render(&r)

		expected := []recordedDraw{{"fill", 1, -1, 2, 2}, {"image", 1, -1, 2, 2}}
		if len(r.draws) != len(expected) {
			t.Fatalf("draws = %v, expected %v", r.draws, expected)
		}
		for i := range expected {
			if r.draws[i] != expected[i] {
				t.Errorf("draw[%d] = %v, expected %v", i, r.draws[i], expected[i])
			}
		}
	})

	t.Run("hidden", func(t *testing.T) {
		e := NewEntity().SetColor(core.Red).SetSize(1, 1).SetVisible(false)
		var r recorder
		e.Render(&r)
		if len(r.draws) != 0 {
			t.Errorf("hidden entity drew %v", r.draws)
		}
	})

	t.Run("scene offset", func(t *testing.T) {
		s := NewScene(10, 10)
		s.SetPosition(3, 2)
		e := NewEntity().SetColor(core.Red).SetSize(1, 1).SetPosition(5, 5)
		s.Add(e)

		var r recorder
		e.Render(&r)
		if len(r.draws) != 1 || r.draws[0].x != 2 || r.draws[0].y != 3 {
			t.Errorf("draws = %v, expected one fill at (2, 3)", r.draws)
		}
	})
}
