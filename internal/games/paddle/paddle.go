// Package paddle is a one-player bat-and-ball demo. A ball bounces between
// three pipes, a row of bumpers and the player's paddle; letting it past
// the paddle wipes the screen and serves a fresh ball.
package paddle

import (
	"image/color"

	"github.com/vovakirdan/quick/internal/asset"
	"github.com/vovakirdan/quick/internal/config"
	"github.com/vovakirdan/quick/internal/core"
	"github.com/vovakirdan/quick/internal/engine"
	"github.com/vovakirdan/quick/internal/registry"
)

// Tags used to tell collision partners apart.
const (
	TagBall   = "ball"
	TagPaddle = "paddle"
	TagPipe   = "pipe"
	TagBumper = "bumper"
)

// Tuning, in surface pixels per tick.
const (
	PipeSize    = 2
	PaddleSpeed = 2
	BallMinStep = 0.25 // slowest serve component

	// BallMaxStep keeps the ball from sinking past the middle of anything
	// it hits in one tick, so the collision side is always detectable.
	BallMaxStep = 1
)

// bumpers is the tile map for the obstacles in the middle of the court.
// Each cell is cellW x cellH pixels; 'o' places a bumper.
var bumpers = engine.Grid(
	"..........",
	"..........",
	"..o....o..",
	"..........",
	"....o.o...",
)

const (
	cellW = 8
	cellH = 4
)

func init() {
	registry.Register("paddle", New)
}

// Demo is the paddle demo.
type Demo struct {
	difficulty *config.DifficultyManager
}

// New creates the demo. Difficulty scales the serve speed.
func New(difficulty config.DifficultyConfig) registry.Demo {
	return &Demo{difficulty: config.NewDifficultyManager(difficulty)}
}

func (d *Demo) ID() string    { return "paddle" }
func (d *Demo) Title() string { return "Paddle" }

// Assets adds the ball, paddle and bumper sprites.
func (d *Demo) Assets(lib *asset.Library) {
	white := core.White
	gray := core.Silver
	lib.Add("ball", asset.Pattern([]string{
		".ww.",
		"wwww",
		"wwww",
		".ww.",
	}, map[rune]color.Color{'w': white}))
	lib.Add("paddle", asset.Pattern([]string{
		"gwwwwwwwwwwg",
		"gggggggggggg",
	}, map[rune]color.Color{'w': white, 'g': gray}))
	lib.Add("bumper", asset.Pattern([]string{
		"oyyo",
		"oooo",
	}, map[rune]color.Color{'o': core.Orange, 'y': core.Yellow}))
}

// FirstScene returns the factory for the opening court.
func (d *Demo) FirstScene() engine.SceneFactory {
	return d.court
}

// court builds one round: pipes, bumpers, paddle and a freshly served ball.
// The ball is essential, so losing it ends the round.
func (d *Demo) court(e *engine.Engine) *engine.Scene {
	s := e.NewScene()
	s.SetColor(core.Green)
	s.SetTransition(e.NewWipe)
	s.SetNext(func() *engine.Scene { return d.court(e) })

	s.Add(pipe(0, 0, e.Width(), PipeSize))
	s.Add(pipe(0, 0, PipeSize, e.Height()))
	s.Add(pipe(e.Right()-PipeSize+1, 0, PipeSize, e.Height()))

	s.Build(bumpers, func(id string) *engine.Entity {
		if id != "o" {
			return nil
		}
		return e.BaseTile("bumper").
			SetSolid(true).
			AddTag(TagBumper)
	}, cellW, cellH)

	s.Add(newPaddle(e))
	s.Add(d.serve(e))

	e.Play("hit")
	return s
}

func pipe(x, y, w, h float64) *engine.Entity {
	return engine.NewEntity().
		SetPosition(x, y).
		SetSize(w, h).
		SetColor(core.Silver).
		SetSolid(true).
		AddTag(TagPipe)
}

// serve creates the ball in the middle of the court, heading down at a
// random angle. Difficulty scales the step size.
func (d *Demo) serve(e *engine.Engine) *engine.Entity {
	speed := func() float64 {
		base := BallMinStep * float64(1+e.Random(3))
		return d.difficulty.Speed(base, 0, 0)
	}
	vx := speed()
	if e.Random(1) == 0 {
		vx = -vx
	}
	ball := e.BaseTile("ball").
		SetCenter(e.CenterX(), e.CenterY()).
		SetSpeed(vx, speed()).
		SetMaxSpeedX(BallMaxStep).
		SetMaxSpeedY(BallMaxStep).
		SetBoundary(e.Boundary()).
		SetEssential(true).
		SetSolid(true).
		SetLayer(1).
		AddTag(TagBall)
	ball.SetDelegate(&ballHooks{engine: e})
	return ball
}

type ballHooks struct {
	engine.Hooks
	engine *engine.Engine
}

// OnCollision bounces off whatever the ball hit.
func (b *ballHooks) OnCollision(ball, other *engine.Entity) {
	ball.BounceFrom(ball.Collision(other))
	if other.HasTag(TagPaddle) {
		b.engine.Play("bounce")
	} else {
		b.engine.Play("hit")
	}
}

func newPaddle(e *engine.Engine) *engine.Entity {
	p := e.BaseTile("paddle").
		SetSolid(true).
		AddTag(TagPaddle).
		SetLayer(1)
	p.SetCenterX(e.CenterX())
	p.SetBottom(e.Bottom() - p.Height())
	p.SetDelegate(&paddleHooks{engine: e})
	return p
}

type paddleHooks struct {
	engine.Hooks
	engine       *engine.Engine
	lastX, lastY float64
}

// Update follows the pointer while it is pressed or moving, then applies the
// left/right commands. The paddle never leaves the space between the pipes.
func (h *paddleHooks) Update(p *engine.Entity) {
	e := h.engine
	ptr := e.Pointer(0)
	x, y := ptr.Position()
	if ptr.Down() || x != h.lastX || y != h.lastY {
		p.SetCenterX(x)
	}
	h.lastX, h.lastY = x, y

	ctl := e.Controller(0)
	if ctl.Down(core.CommandLeft) {
		p.MoveX(-PaddleSpeed)
	} else if ctl.Down(core.CommandRight) {
		p.MoveX(PaddleSpeed)
	}

	if p.Left() < PipeSize {
		p.SetLeft(PipeSize)
	}
	if p.Right() > e.Right()-PipeSize {
		p.SetRight(e.Right() - PipeSize)
	}
}
