// Package bricks is a climbing demo. Coloured bricks rain down and pile up;
// the player jumps from brick to brick and wins by climbing off the top of
// the screen. A falling brick landing on the player's head ends the round.
package bricks

import (
	"fmt"
	"image/color"

	"github.com/vovakirdan/quick/internal/asset"
	"github.com/vovakirdan/quick/internal/config"
	"github.com/vovakirdan/quick/internal/core"
	"github.com/vovakirdan/quick/internal/engine"
	"github.com/vovakirdan/quick/internal/registry"
)

// Tags used to tell collision partners apart.
const (
	TagPlayer = "player"
	TagBrick  = "brick"
	TagGround = "ground"
	TagScore  = "score"
)

// Tuning, in surface pixels and ticks.
const (
	Gravity     = 0.1
	JumpSpeed   = -1.5
	MaxFall     = 2 // less than half the player's height, so landings register
	WalkSpeed   = 0.5
	FallSpeed   = 0.5 // brick fall speed before difficulty scaling
	GroundDepth = 4

	BrickMin  = 4 // smallest brick edge
	BrickVary = 4 // random extra edge length

	SpawnInterval    = 240 // ticks between extra bricks at the lowest difficulty
	SpawnMinInterval = 150
)

func init() {
	registry.Register("bricks", New)
}

// Progress is what the demo persists between runs.
type Progress struct {
	Best   int `yaml:"best"`   // most bricks landed in one round
	Wins   int `yaml:"wins"`   // rounds won by climbing out
	Rounds int `yaml:"rounds"` // rounds played
}

// Demo is the bricks demo.
type Demo struct {
	difficulty *config.DifficultyManager
}

// New creates the demo. Difficulty scales how fast bricks fall and how often
// extra ones are dropped.
func New(difficulty config.DifficultyConfig) registry.Demo {
	return &Demo{difficulty: config.NewDifficultyManager(difficulty)}
}

func (d *Demo) ID() string    { return "bricks" }
func (d *Demo) Title() string { return "Bricks" }

// Assets adds the player sprite.
func (d *Demo) Assets(lib *asset.Library) {
	lib.Add("player", asset.Pattern([]string{
		".w",
		"ww",
		"ww",
		"ww",
		"ww",
		"w.",
	}, map[rune]color.Color{'w': core.White}))
}

// FirstScene returns the factory for the opening round.
func (d *Demo) FirstScene() engine.SceneFactory {
	return func(e *engine.Engine) *engine.Scene {
		return newRound(d, e).scene
	}
}

// round is the state shared by the entities of one scene.
type round struct {
	demo     *Demo
	engine   *engine.Engine
	scene    *engine.Scene
	player   *engine.Entity
	landed   int
	won      bool
	progress Progress
}

func newRound(d *Demo, e *engine.Engine) *round {
	r := &round{demo: d, engine: e}
	e.Load(&r.progress)

	s := e.NewScene()
	s.SetColor(core.Blue)
	s.SetNext(r.next)
	r.scene = s

	ground := engine.NewEntity().
		SetColor(core.Green).
		SetSize(e.Width()*2, GroundDepth).
		SetSolid(true).
		AddTag(TagGround)
	ground.SetCenterX(e.CenterX())
	ground.SetBottom(e.Bottom())
	s.Add(ground)

	r.player = r.newPlayer(ground.Top())
	s.Add(r.player)
	s.Add(r.newBrick())
	s.Add(engine.NewEntity().SetDelegate(&spawner{round: r}))
	s.Add(r.newScore())

	e.PlayTheme("theme")
	return r
}

// next records the finished round and builds a fresh one.
func (r *round) next() *engine.Scene {
	e := r.engine
	e.StopTheme()

	r.progress.Rounds++
	r.progress.Best = max(r.progress.Best, r.landed)
	if r.won {
		r.progress.Wins++
	}
	e.Save(r.progress)
	e.Logger().Info("round over", "landed", r.landed, "won", r.won, "best", r.progress.Best)

	return newRound(r.demo, e).scene
}

// fallSpeed is the brick speed for the current number of landed bricks.
func (r *round) fallSpeed() float64 {
	return r.demo.difficulty.Speed(FallSpeed, r.landed, r.scene.Ticks())
}

func (r *round) newPlayer(floor float64) *engine.Entity {
	p := r.engine.BaseTile("player").
		SetAccelerationY(Gravity).
		SetMaxSpeedY(MaxFall).
		SetEssential(true).
		SetSolid(true).
		SetLayer(1).
		AddTag(TagPlayer)
	p.SetCenterX(r.engine.CenterX())
	p.SetBottom(floor - 1)
	p.SetDelegate(&player{round: r})
	return p
}

type player struct {
	engine.Hooks
	round   *round
	canJump bool
}

// Update handles walking and jumping. Climbing out of the top wins.
func (p *player) Update(e *engine.Entity) {
	g := p.round.engine
	ctl := g.Controller(0)

	if p.canJump && ctl.Push(core.CommandA) {
		p.canJump = false
		e.SetSpeedY(JumpSpeed)
		g.Play("jump")
	}

	switch {
	case ctl.Down(core.CommandLeft) && e.Left() > 0:
		e.SetSpeedX(-WalkSpeed)
	case ctl.Down(core.CommandRight) && e.Right() < g.Right():
		e.SetSpeedX(WalkSpeed)
	default:
		e.SetSpeedX(0)
	}

	if e.Bottom() < 0 {
		p.round.won = true
		e.Expire()
		g.Play("win")
	}
}

// OnCollision lands on tops, bumps heads and gets pushed out sideways.
// Being hit from above by a falling brick is fatal.
func (p *player) OnCollision(e, other *engine.Entity) {
	c := e.Collision(other)
	switch {
	case c.Bottom && e.SpeedY() > 0:
		e.SetSpeedY(0)
		e.SetBottom(other.Top() - 1)
		p.canJump = true
	case c.Top:
		e.Stop()
		e.SetTop(other.Bottom() + 1)
		if other.SpeedY() > 0 {
			e.Expire()
			p.round.engine.Play("lose")
		}
	case c.Left:
		e.SetLeft(other.Right() + 1)
	case c.Right:
		e.SetRight(other.Left() - 1)
	}
}

// newScore shows the bricks landed this round next to the best round.
func (r *round) newScore() *engine.Entity {
	return engine.NewText(r.scoreText()).
		SetPosition(1, 1).
		SetLayer(1).
		AddTag(TagScore).
		SetDelegate(engine.Funcs{UpdateFunc: func(e *engine.Entity) {
			e.SetText(r.scoreText())
		}})
}

func (r *round) scoreText() string {
	return fmt.Sprintf("%d best %d", r.landed, max(r.progress.Best, r.landed))
}

func (r *round) newBrick() *engine.Entity {
	e := r.engine
	w := float64(BrickMin + e.Random(BrickVary))
	h := float64(BrickMin + e.Random(BrickVary))
	shade := func() uint8 { return uint8(128 + e.Random(127)) }

	b := engine.NewEntity().
		SetColor(core.RGB(shade(), shade(), shade())).
		SetSize(w, h).
		SetSpeedY(r.fallSpeed()).
		SetMaxSpeedY(1).
		SetSolid(true).
		AddTag(TagBrick)
	b.SetLeft(float64(e.Random(int(e.Width() - w))))
	b.SetBottom(-BrickMin * 2)
	b.SetDelegate(&brick{round: r})
	return b
}

// brick falls until it comes to rest on the ground or on other bricks. A
// brick touching two supports at once, or a different one than last tick,
// settles immediately; a single support may nudge it sideways off an edge.
type brick struct {
	engine.Hooks
	round *round

	hits    int
	support *engine.Entity
}

// Update forgets the last support once a tick passes without contact.
func (b *brick) Update(*engine.Entity) {
	if b.hits == 0 {
		b.support = nil
	}
	b.hits = 0
}

func (b *brick) OnCollision(e, other *engine.Entity) {
	if e.Bottom() < 0 {
		// Piled above the screen: no room left for this one.
		e.Expire()
		return
	}
	if other.HasTag(TagPlayer) || e.SpeedY() == 0 || other.SpeedY() > 0 {
		return
	}

	c := e.Collision(other)
	g := b.round.engine
	if b.support == nil {
		g.Play("land")
	}
	b.hits++

	if b.hits > 1 || (b.support != nil && b.support != other) {
		e.Stop()
		b.settle()
		nudge(e, c)
		e.SetBottom(b.support.Top() - 1)
		g.Play("hit")
	} else {
		if c.Left || c.Right {
			nudge(e, c)
		} else {
			e.Stop()
			b.settle()
		}
		e.SetBottom(other.Top() - 1)
	}
	b.support = other
}

func nudge(e *engine.Entity, c core.Direction) {
	if c.Left {
		e.MoveX(1)
	} else if c.Right {
		e.MoveX(-1)
	}
}

// settle counts the brick as landed and drops the next one.
func (b *brick) settle() {
	r := b.round
	r.landed++
	r.scene.Add(r.newBrick())
}

// spawner drops an extra brick every few seconds, more often as the pile
// grows.
type spawner struct {
	engine.Hooks
	round *round
	wait  int
}

func (s *spawner) Update(*engine.Entity) {
	r := s.round
	s.wait++
	interval := r.demo.difficulty.Interval(SpawnInterval, SpawnMinInterval, r.landed, r.scene.Ticks())
	if s.wait >= interval {
		s.wait = 0
		r.scene.Add(r.newBrick())
	}
}
