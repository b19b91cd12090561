package bricks

import (
	"bytes"
	"path/filepath"
	"slices"
	"testing"

	"github.com/vovakirdan/quick/internal/asset"
	"github.com/vovakirdan/quick/internal/config"
	"github.com/vovakirdan/quick/internal/core"
	"github.com/vovakirdan/quick/internal/engine"
	"github.com/vovakirdan/quick/internal/input"
	"github.com/vovakirdan/quick/internal/registry"
	"github.com/vovakirdan/quick/internal/render"
	"github.com/vovakirdan/quick/internal/storage"
)

type recordedSounds struct {
	engine.Silent
	played []string
	theme  string
}

func (r *recordedSounds) Play(id string)      { r.played = append(r.played, id) }
func (r *recordedSounds) PlayTheme(id string) { r.theme = id }
func (r *recordedSounds) StopTheme()          { r.theme = "" }

func testDemo() *Demo {
	return New(config.Default().Difficulty).(*Demo)
}

func newEngine(t *testing.T, script string, opts ...engine.Option) *engine.Engine {
	t.Helper()

	demo := testDemo()
	lib := asset.NewLibrary()
	demo.Assets(lib)

	mgr := input.NewManager(0)
	if script != "" {
		s, err := input.ParseScript(script)
		if err != nil {
			t.Fatalf("ParseScript() = %v", err)
		}
		mgr.AddDevice(s)
	}

	cfg := core.RuntimeConfig{Width: 80, Height: 48, Layers: 2, Seed: 11}
	opts = append([]engine.Option{engine.WithAssets(lib), engine.WithInput(mgr)}, opts...)
	return engine.New(cfg, demo.FirstScene(), opts...)
}

// bareRound returns a round with an empty scene, for placing entities by
// hand.
func bareRound(t *testing.T, opts ...engine.Option) *round {
	t.Helper()
	e := engine.New(core.RuntimeConfig{Width: 80, Height: 48, Seed: 3}, nil, opts...)
	return &round{demo: testDemo(), engine: e, scene: e.NewScene()}
}

func syncUntil(s *engine.Scene, limit int, done func() bool) {
	layers := render.NewLayers(1)
	for i := 0; i < limit && !done(); i++ {
		s.Sync(layers)
		layers.Clear()
	}
}

func TestRegistered(t *testing.T) {
	demo, err := registry.Create("bricks", config.Default().Difficulty)
	if err != nil {
		t.Fatalf("Create() = %v", err)
	}
	if demo.ID() != "bricks" || demo.Title() != "Bricks" {
		t.Errorf("ID(), Title() = %q, %q, expected bricks, Bricks", demo.ID(), demo.Title())
	}
}

func TestRoundLayout(t *testing.T) {
	sounds := &recordedSounds{}
	e := newEngine(t, "", engine.WithAudio(sounds))
	if err := e.Step(); err != nil {
		t.Fatalf("Step() = %v", err)
	}
	s := e.Scene()

	if s.Len() != 5 {
		t.Errorf("Len() = %d, expected 5 (ground, player, brick, spawner, score)", s.Len())
	}
	if got := s.Tagged(TagScore)[0].Text(); got != "0 best 0" {
		t.Errorf("score Text() = %q, expected %q", got, "0 best 0")
	}
	if sounds.theme != "theme" {
		t.Errorf("theme = %q, expected theme", sounds.theme)
	}

	ground := s.Tagged(TagGround)[0]
	if ground.Bottom() != 47 || ground.Width() != 160 {
		t.Errorf("ground bottom/width = %v/%v, expected 47/160", ground.Bottom(), ground.Width())
	}

	p := s.Tagged(TagPlayer)[0]
	if p.Width() != 2 || p.Height() != 6 {
		t.Errorf("player size = %vx%v, expected 2x6", p.Width(), p.Height())
	}
	if p.Bottom() >= ground.Top() {
		t.Errorf("player Bottom() = %v, expected above ground top %v", p.Bottom(), ground.Top())
	}

	b := s.Tagged(TagBrick)[0]
	if b.Bottom() >= 0 {
		t.Errorf("brick Bottom() = %v, expected above the screen", b.Bottom())
	}
	if b.Width() < BrickMin || b.Width() > BrickMin+BrickVary {
		t.Errorf("brick Width() = %v, expected within [%d, %d]", b.Width(), BrickMin, BrickMin+BrickVary)
	}
}

func TestPlayerJumps(t *testing.T) {
	sounds := &recordedSounds{}
	e := newEngine(t, "20:A", engine.WithAudio(sounds))
	for i := 0; i < 21; i++ {
		if err := e.Step(); err != nil {
			t.Fatalf("Step() = %v", err)
		}
	}

	p := e.Scene().Tagged(TagPlayer)[0]
	if p.SpeedY() >= 0 {
		t.Errorf("SpeedY() = %v, expected upwards after jumping", p.SpeedY())
	}
	if !slices.Contains(sounds.played, "jump") {
		t.Errorf("played = %v, expected jump", sounds.played)
	}
}

func TestBrickSettlesOnGround(t *testing.T) {
	sounds := &recordedSounds{}
	r := bareRound(t, engine.WithAudio(sounds))

	ground := engine.NewEntity().SetPosition(0, 40).SetSize(80, 4).SetSolid(true)
	b := engine.NewEntity().SetPosition(10, 30).SetSize(4, 4).SetSpeedY(1).SetSolid(true).AddTag(TagBrick)
	b.SetDelegate(&brick{round: r})
	r.scene.Add(ground, b)

	syncUntil(r.scene, 30, func() bool { return b.SpeedY() == 0 })

	if b.SpeedY() != 0 {
		t.Fatalf("SpeedY() = %v, expected the brick to stop", b.SpeedY())
	}
	if b.Bottom() != 39 {
		t.Errorf("Bottom() = %v, expected 39", b.Bottom())
	}
	if r.landed != 1 {
		t.Errorf("landed = %d, expected 1", r.landed)
	}
	if got := len(r.scene.Tagged(TagBrick)); got != 2 {
		t.Errorf("bricks = %d, expected a new one dropped", got)
	}
	if !slices.Contains(sounds.played, "land") {
		t.Errorf("played = %v, expected land", sounds.played)
	}
}

func TestBrickSlidesOffEdge(t *testing.T) {
	r := bareRound(t)

	base := engine.NewEntity().SetPosition(20, 40).SetSize(8, 4).SetSolid(true)
	// Centre hangs past the base's left edge.
	b := engine.NewEntity().SetPosition(15, 30).SetSize(6, 4).SetSpeedY(1).SetSolid(true)
	b.SetDelegate(&brick{round: r})
	r.scene.Add(base, b)

	syncUntil(r.scene, 15, func() bool { return b.X() < 15 })

	if b.X() >= 15 {
		t.Errorf("X() = %v, expected nudged left of 15", b.X())
	}
	if r.landed != 0 {
		t.Errorf("landed = %d, expected the brick still sliding", r.landed)
	}
}

func TestPlayerCrushedByFallingBrick(t *testing.T) {
	sounds := &recordedSounds{}
	r := bareRound(t, engine.WithAudio(sounds))

	p := engine.NewEntity().SetPosition(10, 20).SetSize(2, 6).SetSolid(true).AddTag(TagPlayer)
	p.SetDelegate(&player{round: r})
	b := engine.NewEntity().SetPosition(8, 10).SetSize(6, 4).SetSpeedY(1).SetSolid(true)
	b.SetDelegate(&brick{round: r})
	r.scene.Add(p, b)

	syncUntil(r.scene, 20, p.Expired)

	if !p.Expired() {
		t.Fatalf("Expired() = false, expected the player crushed")
	}
	if !slices.Contains(sounds.played, "lose") {
		t.Errorf("played = %v, expected lose", sounds.played)
	}
	if r.won {
		t.Errorf("won = true, expected false")
	}
}

func TestPlayerWinsOffTheTop(t *testing.T) {
	sounds := &recordedSounds{}
	r := bareRound(t, engine.WithAudio(sounds))

	p := engine.NewEntity().SetPosition(10, -10).SetSize(2, 6).SetEssential(true).AddTag(TagPlayer)
	p.SetDelegate(&player{round: r})
	r.scene.Add(p)

	syncUntil(r.scene, 3, r.scene.Expired)

	if !r.won {
		t.Errorf("won = false, expected true")
	}
	if !r.scene.Expired() {
		t.Errorf("scene Expired() = false, expected the round to end")
	}
	if !slices.Contains(sounds.played, "win") {
		t.Errorf("played = %v, expected win", sounds.played)
	}
}

func TestProgressPersists(t *testing.T) {
	store, err := storage.Open(filepath.Join(t.TempDir(), "quick.db"))
	if err != nil {
		t.Fatalf("Open() = %v", err)
	}
	defer store.Close()

	e := newEngine(t, "", engine.WithStore(store, "bricks"))

	r := newRound(testDemo(), e)
	r.landed = 3
	r.won = true
	r.next()
	r2 := newRound(testDemo(), e)
	r2.landed = 1
	r2.next()

	var got Progress
	if !e.Load(&got) {
		t.Fatalf("Load() = false, expected a saved progress")
	}
	expected := Progress{Best: 3, Wins: 1, Rounds: 2}
	if got != expected {
		t.Errorf("Load() = %+v, expected %+v", got, expected)
	}
}

func TestDeterministicReplay(t *testing.T) {
	run := func() []byte {
		e := newEngine(t, "5-40:Left 60:A 80-120:Right 130:A")
		surface := render.NewImageSurface(80, 48)
		for i := 0; i < 200; i++ {
			if err := e.Tick(surface); err != nil {
				t.Fatalf("Tick() = %v", err)
			}
		}
		return surface.Image().Pix
	}

	if a, b := run(), run(); !bytes.Equal(a, b) {
		t.Errorf("two runs with the same seed and script rendered differently")
	}
}

func TestScoreFollowsLandedBricks(t *testing.T) {
	r := bareRound(t)
	r.progress.Best = 2
	score := r.newScore()
	r.scene.Add(score)

	if score.Text() != "0 best 2" {
		t.Errorf("Text() = %q, expected %q", score.Text(), "0 best 2")
	}
	if score.Width() != 8*7 || score.Height() != 13 {
		t.Errorf("score size = %vx%v, expected 56x13", score.Width(), score.Height())
	}

	r.landed = 3
	ticks := 0
	syncUntil(r.scene, 3, func() bool { ticks++; return ticks > 2 })
	if score.Text() != "3 best 3" {
		t.Errorf("Text() after landing = %q, expected %q", score.Text(), "3 best 3")
	}
}
