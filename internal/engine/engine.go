// Package engine is the simulation kernel: entities, scenes, collision and
// the fixed-rate frame driver that ties them to input, audio, persistence
// and a render surface.
//
// Everything runs on one goroutine. A tick updates and syncs the active
// scene (or the active transition), then the paint queues filled during the
// tick are flushed onto the surface in layer order.
package engine

import (
	"context"
	"io"
	"math"
	"math/rand"
	"time"

	"github.com/charmbracelet/log"
	"gopkg.in/yaml.v3"

	"github.com/vovakirdan/quick/internal/asset"
	"github.com/vovakirdan/quick/internal/core"
	"github.com/vovakirdan/quick/internal/input"
	"github.com/vovakirdan/quick/internal/render"
)

// DefaultSlot is the persistence key used when WithStore gets an empty slot.
const DefaultSlot = "default"

// SceneFactory builds the first scene of a game.
type SceneFactory func(e *Engine) *Scene

// Option configures an Engine.
type Option func(*Engine)

// WithLogger sets the logger. The default discards everything.
func WithLogger(l *log.Logger) Option {
	return func(e *Engine) {
		if l != nil {
			e.logger = l
		}
	}
}

// WithAudio sets the sound service. The default is Silent.
func WithAudio(a Audio) Option {
	return func(e *Engine) {
		if a != nil {
			e.audio = a
		}
	}
}

// WithStore enables Save and Load against store under the given slot.
func WithStore(s Store, slot string) Option {
	return func(e *Engine) {
		e.store = s
		if slot != "" {
			e.slot = slot
		}
	}
}

// WithInput sets the input manager polled at the start of every tick.
func WithInput(m *input.Manager) Option {
	return func(e *Engine) {
		if m != nil {
			e.input = m
		}
	}
}

// WithAssets sets the image library used by BaseTile.
func WithAssets(lib *asset.Library) Option {
	return func(e *Engine) {
		if lib != nil {
			e.assets = lib
		}
	}
}

// Engine owns the active scene and everything a game reaches for while it
// runs. It is not safe for concurrent use.
type Engine struct {
	cfg    core.RuntimeConfig
	logger *log.Logger
	layers *render.Layers
	input  *input.Manager
	audio  Audio
	store  Store
	slot   string
	assets *asset.Library
	rng    *rand.Rand

	first      SceneFactory
	scene      *Scene
	transition *Entity
	everyOther bool
	ticks      int
}

// New creates an engine that will start with the scene built by first.
func New(cfg core.RuntimeConfig, first SceneFactory, opts ...Option) *Engine {
	cfg = cfg.Normalize()
	if cfg.Seed == 0 {
		cfg.Seed = time.Now().UnixNano()
	}

	e := &Engine{
		cfg: cfg,
		logger: log.NewWithOptions(io.Discard, log.Options{
			Prefix: "quick",
		}),
		layers: render.NewLayers(cfg.Layers),
		input:  input.NewManager(0),
		audio:  Silent{},
		slot:   DefaultSlot,
		assets: asset.NewLibrary(),
		rng:    rand.New(rand.NewSource(cfg.Seed)),
		first:  first,
	}
	for _, opt := range opts {
		opt(e)
	}
	return e
}

// Start builds the first scene. Calling it again is a no-op.
func (e *Engine) Start() error {
	if e.scene != nil {
		return nil
	}
	if e.first == nil {
		return ErrNoScene
	}
	s := e.first(e)
	if s == nil {
		return ErrNoScene
	}
	e.scene = s
	e.logger.Info("engine started", "title", e.cfg.Title, "width", e.cfg.Width, "height", e.cfg.Height, "seed", e.cfg.Seed)
	return nil
}

// Step runs one simulation tick without touching the surface.
//
// Input is polled first. While a transition is active only the transition
// advances; when it finishes the successor scene takes over. Otherwise the
// scene is synced and, if still alive, its own Update hook runs. A scene that
// expires installs its transition, or hands over to its successor at once if
// it has none. Audio is updated last.
func (e *Engine) Step() error {
	if err := e.Start(); err != nil {
		return err
	}

	e.everyOther = !e.everyOther
	e.input.Update()

	var err error
	switch {
	case e.transition != nil:
		e.transition.Update()
		if e.transition.Sync() {
			e.transition = nil
			err = e.swap()
		} else {
			e.layers.Paint(e.transition, e.transition.Layer())
		}

	case e.scene.Sync(e.layers):
		if t := e.scene.Transition(); t != nil {
			e.logger.Debug("transition started", "tick", e.ticks)
			e.transition = t
		} else {
			err = e.swap()
		}

	default:
		e.scene.Update()
	}

	e.audio.Update()
	e.ticks++
	return err
}

func (e *Engine) swap() error {
	next := e.scene.Next()
	if next == nil {
		e.logger.Error("scene expired without a successor", "tick", e.ticks)
		return ErrNoSuccessor
	}
	e.scene = next
	e.logger.Debug("scene swapped", "tick", e.ticks)
	return nil
}

// Flush draws everything painted since the last flush onto dst and clears
// the paint queues. The surface is never cleared, so anything not repainted
// keeps its previous pixels.
func (e *Engine) Flush(dst render.Surface) {
	e.layers.Flush(dst)
}

// Tick runs Step and then Flush. The paint queues are flushed even if Step
// fails.
func (e *Engine) Tick(dst render.Surface) error {
	err := e.Step()
	e.Flush(dst)
	return err
}

// Run ticks at the configured frame rate until ctx is done or a tick fails.
// present is called after every flush, for hosts that need to push the
// surface to a screen. Cancelling ctx is not an error.
func (e *Engine) Run(ctx context.Context, dst render.Surface, present func()) error {
	if err := e.Start(); err != nil {
		return err
	}

	timer := time.NewTimer(0)
	defer timer.Stop()

	for {
		select {
		case <-ctx.Done():
			return nil
		case <-timer.C:
		}

		start := time.Now()
		if err := e.Tick(dst); err != nil {
			return err
		}
		if present != nil {
			present()
		}
		timer.Reset(e.NextDelay(time.Since(start)))
	}
}

// NextDelay returns how long to wait before the next tick when the current
// one took elapsed.
func (e *Engine) NextDelay(elapsed time.Duration) time.Duration {
	return max(e.cfg.FrameTime-elapsed, 0)
}

// Config returns the normalized runtime configuration.
func (e *Engine) Config() core.RuntimeConfig { return e.cfg }

// Width returns the surface width.
func (e *Engine) Width() float64 { return float64(e.cfg.Width) }

// Height returns the surface height.
func (e *Engine) Height() float64 { return float64(e.cfg.Height) }

// Right returns the last column of the surface.
func (e *Engine) Right() float64 { return e.Width() - 1 }

// Bottom returns the last row of the surface.
func (e *Engine) Bottom() float64 { return e.Height() - 1 }

// CenterX returns the horizontal center of the surface.
func (e *Engine) CenterX() float64 { return math.Floor(e.Width() / 2) }

// CenterY returns the vertical center of the surface.
func (e *Engine) CenterY() float64 { return math.Floor(e.Height() / 2) }

// Boundary returns the surface area.
func (e *Engine) Boundary() core.Rect {
	return core.NewRect(0, 0, e.Width(), e.Height())
}

// FrameTime returns the target interval between ticks.
func (e *Engine) FrameTime() time.Duration { return e.cfg.FrameTime }

// EveryOther flips on every tick, for effects that run at half rate.
func (e *Engine) EveryOther() bool { return e.everyOther }

// Ticks returns the number of completed ticks.
func (e *Engine) Ticks() int { return e.ticks }

// Scene returns the active scene, or nil before Start.
func (e *Engine) Scene() *Scene { return e.scene }

// Transitioning reports whether a transition effect is playing.
func (e *Engine) Transitioning() bool { return e.transition != nil }

// Random returns a uniform integer in [0, ceil].
func (e *Engine) Random(ceil int) int {
	if ceil <= 0 {
		return 0
	}
	return e.rng.Intn(ceil + 1)
}

// Logger returns the engine logger.
func (e *Engine) Logger() *log.Logger { return e.logger }

// Input returns the input manager polled every tick.
func (e *Engine) Input() *input.Manager { return e.input }

// Assets returns the image library used by BaseTile.
func (e *Engine) Assets() *asset.Library { return e.assets }

// Layers returns the paint queues flushed after every tick.
func (e *Engine) Layers() *render.Layers { return e.layers }

// Controller returns controller id, see input.Manager.Controller.
func (e *Engine) Controller(id int) *input.Controller {
	return e.input.Controller(id)
}

// Pointer returns pointer id, see input.Manager.Pointer.
func (e *Engine) Pointer(id int) *input.Pointer {
	return e.input.Pointer(id)
}

// Play queues a sound effect.
func (e *Engine) Play(id string) {
	e.logger.Debug("play", "sound", id)
	e.audio.Play(id)
}

// PlayTheme starts a looping theme, fading out the current one first.
func (e *Engine) PlayTheme(id string) {
	e.logger.Debug("theme", "sound", id)
	e.audio.PlayTheme(id)
}

// StopTheme stops the theme immediately.
func (e *Engine) StopTheme() { e.audio.StopTheme() }

// Mute toggles all sound.
func (e *Engine) Mute() { e.audio.Mute() }

// FadeOut fades the theme out.
func (e *Engine) FadeOut() { e.audio.FadeOut() }

// Save stores v as YAML in the engine's slot; nil clears the slot.
// Failures are logged and otherwise ignored.
func (e *Engine) Save(v any) {
	if e.store == nil {
		return
	}
	if v == nil {
		if err := e.store.Delete(e.slot); err != nil {
			e.logger.Warn("cannot clear save", "slot", e.slot, "error", err)
		}
		return
	}

	data, err := yaml.Marshal(v)
	if err != nil {
		e.logger.Warn("cannot encode save", "slot", e.slot, "error", err)
		return
	}
	if err := e.store.Put(e.slot, data); err != nil {
		e.logger.Warn("cannot write save", "slot", e.slot, "error", err)
	}
}

// Load decodes the engine's slot into out and reports whether it succeeded.
// A missing save or any failure returns false and leaves out untouched as
// far as decoding allows.
func (e *Engine) Load(out any) bool {
	if e.store == nil {
		return false
	}
	data, ok, err := e.store.Get(e.slot)
	if err != nil {
		e.logger.Warn("cannot read save", "slot", e.slot, "error", err)
		return false
	}
	if !ok {
		return false
	}
	if err := yaml.Unmarshal(data, out); err != nil {
		e.logger.Warn("cannot decode save", "slot", e.slot, "error", err)
		return false
	}
	return true
}

// NewScene creates a scene the size of the surface whose Build falls back
// to BaseTile.
func (e *Engine) NewScene() *Scene {
	return NewScene(e.Width(), e.Height()).SetTiles(e.BaseTile)
}

// NewWipe creates the built-in wipe transition sized to the surface.
func (e *Engine) NewWipe() *Entity {
	return NewWipe(e.Width(), e.Height())
}

// BaseTile creates an entity showing the library image id. Unknown ids give
// an entity without image or size.
func (e *Engine) BaseTile(id string) *Entity {
	t := NewEntity()
	if img := e.assets.Image(id); img != nil {
		t.SetImage(img)
	}
	return t
}
