package engine

import (
	"github.com/vovakirdan/quick/internal/core"
	"github.com/vovakirdan/quick/internal/render"
)

// Painter queues renderables for the end-of-frame flush.
// *render.Layers is the usual implementation.
type Painter interface {
	Paint(r render.Renderable, layer int)
}

// TileFactory creates the entity for one tile map cell. Returning nil skips
// the cell.
type TileFactory func(id string) *Entity

// Scene is an entity that owns and simulates other entities.
//
// Entities added during a tick wait in a pending queue and join the live
// list at the end of that tick, so they are first updated, collided and
// painted on the next one.
type Scene struct {
	Entity

	live    []*Entity
	pending []*Entity

	tiles      TileFactory
	next       func() *Scene
	transition func() *Entity
}

// NewScene creates an empty scene covering a w x h area.
func NewScene(w, h float64) *Scene {
	s := &Scene{}
	s.expiration = NeverExpire
	s.SetSize(w, h)
	return s
}

// Add queues entities for the next tick. Each entity is attached to the
// scene, its Init hook runs, and its current velocity is subtracted from its
// position once to cancel the movement its first Sync will apply.
func (s *Scene) Add(entities ...*Entity) {
	for _, e := range entities {
		if e == nil {
			continue
		}
		e.scene = s
		e.hooks().Init(e)
		s.pending = append(s.pending, e)
		e.rect.Move(-e.motion.SpeedX, -e.motion.SpeedY)
	}
}

// Sync runs one tick of the scene:
//
//  1. paint the scene itself
//  2. update and sync every live entity in order; expired ones are dropped
//     (expiring the scene if they were essential), the rest are painted and
//     solid ones collected
//  3. collide the solids pairwise
//  4. promote pending entities to live
//  5. sync the scene's own entity state
//
// It reports whether the scene is expired.
func (s *Scene) Sync(p Painter) bool {
	p.Paint(s, s.layer)

	survivors := make([]*Entity, 0, len(s.live)+len(s.pending))
	var solids []*Entity
	for _, e := range s.live {
		e.Update()
		if e.Sync() {
			if e.essential {
				s.Expire()
			}
			continue
		}
		if e.solid {
			solids = append(solids, e)
		}
		survivors = append(survivors, e)
		p.Paint(e, e.layer)
	}

	Collide(solids)

	s.live = append(survivors, s.pending...)
	clear(s.pending)
	s.pending = s.pending[:0]

	return s.Entity.Sync()
}

// Entities returns the live entities in update order.
func (s *Scene) Entities() []*Entity {
	return append([]*Entity(nil), s.live...)
}

// Len returns the number of live entities.
func (s *Scene) Len() int {
	return len(s.live)
}

// Pending returns the number of entities waiting for the next tick.
func (s *Scene) Pending() int {
	return len(s.pending)
}

// Tagged returns the live entities carrying tag.
func (s *Scene) Tagged(tag string) []*Entity {
	var out []*Entity
	for _, e := range s.live {
		if e.HasTag(tag) {
			out = append(out, e)
		}
	}
	return out
}

// Boundary returns the scene area anchored at the origin.
func (s *Scene) Boundary() core.Rect {
	return core.NewRect(0, 0, s.rect.Width, s.rect.Height)
}

// SetTiles sets the factory Build uses when none is given.
func (s *Scene) SetTiles(f TileFactory) *Scene {
	s.tiles = f
	return s
}

// Build adds one entity per non-empty cell of grid. Cell (row, col) is
// placed at (col*cellW, row*cellH); a cell size of 0 uses the tile's own
// size on that axis. A nil factory uses the scene's default tiles. Build
// returns how many entities were added.
func (s *Scene) Build(grid [][]string, tiles TileFactory, cellW, cellH float64) int {
	if tiles == nil {
		tiles = s.tiles
	}
	if tiles == nil {
		return 0
	}

	n := 0
	for row, line := range grid {
		for col, id := range line {
			if id == "" {
				continue
			}
			tile := tiles(id)
			if tile == nil {
				continue
			}
			w, h := cellW, cellH
			if w == 0 {
				w = tile.Width()
			}
			if h == 0 {
				h = tile.Height()
			}
			tile.SetTop(float64(row) * h)
			tile.SetLeft(float64(col) * w)
			s.Add(tile)
			n++
		}
	}
	return n
}

// Grid splits rows of text into a tile grid, one cell per rune. Spaces and
// dots become empty cells.
func Grid(rows ...string) [][]string {
	grid := make([][]string, len(rows))
	for i, row := range rows {
		for _, r := range row {
			id := string(r)
			if r == ' ' || r == '.' {
				id = ""
			}
			grid[i] = append(grid[i], id)
		}
	}
	return grid
}

// SetNext sets the factory for the scene that follows this one.
func (s *Scene) SetNext(f func() *Scene) *Scene {
	s.next = f
	return s
}

// Next builds the successor scene, or returns nil if none is configured.
func (s *Scene) Next() *Scene {
	if s.next == nil {
		return nil
	}
	return s.next()
}

// SetTransition sets the factory for the effect played after this scene
// expires.
func (s *Scene) SetTransition(f func() *Entity) *Scene {
	s.transition = f
	return s
}

// Transition builds the transition effect, or returns nil for an immediate
// swap.
func (s *Scene) Transition() *Entity {
	if s.transition == nil {
		return nil
	}
	return s.transition()
}
