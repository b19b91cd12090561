package engine

import (
	"github.com/tanema/gween"
	"github.com/tanema/gween/ease"

	"github.com/vovakirdan/quick/internal/core"
)

// WipeTicks is the length of the built-in wipe transition.
const WipeTicks = 32

// NewWipe returns a transition that grows a black curtain from the left edge
// by width/WipeTicks per tick until it is wider than width. The previous
// frame is left underneath, so the old scene is covered progressively.
func NewWipe(width, height float64) *Entity {
	step := width / WipeTicks
	tween := gween.New(0, float32(width+step), WipeTicks+1, ease.Linear)
	e := NewEntity().
		SetColor(core.Black).
		SetSize(0, height)

	e.SetDelegate(Funcs{
		UpdateFunc: func(e *Entity) {
			if e.Width() > width {
				e.Expire()
				return
			}
			w, _ := tween.Update(1)
			e.SetWidth(float64(w))
		},
	})
	return e
}
