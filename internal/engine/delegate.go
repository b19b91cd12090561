package engine

// Delegate supplies the game-specific behaviour of an Entity.
//
// Every hook receives the entity it belongs to so one delegate value can be
// shared between many entities. Embed Hooks to inherit the defaults and
// override only the hooks you need.
type Delegate interface {
	// Init runs when the entity is added to a scene.
	Init(e *Entity)

	// Update runs once per tick before physics integration.
	Update(e *Entity)

	// OnCollision runs once per tick for every solid entity overlapping e.
	OnCollision(e, other *Entity)

	// OffBoundary runs when e no longer touches its boundary rect.
	OffBoundary(e *Entity)

	// OnAnimationLoop runs when e's animation wraps to its first frame.
	OnAnimationLoop(e *Entity)
}

// Hooks is a Delegate whose hooks do nothing except OffBoundary, which
// expires the entity.
type Hooks struct{}

func (Hooks) Init(*Entity) {}
func (Hooks) Update(*Entity) {}
func (Hooks) OnCollision(*Entity, *Entity) {}
func (Hooks) OnAnimationLoop(*Entity) {}

// OffBoundary expires the entity.
func (Hooks) OffBoundary(e *Entity) {
	e.Expire()
}

// Funcs is a Delegate assembled from optional functions. Nil fields fall
// back to the Hooks behaviour.
type Funcs struct {
	InitFunc          func(e *Entity)
	UpdateFunc        func(e *Entity)
	CollisionFunc     func(e, other *Entity)
	OffBoundaryFunc   func(e *Entity)
	AnimationLoopFunc func(e *Entity)
}

func (f Funcs) Init(e *Entity) {
	if f.InitFunc != nil {
		f.InitFunc(e)
	}
}

func (f Funcs) Update(e *Entity) {
	if f.UpdateFunc != nil {
		f.UpdateFunc(e)
	}
}

func (f Funcs) OnCollision(e, other *Entity) {
	if f.CollisionFunc != nil {
		f.CollisionFunc(e, other)
	}
}

func (f Funcs) OffBoundary(e *Entity) {
	if f.OffBoundaryFunc != nil {
		f.OffBoundaryFunc(e)
		return
	}
	e.Expire()
}

func (f Funcs) OnAnimationLoop(e *Entity) {
	if f.AnimationLoopFunc != nil {
		f.AnimationLoopFunc(e)
	}
}
