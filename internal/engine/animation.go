package engine

import "image"

// Frame is one image of an Animation shown for Duration ticks.
// A Duration of 0 keeps the frame forever.
type Frame struct {
	Image    image.Image
	Duration int
}

// Animation is an ordered list of frames advanced once per tick.
type Animation struct {
	frames []Frame
	index  int
	tick   int
}

// NewAnimation creates an animation positioned on its first frame.
func NewAnimation(frames ...Frame) *Animation {
	a := &Animation{}
	a.SetFrames(frames...)
	return a
}

// SetFrames replaces the frames and rewinds to the first one. An empty list
// becomes a single static frame without an image.
func (a *Animation) SetFrames(frames ...Frame) {
	if len(frames) == 0 {
		frames = []Frame{{}}
	}
	a.frames = frames
	a.index = 0
	a.tick = 0
}

// Update advances the animation by one tick and reports whether it wrapped
// from the last frame back to the first.
func (a *Animation) Update() bool {
	f := a.frames[a.index]
	if f.Duration == 0 {
		return false
	}

	// A frame is shown for exactly Duration updates: the switch happens on
	// the update that reaches it, not the one after.
	a.tick++
	if a.tick < f.Duration {
		return false
	}

	next := a.index + 1
	looped := next == len(a.frames)
	if looped {
		next = 0
	}
	a.SetFrameIndex(next)
	return looped
}

// SetFrameIndex jumps to frame i and restarts its timer.
// Out-of-range indexes are ignored and reported as false.
func (a *Animation) SetFrameIndex(i int) bool {
	if i < 0 || i >= len(a.frames) {
		return false
	}
	a.index = i
	a.tick = 0
	return true
}

// FrameIndex returns the index of the current frame.
func (a *Animation) FrameIndex() int {
	return a.index
}

// Len returns the number of frames.
func (a *Animation) Len() int {
	return len(a.frames)
}

// Image returns the current frame's image, which may be nil.
func (a *Animation) Image() image.Image {
	return a.frames[a.index].Image
}

// Width returns the width of the current frame's image.
func (a *Animation) Width() int {
	if img := a.Image(); img != nil {
		return img.Bounds().Dx()
	}
	return 0
}

// Height returns the height of the current frame's image.
func (a *Animation) Height() int {
	if img := a.Image(); img != nil {
		return img.Bounds().Dy()
	}
	return 0
}
