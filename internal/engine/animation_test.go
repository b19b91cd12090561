package engine

import (
	"image"
	"testing"
)

func TestAnimationWrapSequence(t *testing.T) {
	a := image.NewRGBA(image.Rect(0, 0, 1, 1))
	b := image.NewRGBA(image.Rect(0, 0, 2, 2))
	anim := NewAnimation(Frame{Image: a, Duration: 1}, Frame{Image: b, Duration: 2})

	expected := []struct {
		img    image.Image
		looped bool
	}{
		{b, false},
		{b, false},
		{a, true},
		{b, false},
	}

	for i, want := range expected {
		looped := anim.Update()
		if anim.Image() != want.img || looped != want.looped {
			t.Errorf("Update() #%d = (frame %d, %v), expected looped %v", i+1, anim.FrameIndex(), looped, want.looped)
		}
	}
}

func TestAnimationZeroDurationHolds(t *testing.T) {
	anim := NewAnimation(Frame{Duration: 0}, Frame{Duration: 1})
	for i := 0; i < 10; i++ {
		if anim.Update() {
			t.Fatalf("Update() reported a loop on a held frame")
		}
	}
	if anim.FrameIndex() != 0 {
		t.Errorf("FrameIndex() = %d, expected 0", anim.FrameIndex())
	}
}

func TestAnimationSetFrameIndex(t *testing.T) {
	anim := NewAnimation(Frame{Duration: 3}, Frame{Duration: 3})
	anim.Update()

	if !anim.SetFrameIndex(1) {
		t.Fatalf("SetFrameIndex(1) = false, expected true")
	}
	if anim.SetFrameIndex(2) || anim.SetFrameIndex(-1) {
		t.Errorf("SetFrameIndex() accepted an out-of-range index")
	}
	if anim.FrameIndex() != 1 {
		t.Errorf("FrameIndex() = %d, expected 1", anim.FrameIndex())
	}

	// The timer restarts on the new frame.
	anim.Update()
	anim.Update()
	if anim.FrameIndex() != 1 {
		t.Errorf("FrameIndex() = %d after two ticks, expected 1", anim.FrameIndex())
	}
	if !anim.Update() {
		t.Errorf("Update() = false on the third tick of the last frame, expected true")
	}
}

func TestAnimationEmpty(t *testing.T) {
	anim := NewAnimation()
	if anim.Len() != 1 || anim.Image() != nil || anim.Width() != 0 {
		t.Errorf("empty animation = len %d, image %v, width %d", anim.Len(), anim.Image(), anim.Width())
	}
	if anim.Update() {
		t.Errorf("Update() = true on an empty animation")
	}
}

func TestEntityAnimationLoopHook(t *testing.T) {
	loops := 0
	e := NewEntity().
		SetAnimation(NewAnimation(Frame{Duration: 1}, Frame{Duration: 1})).
		SetDelegate(Funcs{AnimationLoopFunc: func(*Entity) { loops++ }})

	for i := 0; i < 6; i++ {
		e.Sync()
	}
	if loops != 3 {
		t.Errorf("loops = %d, expected 3", loops)
	}
}
