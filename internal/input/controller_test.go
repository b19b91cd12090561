package input

import (
	"testing"

	"github.com/vovakirdan/quick/internal/core"
)

func TestControllerDownAndPush(t *testing.T) {
	script := NewScript(
		core.NewCommandSet(core.CommandA),
		core.NewCommandSet(core.CommandA),
		core.NewCommandSet(),
		core.NewCommandSet(core.CommandA),
	)
	c := NewController(script)

	tests := []struct {
		down, push bool
	}{
		{true, true},
		{true, false},
		{false, false},
		{true, true},
	}

	for i, tc := range tests {
		c.Update()
		script.Poll()
		if got := c.Down(core.CommandA); got != tc.down {
			t.Errorf("tick %d: Down() = %v, expected %v", i, got, tc.down)
		}
		if got := c.Push(core.CommandA); got != tc.push {
			t.Errorf("tick %d: Push() = %v, expected %v", i, got, tc.push)
		}
	}
}

func TestControllerWithoutDevice(t *testing.T) {
	c := NewController(nil)
	c.Update()

	if c.Down(core.CommandUp) || c.Push(core.CommandUp) {
		t.Error("controller without device reported an active command")
	}
	if c.HasDevice() {
		t.Error("HasDevice() = true, expected false")
	}
}

func TestControllerDidPerform(t *testing.T) {
	script, err := ParseScript("0:Up 2:Up 4:Down 6:A")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	c := NewController(script)

	for !script.Done() {
		c.Update()
		script.Poll()
	}

	if c.DidPerform(core.CommandDown, core.CommandUp) {
		t.Error("DidPerform(Down, Up) = true, expected false")
	}
	if !c.DidPerform(core.CommandUp, core.CommandDown, core.CommandA) {
		t.Error("DidPerform(Up, Down, A) = false, expected true")
	}
	// A match clears the history.
	if c.DidPerform(core.CommandA) {
		t.Error("DidPerform(A) after a match = true, expected false")
	}
}

func TestControllerTolerance(t *testing.T) {
	script, err := ParseScript("0:Up 5:Down")
	if err != nil {
		t.Fatalf("ParseScript() failed: %v", err)
	}
	c := NewController(script)
	c.Tolerance = 2

	for !script.Done() {
		c.Update()
		script.Poll()
	}

	seq := c.Sequence()
	if len(seq) != 1 || seq[0] != core.CommandDown {
		t.Errorf("Sequence() = %v, expected [Down]", seq)
	}
}

func TestPointer(t *testing.T) {
	var m Mouse
	p := NewPointer(&m)

	m.Set(true, 3.7, 9.2)
	p.Update()
	if !p.Down() || !p.Push() {
		t.Errorf("first press: Down() = %v, Push() = %v, expected true, true", p.Down(), p.Push())
	}
	x, y := p.Position()
	if x != 3 || y != 9 {
		t.Errorf("Position() = (%v, %v), expected (3, 9)", x, y)
	}

	m.Move(4, 4)
	p.Update()
	if !p.Down() || p.Push() {
		t.Errorf("held: Down() = %v, Push() = %v, expected true, false", p.Down(), p.Push())
	}

	m.Set(false, 4, 4)
	p.Update()
	if p.Down() {
		t.Error("released: Down() = true, expected false")
	}
}
