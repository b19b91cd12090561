package engine

import (
	"testing"

	"github.com/vovakirdan/quick/internal/core"
	"github.com/vovakirdan/quick/internal/render"
)

func TestTextSize(t *testing.T) {
	tests := []struct {
		text          string
		width, height float64
	}{
		{"12", 14, 13},
		{"ab\nc", 14, 26},
		{"", 0, 0},
	}

	for _, tc := range tests {
		e := NewText(tc.text)
		if e.Text() != tc.text {
			t.Errorf("Text() = %q, expected %q", e.Text(), tc.text)
		}
		if e.Width() != tc.width || e.Height() != tc.height {
			t.Errorf("NewText(%q) size = %vx%v, expected %vx%v", tc.text, e.Width(), e.Height(), tc.width, tc.height)
		}
	}
}

func TestTextRender(t *testing.T) {
	e := NewText("8").SetPosition(2, 1)
	s := render.NewCellSurface(12, 16)
	e.Render(s)

	painted := 0
	for y := range s.Height() {
		for x := range s.Width() {
			c := s.Cell(x, y)
			if !c.Set {
				continue
			}
			painted++
			if x < 2 || x >= 9 || y < 1 || y >= 14 {
				t.Errorf("glyph pixel at (%d, %d) outside the entity", x, y)
			}
			if c.Color != core.White {
				t.Errorf("Cell(%d, %d) = %v, expected white", x, y, c.Color)
			}
		}
	}
	if painted == 0 {
		t.Fatalf("Render() painted nothing")
	}

	e.SetTextColor(core.Red)
	s.Clear()
	e.Render(s)
	for y := range s.Height() {
		for x := range s.Width() {
			if c := s.Cell(x, y); c.Set && c.Color != core.Red {
				t.Errorf("Cell(%d, %d) = %v after SetTextColor, expected red", x, y, c.Color)
			}
		}
	}
}

func TestSetTextUnchangedKeepsImage(t *testing.T) {
	e := NewText("score")
	anim := e.Animation()
	e.SetText("score")
	if e.Animation() != anim {
		t.Errorf("SetText() with the same text re-rendered the image")
	}
	e.SetText("score!")
	if e.Animation() == anim || e.Width() != 6*7 {
		t.Errorf("SetText(score!) width = %v, expected a new 42 pixel image", e.Width())
	}
}
