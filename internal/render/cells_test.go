package render

import (
	"image"
	"image/color"
	"testing"
)

func TestCellSurfaceFillRect(t *testing.T) {
	s := NewCellSurface(6, 3)
	s.FillRect(1, 1, 3, 5, color.White)

	expected := "      \n ###  \n ###  "
	if got := s.String(); got != expected {
		t.Errorf("String() = %q, expected %q", got, expected)
	}
}

func TestCellSurfaceTransparentIgnored(t *testing.T) {
	s := NewCellSurface(2, 2)
	s.FillRect(0, 0, 2, 2, color.Transparent)

	if s.Cell(0, 0).Set {
		t.Error("transparent fill marked a cell as set")
	}
}

func TestCellSurfaceDrawImage(t *testing.T) {
	src := image.NewRGBA(image.Rect(0, 0, 2, 2))
	red := color.RGBA{R: 255, A: 255}
	src.SetRGBA(0, 0, red)
	// (1,0), (0,1), (1,1) stay transparent.

	s := NewCellSurface(4, 4)
	s.DrawImage(src, 0, 0, 4, 4)

	tests := []struct {
		x, y     int
		expected bool
	}{
		{0, 0, true},
		{1, 1, true},
		{2, 0, false},
		{0, 2, false},
		{3, 3, false},
	}

	for _, tc := range tests {
		c := s.Cell(tc.x, tc.y)
		if c.Set != tc.expected {
			t.Errorf("Cell(%d, %d).Set = %v, expected %v", tc.x, tc.y, c.Set, tc.expected)
		}
		if c.Set && c.Color != red {
			t.Errorf("Cell(%d, %d).Color = %v, expected %v", tc.x, tc.y, c.Color, red)
		}
	}
}

func TestCellSurfaceResize(t *testing.T) {
	s := NewCellSurface(3, 3)
	s.Set(1, 1, color.White)
	s.Set(2, 2, color.White)

	s.Resize(2, 4)

	if s.Width() != 2 || s.Height() != 4 {
		t.Fatalf("size = %dx%d, expected 2x4", s.Width(), s.Height())
	}
	if !s.Cell(1, 1).Set {
		t.Error("Resize() lost content inside the new bounds")
	}
	if s.Cell(2, 2).Set {
		t.Error("Cell outside bounds reported as set")
	}
}

func TestCellSurfaceClear(t *testing.T) {
	s := NewCellSurface(2, 1)
	s.FillRect(0, 0, 2, 1, color.White)
	s.Clear()

	if got := s.String(); got != "  " {
		t.Errorf("String() after Clear = %q, expected %q", got, "  ")
	}
}
