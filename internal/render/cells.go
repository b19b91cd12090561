package render

import (
	"image"
	"image/color"
	"strings"
)

// Cell is one pixel of a CellSurface.
type Cell struct {
	Color color.RGBA
	Set   bool // false until something paints the cell
}

// CellSurface is a low-resolution pixel grid for terminal display.
// It decouples the engine from the terminal: the engine paints pixels while
// the platform decides how to turn them into characters.
type CellSurface struct {
	width  int
	height int
	cells  [][]Cell
}

// NewCellSurface creates an empty grid with the given dimensions.
func NewCellSurface(width, height int) *CellSurface {
	s := &CellSurface{
		width:  width,
		height: height,
	}
	s.allocate()
	return s
}

// allocate creates the underlying cell storage.
func (s *CellSurface) allocate() {
	s.cells = make([][]Cell, s.height)
	for y := range s.cells {
		s.cells[y] = make([]Cell, s.width)
	}
}

// Width returns the grid width in pixels.
func (s *CellSurface) Width() int {
	return s.width
}

// Height returns the grid height in pixels.
func (s *CellSurface) Height() int {
	return s.height
}

// Resize changes the dimensions, preserving content where possible.
func (s *CellSurface) Resize(width, height int) {
	if width == s.width && height == s.height {
		return
	}

	oldCells := s.cells
	oldW, oldH := s.width, s.height

	s.width = width
	s.height = height
	s.allocate()

	copyW := min(oldW, width)
	copyH := min(oldH, height)
	for y := 0; y < copyH; y++ {
		copy(s.cells[y][:copyW], oldCells[y][:copyW])
	}
}

// Clear resets every cell to unset.
func (s *CellSurface) Clear() {
	for y := range s.cells {
		clear(s.cells[y])
	}
}

// Set paints a single pixel. Out-of-bounds coordinates are silently ignored.
func (s *CellSurface) Set(x, y int, c color.Color) {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return
	}
	s.cells[y][x] = Cell{Color: color.RGBAModel.Convert(c).(color.RGBA), Set: true}
}

// Cell returns the cell at the given position.
// Returns an unset cell for out-of-bounds coordinates.
func (s *CellSurface) Cell(x, y int) Cell {
	if x < 0 || x >= s.width || y < 0 || y >= s.height {
		return Cell{}
	}
	return s.cells[y][x]
}

// FillRect implements Surface. Fully transparent colors are ignored.
func (s *CellSurface) FillRect(x, y, w, h int, c color.Color) {
	if c == nil {
		return
	}
	if _, _, _, a := c.RGBA(); a == 0 {
		return
	}
	x0, y0 := max(x, 0), max(y, 0)
	x1, y1 := min(x+w, s.width), min(y+h, s.height)
	for py := y0; py < y1; py++ {
		for px := x0; px < x1; px++ {
			s.Set(px, py, c)
		}
	}
}

// DrawImage implements Surface by nearest-neighbour sampling img into the
// w x h destination. Transparent source pixels leave the cell untouched.
func (s *CellSurface) DrawImage(img image.Image, x, y, w, h int) {
	if img == nil || w <= 0 || h <= 0 {
		return
	}
	b := img.Bounds()
	if b.Empty() {
		return
	}
	for dy := 0; dy < h; dy++ {
		py := y + dy
		if py < 0 || py >= s.height {
			continue
		}
		sy := b.Min.Y + dy*b.Dy()/h
		for dx := 0; dx < w; dx++ {
			px := x + dx
			if px < 0 || px >= s.width {
				continue
			}
			c := img.At(b.Min.X+dx*b.Dx()/w, sy)
			if _, _, _, a := c.RGBA(); a == 0 {
				continue
			}
			s.Set(px, py, c)
		}
	}
}

// String converts the grid to text, one line per row, '#' for painted cells.
// Useful for debugging and tests.
func (s *CellSurface) String() string {
	var sb strings.Builder
	sb.Grow(s.width*s.height + s.height)

	for y := 0; y < s.height; y++ {
		if y > 0 {
			sb.WriteRune('\n')
		}
		sb.WriteString(s.Row(y))
	}
	return sb.String()
}

// Row returns the specified row rendered like String.
func (s *CellSurface) Row(y int) string {
	if y < 0 || y >= s.height {
		return strings.Repeat(" ", s.width)
	}
	row := make([]byte, s.width)
	for x, c := range s.cells[y] {
		if c.Set {
			row[x] = '#'
		} else {
			row[x] = ' '
		}
	}
	return string(row)
}
