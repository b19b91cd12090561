package tui

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/vovakirdan/quick/internal/core"
	"github.com/vovakirdan/quick/internal/render"
)

// upperHalf draws the top pixel of a cell in the foreground color and the
// bottom pixel in the background color.
const upperHalf = "▀"

// pair is the two pixels shown in one terminal cell.
type pair struct {
	top, bottom render.Cell
}

func (p pair) style() lipgloss.Style {
	st := lipgloss.NewStyle()
	if p.top.Set {
		st = st.Foreground(lipgloss.Color(core.Hex(p.top.Color)))
	}
	if p.bottom.Set {
		st = st.Background(lipgloss.Color(core.Hex(p.bottom.Color)))
	}
	return st
}

// glyph returns what a cell shows; unset pixels fall back to the terminal
// background.
func (p pair) glyph() string {
	if p.top.Set {
		return upperHalf
	}
	return " "
}

// RenderSurface converts the surface to styled text, one terminal row per
// two pixel rows. Adjacent cells with the same colors share one style run
// to keep the escape sequences short.
func RenderSurface(s *render.CellSurface) string {
	var sb strings.Builder
	rows := (s.Height() + 1) / 2
	sb.Grow(s.Width() * rows * 4)

	for row := range rows {
		if row > 0 {
			sb.WriteRune('\n')
		}

		x := 0
		for x < s.Width() {
			start := cellPair(s, x, row)

			var run strings.Builder
			for x < s.Width() {
				p := cellPair(s, x, row)
				if p != start {
					break
				}
				run.WriteString(p.glyph())
				x++
			}

			sb.WriteString(start.style().Render(run.String()))
		}
	}
	return sb.String()
}

func cellPair(s *render.CellSurface, x, row int) pair {
	return pair{
		top:    s.Cell(x, row*2),
		bottom: s.Cell(x, row*2+1),
	}
}
