package engine

import (
	"image"
	"image/color"
	"strings"

	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/vovakirdan/quick/internal/core"
)

// TextFace is the bitmap face text entities are drawn with.
var TextFace font.Face = basicfont.Face7x13

// NewText creates an entity showing text in white. The entity is sized to
// the rendered glyphs.
func NewText(text string) *Entity {
	return NewEntity().SetTextColor(core.White).SetText(text)
}

// Text returns the text set with SetText.
func (e *Entity) Text() string { return e.text }

// SetText renders text as the entity's image and resizes the entity to fit
// it. Lines are separated by '\n'. Setting the current text again is a
// no-op.
func (e *Entity) SetText(text string) *Entity {
	if text == e.text && e.anim != nil {
		return e
	}
	e.text = text
	return e.SetImage(textImage(text, e.TextColor()))
}

// TextColor returns the glyph color, white by default.
func (e *Entity) TextColor() color.Color {
	if e.textColor == nil {
		return core.White
	}
	return e.textColor
}

// SetTextColor changes the glyph color and re-renders existing text.
func (e *Entity) SetTextColor(c color.Color) *Entity {
	e.textColor = c
	if e.anim != nil && e.text != "" {
		e.SetImage(textImage(e.text, e.TextColor()))
	}
	return e
}

// textImage draws text with TextFace on a transparent background. The image
// is as wide as the longest line and one face height per line.
func textImage(text string, c color.Color) *image.RGBA {
	lines := strings.Split(text, "\n")
	m := TextFace.Metrics()
	lineHeight := m.Height.Ceil()

	width := 0
	for _, line := range lines {
		width = max(width, font.MeasureString(TextFace, line).Ceil())
	}
	if width == 0 {
		return image.NewRGBA(image.Rect(0, 0, 0, 0))
	}

	img := image.NewRGBA(image.Rect(0, 0, width, lineHeight*len(lines)))
	d := &font.Drawer{
		Dst:  img,
		Src:  image.NewUniform(c),
		Face: TextFace,
	}
	for i, line := range lines {
		d.Dot = fixed.Point26_6{X: 0, Y: m.Ascent + fixed.I(i*lineHeight)}
		d.DrawString(line)
	}
	return img
}
