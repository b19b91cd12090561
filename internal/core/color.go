package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Predefined colors for game elements, using the CSS palette values.
var (
	Black   = color.RGBA{0x00, 0x00, 0x00, 0xff}
	White   = color.RGBA{0xff, 0xff, 0xff, 0xff}
	Red     = color.RGBA{0xff, 0x00, 0x00, 0xff}
	Green   = color.RGBA{0x00, 0x80, 0x00, 0xff}
	Lime    = color.RGBA{0x00, 0xff, 0x00, 0xff}
	Blue    = color.RGBA{0x00, 0x00, 0xff, 0xff}
	Navy    = color.RGBA{0x00, 0x00, 0x80, 0xff}
	Yellow  = color.RGBA{0xff, 0xff, 0x00, 0xff}
	Cyan    = color.RGBA{0x00, 0xff, 0xff, 0xff}
	Magenta = color.RGBA{0xff, 0x00, 0xff, 0xff}
	Gray    = color.RGBA{0x80, 0x80, 0x80, 0xff}
	Silver  = color.RGBA{0xc0, 0xc0, 0xc0, 0xff}
	Orange  = color.RGBA{0xff, 0xa5, 0x00, 0xff}
	Purple  = color.RGBA{0x80, 0x00, 0x80, 0xff}
	Brown   = color.RGBA{0xa5, 0x2a, 0x2a, 0xff}
	Pink    = color.RGBA{0xff, 0xc0, 0xcb, 0xff}
	Teal    = color.RGBA{0x00, 0x80, 0x80, 0xff}
	Olive   = color.RGBA{0x80, 0x80, 0x00, 0xff}
	Maroon  = color.RGBA{0x80, 0x00, 0x00, 0xff}
	Gold    = color.RGBA{0xff, 0xd7, 0x00, 0xff}
)

var namedColors = map[string]color.RGBA{
	"black":   Black,
	"white":   White,
	"red":     Red,
	"green":   Green,
	"lime":    Lime,
	"blue":    Blue,
	"navy":    Navy,
	"yellow":  Yellow,
	"cyan":    Cyan,
	"aqua":    Cyan,
	"magenta": Magenta,
	"fuchsia": Magenta,
	"gray":    Gray,
	"grey":    Gray,
	"silver":  Silver,
	"orange":  Orange,
	"purple":  Purple,
	"brown":   Brown,
	"pink":    Pink,
	"teal":    Teal,
	"olive":   Olive,
	"maroon":  Maroon,
	"gold":    Gold,
}

// RGB returns an opaque color.
func RGB(r, g, b uint8) color.RGBA {
	return color.RGBA{R: r, G: g, B: b, A: 0xff}
}

// ParseColor resolves a palette name (case-insensitive) or a "#rrggbb" hex
// string.
func ParseColor(s string) (color.RGBA, error) {
	s = strings.TrimSpace(s)
	if c, ok := namedColors[strings.ToLower(s)]; ok {
		return c, nil
	}
	if len(s) == 7 && s[0] == '#' {
		if v, err := strconv.ParseUint(s[1:], 16, 32); err == nil {
			return RGB(uint8(v>>16), uint8(v>>8), uint8(v)), nil
		}
	}
	return color.RGBA{}, fmt.Errorf("core: unknown color %q", s)
}

// Hex formats a color as "#rrggbb", ignoring alpha.
func Hex(c color.Color) string {
	rgba := color.RGBAModel.Convert(c).(color.RGBA)
	return fmt.Sprintf("#%02x%02x%02x", rgba.R, rgba.G, rgba.B)
}
