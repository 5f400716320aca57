package rug

import (
	"image/color"

	"golang.org/x/image/colornames"
)

// Color is a straight (non-premultiplied) RGBA color.
// Each component is an integer in the range [0, 255].
//
// Components are plain ints so colors can be built from any integer
// source; setters reject out-of-range values instead of wrapping them.
type Color struct {
	R, G, B, A int
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b int) Color {
	return Color{R: r, G: g, B: b, A: 255}
}

// RGBA creates a color from RGBA components.
func RGBA(r, g, b, a int) Color {
	return Color{R: r, G: g, B: b, A: a}
}

// FromColor converts a standard color.Color to Color.
func FromColor(c color.Color) Color {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return Color{R: int(n.R), G: int(n.G), B: int(n.B), A: int(n.A)}
}

// Hex creates a color from a hex string.
// Supports formats: "RGB", "RGBA", "RRGGBB", "RRGGBBAA", with or without
// a leading '#'. Unrecognized lengths yield opaque black.
func Hex(hex string) Color {
	if hex != "" && hex[0] == '#' {
		hex = hex[1:]
	}

	var r, g, b int
	a := 255

	switch len(hex) {
	case 3: // RGB
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
	case 4: // RGBA
		r, g, b = parseHex(hex[0:1])*17, parseHex(hex[1:2])*17, parseHex(hex[2:3])*17
		a = parseHex(hex[3:4]) * 17
	case 6: // RRGGBB
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
	case 8: // RRGGBBAA
		r, g, b = parseHex(hex[0:2]), parseHex(hex[2:4]), parseHex(hex[4:6])
		a = parseHex(hex[6:8])
	default:
		return Black
	}

	return Color{R: r, G: g, B: b, A: a}
}

// parseHex is a helper for hex parsing. Parsing stops at the first
// invalid digit.
func parseHex(s string) int {
	v := 0
	for i := 0; i < len(s); i++ {
		c := s[i]
		switch {
		case '0' <= c && c <= '9':
			v = v*16 + int(c-'0')
		case 'a' <= c && c <= 'f':
			v = v*16 + int(c-'a'+10)
		case 'A' <= c && c <= 'F':
			v = v*16 + int(c-'A'+10)
		default:
			return v
		}
	}
	return v
}

// Valid reports whether every component is within [0, 255].
func (c Color) Valid() bool {
	return inByte(c.R) && inByte(c.G) && inByte(c.B) && inByte(c.A)
}

// validate returns an InvalidArgumentError naming the first bad component.
func (c Color) validate(op string) error {
	for _, ch := range []struct {
		name string
		v    int
	}{{"r", c.R}, {"g", c.G}, {"b", c.B}, {"a", c.A}} {
		if !inByte(ch.v) {
			return &InvalidArgumentError{Op: op, Arg: "color." + ch.name, Value: ch.v}
		}
	}
	return nil
}

// NRGBA converts the color to color.NRGBA. Components must be valid.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: uint8(c.R), G: uint8(c.G), B: uint8(c.B), A: uint8(c.A)}
}

// RGBA implements color.Color.
func (c Color) RGBA() (r, g, b, a uint32) {
	return c.NRGBA().RGBA()
}

func inByte(v int) bool {
	return v >= 0 && v <= 255
}

// Common colors
var (
	Black       = FromColor(colornames.Black)
	White       = FromColor(colornames.White)
	Red         = FromColor(colornames.Red)
	Green       = FromColor(colornames.Lime) // full-intensity green
	Blue        = FromColor(colornames.Blue)
	Yellow      = FromColor(colornames.Yellow)
	Cyan        = FromColor(colornames.Aqua)
	Magenta     = FromColor(colornames.Fuchsia)
	Transparent = Color{}
)
