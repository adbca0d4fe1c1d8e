package sketch

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// RGBA is a color with red, green, blue and alpha components in [0, 1].
type RGBA struct {
	R, G, B, A float64
}

// RGBA implements color.Color, so an RGBA can be passed anywhere the
// image packages expect one.
func (c RGBA) RGBA() (r, g, b, a uint32) {
	return c.Color().RGBA()
}

// Color converts c to a non-premultiplied color.NRGBA.
func (c RGBA) Color() color.NRGBA {
	return color.NRGBA{
		R: uint8(clamp255(c.R * 255)),
		G: uint8(clamp255(c.G * 255)),
		B: uint8(clamp255(c.B * 255)),
		A: uint8(clamp255(c.A * 255)),
	}
}

// FromColor converts a standard color.Color to RGBA.
func FromColor(c color.Color) RGBA {
	n := color.NRGBAModel.Convert(c).(color.NRGBA)
	return RGBA{
		R: float64(n.R) / 255,
		G: float64(n.G) / 255,
		B: float64(n.B) / 255,
		A: float64(n.A) / 255,
	}
}

// RGB creates an opaque color from RGB components.
func RGB(r, g, b float64) RGBA {
	return RGBA{R: r, G: g, B: b, A: 1.0}
}

// Hex creates a color from a hex string, like ParseHex, and returns
// opaque black for malformed input.
func Hex(hex string) RGBA {
	c, err := ParseHex(hex)
	if err != nil {
		return Black
	}
	return c
}

// ParseHex parses "RGB", "RGBA", "RRGGBB" or "RRGGBBAA" hex notation,
// with or without a leading '#'. Colors without alpha are opaque.
func ParseHex(hex string) (RGBA, error) {
	digits := strings.TrimPrefix(hex, "#")
	n, err := strconv.ParseUint(digits, 16, 32)
	if err != nil {
		return Black, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}

	var r, g, b, a uint64
	switch len(digits) {
	case 3:
		r, g, b, a = (n>>8&0xf)*17, (n>>4&0xf)*17, (n&0xf)*17, 255
	case 4:
		r, g, b, a = (n>>12&0xf)*17, (n>>8&0xf)*17, (n>>4&0xf)*17, (n&0xf)*17
	case 6:
		r, g, b, a = n>>16&0xff, n>>8&0xff, n&0xff, 255
	case 8:
		r, g, b, a = n>>24&0xff, n>>16&0xff, n>>8&0xff, n&0xff
	default:
		return Black, fmt.Errorf("%w: %q", ErrInvalidColor, hex)
	}
	return RGBA{
		R: float64(r) / 255,
		G: float64(g) / 255,
		B: float64(b) / 255,
		A: float64(a) / 255,
	}, nil
}

func clamp255(x float64) float64 {
	if x < 0 {
		return 0
	}
	if x > 255 {
		return 255
	}
	return x
}

// Common colors
var (
	Black       = RGB(0, 0, 0)
	White       = RGB(1, 1, 1)
	Transparent = RGBA{}
)
