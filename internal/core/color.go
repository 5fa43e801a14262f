package core

import (
	"fmt"
	"image/color"
	"strconv"
	"strings"
)

// Color is a straight-alpha RGBA color used by draw commands and screen cells.
// The zero value is transparent black and means "terminal default" on a Screen.
type Color struct {
	R, G, B, A uint8
}

// Predefined colors for game elements.
var (
	ColorNone   = Color{}
	ColorBlack  = Color{R: 0, G: 0, B: 0, A: 255}
	ColorWhite  = Color{R: 255, G: 255, B: 255, A: 255}
	ColorRed    = Color{R: 255, G: 0, B: 0, A: 255}
	ColorGreen  = Color{R: 0, G: 128, B: 0, A: 255}
	ColorCyan   = Color{R: 10, G: 209, B: 205, A: 255}
	ColorYellow = Color{R: 255, G: 215, B: 0, A: 255}
	ColorGray   = Color{R: 138, G: 138, B: 138, A: 255}
)

// IsZero reports whether the color is unset.
func (c Color) IsZero() bool {
	return c == Color{}
}

// Hex returns the color as "#rrggbb". Alpha is dropped.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

// NRGBA converts to the image/color representation.
func (c Color) NRGBA() color.NRGBA {
	return color.NRGBA{R: c.R, G: c.G, B: c.B, A: c.A}
}

// ParseHex parses "#rgb", "#rrggbb" or "#rrggbbaa" (leading '#' optional).
func ParseHex(s string) (Color, error) {
	h := strings.TrimPrefix(strings.TrimSpace(s), "#")
	if len(h) == 3 {
		h = string([]byte{h[0], h[0], h[1], h[1], h[2], h[2]})
	}
	if len(h) == 6 {
		h += "ff"
	}
	if len(h) != 8 {
		return Color{}, fmt.Errorf("invalid hex color %q", s)
	}

	v, err := strconv.ParseUint(h, 16, 32)
	if err != nil {
		return Color{}, fmt.Errorf("invalid hex color %q: %w", s, err)
	}

	return Color{
		R: uint8(v >> 24),
		G: uint8(v >> 16),
		B: uint8(v >> 8),
		A: uint8(v),
	}, nil
}
