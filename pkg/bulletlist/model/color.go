package model

import (
	"fmt"
	"strings"

	"github.com/lucasb-eyer/go-colorful"
)

// Color is an RGBA color in 8-bit channels.
// Surfaces convert it to their native color type.
type Color struct {
	R, G, B, A uint8
}

// HexColor converts a 0xRRGGBB value to an opaque Color.
func HexColor(hex uint32) Color {
	return Color{
		R: uint8((hex >> 16) & 0xFF),
		G: uint8((hex >> 8) & 0xFF),
		B: uint8(hex & 0xFF),
		A: 255,
	}
}

// ParseColor parses "#rrggbb" or "#rgb" into an opaque Color.
func ParseColor(s string) (Color, error) {
	s = strings.TrimSpace(s)
	if !strings.HasPrefix(s, "#") {
		s = "#" + s
	}

	c, err := colorful.Hex(s)
	if err != nil {
		return Color{}, fmt.Errorf("parse color %q: %w", s, err)
	}

	r, g, b := c.RGB255()
	return Color{R: r, G: g, B: b, A: 255}, nil
}

// Hex returns the color as "#rrggbb", dropping alpha.
func (c Color) Hex() string {
	return fmt.Sprintf("#%02x%02x%02x", c.R, c.G, c.B)
}

func copyColor(c *Color) *Color {
	if c == nil {
		return nil
	}
	cp := *c
	return &cp
}
