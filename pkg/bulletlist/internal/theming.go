package internal

import "github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"

// Theme supplies the host defaults a list falls back to when a color is unset.
type Theme struct {
	TextColor       model.Color // Default text and glyph color
	BackgroundColor model.Color // Surface clear color
	FontPath        string      // TTF used for bullets and items
}

// DefaultTheme is white text on black with no font path.
var DefaultTheme = Theme{
	TextColor:       model.HexColor(0xFFFFFF),
	BackgroundColor: model.HexColor(0x000000),
}

var currentTheme = DefaultTheme

// SetTheme sets the active theme.
func SetTheme(theme Theme) {
	currentTheme = theme
}

// GetTheme returns the currently active theme.
func GetTheme() Theme {
	return currentTheme
}

// ResolveColor returns c, or fallback when c is nil.
func ResolveColor(c *model.Color, fallback model.Color) model.Color {
	if c == nil {
		return fallback
	}
	return *c
}
