// Package cannoli provides theming support for the Cannoli custom firmware.
// Cannoli is a community-developed CFW for retro handheld gaming devices.
package cannoli

import (
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/internal"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
)

// DefaultFontPath is where Cannoli installs its UI font.
const DefaultFontPath = "/mnt/SDCARD/System/fonts/Cannoli.ttf"

// InitCannoliTheme creates a theme with Cannoli's default colors and the specified font.
// An empty fontPath uses DefaultFontPath.
func InitCannoliTheme(fontPath string) internal.Theme {
	if fontPath == "" {
		fontPath = DefaultFontPath
	}

	return internal.Theme{
		TextColor:       model.HexColor(0xFFFFFF),
		BackgroundColor: model.HexColor(0x008080),
		FontPath:        fontPath,
	}
}
