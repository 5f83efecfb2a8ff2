// Package bulletlist renders a vertical list of text items, each prefixed by
// a bullet glyph or image.
//
// A List owns a model.ListModel and a Surface. Every change to the model
// rebuilds the whole layout.Tree and hands it to the surface; nothing is
// patched or reused between builds. Surfaces for SDL2 (sdlview) and the
// terminal (textview) live in subpackages.
package bulletlist

import (
	"log/slog"
	"os"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/internal"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/platform/cannoli"
)

// DebugEnvVar enables internal debug logging when set.
const DebugEnvVar = "BULLETLIST_DEBUG"

// Options configures logging and the host theme.
type Options struct {
	LogPath      string // Full path for log file including filename (creates parent directories)
	IsCannoli    bool   // Use the Cannoli CFW theme
	FontPath     string // Font for bullets and items; overrides the theme's font
	TextColorHex uint32 // Default text color as 0xRRGGBB (0 keeps the theme color)
}

// Init applies options. Call it once before creating surfaces; lists work
// without it using the default theme.
func Init(options Options) {
	if options.LogPath != "" {
		internal.SetLogPath(options.LogPath)
	}

	if os.Getenv(DebugEnvVar) != "" {
		internal.SetInternalLogLevel(slog.LevelDebug)
	} else {
		internal.SetInternalLogLevel(slog.LevelError)
	}

	theme := internal.DefaultTheme
	if options.IsCannoli {
		theme = cannoli.InitCannoliTheme(options.FontPath)
	}
	if options.FontPath != "" {
		theme.FontPath = options.FontPath
	}
	if options.TextColorHex != 0 {
		theme.TextColor = model.HexColor(options.TextColorHex)
	}
	internal.SetTheme(theme)
}

// Close flushes and closes the log file.
func Close() {
	internal.CloseLogger()
}

// SetLogPath sets the full path for the log file, including filename.
// Call before Init() to take effect during initialization.
func SetLogPath(path string) {
	internal.SetLogPath(path)
}

// GetLogger returns the application logger for structured logging.
func GetLogger() *slog.Logger {
	return internal.GetLogger()
}

// SetLogLevel sets the minimum log level for the application logger.
func SetLogLevel(level slog.Level) {
	internal.SetLogLevel(level)
}

// SetRawLogLevel parses and sets the log level from a string (e.g., "debug", "info", "error").
func SetRawLogLevel(level string) {
	internal.SetRawLogLevel(level)
}

// SetInternalLogLevel sets the level of the component's own logger.
func SetInternalLogLevel(level slog.Level) {
	internal.SetInternalLogLevel(level)
}

// BackgroundColor returns the active theme's background, for hosts that
// clear the screen before drawing a list.
func BackgroundColor() model.Color {
	return internal.GetTheme().BackgroundColor
}
