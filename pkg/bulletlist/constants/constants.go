// Package constants defines shared constants and configuration values
// used throughout the bulletlist component.
package constants

import "os"

// Development is the environment variable value for development mode.
const Development = "DEV"

// Environment variables read by the SDL window in development mode.
const (
	WindowWidthEnvVar  = "WINDOW_WIDTH"
	WindowHeightEnvVar = "WINDOW_HEIGHT"
)

// IsDevMode returns true if running in development mode (ENVIRONMENT=DEV).
func IsDevMode() bool {
	return os.Getenv("ENVIRONMENT") == Development
}

// Defaults applied to a freshly constructed list.
const (
	DefaultBullet                 = BulletDisc
	DefaultBulletFontSize float64 = 12
	DefaultItemFontSize   float64 = 12
	DefaultItemMargin     float64 = 1
	DefaultLayoutPadding  float64 = 1
)

// BulletOffsetNudge is the extra upward shift, in points, applied to a bullet
// that is larger than its item text. Tuned by eye, not derived from metrics.
const BulletOffsetNudge float64 = 3
