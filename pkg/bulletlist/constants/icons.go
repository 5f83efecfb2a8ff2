package constants

// Bullet glyphs that render in most UI fonts.
const (
	BulletDisc     = "•" // Filled circle
	BulletCircle   = "◦" // White bullet
	BulletSquare   = "▪" // Small black square
	BulletTriangle = "‣" // Triangular bullet
	BulletDash     = "–" // En dash
	BulletArrow    = "→" // Rightwards arrow
	BulletCheck    = "✓" // Check mark
)

// ImageBulletPlaceholder stands in for an image bullet on surfaces that
// cannot draw images.
const ImageBulletPlaceholder = "■" // Black square
