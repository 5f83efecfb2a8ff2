package layout

import "github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"

// Mode is the bullet representation chosen for a build.
type Mode int

const (
	ModeGlyph Mode = iota // Bullet is a text label
	ModeImage             // Bullet is an image
)

func (m Mode) String() string {
	switch m {
	case ModeGlyph:
		return "glyph"
	case ModeImage:
		return "image"
	default:
		return "unknown"
	}
}

// Align positions a node inside its cell on one axis.
type Align int

const (
	AlignStart Align = iota
	AlignCenter
	AlignEnd
)

// ColumnWidth describes how a grid column is sized.
type ColumnWidth int

const (
	ColumnAuto ColumnWidth = iota // Sized to the widest cell
	ColumnStar                    // Takes the remaining width
)

// BulletNode is the marker in the first cell of a row.
// Exactly one of Glyph or Image is meaningful, chosen by Mode.
type BulletNode struct {
	Mode     Mode
	Glyph    string
	Image    []byte // Encoded image, decoded by the surface on demand
	FontSize float64
	Color    *model.Color // Nil inherits the host default
	HAlign   Align
	VAlign   Align
	OffsetY  float64 // Extra top translation; negative moves the bullet up
}

// TextNode is the item label in the second cell of a row.
type TextNode struct {
	Text     string
	FontSize float64
	Color    *model.Color // Nil inherits the host default
	HAlign   Align
	VAlign   Align
	Expand   bool // Fills the remaining horizontal space
}

// Row is one (bullet, text) pair.
type Row struct {
	Index  int
	Bullet BulletNode
	Text   TextNode
	Margin model.Thickness
}

// Tree is the output of one build. It has no identity across builds; the
// surface that receives it owns it.
type Tree struct {
	Strategy model.Strategy
	Padding  model.Thickness
	Columns  []ColumnWidth // Nil for the stack strategy
	Rows     []Row
}

// Empty reports whether the tree has no rows.
func (t Tree) Empty() bool {
	return len(t.Rows) == 0
}
