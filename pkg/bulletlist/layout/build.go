// Package layout turns a list model snapshot into a render tree.
//
// Build is pure: it reads nothing but its argument, keeps no state, and
// never fails. Degenerate input resolves to defaults (a blank bullet becomes
// the default glyph, missing items produce an empty tree).
package layout

import (
	"math"
	"strings"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/constants"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
)

// Build lays out one row per item in input order.
func Build(s model.Snapshot) Tree {
	tree := Tree{
		Strategy: s.Strategy,
		Padding:  s.LayoutPadding,
	}
	if s.Strategy == model.StrategyGrid {
		tree.Columns = []ColumnWidth{ColumnAuto, ColumnStar}
	}

	if len(s.Items) == 0 {
		return tree
	}

	bullet := bulletNode(s)

	tree.Rows = make([]Row, len(s.Items))
	for i, item := range s.Items {
		tree.Rows[i] = Row{
			Index:  i,
			Bullet: bullet,
			Text: TextNode{
				Text:     item,
				FontSize: s.ItemFontSize,
				Color:    s.ItemFontColor,
				HAlign:   AlignStart,
				VAlign:   AlignStart,
				Expand:   true,
			},
			Margin: s.ItemMargin,
		}
	}

	return tree
}

// ResolveBullet picks the bullet representation for a build.
// A glyph that is not blank always wins, even when an image is set. A blank
// glyph with no image falls back to the default bullet.
func ResolveBullet(s model.Snapshot) (Mode, string) {
	glyph := s.BulletGlyph
	if isBlank(glyph) && len(s.BulletImage) == 0 {
		glyph = constants.DefaultBullet
	}

	if !isBlank(glyph) {
		return ModeGlyph, glyph
	}
	return ModeImage, ""
}

// BulletOffset returns the top translation for a bullet drawn at bulletSize
// next to text at itemSize. Only a bullet larger than the text moves, and a
// difference that is not finite leaves it in place.
func BulletOffset(bulletSize, itemSize float64) float64 {
	d := bulletSize - itemSize
	if math.IsNaN(d) || math.IsInf(d, 0) || d <= 0 {
		return 0
	}
	return -(d / 2) - constants.BulletOffsetNudge
}

func bulletNode(s model.Snapshot) BulletNode {
	mode, glyph := ResolveBullet(s)

	node := BulletNode{
		Mode:    mode,
		HAlign:  AlignStart,
		VAlign:  AlignStart,
		OffsetY: BulletOffset(s.BulletFontSize, s.ItemFontSize),
	}

	switch mode {
	case ModeGlyph:
		node.Glyph = glyph
		node.FontSize = s.BulletFontSize
		node.Color = s.BulletFontColor
	case ModeImage:
		node.Image = s.BulletImage
		node.FontSize = s.BulletFontSize
	}

	return node
}

func isBlank(s string) bool {
	return strings.TrimSpace(s) == ""
}
