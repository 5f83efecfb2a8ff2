// Package textview draws bullet list trees as styled terminal text.
//
// Terminal cells have one size, so font sizes and bullet offsets are
// ignored; spacing values are rounded to whole cells.
package textview

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/constants"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/layout"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
)

// Options configures a View.
type Options struct {
	Width            int    // Total width in cells; 0 disables wrapping
	Gutter           int    // Cells between bullet and text
	ImagePlaceholder string // Shown for image bullets; defaults to a square
}

// View is a Surface that keeps the last displayed tree as text.
type View struct {
	opts  Options
	frame string
}

// New creates a View.
func New(opts Options) *View {
	return &View{opts: opts.withDefaults()}
}

// withDefaults fills a zero Gutter with one cell and an empty placeholder
// with a square.
func (o Options) withDefaults() Options {
	if o.Gutter <= 0 {
		o.Gutter = 1
	}
	if o.ImagePlaceholder == "" {
		o.ImagePlaceholder = constants.ImageBulletPlaceholder
	}
	return o
}

// Display replaces the current frame with tree.
func (v *View) Display(tree layout.Tree) {
	v.frame = Render(tree, v.opts)
}

// String returns the last displayed frame.
func (v *View) String() string {
	return v.frame
}

// Render draws tree. An empty tree renders as "".
func Render(tree layout.Tree, opts Options) string {
	if tree.Empty() {
		return ""
	}
	opts = opts.withDefaults()

	bullets := make([]string, len(tree.Rows))
	for i, row := range tree.Rows {
		bullets[i] = bulletText(row.Bullet, opts)
	}

	// Grid rows share the widest bullet; stacked rows size their own.
	columnWidth := 0
	if tree.Strategy == model.StrategyGrid {
		for _, b := range bullets {
			columnWidth = max(columnWidth, lipgloss.Width(b))
		}
	}

	padding := cells(tree.Padding)
	gutter := strings.Repeat(" ", opts.Gutter)

	rows := make([]string, len(tree.Rows))
	for i, row := range tree.Rows {
		width := columnWidth
		if tree.Strategy != model.StrategyGrid {
			width = lipgloss.Width(bullets[i])
		}

		bullet := lipgloss.NewStyle().Width(width)
		if row.Bullet.Color != nil {
			bullet = bullet.Foreground(lipgloss.Color(row.Bullet.Color.Hex()))
		}

		margin := cells(row.Margin)

		text := lipgloss.NewStyle()
		if row.Text.Color != nil {
			text = text.Foreground(lipgloss.Color(row.Text.Color.Hex()))
		}
		if opts.Width > 0 {
			remaining := opts.Width - int(padding.Horizontal()+margin.Horizontal()) - width - opts.Gutter
			if remaining > 0 {
				text = text.Width(remaining)
			}
		}

		line := lipgloss.JoinHorizontal(lipgloss.Top,
			bullet.Render(bullets[i]),
			gutter,
			text.Render(row.Text.Text),
		)
		rows[i] = lipgloss.NewStyle().
			Margin(int(margin.Top), int(margin.Right), int(margin.Bottom), int(margin.Left)).
			Render(line)
	}

	body := lipgloss.JoinVertical(lipgloss.Left, rows...)
	return lipgloss.NewStyle().
		Padding(int(padding.Top), int(padding.Right), int(padding.Bottom), int(padding.Left)).
		Render(body)
}

func bulletText(b layout.BulletNode, opts Options) string {
	if b.Mode == layout.ModeImage {
		return opts.ImagePlaceholder
	}
	return b.Glyph
}

// cells rounds every side of t to whole cells.
func cells(t model.Thickness) model.Thickness {
	return model.Thickness{
		Left:   float64(toCells(t.Left)),
		Top:    float64(toCells(t.Top)),
		Right:  float64(toCells(t.Right)),
		Bottom: float64(toCells(t.Bottom)),
	}
}

// toCells rounds a spacing value to cells; negative spacing collapses to zero.
func toCells(v float64) int {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int(math.Round(v))
}
