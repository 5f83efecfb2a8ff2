// Package model holds the bindable state of a bulleted list: the items and
// every styling option that affects how they are laid out.
//
// A ListModel is mutated by the host's binding layer. Each setter notifies
// subscribers synchronously before returning, so a subscribed list rebuilds
// its render tree on the caller's goroutine. The model does not validate
// values beyond their type; the layout builder degrades gracefully instead.
package model

import (
	"slices"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/constants"
)

// Listener is called after every mutation with a snapshot of the new state.
type Listener func(Snapshot)

// Snapshot is a read-only copy of a ListModel taken at one point in time.
// Slices and colors are copied, so mutating the model afterwards never
// changes a snapshot.
type Snapshot struct {
	Items           []string
	BulletGlyph     string
	BulletImage     []byte
	BulletFontSize  float64
	ItemFontSize    float64
	BulletFontColor *Color
	ItemFontColor   *Color
	ItemMargin      Thickness
	LayoutPadding   Thickness
	Strategy        Strategy
}

// ListModel is the mutable store behind a bulleted list.
// It is not safe for concurrent mutation; a single binding layer writes it.
type ListModel struct {
	items           []string
	bulletGlyph     string
	bulletImage     []byte
	bulletFontSize  float64
	itemFontSize    float64
	bulletFontColor *Color
	itemFontColor   *Color
	itemMargin      Thickness
	layoutPadding   Thickness
	strategy        Strategy

	listeners []subscription
	nextID    int
}

type subscription struct {
	id int
	fn Listener
}

// New creates a ListModel with default styling and no items.
func New() *ListModel {
	return &ListModel{
		bulletGlyph:    constants.DefaultBullet,
		bulletFontSize: constants.DefaultBulletFontSize,
		itemFontSize:   constants.DefaultItemFontSize,
		itemMargin:     Uniform(constants.DefaultItemMargin),
		layoutPadding:  Uniform(constants.DefaultLayoutPadding),
		strategy:       StrategyGrid,
	}
}

// Subscribe registers fn to be called after every mutation.
// The returned function removes the subscription; calling it twice is harmless.
func (m *ListModel) Subscribe(fn Listener) (unsubscribe func()) {
	m.nextID++
	id := m.nextID
	m.listeners = append(m.listeners, subscription{id: id, fn: fn})

	return func() {
		m.listeners = slices.DeleteFunc(m.listeners, func(s subscription) bool {
			return s.id == id
		})
	}
}

func (m *ListModel) notify() {
	if len(m.listeners) == 0 {
		return
	}

	snap := m.Snapshot()
	// Listeners may unsubscribe while being notified.
	for _, s := range slices.Clone(m.listeners) {
		s.fn(snap)
	}
}

// Snapshot copies the current state.
func (m *ListModel) Snapshot() Snapshot {
	return Snapshot{
		Items:           slices.Clone(m.items),
		BulletGlyph:     m.bulletGlyph,
		BulletImage:     slices.Clone(m.bulletImage),
		BulletFontSize:  m.bulletFontSize,
		ItemFontSize:    m.itemFontSize,
		BulletFontColor: copyColor(m.bulletFontColor),
		ItemFontColor:   copyColor(m.itemFontColor),
		ItemMargin:      m.itemMargin,
		LayoutPadding:   m.layoutPadding,
		Strategy:        m.strategy,
	}
}

// Items returns the items in display order. Nil means no items were set.
func (m *ListModel) Items() []string { return slices.Clone(m.items) }

// SetItems replaces the items. Nil and empty both render as an empty list.
func (m *ListModel) SetItems(items []string) {
	m.items = slices.Clone(items)
	m.notify()
}

func (m *ListModel) BulletGlyph() string { return m.bulletGlyph }

// SetBulletGlyph sets the bullet text. A non-blank glyph takes precedence
// over any bullet image.
func (m *ListModel) SetBulletGlyph(glyph string) {
	m.bulletGlyph = glyph
	m.notify()
}

func (m *ListModel) BulletImage() []byte { return slices.Clone(m.bulletImage) }

// SetBulletImage sets encoded image data (PNG, JPEG, SVG, ...) used as the
// bullet when the glyph is blank. Nil clears it.
func (m *ListModel) SetBulletImage(data []byte) {
	m.bulletImage = slices.Clone(data)
	m.notify()
}

func (m *ListModel) BulletFontSize() float64 { return m.bulletFontSize }

func (m *ListModel) SetBulletFontSize(size float64) {
	m.bulletFontSize = size
	m.notify()
}

func (m *ListModel) ItemFontSize() float64 { return m.itemFontSize }

func (m *ListModel) SetItemFontSize(size float64) {
	m.itemFontSize = size
	m.notify()
}

// BulletFontColor returns nil when the host default applies.
func (m *ListModel) BulletFontColor() *Color { return copyColor(m.bulletFontColor) }

// SetBulletFontColor sets the bullet color; nil inherits the host default.
func (m *ListModel) SetBulletFontColor(c *Color) {
	m.bulletFontColor = copyColor(c)
	m.notify()
}

// ItemFontColor returns nil when the host default applies.
func (m *ListModel) ItemFontColor() *Color { return copyColor(m.itemFontColor) }

// SetItemFontColor sets the item text color; nil inherits the host default.
func (m *ListModel) SetItemFontColor(c *Color) {
	m.itemFontColor = copyColor(c)
	m.notify()
}

func (m *ListModel) ItemMargin() Thickness { return m.itemMargin }

func (m *ListModel) SetItemMargin(t Thickness) {
	m.itemMargin = t
	m.notify()
}

func (m *ListModel) LayoutPadding() Thickness { return m.layoutPadding }

func (m *ListModel) SetLayoutPadding(t Thickness) {
	m.layoutPadding = t
	m.notify()
}

func (m *ListModel) Strategy() Strategy { return m.strategy }

func (m *ListModel) SetStrategy(s Strategy) {
	m.strategy = s
	m.notify()
}
