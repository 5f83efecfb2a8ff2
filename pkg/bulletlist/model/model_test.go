package model

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/constants"
)

func TestNewDefaults(t *testing.T) {
	m := New()

	assert.Nil(t, m.Items())
	assert.Equal(t, constants.DefaultBullet, m.BulletGlyph())
	assert.Nil(t, m.BulletImage())
	assert.Equal(t, 12.0, m.BulletFontSize())
	assert.Equal(t, 12.0, m.ItemFontSize())
	assert.Nil(t, m.BulletFontColor())
	assert.Nil(t, m.ItemFontColor())
	assert.Equal(t, Uniform(1), m.ItemMargin())
	assert.Equal(t, Uniform(1), m.LayoutPadding())
	assert.Equal(t, StrategyGrid, m.Strategy())
}

func TestEverySetterNotifies(t *testing.T) {
	m := New()

	var snaps []Snapshot
	m.Subscribe(func(s Snapshot) { snaps = append(snaps, s) })

	red := HexColor(0xFF0000)
	m.SetItems([]string{"a"})
	m.SetBulletGlyph("-")
	m.SetBulletImage([]byte{1, 2, 3})
	m.SetBulletFontSize(20)
	m.SetItemFontSize(14)
	m.SetBulletFontColor(&red)
	m.SetItemFontColor(&red)
	m.SetItemMargin(Uniform(2))
	m.SetLayoutPadding(Uniform(3))
	m.SetStrategy(StrategyStack)

	require.Len(t, snaps, 10)

	last := snaps[len(snaps)-1]
	assert.Equal(t, []string{"a"}, last.Items)
	assert.Equal(t, "-", last.BulletGlyph)
	assert.Equal(t, []byte{1, 2, 3}, last.BulletImage)
	assert.Equal(t, 20.0, last.BulletFontSize)
	assert.Equal(t, 14.0, last.ItemFontSize)
	assert.Equal(t, &red, last.BulletFontColor)
	assert.Equal(t, &red, last.ItemFontColor)
	assert.Equal(t, Uniform(2), last.ItemMargin)
	assert.Equal(t, Uniform(3), last.LayoutPadding)
	assert.Equal(t, StrategyStack, last.Strategy)
}

func TestSettingSameValueStillNotifies(t *testing.T) {
	m := New()

	calls := 0
	m.Subscribe(func(Snapshot) { calls++ })

	m.SetItemFontSize(m.ItemFontSize())
	m.SetItemFontSize(m.ItemFontSize())
	assert.Equal(t, 2, calls)
}

func TestUnsubscribe(t *testing.T) {
	m := New()

	var a, b int
	unsubA := m.Subscribe(func(Snapshot) { a++ })
	m.Subscribe(func(Snapshot) { b++ })

	m.SetBulletGlyph("*")
	unsubA()
	unsubA()
	m.SetBulletGlyph("+")

	assert.Equal(t, 1, a)
	assert.Equal(t, 2, b)
}

func TestUnsubscribeDuringNotify(t *testing.T) {
	m := New()

	calls := 0
	var unsub func()
	unsub = m.Subscribe(func(Snapshot) {
		calls++
		unsub()
	})

	m.SetItems([]string{"a"})
	m.SetItems([]string{"b"})
	assert.Equal(t, 1, calls)
}

func TestSnapshotIsIsolated(t *testing.T) {
	m := New()

	items := []string{"a", "b"}
	image := []byte{9, 9}
	color := HexColor(0x00FF00)
	m.SetItems(items)
	m.SetBulletImage(image)
	m.SetItemFontColor(&color)

	items[0] = "changed"
	image[0] = 0
	color.R = 1

	snap := m.Snapshot()
	assert.Equal(t, []string{"a", "b"}, snap.Items)
	assert.Equal(t, []byte{9, 9}, snap.BulletImage)
	assert.Equal(t, uint8(0), snap.ItemFontColor.R)

	snap.Items[1] = "mutated"
	snap.ItemFontColor.G = 0
	assert.Equal(t, []string{"a", "b"}, m.Items())
	assert.Equal(t, uint8(0xFF), m.ItemFontColor().G)
}

func TestSettersDoNotValidate(t *testing.T) {
	m := New()

	m.SetBulletFontSize(-5)
	m.SetItemFontSize(0)
	m.SetItemMargin(Uniform(-1))

	assert.Equal(t, -5.0, m.BulletFontSize())
	assert.Equal(t, 0.0, m.ItemFontSize())
	assert.Equal(t, Uniform(-1), m.ItemMargin())
}

func TestNilItemsClearList(t *testing.T) {
	m := New()
	m.SetItems([]string{"a"})
	m.SetItems(nil)

	assert.Nil(t, m.Items())
	assert.Empty(t, m.Snapshot().Items)
}
