package bulletlist

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/constants"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/layout"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
)

type recordingSurface struct {
	trees []layout.Tree
}

func (r *recordingSurface) Display(tree layout.Tree) {
	r.trees = append(r.trees, tree)
}

func (r *recordingSurface) last() layout.Tree {
	return r.trees[len(r.trees)-1]
}

func TestNewRendersEmptyTree(t *testing.T) {
	surface := &recordingSurface{}
	l := New(surface)

	require.Len(t, surface.trees, 1)
	assert.True(t, surface.last().Empty())
	assert.Equal(t, uint64(1), l.Builds())
}

func TestNewWithItems(t *testing.T) {
	surface := &recordingSurface{}
	NewWithItems(surface, []string{"a", "b", "c"})

	tree := surface.last()
	require.Len(t, tree.Rows, 3)
	for i, want := range []string{"a", "b", "c"} {
		assert.Equal(t, want, tree.Rows[i].Text.Text)
		assert.Equal(t, constants.DefaultBullet, tree.Rows[i].Bullet.Glyph)
		assert.Equal(t, 12.0, tree.Rows[i].Bullet.FontSize)
		assert.Equal(t, 12.0, tree.Rows[i].Text.FontSize)
	}
}

func TestNewWithNilItems(t *testing.T) {
	surface := &recordingSurface{}
	NewWithItems(surface, nil)

	require.Len(t, surface.trees, 1)
	assert.True(t, surface.last().Empty())
}

func TestEveryMutationRebuilds(t *testing.T) {
	surface := &recordingSurface{}
	l := NewWithItems(surface, []string{"a"})
	start := len(surface.trees)

	m := l.Model()
	m.SetBulletFontSize(20)
	m.SetItemFontSize(12)
	m.SetBulletGlyph("→")

	assert.Len(t, surface.trees, start+3)
	assert.Equal(t, uint64(start+3), l.Builds())

	bullet := surface.last().Rows[0].Bullet
	assert.Equal(t, "→", bullet.Glyph)
	assert.Equal(t, -7.0, bullet.OffsetY)
}

func TestClearingItemsReplacesTree(t *testing.T) {
	surface := &recordingSurface{}
	l := NewWithItems(surface, []string{"a", "b"})
	require.Len(t, surface.last().Rows, 2)

	l.Model().SetItems([]string{})
	assert.True(t, surface.last().Empty())

	l.Model().SetItems([]string{"c"})
	require.Len(t, surface.last().Rows, 1)
	assert.Equal(t, "c", surface.last().Rows[0].Text.Text)
}

func TestTreesAreIndependent(t *testing.T) {
	surface := &recordingSurface{}
	l := NewWithItems(surface, []string{"a"})
	first := surface.last()

	l.Model().SetItems([]string{"b"})

	assert.Equal(t, "a", first.Rows[0].Text.Text)
	assert.Equal(t, "b", surface.last().Rows[0].Text.Text)
}

func TestCloseStopsRebuilds(t *testing.T) {
	surface := &recordingSurface{}
	l := New(surface)
	l.Close()
	l.Close()

	l.Model().SetItems([]string{"a"})
	assert.Len(t, surface.trees, 1)

	l.Render()
	require.Len(t, surface.trees, 2)
	assert.Len(t, surface.last().Rows, 1)
}

func TestNewWithModelSharesModel(t *testing.T) {
	m := model.New()
	m.SetItems([]string{"x"})

	var got []layout.Tree
	l := NewWithModel(SurfaceFunc(func(tree layout.Tree) { got = append(got, tree) }), m)

	assert.Same(t, m, l.Model())
	m.SetStrategy(model.StrategyStack)

	require.Len(t, got, 2)
	assert.Equal(t, model.StrategyStack, got[1].Strategy)
}

func TestNilSurfaceStillBuilds(t *testing.T) {
	l := NewWithItems(nil, []string{"a"})
	l.Model().SetBulletGlyph("-")
	assert.Equal(t, uint64(2), l.Builds())
}
