package bulletlist

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
)

func TestParseStyleAppliesPresentKeys(t *testing.T) {
	data := []byte(`
items = ["Eggs", "Flour"]
bullet_glyph = "→"
bullet_font_size = 20
item_font_size = 14.5
bullet_font_color = "#ff8800"
item_margin = 2
layout_padding = [4, 2, 4, 2.5]
strategy = "stack"
`)

	style, err := ParseStyle(data, t.TempDir())
	require.NoError(t, err)

	m := model.New()
	require.NoError(t, style.Apply(m))

	assert.Equal(t, []string{"Eggs", "Flour"}, m.Items())
	assert.Equal(t, "→", m.BulletGlyph())
	assert.Equal(t, 20.0, m.BulletFontSize())
	assert.Equal(t, 14.5, m.ItemFontSize())
	require.NotNil(t, m.BulletFontColor())
	assert.Equal(t, model.Color{R: 0xFF, G: 0x88, B: 0x00, A: 255}, *m.BulletFontColor())
	assert.Nil(t, m.ItemFontColor())
	assert.Equal(t, model.Uniform(2), m.ItemMargin())
	assert.Equal(t, model.Thickness{Left: 4, Top: 2, Right: 4, Bottom: 2.5}, m.LayoutPadding())
	assert.Equal(t, model.StrategyStack, m.Strategy())
}

func TestApplyLeavesMissingKeysAlone(t *testing.T) {
	style, err := ParseStyle([]byte(`item_font_size = 16`), "")
	require.NoError(t, err)

	m := model.New()
	m.SetItems([]string{"keep"})
	m.SetBulletGlyph("*")
	require.NoError(t, style.Apply(m))

	assert.Equal(t, []string{"keep"}, m.Items())
	assert.Equal(t, "*", m.BulletGlyph())
	assert.Equal(t, 16.0, m.ItemFontSize())
}

func TestEmptyColorInheritsHostDefault(t *testing.T) {
	style, err := ParseStyle([]byte(`item_font_color = ""`), "")
	require.NoError(t, err)

	m := model.New()
	red := model.HexColor(0xFF0000)
	m.SetItemFontColor(&red)
	require.NoError(t, style.Apply(m))

	assert.Nil(t, m.ItemFontColor())
}

func TestApplyRejectsBadValuesWithoutPartialWrites(t *testing.T) {
	style, err := ParseStyle([]byte(`
bullet_glyph = "+"
strategy = "spiral"
`), "")
	require.NoError(t, err)

	m := model.New()
	err = style.Apply(m)

	var styleErr *StyleError
	require.ErrorAs(t, err, &styleErr)
	assert.Equal(t, "strategy", styleErr.Key)
	assert.Equal(t, "•", m.BulletGlyph())
}

func TestApplyRejectsBadColor(t *testing.T) {
	style, err := ParseStyle([]byte(`bullet_font_color = "#nothex"`), "")
	require.NoError(t, err)

	var styleErr *StyleError
	require.ErrorAs(t, style.Apply(model.New()), &styleErr)
	assert.Equal(t, "bullet_font_color", styleErr.Key)
}

func TestParseStyleBadSpacing(t *testing.T) {
	_, err := ParseStyle([]byte(`item_margin = [1, 2]`), "")
	require.Error(t, err)
	assert.True(t, IsInfrastructureError(err))

	_, err = ParseStyle([]byte(`item_margin = "wide"`), "")
	require.Error(t, err)
}

func TestLoadStyleReadsRelativeImage(t *testing.T) {
	dir := t.TempDir()
	image := []byte("<svg xmlns=\"http://www.w3.org/2000/svg\"/>")
	require.NoError(t, os.WriteFile(filepath.Join(dir, "dot.svg"), image, 0644))
	require.NoError(t, os.WriteFile(filepath.Join(dir, "list.toml"), []byte(`
bullet_glyph = ""
bullet_image = "dot.svg"
`), 0644))

	style, err := LoadStyle(filepath.Join(dir, "list.toml"))
	require.NoError(t, err)
	assert.Equal(t, image, style.BulletImageData)

	m := model.New()
	require.NoError(t, style.Apply(m))
	assert.Equal(t, "", m.BulletGlyph())
	assert.Equal(t, image, m.BulletImage())
}

func TestLoadStyleMissingFile(t *testing.T) {
	_, err := LoadStyle(filepath.Join(t.TempDir(), "nope.toml"))
	require.Error(t, err)
	assert.True(t, IsInfrastructureError(err))
	assert.ErrorIs(t, err, os.ErrNotExist)
}

func TestLoadStyleMissingImage(t *testing.T) {
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, "list.toml"), []byte(`bullet_image = "gone.png"`), 0644))

	_, err := LoadStyle(filepath.Join(dir, "list.toml"))
	var infraErr *InfrastructureError
	require.ErrorAs(t, err, &infraErr)
	assert.Equal(t, "load_bullet_image", infraErr.Op)
}
