package sdlview

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/veandco/go-sdl2/sdl"
)

type decodeCounter struct {
	calls int
	err   error
}

func (d *decodeCounter) decode() (*sdl.Texture, error) {
	d.calls++
	return nil, d.err
}

func TestImageCacheDecodesOnce(t *testing.T) {
	c := newImageCache()
	d := &decodeCounter{}

	for range 3 {
		_, err := c.load("dot@16", d.decode)
		require.NoError(t, err)
	}

	assert.Equal(t, 1, d.calls)
	assert.Equal(t, 1, c.len())
}

func TestImageCacheRemembersFailureUntilNextTree(t *testing.T) {
	c := newImageCache()
	d := &decodeCounter{err: errors.New("decode image: bad header")}

	_, err := c.load("broken@16", d.decode)
	require.Error(t, err)
	_, err = c.load("broken@16", d.decode)
	assert.EqualError(t, err, "decode image: bad header")
	assert.Equal(t, 1, d.calls)
	assert.Zero(t, c.len())

	c.advance()
	d.err = nil
	_, err = c.load("broken@16", d.decode)
	require.NoError(t, err)
	assert.Equal(t, 2, d.calls)
}

func TestImageCacheReleasesImagesATreeStoppedUsing(t *testing.T) {
	c := newImageCache()
	d := &decodeCounter{}

	_, _ = c.load("a@16", d.decode)
	c.advance()
	assert.Equal(t, 1, c.len())

	// The second tree draws only b, so a goes when the third is displayed.
	_, _ = c.load("b@16", d.decode)
	assert.Equal(t, 2, c.len())
	c.advance()
	assert.Equal(t, 1, c.len())
	assert.Contains(t, c.textures, "b@16")

	c.advance()
	assert.Zero(t, c.len())

	_, _ = c.load("c@16", d.decode)
	c.destroy()
	assert.Zero(t, c.len())
	assert.Equal(t, 3, d.calls)
}
