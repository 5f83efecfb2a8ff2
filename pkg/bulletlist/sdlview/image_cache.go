package sdlview

import "github.com/veandco/go-sdl2/sdl"

// imageCache holds bullet textures for the displayed tree. A texture that
// a whole displayed tree went by without drawing is destroyed, and a failed
// decode is not retried until the next tree is displayed.
type imageCache struct {
	textures map[string]*sdl.Texture
	failed   map[string]error
	drawn    map[string]struct{}
}

func newImageCache() *imageCache {
	return &imageCache{
		textures: make(map[string]*sdl.Texture),
		failed:   make(map[string]error),
		drawn:    make(map[string]struct{}),
	}
}

// load returns the texture stored under key, calling decode on a miss.
func (c *imageCache) load(key string, decode func() (*sdl.Texture, error)) (*sdl.Texture, error) {
	c.drawn[key] = struct{}{}

	if err, ok := c.failed[key]; ok {
		return nil, err
	}
	if texture, ok := c.textures[key]; ok {
		return texture, nil
	}

	texture, err := decode()
	if err != nil {
		c.failed[key] = err
		return nil, err
	}
	c.textures[key] = texture
	return texture, nil
}

// advance is called when a new tree is displayed.
func (c *imageCache) advance() {
	for key, texture := range c.textures {
		if _, ok := c.drawn[key]; !ok {
			destroyTexture(texture)
			delete(c.textures, key)
		}
	}
	clear(c.drawn)
	clear(c.failed)
}

func (c *imageCache) len() int {
	return len(c.textures)
}

func (c *imageCache) destroy() {
	for key, texture := range c.textures {
		destroyTexture(texture)
		delete(c.textures, key)
	}
	clear(c.drawn)
	clear(c.failed)
}

func destroyTexture(t *sdl.Texture) {
	if t != nil {
		t.Destroy()
	}
}
