package sdlview

import (
	"bytes"
	"fmt"
	"hash/fnv"
	"image"
	"math"
	"unsafe"

	"github.com/srwiley/oksvg"
	"github.com/srwiley/rasterx"
	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
)

// isSVG sniffs the first bytes of data for an SVG root element.
func isSVG(data []byte) bool {
	head := data
	if len(head) > 512 {
		head = head[:512]
	}
	head = bytes.TrimSpace(head)
	return bytes.HasPrefix(head, []byte("<svg")) ||
		(bytes.HasPrefix(head, []byte("<?xml")) && bytes.Contains(head, []byte("<svg")))
}

func imageKey(data []byte, height int32) string {
	h := fnv.New64a()
	h.Write(data)
	return fmt.Sprintf("%016x@%d", h.Sum64(), height)
}

// rasterizeSVG draws an SVG at the given height, keeping its aspect ratio.
func rasterizeSVG(data []byte, height int32) (*image.NRGBA, error) {
	icon, err := oksvg.ReadIconStream(bytes.NewReader(data))
	if err != nil {
		return nil, err
	}

	h := int(max(height, 1))
	w := h
	if icon.ViewBox.H > 0 && icon.ViewBox.W > 0 {
		w = max(int(math.Round(float64(h)*icon.ViewBox.W/icon.ViewBox.H)), 1)
	}

	icon.SetTarget(0, 0, float64(w), float64(h))
	rgba := image.NewNRGBA(image.Rect(0, 0, w, h))
	scanner := rasterx.NewScannerGV(w, h, rgba, rgba.Bounds())
	icon.Draw(rasterx.NewDasher(w, h, scanner), 1)

	return rgba, nil
}

// decodeImage turns encoded image data into a texture. SVG is rasterized at
// height; other formats are decoded at their native size by SDL_image.
func decodeImage(renderer *sdl.Renderer, data []byte, height int32) (*sdl.Texture, error) {
	if isSVG(data) {
		rgba, err := rasterizeSVG(data, height)
		if err != nil {
			return nil, fmt.Errorf("rasterize svg: %w", err)
		}
		return textureFromPixels(renderer, rgba)
	}

	rw, err := sdl.RWFromMem(data)
	if err != nil {
		return nil, err
	}
	surface, err := img.LoadRW(rw, true)
	if err != nil {
		return nil, fmt.Errorf("decode image: %w", err)
	}
	defer surface.Free()

	return renderer.CreateTextureFromSurface(surface)
}

func textureFromPixels(renderer *sdl.Renderer, rgba *image.NRGBA) (*sdl.Texture, error) {
	b := rgba.Bounds()
	surface, err := sdl.CreateRGBSurfaceWithFormatFrom(
		unsafe.Pointer(&rgba.Pix[0]),
		int32(b.Dx()), int32(b.Dy()), 32, int32(rgba.Stride),
		uint32(sdl.PIXELFORMAT_ABGR8888),
	)
	if err != nil {
		return nil, err
	}
	defer surface.Free()

	texture, err := renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return nil, err
	}
	texture.SetBlendMode(sdl.BLENDMODE_BLEND)
	return texture, nil
}

// scaleToHeight keeps the aspect ratio of a w×h image drawn at height.
func scaleToHeight(w, h, height int32) (int32, int32) {
	if w <= 0 || h <= 0 || height <= 0 {
		return 0, 0
	}
	return max(int32(math.Round(float64(w)*float64(height)/float64(h))), 1), height
}
