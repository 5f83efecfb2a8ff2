// Package sdlview draws bullet list trees with SDL2.
//
// Text is rendered with SDL_ttf, which also wraps item text to the available
// width. Image bullets are decoded on first draw (SDL_image for raster
// formats, oksvg for SVG) and cached. Spacing values are treated as pixels.
package sdlview

import (
	"errors"
	"math"

	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/constants"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/internal"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/layout"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
)

// DefaultGutter is the space between the bullet column and the text.
const DefaultGutter int32 = 6

// Options configures a Surface.
type Options struct {
	FontPath string // Overrides the theme font
	Gutter   int32  // Pixels between bullet and text; 0 uses DefaultGutter
}

// Surface draws the most recently displayed tree into a rectangle of an
// SDL renderer.
type Surface struct {
	renderer *sdl.Renderer
	fontPath string
	gutter   int32
	bounds   sdl.Rect
	tree     layout.Tree
	fonts    map[int]*ttf.Font
	images   *imageCache
}

// NewSurface creates a Surface drawing into bounds.
func NewSurface(renderer *sdl.Renderer, bounds sdl.Rect, opts Options) *Surface {
	fontPath := opts.FontPath
	if fontPath == "" {
		fontPath = internal.GetTheme().FontPath
	}

	gutter := opts.Gutter
	if gutter <= 0 {
		gutter = DefaultGutter
	}

	return &Surface{
		renderer: renderer,
		fontPath: fontPath,
		gutter:   gutter,
		bounds:   bounds,
		fonts:    make(map[int]*ttf.Font),
		images:   newImageCache(),
	}
}

// Display replaces the tree drawn by the next Draw.
func (s *Surface) Display(tree layout.Tree) {
	s.tree = tree
	s.images.advance()
}

// SetBounds moves or resizes the drawing area.
func (s *Surface) SetBounds(bounds sdl.Rect) {
	s.bounds = bounds
}

// Draw renders the current tree and returns the height used. Rows below
// the bounds are skipped.
func (s *Surface) Draw() (int32, error) {
	tree := s.tree
	if tree.Empty() {
		return 0, nil
	}

	if s.fontPath == "" {
		return 0, bulletlist.NewInfrastructureError("draw", bulletlist.ErrNoFont)
	}

	theme := internal.GetTheme()
	pad := pixels(tree.Padding)

	bullets := make([]bulletSize, len(tree.Rows))
	columnWidth := int32(0)
	for i, row := range tree.Rows {
		size, err := s.measureBullet(row.Bullet)
		if err != nil {
			return 0, err
		}
		bullets[i] = size
		columnWidth = max(columnWidth, size.w)
	}

	originX := s.bounds.X + int32(pad.Left)
	contentWidth := s.bounds.W - int32(pad.Horizontal())
	top := s.bounds.Y + int32(pad.Top)
	bottom := s.bounds.Y + s.bounds.H
	used := int32(0)

	for i, row := range tree.Rows {
		y := top + used
		if y > bottom {
			break
		}

		width := columnWidth
		if tree.Strategy != model.StrategyGrid {
			width = bullets[i].w
		}

		margin := pixels(row.Margin)
		x := originX + int32(margin.Left)
		y += int32(margin.Top)
		textX := x + width + s.gutter
		textWidth := contentWidth - int32(margin.Horizontal()) - width - s.gutter

		textHeight, err := s.drawText(row.Text, theme.TextColor, textX, y, textWidth)
		if err != nil {
			return 0, err
		}

		bulletY := y + int32(math.Round(row.Bullet.OffsetY))
		if err := s.drawBullet(row.Bullet, bullets[i], theme.TextColor, x, bulletY); err != nil {
			return 0, err
		}

		used += max(textHeight, bullets[i].h) + int32(margin.Vertical())
	}

	return used + int32(pad.Vertical()), nil
}

// Close releases fonts and cached textures.
func (s *Surface) Close() {
	for size, font := range s.fonts {
		font.Close()
		delete(s.fonts, size)
	}
	s.images.destroy()
}

type bulletSize struct {
	w, h  int32
	glyph string // Set when an image could not be decoded
}

func (s *Surface) font(size float64) (*ttf.Font, error) {
	points := max(int(math.Round(size)), 1)
	if f, ok := s.fonts[points]; ok {
		return f, nil
	}

	f, err := ttf.OpenFont(s.fontPath, points)
	if err != nil {
		return nil, bulletlist.NewInfrastructureError("open_font", err)
	}
	s.fonts[points] = f
	return f, nil
}

func (s *Surface) measureBullet(b layout.BulletNode) (bulletSize, error) {
	font, err := s.font(b.FontSize)
	if err != nil {
		return bulletSize{}, err
	}

	if b.Mode == layout.ModeImage {
		texture, err := s.image(b.Image, int32(font.Height()))
		if err == nil {
			_, _, w, h, qerr := texture.Query()
			if qerr == nil {
				w, h = scaleToHeight(w, h, int32(font.Height()))
				return bulletSize{w: w, h: h}, nil
			}
			err = qerr
		}
		internal.GetInternalLogger().Warn("Bullet image unusable; drawing default bullet", "error", err)
		b.Glyph = constants.DefaultBullet
	}

	w, h, err := font.SizeUTF8(b.Glyph)
	if err != nil {
		return bulletSize{}, bulletlist.NewInfrastructureError("measure_text", err)
	}
	return bulletSize{w: int32(w), h: int32(h), glyph: b.Glyph}, nil
}

func (s *Surface) image(data []byte, height int32) (*sdl.Texture, error) {
	if len(data) == 0 {
		return nil, errors.New("empty bullet image")
	}

	return s.images.load(imageKey(data, height), func() (*sdl.Texture, error) {
		return decodeImage(s.renderer, data, height)
	})
}

func (s *Surface) drawBullet(b layout.BulletNode, size bulletSize, fallback model.Color, x, y int32) error {
	if size.glyph == "" {
		font, err := s.font(b.FontSize)
		if err != nil {
			return err
		}
		texture, err := s.image(b.Image, int32(font.Height()))
		if err != nil {
			return bulletlist.NewInfrastructureError("draw_image", err)
		}
		return s.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: size.w, H: size.h})
	}

	font, err := s.font(b.FontSize)
	if err != nil {
		return err
	}
	color := internal.ResolveColor(b.Color, fallback)
	_, err = s.blit(font, size.glyph, color, x, y, 0)
	return err
}

func (s *Surface) drawText(t layout.TextNode, fallback model.Color, x, y, width int32) (int32, error) {
	font, err := s.font(t.FontSize)
	if err != nil {
		return 0, err
	}
	if t.Text == "" {
		return int32(font.Height()), nil
	}

	color := internal.ResolveColor(t.Color, fallback)
	return s.blit(font, t.Text, color, x, y, max(width, 1))
}

// blit renders text at (x, y), wrapping at wrap pixels when wrap > 0, and
// returns the rendered height.
func (s *Surface) blit(font *ttf.Font, text string, c model.Color, x, y, wrap int32) (int32, error) {
	color := sdl.Color{R: c.R, G: c.G, B: c.B, A: c.A}

	var surface *sdl.Surface
	var err error
	if wrap > 0 {
		surface, err = font.RenderUTF8BlendedWrapped(text, color, int(wrap))
	} else {
		surface, err = font.RenderUTF8Blended(text, color)
	}
	if err != nil {
		return 0, bulletlist.NewInfrastructureError("render_text", err)
	}
	defer surface.Free()

	texture, err := s.renderer.CreateTextureFromSurface(surface)
	if err != nil {
		return 0, bulletlist.NewInfrastructureError("render_text", err)
	}
	defer texture.Destroy()

	if err := s.renderer.Copy(texture, nil, &sdl.Rect{X: x, Y: y, W: surface.W, H: surface.H}); err != nil {
		return 0, bulletlist.NewInfrastructureError("render_text", err)
	}
	return surface.H, nil
}

// pixels rounds every side of t to whole pixels.
func pixels(t model.Thickness) model.Thickness {
	return model.Thickness{
		Left:   float64(px(t.Left)),
		Top:    float64(px(t.Top)),
		Right:  float64(px(t.Right)),
		Bottom: float64(px(t.Bottom)),
	}
}

// px converts a spacing value to pixels; negative spacing collapses to zero.
func px(v float64) int32 {
	if v <= 0 || math.IsNaN(v) {
		return 0
	}
	return int32(math.Round(v))
}
