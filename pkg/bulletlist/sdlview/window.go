package sdlview

import (
	"os"
	"strconv"

	"github.com/veandco/go-sdl2/img"
	"github.com/veandco/go-sdl2/sdl"
	"github.com/veandco/go-sdl2/ttf"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/constants"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/internal"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
)

// Window is a standalone SDL window and renderer for hosts that do not
// already own one.
type Window struct {
	Window          *sdl.Window
	Renderer        *sdl.Renderer
	Title           string
	hasVSync        bool
	lastPresentTime uint64
}

// NewWindow initializes SDL, SDL_ttf and SDL_image and opens a window.
// In development mode (ENVIRONMENT=DEV) WINDOW_WIDTH and WINDOW_HEIGHT
// override the requested size.
func NewWindow(title string, width, height int32, winOpts WindowOptions) (_ *Window, err error) {
	var undo teardown
	defer func() {
		if err != nil {
			undo.run()
		}
	}()

	if err := sdl.Init(sdl.INIT_VIDEO); err != nil {
		return nil, bulletlist.NewInfrastructureError("sdl_init", err)
	}
	undo.push(sdl.Quit)

	if err := ttf.Init(); err != nil {
		return nil, bulletlist.NewInfrastructureError("ttf_init", err)
	}
	undo.push(ttf.Quit)

	if err := img.Init(img.INIT_PNG | img.INIT_JPG); err != nil {
		internal.GetInternalLogger().Warn("SDL_image init incomplete", "error", err)
	}
	undo.push(img.Quit)

	if winOpts.IsZero() {
		winOpts = WindowOptions{Resizable: true}
	}

	x, y := int32(sdl.WINDOWPOS_CENTERED), int32(sdl.WINDOWPOS_CENTERED)
	if constants.IsDevMode() {
		winOpts.Borderless = false
		x, y = 50, 50
		width = envSize(constants.WindowWidthEnvVar, width)
		height = envSize(constants.WindowHeightEnvVar, height)
	}

	internal.GetInternalLogger().Debug("Initializing SDL Window", "width", width, "height", height)

	window, err := sdl.CreateWindow(title, x, y, width, height, winOpts.ToSDLFlags())
	if err != nil {
		return nil, bulletlist.NewInfrastructureError("create_window", err)
	}
	undo.push(func() { window.Destroy() })

	renderer, err := sdl.CreateRenderer(window, -1, sdl.RENDERER_ACCELERATED|sdl.RENDERER_PRESENTVSYNC)
	if err != nil {
		return nil, bulletlist.NewInfrastructureError("create_renderer", err)
	}

	info, infoErr := renderer.GetInfo()
	vsync := infoErr == nil && info.Flags&sdl.RENDERER_PRESENTVSYNC != 0

	return &Window{
		Window:   window,
		Renderer: renderer,
		Title:    title,
		hasVSync: vsync,
	}, nil
}

// teardown undoes initialization steps in reverse order.
type teardown []func()

func (t *teardown) push(f func()) {
	*t = append(*t, f)
}

func (t teardown) run() {
	for i := len(t) - 1; i >= 0; i-- {
		t[i]()
	}
}

func envSize(name string, fallback int32) int32 {
	v := os.Getenv(name)
	if v == "" {
		return fallback
	}

	n, err := strconv.ParseInt(v, 10, 32)
	if err != nil {
		internal.GetInternalLogger().Warn("Invalid window size; using default", "var", name, "value", v, "error", err)
		return fallback
	}
	return int32(n)
}

// Bounds returns the full drawable area.
func (w *Window) Bounds() sdl.Rect {
	width, height := w.Window.GetSize()
	return sdl.Rect{X: 0, Y: 0, W: width, H: height}
}

// Clear fills the window with c.
func (w *Window) Clear(c model.Color) {
	w.Renderer.SetDrawColor(c.R, c.G, c.B, c.A)
	w.Renderer.Clear()
}

// Present swaps the render buffer and enforces ~60fps frame timing
// when VSync is not available. Use this instead of renderer.Present().
func (w *Window) Present() {
	w.Renderer.Present()
	if !w.hasVSync {
		now := sdl.GetTicks64()
		if elapsed := now - w.lastPresentTime; elapsed < 16 {
			sdl.Delay(uint32(16 - elapsed))
		}
		w.lastPresentTime = sdl.GetTicks64()
	}
}

// Close destroys the window and shuts SDL down.
func (w *Window) Close() {
	w.Renderer.Destroy()
	w.Window.Destroy()
	img.Quit()
	ttf.Quit()
	sdl.Quit()
}
