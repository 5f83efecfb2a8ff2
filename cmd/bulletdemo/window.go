package main

import (
	"github.com/veandco/go-sdl2/sdl"

	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/model"
	"github.com/BrandonKowalski/bulletlist/pkg/bulletlist/sdlview"
)

func runWindow(m *model.ListModel) error {
	win, err := sdlview.NewWindow("Bullet List", int32(width), int32(height), sdlview.WindowOptions{Resizable: true})
	if err != nil {
		return err
	}
	defer win.Close()

	surface := sdlview.NewSurface(win.Renderer, win.Bounds(), sdlview.Options{FontPath: fontPath})
	defer surface.Close()

	list := bulletlist.NewWithModel(surface, m)
	defer list.Close()

	background := bulletlist.BackgroundColor()
	logger := bulletlist.GetLogger()
	for {
		if event := sdl.WaitEventTimeout(16); event != nil {
			switch e := event.(type) {
			case *sdl.QuitEvent:
				return nil
			case *sdl.WindowEvent:
				if e.Event == sdl.WINDOWEVENT_SIZE_CHANGED {
					surface.SetBounds(win.Bounds())
				}
			}
		}

		win.Clear(background)
		if _, err := surface.Draw(); err != nil {
			logger.Error("Failed to draw list", "error", err)
			return err
		}
		win.Present()
	}
}
