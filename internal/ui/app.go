// Package ui is the CPU preview: a fyne window animating the fractal with
// the software renderer, with the same keyboard controls as the GPU host.
package ui

import (
	"fmt"
	"image"
	"log"
	"sync"
	"time"

	"fyne.io/fyne/v2"
	"fyne.io/fyne/v2/app"
	"fyne.io/fyne/v2/canvas"
	"fyne.io/fyne/v2/container"
	"fyne.io/fyne/v2/widget"

	"github.com/shubhu121/3d-Sierpinski/internal/config"
	"github.com/shubhu121/3d-Sierpinski/internal/engine"
)

type viewer struct {
	mu    sync.Mutex
	state engine.ViewState
	quit  bool
}

func (v *viewer) apply(ev engine.Event) {
	v.mu.Lock()
	v.state.Apply(ev)
	v.mu.Unlock()
}

func (v *viewer) uniformsAt(t float32, w, h int) engine.FrameUniforms {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.UniformsAt(t, w, h)
}

func (v *viewer) palette() engine.PaletteIndex {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.state.Palette
}

func (v *viewer) stop() {
	v.mu.Lock()
	v.quit = true
	v.mu.Unlock()
}

func (v *viewer) stopped() bool {
	v.mu.Lock()
	defer v.mu.Unlock()
	return v.quit
}

// Run opens the preview window and animates until the window closes or the
// user quits with escape or q.
func Run(settings config.Settings, variant engine.Variant) error {
	log.Printf("UI: starting preview, variant=%s, %dx%d\n", variant, settings.Width, settings.Height)

	a := app.New()
	w := a.NewWindow("Sierpinski Fractal (" + variant.String() + ")")

	cfg := engine.RenderConfig{
		Width:   settings.Width,
		Height:  settings.Height,
		Variant: variant,
	}
	v := &viewer{
		state: engine.ViewState{
			OffsetX:  settings.OffsetX,
			OffsetY:  settings.OffsetY,
			Distance: settings.Distance,
			Palette:  engine.PaletteIndex(settings.Palette),
		},
	}
	if v.state.Distance == 0 {
		v.state = engine.NewViewState()
	}

	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	imgCanvas := canvas.NewImageFromImage(img)
	imgCanvas.FillMode = canvas.ImageFillContain
	imgCanvas.SetMinSize(fyne.NewSize(float32(cfg.Width), float32(cfg.Height)))

	fpsLabel := widget.NewLabel("FPS: -")
	paletteLabel := widget.NewLabel("Palette: " + v.palette().String())

	w.SetContent(container.NewBorder(nil, container.NewHBox(fpsLabel, paletteLabel), nil, nil, imgCanvas))

	w.Canvas().SetOnTypedKey(func(ev *fyne.KeyEvent) {
		switch ev.Name {
		case fyne.KeyEscape, fyne.KeyQ:
			v.stop()
			w.Close()
		case fyne.KeySpace:
			v.apply(engine.EventCyclePalette)
			paletteLabel.SetText("Palette: " + v.palette().String())
		case fyne.KeyUp:
			v.apply(engine.EventOffsetUp)
		case fyne.KeyDown:
			v.apply(engine.EventOffsetDown)
		case fyne.KeyLeft:
			v.apply(engine.EventOffsetLeft)
		case fyne.KeyRight:
			v.apply(engine.EventOffsetRight)
		case fyne.KeyR:
			v.apply(engine.EventReset)
		}
	})
	w.Canvas().SetOnTypedRune(func(r rune) {
		switch r {
		case '+', '=':
			v.apply(engine.EventZoomIn)
		case '-':
			v.apply(engine.EventZoomOut)
		}
	})

	go func() {
		start := time.Now()
		frames := 0
		lastFPS := start

		for !v.stopped() {
			elapsed := float32(time.Since(start).Seconds())
			u := v.uniformsAt(elapsed, cfg.Width, cfg.Height)

			engine.RenderInto(cfg, u, img, nil)
			imgCanvas.Refresh()

			frames++
			if now := time.Now(); now.Sub(lastFPS) >= time.Second {
				fps := float64(frames) / now.Sub(lastFPS).Seconds()
				fpsLabel.SetText(fmt.Sprintf("FPS: %.1f", fps))
				frames = 0
				lastFPS = now
			}
		}
	}()

	w.ShowAndRun()
	v.stop()
	return nil
}
