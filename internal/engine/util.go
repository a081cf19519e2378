package engine

import (
	"fmt"
	"image"
	"image/png"
	"os"

	"github.com/shubhu121/3d-Sierpinski/internal/config"
)

// Snapshot renders a single frame from the given settings at a fixed
// animation time and returns the image.
func Snapshot(settings config.Settings, time float32) image.Image {
	state := ViewState{
		OffsetX:  settings.OffsetX,
		OffsetY:  settings.OffsetY,
		Distance: settings.Distance,
		Palette:  PaletteIndex(settings.Palette),
	}
	cfg := RenderConfig{
		Width:   settings.Width,
		Height:  settings.Height,
		Variant: ParseVariant(settings.Variant),
	}
	return Render(cfg, state.UniformsAt(time, cfg.Width, cfg.Height))
}

// SavePNG writes an image to a PNG file.
func SavePNG(path string, img image.Image) error {
	f, err := os.Create(path)
	if err != nil {
		return fmt.Errorf("create png: %w", err)
	}
	defer f.Close()
	if err := png.Encode(f, img); err != nil {
		return fmt.Errorf("encode png: %w", err)
	}
	return nil
}
