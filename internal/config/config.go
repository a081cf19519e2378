// Package config holds viewer settings and their JSON persistence, so a
// tuned camera setup can be saved and replayed across runs.
package config

// Settings describes one viewer configuration: output size, pipeline
// variant and the initial camera state.
type Settings struct {
	Width   int    `json:"width"`
	Height  int    `json:"height"`
	Variant string `json:"variant"`

	Palette  int     `json:"palette"`
	Distance float32 `json:"distance"`
	OffsetX  float32 `json:"offset_x"`
	OffsetY  float32 `json:"offset_y"`
}

// Default returns the settings the GL host starts with when no file is
// given.
func Default() Settings {
	return Settings{
		Width:    1280,
		Height:   720,
		Variant:  "enhanced",
		Distance: 4.5,
	}
}

// ForMode returns reasonable defaults for preview/final modes on the CPU
// path. Preview keeps the software frame cheap enough for interactive
// rates.
func ForMode(mode string) Settings {
	s := Default()
	switch mode {
	case "final":
		s.Width = 1920
		s.Height = 1080
	default:
		s.Width = 400
		s.Height = 300
	}
	return s
}
