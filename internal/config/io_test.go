package config

import (
	"os"
	"path/filepath"
	"testing"
)

func TestSaveLoadRoundTrip(t *testing.T) {
	path := filepath.Join(t.TempDir(), "settings.json")

	want := Settings{
		Width:    640,
		Height:   360,
		Variant:  "basic",
		Palette:  2,
		Distance: 6.3,
		OffsetX:  -0.2,
		OffsetY:  0.5,
	}
	if err := Save(path, want); err != nil {
		t.Fatalf("Save: %v", err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	if got != want {
		t.Errorf("round trip mismatch:\ngot  %+v\nwant %+v", got, want)
	}
}

func TestLoadMissingFile(t *testing.T) {
	if _, err := Load(filepath.Join(t.TempDir(), "absent.json")); err == nil {
		t.Error("loading a missing file should fail")
	}
}

func TestLoadFillsDefaults(t *testing.T) {
	path := filepath.Join(t.TempDir(), "partial.json")
	if err := os.WriteFile(path, []byte(`{"palette": 1}`), 0o644); err != nil {
		t.Fatal(err)
	}

	got, err := Load(path)
	if err != nil {
		t.Fatalf("Load: %v", err)
	}
	def := Default()
	if got.Width != def.Width || got.Height != def.Height {
		t.Errorf("size = %dx%d, want defaults %dx%d", got.Width, got.Height, def.Width, def.Height)
	}
	if got.Distance != def.Distance {
		t.Errorf("distance = %v, want default %v", got.Distance, def.Distance)
	}
	if got.Palette != 1 {
		t.Errorf("palette = %d, want 1", got.Palette)
	}
}

func TestForMode(t *testing.T) {
	final := ForMode("final")
	if final.Width != 1920 || final.Height != 1080 {
		t.Errorf("final mode size = %dx%d, want 1920x1080", final.Width, final.Height)
	}
	preview := ForMode("preview")
	if preview.Width >= final.Width {
		t.Errorf("preview width %d not smaller than final %d", preview.Width, final.Width)
	}
}
