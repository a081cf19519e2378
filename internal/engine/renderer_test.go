package engine

import (
	"bytes"
	"image"
	"sync"
	"testing"
)

func TestParseVariant(t *testing.T) {
	if v := ParseVariant("enhanced"); v != VariantEnhanced {
		t.Errorf("ParseVariant(enhanced) = %v", v)
	}
	if v := ParseVariant("basic"); v != VariantBasic {
		t.Errorf("ParseVariant(basic) = %v", v)
	}
	if v := ParseVariant("nonsense"); v != VariantBasic {
		t.Errorf("ParseVariant falls back to basic, got %v", v)
	}
}

func TestRenderBasicFrame(t *testing.T) {
	cfg := RenderConfig{Width: 64, Height: 48, Variant: VariantBasic}
	u := NewViewState().UniformsAt(1.0, cfg.Width, cfg.Height)

	img := Render(cfg, u).(*image.RGBA)
	b := img.Bounds()
	if b.Dx() != 64 || b.Dy() != 48 {
		t.Fatalf("frame size = %dx%d, want 64x48", b.Dx(), b.Dy())
	}
	for i := 3; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 255 {
			t.Fatalf("pixel %d has alpha %d, want 255", i/4, img.Pix[i])
		}
	}
}

func TestRenderEnhancedFrame(t *testing.T) {
	cfg := RenderConfig{Width: 24, Height: 16, Variant: VariantEnhanced}
	u := NewViewState().UniformsAt(0.5, cfg.Width, cfg.Height)

	img := Render(cfg, u).(*image.RGBA)
	// The sky gradient guarantees a non-black frame.
	nonZero := false
	for i := 0; i < len(img.Pix); i += 4 {
		if img.Pix[i] != 0 || img.Pix[i+1] != 0 || img.Pix[i+2] != 0 {
			nonZero = true
			break
		}
	}
	if !nonZero {
		t.Error("enhanced frame rendered fully black")
	}
}

func TestRenderDeterministicAcrossWorkers(t *testing.T) {
	cfg := RenderConfig{Width: 48, Height: 32, Variant: VariantBasic}
	u := NewViewState().UniformsAt(2.0, cfg.Width, cfg.Height)

	t.Setenv("RAYMARCHER_WORKERS", "1")
	a := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	RenderInto(cfg, u, a, nil)

	t.Setenv("RAYMARCHER_WORKERS", "4")
	b := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	RenderInto(cfg, u, b, nil)

	if !bytes.Equal(a.Pix, b.Pix) {
		t.Error("frame differs between 1 and 4 workers")
	}
}

func TestRenderIntoSizeMismatch(t *testing.T) {
	cfg := RenderConfig{Width: 10, Height: 10, Variant: VariantBasic}
	u := NewViewState().UniformsAt(0, 10, 10)

	img := image.NewRGBA(image.Rect(0, 0, 5, 5))
	RenderInto(cfg, u, img, nil) // must not panic or write out of bounds
	for _, p := range img.Pix {
		if p != 0 {
			t.Fatal("mismatched image was written to")
		}
	}
}

func TestRenderProgressCallback(t *testing.T) {
	cfg := RenderConfig{Width: 64, Height: 64, Variant: VariantBasic}
	u := NewViewState().UniformsAt(0, cfg.Width, cfg.Height)

	var mu sync.Mutex
	calls := 0
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	RenderInto(cfg, u, img, func() {
		mu.Lock()
		calls++
		mu.Unlock()
	})
	if calls == 0 {
		t.Error("progress callback never invoked")
	}
}

func TestShadePixelPure(t *testing.T) {
	cfg := RenderConfig{Width: 100, Height: 80, Variant: VariantEnhanced}
	u := NewViewState().UniformsAt(1.5, cfg.Width, cfg.Height)

	a := ShadePixel(50.5, 40.5, cfg, u)
	b := ShadePixel(50.5, 40.5, cfg, u)
	if a != b {
		t.Errorf("ShadePixel not reproducible: %v vs %v", a, b)
	}
}
