package engine

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestZoomClampsNear(t *testing.T) {
	s := NewViewState()
	for i := 0; i < 100; i++ {
		s.Apply(EventZoomIn)
	}
	if s.Distance != MinCameraDistance {
		t.Errorf("distance after repeated zoom in = %v, want %v", s.Distance, float32(MinCameraDistance))
	}
}

func TestZoomClampsFar(t *testing.T) {
	s := NewViewState()
	s.Distance = MinCameraDistance
	for i := 0; i < 100; i++ {
		s.Apply(EventZoomOut)
	}
	if s.Distance != MaxCameraDistance {
		t.Errorf("distance after repeated zoom out = %v, want %v", s.Distance, float32(MaxCameraDistance))
	}
}

func TestOffsetSteps(t *testing.T) {
	s := NewViewState()
	s.Apply(EventOffsetUp)
	s.Apply(EventOffsetUp)
	s.Apply(EventOffsetLeft)
	s.Apply(EventOffsetRight)
	s.Apply(EventOffsetRight)

	if math32.Abs(s.OffsetY-0.2) > 1e-6 {
		t.Errorf("OffsetY = %v, want 0.2", s.OffsetY)
	}
	if math32.Abs(s.OffsetX-0.1) > 1e-6 {
		t.Errorf("OffsetX = %v, want 0.1", s.OffsetX)
	}
}

func TestPaletteCycleClosure(t *testing.T) {
	s := NewViewState()
	start := s.Palette
	for i := 0; i < 4; i++ {
		s.Apply(EventCyclePalette)
	}
	if s.Palette != start {
		t.Errorf("palette after four cycles = %v, want %v", s.Palette, start)
	}
}

func TestReset(t *testing.T) {
	s := NewViewState()
	s.Apply(EventOffsetUp)
	s.Apply(EventOffsetLeft)
	s.Apply(EventZoomIn)
	s.Apply(EventCyclePalette)
	s.Apply(EventReset)

	if s.OffsetX != 0 || s.OffsetY != 0 {
		t.Errorf("offsets after reset = (%v, %v), want (0, 0)", s.OffsetX, s.OffsetY)
	}
	if s.Distance != DefaultCameraDistance {
		t.Errorf("distance after reset = %v, want %v", s.Distance, float32(DefaultCameraDistance))
	}
	// Reset keeps the palette choice.
	if s.Palette != PaletteFire {
		t.Errorf("palette after reset = %v, want fire", s.Palette)
	}
}

func TestUniformsAtTimeZero(t *testing.T) {
	s := NewViewState()
	u := s.UniformsAt(0, 800, 600)

	if u.Width != 800 || u.Height != 600 {
		t.Errorf("uniform size = %dx%d, want 800x600", u.Width, u.Height)
	}
	if u.Time != 0 {
		t.Errorf("uniform time = %v, want 0", u.Time)
	}
	if u.Rotation != mgl32.Ident3() {
		t.Errorf("rotation at time 0 = %v, want identity", u.Rotation)
	}

	// sin(0)=0 and cos(0)=1 pin the camera start.
	want := mgl32.Vec3{0, 0.2, DefaultCameraDistance + 0.6}
	if !u.CamPos.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("camera at time 0 = %v, want %v", u.CamPos, want)
	}
}

func TestUniformsReflectOffsets(t *testing.T) {
	s := NewViewState()
	s.Apply(EventOffsetRight)
	s.Apply(EventOffsetUp)

	u := s.UniformsAt(0, 100, 100)
	if math32.Abs(u.CamPos.X()-0.1) > 1e-6 {
		t.Errorf("CamPos.X = %v, want 0.1", u.CamPos.X())
	}
	if math32.Abs(u.CamPos.Y()-0.3) > 1e-6 {
		t.Errorf("CamPos.Y = %v, want 0.3", u.CamPos.Y())
	}
}
