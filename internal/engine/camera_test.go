package engine

import (
	"testing"

	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

func TestBasicRayUnitDirection(t *testing.T) {
	uvs := []mgl32.Vec2{{0, 0}, {0.5, -0.3}, {-0.8, 0.6}}
	for _, uv := range uvs {
		for _, time := range []float32{0, 1.7, 30} {
			_, rd := basicRay(uv, time)
			if math32.Abs(rd.Len()-1) > 1e-5 {
				t.Errorf("basicRay(%v, %v) direction length = %v, want 1", uv, time, rd.Len())
			}
		}
	}
}

func TestBasicRayOrbitRadius(t *testing.T) {
	// The rotation moves the origin around a circle but never changes
	// its distance to the fractal.
	for _, time := range []float32{0, 0.5, 2, 10} {
		ro, _ := basicRay(mgl32.Vec2{0, 0}, time)
		if math32.Abs(ro.Len()-DefaultCameraDistance) > 1e-4 {
			t.Errorf("orbit radius at t=%v is %v, want %v", time, ro.Len(), float32(DefaultCameraDistance))
		}
	}
}

func TestBasicRayStartsOnAxis(t *testing.T) {
	ro, rd := basicRay(mgl32.Vec2{0, 0}, 0)
	want := mgl32.Vec3{0, 0, DefaultCameraDistance}
	if !ro.ApproxEqualThreshold(want, 1e-6) {
		t.Errorf("origin at t=0 = %v, want %v", ro, want)
	}
	// Center ray looks straight at the fractal.
	if !rd.ApproxEqualThreshold(mgl32.Vec3{0, 0, -1}, 1e-5) {
		t.Errorf("center direction at t=0 = %v, want -z", rd)
	}
}

func TestEnhancedRayUsesUniforms(t *testing.T) {
	s := NewViewState()
	u := s.UniformsAt(1.25, 640, 480)

	ro, rd := enhancedRay(mgl32.Vec2{0.1, -0.2}, u)
	if ro != u.CamPos {
		t.Errorf("ray origin = %v, want camera position %v", ro, u.CamPos)
	}
	if math32.Abs(rd.Len()-1) > 1e-5 {
		t.Errorf("ray direction length = %v, want 1", rd.Len())
	}
}

func TestEnhancedRayRotates(t *testing.T) {
	s := NewViewState()
	u0 := s.UniformsAt(0, 100, 100)
	u1 := s.UniformsAt(3, 100, 100)

	_, rd0 := enhancedRay(mgl32.Vec2{0, 0}, u0)
	_, rd1 := enhancedRay(mgl32.Vec2{0, 0}, u1)
	if rd0.ApproxEqualThreshold(rd1, 1e-6) {
		t.Error("center ray direction did not change with the animated rotation")
	}
}
