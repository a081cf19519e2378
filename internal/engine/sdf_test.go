package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

var samplePoints = []mgl32.Vec3{
	{0, 0, 0},
	{0.3, -0.2, 0.7},
	{1, 1, 1},
	{-1.5, 0.4, 2.2},
	{0, 0, 4.5},
	{3, 3, 3},
	{-2, -2, -2},
}

func TestBasicDENonNegative(t *testing.T) {
	for _, p := range samplePoints {
		if d := BasicDE(p); d < 0 {
			t.Errorf("BasicDE(%v) = %v, want >= 0", p, d)
		}
	}
}

func TestBasicDENearVertex(t *testing.T) {
	// The tetrahedron vertices belong to the fractal, so the estimate
	// there must be under the hit threshold.
	for _, v := range tetraVertices {
		if d := BasicDE(v); d >= BasicHitThreshold {
			t.Errorf("BasicDE(%v) = %v, want < %v", v, d, float32(BasicHitThreshold))
		}
	}
}

func TestBasicDEFarField(t *testing.T) {
	p := mgl32.Vec3{0, 0, 100}
	if d := BasicDE(p); d < 50 {
		t.Errorf("BasicDE(%v) = %v, want a large positive distance", p, d)
	}
}

func TestBasicDEDeterministic(t *testing.T) {
	for _, p := range samplePoints {
		a := BasicDE(p)
		b := BasicDE(p)
		if a != b {
			t.Errorf("BasicDE(%v) not reproducible: %v vs %v", p, a, b)
		}
	}
}

func TestEnhancedDENonNegative(t *testing.T) {
	for _, p := range samplePoints {
		if s := EnhancedDE(p); s.Distance < 0 {
			t.Errorf("EnhancedDE(%v).Distance = %v, want >= 0", p, s.Distance)
		}
	}
}

func TestEnhancedDEAtFixedPoint(t *testing.T) {
	// (1,1,1) survives every fold and the scale-translate unchanged, so
	// the residual radius stays bounded while the derivative doubles
	// each iteration.
	s := EnhancedDE(mgl32.Vec3{1, 1, 1})
	if s.Distance >= EnhancedHitThreshold {
		t.Errorf("EnhancedDE(1,1,1).Distance = %v, want < %v", s.Distance, float32(EnhancedHitThreshold))
	}
}

func TestEnhancedDETrapPopulated(t *testing.T) {
	for _, p := range samplePoints {
		s := EnhancedDE(p)
		if s.Trap.Dist >= trapInit || s.Trap.L1 >= trapInit || s.Trap.Dot2 >= trapInit {
			t.Errorf("EnhancedDE(%v) left trap at initial value: %+v", p, s.Trap)
		}
		if s.Trap.Dist < 0 || s.Trap.L1 < 0 || s.Trap.Dot2 < 0 {
			t.Errorf("EnhancedDE(%v) produced negative trap: %+v", p, s.Trap)
		}
	}
}

func TestEnhancedDEDeterministic(t *testing.T) {
	for _, p := range samplePoints {
		a := EnhancedDE(p)
		b := EnhancedDE(p)
		if a != b {
			t.Errorf("EnhancedDE(%v) not reproducible: %+v vs %+v", p, a, b)
		}
	}
}
