package engine

import (
	"testing"

	"github.com/go-gl/mathgl/mgl32"
)

func TestMarchBasicHit(t *testing.T) {
	// Straight down the z axis the ray meets the edge midpoint (0,0,1).
	ro := mgl32.Vec3{0, 0, 4.5}
	rd := mgl32.Vec3{0, 0, -1}

	dist, steps := MarchBasic(ro, rd)
	if dist == Miss {
		t.Fatal("expected a hit marching toward the fractal")
	}
	if dist < 3.0 || dist > 3.6 {
		t.Errorf("hit distance = %v, want around 3.5", dist)
	}
	if steps <= 0 || steps > BasicMaxSteps {
		t.Errorf("step count = %d, want in (0, %d]", steps, BasicMaxSteps)
	}
}

func TestMarchBasicMiss(t *testing.T) {
	ro := mgl32.Vec3{0, 0, 100}
	rd := mgl32.Vec3{0, 0, 1}

	dist, _ := MarchBasic(ro, rd)
	if dist != Miss {
		t.Errorf("marching away from the fractal returned %v, want Miss", dist)
	}
}

func TestMarchEnhancedHit(t *testing.T) {
	// Approach the (1,1,1) vertex along the main diagonal.
	ro := mgl32.Vec3{3, 3, 3}
	rd := mgl32.Vec3{-1, -1, -1}.Normalize()

	dist, trap := MarchEnhanced(ro, rd)
	if dist == Miss {
		t.Fatal("expected a hit marching toward the vertex")
	}
	if dist < 2.5 || dist > 3.6 {
		t.Errorf("hit distance = %v, want around 3.4", dist)
	}
	if trap.Dist >= trapInit {
		t.Errorf("orbit trap not accumulated: %+v", trap)
	}
}

func TestMarchEnhancedMiss(t *testing.T) {
	ro := mgl32.Vec3{0, 0, 100}
	rd := mgl32.Vec3{0, 0, 1}

	dist, trap := MarchEnhanced(ro, rd)
	if dist != Miss {
		t.Errorf("marching away from the fractal returned %v, want Miss", dist)
	}
	// Even a miss reports traps; the glow pass colors near-misses with them.
	if trap.Dist >= trapInit {
		t.Errorf("orbit trap not accumulated on miss: %+v", trap)
	}
}

func TestMarchBasicDeterministic(t *testing.T) {
	ro := mgl32.Vec3{0.1, -0.2, 4.5}
	rd := mgl32.Vec3{-0.02, 0.01, -1}.Normalize()

	d1, s1 := MarchBasic(ro, rd)
	d2, s2 := MarchBasic(ro, rd)
	if d1 != d2 || s1 != s2 {
		t.Errorf("march not reproducible: (%v,%d) vs (%v,%d)", d1, s1, d2, s2)
	}
}
