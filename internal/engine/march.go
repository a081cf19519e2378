package engine

import "github.com/go-gl/mathgl/mgl32"

// Marching budgets. The relaxation factors stay below 1 because the distance
// estimators are conservative bounds, not exact distances; stepping the full
// estimate can overshoot thin features of the fractal.
const (
	BasicMaxSteps        = 256
	BasicMaxDistance     = 20.0
	BasicHitThreshold    = 1e-3
	BasicRelaxation      = 0.5
	EnhancedMaxSteps     = 200
	EnhancedMaxDistance  = 50.0
	EnhancedHitThreshold = 1e-4
	EnhancedRelaxation   = 0.6
)

// Miss is the sentinel hit distance reported when a ray leaves the marching
// range or exhausts its step budget. It is a well-defined outcome, not an
// error.
const Miss = float32(-1)

// MarchBasic sphere-traces the basic distance estimator along ro+t*rd.
// It returns the hit distance (or Miss) and the number of steps taken; the
// step count drives the basic variant's coloring.
func MarchBasic(ro, rd mgl32.Vec3) (float32, int) {
	t := float32(0)
	steps := 0
	for i := 0; i < BasicMaxSteps; i++ {
		d := BasicDE(ro.Add(rd.Mul(t)))
		if d < BasicHitThreshold {
			return t, steps
		}
		t += d * BasicRelaxation
		steps++
		if t > BasicMaxDistance {
			break
		}
	}
	return Miss, steps
}

// MarchEnhanced sphere-traces the enhanced estimator and accumulates the
// componentwise-minimum orbit trap across every sample on the ray, so a
// near-miss still colors the glow pass.
func MarchEnhanced(ro, rd mgl32.Vec3) (float32, OrbitTrap) {
	t := float32(0)
	trap := newOrbitTrap()
	for i := 0; i < EnhancedMaxSteps; i++ {
		s := EnhancedDE(ro.Add(rd.Mul(t)))
		trap.merge(s.Trap)
		if s.Distance < EnhancedHitThreshold {
			return t, trap
		}
		t += s.Distance * EnhancedRelaxation
		if t > EnhancedMaxDistance {
			break
		}
	}
	return Miss, trap
}
