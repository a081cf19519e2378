package engine

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Fractal constants. Changing the iteration counts also changes the
// distance scaling, so tune them together with the marcher budgets.
const (
	BasicIterations    = 12
	BasicScale         = 2.0
	EnhancedIterations = 14
	EnhancedScale      = 2.0
)

// Vertices of a regular tetrahedron inscribed in the ±1 cube. Enumeration
// order matters: nearest-vertex ties resolve to the first one found.
var tetraVertices = [4]mgl32.Vec3{
	{1, 1, 1},
	{-1, -1, 1},
	{1, -1, -1},
	{-1, 1, -1},
}

// OrbitTrap carries three running minima accumulated while the fractal map
// is iterated: nearest-point distance, an L1 norm and a squared norm. The
// traps only feed coloring, never geometry.
type OrbitTrap struct {
	Dist float32
	L1   float32
	Dot2 float32
}

const trapInit = float32(1e10)

func newOrbitTrap() OrbitTrap {
	return OrbitTrap{Dist: trapInit, L1: trapInit, Dot2: trapInit}
}

func (o *OrbitTrap) absorb(z mgl32.Vec3) {
	d := z.Len()
	if d < o.Dist {
		o.Dist = d
	}
	l1 := math32.Abs(z.X()) + math32.Abs(z.Y()) + math32.Abs(z.Z())
	if l1 < o.L1 {
		o.L1 = l1
	}
	if dd := z.Dot(z); dd < o.Dot2 {
		o.Dot2 = dd
	}
}

// merge keeps the componentwise minimum of both traps.
func (o *OrbitTrap) merge(t OrbitTrap) {
	if t.Dist < o.Dist {
		o.Dist = t.Dist
	}
	if t.L1 < o.L1 {
		o.L1 = t.L1
	}
	if t.Dot2 < o.Dot2 {
		o.Dot2 = t.Dot2
	}
}

// DistanceSample is one distance-estimator evaluation: a conservative
// distance to the fractal surface plus the orbit trap gathered on the way.
type DistanceSample struct {
	Distance float32
	Trap     OrbitTrap
}

// BasicDE estimates the distance from p to the Sierpinski tetrahedron by
// contracting p toward its nearest vertex for a fixed number of iterations
// and unscaling the residual length. The loop has no early exit, so the
// final unscaling is the constant scale^-iterations.
func BasicDE(p mgl32.Vec3) float32 {
	for n := 0; n < BasicIterations; n++ {
		c := tetraVertices[0]
		dist := p.Sub(c).Len()
		for i := 1; i < len(tetraVertices); i++ {
			if d := p.Sub(tetraVertices[i]).Len(); d < dist {
				c = tetraVertices[i]
				dist = d
			}
		}
		p = p.Mul(BasicScale).Sub(c.Mul(BasicScale - 1))
	}
	return p.Len() * math32.Pow(BasicScale, -float32(BasicIterations))
}

// EnhancedDE estimates the distance via tetrahedral folding with a running
// derivative, and records orbit traps after each fold for coloring.
func EnhancedDE(p mgl32.Vec3) DistanceSample {
	x, y, z := p.X(), p.Y(), p.Z()
	dr := float32(1)
	trap := newOrbitTrap()

	for n := 0; n < EnhancedIterations; n++ {
		// Tetrahedral folding symmetry.
		if x+y < 0 {
			x, y = -y, -x
		}
		if x+z < 0 {
			x, z = -z, -x
		}
		if y+z < 0 {
			y, z = -z, -y
		}
		// Extra fold for more detail.
		if x-y < 0 {
			x, y = y, x
		}

		x = x*EnhancedScale - (EnhancedScale - 1)
		y = y*EnhancedScale - (EnhancedScale - 1)
		z = z*EnhancedScale - (EnhancedScale - 1)
		dr *= EnhancedScale

		trap.absorb(mgl32.Vec3{x, y, z})
	}

	r := math32.Sqrt(x*x + y*y + z*z)
	return DistanceSample{Distance: 0.5 * r / dr, Trap: trap}
}

// enhancedDist is the plain distance query used where the trap is not
// needed (normals, AO, shadows, glow).
func enhancedDist(p mgl32.Vec3) float32 {
	return EnhancedDE(p).Distance
}
