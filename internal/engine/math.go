package engine

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Small float32 helpers mirroring the GLSL builtins the shading code leans
// on. Everything in this package is single precision end to end; routing
// through float64 would change rounding and break bit-for-bit determinism
// between the CPU pipeline and its tests.

func clamp01(x float32) float32 {
	return mgl32.Clamp(x, 0, 1)
}

func mix(a, b mgl32.Vec3, t float32) mgl32.Vec3 {
	return a.Mul(1 - t).Add(b.Mul(t))
}

func smoothstep(edge0, edge1, x float32) float32 {
	t := mgl32.Clamp((x-edge0)/(edge1-edge0), 0, 1)
	return t * t * (3 - 2*t)
}

func fract(x float32) float32 {
	return x - math32.Floor(x)
}

func floorv(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Floor(v.X()), math32.Floor(v.Y()), math32.Floor(v.Z())}
}

func fractv(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{fract(v.X()), fract(v.Y()), fract(v.Z())}
}

func reflect(v, n mgl32.Vec3) mgl32.Vec3 {
	return v.Sub(n.Mul(2 * v.Dot(n)))
}

func mulv(a, b mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{a.X() * b.X(), a.Y() * b.Y(), a.Z() * b.Z()}
}

func powv(v mgl32.Vec3, e float32) mgl32.Vec3 {
	return mgl32.Vec3{math32.Pow(v.X(), e), math32.Pow(v.Y(), e), math32.Pow(v.Z(), e)}
}

func cosv(v mgl32.Vec3) mgl32.Vec3 {
	return mgl32.Vec3{math32.Cos(v.X()), math32.Cos(v.Y()), math32.Cos(v.Z())}
}

// hash31 is the classic screen-hash one-liner used for the starfield.
func hash31(p mgl32.Vec3) float32 {
	return fract(math32.Sin(p.Dot(mgl32.Vec3{12.9898, 78.233, 45.164})) * 43758.5453)
}

// rotationY and rotationX build 3x3 rotation matrices with exactly the
// element layout the fragment programs receive (column-major, matching the
// uniform upload), so the CPU pipeline and the GL pipeline rotate rays
// identically.
func rotationY(angle float32) mgl32.Mat3 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return mgl32.Mat3{
		c, 0, s,
		0, 1, 0,
		-s, 0, c,
	}
}

func rotationX(angle float32) mgl32.Mat3 {
	c := math32.Cos(angle)
	s := math32.Sin(angle)
	return mgl32.Mat3{
		1, 0, 0,
		0, c, -s,
		0, s, c,
	}
}
