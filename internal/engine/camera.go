package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

// basicFOV is the forward scale of the orbit camera's ray basis.
const basicFOV = 1.5

// basicRay builds the primary ray of the self-orbiting camera. The camera
// sits on a circle of radius 4.5 around the origin and always looks at it;
// the whole rig, origin included, is spun by the yaw rotation.
func basicRay(uv mgl32.Vec2, time float32) (ro, rd mgl32.Vec3) {
	ro = mgl32.Vec3{0, 0, DefaultCameraDistance}
	target := mgl32.Vec3{0, 0, 0}

	forward := target.Sub(ro).Normalize()
	right := mgl32.Vec3{0, 1, 0}.Cross(forward).Normalize()
	up := forward.Cross(right)

	rd = right.Mul(uv.X()).Add(up.Mul(uv.Y())).Add(forward.Mul(basicFOV)).Normalize()

	rot := rotationY(time * 0.3)
	return rot.Mul3x1(ro), rot.Mul3x1(rd)
}

// enhancedRay builds the primary ray of the uniform-driven camera: the
// frame rotation applied to a fixed-FOV view ray, origin taken verbatim
// from the uniforms.
func enhancedRay(uv mgl32.Vec2, u FrameUniforms) (ro, rd mgl32.Vec3) {
	rd = u.Rotation.Mul3x1(mgl32.Vec3{uv.X(), uv.Y(), -1.8}.Normalize())
	return u.CamPos, rd
}
