package engine

import "github.com/go-gl/mathgl/mgl32"

// distFunc is a plain distance query; either BasicDE or enhancedDist.
type distFunc func(mgl32.Vec3) float32

const normalEps = 1e-4

// AO decay per sample. The enhanced variant decays faster so occlusion from
// the nearest folds dominates.
const (
	BasicAODecay    = 0.95
	EnhancedAODecay = 0.85
)

// Soft shadow parameters for the enhanced variant.
const (
	ShadowSteps    = 32
	ShadowMinT     = 0.02
	ShadowMaxT     = 5.0
	ShadowSoftness = 8.0
)

// Normal estimates the surface normal at p with the four-tap tetrahedral
// finite difference.
func Normal(de distFunc, p mgl32.Vec3) mgl32.Vec3 {
	const h = normalEps
	k1 := mgl32.Vec3{1, -1, -1}
	k2 := mgl32.Vec3{-1, -1, 1}
	k3 := mgl32.Vec3{-1, 1, -1}
	k4 := mgl32.Vec3{1, 1, 1}
	n := k1.Mul(de(p.Add(k1.Mul(h)))).
		Add(k2.Mul(de(p.Add(k2.Mul(h))))).
		Add(k3.Mul(de(p.Add(k3.Mul(h))))).
		Add(k4.Mul(de(p.Add(k4.Mul(h)))))
	return n.Normalize()
}

// AmbientOcclusion samples the distance field at five offsets along the
// normal; space that closes in faster than the offset grows counts as
// occlusion.
func AmbientOcclusion(de distFunc, p, n mgl32.Vec3, decay float32) float32 {
	occ := float32(0)
	sca := float32(1)
	for i := 0; i < 5; i++ {
		h := float32(0.01) + 0.12*float32(i)/4
		d := de(p.Add(n.Mul(h)))
		occ += (h - d) * sca
		sca *= decay
	}
	return clamp01(1 - 3*occ)
}

// SoftShadow marches from ro toward a light along rd over [mint, maxt].
// A sample under the hit threshold means fully shadowed (0); otherwise the
// result tracks how closely the ray grazes the surface, scaled by k.
func SoftShadow(ro, rd mgl32.Vec3, mint, maxt, k float32) float32 {
	res := float32(1)
	t := mint
	for i := 0; i < ShadowSteps; i++ {
		h := enhancedDist(ro.Add(rd.Mul(t)))
		if h < EnhancedHitThreshold {
			return 0
		}
		if s := k * h / t; s < res {
			res = s
		}
		t += h
		if t > maxt {
			break
		}
	}
	return clamp01(res)
}
