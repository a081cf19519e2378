package engine

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// light is a fixed directional light source. The sets below are part of the
// look and are not runtime-configurable.
type light struct {
	dir   mgl32.Vec3
	color mgl32.Vec3
}

var basicLight = light{
	dir:   mgl32.Vec3{0.5, 0.8, 0.3}.Normalize(),
	color: mgl32.Vec3{1, 1, 1},
}

var enhancedLights = [3]light{
	{dir: mgl32.Vec3{1, 1, -1}.Normalize(), color: mgl32.Vec3{1, 0.95, 0.9}},
	{dir: mgl32.Vec3{-1, 0.8, 0.5}.Normalize(), color: mgl32.Vec3{0.5, 0.6, 1}},
	{dir: mgl32.Vec3{0, -1, 0}.Normalize(), color: mgl32.Vec3{0.8, 0.3, 0.9}},
}

// Fixed surface material for the enhanced variant.
const (
	materialMetallic  = 0.6
	materialRoughness = 0.2
)

// SkyColor is the procedural background: a vertical gradient, a hashed
// three-octave starfield and a slow nebula swirl.
func SkyColor(rd mgl32.Vec3, time float32) mgl32.Vec3 {
	grad := smoothstep(-0.5, 0.5, rd.Y())
	sky := mix(mgl32.Vec3{0.02, 0.01, 0.05}, mgl32.Vec3{0.1, 0.05, 0.2}, grad)

	starCoord := rd.Mul(200)
	star := float32(0)
	for i := 0; i < 3; i++ {
		fl := floorv(starCoord)
		fr := fractv(starCoord)
		h := hash31(fl)
		size := 0.02 * h
		star += smoothstep(size, 0, fr.Sub(mgl32.Vec3{0.5, 0.5, 0.5}).Len()) * h
		starCoord = starCoord.Mul(1.7)
	}
	sky = sky.Add(mgl32.Vec3{1, 0.9, 0.8}.Mul(star * 0.5))

	nebula := math32.Sin(rd.X()*3+time*0.1) * math32.Cos(rd.Y()*4) * math32.Sin(rd.Z()*5)
	nebula = math32.Pow(math32.Max(nebula, 0), 3)
	return sky.Add(mgl32.Vec3{0.5, 0.2, 0.8}.Mul(nebula * 0.3))
}

// VolumetricGlow walks the primary ray and accumulates a soft palette-tinted
// intensity wherever the field gets close to zero, so even rays that miss
// the surface pick up atmosphere near it. maxT is the primary hit distance,
// or the marching range on a miss.
func VolumetricGlow(ro, rd mgl32.Vec3, maxT, time float32, idx PaletteIndex) mgl32.Vec3 {
	glow := mgl32.Vec3{}
	t := float32(0)
	for i := 0; i < 32; i++ {
		s := EnhancedDE(ro.Add(rd.Mul(t)))
		factor := 0.015 / (0.01 + s.Distance*s.Distance)
		col := Palette(s.Trap.Dist*0.5+time*0.2, idx)
		glow = glow.Add(col.Mul(factor * 0.002))

		t += math32.Max(0.05, s.Distance*0.5)
		if t > maxT || t > EnhancedMaxDistance {
			break
		}
	}
	return glow
}

// traceReflection marches a single mirror bounce from the hit point. The
// bounce is shaded with a cut-down model (key light only); a second bounce
// is never traced.
func traceReflection(p, rd, normal mgl32.Vec3, time float32, idx PaletteIndex) mgl32.Vec3 {
	reflectDir := reflect(rd, normal)
	ro := p.Add(normal.Mul(0.01))

	t, trap := MarchEnhanced(ro, reflectDir)
	if t > 0 {
		hit := ro.Add(reflectDir.Mul(t))
		n := Normal(enhancedDist, hit)
		col := EnhancedColor(trap, n, time, idx)
		diff := math32.Max(n.Dot(enhancedLights[0].dir), 0)
		return col.Mul(0.3 + diff*0.7)
	}
	return SkyColor(reflectDir, time)
}

// ShadeEnhanced computes the full surface response at hit distance t:
// three lights with soft shadows on the two key lights, Blinn-Phong
// speculars, a fresnel-weighted mirror bounce, a subsurface approximation
// and distance fog toward the sky.
func ShadeEnhanced(ro, rd mgl32.Vec3, t float32, trap OrbitTrap, time float32, idx PaletteIndex) mgl32.Vec3 {
	p := ro.Add(rd.Mul(t))
	normal := Normal(enhancedDist, p)

	l1, l2, l3 := enhancedLights[0], enhancedLights[1], enhancedLights[2]
	shadow1 := SoftShadow(p, l1.dir, ShadowMinT, ShadowMaxT, ShadowSoftness)
	shadow2 := SoftShadow(p, l2.dir, ShadowMinT, ShadowMaxT, ShadowSoftness)
	ao := AmbientOcclusion(enhancedDist, p, normal, EnhancedAODecay)

	diff1 := math32.Max(normal.Dot(l1.dir), 0) * shadow1
	diff2 := math32.Max(normal.Dot(l2.dir), 0) * shadow2
	diff3 := math32.Max(normal.Dot(l3.dir), 0) * 0.3

	viewDir := rd.Mul(-1)
	half1 := l1.dir.Add(viewDir).Normalize()
	half2 := l2.dir.Add(viewDir).Normalize()
	spec1 := math32.Pow(math32.Max(normal.Dot(half1), 0), 64) * shadow1
	spec2 := math32.Pow(math32.Max(normal.Dot(half2), 0), 32) * shadow2

	fresnel := math32.Pow(1-math32.Max(viewDir.Dot(normal), 0), 3)

	base := EnhancedColor(trap, normal, time, idx)

	diffuse := mulv(base,
		l1.color.Mul(diff1*0.7).
			Add(l2.color.Mul(diff2*0.5)).
			Add(l3.color.Mul(diff3*0.3)).
			Add(mgl32.Vec3{0.05, 0.05, 0.1})).Mul(ao)

	specular := l1.color.Mul(spec1 * 1.5).Add(l2.color.Mul(spec2 * 0.8))

	reflection := traceReflection(p, rd, normal, time, idx)

	col := mix(diffuse, reflection, fresnel*materialMetallic*0.7)
	col = col.Add(specular.Mul(1 + materialMetallic*2))

	sss := math32.Pow(math32.Max(l1.dir.Mul(-1).Dot(normal), 0), 3)
	col = col.Add(base.Mul(sss * 0.3))

	fog := math32.Exp(-t * 0.04)
	return mix(SkyColor(rd, time), col, fog)
}

// ShadeBasic is the single-light model of the basic variant. The surface
// color cycles with the marcher's step count and time; fog fades to black.
func ShadeBasic(ro, rd mgl32.Vec3, t float32, steps int, time float32) mgl32.Vec3 {
	p := ro.Add(rd.Mul(t))
	normal := Normal(BasicDE, p)

	diff := math32.Max(normal.Dot(basicLight.dir), 0)

	viewDir := rd.Mul(-1).Normalize()
	halfDir := basicLight.dir.Add(viewDir).Normalize()
	spec := math32.Pow(math32.Max(normal.Dot(halfDir), 0), 32)

	ao := AmbientOcclusion(BasicDE, p, normal, BasicAODecay)

	stepRatio := float32(steps) / BasicMaxSteps
	base := mgl32.Vec3{
		0.5 + 0.5*math32.Sin(stepRatio*6.28+time),
		0.5 + 0.5*math32.Sin(stepRatio*6.28+time+2.09),
		0.5 + 0.5*math32.Sin(stepRatio*6.28+time+4.18),
	}

	ambient := mgl32.Vec3{0.1, 0.1, 0.1}.Mul(ao)
	diffuse := base.Mul(diff)
	specular := mgl32.Vec3{1, 1, 1}.Mul(spec * 0.3)

	col := ambient.Add(diffuse.Add(specular).Mul(ao))

	fog := math32.Exp(-t * 0.12)
	return mix(mgl32.Vec3{}, col, fog)
}
