package engine

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// PaletteIndex selects one of the four cosine palettes. Values are kept in
// [0,3]; Next wraps around.
type PaletteIndex int32

const (
	PaletteRainbow PaletteIndex = iota
	PaletteFire
	PaletteElectric
	PaletteGold
	paletteCount
)

func (p PaletteIndex) Next() PaletteIndex {
	return (p + 1) % paletteCount
}

func (p PaletteIndex) String() string {
	switch p {
	case PaletteRainbow:
		return "rainbow"
	case PaletteFire:
		return "fire"
	case PaletteElectric:
		return "electric"
	case PaletteGold:
		return "gold"
	}
	return "unknown"
}

const tau = 2 * math32.Pi

// Per-palette phase offsets for the cosine basis.
var palettePhases = [paletteCount]mgl32.Vec3{
	PaletteRainbow:  {0, 0.33, 0.67},
	PaletteFire:     {0, 0.1, 0.2},
	PaletteElectric: {0.6, 0.5, 0.8},
	PaletteGold:     {0.15, 0.1, 0},
}

// Palette evaluates the cosine color ramp for the given hue. The ramp has
// period 1 in hue.
func Palette(hue float32, idx PaletteIndex) mgl32.Vec3 {
	phase := palettePhases[((idx%paletteCount)+paletteCount)%paletteCount]
	arg := phase.Add(mgl32.Vec3{hue, hue, hue}).Mul(tau)
	return cosv(arg).Mul(0.5).Add(mgl32.Vec3{0.5, 0.5, 0.5})
}

// EnhancedColor derives the surface color from the orbit traps, blending the
// active palette with its neighbour (index+1 mod 4) using a normal-driven
// factor so large flat regions still vary.
func EnhancedColor(trap OrbitTrap, normal mgl32.Vec3, time float32, idx PaletteIndex) mgl32.Vec3 {
	hue := trap.Dist*0.4 + trap.L1*0.3 + time*0.15
	col1 := Palette(hue, idx)

	hue2 := trap.Dot2*0.1 + time*0.05
	col2 := Palette(hue2, idx.Next())

	mixFactor := math32.Abs(math32.Sin(normal.X()*10 + normal.Y()*7 + time*0.5))
	return mix(col1, col2, mixFactor*0.3)
}
