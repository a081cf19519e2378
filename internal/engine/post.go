package engine

import (
	"github.com/go-gl/mathgl/mgl32"
)

const (
	vignetteStrength = 0.3
	bloomThreshold   = 0.8
	bloomStrength    = 0.3
	gradingContrast  = 0.9
	gradingSaturate  = 1.1
	invGamma         = 0.4545
)

// PostProcessBasic applies the basic pipeline's final stage, a plain
// gamma curve.
func PostProcessBasic(color mgl32.Vec3) mgl32.Vec3 {
	return powv(color, invGamma)
}

// PostProcess runs the enhanced post chain on one averaged pixel:
// vignette, highlight bloom, contrast and saturation grading, then the
// gamma curve. fragUV is the pixel position over resolution in [0,1].
func PostProcess(color mgl32.Vec3, fragUV mgl32.Vec2) mgl32.Vec3 {
	v := fragUV.Sub(mgl32.Vec2{0.5, 0.5})
	color = color.Mul(1 - v.Dot(v)*vignetteStrength)

	// Luma in Rec.709 weights for the bloom gate, Rec.601 for grading.
	brightness := color.Dot(mgl32.Vec3{0.2126, 0.7152, 0.0722})
	if brightness > bloomThreshold {
		color = color.Add(color.Sub(mgl32.Vec3{bloomThreshold, bloomThreshold, bloomThreshold}).Mul(bloomStrength))
	}

	color = powv(color, gradingContrast)
	luma := color.Dot(mgl32.Vec3{0.299, 0.587, 0.114})
	gray := mgl32.Vec3{luma, luma, luma}
	color = gray.Add(color.Sub(gray).Mul(gradingSaturate))

	return powv(color, invGamma)
}
