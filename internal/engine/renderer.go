package engine

import (
	"image"
	"os"
	"runtime"
	"strconv"
	"sync"

	"github.com/go-gl/mathgl/mgl32"
)

// Variant selects which of the two fractal pipelines a frame runs.
type Variant int

const (
	// VariantBasic is the vertex-contraction fractal with single-light
	// shading and a self-orbiting camera.
	VariantBasic Variant = iota
	// VariantEnhanced is the fold-based fractal with orbit-trap
	// coloring, reflections, glow and the uniform-driven camera.
	VariantEnhanced
)

func (v Variant) String() string {
	if v == VariantEnhanced {
		return "enhanced"
	}
	return "basic"
}

// ParseVariant maps a CLI name to a Variant. Unknown names fall back to
// the basic variant.
func ParseVariant(name string) Variant {
	if name == "enhanced" {
		return VariantEnhanced
	}
	return VariantBasic
}

// RenderConfig defines internal render parameters for a CPU frame.
type RenderConfig struct {
	Width   int
	Height  int
	Variant Variant
}

// ShadePixel evaluates one pixel of the frame at fragment coordinates
// (fragX, fragY), y growing upward, and returns the final sRGB-ready
// color. It is pure: two calls with equal arguments yield identical bits.
func ShadePixel(fragX, fragY float32, cfg RenderConfig, u FrameUniforms) mgl32.Vec3 {
	if cfg.Variant == VariantEnhanced {
		return shadePixelEnhanced(fragX, fragY, u)
	}
	return shadePixelBasic(fragX, fragY, u)
}

func shadePixelBasic(fragX, fragY float32, u FrameUniforms) mgl32.Vec3 {
	resX := float32(u.Width)
	resY := float32(u.Height)
	uv := mgl32.Vec2{(fragX - 0.5*resX) / resY, (fragY - 0.5*resY) / resY}

	ro, rd := basicRay(uv, u.Time)
	t, steps := MarchBasic(ro, rd)

	color := mgl32.Vec3{}
	if t > Miss {
		color = ShadeBasic(ro, rd, t, steps, u.Time)
	}
	return PostProcessBasic(color)
}

func shadePixelEnhanced(fragX, fragY float32, u FrameUniforms) mgl32.Vec3 {
	resX := float32(u.Width)
	resY := float32(u.Height)
	base := mgl32.Vec2{(fragX - 0.5*resX) / resY, (fragY - 0.5*resY) / resY}

	// 2x2 supersampling, offsets spread over half a pixel.
	sum := mgl32.Vec3{}
	for ax := 0; ax < 2; ax++ {
		for ay := 0; ay < 2; ay++ {
			off := float32(0.5) / resY
			uv := base.Add(mgl32.Vec2{float32(ax) * off, float32(ay) * off})

			ro, rd := enhancedRay(uv, u)
			col := SkyColor(rd, u.Time)

			t, trap := MarchEnhanced(ro, rd)
			glowT := float32(EnhancedMaxDistance)
			if t > 0 {
				glowT = t
			}
			glow := VolumetricGlow(ro, rd, glowT, u.Time, u.Palette)

			if t > 0 {
				col = ShadeEnhanced(ro, rd, t, trap, u.Time, u.Palette)
			}
			sum = sum.Add(col).Add(glow.Mul(2))
		}
	}

	avg := sum.Mul(0.25)
	return PostProcess(avg, mgl32.Vec2{fragX / resX, fragY / resY})
}

// Render evaluates one full CPU frame and returns a new image.
func Render(cfg RenderConfig, u FrameUniforms) image.Image {
	img := image.NewRGBA(image.Rect(0, 0, cfg.Width, cfg.Height))
	RenderInto(cfg, u, img, nil)
	return img
}

// RenderInto evaluates one frame into the provided image, splitting the
// plane into tiles fanned out over a worker pool. If progress is not nil
// it is called from worker goroutines as tiles complete, for interactive
// preview updates.
func RenderInto(cfg RenderConfig, u FrameUniforms, img *image.RGBA, progress func()) {
	b := img.Bounds()
	if b.Dx() != cfg.Width || b.Dy() != cfg.Height {
		return
	}

	pix := img.Pix
	stride := img.Stride

	workerCount := runtime.NumCPU()
	if workerCount < 1 {
		workerCount = 1
	}
	if envWorkers := os.Getenv("RAYMARCHER_WORKERS"); envWorkers != "" {
		if n, err := strconv.Atoi(envWorkers); err == nil && n > 0 && n <= 128 {
			workerCount = n
		}
	}

	const tileSize = 32
	type tile struct {
		x0, y0, x1, y1 int
	}
	numTilesX := (cfg.Width + tileSize - 1) / tileSize
	numTilesY := (cfg.Height + tileSize - 1) / tileSize
	tiles := make(chan tile, numTilesX*numTilesY)

	for ty := 0; ty < cfg.Height; ty += tileSize {
		for tx := 0; tx < cfg.Width; tx += tileSize {
			x1 := min(tx+tileSize, cfg.Width)
			y1 := min(ty+tileSize, cfg.Height)
			tiles <- tile{x0: tx, y0: ty, x1: x1, y1: y1}
		}
	}
	close(tiles)

	totalTiles := numTilesX * numTilesY
	var processedTiles int
	var progressMu sync.Mutex

	var wg sync.WaitGroup
	for i := 0; i < workerCount; i++ {
		wg.Add(1)
		go func() {
			defer wg.Done()
			for t := range tiles {
				for y := t.y0; y < t.y1; y++ {
					yIdx := y * stride
					// Image rows grow downward, fragment y grows upward.
					fragY := float32(cfg.Height-1-y) + 0.5

					for x := t.x0; x < t.x1; x++ {
						fragX := float32(x) + 0.5
						col := ShadePixel(fragX, fragY, cfg, u)

						idx := yIdx + x*4
						pix[idx] = channelByte(col.X())
						pix[idx+1] = channelByte(col.Y())
						pix[idx+2] = channelByte(col.Z())
						pix[idx+3] = 255
					}
				}

				if progress != nil {
					progressMu.Lock()
					processedTiles++
					updateThreshold := max(1, totalTiles/20)
					shouldUpdate := processedTiles%updateThreshold == 0 || processedTiles == totalTiles
					progressMu.Unlock()
					if shouldUpdate {
						progress()
					}
				}
			}
		}()
	}
	wg.Wait()
}

func channelByte(c float32) uint8 {
	v := c * 255.999
	if v < 0 {
		v = 0
	} else if v > 255.999 {
		v = 255.999
	}
	return uint8(v)
}
