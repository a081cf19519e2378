package engine

import (
	"github.com/chewxy/math32"
	"github.com/go-gl/mathgl/mgl32"
)

// Camera distance limits and event step sizes.
const (
	MinCameraDistance     = 2.0
	MaxCameraDistance     = 10.0
	DefaultCameraDistance = 4.5
	offsetStep            = 0.1
	distanceStep          = 0.2
)

// Event is a discrete viewer input, applied to the ViewState strictly
// between frames. Quit and resize are host concerns and have no event here.
type Event int

const (
	EventCyclePalette Event = iota
	EventOffsetUp
	EventOffsetDown
	EventOffsetLeft
	EventOffsetRight
	EventZoomIn
	EventZoomOut
	EventReset
)

// ViewState is the only mutable state of the viewer: camera offsets, orbit
// distance and the active palette. It is owned by the host's event path and
// is never touched while a frame is being evaluated; each frame works from a
// FrameUniforms snapshot taken up front.
type ViewState struct {
	OffsetX  float32
	OffsetY  float32
	Distance float32
	Palette  PaletteIndex
}

func NewViewState() ViewState {
	return ViewState{Distance: DefaultCameraDistance}
}

// Apply mutates the state for one input event, clamping the distance to
// [MinCameraDistance, MaxCameraDistance].
func (s *ViewState) Apply(ev Event) {
	switch ev {
	case EventCyclePalette:
		s.Palette = s.Palette.Next()
	case EventOffsetUp:
		s.OffsetY += offsetStep
	case EventOffsetDown:
		s.OffsetY -= offsetStep
	case EventOffsetLeft:
		s.OffsetX -= offsetStep
	case EventOffsetRight:
		s.OffsetX += offsetStep
	case EventZoomIn:
		s.Distance -= distanceStep
		if s.Distance < MinCameraDistance {
			s.Distance = MinCameraDistance
		}
	case EventZoomOut:
		s.Distance += distanceStep
		if s.Distance > MaxCameraDistance {
			s.Distance = MaxCameraDistance
		}
	case EventReset:
		s.OffsetX = 0
		s.OffsetY = 0
		s.Distance = DefaultCameraDistance
	}
}

// FrameUniforms is the immutable per-frame input of the pixel pipeline,
// rebuilt each frame from elapsed time and the current ViewState. It plays
// the role of the shader uniforms: evaluation reads nothing else.
type FrameUniforms struct {
	Time     float32
	Width    int
	Height   int
	CamPos   mgl32.Vec3
	Rotation mgl32.Mat3
	Palette  PaletteIndex
}

// UniformsAt snapshots the state into the uniforms for one frame. The
// rotation composes the primary yaw with a slow oscillating tilt, and the
// camera position drifts organically around the configured offsets.
func (s ViewState) UniformsAt(time float32, width, height int) FrameUniforms {
	rotY := rotationY(time * 0.25)
	rotX := rotationX(math32.Sin(time*0.1) * 0.15)

	return FrameUniforms{
		Time:   time,
		Width:  width,
		Height: height,
		CamPos: mgl32.Vec3{
			math32.Sin(time*0.12)*0.4 + s.OffsetX,
			math32.Sin(time*0.18)*0.3 + math32.Cos(time*0.15)*0.2 + s.OffsetY,
			s.Distance + math32.Cos(time*0.08)*0.6,
		},
		Rotation: rotX.Mul3(rotY),
		Palette:  s.Palette,
	}
}
