// Package gpu hosts the fractal shaders in a visible OpenGL window and
// drives them at the display rate. All GL calls stay on one locked OS
// thread, which is required by OpenGL.
package gpu

import (
	"fmt"
	"runtime"
	"time"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/shubhu121/3d-Sierpinski/internal/config"
	"github.com/shubhu121/3d-Sierpinski/internal/engine"
)

// Fullscreen quad in clip space, drawn as a triangle strip.
var quadVertices = []float32{
	-1, -1,
	1, -1,
	-1, 1,
	1, 1,
}

type host struct {
	window  *glfw.Window
	program uint32
	vao     uint32
	vbo     uint32

	variant engine.Variant
	state   engine.ViewState
	quit    bool

	locResolution int32
	locTime       int32
	locCamPos     int32
	locRotation   int32
	locPalette    int32
}

// Run opens a window and renders the selected variant with the GPU
// pipeline until the user quits. It must be called from the main
// goroutine.
func Run(settings config.Settings, variant engine.Variant) error {
	runtime.LockOSThread()
	defer runtime.UnlockOSThread()

	if err := glfw.Init(); err != nil {
		return fmt.Errorf("glfw init: %w", err)
	}
	defer glfw.Terminate()

	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)
	glfw.WindowHint(glfw.Resizable, glfw.True)

	title := "Sierpinski Fractal (" + variant.String() + ")"
	window, err := glfw.CreateWindow(settings.Width, settings.Height, title, nil, nil)
	if err != nil {
		return fmt.Errorf("glfw create window: %w", err)
	}
	window.MakeContextCurrent()
	glfw.SwapInterval(1)

	if err := gl.Init(); err != nil {
		return fmt.Errorf("gl init: %w", err)
	}

	fmt.Printf("OpenGL Version: %s\n", gl.GoStr(gl.GetString(gl.VERSION)))
	fmt.Printf("GLSL Version: %s\n", gl.GoStr(gl.GetString(gl.SHADING_LANGUAGE_VERSION)))
	fmt.Println("\nControls:")
	fmt.Println("  ESC / Q      - Quit")
	fmt.Println("  SPACE        - Cycle color palette")
	fmt.Println("  Arrow Keys   - Adjust camera")
	fmt.Println("  +/-          - Zoom in/out")
	fmt.Println("  R            - Reset camera")
	fmt.Println()

	h := &host{
		window:  window,
		variant: variant,
		state: engine.ViewState{
			OffsetX:  settings.OffsetX,
			OffsetY:  settings.OffsetY,
			Distance: settings.Distance,
			Palette:  engine.PaletteIndex(settings.Palette),
		},
	}
	if h.state.Distance == 0 {
		h.state = engine.NewViewState()
	}

	if err := h.initPipeline(); err != nil {
		return err
	}
	defer h.destroy()

	window.SetKeyCallback(h.onKey)
	window.SetFramebufferSizeCallback(func(_ *glfw.Window, w, hgt int) {
		gl.Viewport(0, 0, int32(w), int32(hgt))
	})

	h.loop()
	return nil
}

func (h *host) initPipeline() error {
	frag := basicFragmentSource
	if h.variant == engine.VariantEnhanced {
		frag = enhancedFragmentSource
	}

	vs, err := compileShader(vertexShaderSource, gl.VERTEX_SHADER)
	if err != nil {
		return fmt.Errorf("vertex shader: %w", err)
	}
	fs, err := compileShader(frag, gl.FRAGMENT_SHADER)
	if err != nil {
		return fmt.Errorf("fragment shader: %w", err)
	}

	h.program = gl.CreateProgram()
	gl.AttachShader(h.program, vs)
	gl.AttachShader(h.program, fs)
	gl.LinkProgram(h.program)
	gl.DeleteShader(vs)
	gl.DeleteShader(fs)

	var status int32
	gl.GetProgramiv(h.program, gl.LINK_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetProgramiv(h.program, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetProgramInfoLog(h.program, logLen, nil, &log[0])
		return fmt.Errorf("program link: %s", string(log))
	}

	gl.GenVertexArrays(1, &h.vao)
	gl.BindVertexArray(h.vao)
	gl.GenBuffers(1, &h.vbo)
	gl.BindBuffer(gl.ARRAY_BUFFER, h.vbo)
	gl.BufferData(gl.ARRAY_BUFFER, len(quadVertices)*4, gl.Ptr(quadVertices), gl.STATIC_DRAW)
	gl.EnableVertexAttribArray(0)
	gl.VertexAttribPointer(0, 2, gl.FLOAT, false, 2*4, nil)

	gl.UseProgram(h.program)
	h.locResolution = gl.GetUniformLocation(h.program, gl.Str("u_resolution\x00"))
	h.locTime = gl.GetUniformLocation(h.program, gl.Str("u_time\x00"))
	h.locCamPos = gl.GetUniformLocation(h.program, gl.Str("u_camPos\x00"))
	h.locRotation = gl.GetUniformLocation(h.program, gl.Str("u_rotation\x00"))
	h.locPalette = gl.GetUniformLocation(h.program, gl.Str("u_colorPalette\x00"))
	return nil
}

func (h *host) destroy() {
	gl.DeleteBuffers(1, &h.vbo)
	gl.DeleteVertexArrays(1, &h.vao)
	gl.DeleteProgram(h.program)
}

// onKey implements the interactive controls: arrows pan, +/- zoom, space
// cycles the palette, r resets, escape or q quits.
func (h *host) onKey(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
	if action != glfw.Press && action != glfw.Repeat {
		return
	}
	switch key {
	case glfw.KeyEscape, glfw.KeyQ:
		h.quit = true
	case glfw.KeySpace:
		h.state.Apply(engine.EventCyclePalette)
		fmt.Printf("Color Palette: %s\n", h.state.Palette)
	case glfw.KeyUp:
		h.state.Apply(engine.EventOffsetUp)
	case glfw.KeyDown:
		h.state.Apply(engine.EventOffsetDown)
	case glfw.KeyLeft:
		h.state.Apply(engine.EventOffsetLeft)
	case glfw.KeyRight:
		h.state.Apply(engine.EventOffsetRight)
	case glfw.KeyEqual, glfw.KeyKPAdd:
		h.state.Apply(engine.EventZoomIn)
	case glfw.KeyMinus, glfw.KeyKPSubtract:
		h.state.Apply(engine.EventZoomOut)
	case glfw.KeyR:
		h.state.Apply(engine.EventReset)
	}
}

func (h *host) loop() {
	start := time.Now()
	frames := 0
	lastFPS := start

	for !h.window.ShouldClose() && !h.quit {
		glfw.PollEvents()

		elapsed := float32(time.Since(start).Seconds())
		w, hgt := h.window.GetFramebufferSize()
		u := h.state.UniformsAt(elapsed, w, hgt)

		gl.ClearColor(0, 0, 0, 1)
		gl.Clear(gl.COLOR_BUFFER_BIT)

		gl.UseProgram(h.program)
		gl.Uniform2f(h.locResolution, float32(w), float32(hgt))
		gl.Uniform1f(h.locTime, u.Time)
		if h.variant == engine.VariantEnhanced {
			gl.Uniform3f(h.locCamPos, u.CamPos.X(), u.CamPos.Y(), u.CamPos.Z())
			rot := u.Rotation
			gl.UniformMatrix3fv(h.locRotation, 1, false, &rot[0])
			gl.Uniform1i(h.locPalette, int32(h.state.Palette))
		}

		gl.BindVertexArray(h.vao)
		gl.DrawArrays(gl.TRIANGLE_STRIP, 0, 4)

		h.window.SwapBuffers()

		frames++
		if now := time.Now(); now.Sub(lastFPS) >= time.Second {
			fps := float64(frames) / now.Sub(lastFPS).Seconds()
			fmt.Printf("\rFPS: %.1f | Palette: %s | Camera: (%.2f, %.2f, %.2f)     ",
				fps, h.state.Palette, u.CamPos.X(), u.CamPos.Y(), u.CamPos.Z())
			frames = 0
			lastFPS = now
		}
	}
	fmt.Println()
}

func compileShader(src string, shaderType uint32) (uint32, error) {
	shader := gl.CreateShader(shaderType)
	csources, free := gl.Strs(src + "\x00")
	defer free()
	gl.ShaderSource(shader, 1, csources, nil)
	gl.CompileShader(shader)

	var status int32
	gl.GetShaderiv(shader, gl.COMPILE_STATUS, &status)
	if status == gl.FALSE {
		var logLen int32
		gl.GetShaderiv(shader, gl.INFO_LOG_LENGTH, &logLen)
		log := make([]byte, logLen+1)
		gl.GetShaderInfoLog(shader, logLen, nil, &log[0])
		return 0, fmt.Errorf("shader compile: %s", string(log))
	}
	return shader, nil
}
