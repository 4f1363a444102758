// Package gfx wraps the small slice of OpenGL and GLFW that the
// tutorial programs need: window and context setup, shader programs,
// static meshes and 2D samplers.
package gfx

import (
	"errors"
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"
)

var (
	ErrWindowCreation = errors.New("gfx: window creation failed")
	ErrBackendInit    = errors.New("gfx: renderer initialization failed")
)

type WindowConfig struct {
	Width  int
	Height int
	Title  string
	VSync  bool
}

// KeyFunc receives discrete keyboard events from the window.
type KeyFunc func(key glfw.Key, action glfw.Action)

// Window owns the GLFW window and its GL context.
type Window struct {
	win *glfw.Window
}

// Open initializes GLFW, creates a window with a 3.3 core profile
// context and loads the GL function pointers. The calling goroutine
// must be locked to the main OS thread.
func Open(cfg WindowConfig) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}
	glfw.WindowHint(glfw.ContextVersionMajor, 3)
	glfw.WindowHint(glfw.ContextVersionMinor, 3)
	glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	// needed on macOS
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfw.True)

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrWindowCreation, err)
	}
	win.MakeContextCurrent()

	if err := gl.Init(); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("%w: %v", ErrBackendInit, err)
	}
	if cfg.VSync {
		glfw.SwapInterval(1)
	}
	win.SetFramebufferSizeCallback(func(_ *glfw.Window, width, height int) {
		gl.Viewport(0, 0, int32(width), int32(height))
	})
	return &Window{win: win}, nil
}

// OnKey registers fn for keyboard events. Scancode and modifiers are
// dropped; the tutorials only care about key and press edge.
func (w *Window) OnKey(fn KeyFunc) {
	w.win.SetKeyCallback(func(_ *glfw.Window, key glfw.Key, _ int, action glfw.Action, _ glfw.ModifierKey) {
		fn(key, action)
	})
}

// KeyPressed polls the current state of key, for programs that read
// the keyboard without a callback.
func (w *Window) KeyPressed(key glfw.Key) bool {
	return w.win.GetKey(key) == glfw.Press
}

func (w *Window) ShouldClose() bool {
	return w.win.ShouldClose()
}

func (w *Window) SetShouldClose() {
	w.win.SetShouldClose(true)
}

// Clear clears the color buffer to c.
func (w *Window) Clear(c Color) {
	gl.ClearColor(c.R, c.G, c.B, c.A)
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

// EndFrame presents the frame, pumps pending input events and flushes
// released GPU objects.
func (w *Window) EndFrame() {
	w.win.SwapBuffers()
	glfw.PollEvents()
	Collect()
}

// Close collects outstanding GPU objects while the context is still
// current, then tears down the window and GLFW.
func (w *Window) Close() {
	Collect()
	w.win.Destroy()
	glfw.Terminate()
}

// Time returns seconds since GLFW was initialized.
func Time() float64 {
	return glfw.GetTime()
}
