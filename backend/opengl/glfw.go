package opengl

import (
	"fmt"

	"github.com/go-gl/gl/v3.3-core/gl"
	"github.com/go-gl/glfw/v3.3/glfw"

	"github.com/go-theft-auto/triangle"
)

// Window implements triangle.Window on a GLFW window.
// GLFW must be driven from the main thread.
type Window struct {
	window *glfw.Window
	events []triangle.KeyEvent
}

// NewWindow initializes GLFW, creates a window with cfg's context hints,
// makes its context current and loads the GL entry points through GLFW.
func NewWindow(cfg triangle.Config) (*Window, error) {
	if err := glfw.Init(); err != nil {
		return nil, fmt.Errorf("glfw init: %w", err)
	}

	glfw.WindowHint(glfw.ContextVersionMajor, cfg.ContextMajor)
	glfw.WindowHint(glfw.ContextVersionMinor, cfg.ContextMinor)
	if cfg.CoreProfile {
		glfw.WindowHint(glfw.OpenGLProfile, glfw.OpenGLCoreProfile)
	}
	glfw.WindowHint(glfw.OpenGLForwardCompatible, glfwBool(cfg.ForwardCompatible))
	glfw.WindowHint(glfw.Resizable, glfwBool(cfg.Resizable))

	win, err := glfw.CreateWindow(cfg.Width, cfg.Height, cfg.Title, nil, nil)
	if err != nil {
		glfw.Terminate()
		return nil, fmt.Errorf("create window: %w", err)
	}
	win.MakeContextCurrent()

	if err := gl.InitWithProcAddrFunc(glfw.GetProcAddress); err != nil {
		win.Destroy()
		glfw.Terminate()
		return nil, fmt.Errorf("gl init: %w", err)
	}

	w := &Window{window: win}
	win.SetKeyCallback(w.keyCallback)

	return w, nil
}

// ShouldClose reports whether the window was asked to close.
func (w *Window) ShouldClose() bool {
	return w.window.ShouldClose()
}

// SetShouldClose sets the close flag.
func (w *Window) SetShouldClose(v bool) {
	w.window.SetShouldClose(v)
}

// PollEvents processes pending events and returns the key events they
// produced. The slice is reused by the next call.
func (w *Window) PollEvents() []triangle.KeyEvent {
	w.events = w.events[:0]
	glfw.PollEvents()
	return w.events
}

// SwapBuffers presents the back buffer.
func (w *Window) SwapBuffers() {
	w.window.SwapBuffers()
}

// Close destroys the window and terminates GLFW.
func (w *Window) Close() {
	w.window.Destroy()
	glfw.Terminate()
}

func (w *Window) keyCallback(_ *glfw.Window, key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) {
	w.events = append(w.events, keyEvent(key, scancode, action, mods))
}

func keyEvent(key glfw.Key, scancode int, action glfw.Action, mods glfw.ModifierKey) triangle.KeyEvent {
	return triangle.KeyEvent{
		Key:      glfwKeyToKey(key),
		Scancode: scancode,
		Action:   glfwActionToAction(action),
		Mods:     glfwModsToMods(mods),
	}
}

func glfwBool(v bool) int {
	if v {
		return glfw.True
	}
	return glfw.False
}

// glfwKeyToKey maps GLFW keys to triangle keys.
func glfwKeyToKey(key glfw.Key) triangle.Key {
	switch key {
	case glfw.KeyTab:
		return triangle.KeyTab
	case glfw.KeyLeft:
		return triangle.KeyLeft
	case glfw.KeyRight:
		return triangle.KeyRight
	case glfw.KeyUp:
		return triangle.KeyUp
	case glfw.KeyDown:
		return triangle.KeyDown
	case glfw.KeySpace:
		return triangle.KeySpace
	case glfw.KeyEnter:
		return triangle.KeyEnter
	case glfw.KeyEscape:
		return triangle.KeyEscape
	case glfw.KeyQ:
		return triangle.KeyQ
	case glfw.KeyF1:
		return triangle.KeyF1
	default:
		return triangle.KeyNone
	}
}

func glfwActionToAction(action glfw.Action) triangle.Action {
	switch action {
	case glfw.Press:
		return triangle.Press
	case glfw.Repeat:
		return triangle.Repeat
	default:
		return triangle.Release
	}
}

func glfwModsToMods(mods glfw.ModifierKey) triangle.ModifierKey {
	var m triangle.ModifierKey
	if mods&glfw.ModShift != 0 {
		m |= triangle.ModShift
	}
	if mods&glfw.ModControl != 0 {
		m |= triangle.ModControl
	}
	if mods&glfw.ModAlt != 0 {
		m |= triangle.ModAlt
	}
	if mods&glfw.ModSuper != 0 {
		m |= triangle.ModSuper
	}
	return m
}

var _ triangle.Window = (*Window)(nil)
