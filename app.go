package triangle

import (
	"errors"
	"fmt"
	"log/slog"
)

// App owns the GPU objects created at startup and drives the render loop.
type App struct {
	device Device
	window Window
	cfg    Config
	logger *slog.Logger

	program Program
	mesh    Mesh
	frames  int
}

// New builds the shader program and uploads the triangle.
//
// Compile and log decode errors are returned. A link failure is logged
// and the app is still returned with the program the device gave back.
func New(dev Device, win Window, cfg Config) (*App, error) {
	a := &App{
		device: dev,
		window: win,
		cfg:    cfg,
		logger: cfg.logger(),
	}

	if v, ok := dev.(Versioner); ok {
		a.logger.Info("graphics device", "version", v.Version())
	}

	program, err := BuildProgram(dev, VertexShaderSource, FragmentShaderSource)
	var linkErr *ProgramLinkError
	switch {
	case errors.As(err, &linkErr):
		a.logger.Error("shader program link failed", "program", linkErr.Program, "log", linkErr.Log)
	case err != nil:
		return nil, fmt.Errorf("build shader program: %w", err)
	}
	a.program = program

	a.mesh = UploadTriangle(dev, Triangle())

	return a, nil
}

// Program returns the program drawn with.
func (a *App) Program() Program { return a.program }

// Mesh returns the uploaded triangle.
func (a *App) Mesh() Mesh { return a.mesh }

// Frames returns the number of frames drawn so far.
func (a *App) Frames() int { return a.frames }

// HandleEvent reacts to one key event. Escape requests window close.
func (a *App) HandleEvent(ev KeyEvent) {
	a.logger.Debug("key event", "event", ev)
	if ev.IsPress(KeyEscape) {
		a.window.SetShouldClose(true)
	}
}

// DrawFrame clears the framebuffer and draws the triangle.
func (a *App) DrawFrame() {
	a.device.Clear(a.cfg.ClearColor)
	a.device.DrawTriangles(a.program, a.mesh.VertexArray, 0, a.mesh.Count)
	a.frames++
}

// Run loops until the window is asked to close.
// A close requested while handling events skips that frame's draw.
func (a *App) Run() {
	for !a.window.ShouldClose() {
		for _, ev := range a.window.PollEvents() {
			a.HandleEvent(ev)
		}
		if a.window.ShouldClose() {
			break
		}

		a.DrawFrame()
		a.window.SwapBuffers()
	}

	a.logger.Debug("render loop finished", "frames", a.frames)
}
