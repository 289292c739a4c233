// Command triangle opens a window and draws one colored triangle until
// the window is closed or Escape is pressed.
//
// Prerequisites:
//
//	devbox shell              # provides Go + OpenGL/X11 headers
//	go run ./cmd/triangle/    # add -v to log key events
package main

import (
	"flag"
	"fmt"
	"os"
	"runtime"

	"github.com/go-theft-auto/triangle"
	"github.com/go-theft-auto/triangle/backend/opengl"
)

func init() {
	// GLFW must run on the main thread.
	runtime.LockOSThread()
}

func main() {
	verbose := flag.Bool("v", false, "log every key event")
	flag.Parse()
	triangle.SetVerbose(*verbose)

	if err := run(); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

func run() error {
	cfg := triangle.NewConfig()

	window, err := opengl.NewWindow(cfg)
	if err != nil {
		return err
	}
	defer window.Close()

	device := opengl.NewDevice()

	app, err := triangle.New(device, window, cfg)
	if err != nil {
		return err
	}

	app.Run()
	return nil
}
