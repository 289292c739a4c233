/*
Package triangle draws a single colored triangle with OpenGL.

# Overview

The package holds everything that does not need a live graphics context:
the shader sources and the build step that compiles and links them, the
vertex layout of the triangle, and the render loop. The device and the
window are interfaces; backend/opengl implements them with go-gl and GLFW.

All GPU objects are created once by New and live until the process exits.
Every device call names the handles it acts on, so setup and drawing do
not share implicit "currently bound" state.

# Quick Start

	cfg := triangle.NewConfig()
	win, err := opengl.NewWindow(cfg)
	if err != nil {
	    return err
	}
	defer win.Close()

	app, err := triangle.New(opengl.NewDevice(), win, cfg)
	if err != nil {
	    return err // compile failure: nothing to draw with
	}
	app.Run()

# Errors

Shader compilation failures (*ShaderCompileError) and unreadable info logs
(*LogDecodeError) are fatal. A link failure (*ProgramLinkError) is logged
and the loop still runs with the program object the device returned.
Use IsFatal to tell them apart.

# Keys

	Escape    Close the window
*/
package triangle
