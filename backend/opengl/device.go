// Package opengl provides the OpenGL 3.3 core device and GLFW window
// for the triangle package.
package opengl

import (
	"github.com/go-gl/gl/v3.3-core/gl"

	"github.com/go-theft-auto/triangle"
)

// floatSize is the size in bytes of one float32 component.
const floatSize = 4

// Device implements triangle.Device using OpenGL.
// The GL context must be current on the calling thread.
type Device struct{}

// NewDevice returns a device for the current context.
func NewDevice() *Device {
	return &Device{}
}

// Version returns the GL_VERSION string of the current context.
func (d *Device) Version() string {
	return gl.GoStr(gl.GetString(gl.VERSION))
}

func shaderType(kind triangle.StageKind) uint32 {
	if kind == triangle.FragmentStage {
		return gl.FRAGMENT_SHADER
	}
	return gl.VERTEX_SHADER
}

func (d *Device) CreateShader(kind triangle.StageKind) triangle.Shader {
	return triangle.Shader(gl.CreateShader(shaderType(kind)))
}

func (d *Device) ShaderSource(s triangle.Shader, source string) {
	csource, free := gl.Strs(source + "\x00")
	gl.ShaderSource(uint32(s), 1, csource, nil)
	free()
}

func (d *Device) CompileShader(s triangle.Shader) {
	gl.CompileShader(uint32(s))
}

func (d *Device) ShaderCompiled(s triangle.Shader) bool {
	var status int32
	gl.GetShaderiv(uint32(s), gl.COMPILE_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ShaderInfoLogLength(s triangle.Shader) int {
	var n int32
	gl.GetShaderiv(uint32(s), gl.INFO_LOG_LENGTH, &n)
	return int(n)
}

func (d *Device) ShaderInfoLog(s triangle.Shader, buf []byte) int {
	return readLog(buf, func(size int32, written *int32, dst *uint8) {
		gl.GetShaderInfoLog(uint32(s), size, written, dst)
	})
}

func (d *Device) DeleteShader(s triangle.Shader) {
	gl.DeleteShader(uint32(s))
}

func (d *Device) CreateProgram() triangle.Program {
	return triangle.Program(gl.CreateProgram())
}

func (d *Device) AttachShader(p triangle.Program, s triangle.Shader) {
	gl.AttachShader(uint32(p), uint32(s))
}

func (d *Device) LinkProgram(p triangle.Program) {
	gl.LinkProgram(uint32(p))
}

func (d *Device) ProgramLinked(p triangle.Program) bool {
	var status int32
	gl.GetProgramiv(uint32(p), gl.LINK_STATUS, &status)
	return status == gl.TRUE
}

func (d *Device) ProgramInfoLogLength(p triangle.Program) int {
	var n int32
	gl.GetProgramiv(uint32(p), gl.INFO_LOG_LENGTH, &n)
	return int(n)
}

func (d *Device) ProgramInfoLog(p triangle.Program, buf []byte) int {
	return readLog(buf, func(size int32, written *int32, dst *uint8) {
		gl.GetProgramInfoLog(uint32(p), size, written, dst)
	})
}

// readLog copies a GL info log into buf. GL always writes a terminator,
// so the call gets one spare byte that never reaches buf.
func readLog(buf []byte, get func(size int32, written *int32, dst *uint8)) int {
	if len(buf) == 0 {
		return 0
	}
	scratch := make([]byte, len(buf)+1)
	var written int32
	get(int32(len(scratch)), &written, &scratch[0])
	return copy(buf, scratch[:written])
}

func (d *Device) CreateVertexArray() triangle.VertexArray {
	var vao uint32
	gl.GenVertexArrays(1, &vao)
	return triangle.VertexArray(vao)
}

func (d *Device) CreateBuffer() triangle.Buffer {
	var vbo uint32
	gl.GenBuffers(1, &vbo)
	return triangle.Buffer(vbo)
}

func (d *Device) BufferStaticData(vao triangle.VertexArray, buf triangle.Buffer, data []float32) {
	if len(data) == 0 {
		return
	}
	gl.BindVertexArray(uint32(vao))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	gl.BufferData(gl.ARRAY_BUFFER, len(data)*floatSize, gl.Ptr(data), gl.STATIC_DRAW)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (d *Device) VertexAttrib(vao triangle.VertexArray, buf triangle.Buffer, attr triangle.Attribute) {
	gl.BindVertexArray(uint32(vao))
	gl.BindBuffer(gl.ARRAY_BUFFER, uint32(buf))
	gl.VertexAttribPointerWithOffset(attr.Location, attr.Components, gl.FLOAT, attr.Normalized, attr.Stride, attr.Offset)
	gl.EnableVertexAttribArray(attr.Location)
	gl.BindBuffer(gl.ARRAY_BUFFER, 0)
	gl.BindVertexArray(0)
}

func (d *Device) Clear(c triangle.Color) {
	gl.ClearColor(c[0], c[1], c[2], c[3])
	gl.Clear(gl.COLOR_BUFFER_BIT)
}

func (d *Device) DrawTriangles(p triangle.Program, vao triangle.VertexArray, first, count int) {
	gl.UseProgram(uint32(p))
	gl.BindVertexArray(uint32(vao))
	gl.DrawArrays(gl.TRIANGLES, int32(first), int32(count))
	gl.BindVertexArray(0)
}

var (
	_ triangle.Device    = (*Device)(nil)
	_ triangle.Versioner = (*Device)(nil)
)
