package triangle

// Shader is a device handle to one compiled shader stage.
type Shader uint32

// Program is a device handle to a linked shader program.
type Program uint32

// VertexArray is a device handle to a vertex array object.
type VertexArray uint32

// Buffer is a device handle to a vertex buffer.
type Buffer uint32

// Color is an RGBA color with components in [0, 1].
type Color [4]float32

// ShaderDevice is the part of the graphics device used to build programs.
//
// Info log methods take a caller-owned slice and return how many bytes
// were written into it. Reported lengths include the trailing terminator.
type ShaderDevice interface {
	CreateShader(kind StageKind) Shader
	ShaderSource(s Shader, source string)
	CompileShader(s Shader)
	ShaderCompiled(s Shader) bool
	ShaderInfoLogLength(s Shader) int
	ShaderInfoLog(s Shader, buf []byte) int
	DeleteShader(s Shader)

	CreateProgram() Program
	AttachShader(p Program, s Shader)
	LinkProgram(p Program)
	ProgramLinked(p Program) bool
	ProgramInfoLogLength(p Program) int
	ProgramInfoLog(p Program, buf []byte) int
}

// MeshDevice creates and fills vertex storage.
// Every call names the objects it works on; nothing relies on
// previously bound state.
type MeshDevice interface {
	CreateVertexArray() VertexArray
	CreateBuffer() Buffer
	BufferStaticData(vao VertexArray, buf Buffer, data []float32)
	VertexAttrib(vao VertexArray, buf Buffer, attr Attribute)
}

// DrawDevice issues per-frame commands.
type DrawDevice interface {
	Clear(c Color)
	DrawTriangles(p Program, vao VertexArray, first, count int)
}

// Device is the full graphics device surface the app needs.
type Device interface {
	ShaderDevice
	MeshDevice
	DrawDevice
}

// Versioner is implemented by devices that can report their driver version.
type Versioner interface {
	Version() string
}

// Window is the windowing surface the render loop drives.
type Window interface {
	ShouldClose() bool
	SetShouldClose(v bool)
	// PollEvents processes pending input and returns the key events
	// received since the previous call.
	PollEvents() []KeyEvent
	SwapBuffers()
}
