package triangle

import "fmt"

// StageKind identifies a shader pipeline stage.
type StageKind int

const (
	VertexStage StageKind = iota
	FragmentStage
)

func (k StageKind) String() string {
	switch k {
	case VertexStage:
		return "vertex"
	case FragmentStage:
		return "fragment"
	default:
		return fmt.Sprintf("StageKind(%d)", int(k))
	}
}

// Vertex shader source
const VertexShaderSource = `
#version 330 core
layout (location = 0) in vec3 position;
layout (location = 1) in vec3 color;

out vec3 ourColor;

void main() {
    gl_Position = vec4(position.x, position.y, position.z, 1.0);
    ourColor = color;
}
`

// Fragment shader source
const FragmentShaderSource = `
#version 330 core
in vec3 ourColor;

out vec4 color;

void main() {
    color = vec4(ourColor, 1.0f);
}
`

// CompileStage compiles source as a kind stage.
// On failure the shader is deleted and a *ShaderCompileError carrying the
// device log is returned.
func CompileStage(dev ShaderDevice, kind StageKind, source string) (Shader, error) {
	if source == "" {
		return 0, &ShaderCompileError{Kind: kind, Log: "empty shader source"}
	}

	s := dev.CreateShader(kind)
	dev.ShaderSource(s, source)
	dev.CompileShader(s)

	if dev.ShaderCompiled(s) {
		return s, nil
	}

	log, err := shaderInfoLog(dev, kind, s)
	dev.DeleteShader(s)
	if err != nil {
		return 0, err
	}
	return 0, &ShaderCompileError{Kind: kind, Log: log}
}

// LinkProgram links the two stages into a new program and deletes them.
//
// A failed link returns the program together with a *ProgramLinkError;
// the handle stays usable.
func LinkProgram(dev ShaderDevice, vertex, fragment Shader) (Program, error) {
	p := dev.CreateProgram()
	dev.AttachShader(p, vertex)
	dev.AttachShader(p, fragment)
	dev.LinkProgram(p)

	// Stages are folded into the program now.
	dev.DeleteShader(vertex)
	dev.DeleteShader(fragment)

	if dev.ProgramLinked(p) {
		return p, nil
	}

	log, err := programInfoLog(dev, p)
	if err != nil {
		return p, err
	}
	return p, &ProgramLinkError{Program: p, Log: log}
}

// BuildProgram compiles both sources and links them.
// Compile errors are returned before any program object is created.
func BuildProgram(dev ShaderDevice, vertexSource, fragmentSource string) (Program, error) {
	vs, err := CompileStage(dev, VertexStage, vertexSource)
	if err != nil {
		return 0, err
	}

	fs, err := CompileStage(dev, FragmentStage, fragmentSource)
	if err != nil {
		dev.DeleteShader(vs)
		return 0, err
	}

	return LinkProgram(dev, vs, fs)
}
