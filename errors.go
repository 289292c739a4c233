package triangle

import (
	"errors"
	"fmt"
)

// ShaderCompileError reports a stage that failed to compile.
// It is fatal: there is no fallback shader.
type ShaderCompileError struct {
	Kind StageKind
	Log  string
}

func (e *ShaderCompileError) Error() string {
	return fmt.Sprintf("%s shader compilation failed:\n%s", e.Kind, e.Log)
}

// ProgramLinkError reports a failed link. The program handle is still
// valid and callers may keep using it.
type ProgramLinkError struct {
	Program Program
	Log     string
}

func (e *ProgramLinkError) Error() string {
	return fmt.Sprintf("shader program %d linking failed:\n%s", e.Program, e.Log)
}

// LogDecodeError reports a device info log that is not valid UTF-8.
type LogDecodeError struct {
	Object string // "vertex shader", "fragment shader" or "program"
	Raw    []byte
}

func (e *LogDecodeError) Error() string {
	return fmt.Sprintf("%s info log is not valid UTF-8 (%d bytes)", e.Object, len(e.Raw))
}

// IsFatal reports whether err must stop the program.
// Link failures are the only non-fatal error.
func IsFatal(err error) bool {
	if err == nil {
		return false
	}
	var linkErr *ProgramLinkError
	return !errors.As(err, &linkErr)
}
