package triangle

import "unicode/utf8"

// readInfoLog fetches a device info log of reported length n.
// n counts the trailing terminator, so n-1 bytes are requested.
func readInfoLog(object string, n int, fill func([]byte) int) (string, error) {
	if n <= 1 {
		return "", nil
	}
	buf := make([]byte, n-1)
	if written := fill(buf); written < len(buf) {
		buf = buf[:max(written, 0)]
	}
	if !utf8.Valid(buf) {
		return "", &LogDecodeError{Object: object, Raw: buf}
	}
	return string(buf), nil
}

func shaderInfoLog(dev ShaderDevice, kind StageKind, s Shader) (string, error) {
	return readInfoLog(kind.String()+" shader", dev.ShaderInfoLogLength(s), func(buf []byte) int {
		return dev.ShaderInfoLog(s, buf)
	})
}

func programInfoLog(dev ShaderDevice, p Program) (string, error) {
	return readInfoLog("program", dev.ProgramInfoLogLength(p), func(buf []byte) int {
		return dev.ProgramInfoLog(p, buf)
	})
}
