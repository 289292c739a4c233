package triangle

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestReadInfoLogSizing(t *testing.T) {
	for _, n := range []int{2, 5, 64, 1024} {
		var requested int
		log, err := readInfoLog("program", n, func(buf []byte) int {
			requested = len(buf)
			for i := range buf {
				buf[i] = 'a'
			}
			return len(buf)
		})
		require.NoError(t, err)
		assert.Equal(t, n-1, requested, "reported length %d", n)
		assert.Len(t, log, n-1)
	}
}

func TestReadInfoLogEmpty(t *testing.T) {
	for _, n := range []int{0, 1} {
		log, err := readInfoLog("program", n, func([]byte) int {
			t.Fatalf("fill called for length %d", n)
			return 0
		})
		require.NoError(t, err)
		assert.Empty(t, log)
	}
}

func TestReadInfoLogShortWrite(t *testing.T) {
	log, err := readInfoLog("program", 10, func(buf []byte) int {
		return copy(buf, "abc")
	})
	require.NoError(t, err)
	assert.Equal(t, "abc", log)
}

func TestReadInfoLogInvalidUTF8(t *testing.T) {
	_, err := readInfoLog("fragment shader", 3, func(buf []byte) int {
		return copy(buf, []byte{0xff, 0xff})
	})

	var decodeErr *LogDecodeError
	require.ErrorAs(t, err, &decodeErr)
	assert.Equal(t, []byte{0xff, 0xff}, decodeErr.Raw)
}

func TestShaderInfoLogFromDevice(t *testing.T) {
	dev := newFakeDevice()
	dev.stageLog[FragmentStage] = []byte("0:1: bad")
	s := dev.CreateShader(FragmentStage)

	log, err := shaderInfoLog(dev, FragmentStage, s)
	require.NoError(t, err)
	assert.Equal(t, "0:1: bad", log)
}
