package linux_test

import (
	"os"
	"path/filepath"
	"runtime"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbtft/internal/linux"
)

func TestKDModeString(t *testing.T) {
	assert.Equal(t, `KD_TEXT`, linux.KDText.String())
	assert.Equal(t, `KD_GRAPHICS`, linux.KDGraphics.String())
	assert.Equal(t, `0x10`, linux.KDMode(16).String())
	assert.Equal(t, `-0x1`, linux.KDMode(-1).String())
	assert.True(t, linux.KDText.TextMode())
	assert.False(t, linux.KDGraphics.TextMode())
}

func TestKDGetModeOnRegularFile(t *testing.T) {
	if runtime.GOOS != `linux` {
		t.Skip(`virtual consoles are linux only`)
	}
	f, err := os.Create(filepath.Join(t.TempDir(), `not-a-console`))
	require.NoError(t, err)
	defer f.Close()
	_, isConsole, err := linux.KDGetMode(f.Fd())
	require.NoError(t, err)
	assert.False(t, isConsole)
}
