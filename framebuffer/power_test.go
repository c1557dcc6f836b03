package framebuffer_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbtft/framebuffer"
)

func controlDirs(t *testing.T) (spi, class string) {
	t.Helper()
	dir := t.TempDir()
	return filepath.Join(dir, `spi`, `%s`, `blank`), filepath.Join(dir, `class`, `%s`, `blank`)
}

func touch(t *testing.T, path string) {
	t.Helper()
	require.NoError(t, os.MkdirAll(filepath.Dir(path), 0o755))
	require.NoError(t, os.WriteFile(path, nil, 0o600))
}

func TestPowerFallsBackToSecondPath(t *testing.T) {
	spi, class := controlDirs(t)
	ctl := filepath.Join(filepath.Dir(filepath.Dir(class)), `fb1`, `blank`)
	touch(t, ctl)

	s := newMemory(t, 2, 2, framebuffer.SetDeviceName(`fb1`), framebuffer.SetPowerControlPaths(spi, class))
	require.NoError(t, s.SetPowerMode(framebuffer.PowerOff))
	b, err := os.ReadFile(ctl)
	require.NoError(t, err)
	assert.Equal(t, "1\n", string(b))
}

func TestPowerPrefersFirstPath(t *testing.T) {
	spi, class := controlDirs(t)
	first := filepath.Join(filepath.Dir(filepath.Dir(spi)), `fb1`, `blank`)
	second := filepath.Join(filepath.Dir(filepath.Dir(class)), `fb1`, `blank`)
	touch(t, first)
	touch(t, second)

	s := newMemory(t, 2, 2, framebuffer.SetDeviceName(`fb1`), framebuffer.SetPowerControlPaths(spi, class))
	require.NoError(t, s.SetPowerMode(framebuffer.PowerSuspend))
	b, err := os.ReadFile(first)
	require.NoError(t, err)
	assert.Equal(t, "4\n", string(b))
	b, err = os.ReadFile(second)
	require.NoError(t, err)
	assert.Empty(t, b)
}

func TestPowerWithoutControlFile(t *testing.T) {
	spi, class := controlDirs(t)
	s := newMemory(t, 2, 2, framebuffer.SetDeviceName(`fb1`), framebuffer.SetPowerControlPaths(spi, class))
	assert.ErrorIs(t, s.SetPowerMode(framebuffer.PowerOn), framebuffer.ErrDevice)

	// memory surfaces have no device name unless given one
	assert.ErrorIs(t, newMemory(t, 2, 2).SetPowerMode(framebuffer.PowerOn), framebuffer.ErrDevice)

	assert.ErrorIs(t, s.SetPowerMode(framebuffer.PowerMode(2)), framebuffer.ErrInvalidArgument)
}

func TestParsePowerMode(t *testing.T) {
	for _, m := range []framebuffer.PowerMode{framebuffer.PowerOn, framebuffer.PowerOff, framebuffer.PowerSuspend} {
		got, err := framebuffer.ParsePowerMode(m.String())
		require.NoError(t, err)
		assert.Equal(t, m, got)
	}
	_, err := framebuffer.ParsePowerMode(`standby`)
	assert.ErrorIs(t, err, framebuffer.ErrInvalidArgument)
}
