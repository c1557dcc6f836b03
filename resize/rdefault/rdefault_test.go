package rdefault_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/resize/rdefault"
	"github.com/srlehn/fbtft/rgb565"
)

func TestBackendsProduceRequestedSize(t *testing.T) {
	src := rgb565.New(40, 30)
	src.Fill(rgb565.Blue)
	// rez needs SIMD-friendly sizes and is covered through "default" on amd64 only
	for _, name := range []string{`bilinear`, `approx`, `catmullrom`, `nfnt`, `gift`, `imaging`, `bild`} {
		t.Run(name, func(t *testing.T) {
			rsz, err := rdefault.ByName(name)
			require.NoError(t, err)
			require.NotNil(t, rsz)
			for _, size := range []image.Point{{20, 15}, {80, 60}, {33, 7}} {
				m, err := rsz.Resize(src, size)
				require.NoError(t, err)
				assert.Equal(t, size.X, m.Width)
				assert.Equal(t, size.Y, m.Height)
				require.Len(t, m.Pix, size.X*size.Y)
				// a uniform image stays uniform up to rounding
				r, g, b := rgb565.Unpack(m.PackedAt(size.X/2, size.Y/2))
				assert.LessOrEqual(t, r, uint8(8))
				assert.LessOrEqual(t, g, uint8(8))
				assert.GreaterOrEqual(t, b, uint8(0xF0))
			}
		})
	}
}

func TestBackendsRejectInvalidInput(t *testing.T) {
	rsz, err := rdefault.ByName(`nfnt`)
	require.NoError(t, err)
	_, err = rsz.Resize(nil, image.Pt(2, 2))
	assert.ErrorIs(t, err, consts.ErrInvalidArgument)
	_, err = rsz.Resize(rgb565.New(2, 2), image.Pt(0, 2))
	assert.ErrorIs(t, err, consts.ErrInvalidArgument)
}

func TestByName(t *testing.T) {
	for _, name := range []string{``, `nearest`, ` Nearest `} {
		rsz, err := rdefault.ByName(name)
		require.NoError(t, err)
		assert.Nil(t, rsz)
	}
	_, err := rdefault.ByName(`seamcarve`)
	assert.ErrorIs(t, err, consts.ErrInvalidArgument)

	names := rdefault.Names()
	assert.IsIncreasing(t, names)
	assert.Contains(t, names, `nearest`)
	assert.Contains(t, names, `gift`)
	for _, name := range names {
		_, err := rdefault.ByName(name)
		assert.NoError(t, err, name)
	}
}
