package overlay_test

import (
	"image"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbtft/overlay"
	"github.com/srlehn/fbtft/rgb565"
)

func count(m *rgb565.Image, c rgb565.Color) int {
	var n int
	for _, p := range m.Pix {
		if p == c {
			n++
		}
	}
	return n
}

func TestMeasure(t *testing.T) {
	assert.Equal(t, image.Pt(7*8+2*overlay.Padding, 13+2*overlay.Padding), overlay.Measure(`FPS 60.0`))
	assert.Equal(t, image.Pt(2*overlay.Padding, 13+2*overlay.Padding), overlay.Measure(``))
}

func TestDrawText(t *testing.T) {
	dst := rgb565.New(100, 40)
	dst.Fill(rgb565.Blue)
	r := overlay.DrawText(dst, image.Pt(10, 5), `FPS 42`, rgb565.White, rgb565.Black)
	size := overlay.Measure(`FPS 42`)
	require.Equal(t, image.Rect(10, 5, 10+size.X, 5+size.Y), r)

	assert.Equal(t, rgb565.Black, dst.PackedAt(10, 5))
	assert.Equal(t, rgb565.Black, dst.PackedAt(r.Max.X-1, r.Max.Y-1))
	assert.Equal(t, rgb565.Blue, dst.PackedAt(9, 5))
	assert.Equal(t, rgb565.Blue, dst.PackedAt(r.Max.X, 5))
	assert.Equal(t, 100*40-size.X*size.Y, count(dst, rgb565.Blue))

	fg := count(dst, rgb565.White)
	assert.Positive(t, fg)
	assert.Equal(t, size.X*size.Y, fg+count(dst, rgb565.Black))
}

func TestDrawTextClips(t *testing.T) {
	dst := rgb565.New(20, 10)
	r := overlay.DrawText(dst, image.Pt(15, 5), `clipped`, rgb565.White, rgb565.Red)
	assert.Equal(t, image.Rect(15, 5, 20, 10), r)
	assert.Equal(t, 5*5, count(dst, rgb565.Red)+count(dst, rgb565.White))

	before := dst.Clone()
	assert.True(t, overlay.DrawText(dst, image.Pt(-1, 0), `x`, rgb565.White, rgb565.Red).Empty())
	assert.True(t, overlay.DrawText(dst, image.Pt(20, 0), `x`, rgb565.White, rgb565.Red).Empty())
	assert.Equal(t, before.Pix, dst.Pix)
}

func TestDrawTextRotated(t *testing.T) {
	const text = `42 fps`
	flat := rgb565.New(60, 60)
	overlay.DrawText(flat, image.Pt(0, 0), text, rgb565.White, rgb565.Black)

	dst := rgb565.New(60, 60)
	dst.Fill(rgb565.Blue)
	r := overlay.DrawTextRotated(dst, image.Pt(3, 4), text, rgb565.White, rgb565.Black)
	size := overlay.Measure(text)
	assert.Equal(t, image.Rect(3, 4, 3+size.Y, 4+size.X), r)
	assert.Equal(t, count(flat, rgb565.White), count(dst, rgb565.White))

	// the first column of the label ends up as the last row
	for x := 0; x < size.Y; x++ {
		assert.Equal(t, flat.PackedAt(0, x), dst.PackedAt(3+x, 4+size.X-1))
	}
}
