package rgb565_test

import (
	"image/color"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/fbtft/rgb565"
)

func TestPack(t *testing.T) {
	tests := []struct {
		r, g, b uint8
		want    rgb565.Color
	}{
		{255, 0, 0, rgb565.Red},
		{0, 255, 0, rgb565.Green},
		{0, 0, 255, rgb565.Blue},
		{255, 255, 255, rgb565.White},
		{0, 0, 0, rgb565.Black},
		{255, 255, 0, rgb565.Yellow},
		{0x07, 0x03, 0x07, rgb565.Black},
		{0x08, 0x04, 0x08, 0x0821},
	}
	for _, tt := range tests {
		assert.Equal(t, tt.want, rgb565.Pack(tt.r, tt.g, tt.b), "%02x%02x%02x", tt.r, tt.g, tt.b)
	}
}

func TestUnpack(t *testing.T) {
	r, g, b := rgb565.Unpack(rgb565.White)
	assert.Equal(t, [3]uint8{0xF8, 0xFC, 0xF8}, [3]uint8{r, g, b})
	r, g, b = rgb565.Unpack(rgb565.Magenta)
	assert.Equal(t, [3]uint8{0xF8, 0, 0xF8}, [3]uint8{r, g, b})
}

func TestRequantizationIsStable(t *testing.T) {
	for r := 0; r < 256; r++ {
		for g := 0; g < 256; g++ {
			for b := 0; b < 256; b += 3 {
				c := rgb565.Pack(uint8(r), uint8(g), uint8(b))
				if c2 := rgb565.Pack(rgb565.Unpack(c)); c2 != c {
					t.Fatalf("pack(unpack(%04x)) = %04x", c, c2)
				}
			}
		}
	}
}

func TestModel(t *testing.T) {
	assert.Equal(t, rgb565.Red, rgb565.Convert(color.RGBA{R: 255, A: 255}))
	assert.Equal(t, rgb565.Cyan, rgb565.Convert(color.NRGBA{G: 255, B: 255, A: 255}))
	assert.Equal(t, rgb565.Black, rgb565.Convert(nil))

	r, g, b, a := rgb565.Red.RGBA()
	assert.Equal(t, uint32(0xF8F8), r)
	assert.Zero(t, g)
	assert.Zero(t, b)
	assert.Equal(t, uint32(0xffff), a)
}
