// Package rgb565 implements the 16-bit packed colour format used by
// fbtft panels and an [image/draw.Image] backed by packed pixels.
//
// Packing truncates the low bits of every channel (3 of red and blue,
// 2 of green). Unpacking restores the kept bits and leaves the truncated
// ones zero, so Pack(Unpack(c)) == c for every packed c.
package rgb565

import (
	"image/color"
)

// Color is a packed pixel: red in bits 15-11, green in 10-5, blue in 4-0.
type Color uint16

const (
	Black   Color = 0x0000
	White   Color = 0xFFFF
	Red     Color = 0xF800
	Green   Color = 0x07E0
	Blue    Color = 0x001F
	Yellow  Color = 0xFFE0
	Cyan    Color = 0x07FF
	Magenta Color = 0xF81F
)

// Pack packs 8-bit channels.
func Pack(r, g, b uint8) Color {
	return Color(uint16(r&0xF8)<<8 | uint16(g&0xFC)<<3 | uint16(b>>3))
}

// Unpack expands c to 8-bit channels, truncated bits are zero.
func Unpack(c Color) (r, g, b uint8) {
	r = uint8(c>>8) & 0xF8
	g = uint8(c>>3) & 0xFC
	b = uint8(c<<3) & 0xF8
	return r, g, b
}

var _ color.Color = Color(0)

// RGBA implements color.Color. Packed colours are always opaque.
func (c Color) RGBA() (r, g, b, a uint32) {
	r8, g8, b8 := Unpack(c)
	r = uint32(r8)
	r |= r << 8
	g = uint32(g8)
	g |= g << 8
	b = uint32(b8)
	b |= b << 8
	return r, g, b, 0xffff
}

// Model converts any colour to a packed Color. Alpha is ignored,
// the colour channels are taken as they are (premultiplied).
var Model = color.ModelFunc(func(c color.Color) color.Color {
	if cc, ok := c.(Color); ok {
		return cc
	}
	r, g, b, _ := c.RGBA()
	return Pack(uint8(r>>8), uint8(g>>8), uint8(b>>8))
})

// Convert returns the packed equivalent of c.
func Convert(c color.Color) Color {
	if c == nil {
		return Black
	}
	return Model.Convert(c).(Color)
}
