// Package overlay draws short text labels, such as frame rate read-outs,
// onto images with the 7x13 fixed font of golang.org/x/image.
package overlay

import (
	"image"

	"golang.org/x/image/draw"
	"golang.org/x/image/font"
	"golang.org/x/image/font/basicfont"
	"golang.org/x/image/math/fixed"

	"github.com/srlehn/fbtft/rgb565"
	"github.com/srlehn/fbtft/transform"
)

// Padding around the text inside the background box.
const Padding = 2

var face = basicfont.Face7x13

// Measure returns the size of the box DrawText fills for text.
func Measure(text string) image.Point {
	w := font.MeasureString(face, text).Ceil()
	return image.Point{X: w + 2*Padding, Y: face.Height + 2*Padding}
}

// DrawText fills a bg box at pt and draws text in fg on it.
// The box is clipped to dst, nothing is drawn if pt lies outside dst.
// It returns the drawn area.
func DrawText(dst draw.Image, pt image.Point, text string, fg, bg rgb565.Color) image.Rectangle {
	if dst == nil || !pt.In(dst.Bounds()) {
		return image.Rectangle{}
	}
	box := image.Rectangle{Min: pt, Max: pt.Add(Measure(text))}
	clipped := box.Intersect(dst.Bounds())
	draw.Draw(dst, clipped, image.NewUniform(bg), image.Point{}, draw.Src)
	d := &font.Drawer{
		Dst:  dst,
		Src:  image.NewUniform(fg),
		Face: face,
		Dot:  fixed.P(pt.X+Padding, pt.Y+Padding+face.Ascent),
	}
	d.DrawString(text)
	return clipped
}

// DrawTextRotated draws the label rotated 90° counter-clockwise with
// its rotated box's top-left corner at pt, for panels mounted sideways.
func DrawTextRotated(dst *rgb565.Image, pt image.Point, text string, fg, bg rgb565.Color) image.Rectangle {
	if dst == nil || !pt.In(dst.Bounds()) {
		return image.Rectangle{}
	}
	size := Measure(text)
	label := rgb565.New(size.X, size.Y)
	DrawText(label, image.Point{}, text, fg, bg)
	rotated, err := transform.Rotate90(label)
	if err != nil {
		return image.Rectangle{}
	}
	dst.DrawImage(rotated, pt)
	return image.Rectangle{Min: pt, Max: pt.Add(image.Pt(rotated.Width, rotated.Height))}.Intersect(dst.Bounds())
}
