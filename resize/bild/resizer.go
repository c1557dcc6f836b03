package bild

import (
	"image"

	"github.com/anthonynsimon/bild/transform"

	"github.com/srlehn/fbtft/resize"
	"github.com/srlehn/fbtft/rgb565"
)

// Resizer uses "github.com/anthonynsimon/bild/transform"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img *rgb565.Image, size image.Point) (*rgb565.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	m := transform.Resize(img.RGBA(), size.X, size.Y, transform.Lanczos)
	return resize.Result(m, size)
}
