package nfnt

import (
	"image"

	"github.com/nfnt/resize"

	fbresize "github.com/srlehn/fbtft/resize"
	"github.com/srlehn/fbtft/rgb565"
)

// Resizer uses "github.com/nfnt/resize"
type Resizer struct{}

var _ fbresize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img *rgb565.Image, size image.Point) (*rgb565.Image, error) {
	if err := fbresize.Check(img, size); err != nil {
		return nil, err
	}
	m := resize.Resize(uint(size.X), uint(size.Y), img.RGBA(), resize.Lanczos3)
	return fbresize.Result(m, size)
}
