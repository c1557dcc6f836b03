package imaging

import (
	"image"

	"github.com/disintegration/imaging"

	"github.com/srlehn/fbtft/resize"
	"github.com/srlehn/fbtft/rgb565"
)

// Resizer uses "github.com/disintegration/imaging"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img *rgb565.Image, size image.Point) (*rgb565.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	return resize.Result(imaging.Resize(img.RGBA(), size.X, size.Y, imaging.Lanczos), size)
}
