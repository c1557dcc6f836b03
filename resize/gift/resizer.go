package gift

import (
	"image"

	"github.com/disintegration/gift"

	"github.com/srlehn/fbtft/resize"
	"github.com/srlehn/fbtft/rgb565"
)

// Resizer uses "github.com/disintegration/gift"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img *rgb565.Image, size image.Point) (*rgb565.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	m := image.NewRGBA(image.Rectangle{Max: size})
	gift.Resize(size.X, size.Y, gift.LanczosResampling).Draw(m, img, &gift.Options{Parallelization: true})
	return resize.Result(m, size)
}
