// Package resize defines the interface of the smooth scaling backends
// in its subpackages. The fit policies fall back to nearest neighbour
// sampling when no Resizer is configured.
package resize

import (
	"image"
	"strconv"

	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/rgb565"
)

// Resizer scales img to exactly size.
type Resizer interface {
	Resize(img *rgb565.Image, size image.Point) (*rgb565.Image, error)
}

// Check validates the arguments of a Resize call.
func Check(img *rgb565.Image, size image.Point) error {
	if !img.Valid() {
		return errors.Kind(consts.ErrInvalidArgument, `resize: image without pixels`, nil)
	}
	if size.X <= 0 || size.Y <= 0 {
		return errors.Kind(consts.ErrInvalidArgument, `resize: target size `+
			strconv.Itoa(size.X)+`x`+strconv.Itoa(size.Y), nil)
	}
	return nil
}

// Result packs the output of a backend and verifies its size.
func Result(img image.Image, size image.Point) (*rgb565.Image, error) {
	if img == nil {
		return nil, errors.New(consts.ErrNilImage)
	}
	if got := img.Bounds().Size(); got != size {
		return nil, errors.Errorf(`resize: backend returned %dx%d instead of %dx%d`, got.X, got.Y, size.X, size.Y)
	}
	return rgb565.FromImage(img), nil
}
