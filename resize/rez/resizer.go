package rez

import (
	"image"

	"github.com/bamiaux/rez"

	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/resize"
	"github.com/srlehn/fbtft/rgb565"
)

// Resizer uses "github.com/bamiaux/rez"
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

// Resize ...
func (r *Resizer) Resize(img *rgb565.Image, size image.Point) (*rgb565.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	m := image.NewRGBA(image.Rectangle{Max: size})
	if err := rez.Convert(m, img.RGBA(), rez.NewBilinearFilter()); err != nil {
		return nil, errors.New(err)
	}
	return resize.Result(m, size)
}
