// Package xdraw provides a resizer implementation using golang.org/x/image/draw.
// ApproxBiLinear is recommended for balanced speed/quality scaling.
package xdraw

import (
	"image"

	"golang.org/x/image/draw"

	"github.com/srlehn/fbtft/resize"
	"github.com/srlehn/fbtft/rgb565"
)

// resizer uses "golang.org/x/image/draw"
type resizer struct {
	scaler draw.Scaler
}

var _ resize.Resizer = (*resizer)(nil)

// ApproxBiLinear creates a new resizer with ApproxBiLinear scaling (balanced speed/quality).
func ApproxBiLinear() resize.Resizer {
	return &resizer{scaler: draw.ApproxBiLinear}
}

// BiLinear creates a new resizer with BiLinear scaling (higher quality, slower).
func BiLinear() resize.Resizer {
	return &resizer{scaler: draw.BiLinear}
}

// CatmullRom creates a new resizer with CatmullRom scaling (highest quality, slowest).
func CatmullRom() resize.Resizer {
	return &resizer{scaler: draw.CatmullRom}
}

// Resize scales the packed image through an RGBA intermediate,
// the generic scaler paths are too slow on packed pixels.
func (r *resizer) Resize(img *rgb565.Image, size image.Point) (*rgb565.Image, error) {
	if err := resize.Check(img, size); err != nil {
		return nil, err
	}
	src := img.RGBA()
	dst := image.NewRGBA(image.Rect(0, 0, size.X, size.Y))
	r.scaler.Scale(dst, dst.Bounds(), src, src.Bounds(), draw.Src, nil)
	return resize.Result(dst, size)
}
