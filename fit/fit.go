// Package fit adapts packed images to the size of a destination buffer.
//
// Letterbox keeps the aspect ratio and centres the scaled image on black.
// Stretch fills the destination, ignoring the aspect ratio. Smart turns
// the source to the destination's orientation before stretching.
//
// The nearest neighbour sampling of Letterbox truncates (floor(d/scale))
// while Stretch rounds half up (round(d*src/dst)).
package fit

import (
	"image"
	"strings"

	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/resize"
	"github.com/srlehn/fbtft/rgb565"
	"github.com/srlehn/fbtft/transform"
)

// ErrInvalidArgument is matched by errors for unusable images.
var ErrInvalidArgument = consts.ErrInvalidArgument

type Mode int

const (
	ModeScale Mode = iota
	ModeStretch
	ModeAuto
)

var modeNames = [...]string{`scale`, `stretch`, `auto`}

func (m Mode) String() string {
	if m < 0 || int(m) >= len(modeNames) {
		return `unknown`
	}
	return modeNames[m]
}

// ParseMode accepts "scale", "stretch" and "auto".
func ParseMode(s string) (Mode, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range modeNames {
		if s == name {
			return Mode(i), nil
		}
	}
	return ModeScale, errors.Kind(consts.ErrInvalidArgument, `fit mode "`+s+`" not one of `+strings.Join(modeNames[:], `, `), nil)
}

// Fitter fits with the configured mode. A nil Resizer samples nearest neighbour.
type Fitter struct {
	Mode    Mode
	Resizer resize.Resizer
}

// Fit writes src fitted to dst's size into dst.
func (f Fitter) Fit(dst, src *rgb565.Image) error {
	switch f.Mode {
	case ModeScale:
		return letterbox(dst, src, f.Resizer)
	case ModeStretch:
		return stretch(dst, src, f.Resizer)
	case ModeAuto:
		return smart(dst, src, f.Resizer)
	}
	return errors.Kind(consts.ErrInvalidArgument, `fit mode `+f.Mode.String(), nil)
}

// New allocates a w×h image and fits src into it.
func (f Fitter) New(src *rgb565.Image, w, h int) (*rgb565.Image, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Kind(consts.ErrInvalidArgument, `non-positive destination size`, nil)
	}
	dst := rgb565.New(w, h)
	if err := f.Fit(dst, src); err != nil {
		return nil, err
	}
	return dst, nil
}

// Letterbox scales src by min(dstW/srcW, dstH/srcH), centred on black.
func Letterbox(dst, src *rgb565.Image) error { return letterbox(dst, src, nil) }

// Stretch scales src to dst's size on each axis independently.
func Stretch(dst, src *rgb565.Image) error { return stretch(dst, src, nil) }

// Smart turns landscape sources on portrait destinations by 90° (and
// portrait on landscape by 270°) and then stretches.
func Smart(dst, src *rgb565.Image) error { return smart(dst, src, nil) }

func check(dst, src *rgb565.Image) error {
	if !src.Valid() {
		return errors.Kind(consts.ErrInvalidArgument, `source image without pixels`, nil)
	}
	if dst == nil || dst.Width <= 0 || dst.Height <= 0 {
		return errors.Kind(consts.ErrInvalidArgument, `destination without size`, nil)
	}
	if len(dst.Pix) < dst.Width*dst.Height {
		return errors.Kind(consts.ErrInvalidArgument, `destination buffer too small`, nil)
	}
	return nil
}

// LetterboxSize returns the size of the scaled region and its offset in dst.
// The scale factor is num/den, computed without rounding.
func LetterboxSize(srcW, srcH, dstW, dstH int) (size, offset image.Point) {
	num, den := dstW, srcW
	if dstH*srcW < dstW*srcH {
		num, den = dstH, srcH
	}
	size = image.Point{X: srcW * num / den, Y: srcH * num / den}
	offset = image.Point{X: (dstW - size.X) / 2, Y: (dstH - size.Y) / 2}
	return size, offset
}

func letterbox(dst, src *rgb565.Image, rsz resize.Resizer) error {
	if err := check(dst, src); err != nil {
		return err
	}
	size, off := LetterboxSize(src.Width, src.Height, dst.Width, dst.Height)
	dst.Fill(rgb565.Black)
	if size.X <= 0 || size.Y <= 0 {
		return nil
	}
	if rsz != nil {
		scaled, err := rsz.Resize(src, size)
		if err != nil {
			return err
		}
		dst.DrawImage(scaled, off)
		return nil
	}
	num, den := dst.Width, src.Width
	if dst.Height*src.Width < dst.Width*src.Height {
		num, den = dst.Height, src.Height
	}
	for y := 0; y < size.Y; y++ {
		// floor(y / scale)
		sy := min(y*den/num, src.Height-1)
		srcRow := src.Pix[sy*src.Width : (sy+1)*src.Width]
		dstRow := dst.Pix[(y+off.Y)*dst.Width+off.X:]
		for x := 0; x < size.X; x++ {
			dstRow[x] = srcRow[min(x*den/num, src.Width-1)]
		}
	}
	return nil
}

// nearest maps d in [0, dstLen) to round-half-up(d*srcLen/dstLen), clamped.
func nearest(d, srcLen, dstLen int) int {
	return min((2*d*srcLen+dstLen)/(2*dstLen), srcLen-1)
}

func stretch(dst, src *rgb565.Image, rsz resize.Resizer) error {
	if err := check(dst, src); err != nil {
		return err
	}
	if src.Width == dst.Width && src.Height == dst.Height {
		copy(dst.Pix, src.Pix[:src.Width*src.Height])
		return nil
	}
	if rsz != nil {
		scaled, err := rsz.Resize(src, image.Point{X: dst.Width, Y: dst.Height})
		if err != nil {
			return err
		}
		copy(dst.Pix, scaled.Pix)
		return nil
	}
	cols := make([]int, dst.Width)
	for x := range cols {
		cols[x] = nearest(x, src.Width, dst.Width)
	}
	for y := 0; y < dst.Height; y++ {
		sy := nearest(y, src.Height, dst.Height)
		srcRow := src.Pix[sy*src.Width : (sy+1)*src.Width]
		dstRow := dst.Pix[y*dst.Width : (y+1)*dst.Width]
		for x, sx := range cols {
			dstRow[x] = srcRow[sx]
		}
	}
	return nil
}

// SmartRotation returns the rotation Smart applies before stretching.
func SmartRotation(srcW, srcH, dstW, dstH int) transform.Rotation {
	switch {
	case srcW > srcH && dstW < dstH:
		return transform.Deg90
	case srcW < srcH && dstW > dstH:
		return transform.Deg270
	}
	return transform.Deg0
}

func smart(dst, src *rgb565.Image, rsz resize.Resizer) error {
	if err := check(dst, src); err != nil {
		return err
	}
	switch SmartRotation(src.Width, src.Height, dst.Width, dst.Height) {
	case transform.Deg90:
		rotated, err := transform.Rotate90(src)
		if err != nil {
			return err
		}
		src = rotated
	case transform.Deg270:
		rotated, err := transform.Rotate270(src)
		if err != nil {
			return err
		}
		src = rotated
	}
	return stretch(dst, src, rsz)
}
