// Package transform rotates and mirrors packed images.
//
// Rotations allocate a new image since 90° and 270° swap the dimensions.
// Mirrors work in place.
//
// Rotate90 moves pixel (x, y) of a w×h image to (y, w-1-x) of the h×w
// result, i.e. a counter-clockwise quarter turn. Rotate270 is its inverse.
package transform

import (
	"strconv"
	"strings"

	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/rgb565"
)

// ErrInvalidArgument is matched by errors for unusable images or parameters.
var ErrInvalidArgument = consts.ErrInvalidArgument

type Rotation int

const (
	Deg0   Rotation = 0
	Deg90  Rotation = 90
	Deg180 Rotation = 180
	Deg270 Rotation = 270
)

func (r Rotation) String() string { return strconv.Itoa(int(r)) }

// Swaps reports whether the rotation swaps width and height.
func (r Rotation) Swaps() bool { return r == Deg90 || r == Deg270 }

// ParseRotation accepts "0", "90", "180" and "270".
func ParseRotation(s string) (Rotation, error) {
	if i, err := strconv.Atoi(strings.TrimSpace(s)); err == nil {
		switch r := Rotation(i); r {
		case Deg0, Deg90, Deg180, Deg270:
			return r, nil
		}
	}
	return Deg0, errors.Kind(consts.ErrInvalidArgument, `rotation "`+s+`" not one of 0, 90, 180, 270`, nil)
}

type Mirror int

const (
	MirrorNone Mirror = iota
	MirrorH
	MirrorV
	MirrorBoth
)

var mirrorNames = [...]string{`none`, `horizontal`, `vertical`, `both`}

func (m Mirror) String() string {
	if m < 0 || int(m) >= len(mirrorNames) {
		return `Mirror(` + strconv.Itoa(int(m)) + `)`
	}
	return mirrorNames[m]
}

// ParseMirror accepts the names returned by Mirror.String and their initials.
func ParseMirror(s string) (Mirror, error) {
	s = strings.ToLower(strings.TrimSpace(s))
	for i, name := range mirrorNames {
		if s == name || (len(s) == 1 && s[0] == name[0]) {
			return Mirror(i), nil
		}
	}
	return MirrorNone, errors.Kind(consts.ErrInvalidArgument, `mirror "`+s+`" not one of `+strings.Join(mirrorNames[:], `, `), nil)
}

func check(img *rgb565.Image) error {
	if !img.Valid() {
		return errors.Kind(consts.ErrInvalidArgument, `image without pixels`, nil)
	}
	return nil
}

// Rotate90 returns img turned a quarter counter-clockwise.
func Rotate90(img *rgb565.Image) (*rgb565.Image, error) {
	if err := check(img); err != nil {
		return nil, err
	}
	w, h := img.Width, img.Height
	out := rgb565.New(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// (x, y) -> (y, w-1-x), stride of the result is h
			out.Pix[(w-1-x)*h+y] = img.Pix[y*w+x]
		}
	}
	return out, nil
}

// Rotate180 returns img turned upside down.
func Rotate180(img *rgb565.Image) (*rgb565.Image, error) {
	if err := check(img); err != nil {
		return nil, err
	}
	total := img.Width * img.Height
	out := rgb565.New(img.Width, img.Height)
	for i := 0; i < total; i++ {
		out.Pix[total-1-i] = img.Pix[i]
	}
	return out, nil
}

// Rotate270 returns img turned a quarter clockwise.
func Rotate270(img *rgb565.Image) (*rgb565.Image, error) {
	if err := check(img); err != nil {
		return nil, err
	}
	w, h := img.Width, img.Height
	out := rgb565.New(h, w)
	for y := 0; y < h; y++ {
		for x := 0; x < w; x++ {
			// (x, y) -> (h-1-y, x)
			out.Pix[x*h+(h-1-y)] = img.Pix[y*w+x]
		}
	}
	return out, nil
}

// MirrorHorizontal swaps left and right in place.
func MirrorHorizontal(img *rgb565.Image) error {
	if err := check(img); err != nil {
		return err
	}
	w := img.Width
	for y := 0; y < img.Height; y++ {
		row := img.Pix[y*w : (y+1)*w]
		for x := 0; x < w/2; x++ {
			row[x], row[w-1-x] = row[w-1-x], row[x]
		}
	}
	return nil
}

// MirrorVertical swaps top and bottom in place.
func MirrorVertical(img *rgb565.Image) error {
	if err := check(img); err != nil {
		return err
	}
	w, h := img.Width, img.Height
	for y := 0; y < h/2; y++ {
		top := img.Pix[y*w : (y+1)*w]
		bottom := img.Pix[(h-1-y)*w : (h-y)*w]
		for x := range top {
			top[x], bottom[x] = bottom[x], top[x]
		}
	}
	return nil
}

// Rotate dispatches on rotation. Deg0 copies.
func Rotate(img *rgb565.Image, rotation Rotation) (*rgb565.Image, error) {
	switch rotation {
	case Deg0:
		if err := check(img); err != nil {
			return nil, err
		}
		out := rgb565.New(img.Width, img.Height)
		copy(out.Pix, img.Pix)
		return out, nil
	case Deg90:
		return Rotate90(img)
	case Deg180:
		return Rotate180(img)
	case Deg270:
		return Rotate270(img)
	}
	return nil, errors.Kind(consts.ErrInvalidArgument, `rotation `+rotation.String(), nil)
}

// Apply rotates img into a new image and then mirrors the result
// along the axes of the rotated dimensions. img is left unchanged.
func Apply(img *rgb565.Image, rotation Rotation, mirror Mirror) (*rgb565.Image, error) {
	if mirror < MirrorNone || mirror > MirrorBoth {
		return nil, errors.Kind(consts.ErrInvalidArgument, `mirror `+mirror.String(), nil)
	}
	out, err := Rotate(img, rotation)
	if err != nil {
		return nil, err
	}
	if mirror == MirrorH || mirror == MirrorBoth {
		if err := MirrorHorizontal(out); err != nil {
			return nil, err
		}
	}
	if mirror == MirrorV || mirror == MirrorBoth {
		if err := MirrorVertical(out); err != nil {
			return nil, err
		}
	}
	return out, nil
}
