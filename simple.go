// Package fbtft shows bitmaps on fbtft panels and other Linux framebuffers.
//
//	defer fbtft.CleanUp()
//	if err := fbtft.DrawFile(`splash.bmp`); err != nil {
//		return err
//	}
package fbtft

import (
	"image"

	"github.com/srlehn/fbtft/bmp"
	"github.com/srlehn/fbtft/fit"
	"github.com/srlehn/fbtft/framebuffer"
	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/rgb565"
	"github.com/srlehn/fbtft/transform"
)

// error kinds, match with errors.Is
var (
	ErrFormat          = consts.ErrFormat
	ErrIO              = consts.ErrIO
	ErrInvalidArgument = consts.ErrInvalidArgument
	ErrDevice          = consts.ErrDevice
)

// Presentation describes how images are adapted to a surface.
type Presentation struct {
	Fitter   fit.Fitter
	Rotation transform.Rotation
	Mirror   transform.Mirror
}

var (
	// chosen defaults
	DefaultPresentation = Presentation{Fitter: fit.Fitter{Mode: fit.ModeScale}}
	DefaultConfig       = framebuffer.Options{}
)

// Prepare fits src and applies rotation and mirror so that the result
// is w×h. Quarter turns fit to the transposed size first.
func (p Presentation) Prepare(src *rgb565.Image, w, h int) (*rgb565.Image, error) {
	fw, fh := w, h
	if p.Rotation.Swaps() {
		fw, fh = h, w
	}
	fitted, err := p.Fitter.New(src, fw, fh)
	if err != nil {
		return nil, err
	}
	if p.Rotation == transform.Deg0 && p.Mirror == transform.MirrorNone {
		return fitted, nil
	}
	return transform.Apply(fitted, p.Rotation, p.Mirror)
}

// Show prepares src for s and presents it.
func (p Presentation) Show(s *framebuffer.Surface, src *rgb565.Image) error {
	if s == nil {
		return errors.NilParam()
	}
	g := s.Geometry()
	frame, err := p.Prepare(src, g.Width, g.Height)
	if err != nil {
		return err
	}
	return s.Present(frame)
}

var surfaceActive *framebuffer.Surface

// Surface returns the surface used by the package level functions,
// probing the default devices on first use.
func Surface() (*framebuffer.Surface, error) {
	return surfaceActive, initSurface()
}

func initSurface() error {
	if surfaceActive != nil {
		return nil
	}
	s, err := framebuffer.Probe(nil, DefaultConfig)
	if err != nil {
		return err
	}
	surfaceActive = s
	return nil
}

// Use replaces the surface of the package level functions.
// The previous one is closed.
func Use(s *framebuffer.Surface) error {
	err := CleanUp()
	surfaceActive = s
	return err
}

// Draw shows img on the active surface.
func Draw(img image.Image) error {
	if img == nil {
		return errors.New(consts.ErrNilImage)
	}
	s, err := Surface()
	if err != nil {
		return err
	}
	return DefaultPresentation.Show(s, rgb565.FromImage(img))
}

// DrawBytes - for use with "embed", etc.
func DrawBytes(bmpBytes []byte) error {
	img, err := bmp.DecodeBytes(bmpBytes)
	if err != nil {
		return err
	}
	s, err := Surface()
	if err != nil {
		return err
	}
	return DefaultPresentation.Show(s, img)
}

// DrawFile ...
func DrawFile(bmpFile string) error {
	img, err := bmp.DecodeFile(bmpFile)
	if err != nil {
		return err
	}
	s, err := Surface()
	if err != nil {
		return err
	}
	return DefaultPresentation.Show(s, img)
}

// CleanUp closes the active surface.
func CleanUp() error {
	if surfaceActive == nil {
		return nil
	}
	err := surfaceActive.Close()
	surfaceActive = nil
	return err
}
