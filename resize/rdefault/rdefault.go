// Package rdefault picks resize backends by name.
package rdefault

import (
	"image"
	"runtime"
	"slices"
	"strings"

	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/internal/util"
	"github.com/srlehn/fbtft/resize"
	"github.com/srlehn/fbtft/resize/bild"
	"github.com/srlehn/fbtft/resize/gift"
	"github.com/srlehn/fbtft/resize/imaging"
	"github.com/srlehn/fbtft/resize/nfnt"
	"github.com/srlehn/fbtft/resize/rez"
	"github.com/srlehn/fbtft/resize/xdraw"
	"github.com/srlehn/fbtft/rgb565"
)

// Resizer uses rez where its SIMD paths exist and x/image/draw otherwise.
type Resizer struct{}

var _ resize.Resizer = (*Resizer)(nil)

func (r *Resizer) Resize(img *rgb565.Image, size image.Point) (*rgb565.Image, error) {
	if runtime.GOARCH != `amd64` {
		return xdraw.ApproxBiLinear().Resize(img, size)
	}
	m, err := (&rez.Resizer{}).Resize(img, size)
	if err == nil {
		return m, nil
	}
	if errors.Is(err, consts.ErrInvalidArgument) {
		return nil, err
	}
	return xdraw.ApproxBiLinear().Resize(img, size)
}

var backends = map[string]func() resize.Resizer{
	`default`:    func() resize.Resizer { return &Resizer{} },
	`bilinear`:   xdraw.BiLinear,
	`approx`:     xdraw.ApproxBiLinear,
	`catmullrom`: xdraw.CatmullRom,
	`nfnt`:       func() resize.Resizer { return &nfnt.Resizer{} },
	`gift`:       func() resize.Resizer { return &gift.Resizer{} },
	`imaging`:    func() resize.Resizer { return &imaging.Resizer{} },
	`bild`:       func() resize.Resizer { return &bild.Resizer{} },
	`rez`:        func() resize.Resizer { return &rez.Resizer{} },
}

// ByName returns the named backend. The empty name and "nearest" return
// a nil Resizer, which makes the fit policies sample nearest neighbour.
func ByName(name string) (resize.Resizer, error) {
	name = strings.ToLower(strings.TrimSpace(name))
	if name == `` || name == `nearest` {
		return nil, nil
	}
	newResizer, ok := backends[name]
	if !ok {
		return nil, errors.Kind(consts.ErrInvalidArgument, `unknown resize filter "`+name+`"`, nil)
	}
	return newResizer(), nil
}

// Names lists the accepted filter names, sorted.
func Names() []string {
	names := append(util.MapsKeysSorted(backends), `nearest`)
	slices.Sort(names)
	return names
}
