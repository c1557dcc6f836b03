// Package framebuffer presents packed images on a memory-mapped display
// surface, usually a Linux framebuffer device registered by fbtft.
//
// A Surface has a single writer and does no locking.
package framebuffer

import (
	"encoding/binary"
	"fmt"
	"image"
	"image/color"
	"image/draw"
	"log/slog"
	"os"

	"github.com/srlehn/fbtft/internal"
	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/internal/logx"
	"github.com/srlehn/fbtft/rgb565"
)

// ErrDevice is matched by errors of the device and its control files.
var (
	ErrDevice          = consts.ErrDevice
	ErrInvalidArgument = consts.ErrInvalidArgument
)

// Geometry is queried once when the surface is opened.
type Geometry struct {
	Width        int
	Height       int
	BitsPerPixel int
	// Stride is the row length in pixels, at least Width.
	Stride int
	// MemLen is the size of the mapped region in bytes.
	MemLen int
}

func (g Geometry) Bounds() image.Rectangle { return image.Rect(0, 0, g.Width, g.Height) }

func (g Geometry) LogValue() slog.Value {
	return slog.GroupValue(
		slog.Int(`width`, g.Width),
		slog.Int(`height`, g.Height),
		slog.Int(`bpp`, g.BitsPerPixel),
		slog.Int(`stride`, g.Stride),
		slog.Int(`memlen`, g.MemLen),
	)
}

// Surface is an open display surface.
type Surface struct {
	mem      []byte
	file     *os.File
	closer   internal.Closer
	geometry Geometry
	fix      FixScreenInfo
	vinfo    VarScreenInfo
	path     string
	name     string
	logger   *slog.Logger
	sync     func() error
	closed   bool

	powerCtlPaths []string
}

var _ logx.LoggerProvider = (*Surface)(nil)

// NewMemory returns an off-screen w×h surface with the pixel semantics
// of a device surface. Sync is a no-op, power control needs a device name.
func NewMemory(w, h int, opts ...Option) (*Surface, error) {
	if w <= 0 || h <= 0 {
		return nil, errors.Kind(consts.ErrInvalidArgument, `non-positive surface size`, nil)
	}
	s := &Surface{
		mem:    make([]byte, 2*w*h),
		closer: internal.NewCloser(),
		geometry: Geometry{
			Width:        w,
			Height:       h,
			BitsPerPixel: consts.DefaultBitsPerPixel,
			Stride:       w,
			MemLen:       2 * w * h,
		},
		powerCtlPaths: defaultPowerCtlPaths(),
	}
	copy(s.fix.ID[:], `memory`)
	s.fix.SmemLen = uint32(2 * w * h)
	s.fix.LineLength = uint32(2 * w)
	s.vinfo = VarScreenInfo{
		XRes: uint32(w), YRes: uint32(h),
		XResVirtual: uint32(w), YResVirtual: uint32(h),
		BitsPerPixel: consts.DefaultBitsPerPixel,
		Red:          Bitfield{Offset: 11, Length: 5},
		Green:        Bitfield{Offset: 5, Length: 6},
		Blue:         Bitfield{Offset: 0, Length: 5},
	}
	if err := s.SetOptions(opts...); err != nil {
		return nil, err
	}
	return s, nil
}

// Close unmaps the region and closes the device. It is safe to call
// more than once and on a nil Surface.
func (s *Surface) Close() error {
	if s == nil || s.closed {
		return nil
	}
	s.closed = true
	err := s.closer.Close()
	s.mem = nil
	s.file = nil
	logx.Debug(`surface closed`, s, `path`, s.path)
	if err != nil {
		return errors.Kind(consts.ErrDevice, `close `+s.path, err)
	}
	return nil
}

func (s *Surface) Geometry() Geometry {
	if s == nil {
		return Geometry{}
	}
	return s.geometry
}

var _ draw.Image = (*Surface)(nil)

func (s *Surface) Bounds() image.Rectangle { return s.Geometry().Bounds() }

func (s *Surface) ColorModel() color.Model { return rgb565.Model }

func (s *Surface) At(x, y int) color.Color { return s.Pixel(x, y) }

func (s *Surface) Set(x, y int, c color.Color) { s.SetPixel(x, y, rgb565.Convert(c)) }

// Path is the device path, empty for memory surfaces.
func (s *Surface) Path() string {
	if s == nil {
		return ``
	}
	return s.path
}

func (s *Surface) Logger() *slog.Logger {
	if s == nil {
		return nil
	}
	return s.logger
}

func (s *Surface) usable() error {
	if s == nil {
		return errors.NilReceiver()
	}
	if s.closed || s.mem == nil {
		return errors.Kind(consts.ErrDevice, s.path, consts.ErrClosed)
	}
	return nil
}

func (s *Surface) offset(x, y int) int { return 2 * (y*s.geometry.Stride + x) }

func (s *Surface) inside(x, y int) bool {
	return s != nil && s.mem != nil && x >= 0 && y >= 0 && x < s.geometry.Width && y < s.geometry.Height
}

// Clear writes c to every pixel slot of the mapped region, stride padding included.
func (s *Surface) Clear(c rgb565.Color) error {
	if err := s.usable(); err != nil {
		return err
	}
	for i := 0; i+1 < len(s.mem); i += 2 {
		binary.NativeEndian.PutUint16(s.mem[i:], uint16(c))
	}
	return nil
}

// Present copies img, which must match the surface size, into the mapped region.
func (s *Surface) Present(img *rgb565.Image) error {
	if err := s.usable(); err != nil {
		return err
	}
	if img == nil {
		return errors.Kind(consts.ErrInvalidArgument, `present`, consts.ErrNilImage)
	}
	w, h := s.geometry.Width, s.geometry.Height
	if img.Width != w || img.Height != h || len(img.Pix) < w*h {
		return errors.Kind(consts.ErrInvalidArgument, fmt.Sprintf(`present %dx%d image (%d pixels) on %dx%d surface`,
			img.Width, img.Height, len(img.Pix), w, h), nil)
	}
	for y := 0; y < h; y++ {
		row := s.mem[s.offset(0, y):]
		for x, c := range img.Pix[y*w : (y+1)*w] {
			binary.NativeEndian.PutUint16(row[2*x:], uint16(c))
		}
	}
	return nil
}

// SetPixel writes c at x, y. Coordinates outside the surface are ignored.
func (s *Surface) SetPixel(x, y int, c rgb565.Color) {
	if !s.inside(x, y) {
		return
	}
	binary.NativeEndian.PutUint16(s.mem[s.offset(x, y):], uint16(c))
}

// Pixel reads the pixel at x, y, zero outside the surface.
func (s *Surface) Pixel(x, y int) rgb565.Color {
	if !s.inside(x, y) {
		return 0
	}
	return rgb565.Color(binary.NativeEndian.Uint16(s.mem[s.offset(x, y):]))
}

// Snapshot reads the visible pixels back into a new image.
func (s *Surface) Snapshot() (*rgb565.Image, error) {
	if err := s.usable(); err != nil {
		return nil, err
	}
	m := rgb565.New(s.geometry.Width, s.geometry.Height)
	for y := 0; y < m.Height; y++ {
		for x := 0; x < m.Width; x++ {
			m.Pix[y*m.Width+x] = s.Pixel(x, y)
		}
	}
	return m, nil
}

func normRect(s *Surface, x1, y1, x2, y2 int) (int, int, int, int) {
	if x1 > x2 {
		x1, x2 = x2, x1
	}
	if y1 > y2 {
		y1, y2 = y2, y1
	}
	return max(x1, 0), max(y1, 0), min(x2, s.geometry.Width-1), min(y2, s.geometry.Height-1)
}

// FillRect fills the rectangle with the inclusive corners x1, y1 and x2, y2.
func (s *Surface) FillRect(x1, y1, x2, y2 int, c rgb565.Color) error {
	if err := s.usable(); err != nil {
		return err
	}
	x1, y1, x2, y2 = normRect(s, x1, y1, x2, y2)
	for y := y1; y <= y2; y++ {
		for x := x1; x <= x2; x++ {
			s.SetPixel(x, y, c)
		}
	}
	return nil
}

// DrawRect draws the outline of the rectangle with the inclusive corners
// x1, y1 and x2, y2 after clamping it to the surface.
func (s *Surface) DrawRect(x1, y1, x2, y2 int, c rgb565.Color) error {
	if err := s.usable(); err != nil {
		return err
	}
	x1, y1, x2, y2 = normRect(s, x1, y1, x2, y2)
	if x1 > x2 || y1 > y2 {
		return nil
	}
	for x := x1; x <= x2; x++ {
		s.SetPixel(x, y1, c)
		s.SetPixel(x, y2, c)
	}
	for y := y1; y <= y2; y++ {
		s.SetPixel(x1, y, c)
		s.SetPixel(x2, y, c)
	}
	return nil
}

// Sync forces the mapped contents to the device.
func (s *Surface) Sync() error {
	if err := s.usable(); err != nil {
		return err
	}
	if s.sync == nil {
		return nil
	}
	if err := s.sync(); err != nil {
		return errors.Kind(consts.ErrDevice, `sync `+s.path, err)
	}
	return nil
}
