package rgb565

import (
	"image"
	"image/color"
	"image/draw"
)

// Image is a packed image, rows top to bottom, len(Pix) == Width*Height.
type Image struct {
	Pix    []Color
	Width  int
	Height int
}

// New allocates a black w×h image. Non-positive sizes give an empty image.
func New(w, h int) *Image {
	if w <= 0 || h <= 0 {
		return &Image{}
	}
	return &Image{
		Pix:    make([]Color, w*h),
		Width:  w,
		Height: h,
	}
}

// FromImage packs img. The result starts at the origin.
func FromImage(img image.Image) *Image {
	if img == nil {
		return nil
	}
	if p, ok := img.(*Image); ok {
		return p.Clone()
	}
	b := img.Bounds()
	m := New(b.Dx(), b.Dy())
	switch src := img.(type) {
	case *image.RGBA:
		for y := 0; y < m.Height; y++ {
			off := src.PixOffset(b.Min.X, b.Min.Y+y)
			row := src.Pix[off : off+4*m.Width]
			for x := 0; x < m.Width; x++ {
				m.Pix[y*m.Width+x] = Pack(row[4*x], row[4*x+1], row[4*x+2])
			}
		}
	default:
		for y := 0; y < m.Height; y++ {
			for x := 0; x < m.Width; x++ {
				m.Pix[y*m.Width+x] = Convert(img.At(b.Min.X+x, b.Min.Y+y))
			}
		}
	}
	return m
}

// Valid reports whether the image has positive dimensions and enough pixels.
func (p *Image) Valid() bool {
	return p != nil && p.Width > 0 && p.Height > 0 && len(p.Pix) >= p.Width*p.Height
}

var _ draw.Image = (*Image)(nil)

func (p *Image) ColorModel() color.Model { return Model }

func (p *Image) Bounds() image.Rectangle {
	if p == nil {
		return image.Rectangle{}
	}
	return image.Rect(0, 0, p.Width, p.Height)
}

func (p *Image) At(x, y int) color.Color { return p.PackedAt(x, y) }

// PackedAt returns the pixel at x, y or Black outside the image.
func (p *Image) PackedAt(x, y int) Color {
	if p == nil || x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return Black
	}
	return p.Pix[y*p.Width+x]
}

func (p *Image) Set(x, y int, c color.Color) { p.SetPacked(x, y, Convert(c)) }

// SetPacked sets the pixel at x, y. Writes outside the image are dropped.
func (p *Image) SetPacked(x, y int, c Color) {
	if p == nil || x < 0 || y < 0 || x >= p.Width || y >= p.Height {
		return
	}
	p.Pix[y*p.Width+x] = c
}

func (p *Image) Opaque() bool { return true }

// Fill sets every pixel to c.
func (p *Image) Fill(c Color) {
	if p == nil {
		return
	}
	for i := range p.Pix {
		p.Pix[i] = c
	}
}

// Clone returns a deep copy.
func (p *Image) Clone() *Image {
	if p == nil {
		return nil
	}
	c := &Image{Width: p.Width, Height: p.Height, Pix: make([]Color, len(p.Pix))}
	copy(c.Pix, p.Pix)
	return c
}

// DrawImage copies src unscaled with its top-left corner at pt.
// Parts falling outside p are clipped.
func (p *Image) DrawImage(src *Image, pt image.Point) {
	if p == nil || src == nil {
		return
	}
	r := image.Rect(pt.X, pt.Y, pt.X+src.Width, pt.Y+src.Height).Intersect(p.Bounds())
	if r.Empty() {
		return
	}
	for y := r.Min.Y; y < r.Max.Y; y++ {
		sy := y - pt.Y
		srcRow := src.Pix[sy*src.Width+(r.Min.X-pt.X) : sy*src.Width+(r.Max.X-pt.X)]
		copy(p.Pix[y*p.Width+r.Min.X:y*p.Width+r.Max.X], srcRow)
	}
}

// RGBA expands p for use with libraries that want 8-bit channels.
func (p *Image) RGBA() *image.RGBA {
	if p == nil {
		return nil
	}
	m := image.NewRGBA(p.Bounds())
	for i, c := range p.Pix[:p.Width*p.Height] {
		r, g, b := Unpack(c)
		m.Pix[4*i] = r
		m.Pix[4*i+1] = g
		m.Pix[4*i+2] = b
		m.Pix[4*i+3] = 0xff
	}
	return m
}
