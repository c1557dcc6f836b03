package framebuffer

import (
	"bytes"
	"log/slog"
)

// FixScreenInfo mirrors struct fb_fix_screeninfo of <linux/fb.h>.
// The unsigned long fields are uintptr to keep the kernel layout.
type FixScreenInfo struct {
	ID           [16]byte
	SmemStart    uintptr
	SmemLen      uint32
	Type         uint32
	TypeAux      uint32
	Visual       uint32
	XPanStep     uint16
	YPanStep     uint16
	YWrapStep    uint16
	LineLength   uint32
	MMIOStart    uintptr
	MMIOLen      uint32
	Accel        uint32
	Capabilities uint16
	Reserved     [2]uint16
}

// Name is the driver name, e.g. "fb_ili9341".
func (f FixScreenInfo) Name() string {
	id := f.ID[:]
	if i := bytes.IndexByte(id, 0); i >= 0 {
		id = id[:i]
	}
	return string(id)
}

type Bitfield struct {
	Offset   uint32
	Length   uint32
	MsbRight uint32
}

// VarScreenInfo mirrors struct fb_var_screeninfo of <linux/fb.h>.
type VarScreenInfo struct {
	XRes         uint32
	YRes         uint32
	XResVirtual  uint32
	YResVirtual  uint32
	XOffset      uint32
	YOffset      uint32
	BitsPerPixel uint32
	Grayscale    uint32
	Red          Bitfield
	Green        Bitfield
	Blue         Bitfield
	Transp       Bitfield
	NonStd       uint32
	Activate     uint32
	Height       uint32 // mm
	Width        uint32 // mm
	AccelFlags   uint32
	PixClock     uint32
	LeftMargin   uint32
	RightMargin  uint32
	UpperMargin  uint32
	LowerMargin  uint32
	HSyncLen     uint32
	VSyncLen     uint32
	Sync         uint32
	VMode        uint32
	Rotate       uint32
	Colorspace   uint32
	Reserved     [4]uint32
}

// Info is what the device reported when the surface was opened.
type Info struct {
	Path     string
	Geometry Geometry
	Fix      FixScreenInfo
	Var      VarScreenInfo
}

// Info returns the screen information queried on open. Memory surfaces
// report values describing their buffer.
func (s *Surface) Info() Info {
	if s == nil {
		return Info{}
	}
	return Info{Path: s.path, Geometry: s.geometry, Fix: s.fix, Var: s.vinfo}
}

var _ slog.LogValuer = Info{}

func (i Info) LogValue() slog.Value {
	bf := func(key string, b Bitfield) slog.Attr {
		return slog.Group(key, slog.Any(`offset`, b.Offset), slog.Any(`length`, b.Length))
	}
	return slog.GroupValue(
		slog.String(`path`, i.Path),
		slog.String(`id`, i.Fix.Name()),
		slog.Any(`geometry`, i.Geometry),
		slog.Any(`line_length`, i.Fix.LineLength),
		slog.Any(`smem_len`, i.Fix.SmemLen),
		slog.Any(`visual`, i.Fix.Visual),
		slog.Any(`xres_virtual`, i.Var.XResVirtual),
		slog.Any(`yres_virtual`, i.Var.YResVirtual),
		slog.Any(`rotate`, i.Var.Rotate),
		bf(`red`, i.Var.Red),
		bf(`green`, i.Var.Green),
		bf(`blue`, i.Var.Blue),
	)
}
