package bmp

const (
	fileHeaderLen = 14
	infoHeaderLen = 40
	headerLen     = fileHeaderLen + infoHeaderLen

	magic = 0x4D42 // "BM", little endian

	compressionRGB = 0

	// sanity limit per axis, keeps width*height well inside int range
	maxDimension = 1<<16 - 1
)

// FileHeader contains the type, size and layout of a bitmap file.
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapfileheader
type FileHeader struct {
	Type      uint16 // must be 0x4d42 ("BM")
	Size      uint32 // size of the file in bytes
	Reserved1 uint16
	Reserved2 uint16
	OffBits   uint32 // offset of the pixel array
}

// InfoHeader contains the dimensions and colour format of the bitmap.
// https://learn.microsoft.com/en-us/windows/win32/api/wingdi/ns-wingdi-bitmapinfoheader
type InfoHeader struct {
	Size            uint32 // bytes required by the structure
	Width           int32
	Height          int32 // negative for top-down rows
	Planes          uint16
	BitCount        uint16 // bits per pixel
	Compression     uint32
	SizeImage       uint32
	XPixelsPerM     int32
	YPixelsPerM     int32
	ColorsUsed      uint32
	ColorsImportant uint32
}

// Header is the combined file and info header.
type Header struct {
	File FileHeader
	Info InfoHeader
}

// Width in pixels.
func (h Header) Width() int { return int(h.Info.Width) }

// Height in pixels, the row order sign removed.
func (h Header) Height() int {
	if h.Info.Height < 0 {
		return -int(h.Info.Height)
	}
	return int(h.Info.Height)
}

// TopDown reports whether rows are stored top to bottom.
func (h Header) TopDown() bool { return h.Info.Height < 0 }

// BytesPerPixel of the source rows.
func (h Header) BytesPerPixel() int { return int(h.Info.BitCount) / 8 }

// Stride is the row length in bytes including padding to 4 bytes.
func (h Header) Stride() int {
	return ((h.Width()*h.BytesPerPixel() + 3) / 4) * 4
}
