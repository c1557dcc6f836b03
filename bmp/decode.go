// Package bmp decodes uncompressed 24 and 32 bit bitmaps into packed
// rgb565 images.
package bmp

import (
	"bufio"
	"bytes"
	"encoding/binary"
	"io"
	"os"
	"slices"
	"strconv"

	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/rgb565"
	"github.com/srlehn/fbtft/transform"
)

var (
	// ErrFormat is matched by errors for malformed or unsupported content.
	ErrFormat = consts.ErrFormat
	// ErrIO is matched by errors for truncated or unreadable input.
	ErrIO = consts.ErrIO
)

// DecodeFile decodes the bitmap stored at path.
func DecodeFile(path string) (*rgb565.Image, error) {
	f, err := os.Open(path)
	if err != nil {
		return nil, errors.Kind(consts.ErrIO, `open`, err)
	}
	defer f.Close()
	size := int64(-1)
	if fi, err := f.Stat(); err == nil && fi.Mode().IsRegular() {
		size = fi.Size()
	}
	return decode(bufio.NewReader(f), size)
}

// DecodeBytes decodes a bitmap held in memory.
func DecodeBytes(b []byte) (*rgb565.Image, error) {
	return decode(bytes.NewReader(b), int64(len(b)))
}

// DecodeConfig reads and validates the headers only.
func DecodeConfig(r io.Reader) (Header, error) {
	if r == nil {
		return Header{}, errors.Kind(consts.ErrIO, `nil reader`, nil)
	}
	return readHeader(r)
}

// Decode reads a bitmap from r. r is consumed up to the end of the last row.
func Decode(r io.Reader) (*rgb565.Image, error) {
	return decode(r, -1)
}

// decode reads a bitmap of size bytes from r. A negative size is unknown.
// The pixel buffer grows with the rows actually read.
func decode(r io.Reader, size int64) (*rgb565.Image, error) {
	if r == nil {
		return nil, errors.Kind(consts.ErrIO, `nil reader`, nil)
	}
	h, err := readHeader(r)
	if err != nil {
		return nil, err
	}
	width, height := h.Width(), h.Height()
	if need := int64(h.File.OffBits) + int64(h.Stride())*int64(height); size >= 0 && need > size {
		return nil, errors.Kind(consts.ErrIO, `pixel array of `+strconv.Itoa(width)+`x`+strconv.Itoa(height)+
			` needs `+strconv.FormatInt(need, 10)+` bytes, input has `+strconv.FormatInt(size, 10), io.ErrUnexpectedEOF)
	}
	// skip anything between the info header and the pixel array
	// (larger info headers, bit masks, colour tables)
	if skip := int64(h.File.OffBits) - headerLen; skip > 0 {
		if _, err := io.CopyN(io.Discard, r, skip); err != nil {
			return nil, errors.Kind(consts.ErrIO, `seek to pixel data`, truncated(err))
		}
	}

	bpp := h.BytesPerPixel()
	row := make([]byte, h.Stride())
	var pix []rgb565.Color
	for y := 0; y < height; y++ {
		if _, err := io.ReadFull(r, row); err != nil {
			return nil, errors.Kind(consts.ErrIO, `pixel row `+strconv.Itoa(y), truncated(err))
		}
		n := len(pix)
		pix = slices.Grow(pix, width)[:n+width]
		out := pix[n:]
		for x := range out {
			px := row[x*bpp:]
			// B, G, R(, A)
			out[x] = rgb565.Pack(px[2], px[1], px[0])
		}
	}
	img := &rgb565.Image{Pix: pix, Width: width, Height: height}
	if !h.TopDown() {
		// rows were stored bottom row first
		if err := transform.MirrorVertical(img); err != nil {
			return nil, err
		}
	}
	return img, nil
}

func readHeader(r io.Reader) (Header, error) {
	var h Header
	if err := binary.Read(r, binary.LittleEndian, &h.File); err != nil {
		return h, errors.Kind(consts.ErrIO, `file header`, truncated(err))
	}
	if h.File.Type != magic {
		return h, errors.Kind(consts.ErrFormat, `not a bitmap: signature 0x`+strconv.FormatUint(uint64(h.File.Type), 16), nil)
	}
	if err := binary.Read(r, binary.LittleEndian, &h.Info); err != nil {
		return h, errors.Kind(consts.ErrIO, `info header`, truncated(err))
	}
	if err := validate(h); err != nil {
		return h, err
	}
	return h, nil
}

func validate(h Header) error {
	if h.Info.BitCount != 24 && h.Info.BitCount != 32 {
		return errors.Kind(consts.ErrFormat, `unsupported bit depth `+strconv.Itoa(int(h.Info.BitCount)), nil)
	}
	if h.Info.Compression != compressionRGB {
		return errors.Kind(consts.ErrFormat, `unsupported compression `+strconv.Itoa(int(h.Info.Compression)), nil)
	}
	if h.Info.Width <= 0 || h.Info.Height == 0 {
		return errors.Kind(consts.ErrFormat, `invalid dimensions `+
			strconv.Itoa(int(h.Info.Width))+`x`+strconv.Itoa(int(h.Info.Height)), nil)
	}
	if h.Width() > maxDimension || h.Height() > maxDimension {
		return errors.Kind(consts.ErrFormat, `dimensions too large `+
			strconv.Itoa(h.Width())+`x`+strconv.Itoa(h.Height()), nil)
	}
	if h.File.OffBits < headerLen {
		return errors.Kind(consts.ErrFormat, `pixel data offset `+strconv.Itoa(int(h.File.OffBits))+` inside header`, nil)
	}
	return nil
}

// truncated maps a short read at any position to io.ErrUnexpectedEOF.
func truncated(err error) error {
	if err == io.EOF {
		return io.ErrUnexpectedEOF
	}
	return err
}
