//go:build linux

package framebuffer

import (
	"fmt"
	"os"
	"path/filepath"
	"unsafe"

	"golang.org/x/sys/unix"

	"github.com/srlehn/fbtft/internal"
	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/internal/logx"
)

// <linux/fb.h>
const (
	ioctlGetVScreenInfo = 0x4600
	ioctlGetFScreenInfo = 0x4602
)

func ioctl(fd uintptr, req uintptr, arg unsafe.Pointer) error {
	if _, _, errno := unix.Syscall(unix.SYS_IOCTL, fd, req, uintptr(arg)); errno != 0 {
		return os.NewSyscallError(`ioctl`, errno)
	}
	return nil
}

// Open maps the framebuffer device at path.
func Open(path string, opts ...Option) (_ *Surface, err error) {
	s := &Surface{
		path:          path,
		name:          filepath.Base(path),
		closer:        internal.NewCloser(),
		powerCtlPaths: defaultPowerCtlPaths(),
	}
	if err := s.SetOptions(opts...); err != nil {
		return nil, err
	}
	defer func() {
		if err != nil {
			_ = s.closer.Close()
		}
	}()
	devErr := func(msg string, cause error) error {
		return errors.Kind(consts.ErrDevice, path+`: `+msg, cause)
	}

	f, err := os.OpenFile(path, os.O_RDWR, 0)
	if err != nil {
		return nil, devErr(`open`, err)
	}
	s.file = f
	s.closer.OnClose(f.Close)

	fd := f.Fd()
	if err := ioctl(fd, ioctlGetFScreenInfo, unsafe.Pointer(&s.fix)); err != nil {
		return nil, devErr(`FBIOGET_FSCREENINFO`, err)
	}
	if err := ioctl(fd, ioctlGetVScreenInfo, unsafe.Pointer(&s.vinfo)); err != nil {
		return nil, devErr(`FBIOGET_VSCREENINFO`, err)
	}

	bpp := int(s.vinfo.BitsPerPixel)
	if bpp != consts.DefaultBitsPerPixel {
		return nil, devErr(fmt.Sprintf(`%d bits per pixel unsupported`, bpp), nil)
	}
	g := Geometry{
		Width:        int(s.vinfo.XRes),
		Height:       int(s.vinfo.YRes),
		BitsPerPixel: bpp,
		Stride:       int(s.fix.LineLength) / 2,
		MemLen:       int(s.fix.SmemLen),
	}
	if g.Stride == 0 {
		g.Stride = g.Width
	}
	if g.Width <= 0 || g.Height <= 0 || g.Stride < g.Width {
		return nil, devErr(fmt.Sprintf(`implausible geometry %dx%d stride %d`, g.Width, g.Height, g.Stride), nil)
	}
	if need := 2 * (g.Stride*(g.Height-1) + g.Width); g.MemLen < need {
		return nil, devErr(fmt.Sprintf(`mapping of %d bytes shorter than %d`, g.MemLen, need), nil)
	}
	s.geometry = g

	mem, err := unix.Mmap(int(fd), 0, g.MemLen, unix.PROT_READ|unix.PROT_WRITE, unix.MAP_SHARED)
	if err != nil {
		return nil, devErr(`mmap`, err)
	}
	s.mem = mem
	s.closer.OnClose(func() error { return unix.Munmap(mem) })
	s.sync = func() error { return unix.Fsync(int(fd)) }

	logx.Debug(`framebuffer opened`, s, `info`, s.Info())
	return s, nil
}
