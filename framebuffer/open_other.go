//go:build !linux

package framebuffer

import (
	"runtime"

	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
)

// Open is only implemented on Linux.
func Open(path string, opts ...Option) (*Surface, error) {
	return nil, errors.Kind(consts.ErrDevice, path+`: framebuffer devices unsupported on `+runtime.GOOS, errors.ErrUnsupported)
}
