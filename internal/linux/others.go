//go:build !linux

package linux

import (
	"github.com/srlehn/fbtft/internal/errors"
)

func KDGetMode(fd uintptr) (mode KDMode, isLinuxConsole bool, _ error) {
	return -1, false, errors.New(errors.ErrUnsupported)
}
