//go:build linux

package linux

import (
	"golang.org/x/sys/unix"

	"github.com/srlehn/fbtft/internal/errors"
)

// KDGetMode returns the mode of the console behind fd.
// isLinuxConsole is false without error if fd is no virtual console.
func KDGetMode(fd uintptr) (mode KDMode, isLinuxConsole bool, _ error) {
	const KDGETMODE uintptr = 0x4b3b
	m, err := unix.IoctlGetInt(int(fd), uint(KDGETMODE))
	mode = KDMode(m)
	if err == nil {
		return mode, true, nil
	}
	if errors.Is(err, unix.ENOTTY) || errors.Is(err, unix.EINVAL) {
		return -1, false, nil
	}
	return -1, false, errors.New(err)
}
