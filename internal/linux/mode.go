// Package linux queries the virtual console the process runs on.
package linux

import (
	"fmt"
)

// KDMode is the display mode of a virtual console (KDGETMODE).
type KDMode int

const (
	KDText     KDMode = 0x0
	KDGraphics KDMode = 0x1
	KDText0    KDMode = 0x2
	KDText1    KDMode = 0x3
)

func (k KDMode) String() string {
	switch k {
	case KDText:
		return `KD_TEXT`
	case KDGraphics:
		return `KD_GRAPHICS`
	case KDText0:
		return `KD_TEXT0`
	case KDText1:
		return `KD_TEXT1`
	}
	if k >= 0 {
		return fmt.Sprintf(`0x%x`, int(k))
	}
	return fmt.Sprintf(`-0x%x`, -int(k))
}

// TextMode reports whether the console renders text, which the
// kernel draws onto the console framebuffer.
func (k KDMode) TextMode() bool { return k != KDGraphics }
