package consts

import (
	"errors"
)

// error kinds; match with errors.Is
var (
	ErrFormat          = errors.New(`bitmap format`)
	ErrIO              = errors.New(`bitmap read`)
	ErrInvalidArgument = errors.New(`invalid argument`)
	ErrDevice          = errors.New(`display device`)
)

var (
	ErrNilReceiver = errors.New(`nil receiver`)
	ErrNilParam    = errors.New(`nil parameter`)
	ErrNilImage    = errors.New(`nil image`)
	ErrClosed      = errors.New(`surface closed`)
)

const (
	LibraryName = `fbtft`

	// only used as probe targets and for documentation, geometry is always queried
	DefaultWidth        = 320
	DefaultHeight       = 240
	DefaultBitsPerPixel = 16

	EnvFramebuffer = `FRAMEBUFFER`
)

// DefaultDevices are probed in order when no device path is given.
// fbtft panels usually register behind the primary console framebuffer.
var DefaultDevices = []string{`/dev/fb1`, `/dev/fb0`}
