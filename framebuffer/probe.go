package framebuffer

import (
	"os"

	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
)

// Exists reports whether path names an existing file.
func Exists(path string) bool {
	if len(path) == 0 {
		return false
	}
	_, err := os.Stat(path)
	return err == nil
}

// Candidates returns the device paths Probe tries without arguments:
// $FRAMEBUFFER if set, then /dev/fb1 and /dev/fb0.
func Candidates() []string {
	var paths []string
	if env := os.Getenv(consts.EnvFramebuffer); len(env) > 0 {
		paths = append(paths, env)
	}
	return append(paths, consts.DefaultDevices...)
}

// Probe opens the first of paths that opens as a surface.
// Without paths the Candidates are tried.
func Probe(paths []string, opts ...Option) (*Surface, error) {
	if len(paths) == 0 {
		paths = Candidates()
	}
	var errs []error
	for _, path := range paths {
		if !Exists(path) {
			errs = append(errs, errors.New(path+`: no such device`))
			continue
		}
		s, err := Open(path, opts...)
		if err == nil {
			return s, nil
		}
		errs = append(errs, err)
	}
	return nil, errors.Kind(consts.ErrDevice, `no usable framebuffer`, errors.Join(errs...))
}
