package framebuffer

import (
	"log/slog"

	"github.com/srlehn/fbtft/internal/errors"
)

type Option interface {
	ApplyOption(s *Surface) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Surface) error

func (o OptFunc) ApplyOption(s *Surface) error { return o(s) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(s *Surface) error { return s.SetOptions([]Option(o)...) }

func (s *Surface) SetOptions(opts ...Option) error {
	if s == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(s); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(s *Surface) error {
		s.logger = logger
		return nil
	})
}

// SetPowerControlPaths replaces the control file templates tried by
// SetPowerMode. A %s verb is replaced with the device name.
func SetPowerControlPaths(templates ...string) Option {
	return OptFunc(func(s *Surface) error {
		s.powerCtlPaths = append([]string(nil), templates...)
		return nil
	})
}

// SetDeviceName sets the name used in the power control paths,
// by default the base name of the device path.
func SetDeviceName(name string) Option {
	return OptFunc(func(s *Surface) error {
		s.name = name
		return nil
	})
}
