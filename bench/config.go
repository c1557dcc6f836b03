package bench

import (
	"log/slog"
	"time"

	"github.com/srlehn/fbtft/fit"
	"github.com/srlehn/fbtft/internal/consts"
	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/resize"
	"github.com/srlehn/fbtft/transform"
)

const (
	DefaultDuration        = 30 * time.Second
	DefaultOverlayInterval = 100
	DefaultSplash          = 2 * time.Second
	DefaultResultsHold     = 5 * time.Second
)

// Config of a benchmark run, built with NewConfig.
type Config struct {
	Images          []string
	Fitter          fit.Fitter
	Rotation        transform.Rotation
	Mirror          transform.Mirror
	Duration        time.Duration
	MaxFrames       uint64
	OverlayInterval uint64
	Splash          time.Duration
	ResultsHold     time.Duration
	logger          *slog.Logger
}

func NewConfig(images []string, opts ...Option) (*Config, error) {
	c := &Config{
		Images:          images,
		Duration:        DefaultDuration,
		OverlayInterval: DefaultOverlayInterval,
		Splash:          DefaultSplash,
		ResultsHold:     DefaultResultsHold,
	}
	if err := c.SetOptions(opts...); err != nil {
		return nil, err
	}
	return c, nil
}

func (c *Config) Logger() *slog.Logger {
	if c == nil {
		return nil
	}
	return c.logger
}

type Option interface {
	ApplyOption(c *Config) error
}

var _ Option = (OptFunc)(nil)

type OptFunc func(*Config) error

func (o OptFunc) ApplyOption(c *Config) error { return o(c) }

var _ Option = (Options)(nil)

type Options []Option

func (o Options) ApplyOption(c *Config) error { return c.SetOptions([]Option(o)...) }

func (c *Config) SetOptions(opts ...Option) error {
	if c == nil {
		return errors.NilReceiver()
	}
	for _, opt := range opts {
		if opt == nil {
			continue
		}
		if err := opt.ApplyOption(c); err != nil {
			return errors.New(err)
		}
	}
	return nil
}

func SetFitMode(mode fit.Mode) Option {
	return OptFunc(func(c *Config) error {
		c.Fitter.Mode = mode
		return nil
	})
}

// SetResizer replaces nearest neighbour sampling, nil restores it.
func SetResizer(r resize.Resizer) Option {
	return OptFunc(func(c *Config) error {
		c.Fitter.Resizer = r
		return nil
	})
}

func SetTransform(rotation transform.Rotation, mirror transform.Mirror) Option {
	return OptFunc(func(c *Config) error {
		c.Rotation = rotation
		c.Mirror = mirror
		return nil
	})
}

// SetDuration limits the run time, 0 runs until cancelled.
func SetDuration(d time.Duration) Option {
	return OptFunc(func(c *Config) error {
		if d < 0 {
			return errors.Kind(consts.ErrInvalidArgument, `negative duration`, nil)
		}
		c.Duration = d
		return nil
	})
}

// SetMaxFrames limits the number of frames, 0 is unlimited.
func SetMaxFrames(n uint64) Option {
	return OptFunc(func(c *Config) error {
		c.MaxFrames = n
		return nil
	})
}

// SetOverlayInterval draws the statistics every n frames, 0 never.
func SetOverlayInterval(n uint64) Option {
	return OptFunc(func(c *Config) error {
		c.OverlayInterval = n
		return nil
	})
}

// SetHold sets how long the splash and the results frames stay up.
func SetHold(splash, results time.Duration) Option {
	return OptFunc(func(c *Config) error {
		c.Splash = splash
		c.ResultsHold = results
		return nil
	})
}

func SetLogger(logger *slog.Logger) Option {
	return OptFunc(func(c *Config) error {
		c.logger = logger
		return nil
	})
}
