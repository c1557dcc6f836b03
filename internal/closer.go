package internal

import (
	errorsGo "github.com/go-errors/errors"

	"github.com/srlehn/fbtft/internal/errors"
)

// Closer releases resources in reverse order of registration.
// Close may be called more than once, functions run only once.
type Closer interface {
	Close() error
	OnClose(onClose func() error)
}

var _ Closer = (*lifoCloser)(nil)

type lifoCloser struct {
	onCloseFuncs []func() error
}

func NewCloser() Closer { return &lifoCloser{} }

func (c *lifoCloser) Close() error {
	if c == nil {
		return nil
	}
	var errs []error
	for i := len(c.onCloseFuncs) - 1; i > -1; i-- {
		if onCloseFunc := c.onCloseFuncs[i]; onCloseFunc != nil {
			if err := onCloseFunc(); err != nil {
				errs = append(errs, err)
			}
		}
	}
	c.onCloseFuncs = nil
	if len(errs) == 0 {
		return nil
	}
	return errorsGo.New(errors.Join(errs...))
}

func (c *lifoCloser) OnClose(onClose func() error) {
	if c == nil || onClose == nil {
		return
	}
	c.onCloseFuncs = append(c.onCloseFuncs, onClose)
}
