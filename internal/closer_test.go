package internal_test

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"

	"github.com/srlehn/fbtft/internal"
)

func TestCloserLIFO(t *testing.T) {
	var order []string
	cl := internal.NewCloser()
	cl.OnClose(func() error { order = append(order, `close`); return nil })
	cl.OnClose(func() error { order = append(order, `munmap`); return nil })
	assert.NoError(t, cl.Close())
	assert.Equal(t, []string{`munmap`, `close`}, order)

	// second close runs nothing
	assert.NoError(t, cl.Close())
	assert.Len(t, order, 2)
}

func TestCloserCollectsErrors(t *testing.T) {
	errA := errors.New(`a`)
	errB := errors.New(`b`)
	cl := internal.NewCloser()
	cl.OnClose(func() error { return errA })
	cl.OnClose(func() error { return errB })
	err := cl.Close()
	assert.ErrorIs(t, err, errA)
	assert.ErrorIs(t, err, errB)
}
