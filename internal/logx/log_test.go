package logx_test

import (
	"bytes"
	"log/slog"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/srlehn/fbtft/internal/errors"
	"github.com/srlehn/fbtft/internal/logx"
)

func bufLogger(lvl slog.Level) (*bytes.Buffer, logx.LoggerProvider) {
	var buf bytes.Buffer
	logger := slog.New(slog.NewTextHandler(&buf, &slog.HandlerOptions{Level: lvl}))
	return &buf, logx.Prov(logger)
}

func TestLevels(t *testing.T) {
	buf, prov := bufLogger(slog.LevelInfo)
	logx.Debug(`hidden`, prov)
	logx.Info(`shown`, prov, `key`, 7)
	assert.NotContains(t, buf.String(), `hidden`)
	assert.Contains(t, buf.String(), `msg=shown key=7`)

	// nil providers and loggers are silent
	logx.Error(`nothing`, nil)
	logx.Warn(`nothing`, logx.Prov(nil))
}

func TestIsErr(t *testing.T) {
	buf, prov := bufLogger(slog.LevelDebug)
	assert.False(t, logx.IsErr(nil, prov, slog.LevelError))
	assert.True(t, logx.IsErr(errors.Join(errors.New(`first`), errors.New(`second`)), prov, slog.LevelWarn))
	out := buf.String()
	assert.Contains(t, out, `level=WARN msg=first`)
	assert.Contains(t, out, `level=WARN msg=second`)
	assert.True(t, logx.IsErr(errors.New(`x`), nil, slog.LevelWarn))
}

func TestTimeIt(t *testing.T) {
	buf, prov := bufLogger(slog.LevelDebug)
	want := errors.New(`failed`)
	err := logx.TimeIt(func() error { return want }, `decode`, prov, `path`, `a.bmp`)
	require.ErrorIs(t, err, want)
	assert.Contains(t, buf.String(), `msg=decode duration=`)
	assert.Contains(t, buf.String(), `path=a.bmp`)

	assert.Error(t, logx.TimeIt(nil, ``, prov))
}
