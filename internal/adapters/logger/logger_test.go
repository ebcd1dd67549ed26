package logger_test

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/pantry/internal/adapters/logger"
	"go.trai.ch/zerr"
)

func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	l, ok := logger.New().(*logger.Logger)
	require.True(t, ok)
	var buf bytes.Buffer
	l.SetOutput(&buf)
	return l, &buf
}

func TestLogger_Info(t *testing.T) {
	l, buf := newTestLogger(t)
	l.Info("cache warmed")
	assert.Contains(t, buf.String(), "cache warmed")
}

func TestLogger_ErrorChain(t *testing.T) {
	l, buf := newTestLogger(t)

	base := zerr.New("connection refused")
	wrapped := zerr.Wrap(zerr.Wrap(base, "subscription failed"), "list load failed")
	l.Error(wrapped)

	out := buf.String()
	assert.Contains(t, out, "Error: list load failed")
	assert.Contains(t, out, "Caused by:")
	assert.Contains(t, out, "→ subscription failed")
	assert.Contains(t, out, "→ connection refused")
}

func TestLogger_ErrorNil(t *testing.T) {
	l, buf := newTestLogger(t)
	l.Error(nil)
	assert.Empty(t, buf.String())
}

func TestLogger_JSONMode(t *testing.T) {
	l, buf := newTestLogger(t)
	l.SetJSON(true)

	l.Error(zerr.New("boom"))

	out := buf.String()
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.Contains(t, out, "boom")
}
