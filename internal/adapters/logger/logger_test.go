package logger_test

import (
	"bytes"
	"errors"
	"fmt"
	"os"
	"testing"

	"github.com/anvil-build/anvil/internal/adapters/logger"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"go.trai.ch/zerr"
)

// newTestLogger creates a logger with an injected buffer. NO_COLOR keeps the
// output free of ANSI escape codes so goldens stay deterministic.
func newTestLogger(t *testing.T) (*logger.Logger, *bytes.Buffer) {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	lg := logger.New().(*logger.Logger)
	lg.SetOutput(buf)
	return lg, buf
}

func TestLogger_Info(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Info("resolving toolchain")

	g := goldie.New(t)
	g.Assert(t, "info_basic", buf.Bytes())
}

func TestLogger_Warn(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Warn("config file not found, using defaults")

	g := goldie.New(t)
	g.Assert(t, "warn_basic", buf.Bytes())
}

func TestLogger_Error_Simple(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(os.ErrPermission)

	g := goldie.New(t)
	g.Assert(t, "error_simple", buf.Bytes())
}

func TestLogger_Error_StdlibChain(t *testing.T) {
	// fmt.Errorf chains render on one line; only zerr errors expose a
	// message separate from their cause.
	inner := errors.New("connection refused")
	outer := fmt.Errorf("discovery command failed: %w", inner)

	lg, buf := newTestLogger(t)
	lg.Error(outer)

	g := goldie.New(t)
	g.Assert(t, "error_chain_stdlib", buf.Bytes())
}

func TestLogger_Error_ZerrChain(t *testing.T) {
	err := zerr.Wrap(
		zerr.Wrap(
			errors.New("no such file or directory"),
			"config read failed",
		),
		"resolution aborted",
	)

	lg, buf := newTestLogger(t)
	lg.Error(err)

	g := goldie.New(t)
	g.Assert(t, "error_chain_zerr", buf.Bytes())
}

func TestLogger_Error_WithMetadata(t *testing.T) {
	err := zerr.With(zerr.New("unknown toolchain key"), "key", "freebsd/gcc")

	lg, buf := newTestLogger(t)
	lg.Error(err)

	out := buf.String()
	assert.Contains(t, out, "unknown toolchain key")
	assert.Contains(t, out, "Error:")
}

func TestLogger_Error_Nil(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.Error(nil)

	assert.Empty(t, buf.String())
}

func TestLogger_SetJSON(t *testing.T) {
	lg, buf := newTestLogger(t)
	lg.SetJSON(true)
	lg.Error(errors.New("test error message"))

	out := buf.String()
	assert.Contains(t, out, `"error"`)
	assert.Contains(t, out, `"level":"ERROR"`)
	assert.NotContains(t, out, "✗")

	buf.Reset()
	lg.SetJSON(false)
	lg.Error(errors.New("back to pretty"))
	assert.Contains(t, buf.String(), "✗")
}

func TestLogger_DebugGatedByTrace(t *testing.T) {
	t.Run("disabled by default", func(t *testing.T) {
		t.Setenv("ANVIL_TRACE", "")
		lg, buf := newTestLogger(t)
		lg.Debug("hidden")
		assert.Empty(t, buf.String())
	})

	t.Run("enabled with ANVIL_TRACE", func(t *testing.T) {
		t.Setenv("ANVIL_TRACE", "1")
		lg, buf := newTestLogger(t)
		lg.Debug("visible")
		assert.Contains(t, buf.String(), "visible")
	})
}

func TestLogger_SetOutput_NilDefaultsToStderr(t *testing.T) {
	require.NotPanics(t, func() {
		lg := logger.New().(*logger.Logger)
		lg.SetOutput(nil)
	})
}
