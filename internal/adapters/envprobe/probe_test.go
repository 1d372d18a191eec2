package envprobe_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anvil-build/anvil/internal/adapters/envprobe"
	"github.com/anvil-build/anvil/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func newProbe(t *testing.T) *envprobe.Probe {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return envprobe.New(logger)
}

func TestProbe_ReadVar(t *testing.T) {
	p := newProbe(t)

	t.Setenv("ANVIL_PROBE_TEST", "value")
	v, ok := p.ReadVar("ANVIL_PROBE_TEST")
	assert.True(t, ok)
	assert.Equal(t, "value", v)

	_, ok = p.ReadVar("ANVIL_PROBE_TEST_UNSET")
	assert.False(t, ok)

	// An empty value is still set at the probe level; the snapshot layer
	// decides what emptiness means.
	t.Setenv("ANVIL_PROBE_TEST_EMPTY", "")
	v, ok = p.ReadVar("ANVIL_PROBE_TEST_EMPTY")
	assert.True(t, ok)
	assert.Empty(t, v)
}

func TestProbe_PathAndDirExists(t *testing.T) {
	p := newProbe(t)
	dir := t.TempDir()
	file := filepath.Join(dir, "marker.cmd")
	require.NoError(t, os.WriteFile(file, []byte("x"), 0o600))

	assert.True(t, p.PathExists(dir))
	assert.True(t, p.PathExists(file))
	assert.False(t, p.PathExists(filepath.Join(dir, "missing")))

	assert.True(t, p.DirExists(dir))
	assert.False(t, p.DirExists(file), "a file is not a directory")
	assert.False(t, p.DirExists(filepath.Join(dir, "missing")))
}

func TestProbe_RunDiscovery(t *testing.T) {
	p := newProbe(t)

	t.Run("missing command yields absent signal", func(t *testing.T) {
		out, ok := p.RunDiscovery(t.Context(), "anvil-no-such-command-xyz")
		assert.False(t, ok)
		assert.Empty(t, out)
	})

	t.Run("captures trimmed stdout", func(t *testing.T) {
		out, ok := p.RunDiscovery(t.Context(), "echo", "hello")
		if !ok {
			t.Skip("echo not available on this host")
		}
		assert.Equal(t, "hello", out)
	})
}
