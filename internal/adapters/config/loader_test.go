package config_test

import (
	"os"
	"path/filepath"
	"testing"

	"github.com/anvil-build/anvil/internal/adapters/config"
	"github.com/anvil-build/anvil/internal/core/domain"
	"github.com/anvil-build/anvil/internal/core/ports/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func newLoader(t *testing.T) *config.Loader {
	t.Helper()
	logger := mocks.NewMockLogger(gomock.NewController(t))
	logger.EXPECT().Debug(gomock.Any()).AnyTimes()
	return config.NewLoader(logger)
}

func writeConfig(t *testing.T, content string) string {
	t.Helper()
	path := filepath.Join(t.TempDir(), config.FileName)
	require.NoError(t, os.WriteFile(path, []byte(content), 0o600))
	return path
}

const validConfig = `version: "1"
toolchains:
  windows/mingw:
    roots:
      - D:/tools/msys64
    prefix_suffixes:
      - /mingw64
      - /ucrt64
  linux/clang:
    roots:
      - /opt/llvm-18
qt:
  root: /opt/qt6
`

func TestLoader_Load_Valid(t *testing.T) {
	path := writeConfig(t, validConfig)

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)

	assert.Equal(t, "/opt/qt6", cfg.QtRoot)
	assert.Equal(t, domain.ToolchainOverride{
		Roots:          []string{"D:/tools/msys64"},
		PrefixSuffixes: []string{"/mingw64", "/ucrt64"},
	}, cfg.Toolchains["windows/mingw"])
	assert.Equal(t, []string{"/opt/llvm-18"}, cfg.Toolchains["linux/clang"].Roots)
}

func TestLoader_Load_Errors(t *testing.T) {
	tests := []struct {
		name    string
		content string
		wantErr error
	}{
		{
			name:    "unknown toolchain key",
			content: "toolchains:\n  freebsd/gcc:\n    roots: [/usr]\n",
			wantErr: domain.ErrUnknownToolchainKey,
		},
		{
			name:    "unknown top-level field",
			content: "compilers: {}\n",
			wantErr: domain.ErrConfigSchemaInvalid,
		},
		{
			name:    "wrong version",
			content: "version: \"2\"\n",
			wantErr: domain.ErrConfigSchemaInvalid,
		},
		{
			name:    "prefix suffix without leading slash",
			content: "toolchains:\n  windows/mingw:\n    prefix_suffixes: [mingw64]\n",
			wantErr: domain.ErrConfigSchemaInvalid,
		},
		{
			name:    "malformed yaml",
			content: "toolchains: [\n",
			wantErr: domain.ErrConfigParseFailed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			path := writeConfig(t, tt.content)
			_, err := newLoader(t).Load(path)
			// Wrapped causes carry the sentinel message, not the
			// sentinel value, so match on the message.
			require.Error(t, err)
			assert.ErrorContains(t, err, tt.wantErr.Error())
		})
	}
}

func TestLoader_Load_EmptyFile(t *testing.T) {
	path := writeConfig(t, "")

	cfg, err := newLoader(t).Load(path)
	require.NoError(t, err)
	assert.Equal(t, domain.Config{}, cfg)
}

func TestLoader_Load_ExplicitPathMustExist(t *testing.T) {
	path := filepath.Join(t.TempDir(), "missing.yaml")

	_, err := newLoader(t).Load(path)
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoader_Load_EnvOverride(t *testing.T) {
	path := writeConfig(t, "qt:\n  root: /from/env\n")
	t.Setenv(domain.VarConfig, path)

	cfg, err := newLoader(t).Load("")
	require.NoError(t, err)
	assert.Equal(t, "/from/env", cfg.QtRoot)
}

func TestLoader_Load_EnvPathMustExist(t *testing.T) {
	t.Setenv(domain.VarConfig, filepath.Join(t.TempDir(), "missing.yaml"))

	_, err := newLoader(t).Load("")
	assert.ErrorContains(t, err, domain.ErrConfigReadFailed.Error())
}

func TestLoader_Load_WorkingDirectoryDiscovery(t *testing.T) {
	t.Setenv(domain.VarConfig, "")
	dir := t.TempDir()
	require.NoError(t, os.WriteFile(filepath.Join(dir, config.FileName), []byte("qt:\n  root: /from/cwd\n"), 0o600))
	t.Chdir(dir)

	cfg, err := newLoader(t).Load("")
	require.NoError(t, err)
	assert.Equal(t, "/from/cwd", cfg.QtRoot)
}

func TestLoader_Load_NothingDiscovered(t *testing.T) {
	t.Setenv(domain.VarConfig, "")
	t.Setenv("XDG_CONFIG_HOME", t.TempDir())
	t.Chdir(t.TempDir())

	cfg, err := newLoader(t).Load("")
	require.NoError(t, err)
	assert.Equal(t, domain.Config{}, cfg)
}
