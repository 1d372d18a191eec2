package domain_test

import (
	"testing"

	"github.com/anvil-build/anvil/internal/core/domain"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestNewTargetDescriptor(t *testing.T) {
	tests := []struct {
		name     string
		os       string
		arch     string
		compiler string
		wantErr  bool
	}{
		{name: "windows mingw", os: "windows", arch: "x86_64", compiler: "mingw"},
		{name: "macos clang arm64", os: "macos", arch: "arm64", compiler: "clang"},
		{name: "linux gcc", os: "linux", arch: "x86_64", compiler: "gcc"},
		{name: "windows clang-cl", os: "windows", arch: "arm64", compiler: "clang-cl"},
		{name: "unknown os", os: "freebsd", arch: "x86_64", compiler: "gcc", wantErr: true},
		{name: "unknown arch", os: "linux", arch: "riscv64", compiler: "gcc", wantErr: true},
		{name: "unknown compiler", os: "linux", arch: "x86_64", compiler: "msvc", wantErr: true},
		{name: "empty os", os: "", arch: "x86_64", compiler: "gcc", wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			desc, err := domain.NewTargetDescriptor(tt.os, tt.arch, tt.compiler, "")
			if tt.wantErr {
				require.Error(t, err)
				assert.ErrorIs(t, err, domain.ErrInvalidDescriptor)
				return
			}
			require.NoError(t, err)
			assert.Equal(t, tt.os+"/"+tt.arch+"/"+tt.compiler, desc.String())
		})
	}
}

func TestParseBuildType(t *testing.T) {
	for _, bt := range domain.BuildTypes {
		parsed, err := domain.ParseBuildType(string(bt))
		require.NoError(t, err)
		assert.Equal(t, bt, parsed)
	}

	_, err := domain.ParseBuildType("Profile")
	assert.ErrorIs(t, err, domain.ErrInvalidBuildType)
}

func TestSnapshot_Lookup(t *testing.T) {
	snap := domain.NewSnapshot(map[string]string{
		domain.VarToolRoot: "C:/msys64",
		domain.VarNoColor:  "",
	})

	v, ok := snap.Lookup(domain.VarToolRoot)
	assert.True(t, ok)
	assert.Equal(t, "C:/msys64", v)

	// Empty values carry no root signal.
	_, ok = snap.Lookup(domain.VarNoColor)
	assert.False(t, ok)

	// But presence alone flips boolean switches.
	assert.True(t, snap.IsSet(domain.VarNoColor))
	assert.False(t, snap.IsSet(domain.VarNoNativeArch))
}

func TestSnapshot_CopiesInput(t *testing.T) {
	vars := map[string]string{domain.VarToolRoot: "/usr"}
	snap := domain.NewSnapshot(vars)

	vars[domain.VarToolRoot] = "/mutated"

	v, ok := snap.Lookup(domain.VarToolRoot)
	require.True(t, ok)
	assert.Equal(t, "/usr", v)
}
