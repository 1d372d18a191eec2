package resolve_test

import (
	"context"
	"testing"

	"github.com/anvil-build/anvil/internal/core/domain"
	"github.com/anvil-build/anvil/internal/core/ports/mocks"
	"github.com/anvil-build/anvil/internal/engine/compose"
	"github.com/anvil-build/anvil/internal/engine/resolve"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	gomock "go.uber.org/mock/gomock"
)

func newResolver(probe *mocks.MockEnvironmentProbe, logger *mocks.MockLogger, cfg domain.Config) *resolve.Resolver {
	return resolve.New(probe, logger, compose.NewComposer(probe, logger), cfg)
}

func mingwInstallation(root string) []string {
	return []string{
		root,
		root + "/msys2_shell.cmd",
		root + "/mingw64/bin",
		root + "/mingw64/bin/gcc.exe",
	}
}

func TestResolver_Resolve_ExplicitOverride(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := probeWithPaths(ctrl, mingwInstallation("C:/toolroot")...)
	r := newResolver(probe, quietLogger(ctrl), domain.Config{})

	snap := domain.NewSnapshot(map[string]string{domain.VarToolRoot: "C:/toolroot"})
	profile, err := r.Resolve(context.Background(), mingwDescriptor(), snap)
	require.NoError(t, err)
	require.NotNil(t, profile)

	assert.Equal(t, "C:/toolroot", profile.Root)
	assert.Equal(t, "C:/toolroot/mingw64/bin", profile.BinDir)
	assert.Equal(t, "C:/toolroot/mingw64/bin/gcc.exe", profile.Executables[domain.RoleC])
	assert.Equal(t, "C:/toolroot/mingw64/bin/g++.exe", profile.Executables[domain.RoleCXX])
	assert.Equal(t, "x64-mingw-dynamic", profile.Triplet)
}

func TestResolver_Resolve_FirstValidCandidateWins(t *testing.T) {
	// Both a conventional default and a lower-ranked one exist; the
	// override outranks them and must be selected.
	ctrl := gomock.NewController(t)
	paths := append(mingwInstallation("D:/custom"), mingwInstallation("C:/msys64")...)
	probe := probeWithPaths(ctrl, paths...)
	r := newResolver(probe, quietLogger(ctrl), domain.Config{})

	desc := mingwDescriptor()
	desc.RootOverride = "D:/custom"
	profile, err := r.Resolve(context.Background(), desc, domain.NewSnapshot(nil))
	require.NoError(t, err)

	assert.Equal(t, "D:/custom", profile.Root)
}

func TestResolver_Resolve_Exhaustion(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := probeWithPaths(ctrl) // empty filesystem
	r := newResolver(probe, quietLogger(ctrl), domain.Config{})

	profile, err := r.Resolve(context.Background(), mingwDescriptor(), domain.NewSnapshot(nil))
	require.Error(t, err)
	assert.Nil(t, profile)

	var failure *domain.ResolutionFailure
	require.ErrorAs(t, err, &failure)
	assert.ErrorIs(t, failure, domain.ErrUnresolvable)

	// All four built-in defaults attempted, each failing all four checks.
	require.Len(t, failure.Attempts, 4)
	for _, attempt := range failure.Attempts {
		assert.False(t, attempt.Result.Valid)
		assert.Len(t, attempt.Result.Missing, 4)
	}
	assert.NotEmpty(t, failure.Remediation)
}

func TestResolver_Resolve_UnsupportedPairSkipsProbing(t *testing.T) {
	ctrl := gomock.NewController(t)
	// No expectations: any probe call fails the test.
	probe := mocks.NewMockEnvironmentProbe(ctrl)
	r := newResolver(probe, quietLogger(ctrl), domain.Config{})

	desc := domain.TargetDescriptor{
		OS:       domain.OSMacOS,
		Arch:     domain.ArchX8664,
		Compiler: domain.CompilerGCC,
	}
	_, err := r.Resolve(context.Background(), desc, domain.NewSnapshot(nil))

	var failure *domain.ResolutionFailure
	require.ErrorAs(t, err, &failure)
	assert.ErrorIs(t, failure, domain.ErrUnsupportedCombination)
	assert.Empty(t, failure.Attempts)
	assert.NotEmpty(t, failure.Remediation)
}

func TestResolver_Resolve_ValidatedButNoTriplet(t *testing.T) {
	// windows/mingw discovery rules do not depend on the architecture, so
	// an arm64 request can validate a toolchain that has no packaging
	// triplet. The failure must carry the attempts that got that far.
	ctrl := gomock.NewController(t)
	probe := probeWithPaths(ctrl, mingwInstallation("C:/toolroot")...)
	r := newResolver(probe, quietLogger(ctrl), domain.Config{})

	desc := domain.TargetDescriptor{
		OS:       domain.OSWindows,
		Arch:     domain.ArchARM64,
		Compiler: domain.CompilerMinGW,
	}
	snap := domain.NewSnapshot(map[string]string{domain.VarToolRoot: "C:/toolroot"})
	_, err := r.Resolve(context.Background(), desc, snap)

	var failure *domain.ResolutionFailure
	require.ErrorAs(t, err, &failure)
	assert.ErrorIs(t, failure, domain.ErrUnsupportedCombination)
	require.NotEmpty(t, failure.Attempts)
	assert.True(t, failure.Attempts[len(failure.Attempts)-1].Result.Valid)
}

func TestSnapshotFromProbe(t *testing.T) {
	ctrl := gomock.NewController(t)
	probe := mocks.NewMockEnvironmentProbe(ctrl)
	probe.EXPECT().ReadVar(gomock.Any()).DoAndReturn(func(name string) (string, bool) {
		if name == domain.VarToolRoot {
			return "/usr", true
		}
		return "", false
	}).Times(len(domain.SnapshotVars))

	snap := resolve.SnapshotFromProbe(probe)

	v, ok := snap.Lookup(domain.VarToolRoot)
	assert.True(t, ok)
	assert.Equal(t, "/usr", v)
	_, ok = snap.Lookup(domain.VarMinGWPrefix)
	assert.False(t, ok)
}

func TestRemediation_KnownPairs(t *testing.T) {
	for _, pair := range domain.SupportedToolchainPairs {
		t.Run(pair, func(t *testing.T) {
			desc := descriptorForPair(t, pair)
			steps := resolve.Remediation(desc)
			assert.NotEmpty(t, steps)
		})
	}
}

func TestRemediation_MinGWPackagePerArch(t *testing.T) {
	x64 := mingwDescriptor()
	steps := resolve.Remediation(x64)
	assert.Contains(t, steps[1], "mingw-w64-x86_64")

	arm := mingwDescriptor()
	arm.Arch = domain.ArchARM64
	steps = resolve.Remediation(arm)
	assert.Contains(t, steps[1], "mingw-w64-aarch64")
}

func TestUnsupportedRemediation_ListsSupportedCombinations(t *testing.T) {
	desc := domain.TargetDescriptor{
		OS:       domain.OSLinux,
		Arch:     domain.ArchX8664,
		Compiler: domain.CompilerMinGW,
	}
	steps := resolve.UnsupportedRemediation(desc)
	require.Greater(t, len(steps), 2)
	assert.Contains(t, steps[0], "linux/x86_64/mingw")
	assert.Len(t, steps[2:], len(compose.SupportedCombinations()))
}

func descriptorForPair(t *testing.T, pair string) domain.TargetDescriptor {
	t.Helper()
	for _, desc := range compose.SupportedDescriptors() {
		if domain.PairKey(desc.OS, desc.Compiler) == pair {
			return desc
		}
	}
	t.Fatalf("no descriptor for pair %s", pair)
	return domain.TargetDescriptor{}
}

func TestResolutionFailure_ErrorString(t *testing.T) {
	failure := &domain.ResolutionFailure{
		Kind:   domain.ErrUnresolvable,
		Target: mingwDescriptor(),
	}
	assert.Contains(t, failure.Error(), "windows/x86_64/mingw")
}
