package report_test

import (
	"bytes"
	"testing"

	"github.com/anvil-build/anvil/internal/adapters/report"
	"github.com/anvil-build/anvil/internal/core/domain"
	"github.com/sebdah/goldie/v2"
	"github.com/stretchr/testify/require"
)

func render(t *testing.T, f *domain.ResolutionFailure) []byte {
	t.Helper()
	t.Setenv("NO_COLOR", "1")

	buf := &bytes.Buffer{}
	r := report.NewReporter(buf)
	require.NoError(t, r.Render(f))
	return buf.Bytes()
}

func TestReporter_Render_Exhaustion(t *testing.T) {
	f := &domain.ResolutionFailure{
		Kind: domain.ErrUnresolvable,
		Target: domain.TargetDescriptor{
			OS:       domain.OSWindows,
			Arch:     domain.ArchX8664,
			Compiler: domain.CompilerMinGW,
		},
		Attempts: []domain.Attempt{
			{
				Candidate: domain.Candidate{
					Source: domain.SourceOverride,
					Root:   "C:/toolroot",
					BinDir: "C:/toolroot/mingw64/bin",
					Origin: "TOOLROOT environment variable",
				},
				Result: domain.ValidationResult{
					Missing: []string{
						"toolchain root not found at C:/toolroot",
						"required marker not found at C:/toolroot/msys2_shell.cmd",
					},
				},
			},
			{
				Candidate: domain.Candidate{
					Source: domain.SourceDefault,
					Root:   "C:/msys64",
					BinDir: "C:/msys64/mingw64/bin",
					Origin: "conventional default location",
				},
				Result: domain.ValidationResult{
					Missing: []string{
						"compiler binary not found at C:/msys64/mingw64/bin/gcc.exe",
					},
				},
			},
		},
		Remediation: []string{
			"Install MSYS2 at C:/msys64 (https://www.msys2.org)",
			"Install the compiler inside MSYS2: pacman -S --needed mingw-w64-x86_64-gcc",
		},
	}

	g := goldie.New(t)
	g.Assert(t, "report_exhaustion", render(t, f))
}

func TestReporter_Render_Unsupported(t *testing.T) {
	f := &domain.ResolutionFailure{
		Kind: domain.ErrUnsupportedCombination,
		Target: domain.TargetDescriptor{
			OS:       domain.OSLinux,
			Arch:     domain.ArchX8664,
			Compiler: domain.CompilerMinGW,
		},
		Remediation: []string{
			"No toolchain support exists for linux/x86_64/mingw",
			"Request one of the supported combinations:",
		},
	}

	g := goldie.New(t)
	g.Assert(t, "report_unsupported", render(t, f))
}

func TestReporter_Render_ValidatedAttempt(t *testing.T) {
	// A validated candidate can still end in failure when the tuple has no
	// packaging triplet. The report marks it instead of listing gaps.
	f := &domain.ResolutionFailure{
		Kind: domain.ErrUnsupportedCombination,
		Target: domain.TargetDescriptor{
			OS:       domain.OSWindows,
			Arch:     domain.ArchARM64,
			Compiler: domain.CompilerMinGW,
		},
		Attempts: []domain.Attempt{
			{
				Candidate: domain.Candidate{
					Source: domain.SourceOverride,
					Root:   "C:/toolroot",
					BinDir: "C:/toolroot/mingw64/bin",
					Origin: "TOOLROOT environment variable",
				},
				Result: domain.ValidationResult{Valid: true},
			},
		},
		Remediation: []string{
			"No toolchain support exists for windows/arm64/mingw",
		},
	}

	g := goldie.New(t)
	g.Assert(t, "report_validated_attempt", render(t, f))
}
