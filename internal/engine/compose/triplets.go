package compose

import (
	"fmt"

	"github.com/anvil-build/anvil/internal/core/domain"
)

type combination struct {
	os     domain.OperatingSystem
	arch   domain.Architecture
	family domain.CompilerFamily
}

// triplets is the total mapping from supported combinations to packaging
// triplets. There is deliberately no fallback: a combination absent here
// is unsupported, never guessed.
var triplets = map[combination]string{
	{domain.OSWindows, domain.ArchX8664, domain.CompilerMinGW}:   "x64-mingw-dynamic",
	{domain.OSWindows, domain.ArchX8664, domain.CompilerClangCL}: "x64-windows",
	{domain.OSWindows, domain.ArchARM64, domain.CompilerClangCL}: "arm64-windows",
	{domain.OSLinux, domain.ArchX8664, domain.CompilerGCC}:       "x64-linux",
	{domain.OSLinux, domain.ArchARM64, domain.CompilerGCC}:       "arm64-linux",
	{domain.OSLinux, domain.ArchX8664, domain.CompilerClang}:     "x64-linux",
	{domain.OSLinux, domain.ArchARM64, domain.CompilerClang}:     "arm64-linux",
	{domain.OSMacOS, domain.ArchX8664, domain.CompilerClang}:     "x64-osx",
	{domain.OSMacOS, domain.ArchARM64, domain.CompilerClang}:     "arm64-osx",
}

// tripletOrder fixes the listing order of supported combinations.
var tripletOrder = []combination{
	{domain.OSLinux, domain.ArchX8664, domain.CompilerGCC},
	{domain.OSLinux, domain.ArchARM64, domain.CompilerGCC},
	{domain.OSLinux, domain.ArchX8664, domain.CompilerClang},
	{domain.OSLinux, domain.ArchARM64, domain.CompilerClang},
	{domain.OSMacOS, domain.ArchX8664, domain.CompilerClang},
	{domain.OSMacOS, domain.ArchARM64, domain.CompilerClang},
	{domain.OSWindows, domain.ArchX8664, domain.CompilerMinGW},
	{domain.OSWindows, domain.ArchX8664, domain.CompilerClangCL},
	{domain.OSWindows, domain.ArchARM64, domain.CompilerClangCL},
}

// TripletFor returns the packaging triplet for a target, or false when the
// combination is unsupported.
func TripletFor(desc domain.TargetDescriptor) (string, bool) {
	t, ok := triplets[combination{desc.OS, desc.Arch, desc.Compiler}]
	return t, ok
}

// SupportedCombinations lists every supported combination with its triplet,
// in stable order.
func SupportedCombinations() []string {
	out := make([]string, 0, len(tripletOrder))
	for _, c := range tripletOrder {
		out = append(out, fmt.Sprintf("%s/%s/%s (%s)", c.os, c.arch, c.family, triplets[c]))
	}
	return out
}

// SupportedDescriptors returns the supported combinations as descriptors,
// in the same stable order as SupportedCombinations.
func SupportedDescriptors() []domain.TargetDescriptor {
	out := make([]domain.TargetDescriptor, 0, len(tripletOrder))
	for _, c := range tripletOrder {
		out = append(out, domain.TargetDescriptor{OS: c.os, Arch: c.arch, Compiler: c.family})
	}
	return out
}
