// Package domain contains the core types for toolchain resolution.
package domain

import (
	"fmt"

	"go.trai.ch/zerr"
)

// OperatingSystem identifies the target operating system of a resolution.
type OperatingSystem string

const (
	OSLinux   OperatingSystem = "linux"
	OSMacOS   OperatingSystem = "macos"
	OSWindows OperatingSystem = "windows"
)

// Architecture identifies the target CPU architecture.
type Architecture string

const (
	ArchX8664 Architecture = "x86_64"
	ArchARM64 Architecture = "arm64"
)

// CompilerFamily identifies the requested compiler family and dialect.
type CompilerFamily string

const (
	CompilerGCC     CompilerFamily = "gcc"
	CompilerClang   CompilerFamily = "clang"
	CompilerClangCL CompilerFamily = "clang-cl"
	CompilerMinGW   CompilerFamily = "mingw"
)

// TargetDescriptor is the immutable input of a resolution call.
// It names the platform tuple to resolve a toolchain for, plus an
// optional explicit root override that outranks all other discovery.
type TargetDescriptor struct {
	OS           OperatingSystem
	Arch         Architecture
	Compiler     CompilerFamily
	RootOverride string
}

// String returns the canonical os/arch/compiler form of the descriptor.
func (d TargetDescriptor) String() string {
	return fmt.Sprintf("%s/%s/%s", d.OS, d.Arch, d.Compiler)
}

// ParseOS parses an operating system name.
func ParseOS(s string) (OperatingSystem, error) {
	switch OperatingSystem(s) {
	case OSLinux, OSMacOS, OSWindows:
		return OperatingSystem(s), nil
	}
	return "", zerr.With(ErrInvalidDescriptor, "os", s)
}

// ParseArchitecture parses a CPU architecture name.
func ParseArchitecture(s string) (Architecture, error) {
	switch Architecture(s) {
	case ArchX8664, ArchARM64:
		return Architecture(s), nil
	}
	return "", zerr.With(ErrInvalidDescriptor, "arch", s)
}

// ParseCompilerFamily parses a compiler family name.
func ParseCompilerFamily(s string) (CompilerFamily, error) {
	switch CompilerFamily(s) {
	case CompilerGCC, CompilerClang, CompilerClangCL, CompilerMinGW:
		return CompilerFamily(s), nil
	}
	return "", zerr.With(ErrInvalidDescriptor, "compiler", s)
}

// NewTargetDescriptor parses and validates a descriptor from its string parts.
func NewTargetDescriptor(osName, arch, compiler, rootOverride string) (TargetDescriptor, error) {
	o, err := ParseOS(osName)
	if err != nil {
		return TargetDescriptor{}, err
	}
	a, err := ParseArchitecture(arch)
	if err != nil {
		return TargetDescriptor{}, err
	}
	c, err := ParseCompilerFamily(compiler)
	if err != nil {
		return TargetDescriptor{}, err
	}
	return TargetDescriptor{OS: o, Arch: a, Compiler: c, RootOverride: rootOverride}, nil
}
