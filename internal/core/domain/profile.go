package domain

import (
	"fmt"
	"strings"

	"github.com/cespare/xxhash/v2"
)

// ToolRole names a compiler executable slot in a profile.
type ToolRole string

const (
	RoleC                ToolRole = "c"
	RoleCXX              ToolRole = "cxx"
	RoleAssembler        ToolRole = "asm"
	RoleResourceCompiler ToolRole = "rc"
)

// toolRoleOrder fixes the serialization order of executable roles.
var toolRoleOrder = []ToolRole{RoleC, RoleCXX, RoleAssembler, RoleResourceCompiler}

// FlagSet holds the compile and link flag sequences for one build type.
// Order is significant: the underlying toolchains apply last-flag-wins
// semantics, so later entries may override earlier ones.
type FlagSet struct {
	Compile []string
	Link    []string
}

// SearchPathKind classifies a search path entry.
type SearchPathKind string

const (
	PathInclude   SearchPathKind = "include"
	PathLibrary   SearchPathKind = "library"
	PathFramework SearchPathKind = "framework"
)

// SearchPath is one ordered include/library/framework directory.
type SearchPath struct {
	Kind SearchPathKind
	Dir  string
}

// Profile is the sole artifact of a successful resolution: a fully
// specified toolchain configuration. It is constructed once and never
// mutated; the caller owns it thereafter.
type Profile struct {
	Target      TargetDescriptor
	Root        string
	BinDir      string
	Executables map[ToolRole]string
	Flags       map[BuildType]FlagSet
	SearchPaths []SearchPath
	Defines     []string
	Triplet     string
	QtRoot      string
	SDKRoot     string
}

// Fingerprint returns a stable hash of everything that influences a build
// consuming this profile. Orchestrators use it for cache invalidation: two
// profiles with equal fingerprints produce identical compiler invocations.
func (p *Profile) Fingerprint() string {
	d := xxhash.New()

	write := func(parts ...string) {
		for _, s := range parts {
			_, _ = d.WriteString(s)
			_, _ = d.WriteString("\x00")
		}
	}

	write(string(p.Target.OS), string(p.Target.Arch), string(p.Target.Compiler))
	write(p.Root, p.BinDir, p.Triplet, p.QtRoot, p.SDKRoot)

	for _, role := range toolRoleOrder {
		write(string(role), p.Executables[role])
	}
	for _, bt := range BuildTypes {
		fs := p.Flags[bt]
		write(string(bt), strings.Join(fs.Compile, " "), strings.Join(fs.Link, " "))
	}
	for _, sp := range p.SearchPaths {
		write(string(sp.Kind), sp.Dir)
	}
	write(p.Defines...)

	return fmt.Sprintf("%016x", d.Sum64())
}
