package compose

import "github.com/anvil-build/anvil/internal/core/domain"

// executableNames maps each compiler family to its tool names by role.
// Roles absent for a family (e.g. a resource compiler outside windows)
// are simply not present in the map.
var executableNames = map[domain.CompilerFamily]map[domain.ToolRole]string{
	domain.CompilerGCC: {
		domain.RoleC:         "gcc",
		domain.RoleCXX:       "g++",
		domain.RoleAssembler: "gcc",
	},
	domain.CompilerMinGW: {
		domain.RoleC:                "gcc",
		domain.RoleCXX:              "g++",
		domain.RoleAssembler:        "gcc",
		domain.RoleResourceCompiler: "windres",
	},
	domain.CompilerClang: {
		domain.RoleC:         "clang",
		domain.RoleCXX:       "clang++",
		domain.RoleAssembler: "clang",
	},
	domain.CompilerClangCL: {
		domain.RoleC:                "clang-cl",
		domain.RoleCXX:              "clang-cl",
		domain.RoleAssembler:        "llvm-ml",
		domain.RoleResourceCompiler: "llvm-rc",
	},
}

// exeSuffixFor returns the executable suffix of a target OS.
func exeSuffixFor(os domain.OperatingSystem) string {
	if os == domain.OSWindows {
		return ".exe"
	}
	return ""
}

// executablesFor resolves the full executable paths for a family inside binDir.
func executablesFor(desc domain.TargetDescriptor, binDir string) map[domain.ToolRole]string {
	names := executableNames[desc.Compiler]
	suffix := exeSuffixFor(desc.OS)

	out := make(map[domain.ToolRole]string, len(names))
	for role, name := range names {
		out[role] = binDir + "/" + name + suffix
	}
	return out
}
