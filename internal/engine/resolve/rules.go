package resolve

import "github.com/anvil-build/anvil/internal/core/domain"

// Rule describes how toolchains of one (os, family) pair are discovered
// and validated. New platforms extend this table, not the search logic.
type Rule struct {
	// Defaults are the conventional installation roots, highest priority first.
	Defaults []string
	// PrefixVar is the active-environment marker variable, empty when the
	// pair has no session marker.
	PrefixVar string
	// PrefixSuffixes are stripped from the marker value to recover the
	// installation root. The first matching suffix wins. Config may
	// replace this list; no variant selection happens beyond it.
	PrefixSuffixes []string
	// MarkerRel is a path under the root that identifies the installation.
	MarkerRel string
	// BinDirRel is the compiler toolchain directory under the root.
	BinDirRel string
	// CompilerName is the primary C compiler executable, without extension.
	CompilerName string
	// ExeSuffix is appended to executable names (".exe" on windows).
	ExeSuffix string
}

var rules = map[string]Rule{
	"windows/mingw": {
		Defaults:       []string{"C:/msys64", "C:/msys2", "D:/msys64", "D:/msys2"},
		PrefixVar:      domain.VarMinGWPrefix,
		PrefixSuffixes: []string{"/mingw64"},
		MarkerRel:      "msys2_shell.cmd",
		BinDirRel:      "mingw64/bin",
		CompilerName:   "gcc",
		ExeSuffix:      ".exe",
	},
	"windows/clang-cl": {
		Defaults:     []string{"C:/Program Files/LLVM", "C:/Program Files (x86)/LLVM", "C:/LLVM"},
		MarkerRel:    "lib/clang",
		BinDirRel:    "bin",
		CompilerName: "clang-cl",
		ExeSuffix:    ".exe",
	},
	"linux/gcc": {
		Defaults:     []string{"/usr", "/usr/local"},
		MarkerRel:    "lib/gcc",
		BinDirRel:    "bin",
		CompilerName: "gcc",
	},
	"linux/clang": {
		Defaults:     []string{"/usr", "/usr/local", "/opt/llvm"},
		MarkerRel:    "lib/clang",
		BinDirRel:    "bin",
		CompilerName: "clang",
	},
	"macos/clang": {
		Defaults: []string{
			"/Library/Developer/CommandLineTools",
			"/Applications/Xcode.app/Contents/Developer/Toolchains/XcodeDefault.xctoolchain",
			"/opt/homebrew/opt/llvm",
		},
		MarkerRel:    "usr/lib/clang",
		BinDirRel:    "usr/bin",
		CompilerName: "clang",
	},
}

// RuleFor returns the discovery rule for an (os, family) pair.
// Pairs without a rule cannot be resolved on any host.
func RuleFor(os domain.OperatingSystem, family domain.CompilerFamily) (Rule, bool) {
	r, ok := rules[domain.PairKey(os, family)]
	return r, ok
}
