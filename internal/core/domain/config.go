package domain

// PairKey returns the "os/family" key used for toolchain discovery rules
// and config sections.
func PairKey(os OperatingSystem, family CompilerFamily) string {
	return string(os) + "/" + string(family)
}

// SupportedToolchainPairs lists every (os, family) pair that has discovery
// rules. Config sections must use one of these keys; pairs outside this
// list fail resolution as an unsupported combination before any probing.
var SupportedToolchainPairs = []string{
	"linux/clang",
	"linux/gcc",
	"macos/clang",
	"windows/clang-cl",
	"windows/mingw",
}

// ToolchainOverride carries per-pair config adjustments.
type ToolchainOverride struct {
	// Roots are prepended to the built-in conventional default locations.
	Roots []string
	// PrefixSuffixes replaces the suffix list stripped from the active
	// environment prefix variable when non-empty.
	PrefixSuffixes []string
}

// Config is the optional user configuration applied to resolution.
// The zero value is a valid, empty configuration.
type Config struct {
	Toolchains map[string]ToolchainOverride
	QtRoot     string
}

// Override returns the override for a pair, or a zero value when absent.
func (c Config) Override(os OperatingSystem, family CompilerFamily) ToolchainOverride {
	return c.Toolchains[PairKey(os, family)]
}
