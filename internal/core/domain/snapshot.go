package domain

// Environment variable names consumed during resolution.
const (
	// VarToolRoot is the explicit toolchain root override.
	VarToolRoot = "TOOLROOT"
	// VarMinGWPrefix is set by an active MSYS2/MinGW shell and points at the
	// selected runtime prefix inside the installation root.
	VarMinGWPrefix = "MINGW_PREFIX"
	// VarSDKRoot overrides the macOS SDK path.
	VarSDKRoot = "SDKROOT"
	// VarQtDir overrides the Qt installation root.
	VarQtDir = "QTDIR"
	// VarNoNativeArch suppresses native CPU tuning flags.
	VarNoNativeArch = "NO_NATIVE_ARCH"
	// VarNoColor suppresses color diagnostics flags and colored output.
	VarNoColor = "NO_COLOR"
	// VarConfig overrides the config file location.
	VarConfig = "ANVIL_CONFIG"
	// VarTrace enables span logging for resolution phases.
	VarTrace = "ANVIL_TRACE"
)

// SnapshotVars lists the variables captured into a Snapshot.
var SnapshotVars = []string{
	VarToolRoot,
	VarMinGWPrefix,
	VarSDKRoot,
	VarQtDir,
	VarNoNativeArch,
	VarNoColor,
}

// Snapshot is a point-in-time capture of the environment variables that
// influence resolution. Filesystem and process probing stay behind the
// EnvironmentProbe port; a Snapshot is pure data and safe to construct
// from a file or a test fixture.
type Snapshot struct {
	vars map[string]string
}

// NewSnapshot creates a Snapshot from the given variable map.
// The map is copied; the Snapshot never aliases caller state.
func NewSnapshot(vars map[string]string) Snapshot {
	copied := make(map[string]string, len(vars))
	for k, v := range vars {
		copied[k] = v
	}
	return Snapshot{vars: copied}
}

// Lookup returns the value of a captured variable and whether it was set.
// Variables captured with an empty value count as unset.
func (s Snapshot) Lookup(name string) (string, bool) {
	v, ok := s.vars[name]
	if !ok || v == "" {
		return "", false
	}
	return v, true
}

// IsSet reports whether the variable was present in the captured environment,
// regardless of value. NO_COLOR and similar flags are presence-only switches.
func (s Snapshot) IsSet(name string) bool {
	_, ok := s.vars[name]
	return ok
}
