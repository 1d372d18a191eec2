// Package ports defines the core interfaces for the application.
package ports

import "context"

// EnvironmentProbe is the read-only window onto the host environment used
// during resolution. Implementations must not mutate the environment or
// the filesystem.
//
//go:generate go run go.uber.org/mock/mockgen -source=probe.go -destination=mocks/mock_probe.go -package=mocks
type EnvironmentProbe interface {
	// ReadVar returns the value of an environment variable and whether it is set.
	ReadVar(name string) (string, bool)

	// PathExists reports whether a file or directory exists at path.
	PathExists(path string) bool

	// DirExists reports whether path exists and is a directory.
	DirExists(path string) bool

	// RunDiscovery runs an optional auto-detection command and returns its
	// trimmed stdout. ok is false when the command is missing, exits
	// non-zero or times out; that is a normal "signal absent" outcome,
	// never an error.
	RunDiscovery(ctx context.Context, name string, args ...string) (stdout string, ok bool)
}
