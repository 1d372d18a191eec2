// Package envprobe implements the EnvironmentProbe port against the real host.
package envprobe

import (
	"context"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"

	"github.com/anvil-build/anvil/internal/core/ports"
)

// discoveryTimeout bounds every external discovery command. A hung SDK
// query must not stall unrelated resolutions.
const discoveryTimeout = 10 * time.Second

// Probe implements ports.EnvironmentProbe using the process environment,
// os.Stat and os/exec. All queries are read-only.
type Probe struct {
	logger  ports.Logger
	timeout time.Duration
}

// New creates a new host-backed Probe.
func New(logger ports.Logger) *Probe {
	return &Probe{
		logger:  logger,
		timeout: discoveryTimeout,
	}
}

// ReadVar returns the value of an environment variable and whether it is set.
func (p *Probe) ReadVar(name string) (string, bool) {
	return os.LookupEnv(name)
}

// PathExists reports whether a file or directory exists at path.
func (p *Probe) PathExists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}

// DirExists reports whether path exists and is a directory.
func (p *Probe) DirExists(path string) bool {
	info, err := os.Stat(path)
	return err == nil && info.IsDir()
}

// RunDiscovery runs an optional auto-detection command and captures its
// trimmed stdout. Any failure (missing binary, non-zero exit, timeout)
// yields ok=false: the signal is simply absent on this host, which is a
// legitimate state, not an error.
func (p *Probe) RunDiscovery(ctx context.Context, name string, args ...string) (string, bool) {
	ctx, cancel := context.WithTimeout(ctx, p.timeout)
	defer cancel()

	cmd := exec.CommandContext(ctx, name, args...)
	out, err := cmd.Output()
	if err != nil {
		p.logger.Debug(fmt.Sprintf("discovery command unavailable, skipping: %s %s", name, strings.Join(args, " ")))
		return "", false
	}

	return strings.TrimSpace(string(out)), true
}
