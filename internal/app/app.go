// Package app implements the application layer for anvil.
package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"
	"runtime"

	"github.com/anvil-build/anvil/internal/adapters/config"
	"github.com/anvil-build/anvil/internal/adapters/report"
	"github.com/anvil-build/anvil/internal/adapters/telemetry"
	"github.com/anvil-build/anvil/internal/adapters/watcher"
	"github.com/anvil-build/anvil/internal/core/domain"
	"github.com/anvil-build/anvil/internal/core/ports"
	"github.com/anvil-build/anvil/internal/engine/compose"
	"github.com/anvil-build/anvil/internal/engine/resolve"
	"github.com/subosito/gotenv"
	"go.trai.ch/zerr"
	"golang.org/x/sync/errgroup"
)

// App represents the main application logic.
type App struct {
	probe    ports.EnvironmentProbe
	logger   ports.Logger
	loader   *config.Loader
	composer *compose.Composer
	stdout   io.Writer
	stderr   io.Writer
}

// New creates a new App instance.
func New(probe ports.EnvironmentProbe, logger ports.Logger, loader *config.Loader, composer *compose.Composer) *App {
	telemetry.Setup(logger)

	return &App{
		probe:    probe,
		logger:   logger,
		loader:   loader,
		composer: composer,
		stdout:   os.Stdout,
		stderr:   os.Stderr,
	}
}

// WithOutput overrides the output streams. Used for testing.
func (a *App) WithOutput(stdout, stderr io.Writer) *App {
	a.stdout = stdout
	a.stderr = stderr
	return a
}

// ResolveOptions configuration for the Resolve method.
type ResolveOptions struct {
	OS         string
	Arch       string
	Compiler   string
	Root       string
	BuildType  string
	EnvFile    string
	ConfigPath string
	Format     string
	Watch      bool
}

// Resolve runs one toolchain resolution and prints the profile, or renders
// the failure report and returns ErrResolutionFailed.
func (a *App) Resolve(ctx context.Context, opts ResolveOptions) error {
	desc, err := domain.NewTargetDescriptor(opts.OS, opts.Arch, opts.Compiler, opts.Root)
	if err != nil {
		return err
	}

	var buildType domain.BuildType
	if opts.BuildType != "" {
		if buildType, err = domain.ParseBuildType(opts.BuildType); err != nil {
			return err
		}
	}

	cfg, err := a.loader.Load(opts.ConfigPath)
	if err != nil {
		return err
	}

	snap, err := a.snapshot(opts.EnvFile)
	if err != nil {
		return err
	}

	resolver := resolve.New(a.probe, a.logger, a.composer, cfg)

	if opts.Watch {
		return a.watchLoop(ctx, resolver, desc, snap, cfg, opts, buildType)
	}

	return a.resolveOnce(ctx, resolver, desc, snap, opts.Format, buildType)
}

func (a *App) resolveOnce(
	ctx context.Context,
	resolver *resolve.Resolver,
	desc domain.TargetDescriptor,
	snap domain.Snapshot,
	format string,
	buildType domain.BuildType,
) error {
	profile, err := resolver.Resolve(ctx, desc, snap)
	if err != nil {
		return a.reportFailure(err)
	}

	rendered, err := renderProfile(profile, format, buildType)
	if err != nil {
		return err
	}
	_, _ = fmt.Fprint(a.stdout, rendered)
	return nil
}

// watchLoop re-resolves whenever a watched toolchain location or the config
// file changes. The first resolution happens immediately; failures inside
// the loop are reported but do not stop watching.
func (a *App) watchLoop(
	ctx context.Context,
	resolver *resolve.Resolver,
	desc domain.TargetDescriptor,
	snap domain.Snapshot,
	cfg domain.Config,
	opts ResolveOptions,
	buildType domain.BuildType,
) error {
	w, err := watcher.New(a.logger)
	if err != nil {
		return zerr.Wrap(err, "failed to initialize file watcher")
	}
	defer func() { _ = w.Stop() }()

	// Watch every candidate root so installing a missing toolchain
	// triggers re-resolution, plus the config file if one exists.
	if candidates, genErr := resolve.Generate(desc, snap, cfg); genErr == nil {
		for _, c := range candidates {
			w.Add(c.Root)
		}
	}
	if opts.ConfigPath != "" {
		w.Add(opts.ConfigPath)
	} else {
		w.Add(config.FileName)
	}

	w.Start(ctx)

	if err := a.resolveOnce(ctx, resolver, desc, snap, opts.Format, buildType); err != nil &&
		!errors.Is(err, domain.ErrResolutionFailed) {
		return err
	}

	for {
		select {
		case <-ctx.Done():
			return nil
		case path := <-w.Events():
			a.logger.Info(fmt.Sprintf("change detected at %s, re-resolving", path))
			// Re-capture the snapshot unless it came from a file: the
			// environment may have changed between iterations.
			if opts.EnvFile == "" {
				snap = resolve.SnapshotFromProbe(a.probe)
			}
			if err := a.resolveOnce(ctx, resolver, desc, snap, opts.Format, buildType); err != nil &&
				!errors.Is(err, domain.ErrResolutionFailed) {
				return err
			}
		}
	}
}

// Doctor resolves a toolchain for the host platform and prints a summary.
func (a *App) Doctor(ctx context.Context) error {
	desc := hostDescriptor()
	a.logger.Info(fmt.Sprintf("checking host toolchain for %s", desc))

	cfg, err := a.loader.Load("")
	if err != nil {
		return err
	}

	resolver := resolve.New(a.probe, a.logger, a.composer, cfg)
	profile, err := resolver.Resolve(ctx, desc, resolve.SnapshotFromProbe(a.probe))
	if err != nil {
		return a.reportFailure(err)
	}

	_, _ = fmt.Fprint(a.stdout, renderSummary(profile))
	return nil
}

// TripletsOptions configuration for the Triplets method.
type TripletsOptions struct {
	Verify bool
}

// Triplets prints the supported combination table. With Verify set, every
// combination is resolved against this machine concurrently and annotated
// with the outcome.
func (a *App) Triplets(ctx context.Context, opts TripletsOptions) error {
	if !opts.Verify {
		for _, combo := range compose.SupportedCombinations() {
			_, _ = fmt.Fprintln(a.stdout, combo)
		}
		return nil
	}

	cfg, err := a.loader.Load("")
	if err != nil {
		return err
	}

	descs := compose.SupportedDescriptors()
	combos := compose.SupportedCombinations()
	results := make([]bool, len(descs))

	// Each resolution owns no shared state, so verification fans out
	// freely; the only bound is process spawn for discovery commands.
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(runtime.NumCPU())

	for i, desc := range descs {
		g.Go(func() error {
			resolver := resolve.New(a.probe, a.logger, a.composer, cfg)
			_, resolveErr := resolver.Resolve(gctx, desc, resolve.SnapshotFromProbe(a.probe))
			results[i] = resolveErr == nil
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return err
	}

	for i, combo := range combos {
		status := "unavailable"
		if results[i] {
			status = "ok"
		}
		_, _ = fmt.Fprintf(a.stdout, "%-40s %s\n", combo, status)
	}
	return nil
}

// snapshot captures the environment, either from the live process or from
// an env file in KEY=VALUE format.
func (a *App) snapshot(envFile string) (domain.Snapshot, error) {
	if envFile == "" {
		return resolve.SnapshotFromProbe(a.probe), nil
	}

	f, err := os.Open(envFile) //nolint:gosec // Path is supplied by the user on the command line
	if err != nil {
		return domain.Snapshot{}, zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "path", envFile)
	}
	defer func() { _ = f.Close() }()

	vars, err := gotenv.StrictParse(f)
	if err != nil {
		return domain.Snapshot{}, zerr.With(zerr.Wrap(err, domain.ErrEnvFileReadFailed.Error()), "path", envFile)
	}
	return domain.NewSnapshot(vars), nil
}

// reportFailure renders a resolution failure to stderr and converts it to
// the CLI exit sentinel. Non-failure errors pass through unchanged.
func (a *App) reportFailure(err error) error {
	var failure *domain.ResolutionFailure
	if !errors.As(err, &failure) {
		return err
	}

	if renderErr := report.NewReporter(a.stderr).Render(failure); renderErr != nil {
		return renderErr
	}
	return errors.Join(domain.ErrResolutionFailed, err)
}

// hostDescriptor infers a target descriptor for the machine anvil runs on.
func hostDescriptor() domain.TargetDescriptor {
	var osName domain.OperatingSystem
	var family domain.CompilerFamily

	switch runtime.GOOS {
	case "darwin":
		osName, family = domain.OSMacOS, domain.CompilerClang
	case "windows":
		osName, family = domain.OSWindows, domain.CompilerMinGW
	default:
		osName, family = domain.OSLinux, domain.CompilerGCC
	}

	arch := domain.ArchX8664
	if runtime.GOARCH == "arm64" {
		arch = domain.ArchARM64
	}

	return domain.TargetDescriptor{OS: osName, Arch: arch, Compiler: family}
}
