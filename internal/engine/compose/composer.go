// Package compose assembles validated candidates into toolchain profiles.
package compose

import (
	"context"
	"fmt"
	"path"
	"sort"

	"github.com/anvil-build/anvil/internal/core/domain"
	"github.com/anvil-build/anvil/internal/core/ports"
	"go.trai.ch/zerr"
)

// qtDefaultRoots are the per-platform fallback Qt locations, used when
// neither QTDIR nor the config supplies one and discovery finds nothing.
var qtDefaultRoots = map[domain.OperatingSystem]string{
	domain.OSWindows: "C:/Qt/6.7.2/mingw_64",
	domain.OSLinux:   "/usr/lib/qt6",
	domain.OSMacOS:   "/opt/homebrew/opt/qt",
}

// platformDefines are the preprocessor definitions added per platform and
// family. The composed profile carries them sorted.
func platformDefines(desc domain.TargetDescriptor) []string {
	if desc.OS != domain.OSWindows {
		return nil
	}

	defines := []string{"NOMINMAX", "UNICODE", "WIN32_LEAN_AND_MEAN", "_UNICODE"}
	switch desc.Compiler {
	case domain.CompilerMinGW:
		defines = append(defines, "__USE_MINGW_ANSI_STDIO=1")
	case domain.CompilerClangCL:
		defines = append(defines, "_CRT_SECURE_NO_WARNINGS")
	default:
	}

	sort.Strings(defines)
	return defines
}

// Composer builds the final toolchain profile from a validated candidate.
// Composition is a pure function of its inputs and the static tables; the
// probe is consulted only for optional SDK and Qt discovery commands.
type Composer struct {
	probe  ports.EnvironmentProbe
	logger ports.Logger
}

// NewComposer creates a new Composer.
func NewComposer(probe ports.EnvironmentProbe, logger ports.Logger) *Composer {
	return &Composer{probe: probe, logger: logger}
}

// Compose assembles the profile for a validated root. It returns
// ErrUnsupportedCombination when the target tuple has no packaging triplet.
func (c *Composer) Compose(
	ctx context.Context,
	desc domain.TargetDescriptor,
	snap domain.Snapshot,
	cfg domain.Config,
	root, binDir string,
) (*domain.Profile, error) {
	triplet, ok := TripletFor(desc)
	if !ok {
		return nil, zerr.With(domain.ErrUnsupportedCombination, "combination", desc.String())
	}

	in := flagInputs{
		noNativeArch: snap.IsSet(domain.VarNoNativeArch),
		noColor:      snap.IsSet(domain.VarNoColor),
		sdkRoot:      c.sdkRoot(ctx, desc, snap),
	}

	flags := make(map[domain.BuildType]domain.FlagSet, len(domain.BuildTypes))
	for _, bt := range domain.BuildTypes {
		flags[bt] = composeFlags(desc, bt, in)
	}

	qtRoot := c.qtRoot(ctx, desc, snap, cfg)

	return &domain.Profile{
		Target:      desc,
		Root:        root,
		BinDir:      binDir,
		Executables: executablesFor(desc, binDir),
		Flags:       flags,
		SearchPaths: searchPaths(desc, binDir, qtRoot, in.sdkRoot),
		Defines:     platformDefines(desc),
		Triplet:     triplet,
		QtRoot:      qtRoot,
		SDKRoot:     in.sdkRoot,
	}, nil
}

// sdkRoot determines the macOS SDK path: explicit override, then xcrun
// discovery, then none. Absence is informational, never an error.
func (c *Composer) sdkRoot(ctx context.Context, desc domain.TargetDescriptor, snap domain.Snapshot) string {
	if desc.OS != domain.OSMacOS {
		return ""
	}

	if v, ok := snap.Lookup(domain.VarSDKRoot); ok {
		return v
	}

	if out, ok := c.probe.RunDiscovery(ctx, "xcrun", "--show-sdk-path"); ok && out != "" {
		return out
	}

	c.logger.Debug("no macOS SDK path found, composing profile without -isysroot")
	return ""
}

// qtRoot determines the auxiliary Qt installation root: environment
// override, then config, then platform discovery, then the static default.
func (c *Composer) qtRoot(ctx context.Context, desc domain.TargetDescriptor, snap domain.Snapshot, cfg domain.Config) string {
	if v, ok := snap.Lookup(domain.VarQtDir); ok {
		return v
	}

	if cfg.QtRoot != "" {
		return cfg.QtRoot
	}

	if desc.OS == domain.OSMacOS {
		if out, ok := c.probe.RunDiscovery(ctx, "brew", "--prefix", "qt"); ok && out != "" {
			return out
		}
	}

	return qtDefaultRoots[desc.OS]
}

// searchPaths assembles the ordered include, library and framework
// directories: toolchain first, then Qt, then macOS frameworks.
func searchPaths(desc domain.TargetDescriptor, binDir, qtRoot, sdkRoot string) []domain.SearchPath {
	prefix := path.Dir(binDir)

	paths := []domain.SearchPath{
		{Kind: domain.PathInclude, Dir: prefix + "/include"},
		{Kind: domain.PathLibrary, Dir: prefix + "/lib"},
	}

	if qtRoot != "" {
		paths = append(paths,
			domain.SearchPath{Kind: domain.PathInclude, Dir: qtRoot + "/include"},
			domain.SearchPath{Kind: domain.PathLibrary, Dir: qtRoot + "/lib"},
		)
	}

	if desc.OS == domain.OSMacOS {
		if sdkRoot != "" {
			paths = append(paths, domain.SearchPath{
				Kind: domain.PathFramework,
				Dir:  fmt.Sprintf("%s/System/Library/Frameworks", sdkRoot),
			})
		}
		paths = append(paths, domain.SearchPath{Kind: domain.PathFramework, Dir: "/Library/Frameworks"})
	}

	return paths
}
