package app

import (
	"fmt"
	"strings"

	"github.com/anvil-build/anvil/internal/core/domain"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// ErrInvalidFormat is returned when an unknown output format is requested.
var ErrInvalidFormat = zerr.New("invalid output format, expected 'yaml' or 'text'")

// profileDTO is the serialization shape of a profile. Field order here is
// the field order in the YAML output.
type profileDTO struct {
	Target      string                `yaml:"target"`
	Triplet     string                `yaml:"triplet"`
	Root        string                `yaml:"root"`
	BinDir      string                `yaml:"bin_dir"`
	Compilers   map[string]string     `yaml:"compilers"`
	Flags       map[string]flagSetDTO `yaml:"flags"`
	SearchPaths []searchPathDTO       `yaml:"search_paths"`
	Defines     []string              `yaml:"defines,omitempty"`
	QtRoot      string                `yaml:"qt_root,omitempty"`
	SDKRoot     string                `yaml:"sdk_root,omitempty"`
	Fingerprint string                `yaml:"fingerprint"`
}

type flagSetDTO struct {
	Compile []string `yaml:"compile"`
	Link    []string `yaml:"link"`
}

type searchPathDTO struct {
	Kind string `yaml:"kind"`
	Dir  string `yaml:"dir"`
}

// buildTypesFor returns either all build types or the single requested one.
func buildTypesFor(only domain.BuildType) []domain.BuildType {
	if only == "" {
		return domain.BuildTypes
	}
	return []domain.BuildType{only}
}

func toDTO(p *domain.Profile, only domain.BuildType) profileDTO {
	compilers := make(map[string]string, len(p.Executables))
	for role, path := range p.Executables {
		compilers[string(role)] = path
	}

	flags := make(map[string]flagSetDTO)
	for _, bt := range buildTypesFor(only) {
		fs := p.Flags[bt]
		flags[string(bt)] = flagSetDTO{Compile: fs.Compile, Link: fs.Link}
	}

	paths := make([]searchPathDTO, 0, len(p.SearchPaths))
	for _, sp := range p.SearchPaths {
		paths = append(paths, searchPathDTO{Kind: string(sp.Kind), Dir: sp.Dir})
	}

	return profileDTO{
		Target:      p.Target.String(),
		Triplet:     p.Triplet,
		Root:        p.Root,
		BinDir:      p.BinDir,
		Compilers:   compilers,
		Flags:       flags,
		SearchPaths: paths,
		Defines:     p.Defines,
		QtRoot:      p.QtRoot,
		SDKRoot:     p.SDKRoot,
		Fingerprint: p.Fingerprint(),
	}
}

// renderProfile serializes a profile for stdout in the requested format.
func renderProfile(p *domain.Profile, format string, only domain.BuildType) (string, error) {
	switch format {
	case "", "yaml":
		data, err := yaml.Marshal(toDTO(p, only))
		if err != nil {
			return "", zerr.Wrap(err, "failed to marshal profile")
		}
		return string(data), nil
	case "text":
		return renderText(p, only), nil
	default:
		return "", zerr.With(ErrInvalidFormat, "format", format)
	}
}

func renderText(p *domain.Profile, only domain.BuildType) string {
	var b strings.Builder

	write := func(key, value string) {
		fmt.Fprintf(&b, "%-14s %s\n", key, value)
	}

	write("target", p.Target.String())
	write("triplet", p.Triplet)
	write("root", p.Root)
	for _, role := range []domain.ToolRole{domain.RoleC, domain.RoleCXX, domain.RoleAssembler, domain.RoleResourceCompiler} {
		if path, ok := p.Executables[role]; ok {
			write("compiler."+string(role), path)
		}
	}
	for _, bt := range buildTypesFor(only) {
		fs := p.Flags[bt]
		write("cflags."+string(bt), strings.Join(fs.Compile, " "))
		write("ldflags."+string(bt), strings.Join(fs.Link, " "))
	}
	for _, sp := range p.SearchPaths {
		write("path."+string(sp.Kind), sp.Dir)
	}
	if len(p.Defines) > 0 {
		write("defines", strings.Join(p.Defines, " "))
	}
	if p.QtRoot != "" {
		write("qt_root", p.QtRoot)
	}
	if p.SDKRoot != "" {
		write("sdk_root", p.SDKRoot)
	}
	write("fingerprint", p.Fingerprint())

	return b.String()
}

// renderSummary is the short doctor output.
func renderSummary(p *domain.Profile) string {
	var b strings.Builder
	fmt.Fprintf(&b, "target:      %s\n", p.Target)
	fmt.Fprintf(&b, "triplet:     %s\n", p.Triplet)
	fmt.Fprintf(&b, "root:        %s\n", p.Root)
	fmt.Fprintf(&b, "c compiler:  %s\n", p.Executables[domain.RoleC])
	fmt.Fprintf(&b, "fingerprint: %s\n", p.Fingerprint())
	return b.String()
}
