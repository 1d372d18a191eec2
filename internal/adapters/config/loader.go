// Package config loads the optional anvil.yaml configuration file.
package config

import (
	"bytes"
	"os"
	"path/filepath"
	"slices"
	"strings"

	"github.com/adrg/xdg"
	"github.com/anvil-build/anvil/internal/core/domain"
	"github.com/anvil-build/anvil/internal/core/ports"
	"github.com/santhosh-tekuri/jsonschema/v5"
	"go.trai.ch/zerr"
	"gopkg.in/yaml.v3"
)

// FileName is the configuration file name discovered in the working directory.
const FileName = "anvil.yaml"

// xdgRelPath locates the config file under the XDG config directory.
var xdgRelPath = filepath.Join("anvil", FileName)

// Loader discovers and loads the anvil configuration file.
type Loader struct {
	logger ports.Logger
	schema *jsonschema.Schema
}

// NewLoader creates a new Loader with the given logger.
func NewLoader(logger ports.Logger) *Loader {
	// The schema is a compile-time constant; failure to compile it is a bug.
	compiler := jsonschema.NewCompiler()
	if err := compiler.AddResource(FileName, strings.NewReader(fileSchema)); err != nil {
		panic(err)
	}
	return &Loader{
		logger: logger,
		schema: compiler.MustCompile(FileName),
	}
}

// Load reads the configuration, discovering the file when explicitPath is
// empty. A missing file at a discovered location is not an error; the zero
// configuration is returned instead.
func (l *Loader) Load(explicitPath string) (domain.Config, error) {
	path, required := l.findConfig(explicitPath)
	if path == "" {
		return domain.Config{}, nil
	}

	data, err := os.ReadFile(path) //nolint:gosec // Path comes from the user's own config discovery
	if err != nil {
		if !required && os.IsNotExist(err) {
			return domain.Config{}, nil
		}
		return domain.Config{}, zerr.With(zerr.Wrap(err, domain.ErrConfigReadFailed.Error()), "path", path)
	}

	file, err := l.parse(data)
	if err != nil {
		return domain.Config{}, zerr.With(err, "path", path)
	}

	return toDomain(file)
}

// findConfig resolves the config file location. The second return value
// reports whether the file was explicitly requested and therefore must exist.
func (l *Loader) findConfig(explicitPath string) (string, bool) {
	if explicitPath != "" {
		return explicitPath, true
	}
	if envPath := os.Getenv(domain.VarConfig); envPath != "" {
		return envPath, true
	}
	if _, err := os.Stat(FileName); err == nil {
		return FileName, false
	}
	if path, err := xdg.SearchConfigFile(xdgRelPath); err == nil {
		return path, false
	}
	return "", false
}

// parse validates the raw YAML against the schema, then strict-decodes it.
func (l *Loader) parse(data []byte) (*anvilFile, error) {
	var raw any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	if raw != nil {
		if err := l.schema.Validate(raw); err != nil {
			return nil, zerr.Wrap(err, domain.ErrConfigSchemaInvalid.Error())
		}
	}

	var file anvilFile
	dec := yaml.NewDecoder(bytes.NewReader(data))
	dec.KnownFields(true)
	if err := dec.Decode(&file); err != nil {
		// An empty file decodes to io.EOF; treat it as the zero config.
		if strings.Contains(err.Error(), "EOF") {
			return &anvilFile{}, nil
		}
		return nil, zerr.Wrap(err, domain.ErrConfigParseFailed.Error())
	}

	return &file, nil
}

// toDomain converts the decoded file into the domain configuration,
// rejecting toolchain keys that have no discovery rules.
func toDomain(file *anvilFile) (domain.Config, error) {
	cfg := domain.Config{QtRoot: file.Qt.Root}

	if len(file.Toolchains) == 0 {
		return cfg, nil
	}

	cfg.Toolchains = make(map[string]domain.ToolchainOverride, len(file.Toolchains))
	for key, dto := range file.Toolchains {
		if !slices.Contains(domain.SupportedToolchainPairs, key) {
			unknownErr := zerr.With(domain.ErrUnknownToolchainKey, "key", key)
			return domain.Config{}, zerr.With(unknownErr, "supported", strings.Join(domain.SupportedToolchainPairs, ", "))
		}
		if dto == nil {
			continue
		}
		cfg.Toolchains[key] = domain.ToolchainOverride{
			Roots:          slices.Clone(dto.Roots),
			PrefixSuffixes: slices.Clone(dto.PrefixSuffixes),
		}
	}

	return cfg, nil
}
