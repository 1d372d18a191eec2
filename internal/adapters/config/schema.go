package config

// anvilFile represents the structure of the anvil.yaml configuration file.
type anvilFile struct {
	Version    string                   `yaml:"version"`
	Toolchains map[string]*toolchainDTO `yaml:"toolchains"`
	Qt         qtDTO                    `yaml:"qt"`
}

// toolchainDTO represents per-pair overrides in the configuration.
type toolchainDTO struct {
	Roots          []string `yaml:"roots"`
	PrefixSuffixes []string `yaml:"prefix_suffixes"`
}

// qtDTO represents the Qt section of the configuration.
type qtDTO struct {
	Root string `yaml:"root"`
}

// fileSchema is the JSON schema every config file is validated against
// before decoding. Keeping validation ahead of decoding yields precise
// position-free messages for malformed files.
const fileSchema = `{
  "$schema": "https://json-schema.org/draft/2020-12/schema",
  "type": "object",
  "additionalProperties": false,
  "properties": {
    "version": {"type": "string", "enum": ["1"]},
    "toolchains": {
      "type": "object",
      "additionalProperties": {
        "type": "object",
        "additionalProperties": false,
        "properties": {
          "roots": {"type": "array", "items": {"type": "string", "minLength": 1}},
          "prefix_suffixes": {"type": "array", "items": {"type": "string", "pattern": "^/"}}
        }
      }
    },
    "qt": {
      "type": "object",
      "additionalProperties": false,
      "properties": {
        "root": {"type": "string"}
      }
    }
  }
}`
