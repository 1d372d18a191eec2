package domain

import "go.trai.ch/zerr"

var (
	// ErrInvalidDescriptor is returned when a target descriptor field has an unknown value.
	ErrInvalidDescriptor = zerr.New("invalid target descriptor")

	// ErrUnresolvable is returned when no toolchain candidate validated for the target.
	ErrUnresolvable = zerr.New("no usable toolchain found")

	// ErrUnsupportedCombination is returned when the (os, arch, compiler) tuple has no packaging triplet.
	ErrUnsupportedCombination = zerr.New("unsupported platform combination")

	// ErrDiscoveryUnavailable signals that an optional discovery command could not run.
	// It is never fatal; resolution proceeds without the signal.
	ErrDiscoveryUnavailable = zerr.New("discovery command unavailable")

	// ErrResolutionFailed is returned by the CLI layer when a resolution produced a failure report.
	ErrResolutionFailed = zerr.New("toolchain resolution failed")

	// ErrConfigReadFailed is returned when the config file cannot be read.
	ErrConfigReadFailed = zerr.New("failed to read config file")

	// ErrConfigParseFailed is returned when the config file cannot be parsed.
	ErrConfigParseFailed = zerr.New("failed to parse config file")

	// ErrConfigSchemaInvalid is returned when the config file does not match the schema.
	ErrConfigSchemaInvalid = zerr.New("config file does not match schema")

	// ErrUnknownToolchainKey is returned when the config names a toolchain pair that does not exist.
	ErrUnknownToolchainKey = zerr.New("unknown toolchain key in config")

	// ErrEnvFileReadFailed is returned when an environment snapshot file cannot be loaded.
	ErrEnvFileReadFailed = zerr.New("failed to read environment file")
)
