package domain

import "go.trai.ch/zerr"

// BuildType selects which flag set of a profile a build uses.
type BuildType string

const (
	Debug          BuildType = "Debug"
	Release        BuildType = "Release"
	RelWithDebInfo BuildType = "RelWithDebInfo"
	MinSizeRel     BuildType = "MinSizeRel"
)

// BuildTypes lists all build types in stable order.
var BuildTypes = []BuildType{Debug, Release, RelWithDebInfo, MinSizeRel}

// ErrInvalidBuildType is returned when a build type name is unknown.
var ErrInvalidBuildType = zerr.New("invalid build type, expected Debug, Release, RelWithDebInfo or MinSizeRel")

// ParseBuildType parses a build type name.
func ParseBuildType(s string) (BuildType, error) {
	switch BuildType(s) {
	case Debug, Release, RelWithDebInfo, MinSizeRel:
		return BuildType(s), nil
	}
	return "", zerr.With(ErrInvalidBuildType, "build_type", s)
}
