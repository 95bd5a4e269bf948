package common

import (
	"fmt"
	"strings"
)

// Version is set via ldflags at build time: -ldflags "-X github.com/vacgen/vacgen/internal/codegen/common.Version=x.y.z"
var Version = ""

const devVersion = "0.0.1-dev"

// GetVersion returns the build version without a leading "v", or
// "0.0.1-dev" for untagged builds. The part before any "-" suffix must be
// dotted (x.y.z).
func GetVersion() (string, error) {
	if Version == "" {
		return devVersion, nil
	}

	version := strings.TrimPrefix(Version, "v")
	base, _, _ := strings.Cut(version, "-")
	if !strings.Contains(base, ".") {
		return "", fmt.Errorf("invalid version format: %s (expected x.y.z)", Version)
	}
	return version, nil
}

// MustVersion is GetVersion for callers that only display the version.
func MustVersion() string {
	v, err := GetVersion()
	if err != nil {
		return Version
	}
	return v
}
