// Package version exposes the build's declared version.
package version

import "github.com/blang/semver/v4"

// Version is stamped at build time via
//
//	-ldflags "-X github.com/kyudori/appbridge/internal/version.Version=1.2.3"
//
// and never mutated at runtime.
var Version = "0.3.1"

// Get returns the version string. Never fails.
func Get() string {
	return Version
}

// Semver parses the version for callers that want structured access.
func Semver() (semver.Version, error) {
	return semver.ParseTolerant(Version)
}
