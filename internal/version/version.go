// Package version normalizes the build version injected via ldflags.
package version

import (
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Dev is reported when the build version is not a semantic version.
const Dev = "dev"

// Normalize returns the canonical "vX.Y.Z[-pre]" form of raw, or Dev when raw
// does not parse. A leading "v" is accepted.
func Normalize(raw string) string {
	v, err := parse(raw)
	if err != nil {
		return Dev
	}
	return "v" + v.String()
}

// IsRelease reports whether raw is a semantic version without a prerelease tag.
func IsRelease(raw string) bool {
	v, err := parse(raw)
	if err != nil {
		return false
	}
	return v.Prerelease() == ""
}

func parse(raw string) (*semver.Version, error) {
	return semver.NewVersion(strings.TrimPrefix(strings.TrimSpace(raw), "v"))
}
