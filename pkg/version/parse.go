// Package version parses semantic versions for version operands.
package version

import (
	"fmt"
	"regexp"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// Version is a semantic version such as 1.2.3 or 2.0.0-rc.1.
type Version struct {
	sv semver.Version
}

// String returns the normalized version, e.g. "1.2.0" for input "v1.2".
func (v Version) String() string {
	return v.sv.String()
}

// Original returns the text the version was parsed from.
func (v Version) Original() string {
	return v.sv.Original()
}

// versionRegex matches version patterns like 1.2.3, v1.2, 18, etc.
var versionRegex = regexp.MustCompile(`v?\d+(?:\.\d+)?(?:\.\d+)?`)

// Parse parses a version string into a Version. Missing minor and patch
// components default to zero and a leading "v" is accepted.
func Parse(s string) (Version, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return Version{}, fmt.Errorf("empty version string")
	}

	sv, err := semver.NewVersion(s)
	if err != nil {
		return Version{}, fmt.Errorf("invalid version format: %q", s)
	}
	return Version{sv: *sv}, nil
}

// Extract finds and parses the first version number in a string.
func Extract(s string) (Version, error) {
	match := versionRegex.FindString(s)
	if match == "" {
		return Version{}, fmt.Errorf("no version found in: %q", s)
	}
	return Parse(match)
}
