package manifest

import (
	"fmt"
	"strings"

	"github.com/Masterminds/semver/v3"
)

// SemVer parses the manifest version, tolerating a leading "v".
func (m *RobotManifest) SemVer() (*semver.Version, error) {
	v, err := parseSemver(m.Version)
	if err != nil {
		return nil, fmt.Errorf("parsing version %q of %s: %w", m.Version, m.Name, err)
	}
	return v, nil
}

// Satisfies reports whether the manifest version meets a constraint such as
// ">= 1.2, < 2". An empty constraint always matches.
func (m *RobotManifest) Satisfies(constraint string) (bool, error) {
	if constraint == "" {
		return true, nil
	}
	c, err := semver.NewConstraint(constraint)
	if err != nil {
		return false, fmt.Errorf("parsing constraint %q: %w", constraint, err)
	}
	v, err := m.SemVer()
	if err != nil {
		return false, err
	}
	return c.Check(v), nil
}

// CompareVersions compares two version strings using semver.
// Returns -1 if a < b, 0 if equal, 1 if a > b.
func CompareVersions(a, b string) (int, error) {
	av, err := parseSemver(a)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", a, err)
	}
	bv, err := parseSemver(b)
	if err != nil {
		return 0, fmt.Errorf("parsing version %q: %w", b, err)
	}
	return av.Compare(bv), nil
}

// parseSemver strips a leading "v" and parses the version string.
func parseSemver(version string) (*semver.Version, error) {
	version = strings.TrimPrefix(version, "v")
	return semver.NewVersion(version)
}
