package git

import (
	"context"
	"fmt"
	"regexp"
	"strconv"
)

// Version represents a parsed git version.
type Version struct {
	Major int
	Minor int
	Patch int
	Raw   string
}

// String returns the version as "major.minor.patch".
func (v *Version) String() string {
	return fmt.Sprintf("%d.%d.%d", v.Major, v.Minor, v.Patch)
}

// AtLeast returns true if this version is at least major.minor.
func (v *Version) AtLeast(major, minor int) bool {
	if v.Major > major {
		return true
	}
	if v.Major == major && v.Minor >= minor {
		return true
	}
	return false
}

// versionRegex matches git version strings like:
// - "git version 2.39.0"
// - "git version 2.39.0 (Apple Git-143)"
// - "git version 2.39.0.windows.1"
var versionRegex = regexp.MustCompile(`git version (\d+)\.(\d+)(?:\.(\d+))?`)

// GetVersion returns the installed git version.
func GetVersion(ctx context.Context) (*Version, error) {
	out, err := Run(ctx, []string{"--version"}, nil)
	if err != nil {
		return nil, fmt.Errorf("failed to get git version: %w", err)
	}
	return ParseVersion(out)
}

// ParseVersion parses a git version string.
func ParseVersion(s string) (*Version, error) {
	matches := versionRegex.FindStringSubmatch(s)
	if matches == nil {
		return nil, fmt.Errorf("failed to parse git version: %q", s)
	}

	major, _ := strconv.Atoi(matches[1])
	minor, _ := strconv.Atoi(matches[2])
	patch := 0
	if len(matches) > 3 && matches[3] != "" {
		patch, _ = strconv.Atoi(matches[3])
	}

	return &Version{
		Major: major,
		Minor: minor,
		Patch: patch,
		Raw:   s,
	}, nil
}

// Minimum git version. 2.5 introduced linked worktrees, whose lock files live
// under the per-worktree directory that rev-parse --git-dir reports; older
// versions are not tested.
const (
	MinVersionMajor = 2
	MinVersionMinor = 5
)

// CheckMinVersion verifies git meets the minimum version and returns the
// detected version. The version is returned whenever it could be read, even
// alongside an *ErrVersionTooOld.
func CheckMinVersion(ctx context.Context) (*Version, error) {
	v, err := GetVersion(ctx)
	if err != nil {
		return nil, err
	}
	if !v.AtLeast(MinVersionMajor, MinVersionMinor) {
		return v, &ErrVersionTooOld{
			Current:  v.String(),
			Required: fmt.Sprintf("%d.%d", MinVersionMajor, MinVersionMinor),
		}
	}
	return v, nil
}
