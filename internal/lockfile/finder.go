// Package lockfile finds and removes stale git lock files.
package lockfile

import (
	"os"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
)

// DefaultPattern matches every lock file anywhere under the git directory.
const DefaultPattern = "**/*.lock"

// Finder holds the include and exclude patterns used to locate lock files
type Finder struct {
	include []string
	exclude []string
}

// NewFinder creates a Finder with the given include and exclude patterns.
// With no include patterns it falls back to DefaultPattern.
func NewFinder(include, exclude []string) *Finder {
	if len(include) == 0 {
		include = []string{DefaultPattern}
	}
	return &Finder{
		include: include,
		exclude: exclude,
	}
}

// DefaultFinder returns a finder matching DefaultPattern with no exclusions
func DefaultFinder() *Finder {
	return NewFinder(nil, nil)
}

// Find returns the regular files in dir that match an include pattern and
// no exclude pattern. The returned paths are slash-separated, relative to
// dir, and sorted. Subtrees that cannot be read are skipped.
func (f *Finder) Find(dir string) ([]string, error) {
	fsys := os.DirFS(dir)
	seen := make(map[string]bool)
	var result []string

	for _, pattern := range f.include {
		matches, err := doublestar.Glob(fsys, pattern, doublestar.WithFilesOnly(), doublestar.WithNoFollow())
		if err != nil {
			return nil, err
		}
		for _, match := range matches {
			if seen[match] {
				continue
			}
			seen[match] = true

			excluded, err := f.excluded(match)
			if err != nil {
				return nil, err
			}
			if !excluded {
				result = append(result, match)
			}
		}
	}

	sort.Strings(result)
	return result, nil
}

func (f *Finder) excluded(path string) (bool, error) {
	for _, pattern := range f.exclude {
		match, err := doublestar.Match(pattern, path)
		if err != nil {
			return false, err
		}
		if match {
			return true, nil
		}
	}
	return false, nil
}

// Validate reports the first malformed pattern, if any
func (f *Finder) Validate() error {
	for _, pattern := range append(append([]string{}, f.include...), f.exclude...) {
		if !doublestar.ValidatePattern(pattern) {
			return &PatternError{Pattern: pattern}
		}
	}
	return nil
}

// PatternError is returned for a pattern doublestar cannot parse
type PatternError struct {
	Pattern string
}

func (e *PatternError) Error() string {
	return "invalid lock file pattern: " + e.Pattern
}
