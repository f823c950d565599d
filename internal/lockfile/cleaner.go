package lockfile

import (
	"errors"
	"io/fs"
	"os"
	"path"
	"path/filepath"
	"strings"

	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/gitunjam/internal/types"
)

// ErrOutsideGitDir is recorded for a well-known path that resolves outside
// the git directory. Such a path is never removed.
var ErrOutsideGitDir = errors.New("path is outside the git directory")

// WellKnown returns the lock paths, relative to the git directory, that
// git leaves behind most often. The branch lock follows branch.
func WellKnown(branch string) []string {
	if branch == "" {
		branch = "main"
	}
	return []string{
		"index.lock",
		"HEAD.lock",
		"config.lock",
		path.Join("refs", "heads", branch+".lock"),
	}
}

// Cleaner removes lock files from one repository in two passes: every file
// the Finder matches under GitDir, then each WellKnown path that still
// exists. A failed removal is recorded and the pass continues.
type Cleaner struct {
	// Dir is the working tree; reported paths are relative to it when possible.
	Dir string

	// GitDir is the repository metadata directory that is scanned.
	GitDir string

	// Finder selects lock files during the scan pass.
	Finder *Finder

	// WellKnown lists paths relative to GitDir removed in the second pass.
	WellKnown []string

	// DryRun records what would be removed without touching anything.
	DryRun bool

	Logger hclog.Logger

	// remove deletes one file; os.Remove unless replaced in tests.
	remove func(name string) error
}

// NewCleaner creates a Cleaner for the repository at dir with metadata in
// gitDir, scanning with DefaultFinder and removing the WellKnown paths for
// branch.
func NewCleaner(dir, gitDir, branch string, logger hclog.Logger) *Cleaner {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	return &Cleaner{
		Dir:       dir,
		GitDir:    gitDir,
		Finder:    DefaultFinder(),
		WellKnown: WellKnown(branch),
		Logger:    logger,
	}
}

// Clean runs both passes and returns every attempted removal in order.
// If observe is non-nil it is called with each record as soon as it exists.
func (c *Cleaner) Clean(observe func(*types.LockRemoval)) []*types.LockRemoval {
	var removals []*types.LockRemoval
	record := func(r *types.LockRemoval) {
		removals = append(removals, r)
		if observe != nil {
			observe(r)
		}
	}

	seen := make(map[string]bool)

	finder := c.Finder
	if finder == nil {
		finder = DefaultFinder()
	}
	matches, err := finder.Find(c.GitDir)
	if err != nil {
		c.Logger.Warn("lock file scan failed", "git_dir", c.GitDir, "error", err)
	}
	c.Logger.Debug("lock file scan complete", "git_dir", c.GitDir, "found", len(matches))

	for _, match := range matches {
		abs := filepath.Join(c.GitDir, filepath.FromSlash(match))
		seen[abs] = true
		record(c.removeOne(abs, types.LockSourceScan))
	}

	for _, rel := range c.WellKnown {
		abs := filepath.Join(c.GitDir, filepath.FromSlash(rel))
		if !within(c.GitDir, abs) {
			record(c.failure(abs, types.LockSourceWellKnown, ErrOutsideGitDir))
			continue
		}
		if c.DryRun && seen[abs] {
			continue
		}
		if _, err := os.Lstat(abs); err != nil {
			if !errors.Is(err, fs.ErrNotExist) {
				record(c.failure(abs, types.LockSourceWellKnown, err))
			}
			continue
		}
		record(c.removeOne(abs, types.LockSourceWellKnown))
	}

	return removals
}

func (c *Cleaner) removeOne(abs string, source types.LockSource) *types.LockRemoval {
	r := &types.LockRemoval{
		Path:   c.display(abs),
		Source: source,
	}

	if c.DryRun {
		r.Outcome = types.OutcomeSkipped
		c.Logger.Debug("dry run, keeping lock file", "path", abs)
		return r
	}

	remove := c.remove
	if remove == nil {
		remove = os.Remove
	}
	if err := remove(abs); err != nil {
		return c.failure(abs, source, err)
	}

	r.Outcome = types.OutcomeOK
	c.Logger.Debug("removed lock file", "path", abs, "source", source)
	return r
}

func (c *Cleaner) failure(abs string, source types.LockSource, err error) *types.LockRemoval {
	c.Logger.Warn("could not remove lock file", "path", abs, "error", err)
	return &types.LockRemoval{
		Path:    c.display(abs),
		Source:  source,
		Outcome: types.OutcomeError,
		Error:   err.Error(),
	}
}

// display returns abs relative to the working tree, or abs itself when the
// git directory lives outside it.
func (c *Cleaner) display(abs string) string {
	if c.Dir == "" {
		return abs
	}
	rel, err := filepath.Rel(c.Dir, abs)
	if err != nil || rel == ".." || strings.HasPrefix(rel, ".."+string(filepath.Separator)) {
		return abs
	}
	return rel
}

// within reports whether the cleaned path lies strictly below dir.
func within(dir, path string) bool {
	rel, err := filepath.Rel(filepath.Clean(dir), filepath.Clean(path))
	if err != nil || rel == "." || filepath.IsAbs(rel) {
		return false
	}
	return rel != ".." && !strings.HasPrefix(rel, ".."+string(filepath.Separator))
}
