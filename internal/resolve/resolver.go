package resolve

import (
	"context"
	"errors"
	"path/filepath"
	"time"

	"github.com/google/uuid"
	"github.com/hashicorp/go-hclog"

	"github.com/jokarl/gitunjam/internal/git"
	"github.com/jokarl/gitunjam/internal/lockfile"
	"github.com/jokarl/gitunjam/internal/types"
)

// Options configures a resolution run.
type Options struct {
	// Dir is the working tree to reset. Empty means the current directory.
	Dir string

	// Remote and Branch name the reset target of the fourth command.
	Remote string
	Branch string

	// Timeout bounds each git command. Zero means git.DefaultTimeout.
	Timeout time.Duration

	// DryRun reports what would happen; only `git status` is executed.
	DryRun bool

	// LockPatterns and LockExclude select lock files during the scan.
	LockPatterns []string
	LockExclude  []string

	// ExtraLockPaths are removed after the built-in well-known locks.
	ExtraLockPaths []string

	// Env is appended to the environment of every git command.
	Env []string
}

// Observer receives progress as a run happens.
type Observer interface {
	Start(report *types.Report)
	Lock(removal *types.LockRemoval)
	Command(result *types.CommandResult)
	Finish(report *types.Report)
}

// Resolver performs resolution runs.
type Resolver struct {
	opts     Options
	logger   hclog.Logger
	observer Observer
}

// New creates a Resolver. A nil logger discards diagnostics and a nil
// observer discards progress.
func New(opts Options, logger hclog.Logger, observer Observer) *Resolver {
	if logger == nil {
		logger = hclog.NewNullLogger()
	}
	if observer == nil {
		observer = nopObserver{}
	}
	if opts.Remote == "" {
		opts.Remote = git.DefaultRemote
	}
	if opts.Branch == "" {
		opts.Branch = git.DefaultBranch
	}
	if opts.Timeout <= 0 {
		opts.Timeout = git.DefaultTimeout
	}
	return &Resolver{
		opts:     opts,
		logger:   logger,
		observer: observer,
	}
}

// Run removes lock files, then runs every command of git.Plan in order
// regardless of earlier outcomes, and returns the full report.
func (r *Resolver) Run(ctx context.Context) *types.Report {
	dir := r.opts.Dir
	if dir == "" {
		dir = "."
	}
	if abs, err := filepath.Abs(dir); err == nil {
		dir = abs
	} else {
		r.logger.Warn("could not resolve working directory", "dir", dir, "error", err)
	}

	runID := uuid.New().String()
	logger := r.logger.With("run_id", runID)

	r.preflight(ctx, logger)
	dir = r.topLevel(ctx, logger, dir)

	report := types.NewReport(runID, dir, r.opts.Remote, r.opts.Branch, r.opts.DryRun)
	r.observer.Start(report)

	gitDir := r.gitDir(ctx, logger, dir)
	cleaner := lockfile.NewCleaner(dir, gitDir, r.opts.Branch, logger.Named("locks"))
	cleaner.Finder = lockfile.NewFinder(r.opts.LockPatterns, r.opts.LockExclude)
	cleaner.WellKnown = append(cleaner.WellKnown, r.opts.ExtraLockPaths...)
	cleaner.DryRun = r.opts.DryRun
	cleaner.Clean(func(l *types.LockRemoval) {
		report.AddLock(l)
		r.observer.Lock(l)
	})

	r.checkBranch(ctx, logger, dir)

	for _, args := range git.Plan(r.opts.Remote, r.opts.Branch) {
		res := r.runCommand(ctx, logger, dir, args)
		report.AddCommand(res)
		r.observer.Command(res)
	}

	report.Compute()
	logger.Debug("resolution finished",
		"locks_removed", report.Summary.LocksRemoved,
		"commands_ok", report.Summary.CommandsOK,
		"elapsed", time.Since(report.StartedAt))
	r.observer.Finish(report)
	return report
}

// preflight logs problems with the git installation; it never aborts.
func (r *Resolver) preflight(ctx context.Context, logger hclog.Logger) {
	if !git.Available() {
		logger.Warn("git binary not found in PATH; every command will fail")
		return
	}
	v, err := git.CheckMinVersion(ctx)
	var tooOld *git.ErrVersionTooOld
	switch {
	case errors.As(err, &tooOld):
		logger.Warn("git is older than gitunjam supports; lock files of linked worktrees may be missed",
			"version", v.String(), "required", tooOld.Required)
	case err != nil:
		logger.Warn("could not determine git version", "error", err)
	default:
		logger.Debug("git found", "version", v.String(), "target", r.opts.Remote+"/"+r.opts.Branch)
	}
}

// topLevel moves dir up to the root of its working tree so that the scan and
// git clean cover the whole repository. A directory git cannot place is kept.
func (r *Resolver) topLevel(ctx context.Context, logger hclog.Logger, dir string) string {
	root, err := git.FindGitRoot(ctx, dir)
	if err != nil {
		logger.Debug("could not find working tree root, using directory as given", "dir", dir, "error", err)
		return dir
	}
	if root != dir {
		logger.Debug("running from working tree root", "dir", dir, "root", root)
	}
	return filepath.Clean(root)
}

// gitDir locates the metadata directory, falling back to <dir>/.git when
// git itself cannot tell.
func (r *Resolver) gitDir(ctx context.Context, logger hclog.Logger, dir string) string {
	gitDir, err := git.GitDir(ctx, dir)
	if err == nil {
		return gitDir
	}

	fallback, ok := git.DotGitDir(dir)
	if ok {
		logger.Debug("git rev-parse failed, scanning .git directly", "error", err)
	} else {
		logger.Warn("no git metadata directory found", "dir", dir, "error", err)
	}
	return fallback
}

// checkBranch warns when the checked-out branch is not the reset target.
func (r *Resolver) checkBranch(ctx context.Context, logger hclog.Logger, dir string) {
	current, err := git.GetCurrentBranch(ctx, dir)
	if err != nil {
		logger.Debug("could not determine current branch", "error", err)
		return
	}
	if current != "" && current != r.opts.Branch {
		logger.Warn("checked-out branch differs from reset target",
			"current", current, "target", r.opts.Remote+"/"+r.opts.Branch)
	}
}

func (r *Resolver) runCommand(ctx context.Context, logger hclog.Logger, dir string, args []string) *types.CommandResult {
	result := &types.CommandResult{
		Args: append([]string{"git"}, args...),
	}

	if r.opts.DryRun && !git.IsStatus(args) {
		result.Outcome = types.OutcomeSkipped
		return result
	}

	env := append([]string{"GIT_TERMINAL_PROMPT=0"}, r.opts.Env...)
	res, err := git.Exec(ctx, args, &git.RunOptions{
		Dir:     dir,
		Env:     env,
		Timeout: r.opts.Timeout,
	})
	if res != nil {
		result.ExitCode = res.ExitCode
		result.Stdout = res.Stdout
		result.Stderr = res.Stderr
		result.Duration = res.Duration
	}

	switch {
	case err == nil:
		result.Outcome = types.OutcomeOK
	case git.IsTimeout(err):
		result.Outcome = types.OutcomeTimeout
		result.Error = err.Error()
	case git.IsExitError(err):
		result.Outcome = types.OutcomeFailed
		if git.IsAuthError(err) {
			logger.Warn("git could not authenticate with the remote", "command", result.CommandLine())
		}
	default:
		result.Outcome = types.OutcomeError
		result.ExitCode = -1
		result.Error = err.Error()
	}

	logger.Debug("command finished",
		"command", result.CommandLine(),
		"outcome", result.Outcome.String(),
		"exit_code", result.ExitCode,
		"duration", result.Duration)
	return result
}

type nopObserver struct{}

func (nopObserver) Start(*types.Report)          {}
func (nopObserver) Lock(*types.LockRemoval)      {}
func (nopObserver) Command(*types.CommandResult) {}
func (nopObserver) Finish(*types.Report)         {}
