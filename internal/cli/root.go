package cli

import (
	"context"
	"io"
	"os"
	"time"

	"github.com/hashicorp/go-hclog"
	"github.com/spf13/cobra"
	"golang.org/x/term"

	"github.com/jokarl/gitunjam/internal/config"
	"github.com/jokarl/gitunjam/internal/git"
	"github.com/jokarl/gitunjam/internal/output"
	"github.com/jokarl/gitunjam/internal/resolve"
)

var (
	versionStr string
	commitStr  string
	dateStr    string
)

var (
	dirFlag     string
	configFlag  string
	remoteFlag  string
	branchFlag  string
	timeoutFlag time.Duration
	formatFlag  string
	colorFlag   string
	dryRunFlag  bool
	verboseFlag bool
)

// SetVersionInfo sets the version information for the CLI
func SetVersionInfo(version, commit, date string) {
	versionStr = version
	commitStr = commit
	dateStr = date
}

var rootCmd = &cobra.Command{
	Use:   "gitunjam",
	Short: "Force-reset a wedged git working tree",
	Long: `gitunjam removes stale git lock files and forces the working tree back to
the state of the remote branch.

It deletes every *.lock file under the repository metadata directory plus the
well-known index, HEAD, config and branch locks, then runs:

  git reset --hard HEAD
  git clean -fd
  git fetch --all
  git reset --hard <remote>/<branch>
  git status

Every step is attempted even when an earlier one fails. Read the transcript to
judge the result: the exit status is always 0.

WARNING: uncommitted changes and untracked files are discarded.`,
	Args:         cobra.NoArgs,
	SilenceUsage: true,
	RunE:         runResolve,
}

// Execute runs the root command
func Execute() error {
	return rootCmd.Execute()
}

func init() {
	rootCmd.Flags().StringVarP(&dirFlag, "dir", "C", "", "Working tree to reset (default: current directory)")
	rootCmd.Flags().StringVarP(&configFlag, "config", "c", "", "Path to config file (default: .gitunjam.hcl)")
	rootCmd.Flags().StringVar(&remoteFlag, "remote", "", "Remote to reset to (default: origin)")
	rootCmd.Flags().StringVar(&branchFlag, "branch", "", "Branch to reset to (default: main)")
	rootCmd.Flags().DurationVar(&timeoutFlag, "timeout", 0, "Time limit for each git command (default: 30s)")
	rootCmd.Flags().StringVar(&formatFlag, "format", "", "Output format: text, json, yaml")
	rootCmd.Flags().StringVar(&colorFlag, "color", "", "Color mode: auto, always, never")
	rootCmd.Flags().BoolVarP(&dryRunFlag, "dry-run", "n", false, "Show what would be removed and reset without changing anything")
	rootCmd.Flags().BoolVarP(&verboseFlag, "verbose", "v", false, "Log diagnostics to stderr")
}

func runResolve(cmd *cobra.Command, args []string) error {
	logger := newLogger(cmd.ErrOrStderr(), verboseFlag)

	cfg, err := config.Load(configFlag, dirFlag)
	if err != nil {
		logger.Warn("could not load config, using defaults", "error", err)
		cfg = config.Default()
	} else if cfg.ConfigPath() != "" {
		logger.Debug("loaded config", "path", cfg.ConfigPath())
	}

	opts := buildOptions(cfg, logger)

	format := cfg.Output.Format
	if formatFlag != "" {
		format = formatFlag
	}
	if !output.IsValidFormat(format) {
		logger.Warn("unknown output format, using text", "format", format)
		format = string(output.FormatText)
	}

	colorMode := cfg.Output.Color
	if colorFlag != "" {
		colorMode = colorFlag
	}

	out := cmd.OutOrStdout()
	stream := output.NewStream(out, output.Format(format), shouldUseColor(colorMode, out))

	ctx := cmd.Context()
	if ctx == nil {
		ctx = context.Background()
	}
	resolve.New(opts, logger, stream).Run(ctx)

	if err := stream.Err(); err != nil {
		logger.Error("failed to render output", "error", err)
	}
	return nil
}

// buildOptions merges the config file with command-line overrides
func buildOptions(cfg *config.Config, logger hclog.Logger) resolve.Options {
	opts := resolve.Options{
		Dir:    dirFlag,
		Remote: cfg.Remote,
		Branch: cfg.Branch,
		DryRun: dryRunFlag,
	}
	if cfg.Locks != nil {
		opts.LockPatterns = cfg.Locks.Patterns
		opts.LockExclude = cfg.Locks.Exclude
		opts.ExtraLockPaths = cfg.Locks.Paths
	}

	if timeout, err := cfg.TimeoutDuration(); err == nil {
		opts.Timeout = timeout
	} else {
		logger.Warn("invalid timeout in config, using default", "error", err)
	}

	// An unusable target flag is ignored like an unusable config file.
	if remoteFlag != "" {
		if err := git.ValidateRemoteName(remoteFlag); err != nil {
			logger.Warn("ignoring --remote", "error", err, "remote", opts.Remote)
		} else {
			opts.Remote = remoteFlag
		}
	}
	if branchFlag != "" {
		if err := git.ValidateBranchName(branchFlag); err != nil {
			logger.Warn("ignoring --branch", "error", err, "branch", opts.Branch)
		} else {
			opts.Branch = branchFlag
		}
	}
	if timeoutFlag > 0 {
		opts.Timeout = timeoutFlag
	}
	return opts
}

func newLogger(w io.Writer, verbose bool) hclog.Logger {
	level := hclog.Warn
	if verbose {
		level = hclog.Debug
	}
	return hclog.New(&hclog.LoggerOptions{
		Name:   "gitunjam",
		Level:  level,
		Output: w,
	})
}

func shouldUseColor(mode string, w io.Writer) bool {
	switch mode {
	case "always":
		return true
	case "never":
		return false
	default: // auto
		if os.Getenv("NO_COLOR") != "" {
			return false
		}
		f, ok := w.(*os.File)
		if !ok {
			return false
		}
		return term.IsTerminal(int(f.Fd()))
	}
}
