package types

import (
	"strings"
	"time"
)

// LockSource identifies how a lock file was selected for removal
type LockSource string

const (
	// LockSourceScan marks a lock found by scanning the git directory
	LockSourceScan LockSource = "scan"
	// LockSourceWellKnown marks one of the fixed well-known lock paths
	LockSourceWellKnown LockSource = "well-known"
)

// LockRemoval records one attempted lock file deletion
type LockRemoval struct {
	// Path is the lock file path, relative to the repository directory when possible
	Path string `json:"path" yaml:"path"`

	// Source is how the path was selected
	Source LockSource `json:"source" yaml:"source"`

	// Outcome is OK, SKIPPED or ERROR
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Error holds the failure message when Outcome is ERROR
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// CommandResult records one executed git command
type CommandResult struct {
	// Args is the full argv, starting with "git"
	Args []string `json:"args" yaml:"args"`

	// ExitCode is the process exit status (-1 if the process never exited)
	ExitCode int `json:"exit_code" yaml:"exit_code"`

	// Stdout is the captured standard output
	Stdout string `json:"stdout,omitempty" yaml:"stdout,omitempty"`

	// Stderr is the captured standard error
	Stderr string `json:"stderr,omitempty" yaml:"stderr,omitempty"`

	// Duration is how long the command ran
	Duration time.Duration `json:"duration_ns" yaml:"duration"`

	// Outcome is OK, FAILED, TIMEOUT, ERROR or SKIPPED
	Outcome Outcome `json:"outcome" yaml:"outcome"`

	// Error describes timeouts and execution failures
	Error string `json:"error,omitempty" yaml:"error,omitempty"`
}

// CommandLine returns the argv joined with spaces
func (c *CommandResult) CommandLine() string {
	return strings.Join(c.Args, " ")
}

// Report is the full record of one resolution attempt
type Report struct {
	// RunID uniquely identifies this attempt
	RunID string `json:"run_id" yaml:"run_id"`

	// Dir is the repository working directory
	Dir string `json:"dir" yaml:"dir"`

	// Remote and Branch name the reset target
	Remote string `json:"remote" yaml:"remote"`
	Branch string `json:"branch" yaml:"branch"`

	// DryRun is true when nothing was modified
	DryRun bool `json:"dry_run" yaml:"dry_run"`

	// StartedAt is when the attempt began
	StartedAt time.Time `json:"started_at" yaml:"started_at"`

	// Locks is every attempted lock removal, in order
	Locks []*LockRemoval `json:"locks" yaml:"locks"`

	// Commands is every executed command, in order
	Commands []*CommandResult `json:"commands" yaml:"commands"`

	// Summary contains counts by outcome
	Summary Summary `json:"summary" yaml:"summary"`
}

// Summary contains counts of operations by outcome
type Summary struct {
	LocksRemoved     int `json:"locks_removed" yaml:"locks_removed"`
	LockErrors       int `json:"lock_errors" yaml:"lock_errors"`
	CommandsOK       int `json:"commands_ok" yaml:"commands_ok"`
	CommandsFailed   int `json:"commands_failed" yaml:"commands_failed"`
	CommandsTimedOut int `json:"commands_timed_out" yaml:"commands_timed_out"`
	CommandErrors    int `json:"command_errors" yaml:"command_errors"`
}

// NewReport creates a new, empty Report
func NewReport(runID, dir, remote, branch string, dryRun bool) *Report {
	return &Report{
		RunID:     runID,
		Dir:       dir,
		Remote:    remote,
		Branch:    branch,
		DryRun:    dryRun,
		StartedAt: time.Now(),
		Locks:     make([]*LockRemoval, 0),
		Commands:  make([]*CommandResult, 0),
	}
}

// AddLock appends a lock removal record
func (r *Report) AddLock(l *LockRemoval) {
	r.Locks = append(r.Locks, l)
}

// AddCommand appends a command result
func (r *Report) AddCommand(c *CommandResult) {
	r.Commands = append(r.Commands, c)
}

// Compute calculates the summary
func (r *Report) Compute() {
	r.Summary = Summary{}
	for _, l := range r.Locks {
		switch l.Outcome {
		case OutcomeOK:
			r.Summary.LocksRemoved++
		case OutcomeError:
			r.Summary.LockErrors++
		}
	}
	for _, c := range r.Commands {
		switch c.Outcome {
		case OutcomeOK:
			r.Summary.CommandsOK++
		case OutcomeFailed:
			r.Summary.CommandsFailed++
		case OutcomeTimeout:
			r.Summary.CommandsTimedOut++
		case OutcomeError:
			r.Summary.CommandErrors++
		}
	}
}

// Clean reports whether every operation succeeded
func (r *Report) Clean() bool {
	for _, l := range r.Locks {
		if !l.Outcome.Succeeded() {
			return false
		}
	}
	for _, c := range r.Commands {
		if !c.Outcome.Succeeded() {
			return false
		}
	}
	return true
}
