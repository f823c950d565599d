package git

import (
	"bytes"
	"context"
	"errors"
	"fmt"
	"os"
	"os/exec"
	"strings"
	"time"
)

// DefaultTimeout bounds a single git invocation when RunOptions.Timeout is unset.
const DefaultTimeout = 30 * time.Second

// waitDelay is how long Wait keeps draining output after the process is killed.
const waitDelay = 2 * time.Second

// RunOptions configures how a git command is executed.
type RunOptions struct {
	// Dir is the working directory for the command.
	// If empty, the current working directory is used.
	Dir string

	// Env contains additional environment variables.
	// These are appended to the current environment.
	Env []string

	// Timeout bounds how long the command may run.
	// Zero means DefaultTimeout.
	Timeout time.Duration
}

// Result holds everything captured from one git invocation.
type Result struct {
	Args     []string
	ExitCode int
	Stdout   string
	Stderr   string
	Duration time.Duration
}

// Available returns true if git is installed and in PATH.
func Available() bool {
	_, err := exec.LookPath("git")
	return err == nil
}

// Exec executes a git command and returns everything it captured.
//
// The Result is non-nil whenever git was started, including when it exited
// non-zero (*GitError) or was killed on timeout (*TimeoutError). It is nil
// only when git could not be started at all.
func Exec(ctx context.Context, args []string, opts *RunOptions) (*Result, error) {
	if !Available() {
		return nil, ErrGitNotFound
	}

	timeout := DefaultTimeout
	if opts != nil && opts.Timeout > 0 {
		timeout = opts.Timeout
	}

	ctx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	var stdout, stderr bytes.Buffer
	cmd := exec.CommandContext(ctx, "git", args...)
	cmd.Stdout = &stdout
	cmd.Stderr = &stderr
	cmd.WaitDelay = waitDelay

	// Set working directory if specified
	if opts != nil && opts.Dir != "" {
		cmd.Dir = opts.Dir
	}

	// Inherit environment for credentials, SSH config, etc.
	cmd.Env = os.Environ()
	if opts != nil && len(opts.Env) > 0 {
		cmd.Env = append(cmd.Env, opts.Env...)
	}

	start := time.Now()
	err := cmd.Run()
	res := &Result{
		Args:     args,
		Stdout:   stdout.String(),
		Stderr:   stderr.String(),
		Duration: time.Since(start),
	}
	if err == nil {
		return res, nil
	}

	if errors.Is(ctx.Err(), context.DeadlineExceeded) {
		res.ExitCode = -1
		return res, &TimeoutError{Command: args, Timeout: timeout}
	}
	if errors.Is(ctx.Err(), context.Canceled) {
		return nil, fmt.Errorf("running git %s: %w", strings.Join(args, " "), ctx.Err())
	}

	var exitErr *exec.ExitError
	if errors.As(err, &exitErr) {
		res.ExitCode = exitErr.ExitCode()
		return res, &GitError{
			Command:  args,
			ExitCode: res.ExitCode,
			Stderr:   res.Stderr,
		}
	}

	// The process never started (bad working directory, permissions).
	return nil, fmt.Errorf("running git %s: %w", strings.Join(args, " "), err)
}

// Run executes a git command and returns the trimmed stdout output.
// If the command fails, a *GitError or *TimeoutError is returned.
func Run(ctx context.Context, args []string, opts *RunOptions) (string, error) {
	res, err := Exec(ctx, args, opts)
	if err != nil {
		return "", err
	}
	return strings.TrimSpace(res.Stdout), nil
}
