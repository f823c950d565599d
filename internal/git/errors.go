package git

import (
	"errors"
	"fmt"
	"strings"
	"time"
)

// ErrGitNotFound is returned when git is not installed or not in PATH.
var ErrGitNotFound = errors.New("git is not installed or not in PATH")

// GitError wraps errors from git command execution with full context.
type GitError struct {
	Command  []string
	ExitCode int
	Stderr   string
}

func (e *GitError) Error() string {
	name := ""
	if len(e.Command) > 0 {
		name = e.Command[0]
	}
	if e.Stderr != "" {
		return fmt.Sprintf("git %s failed (exit %d): %s", name, e.ExitCode, strings.TrimSpace(e.Stderr))
	}
	return fmt.Sprintf("git %s failed (exit %d)", name, e.ExitCode)
}

// TimeoutError is returned when a git command exceeds its time limit.
type TimeoutError struct {
	Command []string
	Timeout time.Duration
}

func (e *TimeoutError) Error() string {
	return fmt.Sprintf("git %s timed out after %s", strings.Join(e.Command, " "), e.Timeout)
}

// ErrNotARepository is returned when the directory is not inside a git repository.
type ErrNotARepository struct {
	Dir string
}

func (e *ErrNotARepository) Error() string {
	return fmt.Sprintf("'%s' is not a git repository (or any parent directory)", e.Dir)
}

// ErrVersionTooOld is returned when git version is below the minimum required.
type ErrVersionTooOld struct {
	Current  string
	Required string
}

func (e *ErrVersionTooOld) Error() string {
	return fmt.Sprintf("git version %s is below minimum required %s\n\n"+
		"Please upgrade git: https://git-scm.com/downloads", e.Current, e.Required)
}

// IsTimeout returns true if the error indicates a command timed out.
func IsTimeout(err error) bool {
	var timeoutErr *TimeoutError
	return errors.As(err, &timeoutErr)
}

// IsExitError returns true if git ran and exited with a non-zero status.
func IsExitError(err error) bool {
	var gitErr *GitError
	return errors.As(err, &gitErr)
}

// IsAuthError returns true if the error indicates an authentication failure.
func IsAuthError(err error) bool {
	if err == nil {
		return false
	}

	var gitErr *GitError
	if !errors.As(err, &gitErr) {
		return false
	}

	return isAuthErrorStderr(strings.ToLower(gitErr.Stderr))
}

// isAuthErrorStderr checks stderr content for authentication error patterns.
func isAuthErrorStderr(stderr string) bool {
	// SSH authentication failures
	if strings.Contains(stderr, "permission denied") ||
		strings.Contains(stderr, "publickey") ||
		strings.Contains(stderr, "could not read from remote repository") ||
		strings.Contains(stderr, "host key verification failed") {
		return true
	}

	// HTTPS authentication failures
	if strings.Contains(stderr, "401") ||
		strings.Contains(stderr, "403") ||
		strings.Contains(stderr, "authentication") ||
		strings.Contains(stderr, "invalid credentials") ||
		strings.Contains(stderr, "could not read username") ||
		strings.Contains(stderr, "terminal prompts disabled") {
		return true
	}

	return false
}
