package git

import (
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"
)

func TestGitError_Error(t *testing.T) {
	tests := []struct {
		name     string
		err      *GitError
		contains []string
	}{
		{
			name: "includes command name",
			err: &GitError{
				Command:  []string{"status"},
				ExitCode: 1,
				Stderr:   "fatal: not a git repository",
			},
			contains: []string{"git", "status", "exit 1", "fatal: not a git repository"},
		},
		{
			name: "includes exit code",
			err: &GitError{
				Command:  []string{"reset", "--hard", "origin/main"},
				ExitCode: 128,
				Stderr:   "fatal: ambiguous argument 'origin/main'",
			},
			contains: []string{"128", "ambiguous argument"},
		},
		{
			name: "empty stderr",
			err: &GitError{
				Command:  []string{"fetch"},
				ExitCode: 1,
			},
			contains: []string{"fetch", "exit 1"},
		},
		{
			name:     "empty command",
			err:      &GitError{ExitCode: 2},
			contains: []string{"exit 2"},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			errMsg := tt.err.Error()
			for _, s := range tt.contains {
				if !strings.Contains(errMsg, s) {
					t.Errorf("Error() = %q, want to contain %q", errMsg, s)
				}
			}
		})
	}
}

func TestTimeoutError_Error(t *testing.T) {
	err := &TimeoutError{Command: []string{"fetch", "--all"}, Timeout: 30 * time.Second}
	want := "git fetch --all timed out after 30s"
	if err.Error() != want {
		t.Errorf("Error() = %q, want %q", err.Error(), want)
	}
}

func TestIsTimeout(t *testing.T) {
	timeout := &TimeoutError{Command: []string{"status"}, Timeout: time.Second}

	tests := []struct {
		name string
		err  error
		want bool
	}{
		{"nil", nil, false},
		{"timeout", timeout, true},
		{"wrapped timeout", fmt.Errorf("step: %w", timeout), true},
		{"git error", &GitError{Command: []string{"status"}, ExitCode: 1}, false},
		{"plain error", errors.New("boom"), false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := IsTimeout(tt.err); got != tt.want {
				t.Errorf("IsTimeout() = %v, want %v", got, tt.want)
			}
		})
	}
}

func TestIsExitError(t *testing.T) {
	if !IsExitError(&GitError{Command: []string{"clean"}, ExitCode: 1}) {
		t.Error("IsExitError(*GitError) = false, want true")
	}
	if IsExitError(&TimeoutError{Command: []string{"clean"}}) {
		t.Error("IsExitError(*TimeoutError) = true, want false")
	}
	if IsExitError(ErrGitNotFound) {
		t.Error("IsExitError(ErrGitNotFound) = true, want false")
	}
}

func TestErrNotARepository_Error(t *testing.T) {
	err := &ErrNotARepository{Dir: "/tmp/nowhere"}
	if !strings.Contains(err.Error(), "/tmp/nowhere") || !strings.Contains(err.Error(), "not a git repository") {
		t.Errorf("Error() = %q", err.Error())
	}
}

func TestIsAuthError(t *testing.T) {
	tests := []struct {
		name   string
		stderr string
		want   bool
	}{
		{"ssh permission denied", "git@github.com: Permission denied (publickey).", true},
		{"ssh host key", "Host key verification failed.", true},
		{"remote unreadable", "fatal: Could not read from remote repository.", true},
		{"https 403", "remote: Write access to repository not granted.\nfatal: unable to access: The requested URL returned error: 403", true},
		{"https prompt disabled", "fatal: could not read Username for 'https://github.com': terminal prompts disabled", true},
		{"not found", "fatal: ambiguous argument 'origin/main': unknown revision", false},
		{"empty", "", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			err := &GitError{Command: []string{"fetch"}, ExitCode: 128, Stderr: tt.stderr}
			if got := IsAuthError(err); got != tt.want {
				t.Errorf("IsAuthError(%q) = %v, want %v", tt.stderr, got, tt.want)
			}
		})
	}

	if IsAuthError(nil) {
		t.Error("IsAuthError(nil) = true")
	}
	if IsAuthError(errors.New("permission denied")) {
		t.Error("IsAuthError should only inspect *GitError")
	}
}

func TestErrGitNotFound(t *testing.T) {
	if !strings.Contains(ErrGitNotFound.Error(), "not installed") {
		t.Errorf("ErrGitNotFound = %q", ErrGitNotFound.Error())
	}
}
