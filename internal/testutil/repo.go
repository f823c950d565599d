// Package testutil builds throwaway git repositories for tests.
package testutil

import (
	"os"
	"os/exec"
	"path/filepath"
	"runtime"
	"testing"
)

// SkipWithoutGit skips the test when no git binary is installed.
func SkipWithoutGit(t *testing.T) {
	t.Helper()
	if _, err := exec.LookPath("git"); err != nil {
		t.Skip("git is not installed, skipping test")
	}
}

// InitRepo initialises dir as a repository on branch main with one commit.
func InitRepo(t *testing.T, dir string) {
	t.Helper()

	Git(t, dir, "init")
	Git(t, dir, "symbolic-ref", "HEAD", "refs/heads/main")
	Git(t, dir, "config", "user.email", "test@example.com")
	Git(t, dir, "config", "user.name", "Test")
	Git(t, dir, "config", "commit.gpgsign", "false")

	WriteFile(t, filepath.Join(dir, "README.md"), "# test\n")
	Git(t, dir, "add", "README.md")
	Git(t, dir, "commit", "-m", "initial commit")
}

// CloneWithUpstream creates a bare upstream with one commit on main and a
// working clone tracking it as origin. Returns the working tree path.
func CloneWithUpstream(t *testing.T) string {
	t.Helper()
	root := t.TempDir()

	seed := filepath.Join(root, "seed")
	if err := os.Mkdir(seed, 0755); err != nil {
		t.Fatal(err)
	}
	InitRepo(t, seed)

	bare := filepath.Join(root, "upstream.git")
	Git(t, root, "clone", "--bare", seed, bare)

	work := filepath.Join(root, "work")
	Git(t, root, "clone", bare, work)
	Git(t, work, "config", "user.email", "test@example.com")
	Git(t, work, "config", "user.name", "Test")
	Git(t, work, "config", "commit.gpgsign", "false")
	return work
}

// Git runs git in dir and fails the test on error.
func Git(t *testing.T, dir string, args ...string) string {
	t.Helper()
	cmd := exec.Command("git", args...)
	cmd.Dir = dir
	out, err := cmd.CombinedOutput()
	if err != nil {
		t.Fatalf("git %v failed: %v\n%s", args, err, out)
	}
	return string(out)
}

// WriteFile writes content to path, creating parent directories.
func WriteFile(t *testing.T, path, content string) {
	t.Helper()
	if err := os.MkdirAll(filepath.Dir(path), 0755); err != nil {
		t.Fatal(err)
	}
	if err := os.WriteFile(path, []byte(content), 0644); err != nil { //nolint:gosec // test file
		t.Fatal(err)
	}
}

// FakeGit puts an executable shell script named git first on PATH for the
// rest of the test. The script body follows a #!/bin/sh line.
func FakeGit(t *testing.T, script string) {
	t.Helper()
	if runtime.GOOS == "windows" {
		t.Skip("fake git script requires a POSIX shell")
	}

	binDir := t.TempDir()
	path := filepath.Join(binDir, "git")
	if err := os.WriteFile(path, []byte("#!/bin/sh\n"+script), 0755); err != nil { //nolint:gosec // executable test script
		t.Fatalf("failed to write fake git: %v", err)
	}
	t.Setenv("PATH", binDir+string(os.PathListSeparator)+os.Getenv("PATH"))
}
