package git

import (
	"testing"

	"github.com/jokarl/gitunjam/internal/testutil"
)

func skipWithoutGit(t *testing.T) {
	t.Helper()
	testutil.SkipWithoutGit(t)
}

func initGitRepo(t *testing.T, dir string) {
	t.Helper()
	testutil.InitRepo(t, dir)
}

func runGitCmd(t *testing.T, dir string, args ...string) {
	t.Helper()
	testutil.Git(t, dir, args...)
}

func installFakeGit(t *testing.T, script string) {
	t.Helper()
	testutil.FakeGit(t, script)
}
