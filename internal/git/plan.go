package git

// ResetMode selects how much of the tree a reset rewrites.
type ResetMode string

const (
	// ResetHard resets the index and working tree. Any changes to tracked
	// files since <commit> are discarded.
	ResetHard ResetMode = "hard"
)

// ResetArgs returns the arguments for `git reset --<mode> <ref>`.
func ResetArgs(mode ResetMode, ref string) []string {
	return []string{"reset", "--" + string(mode), ref}
}

// Default remote and branch used as the reset target.
const (
	DefaultRemote = "origin"
	DefaultBranch = "main"
)

// Plan returns the fixed, ordered command sequence that forces a working
// tree back to the state of <remote>/<branch>:
//
//  1. git reset --hard HEAD
//  2. git clean -fd
//  3. git fetch --all
//  4. git reset --hard <remote>/<branch>
//  5. git status
//
// Empty remote or branch fall back to DefaultRemote and DefaultBranch.
func Plan(remote, branch string) [][]string {
	if remote == "" {
		remote = DefaultRemote
	}
	if branch == "" {
		branch = DefaultBranch
	}
	return [][]string{
		ResetArgs(ResetHard, "HEAD"),
		{"clean", "-fd"},
		{"fetch", "--all"},
		ResetArgs(ResetHard, remote+"/"+branch),
		{"status"},
	}
}

// IsStatus reports whether args is a `git status` invocation.
func IsStatus(args []string) bool {
	return len(args) > 0 && args[len(args)-1] == "status"
}
