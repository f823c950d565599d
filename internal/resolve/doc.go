// Package resolve force-resets a wedged git working tree.
//
// A run removes stale lock files from the repository metadata directory and
// then executes a fixed sequence of git commands:
//
//	git reset --hard HEAD
//	git clean -fd
//	git fetch --all
//	git reset --hard <remote>/<branch>
//	git status
//
// Every step is best effort. Lock removal failures, non-zero exits, timeouts
// and commands that cannot be started are all recorded in the returned
// report and passed to the Observer; none of them stops the run, and Run
// never returns an error.
package resolve
