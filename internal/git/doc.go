// Package git runs the system git binary on behalf of gitunjam.
//
// Every command is executed with a bounded wait. The caller gets the
// captured stdout, stderr and exit status back whether or not the command
// succeeded, so a failed step can still be reported in full.
//
// Failures are classified into three kinds:
//   - *GitError: git ran and exited non-zero
//   - *TimeoutError: git did not finish before its deadline and was killed
//   - anything else: git could not be started (ErrGitNotFound, exec errors)
//
// Example usage:
//
//	res, err := git.Exec(ctx, []string{"status"}, &git.RunOptions{
//	    Dir:     repoDir,
//	    Timeout: 30 * time.Second,
//	})
//	if git.IsTimeout(err) {
//	    // report the timeout and move on
//	}
package git
