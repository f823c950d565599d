package git

import (
	"fmt"
	"strings"
)

// ErrInvalidRefName is returned for a remote or branch name git would refuse.
type ErrInvalidRefName struct {
	Kind   string
	Name   string
	Reason string
}

func (e *ErrInvalidRefName) Error() string {
	return fmt.Sprintf("invalid %s name %q: %s", e.Kind, e.Name, e.Reason)
}

// ValidateBranchName checks name against the rules of git check-ref-format
// for branch names. A valid name always stays inside refs/heads.
func ValidateBranchName(name string) error {
	if reason := refNameProblem(name); reason != "" {
		return &ErrInvalidRefName{Kind: "branch", Name: name, Reason: reason}
	}
	return nil
}

// ValidateRemoteName checks a remote name. Remotes are a single component.
func ValidateRemoteName(name string) error {
	reason := refNameProblem(name)
	if reason == "" && strings.Contains(name, "/") {
		reason = "must not contain '/'"
	}
	if reason != "" {
		return &ErrInvalidRefName{Kind: "remote", Name: name, Reason: reason}
	}
	return nil
}

func refNameProblem(name string) string {
	switch {
	case name == "":
		return "must not be empty"
	case name == "@":
		return "must not be '@'"
	case strings.HasPrefix(name, "-"):
		return "must not start with '-'"
	case strings.HasPrefix(name, "/"), strings.HasSuffix(name, "/"):
		return "must not start or end with '/'"
	case strings.HasSuffix(name, "."):
		return "must not end with '.'"
	case strings.Contains(name, ".."):
		return "must not contain '..'"
	case strings.Contains(name, "//"):
		return "must not contain '//'"
	case strings.Contains(name, "@{"):
		return "must not contain '@{'"
	}

	for _, r := range name {
		if r < 0x20 || r == 0x7f || strings.ContainsRune(" ~^:?*[\\", r) {
			return fmt.Sprintf("must not contain %q", r)
		}
	}

	for _, component := range strings.Split(name, "/") {
		if strings.HasPrefix(component, ".") {
			return "components must not start with '.'"
		}
		if strings.HasSuffix(component, ".lock") {
			return "components must not end with '.lock'"
		}
	}
	return ""
}
