package config

import (
	"fmt"
	"path"
	"strings"

	"github.com/jokarl/gitunjam/internal/git"
	"github.com/jokarl/gitunjam/internal/lockfile"
)

// Validate validates the configuration
func Validate(cfg *Config) error {
	// Version check
	if cfg.Version != 1 {
		return fmt.Errorf("unsupported config version: %d (only version 1 is supported)", cfg.Version)
	}

	if err := git.ValidateRemoteName(cfg.Remote); err != nil {
		return err
	}
	if err := git.ValidateBranchName(cfg.Branch); err != nil {
		return err
	}

	timeout, err := cfg.TimeoutDuration()
	if err != nil {
		return err
	}
	if timeout <= 0 {
		return fmt.Errorf("invalid timeout %q: must be positive", cfg.Timeout)
	}

	// Validate output format
	if cfg.Output != nil && cfg.Output.Format != "" {
		switch cfg.Output.Format {
		case "text", "json", "yaml":
			// valid
		default:
			return fmt.Errorf("invalid output format: %s (must be 'text', 'json', or 'yaml')", cfg.Output.Format)
		}
	}

	// Validate output color
	if cfg.Output != nil && cfg.Output.Color != "" {
		switch cfg.Output.Color {
		case "auto", "always", "never":
			// valid
		default:
			return fmt.Errorf("invalid color mode: %s (must be 'auto', 'always', or 'never')", cfg.Output.Color)
		}
	}

	if cfg.Locks != nil {
		if err := lockfile.NewFinder(cfg.Locks.Patterns, cfg.Locks.Exclude).Validate(); err != nil {
			return err
		}
		for _, p := range cfg.Locks.Paths {
			if err := validateLockPath(p); err != nil {
				return err
			}
		}
	}

	return nil
}

// validateLockPath ensures an extra lock path stays inside the git directory
func validateLockPath(p string) error {
	if p == "" || path.IsAbs(p) || strings.HasPrefix(p, "/") {
		return fmt.Errorf("invalid lock path %q: must be relative to the git directory", p)
	}
	clean := path.Clean(p)
	if clean == ".." || strings.HasPrefix(clean, "../") {
		return fmt.Errorf("invalid lock path %q: must not leave the git directory", p)
	}
	if !strings.HasSuffix(clean, ".lock") {
		return fmt.Errorf("invalid lock path %q: must end in .lock", p)
	}
	return nil
}
