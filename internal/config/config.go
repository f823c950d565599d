// Package config handles loading and validating gitunjam configuration files.
package config

import (
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/hashicorp/hcl/v2"
	"github.com/hashicorp/hcl/v2/gohcl"
	"github.com/hashicorp/hcl/v2/hclparse"
	"github.com/hashicorp/hcl/v2/hclsyntax"
	"github.com/zclconf/go-cty/cty"
)

// FileName is the configuration file looked up in the repository and cwd.
const FileName = ".gitunjam.hcl"

// Config represents the gitunjam configuration
type Config struct {
	Version int           `hcl:"version,attr"`
	Remote  string        `hcl:"remote,optional"`
	Branch  string        `hcl:"branch,optional"`
	Timeout string        `hcl:"timeout,optional"`
	Locks   *LocksConfig  `hcl:"locks,block"`
	Output  *OutputConfig `hcl:"output,block"`

	// Internal: path to the loaded config file (empty if using defaults)
	configPath string
}

// LocksConfig defines which lock files are removed
type LocksConfig struct {
	// Patterns are doublestar globs relative to the git directory
	Patterns []string `hcl:"patterns,optional"`
	// Exclude removes scan matches from consideration
	Exclude []string `hcl:"exclude,optional"`
	// Paths are extra well-known locks, relative to the git directory
	Paths []string `hcl:"paths,optional"`
}

// OutputConfig defines output settings
type OutputConfig struct {
	Format string `hcl:"format,optional"`
	Color  string `hcl:"color,optional"`
}

// ConfigPath returns the path to the loaded config file, or empty if using defaults
func (c *Config) ConfigPath() string {
	return c.configPath
}

// TimeoutDuration returns the per-command timeout
func (c *Config) TimeoutDuration() (time.Duration, error) {
	d, err := time.ParseDuration(c.Timeout)
	if err != nil {
		return 0, fmt.Errorf("invalid timeout %q: %w", c.Timeout, err)
	}
	return d, nil
}

// Load loads configuration from the specified path or searches for it
// Search order: configPath (if provided), .gitunjam.hcl in repoDir, .gitunjam.hcl in cwd
func Load(configPath, repoDir string) (*Config, error) {
	var path string

	if configPath != "" {
		// Explicit path provided
		path = configPath
		if _, err := os.Stat(path); err != nil {
			return nil, fmt.Errorf("config file not found: %s", path)
		}
	} else {
		// Search for config file
		path = findConfigFile(repoDir)
	}

	if path == "" {
		// No config found, use defaults
		return Default(), nil
	}

	return loadFromFile(path)
}

// findConfigFile searches for .gitunjam.hcl in standard locations
func findConfigFile(repoDir string) string {
	if repoDir != "" {
		repoPath := filepath.Join(repoDir, FileName)
		if _, err := os.Stat(repoPath); err == nil {
			return repoPath
		}
	}

	cwd, err := os.Getwd()
	if err == nil {
		cwdPath := filepath.Join(cwd, FileName)
		if _, err := os.Stat(cwdPath); err == nil {
			return cwdPath
		}
	}

	return ""
}

// loadFromFile loads and parses a configuration file
func loadFromFile(path string) (*Config, error) {
	parser := hclparse.NewParser()
	file, diags := parser.ParseHCLFile(path)
	if diags.HasErrors() {
		return nil, fmt.Errorf("failed to parse config file: %s", formatDiagnostics(diags))
	}

	var config Config
	decodeDiags := gohcl.DecodeBody(file.Body, evalContext(), &config)
	if decodeDiags.HasErrors() {
		return nil, fmt.Errorf("failed to decode config: %s", formatDiagnostics(decodeDiags))
	}

	config.configPath = path

	// Apply defaults for missing optional values
	applyDefaults(&config)

	// Validate
	if err := Validate(&config); err != nil {
		return nil, err
	}

	return &config, nil
}

// evalContext exposes the process environment to expressions as env.NAME
func evalContext() *hcl.EvalContext {
	vars := make(map[string]cty.Value)
	for _, kv := range os.Environ() {
		name, value, ok := strings.Cut(kv, "=")
		if !ok || !hclsyntax.ValidIdentifier(name) {
			continue
		}
		vars[name] = cty.StringVal(value)
	}

	return &hcl.EvalContext{
		Variables: map[string]cty.Value{
			"env": cty.ObjectVal(vars),
		},
	}
}

// formatDiagnostics formats HCL diagnostics into a readable error string
func formatDiagnostics(diags hcl.Diagnostics) string {
	if len(diags) == 0 {
		return ""
	}

	var b strings.Builder
	for i, diag := range diags {
		if i > 0 {
			b.WriteString("; ")
		}
		if diag.Subject != nil {
			fmt.Fprintf(&b, "%s:%d: ", diag.Subject.Filename, diag.Subject.Start.Line)
		}
		b.WriteString(diag.Summary)
		if diag.Detail != "" {
			b.WriteString(": ")
			b.WriteString(diag.Detail)
		}
	}
	return b.String()
}

// applyDefaults fills in default values for missing optional settings
func applyDefaults(cfg *Config) {
	defaults := Default()

	if cfg.Remote == "" {
		cfg.Remote = defaults.Remote
	}
	if cfg.Branch == "" {
		cfg.Branch = defaults.Branch
	}
	if cfg.Timeout == "" {
		cfg.Timeout = defaults.Timeout
	}

	if cfg.Locks == nil {
		cfg.Locks = defaults.Locks
	} else if len(cfg.Locks.Patterns) == 0 {
		cfg.Locks.Patterns = defaults.Locks.Patterns
	}

	if cfg.Output == nil {
		cfg.Output = defaults.Output
	} else {
		if cfg.Output.Format == "" {
			cfg.Output.Format = defaults.Output.Format
		}
		if cfg.Output.Color == "" {
			cfg.Output.Color = defaults.Output.Color
		}
	}
}
