package config

// Default returns the default configuration
func Default() *Config {
	return &Config{
		Version: 1,
		Remote:  "origin",
		Branch:  "main",
		Timeout: "30s",
		Locks: &LocksConfig{
			Patterns: []string{"**/*.lock"},
			Exclude:  []string{},
			Paths:    []string{},
		},
		Output: &OutputConfig{
			Format: "text",
			Color:  "auto",
		},
	}
}
