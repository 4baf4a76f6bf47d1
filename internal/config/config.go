// Package config loads the optional detest.yml configuration file.
package config

import (
	"errors"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"
)

// DefaultFileName is the config file detest looks for under the root
// directory when no --config flag is given.
const DefaultFileName = "detest.yml"

// Config holds runtime configuration for a run.
type Config struct {
	// Globs are the search patterns resolved relative to the root directory.
	// A pattern matching a directory is walked recursively for .rs files.
	Globs []string `yaml:"globs"`

	// Exclude holds regular expressions; a discovered file whose path
	// matches any of them is skipped. Merged with the --exclude flags.
	Exclude []string `yaml:"exclude"`
}

// Default returns the baseline configuration: the crates/tests/examples/swarm
// subtrees, no excludes.
func Default() Config {
	return Config{
		Globs: []string{"crates/*", "tests", "examples", "swarm"},
	}
}

// Load reads configuration from a YAML file. A missing file falls back to
// defaults; a file that exists but does not parse is an error.
func Load(path string) (*Config, error) {
	cfg := Default()

	if path == "" {
		return &cfg, nil
	}

	data, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return &cfg, nil
		}

		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	var loaded Config
	if err := yaml.Unmarshal(data, &loaded); err != nil {
		return nil, fmt.Errorf("config: parse %q: %w", path, err)
	}

	if len(loaded.Globs) > 0 {
		cfg.Globs = loaded.Globs
	}

	cfg.Exclude = loaded.Exclude

	return &cfg, nil
}

// LoadRequired reads configuration from a YAML file that must exist. It is
// used for paths the user named explicitly, where a missing file is a
// mistake rather than an absent optional config.
func LoadRequired(path string) (*Config, error) {
	if _, err := os.Stat(path); err != nil {
		return nil, fmt.Errorf("config: read %q: %w", path, err)
	}

	return Load(path)
}

// MergeExcludes combines the config excludes with patterns supplied via CLI
// flags, flags last.
func (c *Config) MergeExcludes(flags []string) []string {
	if len(flags) == 0 {
		return c.Exclude
	}

	merged := make([]string, 0, len(c.Exclude)+len(flags))
	merged = append(merged, c.Exclude...)
	merged = append(merged, flags...)

	return merged
}
