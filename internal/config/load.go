package config

import (
	"fmt"
	"os"
	"path/filepath"

	"gopkg.in/yaml.v3"
)

// FileName is the name of the config file looked up by Discover.
const FileName = ".readage.yml"

// Load reads, validates and parses a config file at the given path.
func Load(path string) (*Config, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading config file: %w", err)
	}

	var raw map[string]any
	if err := yaml.Unmarshal(data, &raw); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if err := validate(raw); err != nil {
		return nil, fmt.Errorf("validating config file: %w", err)
	}

	var cfg Config
	if err := yaml.Unmarshal(data, &cfg); err != nil {
		return nil, fmt.Errorf("parsing config file: %w", err)
	}
	if _, err := cfg.Algorithms.Resolve(); err != nil {
		return nil, fmt.Errorf("config algorithms: %w", err)
	}
	for i, o := range cfg.Overrides {
		if _, err := o.Algorithms.Resolve(); err != nil {
			return nil, fmt.Errorf("config overrides[%d] algorithms: %w", i, err)
		}
	}

	return &cfg, nil
}

// Discover walks up the directory tree from startDir looking for a
// .readage.yml config file. It stops searching when it encounters a .git
// directory (the repository root) or reaches the filesystem root.
// Returns the path to the config file, or "" if none was found.
func Discover(startDir string) (string, error) {
	dir, err := filepath.Abs(startDir)
	if err != nil {
		return "", fmt.Errorf("resolving absolute path: %w", err)
	}

	for {
		candidate := filepath.Join(dir, FileName)
		if _, err := os.Stat(candidate); err == nil {
			return candidate, nil
		}

		gitDir := filepath.Join(dir, ".git")
		if info, err := os.Stat(gitDir); err == nil && info.IsDir() {
			return "", nil
		}

		parent := filepath.Dir(dir)
		if parent == dir {
			return "", nil
		}
		dir = parent
	}
}

// Defaults returns the built-in configuration: every algorithm,
// Markdown stripping and front matter enabled, no age limit.
func Defaults() *Config {
	t := true
	fm := true
	return &Config{
		Algorithms:  Select("all"),
		Markdown:    &t,
		FrontMatter: &fm,
	}
}
