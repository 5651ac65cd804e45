package config

import (
	"github.com/gobwas/glob"
)

// Merge merges a loaded config on top of defaults. Scalar settings the
// loaded config leaves unset keep their default; Files, Ignore,
// NoFollowSymlinks and Overrides come from the loaded config only.
func Merge(defaults, loaded *Config) *Config {
	merged := *defaults
	merged.Files = nil
	merged.Ignore = nil
	merged.NoFollowSymlinks = nil
	merged.Overrides = nil
	if loaded == nil {
		return &merged
	}

	if loaded.Algorithms.Set {
		merged.Algorithms = loaded.Algorithms
	}
	if loaded.MaxAge > 0 {
		merged.MaxAge = loaded.MaxAge
	}
	if loaded.Markdown != nil {
		merged.Markdown = loaded.Markdown
	}
	if loaded.FrontMatter != nil {
		merged.FrontMatter = loaded.FrontMatter
	}
	merged.Files = loaded.Files
	merged.Ignore = loaded.Ignore
	merged.NoFollowSymlinks = loaded.NoFollowSymlinks
	merged.Overrides = loaded.Overrides

	return &merged
}

// Effective returns the algorithm selection for a given file path. It
// starts with the top-level selection and then applies each override
// whose file patterns match filePath, in order. Later overrides take
// precedence.
func Effective(cfg *Config, filePath string) Selection {
	sel := cfg.Algorithms
	for _, o := range cfg.Overrides {
		if o.Algorithms.Set && MatchesAny(o.Files, filePath) {
			sel = o.Algorithms
		}
	}
	return sel
}

// MarkdownEnabled returns whether Markdown stripping is on. Defaults to
// true if not set.
func (c *Config) MarkdownEnabled() bool {
	return c.Markdown == nil || *c.Markdown
}

// FrontMatterEnabled returns whether front matter is honored. Defaults
// to true if not set.
func (c *Config) FrontMatterEnabled() bool {
	return c.FrontMatter == nil || *c.FrontMatter
}

// MatchesAny returns true if filePath matches any of the given glob
// patterns. Invalid patterns are skipped.
func MatchesAny(patterns []string, filePath string) bool {
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		if g.Match(filePath) {
			return true
		}
	}
	return false
}
