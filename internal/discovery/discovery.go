// Package discovery finds the documents named by the "files" config key.
package discovery

import (
	"path/filepath"
	"sort"

	"github.com/bmatcuk/doublestar/v4"
	"github.com/jeduden/readage/internal/document"
)

// Options controls how file discovery behaves.
type Options struct {
	// Patterns are doublestar patterns relative to BaseDir. An empty
	// list discovers nothing; invalid patterns are dropped.
	Patterns []string

	// BaseDir is the directory to walk from. Defaults to "." if empty.
	BaseDir string

	// Walk filters the walk: .gitignore, ignore patterns and symlinks.
	Walk document.WalkOpts
}

// Discover walks BaseDir and returns the documents whose path relative
// to BaseDir matches any pattern, sorted.
func Discover(opts Options) ([]string, error) {
	patterns := make([]string, 0, len(opts.Patterns))
	for _, p := range opts.Patterns {
		if doublestar.ValidatePattern(p) {
			patterns = append(patterns, p)
		}
	}
	if len(patterns) == 0 {
		return nil, nil
	}

	baseDir := opts.BaseDir
	if baseDir == "" {
		baseDir = "."
	}
	absBase, err := filepath.Abs(baseDir)
	if err != nil {
		return nil, err
	}

	var result []string
	err = document.Walk(absBase, opts.Walk, func(path string) error {
		rel, err := filepath.Rel(absBase, path)
		if err != nil {
			return nil
		}
		if matchesAny(patterns, filepath.ToSlash(rel)) {
			result = append(result, path)
		}
		return nil
	})
	if err != nil {
		return nil, err
	}

	sort.Strings(result)
	return result, nil
}

func matchesAny(patterns []string, rel string) bool {
	for _, p := range patterns {
		if ok, _ := doublestar.Match(p, rel); ok {
			return true
		}
	}
	return false
}
