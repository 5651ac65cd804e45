package document

import (
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"sort"
	"strings"

	"github.com/gobwas/glob"
)

// WalkOpts controls which files a directory walk or glob expansion
// yields. The zero value yields every document.
type WalkOpts struct {
	// Gitignore skips paths excluded by .gitignore files found in the
	// walked tree and its ancestors.
	Gitignore bool

	// NoFollowSymlinks lists glob patterns; symbolic links matching one
	// are skipped.
	NoFollowSymlinks []string

	// Ignore lists glob patterns of paths that are skipped. A matching
	// directory is not descended into.
	Ignore []string
}

// excluded reports whether path is filtered out by the symlink and
// ignore patterns.
func (o WalkOpts) excluded(path string, mode fs.FileMode) bool {
	if mode&fs.ModeSymlink != 0 && Matches(o.NoFollowSymlinks, path) {
		return true
	}
	return Matches(o.Ignore, path)
}

// Matches reports whether path, its cleaned form or its base name matches
// any of the glob patterns. Invalid patterns are skipped.
func Matches(patterns []string, path string) bool {
	if len(patterns) == 0 {
		return false
	}
	candidates := []string{path, filepath.Clean(path), filepath.Base(path)}
	for _, pattern := range patterns {
		g, err := glob.Compile(pattern)
		if err != nil {
			continue
		}
		for _, c := range candidates {
			if g.Match(c) {
				return true
			}
		}
	}
	return false
}

// Walk calls fn for every document under root, in lexical order.
// Directories named .git are never entered.
func Walk(root string, opts WalkOpts, fn func(path string) error) error {
	var git *gitignore
	if opts.Gitignore {
		absRoot, err := filepath.Abs(root)
		if err != nil {
			return err
		}
		git = newGitignore()
		git.loadAncestors(filepath.Dir(absRoot))
	}

	err := filepath.WalkDir(root, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if path != root && skipEntry(path, d, opts, git) {
			if d.IsDir() {
				return filepath.SkipDir
			}
			return nil
		}
		if d.IsDir() {
			if git != nil {
				git.load(absPath(path))
			}
			return nil
		}
		if isDocument(path) {
			return fn(path)
		}
		return nil
	})
	if err != nil {
		return fmt.Errorf("walking directory %q: %w", root, err)
	}
	return nil
}

func skipEntry(path string, d fs.DirEntry, opts WalkOpts, git *gitignore) bool {
	if d.IsDir() && d.Name() == ".git" {
		return true
	}
	if opts.excluded(path, d.Type()) {
		return true
	}
	return git != nil && git.ignored(absPath(path), d.IsDir())
}

func absPath(path string) string {
	abs, err := filepath.Abs(path)
	if err != nil {
		return path
	}
	return abs
}

// Resolve turns command-line arguments into a sorted, deduplicated list
// of document paths. Arguments may be files, directories (walked with
// Walk) or glob patterns. Files named explicitly are returned whatever
// their extension and are never filtered; a nonexistent path that is not
// a glob pattern is an error.
func Resolve(args []string, opts WalkOpts) ([]string, error) {
	seen := make(map[string]bool)
	var result []string
	add := func(path string) error {
		if abs := absPath(path); !seen[abs] {
			seen[abs] = true
			result = append(result, path)
		}
		return nil
	}

	for _, arg := range args {
		if err := resolveArg(arg, opts, add); err != nil {
			return nil, err
		}
	}

	sort.Strings(result)
	return result, nil
}

func resolveArg(arg string, opts WalkOpts, add func(string) error) error {
	if strings.ContainsAny(arg, "*?[") {
		return resolveGlob(arg, opts, add)
	}

	info, err := os.Stat(arg)
	if err != nil {
		return fmt.Errorf("cannot access %q: %w", arg, err)
	}
	if info.IsDir() {
		return Walk(arg, opts, add)
	}
	return add(arg)
}

// resolveGlob expands pattern. Matched directories are walked; matched
// files are kept when they are documents and not excluded by opts.
func resolveGlob(pattern string, opts WalkOpts, add func(string) error) error {
	matches, err := filepath.Glob(pattern)
	if err != nil {
		return fmt.Errorf("invalid glob pattern %q: %w", pattern, err)
	}
	for _, m := range matches {
		linfo, err := os.Lstat(m)
		if err != nil || opts.excluded(m, linfo.Mode()) {
			continue
		}
		info, err := os.Stat(m)
		if err != nil {
			continue
		}
		if info.IsDir() {
			if err := Walk(m, opts, add); err != nil {
				return err
			}
			continue
		}
		if isDocument(m) {
			if err := add(m); err != nil {
				return err
			}
		}
	}
	return nil
}
