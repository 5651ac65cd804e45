package document

import (
	"os"
	"path/filepath"
	"strings"

	"github.com/bmatcuk/doublestar/v4"
)

// gitignore accumulates the rules of the .gitignore files loaded so far.
// Directories are loaded parent first, so later rules are deeper and win.
type gitignore struct {
	loaded map[string]bool
	rules  []ignoreRule
}

// ignoreRule is one .gitignore line compiled to a doublestar pattern
// relative to the directory holding the file.
type ignoreRule struct {
	base    string
	pattern string
	negate  bool
	dirOnly bool
}

func newGitignore() *gitignore {
	return &gitignore{loaded: make(map[string]bool)}
}

// loadAncestors loads dir and every directory above it, outermost first.
func (g *gitignore) loadAncestors(dir string) {
	var chain []string
	for d := dir; ; d = filepath.Dir(d) {
		chain = append(chain, d)
		if filepath.Dir(d) == d {
			break
		}
	}
	for i := len(chain) - 1; i >= 0; i-- {
		g.load(chain[i])
	}
}

// load reads dir/.gitignore once. A missing file loads nothing.
func (g *gitignore) load(dir string) {
	if g.loaded[dir] {
		return
	}
	g.loaded[dir] = true

	data, err := os.ReadFile(filepath.Join(dir, ".gitignore"))
	if err != nil {
		return
	}
	for _, line := range strings.Split(string(data), "\n") {
		if r, ok := parseIgnoreLine(dir, line); ok {
			g.rules = append(g.rules, r)
		}
	}
}

// parseIgnoreLine compiles a .gitignore line. Patterns without a slash
// match at any depth; a leading slash anchors to base.
func parseIgnoreLine(base, line string) (ignoreRule, bool) {
	line = trimTrailingSpace(strings.TrimSuffix(line, "\r"))
	if line == "" || strings.HasPrefix(line, "#") {
		return ignoreRule{}, false
	}

	r := ignoreRule{base: base}
	if strings.HasPrefix(line, "!") {
		r.negate = true
		line = line[1:]
	}
	if strings.HasSuffix(line, "/") {
		r.dirOnly = true
		line = strings.TrimSuffix(line, "/")
	}
	switch {
	case strings.HasPrefix(line, "/"):
		line = line[1:]
	case !strings.Contains(line, "/"):
		line = "**/" + line
	}
	if line == "" || !doublestar.ValidatePattern(line) {
		return ignoreRule{}, false
	}
	r.pattern = line
	return r, true
}

// trimTrailingSpace drops trailing blanks unless the last one is escaped.
func trimTrailingSpace(s string) string {
	trimmed := strings.TrimRight(s, " \t")
	if len(trimmed) < len(s) && strings.HasSuffix(trimmed, `\`) {
		return strings.TrimSuffix(trimmed, `\`) + " "
	}
	return trimmed
}

// ignored reports whether absPath is excluded. Anything below an
// excluded directory is excluded too; the last matching rule wins.
func (g *gitignore) ignored(absPath string, isDir bool) bool {
	ignored := false
	for _, r := range g.rules {
		rel, err := filepath.Rel(r.base, absPath)
		if err != nil || rel == "." || strings.HasPrefix(rel, "..") {
			continue
		}
		if r.matches(filepath.ToSlash(rel), isDir) {
			ignored = !r.negate
		}
	}
	return ignored
}

func (r ignoreRule) matches(rel string, isDir bool) bool {
	if isDir || !r.dirOnly {
		if ok, _ := doublestar.Match(r.pattern, rel); ok {
			return true
		}
	}
	// An ancestor directory matching the rule excludes rel as well.
	for i := range rel {
		if rel[i] != '/' {
			continue
		}
		if ok, _ := doublestar.Match(r.pattern, rel[:i]); ok {
			return true
		}
	}
	return false
}
