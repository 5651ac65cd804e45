// Package engine scores documents: it reads each source, reduces it to
// plain text, picks the algorithms that apply, and collects reports.
package engine

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"github.com/jeduden/readage/internal/config"
	"github.com/jeduden/readage/internal/document"
	vlog "github.com/jeduden/readage/internal/log"
	"github.com/jeduden/readage/internal/readability"
	"github.com/jeduden/readage/internal/textstats"
)

// Runner drives the scoring pipeline: for each file it reads the content,
// builds a document, determines the effective algorithm selection,
// extracts statistics and aggregates the metrics.
//
// The selection comes from, in increasing precedence: the config, the
// last matching config override, the document's front matter, and
// Algorithms.
type Runner struct {
	Config *config.Config

	// Algorithms, when non-empty, replaces every other selection.
	Algorithms []readability.Algorithm

	// Plain scores Markdown files as plain text.
	Plain bool

	Logger *vlog.Logger
}

// Result holds the output of a scoring run.
type Result struct {
	Reports []document.Report
	Errors  []error
}

// Exceeding returns the reports whose average age is above maxAge.
func (r *Result) Exceeding(maxAge float64) []document.Report {
	var out []document.Report
	for _, rep := range r.Reports {
		if rep.Exceeds(maxAge) {
			out = append(out, rep)
		}
	}
	return out
}

// Run scores the files at the given paths and returns a Result with the
// reports sorted by path and any errors encountered.
func (r *Runner) Run(paths []string) *Result {
	res := &Result{}

	for _, path := range paths {
		if r.isIgnored(path) {
			r.Logger.Printf("ignored: %s", path)
			continue
		}

		source, err := os.ReadFile(path)
		if err != nil {
			res.Errors = append(res.Errors, fmt.Errorf("reading %q: %w", path, err))
			continue
		}

		r.Logger.Printf("file: %s", path)
		r.score(res, path, source)
	}

	sort.SliceStable(res.Reports, func(i, j int) bool {
		return res.Reports[i].Path < res.Reports[j].Path
	})

	return res
}

// RunSource scores in-memory source, typically read from stdin. The path
// is used for reporting, override matching and Markdown detection.
func (r *Runner) RunSource(path string, source []byte) *Result {
	res := &Result{}
	r.score(res, path, source)
	return res
}

func (r *Runner) score(res *Result, path string, source []byte) {
	f, err := document.NewFile(path, source, r.documentOptions(path))
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("parsing %q: %w", path, err))
		return
	}
	if f.Skipped() {
		r.Logger.Printf("skipped: %s", path)
		return
	}

	selected, err := r.selection(f)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("selecting algorithms for %q: %w", path, err))
		return
	}
	r.Logger.Printf("algorithms: %s", algorithmIDs(selected))

	stats, err := textstats.Extract(f.Text())
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("scoring %q: %w", path, err))
		return
	}

	result, err := readability.Aggregate(stats, selected)
	if err != nil {
		res.Errors = append(res.Errors, fmt.Errorf("scoring %q: %w", path, err))
		return
	}

	res.Reports = append(res.Reports, document.Report{
		Path:   path,
		Text:   f.Text(),
		Stats:  stats,
		Result: result,
	})
}

func (r *Runner) documentOptions(path string) document.Options {
	cfg := r.config()
	return document.Options{
		Markdown:    !r.Plain && cfg.MarkdownEnabled() && document.IsMarkdown(path),
		FrontMatter: cfg.FrontMatterEnabled(),
	}
}

func (r *Runner) selection(f *document.File) ([]readability.Algorithm, error) {
	if len(r.Algorithms) > 0 {
		return r.Algorithms, nil
	}
	if f.Settings != nil && len(f.Settings.Algorithms) > 0 {
		return readability.Resolve(f.Settings.Algorithms)
	}
	return config.Effective(r.config(), f.Path).Resolve()
}

// isIgnored returns true if the file path matches any of the configured
// ignore patterns.
func (r *Runner) isIgnored(path string) bool {
	return document.Matches(r.config().Ignore, path)
}

func (r *Runner) config() *config.Config {
	if r.Config == nil {
		return config.Defaults()
	}
	return r.Config
}

func algorithmIDs(algs []readability.Algorithm) string {
	ids := make([]string, len(algs))
	for i, a := range algs {
		ids[i] = a.ID()
	}
	return strings.Join(ids, ",")
}
