// Package document loads the texts readage scores: plain-text files,
// Markdown files reduced to prose, and stdin.
package document

import (
	"fmt"
	"path/filepath"
	"strings"

	"github.com/jeduden/readage/internal/mdtext"
	"github.com/yuin/goldmark"
	"github.com/yuin/goldmark/ast"
	"github.com/yuin/goldmark/parser"
	"github.com/yuin/goldmark/text"
	"go.abhg.dev/goldmark/frontmatter"
)

// Options controls how a source is turned into a File.
type Options struct {
	// Markdown parses the source as Markdown and scores only its prose.
	Markdown bool
	// FrontMatter reads and removes a leading YAML front matter block
	// from Markdown sources.
	FrontMatter bool
}

// Settings are the per-document settings read from the "readage" key
// of a Markdown front matter block.
type Settings struct {
	Algorithms []string `yaml:"algorithms"`
	Skip       bool     `yaml:"skip"`
}

type frontMatter struct {
	Readage *Settings `yaml:"readage"`
}

// File holds a loaded document and the text that gets scored.
type File struct {
	Path     string
	Source   []byte
	Markdown bool

	// AST is the parsed Markdown document; nil for plain text.
	AST ast.Node

	// Settings is nil when the document carries no readage front matter.
	Settings *Settings

	text string
}

// NewFile builds a File from source. Plain-text sources are scored as
// they are; Markdown sources are parsed and reduced to plain text.
func NewFile(path string, source []byte, opts Options) (*File, error) {
	f := &File{
		Path:     path,
		Source:   source,
		Markdown: opts.Markdown,
	}

	if !opts.Markdown {
		f.text = string(source)
		return f, nil
	}

	var exts []goldmark.Extender
	if opts.FrontMatter {
		exts = append(exts, &frontmatter.Extender{})
	}
	md := goldmark.New(goldmark.WithExtensions(exts...))
	ctx := parser.NewContext()
	f.AST = md.Parser().Parse(text.NewReader(source), parser.WithContext(ctx))

	if opts.FrontMatter {
		if data := frontmatter.Get(ctx); data != nil {
			var fm frontMatter
			if err := data.Decode(&fm); err != nil {
				return nil, fmt.Errorf("parsing front matter: %w", err)
			}
			f.Settings = fm.Readage
		}
	}

	f.text = mdtext.ExtractPlainText(f.AST, source)
	return f, nil
}

// Text returns the text that gets scored.
func (f *File) Text() string {
	return f.text
}

// Skipped reports whether the document opted out of scoring.
func (f *File) Skipped() bool {
	return f.Settings != nil && f.Settings.Skip
}

// IsMarkdown returns true if the file extension is .md or .markdown.
func IsMarkdown(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".md" || ext == ".markdown"
}

// IsText returns true if the file extension is .txt or .text.
func IsText(path string) bool {
	ext := strings.ToLower(filepath.Ext(path))
	return ext == ".txt" || ext == ".text"
}

// isDocument returns true for the extensions picked up when walking
// directories and expanding globs.
func isDocument(path string) bool {
	return IsMarkdown(path) || IsText(path)
}
