package document

import (
	"testing"

	"github.com/yuin/goldmark/ast"
)

func TestNewFile_PlainText(t *testing.T) {
	src := []byte("# Not a heading\nJust *text*.\n")
	f, err := NewFile("notes.txt", src, Options{})
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}
	if f.AST != nil {
		t.Error("expected nil AST for plain text")
	}
	if f.Text() != string(src) {
		t.Errorf("Text() = %q, want %q", f.Text(), src)
	}
}

func TestNewFile_Markdown(t *testing.T) {
	src := []byte("# Heading\n\nSome *text* with a [link](https://example.com).\n\n```go\nfmt.Println()\n```\n")
	f, err := NewFile("doc.md", src, Options{Markdown: true})
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}
	if f.AST == nil || f.AST.Kind() != ast.KindDocument {
		t.Fatalf("expected Document node, got %v", f.AST)
	}
	want := "Heading\n\nSome text with a link."
	if f.Text() != want {
		t.Errorf("Text() = %q, want %q", f.Text(), want)
	}
}

func TestNewFile_FrontMatterSettings(t *testing.T) {
	src := []byte("---\ntitle: Guide\nreadage:\n  algorithms: [ari, smog]\n---\nBody text.\n")
	f, err := NewFile("doc.md", src, Options{Markdown: true, FrontMatter: true})
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}
	if f.Settings == nil {
		t.Fatal("expected settings from front matter")
	}
	if len(f.Settings.Algorithms) != 2 || f.Settings.Algorithms[1] != "smog" {
		t.Errorf("Algorithms = %v, want [ari smog]", f.Settings.Algorithms)
	}
	if f.Skipped() {
		t.Error("expected document not to be skipped")
	}
	if f.Text() != "Body text." {
		t.Errorf("Text() = %q, want %q", f.Text(), "Body text.")
	}
}

func TestNewFile_FrontMatterSkip(t *testing.T) {
	src := []byte("---\nreadage:\n  skip: true\n---\nBody.\n")
	f, err := NewFile("doc.md", src, Options{Markdown: true, FrontMatter: true})
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}
	if !f.Skipped() {
		t.Error("expected document to be skipped")
	}
}

func TestNewFile_FrontMatterWithoutReadageKey(t *testing.T) {
	src := []byte("---\ntitle: Guide\n---\nBody.\n")
	f, err := NewFile("doc.md", src, Options{Markdown: true, FrontMatter: true})
	if err != nil {
		t.Fatalf("NewFile returned error: %v", err)
	}
	if f.Settings != nil {
		t.Errorf("expected nil settings, got %+v", f.Settings)
	}
}

func TestNewFile_InvalidFrontMatter(t *testing.T) {
	src := []byte("---\nreadage: [unclosed\n---\nBody.\n")
	if _, err := NewFile("doc.md", src, Options{Markdown: true, FrontMatter: true}); err == nil {
		t.Fatal("expected error for invalid front matter")
	}
}

func TestIsMarkdownAndIsText(t *testing.T) {
	if !IsMarkdown("a/B.MD") || !IsMarkdown("c.markdown") || IsMarkdown("d.txt") {
		t.Error("IsMarkdown mismatch")
	}
	if !IsText("a.txt") || !IsText("b.TEXT") || IsText("c.md") {
		t.Error("IsText mismatch")
	}
}
