// Package mdtext reduces a goldmark AST to the prose a reader sees.
package mdtext

import (
	"strings"

	"github.com/yuin/goldmark/ast"
)

// ExtractPlainText returns the readable text under n. Inline markup is
// dropped but its content kept: link text, emphasis, code spans and
// image alt text. Code blocks and raw HTML are skipped. Block elements
// are separated by a blank line; sentences still end only at a
// terminator, so a heading without one runs into the next block's first
// sentence.
func ExtractPlainText(n ast.Node, source []byte) string {
	var b strings.Builder

	_ = ast.Walk(n, func(n ast.Node, entering bool) (ast.WalkStatus, error) {
		switch node := n.(type) {
		case *ast.FencedCodeBlock, *ast.CodeBlock, *ast.HTMLBlock, *ast.RawHTML:
			return ast.WalkSkipChildren, nil
		case *ast.Text:
			if entering {
				b.Write(node.Segment.Value(source))
				if node.SoftLineBreak() || node.HardLineBreak() {
					b.WriteByte(' ')
				}
			}
		case *ast.String:
			if entering {
				b.Write(node.Value)
			}
		case *ast.AutoLink:
			if entering {
				b.Write(node.URL(source))
			}
			return ast.WalkSkipChildren, nil
		}

		if !entering && n.Type() == ast.TypeBlock {
			endBlock(&b)
		}
		return ast.WalkContinue, nil
	})

	return strings.TrimSpace(b.String())
}

func endBlock(b *strings.Builder) {
	s := b.String()
	switch {
	case s == "", strings.HasSuffix(s, "\n\n"):
	case strings.HasSuffix(s, "\n"):
		b.WriteByte('\n')
	default:
		b.WriteString("\n\n")
	}
}
