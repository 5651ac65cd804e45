package output

import (
	"fmt"
	"io"
	"strings"

	"github.com/jeduden/readage/internal/document"
	"github.com/jeduden/readage/internal/readability"
)

const (
	ansiCyan   = "\033[36m"
	ansiYellow = "\033[33m"
	ansiReset  = "\033[0m"
)

// TextFormatter outputs reports in human-readable text format.
// When Color is true, the path is printed in cyan and ages in yellow.
// When ShowText is true, the scored text precedes the statistics.
type TextFormatter struct {
	Color    bool
	ShowText bool
}

// Format writes one block per report, separated by a blank line: the
// path, optionally the text, the statistics, one line per metric and
// the average age.
func (f *TextFormatter) Format(w io.Writer, reports []document.Report) error {
	var b strings.Builder
	for i, r := range reports {
		if i > 0 {
			b.WriteString("\n")
		}
		f.writeReport(&b, r)
	}
	_, err := io.WriteString(w, b.String())
	return err
}

func (f *TextFormatter) writeReport(b *strings.Builder, r document.Report) {
	b.WriteString(f.paint(ansiCyan, r.Path))
	b.WriteString("\n")

	if f.ShowText {
		b.WriteString(r.Text)
		b.WriteString("\n\n")
	}

	b.WriteString(r.Stats.String())

	for _, m := range r.Result.Metrics {
		f.writeMetric(b, m)
	}

	avg := r.Result.Average
	if !avg.Defined() {
		b.WriteString("No reader age could be estimated for this text.\n")
		return
	}
	fmt.Fprintf(b, "This text should be understood in average by %s year-olds.\n",
		f.paint(ansiYellow, avg.String()))
}

func (f *TextFormatter) writeMetric(b *strings.Builder, m readability.Metric) {
	if !f.Color {
		b.WriteString(m.String())
		b.WriteString("\n")
		return
	}
	if !m.Band.Defined() {
		fmt.Fprintf(b, "%s: %.2f (age %s).\n", m.Label(), m.Score, f.paint(ansiYellow, "n/a"))
		return
	}
	fmt.Fprintf(b, "%s: %.2f (about %s year-olds).\n",
		m.Label(), m.Score, f.paint(ansiYellow, m.Band.String()))
}

func (f *TextFormatter) paint(color, s string) string {
	if !f.Color {
		return s
	}
	return color + s + ansiReset
}
