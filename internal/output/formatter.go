// Package output renders scoring reports as text or JSON.
package output

import (
	"io"

	"github.com/jeduden/readage/internal/document"
)

// Formatter defines the interface for outputting reports.
type Formatter interface {
	Format(w io.Writer, reports []document.Report) error
}
