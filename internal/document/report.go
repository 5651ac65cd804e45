package document

import (
	"github.com/jeduden/readage/internal/readability"
	"github.com/jeduden/readage/internal/textstats"
)

// Report is the scoring outcome for a single document.
type Report struct {
	Path   string
	Text   string
	Stats  textstats.Stats
	Result readability.Result
}

// Exceeds reports whether the document's average age is defined and
// above maxAge. A non-positive maxAge disables the check.
func (r Report) Exceeds(maxAge float64) bool {
	if maxAge <= 0 || !r.Result.Average.Defined() {
		return false
	}
	return r.Result.Average.Age > maxAge
}
