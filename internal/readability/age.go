package readability

import (
	"fmt"
	"math"
)

// AgeUndefined is the single-value age of a score outside the banded
// range.
const AgeUndefined = -1

// AgeBand is the reader age range a score maps to. The zero value is the
// undefined band.
type AgeBand struct {
	Min int
	Max int
}

// Defined reports whether the band holds a real age range.
func (b AgeBand) Defined() bool {
	return b.Max > 0
}

// Age returns the upper bound of the band, or AgeUndefined.
func (b AgeBand) Age() int {
	if !b.Defined() {
		return AgeUndefined
	}
	return b.Max
}

// String renders the band as "12-13", or "n/a" when undefined.
func (b AgeBand) String() string {
	if !b.Defined() {
		return "n/a"
	}
	return fmt.Sprintf("%d-%d", b.Min, b.Max)
}

// ResolveAgeBand maps score to an age band. The score is rounded up to
// a whole grade first: grades 1 to 13 give [grade+4, grade+5], grade 14
// gives [18, 22], anything else is undefined.
func ResolveAgeBand(score float64) AgeBand {
	if math.IsNaN(score) || score <= 0 || score > 14 {
		return AgeBand{}
	}

	grade := int(math.Ceil(score))
	switch {
	case grade >= 1 && grade <= 13:
		return AgeBand{Min: grade + 4, Max: grade + 5}
	case grade == 14:
		return AgeBand{Min: 18, Max: 22}
	default:
		return AgeBand{}
	}
}
