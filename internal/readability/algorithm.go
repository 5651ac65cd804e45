// Package readability scores text statistics with the classical
// readability formulas and maps each score to an estimated reader age.
package readability

import (
	"fmt"
	"math"
	"sort"
	"strings"

	"github.com/jeduden/readage/internal/textstats"
)

// Algorithm identifies one readability formula. The set is closed and
// its declared order is the order results are reported in.
type Algorithm int

// Supported algorithms, in declared order.
const (
	ARI Algorithm = iota
	FleschKincaid
	SMOG
	ColemanLiau
)

type definition struct {
	id          string
	name        string
	label       string
	description string
}

var definitions = [...]definition{
	ARI: {
		id:          "ARI",
		name:        "ari",
		label:       "Automated Readability Index",
		description: "Characters per word and words per sentence.",
	},
	FleschKincaid: {
		id:          "FK",
		name:        "fk",
		label:       "Flesch–Kincaid readability tests",
		description: "Words per sentence and syllables per word.",
	},
	SMOG: {
		id:          "SMOG",
		name:        "smog",
		label:       "Simple Measure of Gobbledygook",
		description: "Polysyllabic words per 30 sentences.",
	},
	ColemanLiau: {
		id:          "CL",
		name:        "cl",
		label:       "Coleman–Liau index",
		description: "Letters and sentences per 100 words.",
	},
}

// All returns every algorithm in declared order.
func All() []Algorithm {
	return []Algorithm{ARI, FleschKincaid, SMOG, ColemanLiau}
}

// Valid reports whether a is one of the declared algorithms.
func (a Algorithm) Valid() bool {
	return a >= ARI && a <= ColemanLiau
}

// ID returns the short upper-case identifier, e.g. "FK".
func (a Algorithm) ID() string {
	if !a.Valid() {
		return fmt.Sprintf("Algorithm(%d)", int(a))
	}
	return definitions[a].id
}

// Name returns the lower-case name used in flags and config files.
func (a Algorithm) Name() string {
	if !a.Valid() {
		return ""
	}
	return definitions[a].name
}

// Label returns the display label.
func (a Algorithm) Label() string {
	if !a.Valid() {
		return a.ID()
	}
	return definitions[a].label
}

// Description returns a one-line summary of what the formula measures.
func (a Algorithm) Description() string {
	if !a.Valid() {
		return ""
	}
	return definitions[a].description
}

// String implements fmt.Stringer.
func (a Algorithm) String() string { return a.ID() }

// Score computes the raw score of a for s. The Stats contract
// guarantees non-zero word and sentence counts.
func Score(a Algorithm, s textstats.Stats) float64 {
	chars := float64(s.Characters)
	words := float64(s.Words)
	sentences := float64(s.Sentences)

	switch a {
	case ARI:
		return 4.71*(chars/words) + 0.5*(words/sentences) - 21.43
	case FleschKincaid:
		return 0.39*(words/sentences) + 11.8*(float64(s.Syllables)/words) - 15.59
	case SMOG:
		return 1.043*math.Sqrt(float64(s.Polysyllables)*30/sentences) + 3.1291
	case ColemanLiau:
		l := 100 * chars / words
		st := 100 * sentences / words
		return 0.0588*l - 0.296*st - 15.8
	default:
		return math.NaN()
	}
}

// ParseAlgorithm looks an algorithm up by ID or name, ignoring case.
func ParseAlgorithm(raw string) (Algorithm, error) {
	q := strings.TrimSpace(raw)
	for _, a := range All() {
		if strings.EqualFold(a.ID(), q) || strings.EqualFold(a.Name(), q) {
			return a, nil
		}
	}
	return 0, unknownAlgorithmErr(raw)
}

// Resolve turns user-supplied names into a selection. A nil slice and
// the keyword "all" select every algorithm; a non-nil list that names
// nothing is ErrEmptySelection. Duplicates are dropped.
func Resolve(names []string) ([]Algorithm, error) {
	if names == nil {
		return All(), nil
	}

	seen := make(map[Algorithm]bool, len(names))
	var out []Algorithm
	for _, raw := range names {
		name := strings.TrimSpace(raw)
		if name == "" {
			continue
		}
		if strings.EqualFold(name, "all") {
			return All(), nil
		}

		a, err := ParseAlgorithm(name)
		if err != nil {
			return nil, err
		}
		if seen[a] {
			continue
		}
		seen[a] = true
		out = append(out, a)
	}

	if len(out) == 0 {
		return nil, ErrEmptySelection
	}
	return out, nil
}

// SplitList parses a comma-separated list of algorithm names.
func SplitList(raw string) []string {
	if strings.TrimSpace(raw) == "" {
		return nil
	}
	parts := strings.Split(raw, ",")
	out := make([]string, 0, len(parts))
	for _, p := range parts {
		p = strings.TrimSpace(p)
		if p != "" {
			out = append(out, p)
		}
	}
	return out
}

func unknownAlgorithmErr(name string) error {
	return fmt.Errorf(
		"unknown algorithm %q (available: %s, all)",
		name,
		strings.Join(availableNames(), ", "),
	)
}

func availableNames() []string {
	names := make([]string, 0, len(definitions))
	for _, a := range All() {
		names = append(names, a.Name())
	}
	sort.Strings(names)
	return names
}
