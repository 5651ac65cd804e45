package readability

import (
	"errors"
	"fmt"

	"github.com/jeduden/readage/internal/textstats"
)

// ErrEmptySelection is returned when no algorithm is selected.
var ErrEmptySelection = errors.New("no readability algorithm selected")

// Metric is the result of one algorithm over one Stats value.
type Metric struct {
	Algorithm Algorithm
	Score     float64
	Band      AgeBand
}

// Label returns the algorithm's display label.
func (m Metric) Label() string { return m.Algorithm.Label() }

// Age returns the single-value estimated age, or AgeUndefined.
func (m Metric) Age() int { return m.Band.Age() }

// String renders the metric as a one-line summary.
func (m Metric) String() string {
	if !m.Band.Defined() {
		return fmt.Sprintf("%s: %.2f (age n/a).", m.Label(), m.Score)
	}
	return fmt.Sprintf("%s: %.2f (about %s year-olds).", m.Label(), m.Score, m.Band)
}

// Calculate scores s with a and resolves the age band.
func Calculate(a Algorithm, s textstats.Stats) Metric {
	score := Score(a, s)
	return Metric{
		Algorithm: a,
		Score:     score,
		Band:      ResolveAgeBand(score),
	}
}

// Average is the mean estimated age over the metrics with a defined
// age. Metrics with an undefined age do not contribute.
type Average struct {
	Age   float64
	Count int
}

// Defined reports whether at least one metric contributed.
func (a Average) Defined() bool { return a.Count > 0 }

// String renders the average with two decimals, or "n/a".
func (a Average) String() string {
	if !a.Defined() {
		return "n/a"
	}
	return fmt.Sprintf("%.2f", a.Age)
}

// Result holds the metrics of an aggregation and their average age.
type Result struct {
	Metrics []Metric
	Average Average
}

// Aggregate runs every selected algorithm over s. Metrics are reported
// in declared order regardless of the order of selected, each algorithm
// at most once.
func Aggregate(s textstats.Stats, selected []Algorithm) (Result, error) {
	if len(selected) == 0 {
		return Result{}, ErrEmptySelection
	}

	want := make(map[Algorithm]bool, len(selected))
	for _, a := range selected {
		if !a.Valid() {
			return Result{}, fmt.Errorf("invalid algorithm %s", a.ID())
		}
		want[a] = true
	}

	var res Result
	sum := 0
	for _, a := range All() {
		if !want[a] {
			continue
		}
		m := Calculate(a, s)
		res.Metrics = append(res.Metrics, m)
		if m.Band.Defined() {
			sum += m.Age()
			res.Average.Count++
		}
	}

	if res.Average.Count > 0 {
		res.Average.Age = float64(sum) / float64(res.Average.Count)
	}
	return res, nil
}
