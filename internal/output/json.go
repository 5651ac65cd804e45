package output

import (
	"encoding/json"
	"io"
	"math"

	"github.com/jeduden/readage/internal/document"
	"github.com/jeduden/readage/internal/readability"
)

// JSONFormatter outputs reports as a JSON array.
type JSONFormatter struct{}

type jsonReport struct {
	Path       string       `json:"path"`
	Stats      jsonStats    `json:"stats"`
	Metrics    []jsonMetric `json:"metrics"`
	AverageAge *float64     `json:"average_age"`
}

type jsonStats struct {
	Characters    int `json:"characters"`
	Words         int `json:"words"`
	Sentences     int `json:"sentences"`
	Syllables     int `json:"syllables"`
	Polysyllables int `json:"polysyllables"`
}

type jsonMetric struct {
	ID       string   `json:"id"`
	Name     string   `json:"name"`
	Label    string   `json:"label"`
	Score    *float64 `json:"score"`
	Age      *int     `json:"age"`
	AgeRange []int    `json:"age_range"`
}

// Format writes reports as a pretty-printed JSON array. Undefined ages
// and non-finite scores are written as null. An empty slice of reports
// produces [].
func (f *JSONFormatter) Format(w io.Writer, reports []document.Report) error {
	items := make([]jsonReport, 0, len(reports))
	for _, r := range reports {
		item := jsonReport{
			Path: r.Path,
			Stats: jsonStats{
				Characters:    r.Stats.Characters,
				Words:         r.Stats.Words,
				Sentences:     r.Stats.Sentences,
				Syllables:     r.Stats.Syllables,
				Polysyllables: r.Stats.Polysyllables,
			},
			Metrics: make([]jsonMetric, 0, len(r.Result.Metrics)),
		}
		for _, m := range r.Result.Metrics {
			item.Metrics = append(item.Metrics, toJSONMetric(m))
		}
		if r.Result.Average.Defined() {
			avg := r.Result.Average.Age
			item.AverageAge = &avg
		}
		items = append(items, item)
	}
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(items)
}

func toJSONMetric(m readability.Metric) jsonMetric {
	jm := jsonMetric{
		ID:    m.Algorithm.ID(),
		Name:  m.Algorithm.Name(),
		Label: m.Label(),
	}
	if !math.IsNaN(m.Score) && !math.IsInf(m.Score, 0) {
		score := math.Round(m.Score*100) / 100
		jm.Score = &score
	}
	if m.Band.Defined() {
		age := m.Age()
		jm.Age = &age
		jm.AgeRange = []int{m.Band.Min, m.Band.Max}
	}
	return jm
}
