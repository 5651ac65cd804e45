package output

import (
	"testing"

	"github.com/jeduden/readage/internal/document"
	"github.com/jeduden/readage/internal/readability"
	"github.com/jeduden/readage/internal/textstats"
)

// sampleStats scores ARI 4.62, FK 4.06, SMOG 10.13 and CL 7.68.
var sampleStats = textstats.Stats{
	Characters:    50,
	Words:         10,
	Sentences:     2,
	Syllables:     15,
	Polysyllables: 3,
}

func sampleReport(t *testing.T, path string, algs ...readability.Algorithm) document.Report {
	t.Helper()
	if len(algs) == 0 {
		algs = readability.All()
	}
	res, err := readability.Aggregate(sampleStats, algs)
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	return document.Report{
		Path:   path,
		Text:   "The text.",
		Stats:  sampleStats,
		Result: res,
	}
}

// undefinedReport has a single metric whose score falls outside every
// age band.
func undefinedReport(t *testing.T, path string) document.Report {
	t.Helper()
	stats := textstats.Stats{Characters: 400, Words: 20, Sentences: 1, Syllables: 20}
	res, err := readability.Aggregate(stats, []readability.Algorithm{readability.ARI})
	if err != nil {
		t.Fatalf("Aggregate: %v", err)
	}
	return document.Report{Path: path, Stats: stats, Result: res}
}
