package textstats

import "testing"

func TestEstimateSyllables_SilentE(t *testing.T) {
	if got := EstimateSyllables("side"); got != 1 {
		t.Errorf("side: got %d, want 1", got)
	}
}

func TestEstimateSyllables_VowelPair(t *testing.T) {
	if got := EstimateSyllables("rain"); got != 1 {
		t.Errorf("rain: got %d, want 1", got)
	}
}

func TestEstimateSyllables_SingleE(t *testing.T) {
	// One vowel minus the silent e clamps to 1.
	if got := EstimateSyllables("e"); got != 1 {
		t.Errorf("e: got %d, want 1", got)
	}
}

func TestEstimateSyllables_NoVowels(t *testing.T) {
	// y is the only vowel.
	if got := EstimateSyllables("rhythm"); got != 1 {
		t.Errorf("rhythm: got %d, want 1", got)
	}
	if got := EstimateSyllables("nth"); got != 1 {
		t.Errorf("nth: got %d, want 1", got)
	}
}

func TestEstimateSyllables_Empty(t *testing.T) {
	if got := EstimateSyllables(""); got != 1 {
		t.Errorf("empty: got %d, want 1", got)
	}
}

func TestEstimateSyllables_CaseInsensitive(t *testing.T) {
	if got, want := EstimateSyllables("READABILITY"), EstimateSyllables("readability"); got != want {
		t.Errorf("got %d, want %d", got, want)
	}
}

func TestEstimateSyllables_LongWords(t *testing.T) {
	tests := map[string]int{
		"readability":   5,
		"cat":           1,
		"computer":      3,
		"understanding": 4,
		"beautiful":     3,
	}
	for word, want := range tests {
		if got := EstimateSyllables(word); got != want {
			t.Errorf("%s: got %d, want %d", word, got, want)
		}
	}
}

func TestEstimateSyllables_ThreeVowelRun(t *testing.T) {
	// "you": 3 vowels, the pair scan matches "yo" and "ou".
	if got := EstimateSyllables("you"); got != 1 {
		t.Errorf("you: got %d, want 1", got)
	}
	// "queue": 4 vowels, 3 pair matches, silent e, clamped to 1.
	if got := EstimateSyllables("queue"); got != 1 {
		t.Errorf("queue: got %d, want 1", got)
	}
}

func TestCountVowelPairs_ResumesAfterMatchStart(t *testing.T) {
	if got := countVowelPairs([]rune("aaaa")); got != 3 {
		t.Errorf("aaaa: got %d, want 3", got)
	}
	if got := countVowelPairs([]rune("abab")); got != 0 {
		t.Errorf("abab: got %d, want 0", got)
	}
}

func TestEstimateSyllables_AtLeastOne(t *testing.T) {
	words := []string{"a", "e", "ee", "eee", "the", "queue", "x", "!", "123", "ÉÉ"}
	for _, w := range words {
		if got := EstimateSyllables(w); got < 1 {
			t.Errorf("%q: got %d, want >= 1", w, got)
		}
	}
}
