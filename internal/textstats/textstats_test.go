package textstats

import (
	"errors"
	"strings"
	"testing"
)

func TestExtract_SingleWordSentence(t *testing.T) {
	s, err := Extract("Cat.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Words != 1 {
		t.Errorf("words: got %d, want 1", s.Words)
	}
	if s.Sentences != 1 {
		t.Errorf("sentences: got %d, want 1", s.Sentences)
	}
	// Punctuation is a character; only whitespace is excluded.
	if s.Characters != 4 {
		t.Errorf("characters: got %d, want 4", s.Characters)
	}
	if s.Syllables != 1 {
		t.Errorf("syllables: got %d, want 1", s.Syllables)
	}
}

func TestExtract_Empty(t *testing.T) {
	for _, text := range []string{"", "   ", "\n\t \n"} {
		_, err := Extract(text)
		if !errors.Is(err, ErrEmptyText) {
			t.Errorf("%q: expected ErrEmptyText, got %v", text, err)
		}
	}
}

func TestExtract_Paragraph(t *testing.T) {
	text := "The cat sat on the mat. The dog ate a bone! Did you see it?"
	s, err := Extract(text)
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Words != 15 {
		t.Errorf("words: got %d, want 15", s.Words)
	}
	if s.Sentences != 3 {
		t.Errorf("sentences: got %d, want 3", s.Sentences)
	}
	want := len(strings.ReplaceAll(text, " ", ""))
	if s.Characters != want {
		t.Errorf("characters: got %d, want %d", s.Characters, want)
	}
	if s.Syllables != 15 {
		t.Errorf("syllables: got %d, want 15", s.Syllables)
	}
	if s.Polysyllables != 0 {
		t.Errorf("polysyllables: got %d, want 0", s.Polysyllables)
	}
}

func TestExtract_Polysyllables(t *testing.T) {
	s, err := Extract("Readability understanding computer cat.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Polysyllables != 3 {
		t.Errorf("polysyllables: got %d, want 3", s.Polysyllables)
	}
	if s.Syllables != 5+4+3+1 {
		t.Errorf("syllables: got %d, want 13", s.Syllables)
	}
}

// The reference splitter leaves the punctuation on the final token, so
// it would count "side." as 2 syllables; trimming it is intentional.
func TestExtract_FinalTokenPunctuationTrimmedUnlikeReference(t *testing.T) {
	s, err := Extract("side.")
	if err != nil {
		t.Fatalf("unexpected error: %v", err)
	}
	if s.Syllables != 1 {
		t.Errorf("syllables: got %d, want 1", s.Syllables)
	}
}

func TestExtract_Invariants(t *testing.T) {
	texts := []string{
		"a",
		"...",
		"Hello",
		"One. Two. Three.",
		"queue queue queue",
		"Wait... what?! Really.",
	}
	for _, text := range texts {
		s, err := Extract(text)
		if err != nil {
			t.Fatalf("%q: unexpected error: %v", text, err)
		}
		if s.Words < 1 || s.Sentences < 1 {
			t.Errorf("%q: words=%d sentences=%d, want both >= 1", text, s.Words, s.Sentences)
		}
		if s.Polysyllables > s.Words {
			t.Errorf("%q: polysyllables %d > words %d", text, s.Polysyllables, s.Words)
		}
		if s.Syllables < s.Words {
			t.Errorf("%q: syllables %d < words %d", text, s.Syllables, s.Words)
		}
	}
}

func TestExtract_Idempotent(t *testing.T) {
	text := "It was the best of times. It was the worst of times!"
	a, errA := Extract(text)
	b, errB := Extract(text)
	if errA != nil || errB != nil {
		t.Fatalf("unexpected errors: %v, %v", errA, errB)
	}
	if a != b {
		t.Errorf("got %+v and %+v", a, b)
	}
}

func TestCountSentences_TrailingTerminator(t *testing.T) {
	if got := CountSentences("Hello world."); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestCountSentences_TwoSentences(t *testing.T) {
	if got := CountSentences("Hello world. How are you?"); got != 2 {
		t.Errorf("got %d, want 2", got)
	}
}

func TestCountSentences_NoTerminator(t *testing.T) {
	if got := CountSentences("Hello world"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestCountSentences_TerminatorRun(t *testing.T) {
	if got := CountSentences("Wait... what?! Really."); got != 3 {
		t.Errorf("got %d, want 3", got)
	}
}

func TestCountSentences_Empty(t *testing.T) {
	if got := CountSentences(""); got != 0 {
		t.Errorf("got %d, want 0", got)
	}
}

func TestCountSentences_OnlyTerminators(t *testing.T) {
	if got := CountSentences("?!"); got != 1 {
		t.Errorf("got %d, want 1", got)
	}
}

func TestCountCharacters_SkipsWhitespace(t *testing.T) {
	if got := CountCharacters("a b\tc\nd, é"); got != 6 {
		t.Errorf("got %d, want 6", got)
	}
}

func TestStatsString(t *testing.T) {
	s := Stats{Characters: 4, Words: 1, Sentences: 1, Syllables: 1}
	want := "Words: 1\nSentences: 1\nCharacters: 4\nSyllables: 1\nPolysyllables: 0\n"
	if got := s.String(); got != want {
		t.Errorf("got %q, want %q", got, want)
	}
}
