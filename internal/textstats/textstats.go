// Package textstats extracts the surface statistics readability
// formulas are built on: characters, words, sentences and syllables.
package textstats

import (
	"errors"
	"fmt"
	"regexp"
	"strings"
	"unicode"
)

// ErrEmptyText is returned by Extract when the text contains no words.
var ErrEmptyText = errors.New("text is empty or blank")

// polysyllableMin is the syllable count a word must exceed to be
// counted as polysyllabic.
const polysyllableMin = 2

// sentenceBoundary matches a run of terminators and the whitespace
// after it.
var sentenceBoundary = regexp.MustCompile(`[.!?]+\s*`)

// Stats holds the counts of a single text. It is a value type and is
// never modified after Extract returns it.
type Stats struct {
	Characters    int
	Words         int
	Sentences     int
	Syllables     int
	Polysyllables int
}

// String renders the counts as a labeled multi-line summary.
func (s Stats) String() string {
	return fmt.Sprintf(
		"Words: %d\nSentences: %d\nCharacters: %d\nSyllables: %d\nPolysyllables: %d\n",
		s.Words, s.Sentences, s.Characters, s.Syllables, s.Polysyllables,
	)
}

// Extract computes the statistics of text. It returns ErrEmptyText when
// text has no words, so every Stats it returns has at least one word and
// one sentence.
func Extract(text string) (Stats, error) {
	words := strings.Fields(text)
	if len(words) == 0 {
		return Stats{}, ErrEmptyText
	}

	s := Stats{
		Characters: CountCharacters(text),
		Words:      len(words),
		Sentences:  CountSentences(text),
	}

	for _, w := range words {
		n := EstimateSyllables(syllableToken(w))
		s.Syllables += n
		if n > polysyllableMin {
			s.Polysyllables++
		}
	}

	return s, nil
}

// CountCharacters returns the number of non-whitespace code points.
func CountCharacters(text string) int {
	n := 0
	for _, r := range text {
		if !unicode.IsSpace(r) {
			n++
		}
	}
	return n
}

// CountSentences returns the number of non-empty segments between
// sentence terminators. Text without any terminator is one sentence;
// blank text has none.
func CountSentences(text string) int {
	n := 0
	for _, seg := range sentenceBoundary.Split(text, -1) {
		if strings.TrimSpace(seg) != "" {
			n++
		}
	}
	if n == 0 && strings.TrimSpace(text) != "" {
		// Text made only of terminators, e.g. "?!".
		return 1
	}
	return n
}

// syllableToken lower-cases a word and drops one trailing
// punctuation mark so "side." keeps its silent e.
func syllableToken(word string) string {
	word = strings.ToLower(word)
	if n := len(word); n > 1 && strings.ContainsRune(".,?!", rune(word[n-1])) {
		word = word[:n-1]
	}
	return word
}
