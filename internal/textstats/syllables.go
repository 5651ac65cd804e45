package textstats

import "strings"

const vowels = "aeiouy"

func isVowel(r rune) bool {
	return strings.ContainsRune(vowels, r)
}

// EstimateSyllables returns a heuristic syllable count for word.
// The result is always at least 1.
//
// Every vowel letter counts once, each pair of adjacent vowels found by
// the pair scan subtracts one, and a final "e" is silent.
func EstimateSyllables(word string) int {
	letters := []rune(strings.ToLower(word))

	count := 0
	for _, r := range letters {
		if isVowel(r) {
			count++
		}
	}

	count -= countVowelPairs(letters)

	if len(letters) > 0 && letters[len(letters)-1] == 'e' {
		count--
	}

	if count < 1 {
		count = 1
	}
	return count
}

// countVowelPairs scans for two consecutive vowels and resumes one
// position after the start of each match, so a run of three vowels
// yields two matches.
func countVowelPairs(letters []rune) int {
	pairs := 0
	idx := 0
	for {
		start := findVowelPair(letters, idx)
		if start < 0 {
			return pairs
		}
		pairs++
		idx = start + 1
	}
}

// findVowelPair returns the index of the first vowel pair at or after
// from, or -1.
func findVowelPair(letters []rune, from int) int {
	for i := from; i+1 < len(letters); i++ {
		if isVowel(letters[i]) && isVowel(letters[i+1]) {
			return i
		}
	}
	return -1
}
