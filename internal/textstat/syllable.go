package textstat

import (
	"strings"
	"unicode"
)

// countSyllables estimates the syllable count of a single English word
// by counting vowel groups, with adjustments for silent trailing "e"
// and the "-le" ending. Every word counts as at least one syllable.
func countSyllables(word string) int {
	w := strings.ToLower(strings.TrimFunc(word, func(r rune) bool {
		return !unicode.IsLetter(r)
	}))
	if w == "" {
		return 1
	}

	count := 0
	prevVowel := false
	for _, r := range w {
		v := isVowel(r)
		if v && !prevVowel {
			count++
		}
		prevVowel = v
	}

	// Silent trailing "e", except when it forms the only vowel group or
	// closes a consonant+"le" cluster ("table", "little").
	if strings.HasSuffix(w, "e") && !strings.HasSuffix(w, "le") && count > 1 {
		count--
	}

	if count < 1 {
		return 1
	}
	return count
}

func isVowel(r rune) bool {
	switch r {
	case 'a', 'e', 'i', 'o', 'u', 'y':
		return true
	}
	return false
}
