package textproc

import (
	"strings"
	"unicode"
)

// Tokenize splits text into lowercase word tokens. Every rune that is neither
// a letter nor whitespace is treated as a separator, so punctuation and
// digits split words instead of being merged into them. Empty fragments are
// dropped.
func Tokenize(text string) []string {
	lowered := strings.ToLower(text)
	cleaned := strings.Map(func(r rune) rune {
		if unicode.IsLetter(r) || unicode.IsSpace(r) {
			return r
		}
		return ' '
	}, lowered)

	return strings.Fields(cleaned)
}
