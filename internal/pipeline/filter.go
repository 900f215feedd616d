package pipeline

import (
	"regexp"
	"strings"
	"unicode"
)

var disallowedChars = regexp.MustCompile(`[^\p{L}\p{M}\p{N}_\s.,!?;:'"-]`)

// FilterTranscript prepares a transcript for storage: whitespace runs are
// collapsed, symbols other than basic punctuation are dropped, and stray
// one-character punctuation tokens are removed.
func FilterTranscript(text string) string {
	text = disallowedChars.ReplaceAllString(text, "")
	words := strings.Fields(text)
	kept := words[:0]
	for _, w := range words {
		if len([]rune(w)) > 1 || isAlnum(w) {
			kept = append(kept, w)
		}
	}
	return strings.Join(kept, " ")
}

func isAlnum(w string) bool {
	for _, r := range w {
		if !unicode.IsLetter(r) && !unicode.IsDigit(r) {
			return false
		}
	}
	return w != ""
}
