package cards

import (
	"math/rand/v2"
	"slices"
	"strings"
	"unicode"
)

// maxShuffleAttempts bounds the retry-until-different loop in ScrambleLetters.
const maxShuffleAttempts = 10

var textUnescaper = strings.NewReplacer(
	`\\'`, `'`,
	`\\"`, `"`,
	`\'`, `'`,
	`\"`, `"`,
	"&#39;", "'",
	"&apos;", "'",
	"&quot;", `"`,
)

// CleanText undoes the double escaping models tend to emit around quotes
// and trims surrounding whitespace.
func CleanText(s string) string {
	return strings.TrimSpace(textUnescaper.Replace(s))
}

// CleanTextPtr applies CleanText to an optional field. Blank results become nil.
func CleanTextPtr(s *string) *string {
	if s == nil {
		return nil
	}
	c := CleanText(*s)
	if c == "" {
		return nil
	}
	return &c
}

// Letters returns the lower-cased letters of word in order, skipping
// spaces, digits and punctuation.
func Letters(word string) []string {
	var out []string
	for _, r := range strings.ToLower(strings.TrimSpace(word)) {
		if unicode.IsLetter(r) {
			out = append(out, string(r))
		}
	}
	return out
}

// ScrambleLetters shuffles the letters of word. The shuffle is repeated up
// to ten times while it still matches the original order; after that the
// last shuffle is returned as is. Returns nil when word has no letters.
func ScrambleLetters(word string, rng *rand.Rand) []string {
	letters := Letters(word)
	if len(letters) == 0 {
		return nil
	}
	shuffled := slices.Clone(letters)
	shuffle(shuffled, rng)
	for attempt := 0; attempt < maxShuffleAttempts && slices.Equal(shuffled, letters); attempt++ {
		shuffle(shuffled, rng)
	}
	return shuffled
}

func shuffle(s []string, rng *rand.Rand) {
	swap := func(i, j int) { s[i], s[j] = s[j], s[i] }
	if rng == nil {
		rand.Shuffle(len(s), swap)
		return
	}
	rng.Shuffle(len(s), swap)
}

// SplitWords splits a repeat card's question into the phrases to say aloud.
// Parts are comma separated and trimmed; text without usable parts yields a
// single element holding the trimmed text.
func SplitWords(text string) []string {
	var words []string
	for _, part := range strings.Split(text, ",") {
		if w := strings.TrimSpace(part); w != "" {
			words = append(words, w)
		}
	}
	if len(words) == 0 {
		return []string{strings.TrimSpace(text)}
	}
	return words
}
