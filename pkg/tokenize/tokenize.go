package tokenize

import (
	"strings"
	"unicode"
	"unicode/utf8"
)

// Character sets used when stripping tokens. At most one character from each
// set is removed per token, matching the human-text conventions the checker
// was tuned for (a trailing period, a wrapping bracket).
const (
	trailingPunctuation = ",.;:/-!?%"
	leadingBrackets     = "([{"
	trailingBrackets    = ")]}"
)

// Words splits a text row on whitespace into its ordered word sequence.
// Order is preserved because context windows are built from positions in
// this sequence.
func Words(text string) []string {
	return strings.Fields(text)
}

// Strip removes at most one trailing punctuation character, then at most one
// leading opening bracket, then at most one trailing closing bracket from a
// word. An empty result means the token carried no checkable content.
func Strip(word string) string {
	if word == "" {
		return ""
	}
	if strings.ContainsRune(trailingPunctuation, rune(word[len(word)-1])) {
		word = word[:len(word)-1]
	}
	if word == "" {
		return ""
	}
	if strings.ContainsRune(leadingBrackets, rune(word[0])) {
		word = word[1:]
	}
	if word == "" {
		return ""
	}
	if strings.ContainsRune(trailingBrackets, rune(word[len(word)-1])) {
		word = word[:len(word)-1]
	}
	return word
}

// Excluded reports whether a stripped token is exempt from spell checking.
// Tokens with digits are measurements or identifiers, short all-caps tokens
// are tickers or acronyms, and title-cased tokens are treated as proper
// nouns. A single lowercase letter is not title-cased, so it is not excluded
// by the last rule.
func Excluded(word string) bool {
	for _, r := range word {
		if unicode.IsDigit(r) {
			return true
		}
	}
	if utf8.RuneCountInString(word) <= 5 && word == strings.ToUpper(word) {
		return true
	}
	if word == Capitalize(word) {
		return true
	}
	return false
}

// Capitalize uppercases the first rune and lowercases the remainder.
func Capitalize(word string) string {
	if word == "" {
		return ""
	}
	r, size := utf8.DecodeRuneInString(word)
	return string(unicode.ToUpper(r)) + strings.ToLower(word[size:])
}

// ContextWindow joins up to n raw words either side of index i, with "..."
// markers where the window truncates the row.
func ContextWindow(words []string, i, n int) string {
	first := i - n
	if first < 0 {
		first = 0
	}
	last := i + n + 1
	if last > len(words) {
		last = len(words)
	}

	window := make([]string, 0, last-first+2)
	if first > 0 {
		window = append(window, "...")
	}
	window = append(window, words[first:last]...)
	if last < len(words) {
		window = append(window, "...")
	}

	return strings.Join(window, " ")
}
