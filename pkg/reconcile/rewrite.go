package reconcile

import (
	"regexp"
	"strings"
)

// wordPattern matches word as a whole token: flanked on both sides by
// non-alphanumeric characters. The text is padded with spaces before
// matching so words at the edges are flanked too.
func wordPattern(word string) *regexp.Regexp {
	return regexp.MustCompile(`[^0-9a-zA-Z]+(` + regexp.QuoteMeta(word) + `)[^0-9a-zA-Z]+`)
}

// ReplaceWord substitutes the first whole-word occurrence of oldWord in text
// with newWord, preserving the surrounding punctuation. The second return
// value reports whether a match was found.
func ReplaceWord(text, oldWord, newWord string) (string, bool) {
	padded := " " + text + " "

	span := wordPattern(oldWord).FindString(padded)
	if span == "" {
		return text, false
	}

	replacement := strings.Replace(span, oldWord, newWord, 1)
	padded = strings.Replace(padded, span, replacement, 1)
	return strings.TrimSpace(padded), true
}

// DeleteWord removes the first whole-word occurrence of word from text,
// together with its surrounding separators. The second return value reports
// whether a match was found; deleting an already-deleted word is a no-op.
func DeleteWord(text, word string) (string, bool) {
	padded := " " + text + " "

	span := wordPattern(word).FindString(padded)
	if span == "" {
		return text, false
	}

	// A single space keeps the neighboring words separated.
	padded = strings.Replace(padded, span, " ", 1)
	return strings.TrimSpace(padded), true
}
