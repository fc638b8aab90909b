package spellcheck

import (
	"regexp"
	"strings"
)

// contextWordPattern isolates the word inside a context token, ignoring any
// surrounding punctuation.
var contextWordPattern = regexp.MustCompile(`[^0-9a-zA-Z]*(.+?)[^0-9a-zA-Z]*$`)

// FormatCorrection renders a context line for the terminal with the old word
// struck through and the replacement in bold.
func FormatCorrection(contextWindow, oldWord, newWord string) string {
	var out []string
	for _, token := range strings.Split(contextWindow, " ") {
		match := contextWordPattern.FindStringSubmatch(token)
		if match != nil && strings.EqualFold(match[1], oldWord) {
			marked := strikethrough(oldWord) + " \033[1m" + newWord + "\033[0m"
			out = append(out, strings.Replace(token, match[1], marked, 1))
			continue
		}
		out = append(out, token)
	}
	return strings.Join(out, " ")
}

// strikethrough overlays each character with the combining long stroke.
func strikethrough(s string) string {
	var sb strings.Builder
	for _, r := range s {
		sb.WriteRune('̶')
		sb.WriteRune(r)
	}
	return sb.String()
}
