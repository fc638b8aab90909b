package reconcile

import (
	"strconv"
	"strings"
)

// ActionKind enumerates the reviewer decision grammar of the "User Action"
// column.
type ActionKind int

const (
	// NoAction is an empty cell: accept the recorded correction on the
	// Corrected sheet, do nothing on the Not Corrected sheet.
	NoAction ActionKind = iota
	// SubstituteByIndex replaces the word with the Nth recorded suggestion.
	SubstituteByIndex
	// AddToDictionary adds the word to the custom dictionary.
	AddToDictionary
	// Delete removes the word from the row.
	Delete
	// SubstituteLiteral replaces the word with the reviewer's own text.
	SubstituteLiteral
)

// Action is one decoded reviewer decision.
type Action struct {
	Kind  ActionKind
	Index int    // set for SubstituteByIndex
	Text  string // set for SubstituteLiteral
}

// ParseAction decodes a "User Action" cell. A non-negative integer selects a
// suggestion by index; "a"/"add" and "d"/"del" (case-insensitive) are the
// dictionary and delete commands; any other non-empty text is taken
// literally as the replacement word.
func ParseAction(cell string) Action {
	text := strings.TrimSpace(cell)
	if text == "" {
		return Action{Kind: NoAction}
	}

	if n, err := strconv.Atoi(text); err == nil && n >= 0 {
		return Action{Kind: SubstituteByIndex, Index: n}
	}

	switch strings.ToLower(text) {
	case "a", "add":
		return Action{Kind: AddToDictionary}
	case "d", "del":
		return Action{Kind: Delete}
	}

	return Action{Kind: SubstituteLiteral, Text: text}
}
