// Package dictionary implements the layered word-validity stack consulted
// before a word is declared misspelled: the custom dictionary first, then two
// general word lists, then the US and GB locale spelling dictionaries.
package dictionary

import (
	"strings"

	"github.com/sajari/fuzzy"
)

// suggestionLimit caps the number of replacement candidates reported for a
// misspelled word.
const suggestionLimit = 3

// Stack is the ordered set of validity sources. A word valid in any layer is
// accepted; layers are consulted in priority order and the first hit wins.
type Stack struct {
	custom   map[string]bool
	generalA map[string]bool
	generalB map[string]bool
	usWords  map[string]bool
	gbWords  map[string]bool

	// usModel generates ranked replacement candidates. It is trained on the
	// same US word list the validity layer uses.
	usModel *fuzzy.Model
}

// NewStack loads the embedded general and locale word lists and trains the
// US spelling-distance model. The custom dictionary starts empty; populate
// it with LoadCustom.
func NewStack() *Stack {
	return &Stack{
		custom:   make(map[string]bool),
		generalA: loadEmbeddedWordList("words_lower_alpha.txt"),
		generalB: loadEmbeddedWordList("words_lower.txt"),
		usWords:  loadEmbeddedWordList("en_us.txt"),
		gbWords:  loadEmbeddedWordList("en_gb.txt"),
		usModel:  trainLocaleModel("en_us.txt"),
	}
}

// LoadCustom populates the custom dictionary from raw entries. An entry may
// bundle several synonymous forms separated by pipes ("FL | Fla | Florida");
// each piped sub-entry becomes its own lowercase key. Returns the number of
// keys loaded.
func (s *Stack) LoadCustom(entries []string) int {
	loaded := 0
	for _, entry := range entries {
		for _, part := range strings.Split(entry, "|") {
			word := strings.ToLower(strings.TrimSpace(part))
			if word == "" {
				continue
			}
			s.custom[word] = true
			loaded++
		}
	}
	return loaded
}

// Add inserts a single word into the custom dictionary. The custom dictionary
// only grows; entries are never removed.
func (s *Stack) Add(word string) {
	word = strings.ToLower(strings.TrimSpace(word))
	if word != "" {
		s.custom[word] = true
	}
}

// IsKnown reports whether a lowercase word is valid in any layer of the
// stack, short-circuiting on the first layer that accepts it.
func (s *Stack) IsKnown(word string) bool {
	if s.custom[word] {
		return true
	}
	if s.generalA[word] {
		return true
	}
	if s.generalB[word] {
		return true
	}
	if s.usWords[word] {
		return true
	}
	if s.gbWords[word] {
		return true
	}
	return false
}

// Suggest returns up to three replacement candidates for a misspelled word
// from the US locale model. The model's own ranking is preserved; candidates
// are never re-sorted.
func (s *Stack) Suggest(word string) []string {
	suggestions := s.usModel.SpellCheckSuggestions(strings.ToLower(word), suggestionLimit)
	if len(suggestions) > suggestionLimit {
		suggestions = suggestions[:suggestionLimit]
	}
	return suggestions
}
