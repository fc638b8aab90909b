// Package contextcheck provides the sentence-level anomaly model that gates
// automatic acceptance of spelling suggestions. The model is a narrow
// interface; any implementation that can report whether a word in a sentence
// is flagged as anomalous can be substituted.
package contextcheck

import (
	"bufio"
	"log"
	"strings"

	"github.com/Grettz/finspell/pkg/tokenize"
)

// Validator reports whether a sentence-level model still flags a word after
// it has been substituted into the sentence.
type Validator interface {
	Flagged(word, sentence string) bool
}

// BigramValidator is the default Validator. It is trained on a sample corpus
// plus an external known-word callback: a token is anomalous when it is
// outside the vocabulary, or when it is vouched for only by the callback and
// has never been observed adjacent to any of its known neighbors.
// Corpus-attested tokens are always trusted.
type BigramValidator struct {
	vocab   map[string]bool
	bigrams map[string]bool
	known   func(word string) bool
}

// New trains a BigramValidator from the embedded sample corpus. The known
// callback widens the vocabulary beyond the corpus (typically the dictionary
// stack's IsKnown); it may be nil.
func New(known func(word string) bool) *BigramValidator {
	v := &BigramValidator{
		vocab:   make(map[string]bool),
		bigrams: make(map[string]bool),
		known:   known,
	}

	file, err := embeddedFS.Open("data/corpus.txt")
	if err != nil {
		log.Printf("[ContextCheck] Error opening embedded corpus: %v", err)
		return v
	}
	defer file.Close()

	lines := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		v.train(scanner.Text())
		lines++
	}
	if err := scanner.Err(); err != nil {
		log.Printf("[ContextCheck] Error reading embedded corpus: %v", err)
	}
	log.Printf("[ContextCheck] Trained context model on %d sentences", lines)

	return v
}

// train records the vocabulary and adjacent-word pairs of one corpus line.
func (v *BigramValidator) train(line string) {
	words := sentenceWords(line)
	for i, w := range words {
		v.vocab[w] = true
		if i > 0 {
			v.bigrams[words[i-1]+" "+w] = true
		}
	}
}

// Flagged reports whether the model flags word within sentence. The sentence
// is scanned whole, as the backing model sees full sentences, and the caller
// cares only about the candidate word's membership in the flagged set.
func (v *BigramValidator) Flagged(word, sentence string) bool {
	target := strings.ToLower(word)
	for _, flagged := range v.flaggedTokens(sentence) {
		if flagged == target {
			return true
		}
	}
	return false
}

// flaggedTokens returns the lowercase tokens of a sentence the model
// considers anomalous.
func (v *BigramValidator) flaggedTokens(sentence string) []string {
	words := sentenceWords(sentence)

	var flagged []string
	for i, w := range words {
		if !v.inVocabulary(w) {
			flagged = append(flagged, w)
			continue
		}

		// A token the callback vouches for but the corpus has never seen is
		// still suspect when none of its known neighbors has ever been
		// observed next to it. Corpus words pass unconditionally.
		evidence := false
		knownNeighbor := false
		if i > 0 && v.inVocabulary(words[i-1]) {
			knownNeighbor = true
			if v.bigrams[words[i-1]+" "+w] {
				evidence = true
			}
		}
		if i < len(words)-1 && v.inVocabulary(words[i+1]) {
			knownNeighbor = true
			if v.bigrams[w+" "+words[i+1]] {
				evidence = true
			}
		}
		if knownNeighbor && !evidence && !v.vocab[w] {
			flagged = append(flagged, w)
		}
	}

	return flagged
}

// inVocabulary checks the corpus vocabulary first, then the external
// known-word callback.
func (v *BigramValidator) inVocabulary(word string) bool {
	if v.vocab[word] {
		return true
	}
	return v.known != nil && v.known(word)
}

// sentenceWords tokenizes a sentence the same way the checker does and
// lowercases the surviving tokens.
func sentenceWords(sentence string) []string {
	var words []string
	for _, raw := range tokenize.Words(sentence) {
		w := tokenize.Strip(raw)
		if w == "" {
			continue
		}
		words = append(words, strings.ToLower(w))
	}
	return words
}
