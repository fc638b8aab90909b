package dictionary

import (
	"bufio"
	"embed"
	"log"
	"strings"

	"github.com/sajari/fuzzy"
)

//go:embed data/*.txt
var embeddedFS embed.FS

// loadEmbeddedWordList loads one of the embedded word-list files into a set
// of lowercase words.
func loadEmbeddedWordList(name string) map[string]bool {
	words := make(map[string]bool)

	file, err := embeddedFS.Open("data/" + name)
	if err != nil {
		log.Printf("[Dictionary] Error opening embedded word list %s: %v", name, err)
		return words
	}
	defer file.Close()

	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			words[strings.ToLower(word)] = true
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("[Dictionary] Error reading embedded word list %s: %v", name, err)
	}

	return words
}

// trainLocaleModel builds a fuzzy spelling model from one of the embedded
// locale word lists.
func trainLocaleModel(name string) *fuzzy.Model {
	model := fuzzy.NewModel()

	// Depth 2 keeps the edit-distance search fast while still catching the
	// typical one- and two-character typos.
	model.SetDepth(2)
	model.SetThreshold(1)

	file, err := embeddedFS.Open("data/" + name)
	if err != nil {
		log.Printf("[Dictionary] Error opening embedded word list %s: %v", name, err)
		return model
	}
	defer file.Close()

	wordCount := 0
	scanner := bufio.NewScanner(file)
	for scanner.Scan() {
		word := strings.TrimSpace(scanner.Text())
		if word != "" {
			model.TrainWord(strings.ToLower(word))
			wordCount++
		}
	}
	if err := scanner.Err(); err != nil {
		log.Printf("[Dictionary] Error reading embedded word list %s: %v", name, err)
	}

	log.Printf("[Dictionary] Trained %s model with %d words", name, wordCount)
	return model
}
