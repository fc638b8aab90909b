package spellcheck

import (
	"context"
	"log"
	"net/url"
	"strings"

	"github.com/hbollon/go-edlib"
	"github.com/schollz/progressbar/v3"

	"github.com/Grettz/finspell/pkg/arbitration"
	"github.com/Grettz/finspell/pkg/contextcheck"
	"github.com/Grettz/finspell/pkg/dictionary"
	"github.com/Grettz/finspell/pkg/stats"
	"github.com/Grettz/finspell/pkg/tokenize"
	"github.com/Grettz/finspell/pkg/workbook"
)

// Checker runs the checking phase: tokenize each corpus row, reject known
// words against the dictionary stack, and push the rest through suggestions,
// context validation and arbitration, recording every outcome for review.
type Checker struct {
	dict      *dictionary.Stack
	validator contextcheck.Validator // nil skips the auto-accept path
	arbiter   *arbitration.Client    // nil skips arbitration
	opts      Options
	counters  *stats.RunCounters

	corrected    []workbook.ResultRow
	notCorrected []workbook.ResultRow
	words        []string // every checked token, recorded in debug mode
}

// New creates a Checker. validator and arbiter may be nil; the paths they
// serve are then skipped regardless of the options.
func New(dict *dictionary.Stack, validator contextcheck.Validator, arbiter *arbitration.Client, opts Options, counters *stats.RunCounters) *Checker {
	return &Checker{
		dict:      dict,
		validator: validator,
		arbiter:   arbiter,
		opts:      opts,
		counters:  counters,
	}
}

// Run checks every corpus row in order. Rows and tokens are processed
// sequentially; arbitration's enforced delay serializes all external calls.
func (c *Checker) Run(ctx context.Context, rows []workbook.TextRow) error {
	bar := progressbar.Default(int64(len(rows)), "spell checking")
	for _, row := range rows {
		if err := ctx.Err(); err != nil {
			return err
		}
		c.checkRow(ctx, row)
		bar.Add(1)
	}
	return nil
}

// Corrected returns the accumulated corrected results.
func (c *Checker) Corrected() []workbook.ResultRow {
	return c.corrected
}

// NotCorrected returns the accumulated not-corrected results.
func (c *Checker) NotCorrected() []workbook.ResultRow {
	return c.notCorrected
}

// CheckedWords returns every checked token, in order. Populated only in
// debug mode.
func (c *Checker) CheckedWords() []string {
	return c.words
}

func (c *Checker) checkRow(ctx context.Context, row workbook.TextRow) {
	words := tokenize.Words(row.Text)
	for i, raw := range words {
		w := tokenize.Strip(raw)
		if w == "" {
			continue
		}

		c.counters.Inc(stats.WordsChecked)
		if c.opts.Debug {
			c.words = append(c.words, w)
		}

		if tokenize.Excluded(w) {
			continue
		}

		word := strings.ToLower(w)
		if c.dict.IsKnown(word) {
			continue
		}
		c.counters.Inc(stats.WordsMisspelled)

		contextWindow := tokenize.ContextWindow(words, i, c.opts.ContextWords)

		var suggestions []string
		if c.opts.Suggest {
			suggestions = c.dict.Suggest(word)
		}

		result := workbook.ResultRow{
			Word:        w,
			Row:         row.Row,
			Context:     contextWindow,
			Suggestions: suggestions,
			WordURL:     searchURL(w),
			ContextURL:  searchURL(contextWindow),
		}

		if !c.opts.Auto {
			// Auto-correction disabled: everything is left to the reviewer.
			c.notCorrected = append(c.notCorrected, result)
			continue
		}

		if correction, ok := c.autoAccept(w, row.Text, suggestions); ok {
			log.Printf("[SpellCheck] %s", FormatCorrection(contextWindow, w, correction))
			result.Correction = correction
			c.corrected = append(c.corrected, result)
			c.counters.Inc(stats.WordsCorrected)
			continue
		}

		if c.opts.GoogleSC && c.opts.Suggest && c.arbiter != nil {
			c.arbitrate(ctx, w, contextWindow, result)
			continue
		}

		c.notCorrected = append(c.notCorrected, result)
		c.counters.Inc(stats.WordsNotCorrected)
	}
}

// autoAccept tries each suggestion in engine order, substituting it into the
// row text and asking the context validator whether the result still reads
// as anomalous. The first suggestion the validator does not flag wins.
func (c *Checker) autoAccept(word, text string, suggestions []string) (string, bool) {
	if c.validator == nil {
		return "", false
	}
	for _, suggestion := range suggestions {
		trial := strings.ReplaceAll(text, word, suggestion)
		if !c.validator.Flagged(suggestion, trial) {
			return suggestion, true
		}
	}
	return "", false
}

// arbitrate escalates a word to the external search-engine fallback and
// records the outcome. With two or more candidates the one most similar to
// the misspelled word is taken, subject to the similarity cutoff; a single
// candidate is taken as-is.
func (c *Checker) arbitrate(ctx context.Context, word, contextWindow string, result workbook.ResultRow) {
	log.Printf("[Arbitration] Googling word %q...", word)

	candidates, err := c.arbiter.Lookup(ctx, contextWindow)
	if err != nil {
		log.Printf("[Arbitration] Warning: %v", err)
		candidates = nil
	}

	var correction string
	switch {
	case len(candidates) > 1:
		correction = closestMatch(word, candidates)
	case len(candidates) == 1:
		correction = candidates[0]
	}

	if correction == "" {
		c.notCorrected = append(c.notCorrected, result)
		c.counters.Inc(stats.GoogleWordsNotCorrected)
		return
	}

	log.Printf("[SpellCheck] Google Correction: %s", FormatCorrection(contextWindow, word, correction))
	result.Correction = correction
	c.corrected = append(c.corrected, result)
	c.counters.Inc(stats.GoogleWordsCorrected)
}

// closestMatch returns the candidate with the highest string similarity to
// word, or "" when none clears the similarity cutoff.
func closestMatch(word string, candidates []string) string {
	var best string
	var bestSimilarity float32
	for _, candidate := range candidates {
		similarity, err := edlib.StringsSimilarity(word, candidate, edlib.Levenshtein)
		if err != nil {
			continue
		}
		if similarity > bestSimilarity {
			bestSimilarity = similarity
			best = candidate
		}
	}
	if bestSimilarity < similarityCutoff {
		return ""
	}
	return best
}

// searchURL builds the reviewer-facing search link for a word or context.
func searchURL(query string) string {
	return searchURLPrefix + url.QueryEscape(query)
}
