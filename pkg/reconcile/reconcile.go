// Package reconcile replays a reviewer's tabulated decisions from the result
// workbook back onto the original text corpus: word substitutions, deletions
// and custom dictionary additions.
package reconcile

import (
	"log"

	"github.com/Grettz/finspell/pkg/stats"
	"github.com/Grettz/finspell/pkg/workbook"
)

// Substitution replaces one whole-word occurrence in one corpus row.
type Substitution struct {
	Row     int
	OldWord string
	NewWord string
}

// Deletion removes one whole-word occurrence from one corpus row.
type Deletion struct {
	Row  int
	Word string
}

// ChangeSet is the normalized output of review parsing, applied exactly once.
type ChangeSet struct {
	Substitutions []Substitution
	Deletions     []Deletion
	// Additions are new custom dictionary words, deduplicated within the
	// run, in first-seen order.
	Additions []string
}

// BuildChangeSet decodes the reviewer's decisions from both result sheets
// into a normalized change set. Rows with an out-of-range suggestion index
// are skipped with a warning.
func BuildChangeSet(notCorrected, corrected []workbook.ReviewRow) *ChangeSet {
	changes := &ChangeSet{}
	seen := make(map[string]bool)
	for _, row := range notCorrected {
		changes.addRow(row, false, seen)
	}
	for _, row := range corrected {
		changes.addRow(row, true, seen)
	}
	return changes
}

func (cs *ChangeSet) addRow(row workbook.ReviewRow, fromCorrectedSheet bool, seen map[string]bool) {
	action := ParseAction(row.Action)

	switch action.Kind {
	case NoAction:
		// An untouched Corrected row means the reviewer accepts the
		// recorded correction.
		if fromCorrectedSheet {
			cs.Substitutions = append(cs.Substitutions, Substitution{
				Row:     row.Row,
				OldWord: row.Word,
				NewWord: row.Correction,
			})
		}

	case SubstituteByIndex:
		if action.Index >= len(row.Suggestions) {
			log.Printf("[Reconcile] Warning: suggestion index (%d) out of suggestion bounds for word %q on row %d", action.Index, row.Word, row.Row)
			return
		}
		cs.Substitutions = append(cs.Substitutions, Substitution{
			Row:     row.Row,
			OldWord: row.Word,
			NewWord: row.Suggestions[action.Index],
		})

	case AddToDictionary:
		if !seen[row.Word] {
			seen[row.Word] = true
			cs.Additions = append(cs.Additions, row.Word)
		}

	case Delete:
		cs.Deletions = append(cs.Deletions, Deletion{Row: row.Row, Word: row.Word})

	case SubstituteLiteral:
		cs.Substitutions = append(cs.Substitutions, Substitution{
			Row:     row.Row,
			OldWord: row.Word,
			NewWord: action.Text,
		})
	}
}

// Apply rewrites the corpus rows in place. Substitutions and deletions whose
// word no longer boundary-matches the row's current text are skipped
// silently and not counted; the text was presumably already edited.
func Apply(changes *ChangeSet, rows []workbook.TextRow, counters *stats.RunCounters) {
	byRow := make(map[int]int, len(rows))
	for i, row := range rows {
		byRow[row.Row] = i
	}

	for _, sub := range changes.Substitutions {
		i, ok := byRow[sub.Row]
		if !ok {
			continue
		}
		if text, replaced := ReplaceWord(rows[i].Text, sub.OldWord, sub.NewWord); replaced {
			rows[i].Text = text
			counters.Inc(stats.UserWordsCorrected)
		}
	}

	for _, del := range changes.Deletions {
		i, ok := byRow[del.Row]
		if !ok {
			continue
		}
		if text, deleted := DeleteWord(rows[i].Text, del.Word); deleted {
			rows[i].Text = text
			counters.Inc(stats.UserWordsDeleted)
		}
	}
}
