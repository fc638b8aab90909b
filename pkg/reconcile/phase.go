package reconcile

import (
	"log"

	"github.com/Grettz/finspell/pkg/stats"
	"github.com/Grettz/finspell/pkg/workbook"
)

// PhaseConfig names the files of one reconciliation run.
type PhaseConfig struct {
	// ResultFile is the reviewed result workbook.
	ResultFile string
	// InputFile is the original text corpus workbook.
	InputFile string
	// OutputFile receives the corpus copy with the changes applied.
	OutputFile string
	// DictionaryFile is the custom dictionary workbook; additions are
	// appended to it in place.
	DictionaryFile string
}

// RunApplyPhase runs one complete reconciliation: read the reviewed result
// workbook, build the change set, rewrite the corpus into the output file
// and append dictionary additions. Reconciliation runs must not overlap; the
// dictionary file is rewritten whole.
func RunApplyPhase(cfg PhaseConfig) (*stats.RunCounters, error) {
	counters := stats.NewRunCounters("apply")

	log.Printf("[Reconcile] Applying word corrections and custom user actions to text...")

	notCorrected, corrected, err := workbook.LoadReview(cfg.ResultFile)
	if err != nil {
		return nil, err
	}
	changes := BuildChangeSet(notCorrected, corrected)

	rows, err := workbook.LoadTextRows(cfg.InputFile)
	if err != nil {
		return nil, err
	}

	Apply(changes, rows, counters)

	if err := workbook.SaveTextRows(cfg.InputFile, cfg.OutputFile, rows); err != nil {
		return nil, err
	}

	if err := workbook.AppendDictionaryWords(cfg.DictionaryFile, changes.Additions); err != nil {
		return nil, err
	}
	counters.Add(stats.UserWordsAdded, len(changes.Additions))

	return counters, nil
}
