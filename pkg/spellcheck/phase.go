package spellcheck

import (
	"context"
	"log"

	"github.com/Grettz/finspell/pkg/arbitration"
	"github.com/Grettz/finspell/pkg/contextcheck"
	"github.com/Grettz/finspell/pkg/dictionary"
	"github.com/Grettz/finspell/pkg/stats"
	"github.com/Grettz/finspell/pkg/workbook"
)

// PhaseConfig names the files of one checking run.
type PhaseConfig struct {
	// InputFile is the text corpus workbook.
	InputFile string
	// DictionaryFile is the custom dictionary workbook.
	DictionaryFile string
	// ResultFile receives the two-sheet review workbook.
	ResultFile string
	// DebugFile receives the raw token dump when debug mode is on.
	DebugFile string

	Options Options

	// LoadContextModel controls whether the context validator is built at
	// all. Reconciliation-only workflows skip it to avoid the load cost.
	LoadContextModel bool
}

// RunCheckPhase runs one complete checking phase: load the dictionary and
// corpus, check every row, and write the result workbook. The returned
// counters hold the phase's final counts.
func RunCheckPhase(ctx context.Context, cfg PhaseConfig) (*stats.RunCounters, error) {
	counters := stats.NewRunCounters("check")

	entries, err := workbook.LoadDictionaryEntries(cfg.DictionaryFile)
	if err != nil {
		return nil, err
	}
	stack := dictionary.NewStack()
	loaded := stack.LoadCustom(entries)
	log.Printf("[SpellCheck] Loaded %d custom dictionary words", loaded)

	var validator contextcheck.Validator
	if cfg.LoadContextModel {
		log.Printf("[SpellCheck] Loading context model...")
		validator = contextcheck.New(stack.IsKnown)
		log.Printf("[SpellCheck] Context model loaded.")
	}

	var arbiter *arbitration.Client
	if cfg.Options.GoogleSC {
		arbiter = arbitration.NewClient()
	}

	rows, err := workbook.LoadTextRows(cfg.InputFile)
	if err != nil {
		return nil, err
	}

	log.Printf("[SpellCheck] Spell checking text...")
	checker := New(stack, validator, arbiter, cfg.Options, counters)
	if err := checker.Run(ctx, rows); err != nil {
		return nil, err
	}

	log.Printf("[SpellCheck] Saving results file...")
	if err := workbook.WriteResults(cfg.ResultFile, checker.NotCorrected(), checker.Corrected()); err != nil {
		return nil, err
	}
	if cfg.Options.Debug && cfg.DebugFile != "" {
		if err := workbook.WriteDebugWords(cfg.DebugFile, checker.CheckedWords()); err != nil {
			return nil, err
		}
	}
	log.Printf("[SpellCheck] Results saved!")

	return counters, nil
}
