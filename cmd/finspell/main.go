package main

import (
	"context"
	"flag"
	"fmt"
	"log"
	"os"
	"os/signal"
	"path/filepath"

	"github.com/Grettz/finspell/pkg/reconcile"
	"github.com/Grettz/finspell/pkg/spellcheck"
	"github.com/Grettz/finspell/pkg/stats"
	"github.com/Grettz/finspell/pkg/workbook"
)

var (
	inputFile      = flag.String("input", "text.xlsx", "Workbook holding the text corpus")
	dictFile       = flag.String("dict", "dictionary.xlsx", "Workbook holding the custom dictionary")
	resultFile     = flag.String("result", "results.xlsx", "Review workbook (written by check, read by apply)")
	outputFile     = flag.String("output", "text_corrected.xlsx", "Workbook receiving the corrected text (apply mode)")
	debugFile      = flag.String("debug-file", "debug.xlsx", "Workbook receiving the raw token dump in debug mode")
	dataDir        = flag.String("data-dir", filepath.Join(".", "data"), "Directory to store run history")
	contextWords   = flag.Int("context-words", 5, "Words of context captured on each side of a misspelling")
	noAuto         = flag.Bool("no-auto", false, "Disable automatic acceptance of single suggestions")
	noSuggest      = flag.Bool("no-suggestions", false, "Disable spelling suggestions")
	noGoogle       = flag.Bool("no-google", false, "Disable the search-engine arbitration step")
	noContextModel = flag.Bool("no-context-model", false, "Skip loading the context model")
	debug          = flag.Bool("debug", false, "Dump every checked token to the debug workbook")
)

func usage() {
	fmt.Fprintf(flag.CommandLine.Output(), "Usage: %s [flags] <check|apply|dedupe>\n\n", os.Args[0])
	fmt.Fprintf(flag.CommandLine.Output(), "Modes:\n")
	fmt.Fprintf(flag.CommandLine.Output(), "  check    Spell check the text corpus and write the review workbook\n")
	fmt.Fprintf(flag.CommandLine.Output(), "  apply    Apply reviewer decisions from the review workbook back onto the text\n")
	fmt.Fprintf(flag.CommandLine.Output(), "  dedupe   Remove duplicate text rows from the corpus workbook in place\n\n")
	fmt.Fprintf(flag.CommandLine.Output(), "Flags:\n")
	flag.PrintDefaults()
}

func main() {
	flag.Usage = usage
	flag.Parse()

	if flag.NArg() > 1 {
		usage()
		os.Exit(2)
	}
	mode := "check"
	if flag.NArg() == 1 {
		mode = flag.Arg(0)
	}

	if err := os.MkdirAll(*dataDir, 0755); err != nil {
		log.Fatalf("Failed to create data directory: %v", err)
	}

	ctx, cancel := signal.NotifyContext(context.Background(), os.Interrupt)
	defer cancel()

	var counters *stats.RunCounters
	var err error

	switch mode {
	case "check":
		opts := spellcheck.DefaultOptions()
		opts.ContextWords = *contextWords
		opts.Auto = !*noAuto
		opts.Suggest = !*noSuggest
		opts.GoogleSC = !*noGoogle
		opts.Debug = *debug

		counters, err = spellcheck.RunCheckPhase(ctx, spellcheck.PhaseConfig{
			InputFile:        *inputFile,
			DictionaryFile:   *dictFile,
			ResultFile:       *resultFile,
			DebugFile:        *debugFile,
			Options:          opts,
			LoadContextModel: opts.Auto && !*noContextModel,
		})
		if err != nil {
			log.Fatalf("[SpellCheck] Check failed: %v", err)
		}
		fmt.Println(stats.FormatCheckSummary(counters))

	case "dedupe":
		fmt.Printf("Removing duplicate text rows from %s...\n", *inputFile)
		removed, err := workbook.DedupeTextRows(*inputFile)
		if err != nil {
			log.Fatalf("[Workbook] Dedupe failed: %v", err)
		}
		fmt.Printf("Removed %d duplicate lines!\n", removed)
		return

	case "apply":
		counters, err = reconcile.RunApplyPhase(reconcile.PhaseConfig{
			ResultFile:     *resultFile,
			InputFile:      *inputFile,
			OutputFile:     *outputFile,
			DictionaryFile: *dictFile,
		})
		if err != nil {
			log.Fatalf("[Reconcile] Apply failed: %v", err)
		}
		fmt.Println(stats.FormatApplySummary(counters))

	default:
		usage()
		os.Exit(2)
	}

	if err := stats.SaveRun(*dataDir, counters); err != nil {
		log.Printf("[Stats] Warning: could not save run history: %v", err)
	}
}
