package spellcheck

import (
	"context"
	"path/filepath"
	"testing"

	"github.com/xuri/excelize/v2"

	"github.com/Grettz/finspell/pkg/reconcile"
	"github.com/Grettz/finspell/pkg/stats"
	"github.com/Grettz/finspell/pkg/workbook"
)

func TestRunCheckPhase(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "text.xlsx")
	dictFile := filepath.Join(dir, "dict.xlsx")
	resultFile := filepath.Join(dir, "results.xlsx")
	debugFile := filepath.Join(dir, "debug.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "text")
	f.SetCellValue(sheet, "A2", "the management team aproved the budget")
	f.SetCellValue(sheet, "A3", "the ebitda forecast was approved")
	if err := f.SaveAs(inputFile); err != nil {
		t.Fatalf("SaveAs corpus: %v", err)
	}
	f.Close()

	f = excelize.NewFile()
	sheet = f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "ebitda | forecast")
	if err := f.SaveAs(dictFile); err != nil {
		t.Fatalf("SaveAs dictionary: %v", err)
	}
	f.Close()

	opts := DefaultOptions()
	opts.GoogleSC = false
	opts.Debug = true

	counters, err := RunCheckPhase(context.Background(), PhaseConfig{
		InputFile:        inputFile,
		DictionaryFile:   dictFile,
		ResultFile:       resultFile,
		DebugFile:        debugFile,
		Options:          opts,
		LoadContextModel: true,
	})
	if err != nil {
		t.Fatalf("RunCheckPhase: %v", err)
	}

	if got := counters.Get(stats.WordsChecked); got != 11 {
		t.Errorf("words checked = %d, want 11", got)
	}
	// "ebitda" and "forecast" come from the custom dictionary; only
	// "aproved" is misspelled.
	if got := counters.Get(stats.WordsMisspelled); got != 1 {
		t.Errorf("words misspelled = %d, want 1", got)
	}
	if got := counters.Get(stats.WordsCorrected); got != 1 {
		t.Errorf("words corrected = %d, want 1", got)
	}

	notCorrected, corrected, err := workbook.LoadReview(resultFile)
	if err != nil {
		t.Fatalf("LoadReview: %v", err)
	}
	if len(notCorrected) != 0 {
		t.Errorf("not corrected = %+v, want none", notCorrected)
	}
	if len(corrected) != 1 || corrected[0].Word != "aproved" || corrected[0].Correction != "approved" {
		t.Errorf("corrected = %+v", corrected)
	}
	if corrected[0].Row != 2 {
		t.Errorf("corrected row reference = %d, want 2", corrected[0].Row)
	}

	df, err := excelize.OpenFile(debugFile)
	if err != nil {
		t.Fatalf("OpenFile debug: %v", err)
	}
	defer df.Close()
	words, err := df.GetRows("Words Checked")
	if err != nil {
		t.Fatalf("GetRows debug: %v", err)
	}
	if len(words) != 11 {
		t.Errorf("debug words = %d, want 11", len(words))
	}
}

func TestDictionaryAdditionSurvivesSecondRun(t *testing.T) {
	dir := t.TempDir()
	inputFile := filepath.Join(dir, "text.xlsx")
	dictFile := filepath.Join(dir, "dict.xlsx")
	resultFile := filepath.Join(dir, "results.xlsx")
	outputFile := filepath.Join(dir, "text_corrected.xlsx")

	f := excelize.NewFile()
	sheet := f.GetSheetName(0)
	f.SetCellValue(sheet, "A1", "text")
	f.SetCellValue(sheet, "A2", "the zorblax budget was approved")
	if err := f.SaveAs(inputFile); err != nil {
		t.Fatalf("SaveAs corpus: %v", err)
	}
	f.Close()

	f = excelize.NewFile()
	if err := f.SaveAs(dictFile); err != nil {
		t.Fatalf("SaveAs dictionary: %v", err)
	}
	f.Close()

	opts := DefaultOptions()
	opts.Auto = false
	opts.GoogleSC = false

	cfg := PhaseConfig{
		InputFile:      inputFile,
		DictionaryFile: dictFile,
		ResultFile:     resultFile,
		Options:        opts,
	}

	counters, err := RunCheckPhase(context.Background(), cfg)
	if err != nil {
		t.Fatalf("first RunCheckPhase: %v", err)
	}
	if got := counters.Get(stats.WordsMisspelled); got != 1 {
		t.Fatalf("first run misspelled = %d, want 1", got)
	}

	// The reviewer sends the flagged word to the custom dictionary.
	f, err = excelize.OpenFile(resultFile)
	if err != nil {
		t.Fatalf("OpenFile results: %v", err)
	}
	f.SetCellValue(workbook.SheetNotCorrected, "A2", "add")
	if err := f.Save(); err != nil {
		t.Fatalf("Save reviewed results: %v", err)
	}
	f.Close()

	applyCounters, err := reconcile.RunApplyPhase(reconcile.PhaseConfig{
		ResultFile:     resultFile,
		InputFile:      inputFile,
		OutputFile:     outputFile,
		DictionaryFile: dictFile,
	})
	if err != nil {
		t.Fatalf("RunApplyPhase: %v", err)
	}
	if got := applyCounters.Get(stats.UserWordsAdded); got != 1 {
		t.Fatalf("user words added = %d, want 1", got)
	}

	counters, err = RunCheckPhase(context.Background(), cfg)
	if err != nil {
		t.Fatalf("second RunCheckPhase: %v", err)
	}
	if got := counters.Get(stats.WordsMisspelled); got != 0 {
		t.Errorf("second run misspelled = %d, want 0", got)
	}
	if got := counters.Get(stats.WordsChecked); got != 5 {
		t.Errorf("second run words checked = %d, want 5", got)
	}
}
