package spellcheck

import (
	"context"
	"net/http"
	"net/http/httptest"
	"testing"

	"github.com/Grettz/finspell/pkg/arbitration"
	"github.com/Grettz/finspell/pkg/contextcheck"
	"github.com/Grettz/finspell/pkg/dictionary"
	"github.com/Grettz/finspell/pkg/stats"
	"github.com/Grettz/finspell/pkg/workbook"
)

// flagAll is a Validator that rejects every substitution.
type flagAll struct{}

func (flagAll) Flagged(word, sentence string) bool { return true }

func TestCheckerAutoAcceptsSupportedSuggestion(t *testing.T) {
	stack := dictionary.NewStack()
	validator := contextcheck.New(stack.IsKnown)
	counters := stats.NewRunCounters("check")

	checker := New(stack, validator, nil, DefaultOptions(), counters)
	rows := []workbook.TextRow{
		{Row: 2, Text: "the management team aproved the budget"},
	}
	if err := checker.Run(context.Background(), rows); err != nil {
		t.Fatalf("Run: %v", err)
	}

	corrected := checker.Corrected()
	if len(corrected) != 1 {
		t.Fatalf("corrected = %d rows, want 1: %+v", len(corrected), corrected)
	}
	if corrected[0].Word != "aproved" || corrected[0].Correction != "approved" {
		t.Errorf("corrected[0] = %+v", corrected[0])
	}
	if corrected[0].Row != 2 {
		t.Errorf("corrected row reference = %d, want 2", corrected[0].Row)
	}

	if got := counters.Get(stats.WordsChecked); got != 6 {
		t.Errorf("words checked = %d, want 6", got)
	}
	if got := counters.Get(stats.WordsMisspelled); got != 1 {
		t.Errorf("words misspelled = %d, want 1", got)
	}
	if got := counters.Get(stats.WordsCorrected); got != 1 {
		t.Errorf("words corrected = %d, want 1", got)
	}
}

func TestCheckerSkipsKnownAndExcludedWords(t *testing.T) {
	stack := dictionary.NewStack()
	counters := stats.NewRunCounters("check")

	opts := DefaultOptions()
	opts.Auto = false
	checker := New(stack, nil, nil, opts, counters)

	// A capitalized name, a short all-caps token and a token with a digit
	// are all exempt from checking.
	rows := []workbook.TextRow{
		{Row: 1, Text: "London USD Q3 budget"},
	}
	if err := checker.Run(context.Background(), rows); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if got := counters.Get(stats.WordsChecked); got != 4 {
		t.Errorf("words checked = %d, want 4", got)
	}
	if got := counters.Get(stats.WordsMisspelled); got != 0 {
		t.Errorf("words misspelled = %d, want 0", got)
	}
	if len(checker.NotCorrected()) != 0 {
		t.Errorf("not corrected = %+v, want none", checker.NotCorrected())
	}
}

func TestCheckerManualModeLeavesEverythingToReviewer(t *testing.T) {
	stack := dictionary.NewStack()
	counters := stats.NewRunCounters("check")

	opts := DefaultOptions()
	opts.Auto = false
	checker := New(stack, nil, nil, opts, counters)

	rows := []workbook.TextRow{
		{Row: 5, Text: "the budgett was approved"},
	}
	if err := checker.Run(context.Background(), rows); err != nil {
		t.Fatalf("Run: %v", err)
	}

	notCorrected := checker.NotCorrected()
	if len(notCorrected) != 1 {
		t.Fatalf("not corrected = %d rows, want 1", len(notCorrected))
	}
	if notCorrected[0].Word != "budgett" || notCorrected[0].Correction != "" {
		t.Errorf("notCorrected[0] = %+v", notCorrected[0])
	}
	if len(notCorrected[0].Suggestions) == 0 {
		t.Error("suggestions should still be recorded in manual mode")
	}
	// Manual rows await the reviewer; they are not counted as failures.
	if got := counters.Get(stats.WordsNotCorrected); got != 0 {
		t.Errorf("words not corrected = %d, want 0 in manual mode", got)
	}
}

func TestCheckerArbitration(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.Write([]byte(`<html><body><div id="main">
<p>Did you mean: <a href="/search?q=their+budget"><b>their</b> <b>budget</b></a></p>
</div></body></html>`))
	}))
	defer srv.Close()

	stack := dictionary.NewStack()
	counters := stats.NewRunCounters("check")
	arbiter := arbitration.NewClientWithDelay(srv.URL, 0)

	// A validator that rejects everything forces the arbitration path.
	checker := New(stack, flagAll{}, arbiter, DefaultOptions(), counters)
	rows := []workbook.TextRow{
		{Row: 3, Text: "thier budget was approved"},
	}
	if err := checker.Run(context.Background(), rows); err != nil {
		t.Fatalf("Run: %v", err)
	}

	corrected := checker.Corrected()
	if len(corrected) != 1 {
		t.Fatalf("corrected = %d rows, want 1: %+v", len(corrected), checker.NotCorrected())
	}
	if corrected[0].Word != "thier" || corrected[0].Correction != "their" {
		t.Errorf("corrected[0] = %+v", corrected[0])
	}
	if got := counters.Get(stats.GoogleWordsCorrected); got != 1 {
		t.Errorf("google words corrected = %d, want 1", got)
	}
}

func TestCheckerArbitrationFailureDegrades(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusForbidden)
	}))
	defer srv.Close()

	stack := dictionary.NewStack()
	counters := stats.NewRunCounters("check")
	arbiter := arbitration.NewClientWithDelay(srv.URL, 0)

	checker := New(stack, flagAll{}, arbiter, DefaultOptions(), counters)
	rows := []workbook.TextRow{
		{Row: 3, Text: "thier budget was approved"},
	}
	if err := checker.Run(context.Background(), rows); err != nil {
		t.Fatalf("Run: %v", err)
	}

	if len(checker.Corrected()) != 0 {
		t.Errorf("corrected = %+v, want none", checker.Corrected())
	}
	if len(checker.NotCorrected()) != 1 {
		t.Fatalf("not corrected = %d rows, want 1", len(checker.NotCorrected()))
	}
	if got := counters.Get(stats.GoogleWordsNotCorrected); got != 1 {
		t.Errorf("google words not corrected = %d, want 1", got)
	}
}

func TestCheckerDebugRecordsEveryToken(t *testing.T) {
	stack := dictionary.NewStack()
	counters := stats.NewRunCounters("check")

	opts := DefaultOptions()
	opts.Auto = false
	opts.Debug = true
	checker := New(stack, nil, nil, opts, counters)

	rows := []workbook.TextRow{
		{Row: 1, Text: "London (budget), Q3"},
	}
	if err := checker.Run(context.Background(), rows); err != nil {
		t.Fatalf("Run: %v", err)
	}

	words := checker.CheckedWords()
	want := []string{"London", "budget", "Q3"}
	if len(words) != len(want) {
		t.Fatalf("checked words = %v, want %v", words, want)
	}
	for i := range want {
		if words[i] != want[i] {
			t.Errorf("words[%d] = %q, want %q", i, words[i], want[i])
		}
	}
}

func TestClosestMatch(t *testing.T) {
	if got := closestMatch("thier", []string{"their", "there"}); got != "their" {
		t.Errorf("closestMatch(thier) = %q, want %q", got, "their")
	}
	if got := closestMatch("thier", []string{"completely", "unrelated"}); got != "" {
		t.Errorf("closestMatch below cutoff = %q, want empty", got)
	}
}
