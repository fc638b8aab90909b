package stats

import (
	"strings"
	"testing"
	"time"
)

func TestRunCounters(t *testing.T) {
	c := NewRunCounters("check")

	if c.RunID() == "" {
		t.Error("RunID should not be empty")
	}
	if c.Phase() != "check" {
		t.Errorf("Phase = %q, want %q", c.Phase(), "check")
	}

	c.Inc(WordsChecked)
	c.Inc(WordsChecked)
	c.Add(WordsMisspelled, 3)

	if got := c.Get(WordsChecked); got != 2 {
		t.Errorf("Get(WordsChecked) = %d, want 2", got)
	}
	if got := c.Get(WordsMisspelled); got != 3 {
		t.Errorf("Get(WordsMisspelled) = %d, want 3", got)
	}
	if got := c.Get(WordsCorrected); got != 0 {
		t.Errorf("Get(WordsCorrected) = %d, want 0", got)
	}

	snapshot := c.Snapshot()
	snapshot[WordsChecked] = 99
	if got := c.Get(WordsChecked); got != 2 {
		t.Error("Snapshot should be a copy, not a view")
	}
}

func TestSaveAndLoadHistory(t *testing.T) {
	dir := t.TempDir()

	history, err := LoadHistory(dir)
	if err != nil {
		t.Fatalf("LoadHistory on empty dir: %v", err)
	}
	if len(history) != 0 {
		t.Fatalf("LoadHistory on empty dir = %d records, want 0", len(history))
	}

	c1 := NewRunCounters("check")
	c1.Add(WordsChecked, 120)
	if err := SaveRun(dir, c1); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	c2 := NewRunCounters("apply")
	c2.Add(UserWordsCorrected, 4)
	if err := SaveRun(dir, c2); err != nil {
		t.Fatalf("SaveRun: %v", err)
	}

	history, err = LoadHistory(dir)
	if err != nil {
		t.Fatalf("LoadHistory: %v", err)
	}
	if len(history) != 2 {
		t.Fatalf("LoadHistory = %d records, want 2", len(history))
	}
	if history[0].Phase != "check" || history[1].Phase != "apply" {
		t.Errorf("history phases = %q, %q", history[0].Phase, history[1].Phase)
	}
	if history[0].Counts[WordsChecked] != 120 {
		t.Errorf("persisted count = %d, want 120", history[0].Counts[WordsChecked])
	}
	if history[0].RunID == history[1].RunID {
		t.Error("runs should have distinct IDs")
	}
}

func TestFormatCheckSummary(t *testing.T) {
	c := NewRunCounters("check")
	c.Add(WordsChecked, 50)
	c.Add(WordsMisspelled, 5)
	c.Add(WordsCorrected, 2)
	c.Add(WordsNotCorrected, 1)
	c.Add(GoogleWordsCorrected, 1)
	c.Add(GoogleWordsNotCorrected, 1)

	out := FormatCheckSummary(c)
	for _, want := range []string{
		"Checked 50 words.",
		"Found 5 misspelt words.",
		"Corrected 2 words.",
		"Unable to correct 1 words.",
		"Google corrected 1 words.",
		"Google could not correct 1 words.",
	} {
		if !strings.Contains(out, want) {
			t.Errorf("summary missing %q:\n%s", want, out)
		}
	}
}

func TestFormatDuration(t *testing.T) {
	cases := []struct {
		d    time.Duration
		want string
	}{
		{45100 * time.Millisecond, "45.1s"},
		{17*time.Minute + 12*time.Second, "17m 12.0s"},
		{7*time.Hour + 5*time.Minute + 32*time.Second, "7h 5m 32.0s"},
		{0, "0.0s"},
	}
	for _, c := range cases {
		if got := FormatDuration(c.d); got != c.want {
			t.Errorf("FormatDuration(%v) = %q, want %q", c.d, got, c.want)
		}
	}
}
