package spellcheck

import (
	"strings"
	"testing"
)

func TestFormatCorrection(t *testing.T) {
	out := FormatCorrection("... the budgett was approved ...", "budgett", "budget")

	if !strings.Contains(out, "\033[1mbudget\033[0m") {
		t.Errorf("replacement not emphasized: %q", out)
	}
	if !strings.Contains(out, strikethrough("budgett")) {
		t.Errorf("old word not struck through: %q", out)
	}
	if !strings.HasPrefix(out, "... the ") {
		t.Errorf("surrounding context altered: %q", out)
	}
}

func TestFormatCorrectionIgnoresPunctuation(t *testing.T) {
	out := FormatCorrection("the (budgett) was approved", "budgett", "budget")
	if !strings.Contains(out, strikethrough("budgett")) {
		t.Errorf("parenthesized word not matched: %q", out)
	}
	if !strings.HasPrefix(out, "the (") {
		t.Errorf("leading punctuation lost: %q", out)
	}
}

func TestFormatCorrectionNoMatch(t *testing.T) {
	in := "the budget was approved"
	if out := FormatCorrection(in, "missing", "present"); out != in {
		t.Errorf("FormatCorrection = %q, want input unchanged", out)
	}
}

func TestSearchURL(t *testing.T) {
	got := searchURL("thier budget")
	want := "http://www.google.com/search?q=thier+budget"
	if got != want {
		t.Errorf("searchURL = %q, want %q", got, want)
	}
}
