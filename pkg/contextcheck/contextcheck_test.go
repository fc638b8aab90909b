package contextcheck

import "testing"

func TestFlaggedAcceptsCorpusBigram(t *testing.T) {
	v := New(nil)

	// "the budget" appears in the training corpus, so a substituted "budget"
	// fits its sentence.
	if v.Flagged("budget", "the management team approved the budget") {
		t.Error("Flagged(budget) = true in a sentence the corpus supports")
	}
}

func TestFlaggedUnknownWord(t *testing.T) {
	v := New(nil)

	if !v.Flagged("xqzvw", "the team reviewed the xqzvw report") {
		t.Error("Flagged(xqzvw) = false, want true for an out-of-vocabulary word")
	}
}

func TestFlaggedKnownWordWithoutEvidence(t *testing.T) {
	known := func(word string) bool { return word == "ledger" }
	v := New(known)

	// The callback vouches for the word, but the corpus has never seen it
	// next to any of its neighbors.
	if !v.Flagged("ledger", "the ledger team approved the budget") {
		t.Error("Flagged(ledger) = false, want true without adjacency evidence")
	}
}

func TestFlaggedTrustsCorpusWords(t *testing.T) {
	v := New(nil)

	// "budget" is corpus-attested, so it passes even in a word order the
	// corpus has never seen.
	if v.Flagged("budget", "budget shares announcement") {
		t.Error("Flagged(budget) = true, corpus words need no adjacency evidence")
	}
}

func TestFlaggedIgnoresOtherTokens(t *testing.T) {
	v := New(nil)

	// Only the candidate word's membership in the flagged set matters; other
	// anomalous tokens in the sentence do not flag it.
	if v.Flagged("budget", "the xqzvw team approved the budget") {
		t.Error("Flagged(budget) = true because of an unrelated anomalous token")
	}
}

func TestFlaggedIsCaseInsensitive(t *testing.T) {
	v := New(nil)

	if !v.Flagged("Xqzvw", "the team reviewed the Xqzvw, report") {
		t.Error("Flagged should lowercase and strip before matching")
	}
}
