package dictionary

import "testing"

func TestLoadCustomSplitsPipedEntries(t *testing.T) {
	s := NewStack()
	loaded := s.LoadCustom([]string{
		"FL | Fla | Florida",
		"EBITDA",
		"",
		" | ",
	})
	if loaded != 4 {
		t.Fatalf("LoadCustom loaded %d words, want 4", loaded)
	}
	for _, w := range []string{"fl", "fla", "florida", "ebitda"} {
		if !s.IsKnown(w) {
			t.Errorf("IsKnown(%q) = false after LoadCustom", w)
		}
	}
}

func TestIsKnownLayers(t *testing.T) {
	s := NewStack()

	// General word list entries are lowercase; lookups are too.
	if !s.IsKnown("management") {
		t.Error("IsKnown(management) = false, want true")
	}
	if !s.IsKnown("their") {
		t.Error("IsKnown(their) = false, want true")
	}
	if s.IsKnown("Management") {
		t.Error("IsKnown expects callers to lowercase first")
	}
	if s.IsKnown("xqzvw") {
		t.Error("IsKnown(xqzvw) = true, want false")
	}
}

func TestAdd(t *testing.T) {
	s := NewStack()
	if s.IsKnown("finspell") {
		t.Fatal("IsKnown(finspell) = true before Add")
	}
	s.Add("  FinSpell  ")
	if !s.IsKnown("finspell") {
		t.Error("IsKnown(finspell) = false after Add")
	}
}

func TestSuggestCapped(t *testing.T) {
	s := NewStack()
	suggestions := s.Suggest("thier")
	if len(suggestions) == 0 {
		t.Fatal("Suggest(thier) returned no candidates")
	}
	if len(suggestions) > 3 {
		t.Errorf("Suggest returned %d candidates, want at most 3", len(suggestions))
	}
	found := false
	for _, c := range suggestions {
		if c == "their" {
			found = true
		}
	}
	if !found {
		t.Errorf("Suggest(thier) = %v, want it to include %q", suggestions, "their")
	}
}
