package spellcheck

// Options control the checking phase.
type Options struct {
	// ContextWords is the number of neighboring words captured either side
	// of a misspelled word for the reviewer's context window.
	ContextWords int

	// Auto enables automatic acceptance of the first suggestion the context
	// validator does not flag.
	Auto bool

	// Suggest enables the suggestion engine. With it off no replacement
	// candidates are computed and every misspelling is recorded as
	// not corrected.
	Suggest bool

	// GoogleSC enables the external search-engine arbitration fallback for
	// words no suggestion could be auto-accepted for.
	GoogleSC bool

	// Debug records every checked token for the raw token dump.
	Debug bool
}

// DefaultOptions mirrors the tool's historical defaults: everything on
// except debug, five context words.
func DefaultOptions() Options {
	return Options{
		ContextWords: 5,
		Auto:         true,
		Suggest:      true,
		GoogleSC:     true,
	}
}

// similarityCutoff is the minimum string similarity an arbitration candidate
// must have to the misspelled word to be accepted.
const similarityCutoff float32 = 0.4

// searchURLPrefix builds the reviewer-facing lookup links recorded with
// every result row.
const searchURLPrefix = "http://www.google.com/search?q="
