package domain

// Author is a stylistic profile from the static catalog. The engine only
// reads it; profiles are immutable reference data.
type Author struct {
	ID   string
	Name string

	// Characteristic sentence length range, in word tokens.
	SentenceMin int
	SentenceMax int

	// Characteristic vocabulary; a line sharing at least one of these
	// words counts as lexically in style. Empty means no vocabulary check.
	Vocabulary []string

	// Concrete adjustments offered when a line misses the style.
	AdviceLength     string
	AdviceVocabulary string
}

// Quote is one entry from the quote source.
type Quote struct {
	Text        string
	Attribution string
	Keywords    []string
}
