// Package lexicon holds the pure lexical utilities: tokenizer, coarse
// part-of-speech tagger and structural signatures. Everything here is a
// total function over its input; there is no state and no failure mode.
package lexicon

import (
	"strings"
	"unicode"

	"github.com/gymnasion-dev/gymnasion/internal/domain"
)

// Tokenize splits a line into lower-cased word tokens with surrounding
// punctuation stripped. Empty or all-punctuation input yields an empty
// slice. Tokens stay index-aligned with the whitespace fields of the raw
// line, which the entity scan relies on.
func Tokenize(line string) []string {
	fields := strings.Fields(line)
	tokens := make([]string, 0, len(fields))
	for _, f := range fields {
		w := normalize(f)
		if w != "" {
			tokens = append(tokens, w)
		}
	}
	return tokens
}

func normalize(field string) string {
	trimmed := strings.TrimFunc(field, func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r)
	})
	return strings.ToLower(trimmed)
}

// TagPOS assigns a coarse tag to every token, index for index. The
// tagger is a best-effort heuristic: stopwords and anything it cannot
// classify degrade to OTHER rather than failing.
func TagPOS(tokens []string) []domain.POSTag {
	tags := make([]domain.POSTag, len(tokens))
	for i, tok := range tokens {
		tags[i] = tagWord(tok)
	}
	return tags
}

func tagWord(word string) domain.POSTag {
	if stopwords[word] {
		return domain.TagOther
	}
	if nouns[word] {
		return domain.TagNoun
	}
	// Crude plural handling: "mountains" tags like "mountain".
	if strings.HasSuffix(word, "s") && nouns[strings.TrimSuffix(word, "s")] {
		return domain.TagNoun
	}
	if verbs[word] {
		return domain.TagVerb
	}
	if adjectives[word] {
		return domain.TagAdjective
	}
	return tagBySuffix(word)
}

func tagBySuffix(word string) domain.POSTag {
	if len(word) < 5 {
		return domain.TagOther
	}
	switch {
	case strings.HasSuffix(word, "ness"),
		strings.HasSuffix(word, "tion"),
		strings.HasSuffix(word, "ment"),
		strings.HasSuffix(word, "ship"):
		return domain.TagNoun
	case strings.HasSuffix(word, "ing"),
		strings.HasSuffix(word, "ed"):
		return domain.TagVerb
	case strings.HasSuffix(word, "ous"),
		strings.HasSuffix(word, "ful"),
		strings.HasSuffix(word, "ive"),
		strings.HasSuffix(word, "less"):
		return domain.TagAdjective
	}
	return domain.TagOther
}

// IsStopword reports whether a normalized word is function vocabulary
// and therefore never a theme candidate.
func IsStopword(word string) bool {
	return stopwords[word]
}

// StructuralSignature builds the fixed-size descriptor used for
// repetition comparison: the tag sequence of the first prefixLen tokens
// plus a sentence length bucket.
func StructuralSignature(tokens []string, tags []domain.POSTag, prefixLen int) domain.Signature {
	if prefixLen <= 0 {
		prefixLen = 4
	}
	n := prefixLen
	if len(tags) < n {
		n = len(tags)
	}
	parts := make([]string, n)
	for i := 0; i < n; i++ {
		parts[i] = string(tags[i])
	}
	return domain.Signature{
		TagPrefix:    strings.Join(parts, "-"),
		LengthBucket: len(tokens) / 5,
	}
}

// Entity is a capitalized word from the raw line, assumed to name a
// person or place.
type Entity struct {
	Word       string
	TokenIndex int
}

// Entities scans the raw line for capitalized words. The first field is
// skipped: sentence-initial capitalization says nothing about names.
func Entities(line string) []Entity {
	fields := strings.Fields(line)
	var out []Entity
	idx := -1
	for i, f := range fields {
		w := normalize(f)
		if w == "" {
			continue
		}
		idx++
		if i == 0 || len(w) < 3 || stopwords[w] {
			continue
		}
		r := []rune(f)
		if unicode.IsUpper(r[0]) {
			out = append(out, Entity{Word: capitalize(w), TokenIndex: idx})
		}
	}
	return out
}

func capitalize(w string) string {
	r := []rune(w)
	if len(r) == 0 {
		return w
	}
	r[0] = unicode.ToUpper(r[0])
	return string(r)
}

// IsPlaceName applies the crude suffix heuristic the entity prompts use
// to distinguish places from people.
func IsPlaceName(name string) bool {
	lower := strings.ToLower(name)
	for _, suf := range []string{"land", "ton", "ville", "berg", "burg"} {
		if strings.HasSuffix(lower, suf) {
			return true
		}
	}
	return false
}
