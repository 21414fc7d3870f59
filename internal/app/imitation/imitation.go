// Package imitation tracks the author-style goal of a session and scores
// each line against it.
package imitation

import (
	"fmt"
	"strings"

	"github.com/gymnasion-dev/gymnasion/internal/domain"
)

// Assign sets the session's imitation target, replacing any prior one.
// Re-assigning the same author is a no-op.
func Assign(s *domain.Session, author *domain.Author) {
	if author == nil {
		return
	}
	s.ImitationTarget = author.ID
}

// Result is the outcome of scoring a line.
type Result struct {
	Verdict domain.Verdict
	// Note is the concrete stylistic adjustment for a weak match,
	// empty otherwise.
	Note string
}

// Score compares the line against the target author's profile. With no
// target (or a profile the caller could not resolve) the tracker is a
// no-op and reports NO_TARGET; it never fails.
func Score(author *domain.Author, tokens []string, tags []domain.POSTag) Result {
	if author == nil {
		return Result{Verdict: domain.VerdictNoTarget}
	}

	if author.SentenceMax > 0 && len(tokens) > author.SentenceMax {
		return weak(author, author.AdviceLength,
			fmt.Sprintf("%s favored lines of at most %d words; this one runs %d.",
				author.Name, author.SentenceMax, len(tokens)))
	}
	if len(tokens) < author.SentenceMin {
		return weak(author, author.AdviceLength,
			fmt.Sprintf("%s stretched lines past %d words; give this one room.",
				author.Name, author.SentenceMin))
	}

	if len(author.Vocabulary) > 0 && !sharesVocabulary(author, tokens) {
		return weak(author, author.AdviceVocabulary,
			fmt.Sprintf("Borrow from %s's vocabulary: %s.",
				author.Name, strings.Join(firstN(author.Vocabulary, 3), ", ")))
	}

	return Result{Verdict: domain.VerdictStrongMatch}
}

func weak(author *domain.Author, advice, fallback string) Result {
	note := advice
	if note == "" {
		note = fallback
	}
	return Result{Verdict: domain.VerdictWeakMatch, Note: note}
}

func sharesVocabulary(author *domain.Author, tokens []string) bool {
	set := make(map[string]bool, len(tokens))
	for _, tok := range tokens {
		set[tok] = true
	}
	for _, w := range author.Vocabulary {
		if set[strings.ToLower(w)] {
			return true
		}
	}
	return false
}

func firstN(words []string, n int) []string {
	if len(words) < n {
		return words
	}
	return words[:n]
}
