// Package ledger tracks per-session word usage and the banishment set.
package ledger

import "github.com/gymnasion-dev/gymnasion/internal/domain"

// BanishEvent records a word entering the banished set, with the count
// that triggered it.
type BanishEvent struct {
	Word  string
	Count int
}

// RecordUsage increments the session's usage count for every token and
// banishes each word whose running count reaches threshold at this line.
// The trigger is the exact occurrence where the count first reaches the
// threshold; later occurrences of an already-banished word never emit a
// fresh event. Returned events preserve token order.
func RecordUsage(s *domain.Session, tokens []string, threshold int) []BanishEvent {
	var events []BanishEvent
	for _, tok := range tokens {
		s.WordCounts[tok]++
		if s.WordCounts[tok] >= threshold && !s.BanishedWords[tok] {
			s.BanishedWords[tok] = true
			events = append(events, BanishEvent{Word: tok, Count: s.WordCounts[tok]})
		}
	}
	return events
}

// IsBanished reports whether a normalized word is banished.
func IsBanished(s *domain.Session, word string) bool {
	return s.BanishedWords[word]
}

// CheckViolations returns the tokens already banished before this line,
// in token order without duplicates. Call it before RecordUsage so a
// word banished by the current line is an event, not a violation.
func CheckViolations(s *domain.Session, tokens []string) []string {
	var out []string
	seen := make(map[string]bool)
	for _, tok := range tokens {
		if s.BanishedWords[tok] && !seen[tok] {
			seen[tok] = true
			out = append(out, tok)
		}
	}
	return out
}
