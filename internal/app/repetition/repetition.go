// Package repetition compares each line's structural signature against
// the most recent lines and flags repetitive construction.
package repetition

import "github.com/gymnasion-dev/gymnasion/internal/domain"

// Check compares the new signature against the session's window of the
// last K signatures and reports whether any of them matches. The window
// is then advanced (append, evict oldest past K) regardless of the
// outcome so it always holds exactly the most recent K lines.
func Check(s *domain.Session, sig domain.Signature, window int) bool {
	if window <= 0 {
		window = 3
	}

	matched := false
	for _, prev := range s.RecentSignatures {
		if sig.Matches(prev) {
			matched = true
			break
		}
	}

	s.RecentSignatures = append(s.RecentSignatures, sig)
	if len(s.RecentSignatures) > window {
		s.RecentSignatures = s.RecentSignatures[len(s.RecentSignatures)-window:]
	}

	return matched
}
