// Package theme tracks the content words a writer introduces and whether
// they ever return to them.
package theme

import (
	"sort"

	"github.com/gymnasion-dev/gymnasion/internal/domain"
	"github.com/gymnasion-dev/gymnasion/internal/lexicon"
)

// Register inserts a theme record for every content word (noun, not a
// stopword) seen for the first time in the session and bumps
// LastSeenLine for themes recurring in this line. FirstSeenLine is never
// touched after insertion.
func Register(s *domain.Session, tokens []string, tags []domain.POSTag, currentLine int) {
	for i, tok := range tokens {
		if tags[i] != domain.TagNoun || lexicon.IsStopword(tok) {
			continue
		}
		if rec, ok := s.Themes[tok]; ok {
			rec.LastSeenLine = currentLine
			continue
		}
		s.Themes[tok] = &domain.ThemeRecord{
			Term:          tok,
			FirstSeenLine: currentLine,
			LastSeenLine:  currentLine,
		}
	}
}

// Stale returns the themes whose last occurrence is older than
// currentLine - gap, ordered oldest unresolved thread first (earliest
// FirstSeenLine, then term for a total order).
func Stale(s *domain.Session, currentLine, gap int) []string {
	var stale []*domain.ThemeRecord
	for _, rec := range s.Themes {
		if rec.LastSeenLine < currentLine-gap {
			stale = append(stale, rec)
		}
	}
	sort.Slice(stale, func(i, j int) bool {
		if stale[i].FirstSeenLine != stale[j].FirstSeenLine {
			return stale[i].FirstSeenLine < stale[j].FirstSeenLine
		}
		return stale[i].Term < stale[j].Term
	})

	out := make([]string, len(stale))
	for i, rec := range stale {
		out[i] = rec.Term
	}
	return out
}
