package domain

import (
	"sort"
	"time"
)

// ThemeRecord tracks one content word across the session.
// FirstSeenLine never changes after the record is created.
type ThemeRecord struct {
	Term          string
	FirstSeenLine int
	LastSeenLine  int
}

// Signature is a compact descriptor of a line's grammatical shape,
// used to detect repetitive sentence construction.
type Signature struct {
	TagPrefix    string // POS tags of the first few tokens, joined
	LengthBucket int
}

// Matches reports whether two signatures count as repetitive.
// An identical tag prefix is enough; the length bucket is kept for
// display but does not gate the match.
func (s Signature) Matches(other Signature) bool {
	return s.TagPrefix != "" && s.TagPrefix == other.TagPrefix
}

// Session is the whole mutable state of one training conversation.
// All mutation happens inside the trainer under the per-session lock;
// stores only load and persist it.
type Session struct {
	ID        SessionID
	Status    Status
	CreatedAt time.Time
	UpdatedAt time.Time

	PreferredMode TrainingMode

	LineCount        int
	WordCounts       map[string]int
	BanishedWords    map[string]bool
	ImitationTarget  string // author id; empty means no imitation goal
	RecentSignatures []Signature
	Themes           map[string]*ThemeRecord
	UsedQuotes       map[string]bool
}

// NewSession creates an active, empty session.
func NewSession(id SessionID, mode TrainingMode, now time.Time) *Session {
	if mode == "" {
		mode = ModeMixed
	}
	return &Session{
		ID:            id,
		Status:        StatusActive,
		CreatedAt:     now,
		UpdatedAt:     now,
		PreferredMode: mode,
		WordCounts:    make(map[string]int),
		BanishedWords: make(map[string]bool),
		Themes:        make(map[string]*ThemeRecord),
		UsedQuotes:    make(map[string]bool),
	}
}

// TotalWords is the number of word tokens accepted across the session.
func (s *Session) TotalWords() int {
	total := 0
	for _, n := range s.WordCounts {
		total += n
	}
	return total
}

// BanishedList returns the banished words sorted, for stable display.
func (s *Session) BanishedList() []string {
	out := make([]string, 0, len(s.BanishedWords))
	for w := range s.BanishedWords {
		out = append(out, w)
	}
	sort.Strings(out)
	return out
}
