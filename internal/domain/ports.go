package domain

import "context"

// SessionStore defines session persistence. Implementations only load and
// save whole sessions; the trainer serializes access per session id, so a
// store never sees two concurrent writes for the same session.
type SessionStore interface {
	// GetOrCreate returns the canonical session for id, creating an
	// active empty one if the id is unseen. Under a racing create for
	// the same id exactly one session wins and both callers see it.
	GetOrCreate(ctx context.Context, id SessionID, mode TrainingMode) (*Session, error)

	// Get returns the session or ErrSessionNotFound.
	Get(ctx context.Context, id SessionID) (*Session, error)

	// Update persists the mutated session.
	Update(ctx context.Context, session *Session) error

	// Delete discards all state for id. Deleting an unseen id is a no-op.
	Delete(ctx context.Context, id SessionID) error

	// List returns up to limit sessions, most recently updated first.
	// limit <= 0 means no limit.
	List(ctx context.Context, limit int) ([]*Session, error)
}

// AuthorCatalog is the read-only author profile lookup.
type AuthorCatalog interface {
	// LookupAuthor returns the profile for name (case-insensitive) or
	// ErrUnknownAuthor.
	LookupAuthor(name string) (*Author, error)

	// DefaultAuthor picks a profile deterministically from seed, used
	// when the caller asks for an imitation goal without naming one.
	DefaultAuthor(seed string) *Author
}

// QuoteSource is the read-only quote lookup. QuotesFor returns the
// candidates for a theme or keyword, best match first; the trainer keeps
// the per-session bookkeeping of which quotes were already offered.
type QuoteSource interface {
	QuotesFor(keyword string) []Quote
}

// Elaboration is a candidate elaboration prompt picked by the trainer,
// handed to a Muse for phrasing.
type Elaboration struct {
	Kind       ElaborationKind
	Subject    string // the noun or entity the prompt is about
	TokenIndex int
	LineNumber int
}

type ElaborationKind string

const (
	ElaborateAdjective ElaborationKind = "adjective"
	ElaborateVerb      ElaborationKind = "verb"
	ElaborateObject    ElaborationKind = "object"
	ElaborateRelated   ElaborationKind = "related"
	ElaborateEntity    ElaborationKind = "entity"
)

// Muse turns an elaboration candidate into prompt text. Implementations
// may be deterministic table lookups or a generative model; the trainer
// falls back to the deterministic phrasing if a muse fails.
type Muse interface {
	PhraseElaboration(ctx context.Context, e Elaboration) (string, error)
}
