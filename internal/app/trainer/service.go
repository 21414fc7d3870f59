// Package trainer is the session state machine and line-analysis engine.
// One call to SubmitLine runs the whole battery of analyzers over a line
// and synthesizes a single Feedback with fixed precedence rules.
package trainer

import (
	"context"
	"strings"
	"sync"
	"time"

	"github.com/gymnasion-dev/gymnasion/internal/app/imitation"
	"github.com/gymnasion-dev/gymnasion/internal/app/ledger"
	"github.com/gymnasion-dev/gymnasion/internal/app/repetition"
	"github.com/gymnasion-dev/gymnasion/internal/app/theme"
	"github.com/gymnasion-dev/gymnasion/internal/domain"
	"github.com/gymnasion-dev/gymnasion/internal/lexicon"
	"github.com/gymnasion-dev/gymnasion/internal/observability"
)

// SentinelLine ends a session.
const SentinelLine = "***"

const emptyLineReprompt = "Please give me some words to work with, student."

// Tuning holds the fixed analysis constants.
type Tuning struct {
	BanishThreshold  int
	RepetitionWindow int
	CohesionGap      int
	SignaturePrefix  int
}

func DefaultTuning() Tuning {
	return Tuning{
		BanishThreshold:  3,
		RepetitionWindow: 3,
		CohesionGap:      5,
		SignaturePrefix:  4,
	}
}

type Service struct {
	store   domain.SessionStore
	catalog domain.AuthorCatalog
	quotes  domain.QuoteSource
	muse    domain.Muse
	backup  domain.Muse // deterministic fallback when the muse fails
	tuning  Tuning
	now     func() time.Time

	// One mutex per session id: analysis reads and writes several
	// session fields non-atomically, so in-flight lines for the same
	// session must be serialized. Different sessions never contend.
	// Mutexes are never removed, not even on reset: a waiter parked on
	// the old mutex must stay serialized with whoever mints the next
	// session under the same id. The map is bounded by distinct ids,
	// like the store itself.
	locks sync.Map
}

func NewService(
	store domain.SessionStore,
	cat domain.AuthorCatalog,
	quotes domain.QuoteSource,
	m domain.Muse,
	backup domain.Muse,
	tuning Tuning,
) *Service {
	if tuning.BanishThreshold <= 0 {
		tuning = DefaultTuning()
	}
	return &Service{
		store:   store,
		catalog: cat,
		quotes:  quotes,
		muse:    m,
		backup:  backup,
		tuning:  tuning,
		now:     time.Now,
	}
}

func (s *Service) lockFor(id domain.SessionID) *sync.Mutex {
	mu, _ := s.locks.LoadOrStore(id, &sync.Mutex{})
	return mu.(*sync.Mutex)
}

// SubmitLine analyzes one line against the session's state, mutates the
// state and returns the synthesized Feedback. The session is created on
// first reference. modeOverride, when non-empty, selects the prompt
// kinds for this line only.
func (s *Service) SubmitLine(ctx context.Context, id domain.SessionID, rawLine string, modeOverride domain.TrainingMode) (*domain.Feedback, error) {
	log := observability.LoggerFromContext(ctx).With("session_id", id)

	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.store.GetOrCreate(ctx, id, modeOverride)
	if err != nil {
		log.Error("failed to load session", "error", err)
		return nil, err
	}

	if sess.Status == domain.StatusEnded {
		return nil, domain.ErrSessionClosed
	}

	trimmed := strings.TrimSpace(rawLine)

	if trimmed == SentinelLine {
		sess.Status = domain.StatusEnded
		sess.UpdatedAt = s.now()
		if err := s.store.Update(ctx, sess); err != nil {
			log.Error("failed to persist ended session", "error", err)
			return nil, err
		}
		log.Info("session ended", "lines", sess.LineCount, "banished", len(sess.BanishedWords))
		return domain.Snapshot(sess), nil
	}

	tokens := lexicon.Tokenize(trimmed)
	if len(tokens) == 0 {
		// Invalid input is a no-op line with a gentle reprompt; no
		// state mutates and lineCount does not advance.
		fb := domain.Snapshot(sess)
		fb.Prompts = []domain.Prompt{{Kind: domain.PromptReprompt, Text: emptyLineReprompt}}
		return fb, nil
	}

	tags := lexicon.TagPOS(tokens)

	sess.LineCount++
	line := sess.LineCount

	// The analyzer battery, in fixed order. Violations are checked
	// before usage recording so a word banished by this very line is
	// an event, not a violation.
	violations := ledger.CheckViolations(sess, tokens)
	events := ledger.RecordUsage(sess, tokens, s.tuning.BanishThreshold)

	sig := lexicon.StructuralSignature(tokens, tags, s.tuning.SignaturePrefix)
	repeated := repetition.Check(sess, sig, s.tuning.RepetitionWindow)

	theme.Register(sess, tokens, tags, line)
	stale := theme.Stale(sess, line, s.tuning.CohesionGap)

	var author *domain.Author
	if sess.ImitationTarget != "" {
		// A profile missing from the catalog degrades to no signal.
		author, _ = s.catalog.LookupAuthor(sess.ImitationTarget)
	}
	imitated := imitation.Score(author, tokens, tags)

	prompts := s.assemble(ctx, sess, lineInput{
		tokens:       tokens,
		tags:         tags,
		rawLine:      trimmed,
		lineNumber:   line,
		mode:         s.effectiveMode(sess, modeOverride),
		violations:   violations,
		banishEvents: events,
		repeated:     repeated,
		staleThemes:  stale,
		author:       author,
		imitated:     imitated,
	})

	sess.UpdatedAt = s.now()
	if err := s.store.Update(ctx, sess); err != nil {
		log.Error("failed to persist session", "error", err)
		return nil, err
	}

	log.Info("line analyzed",
		"line", line,
		"tokens", len(tokens),
		"prompts", len(prompts),
	)

	fb := domain.Snapshot(sess)
	fb.Prompts = prompts
	return fb, nil
}

// Status returns the session's display snapshot without running any
// analysis. Unknown ids fail with ErrSessionNotFound. The per-session
// lock is held while snapshotting: the memory store hands out the live
// session, so an unlocked read would race an in-flight SubmitLine.
func (s *Service) Status(ctx context.Context, id domain.SessionID) (*domain.Feedback, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	return domain.Snapshot(sess), nil
}

// ResetSession discards all state for the id; the next SubmitLine
// recreates it fresh.
func (s *Service) ResetSession(ctx context.Context, id domain.SessionID) error {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	if err := s.store.Delete(ctx, id); err != nil {
		return err
	}

	observability.LoggerFromContext(ctx).Info("session reset", "session_id", id)
	return nil
}

// AssignAuthor sets the session's imitation target. An empty name asks
// the catalog for its default pick. An unknown name fails with
// ErrUnknownAuthor and leaves the target unchanged.
func (s *Service) AssignAuthor(ctx context.Context, id domain.SessionID, name string) (*domain.Feedback, error) {
	mu := s.lockFor(id)
	mu.Lock()
	defer mu.Unlock()

	sess, err := s.store.GetOrCreate(ctx, id, "")
	if err != nil {
		return nil, err
	}
	if sess.Status == domain.StatusEnded {
		return nil, domain.ErrSessionClosed
	}

	var author *domain.Author
	if strings.TrimSpace(name) == "" {
		author = s.catalog.DefaultAuthor(string(id))
	} else {
		author, err = s.catalog.LookupAuthor(name)
		if err != nil {
			return nil, err
		}
	}

	imitation.Assign(sess, author)
	sess.UpdatedAt = s.now()
	if err := s.store.Update(ctx, sess); err != nil {
		return nil, err
	}

	observability.LoggerFromContext(ctx).Info("imitation target assigned",
		"session_id", id, "author", author.ID)

	fb := domain.Snapshot(sess)
	fb.Prompts = []domain.Prompt{{
		Kind:    domain.PromptImitationNote,
		Text:    "Try that again, in the style of " + author.Name + ".",
		Subject: author.ID,
	}}
	return fb, nil
}

// ListSessions returns display snapshots for up to limit sessions.
// Each session is snapshotted under its own lock, for the same reason
// as Status.
func (s *Service) ListSessions(ctx context.Context, limit int) ([]*domain.Feedback, error) {
	sessions, err := s.store.List(ctx, limit)
	if err != nil {
		return nil, err
	}
	out := make([]*domain.Feedback, 0, len(sessions))
	for _, sess := range sessions {
		mu := s.lockFor(sess.ID)
		mu.Lock()
		fb := domain.Snapshot(sess)
		mu.Unlock()
		out = append(out, fb)
	}
	return out, nil
}

func (s *Service) effectiveMode(sess *domain.Session, override domain.TrainingMode) domain.TrainingMode {
	if override != "" {
		return override
	}
	if sess.PreferredMode != "" {
		return sess.PreferredMode
	}
	return domain.ModeMixed
}
