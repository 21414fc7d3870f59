// Package firestore persists sessions in Cloud Firestore, one document
// per session under the "sessions" collection.
package firestore

import (
	"context"
	"fmt"
	"time"

	"cloud.google.com/go/firestore"
	"google.golang.org/api/iterator"
	"google.golang.org/grpc/codes"
	"google.golang.org/grpc/status"

	"github.com/gymnasion-dev/gymnasion/internal/domain"
)

type Store struct {
	client *firestore.Client
	now    func() time.Time
}

// NewStore creates a Firestore-backed session store for the project.
func NewStore(ctx context.Context, projectID string) (*Store, error) {
	if projectID == "" {
		return nil, fmt.Errorf("projectID is required for Firestore store")
	}

	client, err := firestore.NewClient(ctx, projectID)
	if err != nil {
		return nil, fmt.Errorf("creating firestore client: %w", err)
	}

	return &Store{client: client, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.client.Close()
}

func (s *Store) sessionDoc(id domain.SessionID) *firestore.DocumentRef {
	return s.client.Collection("sessions").Doc(string(id))
}

// ─────────────────────────────────────────
// Firestore types
// ─────────────────────────────────────────

type themeDoc struct {
	Term      string `firestore:"term"`
	FirstSeen int    `firestore:"first_seen"`
	LastSeen  int    `firestore:"last_seen"`
}

type signatureDoc struct {
	TagPrefix    string `firestore:"tag_prefix"`
	LengthBucket int    `firestore:"length_bucket"`
}

type sessionDoc struct {
	Status           string              `firestore:"status"`
	PreferredMode    string              `firestore:"preferred_mode"`
	LineCount        int                 `firestore:"line_count"`
	WordCounts       map[string]int      `firestore:"word_counts"`
	BanishedWords    []string            `firestore:"banished_words"`
	ImitationTarget  string              `firestore:"imitation_target"`
	RecentSignatures []signatureDoc      `firestore:"recent_signatures"`
	Themes           map[string]themeDoc `firestore:"themes"`
	UsedQuotes       []string            `firestore:"used_quotes"`
	CreatedAt        time.Time           `firestore:"created_at"`
	UpdatedAt        time.Time           `firestore:"updated_at"`
}

// ─────────────────────────────────────────
// SessionStore implementation
// ─────────────────────────────────────────

// GetOrCreate reads the document and, if absent, creates it. Create on
// an existing document fails with AlreadyExists, which resolves the
// racing-create case: the loser re-reads the winner's document.
func (s *Store) GetOrCreate(ctx context.Context, id domain.SessionID, mode domain.TrainingMode) (*domain.Session, error) {
	sess, err := s.Get(ctx, id)
	if err == nil {
		return sess, nil
	}
	if err != domain.ErrSessionNotFound {
		return nil, err
	}

	fresh := domain.NewSession(id, mode, s.now())
	if _, err := s.sessionDoc(id).Create(ctx, toDoc(fresh)); err != nil {
		if status.Code(err) == codes.AlreadyExists {
			return s.Get(ctx, id)
		}
		return nil, fmt.Errorf("firestore GetOrCreate: %w", err)
	}
	return fresh, nil
}

func (s *Store) Get(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	snap, err := s.sessionDoc(id).Get(ctx)
	if err != nil {
		if status.Code(err) == codes.NotFound {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("firestore Get: %w", err)
	}

	var doc sessionDoc
	if err := snap.DataTo(&doc); err != nil {
		return nil, fmt.Errorf("firestore Get decode: %w", err)
	}
	return fromDoc(id, doc), nil
}

func (s *Store) Update(ctx context.Context, session *domain.Session) error {
	doc := toDoc(session)
	doc.UpdatedAt = s.now()

	if _, err := s.sessionDoc(session.ID).Set(ctx, doc); err != nil {
		return fmt.Errorf("firestore Update: %w", err)
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id domain.SessionID) error {
	if _, err := s.sessionDoc(id).Delete(ctx); err != nil {
		return fmt.Errorf("firestore Delete: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context, limit int) ([]*domain.Session, error) {
	q := s.client.Collection("sessions").OrderBy("updated_at", firestore.Desc)
	if limit > 0 {
		q = q.Limit(limit)
	}

	iter := q.Documents(ctx)
	defer iter.Stop()

	var out []*domain.Session
	for {
		snap, err := iter.Next()
		if err != nil {
			if err == iterator.Done {
				break
			}
			return nil, fmt.Errorf("firestore List: %w", err)
		}

		var doc sessionDoc
		if err := snap.DataTo(&doc); err != nil {
			return nil, fmt.Errorf("decode sessionDoc: %w", err)
		}
		out = append(out, fromDoc(domain.SessionID(snap.Ref.ID), doc))
	}
	return out, nil
}

// ─────────────────────────────────────────
// Mapping helpers
// ─────────────────────────────────────────

func toDoc(sess *domain.Session) sessionDoc {
	sigs := make([]signatureDoc, len(sess.RecentSignatures))
	for i, sig := range sess.RecentSignatures {
		sigs[i] = signatureDoc{TagPrefix: sig.TagPrefix, LengthBucket: sig.LengthBucket}
	}

	themes := make(map[string]themeDoc, len(sess.Themes))
	for term, rec := range sess.Themes {
		themes[term] = themeDoc{Term: rec.Term, FirstSeen: rec.FirstSeenLine, LastSeen: rec.LastSeenLine}
	}

	used := make([]string, 0, len(sess.UsedQuotes))
	for q := range sess.UsedQuotes {
		used = append(used, q)
	}

	return sessionDoc{
		Status:           string(sess.Status),
		PreferredMode:    string(sess.PreferredMode),
		LineCount:        sess.LineCount,
		WordCounts:       sess.WordCounts,
		BanishedWords:    sess.BanishedList(),
		ImitationTarget:  sess.ImitationTarget,
		RecentSignatures: sigs,
		Themes:           themes,
		UsedQuotes:       used,
		CreatedAt:        sess.CreatedAt,
		UpdatedAt:        sess.UpdatedAt,
	}
}

func fromDoc(id domain.SessionID, doc sessionDoc) *domain.Session {
	sess := &domain.Session{
		ID:              id,
		Status:          domain.Status(doc.Status),
		PreferredMode:   domain.TrainingMode(doc.PreferredMode),
		LineCount:       doc.LineCount,
		WordCounts:      doc.WordCounts,
		ImitationTarget: doc.ImitationTarget,
		BanishedWords:   make(map[string]bool, len(doc.BanishedWords)),
		Themes:          make(map[string]*domain.ThemeRecord, len(doc.Themes)),
		UsedQuotes:      make(map[string]bool, len(doc.UsedQuotes)),
		CreatedAt:       doc.CreatedAt,
		UpdatedAt:       doc.UpdatedAt,
	}
	if sess.WordCounts == nil {
		sess.WordCounts = make(map[string]int)
	}
	for _, w := range doc.BanishedWords {
		sess.BanishedWords[w] = true
	}
	for term, rec := range doc.Themes {
		sess.Themes[term] = &domain.ThemeRecord{
			Term:          rec.Term,
			FirstSeenLine: rec.FirstSeen,
			LastSeenLine:  rec.LastSeen,
		}
	}
	for _, q := range doc.UsedQuotes {
		sess.UsedQuotes[q] = true
	}
	for _, sig := range doc.RecentSignatures {
		sess.RecentSignatures = append(sess.RecentSignatures, domain.Signature{
			TagPrefix:    sig.TagPrefix,
			LengthBucket: sig.LengthBucket,
		})
	}
	return sess
}
