package memory

import (
	"context"
	"sort"
	"sync"
	"time"

	"github.com/gymnasion-dev/gymnasion/internal/domain"
)

// SessionStore is the in-memory implementation of domain.SessionStore.
// Suitable for local mode and tests; nothing survives a restart.
type SessionStore struct {
	mu       sync.RWMutex
	sessions map[domain.SessionID]*domain.Session
	now      func() time.Time
}

func NewSessionStore() *SessionStore {
	return &SessionStore{
		sessions: make(map[domain.SessionID]*domain.Session),
		now:      time.Now,
	}
}

// GetOrCreate returns the canonical session for id. Racing creates for
// the same unseen id are resolved under the write lock: the first caller
// inserts, every later caller observes that instance.
func (s *SessionStore) GetOrCreate(_ context.Context, id domain.SessionID, mode domain.TrainingMode) (*domain.Session, error) {
	s.mu.RLock()
	if sess, ok := s.sessions[id]; ok {
		s.mu.RUnlock()
		return sess, nil
	}
	s.mu.RUnlock()

	s.mu.Lock()
	defer s.mu.Unlock()

	// Re-check: another goroutine may have won the create.
	if sess, ok := s.sessions[id]; ok {
		return sess, nil
	}

	sess := domain.NewSession(id, mode, s.now())
	s.sessions[id] = sess
	return sess, nil
}

func (s *SessionStore) Get(_ context.Context, id domain.SessionID) (*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	sess, ok := s.sessions[id]
	if !ok {
		return nil, domain.ErrSessionNotFound
	}
	return sess, nil
}

func (s *SessionStore) Update(_ context.Context, session *domain.Session) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.sessions[session.ID]; !ok {
		return domain.ErrSessionNotFound
	}
	s.sessions[session.ID] = session
	return nil
}

func (s *SessionStore) Delete(_ context.Context, id domain.SessionID) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	delete(s.sessions, id)
	return nil
}

func (s *SessionStore) List(_ context.Context, limit int) ([]*domain.Session, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]*domain.Session, 0, len(s.sessions))
	for _, sess := range s.sessions {
		out = append(out, sess)
	}
	sort.Slice(out, func(i, j int) bool {
		return out[i].UpdatedAt.After(out[j].UpdatedAt)
	})
	if limit > 0 && len(out) > limit {
		out = out[:limit]
	}
	return out, nil
}
