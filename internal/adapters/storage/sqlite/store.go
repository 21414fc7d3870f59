// Package sqlite persists sessions in a local SQLite database. The
// analysis state (counts, themes, signatures) travels as one JSON blob:
// the engine always loads and stores whole sessions, so there is nothing
// to gain from normalizing it into rows.
package sqlite

import (
	"context"
	"database/sql"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	_ "github.com/mattn/go-sqlite3"

	"github.com/gymnasion-dev/gymnasion/internal/domain"
)

const schema = `
CREATE TABLE IF NOT EXISTS sessions (
	id             TEXT PRIMARY KEY,
	status         TEXT NOT NULL,
	preferred_mode TEXT NOT NULL,
	line_count     INTEGER NOT NULL,
	state          TEXT NOT NULL,
	created_at     TIMESTAMP NOT NULL,
	updated_at     TIMESTAMP NOT NULL
);
`

type Store struct {
	db  *sql.DB
	now func() time.Time
}

// NewStore opens (and if needed initializes) the database at path.
func NewStore(path string) (*Store, error) {
	if path == "" {
		return nil, fmt.Errorf("sqlite store requires a database path")
	}

	db, err := sql.Open("sqlite3", path)
	if err != nil {
		return nil, fmt.Errorf("opening sqlite database: %w", err)
	}
	if _, err := db.Exec(schema); err != nil {
		db.Close()
		return nil, fmt.Errorf("initializing sqlite schema: %w", err)
	}

	return &Store{db: db, now: time.Now}, nil
}

func (s *Store) Close() error {
	return s.db.Close()
}

// sessionState is the JSON shape of the mutable analysis state.
type sessionState struct {
	WordCounts       map[string]int                 `json:"word_counts"`
	BanishedWords    []string                       `json:"banished_words"`
	ImitationTarget  string                         `json:"imitation_target"`
	RecentSignatures []domain.Signature             `json:"recent_signatures"`
	Themes           map[string]*domain.ThemeRecord `json:"themes"`
	UsedQuotes       []string                       `json:"used_quotes"`
}

// GetOrCreate relies on the primary key for race safety: the insert is
// an OR IGNORE, so of two simultaneous creates exactly one row wins and
// both callers read it back.
func (s *Store) GetOrCreate(ctx context.Context, id domain.SessionID, mode domain.TrainingMode) (*domain.Session, error) {
	if mode == "" {
		mode = domain.ModeMixed
	}
	fresh := domain.NewSession(id, mode, s.now())
	state, err := encodeState(fresh)
	if err != nil {
		return nil, err
	}

	_, err = s.db.ExecContext(ctx,
		`INSERT OR IGNORE INTO sessions (id, status, preferred_mode, line_count, state, created_at, updated_at)
		 VALUES (?, ?, ?, ?, ?, ?, ?)`,
		string(id), string(fresh.Status), string(fresh.PreferredMode),
		fresh.LineCount, state, fresh.CreatedAt, fresh.UpdatedAt)
	if err != nil {
		return nil, fmt.Errorf("sqlite GetOrCreate insert: %w", err)
	}

	return s.Get(ctx, id)
}

func (s *Store) Get(ctx context.Context, id domain.SessionID) (*domain.Session, error) {
	row := s.db.QueryRowContext(ctx,
		`SELECT status, preferred_mode, line_count, state, created_at, updated_at
		 FROM sessions WHERE id = ?`, string(id))

	var (
		status, mode, state string
		lineCount           int
		createdAt, updated  time.Time
	)
	if err := row.Scan(&status, &mode, &lineCount, &state, &createdAt, &updated); err != nil {
		if errors.Is(err, sql.ErrNoRows) {
			return nil, domain.ErrSessionNotFound
		}
		return nil, fmt.Errorf("sqlite Get: %w", err)
	}

	sess := &domain.Session{
		ID:            id,
		Status:        domain.Status(status),
		PreferredMode: domain.TrainingMode(mode),
		LineCount:     lineCount,
		CreatedAt:     createdAt,
		UpdatedAt:     updated,
	}
	if err := decodeState(state, sess); err != nil {
		return nil, err
	}
	return sess, nil
}

func (s *Store) Update(ctx context.Context, session *domain.Session) error {
	state, err := encodeState(session)
	if err != nil {
		return err
	}

	res, err := s.db.ExecContext(ctx,
		`UPDATE sessions SET status = ?, preferred_mode = ?, line_count = ?, state = ?, updated_at = ?
		 WHERE id = ?`,
		string(session.Status), string(session.PreferredMode), session.LineCount,
		state, s.now(), string(session.ID))
	if err != nil {
		return fmt.Errorf("sqlite Update: %w", err)
	}

	n, err := res.RowsAffected()
	if err != nil {
		return fmt.Errorf("sqlite Update rows: %w", err)
	}
	if n == 0 {
		return domain.ErrSessionNotFound
	}
	return nil
}

func (s *Store) Delete(ctx context.Context, id domain.SessionID) error {
	if _, err := s.db.ExecContext(ctx,
		`DELETE FROM sessions WHERE id = ?`, string(id)); err != nil {
		return fmt.Errorf("sqlite Delete: %w", err)
	}
	return nil
}

func (s *Store) List(ctx context.Context, limit int) ([]*domain.Session, error) {
	q := `SELECT id, status, preferred_mode, line_count, state, created_at, updated_at
	      FROM sessions ORDER BY updated_at DESC`
	args := []any{}
	if limit > 0 {
		q += ` LIMIT ?`
		args = append(args, limit)
	}

	rows, err := s.db.QueryContext(ctx, q, args...)
	if err != nil {
		return nil, fmt.Errorf("sqlite List: %w", err)
	}
	defer rows.Close()

	var out []*domain.Session
	for rows.Next() {
		var (
			id, status, mode, state string
			lineCount               int
			createdAt, updated      time.Time
		)
		if err := rows.Scan(&id, &status, &mode, &lineCount, &state, &createdAt, &updated); err != nil {
			return nil, fmt.Errorf("sqlite List scan: %w", err)
		}
		sess := &domain.Session{
			ID:            domain.SessionID(id),
			Status:        domain.Status(status),
			PreferredMode: domain.TrainingMode(mode),
			LineCount:     lineCount,
			CreatedAt:     createdAt,
			UpdatedAt:     updated,
		}
		if err := decodeState(state, sess); err != nil {
			return nil, err
		}
		out = append(out, sess)
	}
	return out, rows.Err()
}

func encodeState(sess *domain.Session) (string, error) {
	st := sessionState{
		WordCounts:       sess.WordCounts,
		BanishedWords:    sess.BanishedList(),
		ImitationTarget:  sess.ImitationTarget,
		RecentSignatures: sess.RecentSignatures,
		Themes:           sess.Themes,
		UsedQuotes:       setToList(sess.UsedQuotes),
	}
	raw, err := json.Marshal(st)
	if err != nil {
		return "", fmt.Errorf("encoding session state: %w", err)
	}
	return string(raw), nil
}

func decodeState(raw string, sess *domain.Session) error {
	var st sessionState
	if err := json.Unmarshal([]byte(raw), &st); err != nil {
		return fmt.Errorf("decoding session state: %w", err)
	}

	sess.WordCounts = st.WordCounts
	if sess.WordCounts == nil {
		sess.WordCounts = make(map[string]int)
	}
	sess.BanishedWords = listToSet(st.BanishedWords)
	sess.ImitationTarget = st.ImitationTarget
	sess.RecentSignatures = st.RecentSignatures
	sess.Themes = st.Themes
	if sess.Themes == nil {
		sess.Themes = make(map[string]*domain.ThemeRecord)
	}
	sess.UsedQuotes = listToSet(st.UsedQuotes)
	return nil
}

func setToList(set map[string]bool) []string {
	out := make([]string, 0, len(set))
	for k := range set {
		out = append(out, k)
	}
	return out
}

func listToSet(list []string) map[string]bool {
	out := make(map[string]bool, len(list))
	for _, k := range list {
		out[k] = true
	}
	return out
}
