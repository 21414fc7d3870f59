package memory_test

import (
	"context"
	"errors"
	"sync"
	"testing"
	"time"

	"github.com/gymnasion-dev/gymnasion/internal/adapters/storage/memory"
	"github.com/gymnasion-dev/gymnasion/internal/domain"
)

func TestGetOrCreateIsIdempotent(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	a, err := store.GetOrCreate(ctx, "s1", domain.ModeMixed)
	if err != nil {
		t.Fatalf("create failed: %v", err)
	}
	b, err := store.GetOrCreate(ctx, "s1", domain.ModeElaboration)
	if err != nil {
		t.Fatalf("second get failed: %v", err)
	}
	if a != b {
		t.Fatal("same id must yield the same session instance")
	}
	if b.PreferredMode != domain.ModeMixed {
		t.Fatal("later create attempts must not change the winner's mode")
	}
}

func TestGetOrCreateUnderRace(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	const goroutines = 32
	results := make([]*domain.Session, goroutines)

	var wg sync.WaitGroup
	for i := 0; i < goroutines; i++ {
		wg.Add(1)
		go func(i int) {
			defer wg.Done()
			sess, err := store.GetOrCreate(ctx, "raced", domain.ModeMixed)
			if err != nil {
				t.Errorf("GetOrCreate failed: %v", err)
				return
			}
			results[i] = sess
		}(i)
	}
	wg.Wait()

	for i := 1; i < goroutines; i++ {
		if results[i] != results[0] {
			t.Fatal("exactly one session must become canonical under a racing create")
		}
	}
}

func TestGetUnknownSession(t *testing.T) {
	store := memory.NewSessionStore()

	_, err := store.Get(context.Background(), "nope")
	if !errors.Is(err, domain.ErrSessionNotFound) {
		t.Fatalf("expected ErrSessionNotFound, got %v", err)
	}
}

func TestDeleteThenRecreate(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	first, _ := store.GetOrCreate(ctx, "s1", domain.ModeMixed)
	first.LineCount = 7

	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("delete failed: %v", err)
	}
	if err := store.Delete(ctx, "s1"); err != nil {
		t.Fatalf("deleting an unseen id must be a no-op, got %v", err)
	}

	fresh, _ := store.GetOrCreate(ctx, "s1", domain.ModeMixed)
	if fresh.LineCount != 0 {
		t.Fatal("recreated session must start fresh")
	}
}

func TestListNewestFirst(t *testing.T) {
	store := memory.NewSessionStore()
	ctx := context.Background()

	base := time.Now()
	for i, id := range []domain.SessionID{"old", "mid", "new"} {
		sess, _ := store.GetOrCreate(ctx, id, domain.ModeMixed)
		sess.UpdatedAt = base.Add(time.Duration(i) * time.Minute)
	}

	sessions, err := store.List(ctx, 2)
	if err != nil {
		t.Fatalf("list failed: %v", err)
	}
	if len(sessions) != 2 {
		t.Fatalf("expected limit to cap at 2, got %d", len(sessions))
	}
	if sessions[0].ID != "new" || sessions[1].ID != "mid" {
		t.Fatalf("expected [new mid], got [%s %s]", sessions[0].ID, sessions[1].ID)
	}
}
