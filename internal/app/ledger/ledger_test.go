package ledger_test

import (
	"testing"
	"time"

	"github.com/gymnasion-dev/gymnasion/internal/app/ledger"
	"github.com/gymnasion-dev/gymnasion/internal/domain"
)

func newSession() *domain.Session {
	return domain.NewSession("s1", domain.ModeMixed, time.Now())
}

func TestBanishmentTriggersAtThreshold(t *testing.T) {
	s := newSession()
	tokens := []string{"the", "cat", "sat"}

	for i := 0; i < 2; i++ {
		if events := ledger.RecordUsage(s, tokens, 3); len(events) != 0 {
			t.Fatalf("no banishment expected on submission %d, got %v", i+1, events)
		}
	}

	events := ledger.RecordUsage(s, tokens, 3)
	if len(events) != 3 {
		t.Fatalf("expected all three words banished on third submission, got %v", events)
	}
	for _, ev := range events {
		if ev.Count != 3 {
			t.Errorf("banishment for %q should trigger at count 3, got %d", ev.Word, ev.Count)
		}
	}
	if !ledger.IsBanished(s, "cat") {
		t.Error("cat must be banished")
	}
}

func TestBanishmentNeverRepeats(t *testing.T) {
	s := newSession()
	tokens := []string{"cat"}

	ledger.RecordUsage(s, tokens, 3)
	ledger.RecordUsage(s, tokens, 3)
	if events := ledger.RecordUsage(s, tokens, 3); len(events) != 1 {
		t.Fatalf("expected one banish event, got %v", events)
	}

	// Fourth use is a violation, never a fresh event.
	if violations := ledger.CheckViolations(s, tokens); len(violations) != 1 || violations[0] != "cat" {
		t.Fatalf("expected violation for cat, got %v", violations)
	}
	if events := ledger.RecordUsage(s, tokens, 3); len(events) != 0 {
		t.Fatalf("banished word must not re-trigger, got %v", events)
	}
}

func TestViolationsOnlyForPriorBanishments(t *testing.T) {
	s := newSession()

	if v := ledger.CheckViolations(s, []string{"cat", "sat"}); len(v) != 0 {
		t.Fatalf("no violations before any banishment, got %v", v)
	}

	ledger.RecordUsage(s, []string{"cat"}, 1)
	v := ledger.CheckViolations(s, []string{"cat", "cat", "sat"})
	if len(v) != 1 || v[0] != "cat" {
		t.Fatalf("expected deduplicated violation for cat, got %v", v)
	}
}

func TestCountsAccumulate(t *testing.T) {
	s := newSession()
	ledger.RecordUsage(s, []string{"sea", "sea", "wind"}, 10)
	ledger.RecordUsage(s, []string{"sea"}, 10)

	if s.WordCounts["sea"] != 3 || s.WordCounts["wind"] != 1 {
		t.Fatalf("unexpected counts: %v", s.WordCounts)
	}
	if s.TotalWords() != 4 {
		t.Fatalf("expected total 4, got %d", s.TotalWords())
	}
}
