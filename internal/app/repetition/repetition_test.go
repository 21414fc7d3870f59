package repetition_test

import (
	"testing"
	"time"

	"github.com/gymnasion-dev/gymnasion/internal/app/repetition"
	"github.com/gymnasion-dev/gymnasion/internal/domain"
)

func sig(prefix string) domain.Signature {
	return domain.Signature{TagPrefix: prefix, LengthBucket: 1}
}

func TestWindowScenario(t *testing.T) {
	s := domain.NewSession("s1", domain.ModeMixed, time.Now())

	// Signatures A, B, A with K=2: the third line matches the first A.
	if repetition.Check(s, sig("A"), 2) {
		t.Fatal("first line cannot repeat anything")
	}
	if repetition.Check(s, sig("B"), 2) {
		t.Fatal("B does not match A")
	}
	if !repetition.Check(s, sig("A"), 2) {
		t.Fatal("third line should match the A still in the window")
	}

	// Window is now [B, A], oldest first.
	if len(s.RecentSignatures) != 2 {
		t.Fatalf("window must stay at K=2, got %d", len(s.RecentSignatures))
	}
	if s.RecentSignatures[0].TagPrefix != "B" || s.RecentSignatures[1].TagPrefix != "A" {
		t.Fatalf("expected window [B A], got %v", s.RecentSignatures)
	}
}

func TestWindowAdvancesWithoutMatch(t *testing.T) {
	s := domain.NewSession("s1", domain.ModeMixed, time.Now())

	for _, p := range []string{"A", "B", "C", "D"} {
		repetition.Check(s, sig(p), 3)
	}

	if len(s.RecentSignatures) != 3 {
		t.Fatalf("window must never exceed K, got %d", len(s.RecentSignatures))
	}
	want := []string{"B", "C", "D"}
	for i, w := range want {
		if s.RecentSignatures[i].TagPrefix != w {
			t.Fatalf("expected window %v, got %v", want, s.RecentSignatures)
		}
	}

	// A was evicted, so it no longer matches.
	if repetition.Check(s, sig("A"), 3) {
		t.Fatal("evicted signature must not match")
	}
}

func TestEmptySignatureNeverMatches(t *testing.T) {
	s := domain.NewSession("s1", domain.ModeMixed, time.Now())
	empty := domain.Signature{}

	repetition.Check(s, empty, 3)
	if repetition.Check(s, empty, 3) {
		t.Fatal("empty signatures must not count as repetition")
	}
}
