package theme_test

import (
	"reflect"
	"testing"
	"time"

	"github.com/gymnasion-dev/gymnasion/internal/app/theme"
	"github.com/gymnasion-dev/gymnasion/internal/domain"
	"github.com/gymnasion-dev/gymnasion/internal/lexicon"
)

func register(s *domain.Session, line string, lineNo int) {
	tokens := lexicon.Tokenize(line)
	theme.Register(s, tokens, lexicon.TagPOS(tokens), lineNo)
}

func TestRegisterTracksFirstAndLastSeen(t *testing.T) {
	s := domain.NewSession("s1", domain.ModeMixed, time.Now())

	register(s, "I walked into the garden", 1)
	rec := s.Themes["garden"]
	if rec == nil {
		t.Fatal("garden should be registered as a theme")
	}
	if rec.FirstSeenLine != 1 || rec.LastSeenLine != 1 {
		t.Fatalf("unexpected record: %+v", rec)
	}

	register(s, "the garden slept", 4)
	if rec.FirstSeenLine != 1 {
		t.Errorf("FirstSeenLine must be immutable, got %d", rec.FirstSeenLine)
	}
	if rec.LastSeenLine != 4 {
		t.Errorf("LastSeenLine should follow recurrence, got %d", rec.LastSeenLine)
	}
}

func TestStopwordsAndNonNounsAreNotThemes(t *testing.T) {
	s := domain.NewSession("s1", domain.ModeMixed, time.Now())
	register(s, "the dark sings", 1)

	if len(s.Themes) != 0 {
		t.Fatalf("expected no themes, got %v", s.Themes)
	}
}

func TestStaleThemesGapScenario(t *testing.T) {
	s := domain.NewSession("s1", domain.ModeMixed, time.Now())

	// garden at line 1, nothing after, gap 5: stale by line 7.
	register(s, "a quiet garden", 1)
	if stale := theme.Stale(s, 6, 5); len(stale) != 0 {
		t.Fatalf("garden not yet stale at line 6, got %v", stale)
	}
	if stale := theme.Stale(s, 7, 5); !reflect.DeepEqual(stale, []string{"garden"}) {
		t.Fatalf("expected [garden] stale at line 7, got %v", stale)
	}

	// A recurrence at line 4 resets the clock.
	register(s, "back to the garden", 4)
	if stale := theme.Stale(s, 7, 5); len(stale) != 0 {
		t.Fatalf("recurred theme must not be stale at line 7, got %v", stale)
	}
}

func TestStaleOrderedByFirstSeen(t *testing.T) {
	s := domain.NewSession("s1", domain.ModeMixed, time.Now())
	register(s, "the sea", 1)
	register(s, "a mountain", 2)
	register(s, "one garden", 3)

	stale := theme.Stale(s, 20, 5)
	want := []string{"sea", "mountain", "garden"}
	if !reflect.DeepEqual(stale, want) {
		t.Fatalf("expected %v, got %v", want, stale)
	}
}
