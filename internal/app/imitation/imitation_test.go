package imitation_test

import (
	"strings"
	"testing"
	"time"

	"github.com/gymnasion-dev/gymnasion/internal/app/imitation"
	"github.com/gymnasion-dev/gymnasion/internal/domain"
	"github.com/gymnasion-dev/gymnasion/internal/lexicon"
)

var hemingway = &domain.Author{
	ID:           "hemingway",
	Name:         "Hemingway",
	SentenceMin:  3,
	SentenceMax:  12,
	AdviceLength: "Hemingway wrote short, declarative sentences. Cut this one down.",
}

func TestScoreNoTarget(t *testing.T) {
	res := imitation.Score(nil, []string{"sea"}, []domain.POSTag{domain.TagNoun})
	if res.Verdict != domain.VerdictNoTarget {
		t.Fatalf("expected NO_TARGET, got %s", res.Verdict)
	}
	if res.Note != "" {
		t.Fatalf("no target must be a no-op, got note %q", res.Note)
	}
}

func TestScoreLongLineIsWeakMatch(t *testing.T) {
	line := strings.Repeat("wave after ", 15) // 30 tokens
	tokens := lexicon.Tokenize(line)
	if len(tokens) != 30 {
		t.Fatalf("fixture should be 30 tokens, got %d", len(tokens))
	}

	res := imitation.Score(hemingway, tokens, lexicon.TagPOS(tokens))
	if res.Verdict != domain.VerdictWeakMatch {
		t.Fatalf("expected WEAK_MATCH for a 30-word line, got %s", res.Verdict)
	}
	if res.Note != hemingway.AdviceLength {
		t.Fatalf("expected the profile's length advice, got %q", res.Note)
	}
}

func TestScoreInRangeIsStrongMatch(t *testing.T) {
	tokens := lexicon.Tokenize("the old man watched the sea")
	res := imitation.Score(hemingway, tokens, lexicon.TagPOS(tokens))
	if res.Verdict != domain.VerdictStrongMatch {
		t.Fatalf("expected STRONG_MATCH, got %s (%q)", res.Verdict, res.Note)
	}
}

func TestScoreVocabularyMiss(t *testing.T) {
	whitman := &domain.Author{
		ID:          "whitman",
		Name:        "Whitman",
		SentenceMin: 1,
		SentenceMax: 100,
		Vocabulary:  []string{"body", "electric", "multitudes"},
	}

	tokens := lexicon.Tokenize("a small gray stone")
	res := imitation.Score(whitman, tokens, lexicon.TagPOS(tokens))
	if res.Verdict != domain.VerdictWeakMatch {
		t.Fatalf("expected WEAK_MATCH on vocabulary miss, got %s", res.Verdict)
	}
	if !strings.Contains(res.Note, "body") {
		t.Fatalf("note should surface characteristic vocabulary, got %q", res.Note)
	}

	tokens = lexicon.Tokenize("I contain multitudes")
	res = imitation.Score(whitman, tokens, lexicon.TagPOS(tokens))
	if res.Verdict != domain.VerdictStrongMatch {
		t.Fatalf("expected STRONG_MATCH with shared vocabulary, got %s", res.Verdict)
	}
}

func TestAssignIdempotent(t *testing.T) {
	s := domain.NewSession("s1", domain.ModeMixed, time.Now())

	imitation.Assign(s, hemingway)
	if s.ImitationTarget != "hemingway" {
		t.Fatalf("expected target hemingway, got %q", s.ImitationTarget)
	}

	imitation.Assign(s, hemingway)
	if s.ImitationTarget != "hemingway" {
		t.Fatal("re-assigning the same author must keep the target")
	}

	imitation.Assign(s, &domain.Author{ID: "frost", Name: "Frost"})
	if s.ImitationTarget != "frost" {
		t.Fatalf("expected replacement target frost, got %q", s.ImitationTarget)
	}
}
