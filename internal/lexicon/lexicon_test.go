package lexicon_test

import (
	"reflect"
	"testing"

	"github.com/gymnasion-dev/gymnasion/internal/domain"
	"github.com/gymnasion-dev/gymnasion/internal/lexicon"
)

func TestTokenize(t *testing.T) {
	got := lexicon.Tokenize("  The cat, sat!  ")
	want := []string{"the", "cat", "sat"}
	if !reflect.DeepEqual(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestTokenizeEmptyInput(t *testing.T) {
	if got := lexicon.Tokenize(""); len(got) != 0 {
		t.Fatalf("expected empty slice, got %v", got)
	}
	if got := lexicon.Tokenize("!!! ... ---"); len(got) != 0 {
		t.Fatalf("expected empty slice for punctuation, got %v", got)
	}
}

func TestTagPOSAlignment(t *testing.T) {
	tokens := lexicon.Tokenize("the dark forest sings greatness zzzqx")
	tags := lexicon.TagPOS(tokens)

	if len(tags) != len(tokens) {
		t.Fatalf("tags not aligned with tokens: %d vs %d", len(tags), len(tokens))
	}

	want := []domain.POSTag{
		domain.TagOther,     // stopword
		domain.TagAdjective, // lexicon
		domain.TagNoun,      // lexicon
		domain.TagVerb,      // lexicon
		domain.TagNoun,      // -ness suffix
		domain.TagOther,     // unknown degrades to OTHER
	}
	if !reflect.DeepEqual(tags, want) {
		t.Fatalf("expected %v, got %v", want, tags)
	}
}

func TestStructuralSignature(t *testing.T) {
	tokens := lexicon.Tokenize("the cat sat on the mat")
	tags := lexicon.TagPOS(tokens)

	sig := lexicon.StructuralSignature(tokens, tags, 4)
	if sig.TagPrefix == "" {
		t.Fatal("expected non-empty tag prefix")
	}

	same := lexicon.StructuralSignature(tokens, tags, 4)
	if !sig.Matches(same) {
		t.Error("identical lines must match")
	}

	other := lexicon.Tokenize("wolves devour ancient mountains tonight")
	otherSig := lexicon.StructuralSignature(other, lexicon.TagPOS(other), 4)
	if sig.Matches(otherSig) {
		t.Errorf("different shapes should not match: %q vs %q", sig.TagPrefix, otherSig.TagPrefix)
	}
}

func TestSignatureShortLine(t *testing.T) {
	tokens := lexicon.Tokenize("cat")
	sig := lexicon.StructuralSignature(tokens, lexicon.TagPOS(tokens), 4)
	if sig.TagPrefix != "NOUN" {
		t.Fatalf("expected NOUN prefix for one-word line, got %q", sig.TagPrefix)
	}
}

func TestEntities(t *testing.T) {
	ents := lexicon.Entities("Yesterday Ophelia walked through Hamilton")
	if len(ents) != 2 {
		t.Fatalf("expected 2 entities, got %v", ents)
	}
	if ents[0].Word != "Ophelia" || ents[0].TokenIndex != 1 {
		t.Errorf("unexpected first entity: %+v", ents[0])
	}
	if !lexicon.IsPlaceName("Hamilton") {
		t.Error("Hamilton should read as a place")
	}
	if lexicon.IsPlaceName("Ophelia") {
		t.Error("Ophelia should not read as a place")
	}
}

func TestEntitiesSkipsSentenceStart(t *testing.T) {
	ents := lexicon.Entities("Mountains rise in the east")
	if len(ents) != 0 {
		t.Fatalf("sentence-initial capital should not be an entity, got %v", ents)
	}
}
