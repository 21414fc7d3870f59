// Package muse phrases elaboration prompts. The deterministic muse works
// from the catalog tables and rotates its phrasing off the line number,
// so the same session replayed gives the same prompts. A generative
// implementation can be swapped in behind the same interface.
package muse

import (
	"context"
	"fmt"
	"strings"

	"github.com/gymnasion-dev/gymnasion/internal/adapters/catalog"
	"github.com/gymnasion-dev/gymnasion/internal/domain"
	"github.com/gymnasion-dev/gymnasion/internal/lexicon"
)

var questionBeginnings = []string{"What could", "Why does", "What shall", "What did", "Why would"}

var personPrompts = []string{
	"Now sing in praise of %s...",
	"Now sing me of the youth of %s...",
	"Now sing to me what we may learn from the sins of %s...",
}

var placePrompts = []string{
	"Show me %s...the taste of the people, the customs...",
	"Yes, now lure me to %s...",
	"Now describe the history of %s...",
}

type Deterministic struct {
	tables *catalog.Catalog
}

func NewDeterministic(tables *catalog.Catalog) *Deterministic {
	return &Deterministic{tables: tables}
}

// PhraseElaboration implements domain.Muse. It never fails: every kind
// has a table row or a default to fall back on.
func (m *Deterministic) PhraseElaboration(_ context.Context, e domain.Elaboration) (string, error) {
	switch e.Kind {
	case domain.ElaborateAdjective:
		adj := m.tables.AdjectivesFor(e.Subject)
		first := pick(adj, e.LineNumber)
		second := pick(adj, e.LineNumber+1)
		return fmt.Sprintf("What sort of %s? %s? %s?",
			e.Subject, title(first), title(second)), nil

	case domain.ElaborateVerb:
		pair := pickVerb(m.tables.VerbsFor(e.Subject), e.LineNumber)
		return fmt.Sprintf("%s the %s %s?",
			pick(questionBeginnings, e.LineNumber), e.Subject, pair.Verb), nil

	case domain.ElaborateObject:
		pair := pickVerb(m.tables.VerbsFor(e.Subject), e.LineNumber)
		return fmt.Sprintf("%s the %s do to the %s?",
			pick(questionBeginnings, e.LineNumber), e.Subject, pair.Object), nil

	case domain.ElaborateRelated:
		related := m.tables.RelatedFor(e.Subject)
		var b strings.Builder
		fmt.Fprintf(&b, "You've sung me %s...now sing me ", e.Subject)
		for i := 0; i < 2 && i < len(related); i++ {
			b.WriteString(pick(related, e.LineNumber+i))
			b.WriteString("...")
		}
		return b.String(), nil

	case domain.ElaborateEntity:
		prompts := personPrompts
		if lexicon.IsPlaceName(e.Subject) {
			prompts = placePrompts
		}
		return fmt.Sprintf(pick(prompts, e.LineNumber), e.Subject), nil
	}

	return fmt.Sprintf("Tell me more of the %s...", e.Subject), nil
}

func pick(options []string, n int) string {
	if len(options) == 0 {
		return ""
	}
	return options[n%len(options)]
}

func pickVerb(options []catalog.VerbObject, n int) catalog.VerbObject {
	if len(options) == 0 {
		return catalog.VerbObject{Verb: "seek", Object: "truth"}
	}
	return options[n%len(options)]
}

func title(w string) string {
	if w == "" {
		return w
	}
	return strings.ToUpper(w[:1]) + w[1:]
}
