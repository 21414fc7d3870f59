package catalog_test

import (
	"errors"
	"testing"

	"github.com/gymnasion-dev/gymnasion/internal/adapters/catalog"
	"github.com/gymnasion-dev/gymnasion/internal/domain"
)

func TestDefaultCatalogLoads(t *testing.T) {
	c, err := catalog.Default()
	if err != nil {
		t.Fatalf("embedded catalog must load: %v", err)
	}

	a, err := c.LookupAuthor("Hemingway")
	if err != nil {
		t.Fatalf("lookup failed: %v", err)
	}
	if a.SentenceMax == 0 {
		t.Error("hemingway profile should carry a sentence range")
	}
}

func TestLookupUnknownAuthor(t *testing.T) {
	c, _ := catalog.Default()

	_, err := c.LookupAuthor("borges")
	if !errors.Is(err, domain.ErrUnknownAuthor) {
		t.Fatalf("expected ErrUnknownAuthor, got %v", err)
	}
}

func TestDefaultAuthorIsStable(t *testing.T) {
	c, _ := catalog.Default()

	a := c.DefaultAuthor("session-42")
	b := c.DefaultAuthor("session-42")
	if a.ID != b.ID {
		t.Fatalf("same seed must pick the same author: %s vs %s", a.ID, b.ID)
	}
}

func TestQuotesForPrefersKeyword(t *testing.T) {
	c, _ := catalog.Default()

	quotes := c.QuotesFor("sea")
	if len(quotes) == 0 {
		t.Fatal("expected quote candidates")
	}
	found := false
	for _, k := range quotes[0].Keywords {
		if k == "sea" {
			found = true
		}
	}
	if !found {
		t.Fatalf("first candidate should be tagged sea, got %+v", quotes[0])
	}

	// Unknown keyword still yields the whole pool.
	if got := c.QuotesFor("zeppelin"); len(got) != len(quotes) {
		t.Fatalf("fallback pool should keep all quotes, got %d", len(got))
	}
}

func TestTablesFallBackToDefault(t *testing.T) {
	c, _ := catalog.Default()

	if adj := c.AdjectivesFor("forest"); len(adj) == 0 || adj[0] != "dark" {
		t.Fatalf("unexpected forest adjectives: %v", adj)
	}
	if adj := c.AdjectivesFor("teapot"); len(adj) == 0 {
		t.Fatal("default adjectives must apply to unknown nouns")
	}
	if v := c.VerbsFor("teapot"); len(v) == 0 || v[0].Verb != "love" {
		t.Fatalf("unexpected default verbs: %v", v)
	}
	if r := c.RelatedFor("sea"); len(r) == 0 || r[0] != "ocean" {
		t.Fatalf("unexpected related words: %v", r)
	}
}
