// Package catalog is the static in-memory implementation of the author
// and quote lookups, loaded from YAML. The default data ships embedded;
// a file can override it at startup.
package catalog

import (
	_ "embed"
	"fmt"
	"hash/fnv"
	"os"
	"strings"

	"gopkg.in/yaml.v3"

	"github.com/gymnasion-dev/gymnasion/internal/domain"
)

//go:embed data/catalog.yaml
var defaultData []byte

// VerbObject is one characteristic verb with a typical object.
type VerbObject struct {
	Verb   string `yaml:"verb"`
	Object string `yaml:"object"`
}

type fileFormat struct {
	Authors []struct {
		ID               string   `yaml:"id"`
		Name             string   `yaml:"name"`
		SentenceMin      int      `yaml:"sentence_min"`
		SentenceMax      int      `yaml:"sentence_max"`
		Vocabulary       []string `yaml:"vocabulary"`
		AdviceLength     string   `yaml:"advice_length"`
		AdviceVocabulary string   `yaml:"advice_vocabulary"`
	} `yaml:"authors"`
	Quotes []struct {
		Text        string   `yaml:"text"`
		Attribution string   `yaml:"attribution"`
		Keywords    []string `yaml:"keywords"`
	} `yaml:"quotes"`
	Tables struct {
		Adjectives map[string][]string     `yaml:"adjectives"`
		Verbs      map[string][]VerbObject `yaml:"verbs"`
		Related    map[string][]string     `yaml:"related"`
	} `yaml:"tables"`
}

// Catalog implements domain.AuthorCatalog and domain.QuoteSource plus the
// word tables the deterministic muse phrases prompts from. Immutable
// after load.
type Catalog struct {
	authors    map[string]*domain.Author
	order      []string
	quotes     []domain.Quote
	adjectives map[string][]string
	verbs      map[string][]VerbObject
	related    map[string][]string
}

// Default loads the embedded catalog data.
func Default() (*Catalog, error) {
	return parse(defaultData)
}

// LoadFile loads a catalog from a YAML file, for deployments that ship
// their own author and quote data.
func LoadFile(path string) (*Catalog, error) {
	raw, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("reading catalog file: %w", err)
	}
	return parse(raw)
}

func parse(raw []byte) (*Catalog, error) {
	var f fileFormat
	if err := yaml.Unmarshal(raw, &f); err != nil {
		return nil, fmt.Errorf("parsing catalog yaml: %w", err)
	}
	if len(f.Authors) == 0 {
		return nil, fmt.Errorf("catalog has no authors")
	}

	c := &Catalog{
		authors:    make(map[string]*domain.Author, len(f.Authors)),
		adjectives: f.Tables.Adjectives,
		verbs:      f.Tables.Verbs,
		related:    f.Tables.Related,
	}
	for _, a := range f.Authors {
		id := strings.ToLower(a.ID)
		c.authors[id] = &domain.Author{
			ID:               id,
			Name:             a.Name,
			SentenceMin:      a.SentenceMin,
			SentenceMax:      a.SentenceMax,
			Vocabulary:       a.Vocabulary,
			AdviceLength:     a.AdviceLength,
			AdviceVocabulary: a.AdviceVocabulary,
		}
		c.order = append(c.order, id)
	}
	for _, q := range f.Quotes {
		c.quotes = append(c.quotes, domain.Quote{
			Text:        q.Text,
			Attribution: q.Attribution,
			Keywords:    q.Keywords,
		})
	}
	return c, nil
}

// LookupAuthor implements domain.AuthorCatalog.
func (c *Catalog) LookupAuthor(name string) (*domain.Author, error) {
	a, ok := c.authors[strings.ToLower(strings.TrimSpace(name))]
	if !ok {
		return nil, fmt.Errorf("%q: %w", name, domain.ErrUnknownAuthor)
	}
	return a, nil
}

// DefaultAuthor picks a profile from the seed, stable across calls.
func (c *Catalog) DefaultAuthor(seed string) *domain.Author {
	h := fnv.New32a()
	_, _ = h.Write([]byte(seed))
	return c.authors[c.order[int(h.Sum32())%len(c.order)]]
}

// QuotesFor implements domain.QuoteSource: quotes tagged with the keyword
// come first, the rest of the pool follows so a caller always has
// candidates to fall back on.
func (c *Catalog) QuotesFor(keyword string) []domain.Quote {
	keyword = strings.ToLower(keyword)
	var tagged, rest []domain.Quote
	for _, q := range c.quotes {
		if hasKeyword(q, keyword) {
			tagged = append(tagged, q)
		} else {
			rest = append(rest, q)
		}
	}
	return append(tagged, rest...)
}

func hasKeyword(q domain.Quote, keyword string) bool {
	for _, k := range q.Keywords {
		if k == keyword {
			return true
		}
	}
	return false
}

// AdjectivesFor returns the characteristic adjectives for a noun, with
// the default row as fallback.
func (c *Catalog) AdjectivesFor(noun string) []string {
	if adj, ok := c.adjectives[noun]; ok {
		return adj
	}
	return c.adjectives["default"]
}

// VerbsFor returns the characteristic verb/object pairs for a noun.
func (c *Catalog) VerbsFor(noun string) []VerbObject {
	if v, ok := c.verbs[noun]; ok {
		return v
	}
	return c.verbs["default"]
}

// RelatedFor returns words adjacent to a noun in the training data.
func (c *Catalog) RelatedFor(noun string) []string {
	if r, ok := c.related[noun]; ok {
		return r
	}
	return c.related["default"]
}
