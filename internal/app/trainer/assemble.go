package trainer

import (
	"context"
	"fmt"
	"strings"

	"github.com/gymnasion-dev/gymnasion/internal/app/imitation"
	"github.com/gymnasion-dev/gymnasion/internal/app/ledger"
	"github.com/gymnasion-dev/gymnasion/internal/domain"
	"github.com/gymnasion-dev/gymnasion/internal/lexicon"
	"github.com/gymnasion-dev/gymnasion/internal/observability"
)

// lineInput carries everything the analyzers produced for one line.
type lineInput struct {
	tokens     []string
	tags       []domain.POSTag
	rawLine    string
	lineNumber int
	mode       domain.TrainingMode

	violations   []string
	banishEvents []ledger.BanishEvent
	repeated     bool
	staleThemes  []string
	author       *domain.Author
	imitated     imitation.Result
}

// Phrasing pools, carried over from the training data. Selection rotates
// off the line number so a replayed session phrases identically.
var (
	reproaches = []string{
		"Are you even paying attention to yourself?",
		"You forget my instructions.",
		"How narrow your mind...",
		"How disappointing.",
		"Try harder.",
	}
	kinWords = []string{"kin", "brethren", "kindred", "neighbors"}

	wearyBeginnings = []string{"I grow weary.", "I grow bored.", "You have lost the thread."}
	recallEndings   = []string{"Return to the part about the %s.", "Tell me more about the %s."}

	comparisonQuestions = []string{
		"Which will last longer?",
		"Which is deeper?",
		"Which is more lovely?",
		"Which is closer to the divine?",
		"Which is more virtuous?",
	}

	quotePrefixes = []string{
		"Learn from this mastery",
		"Now imitate this",
		"Emulate this discourse",
		"Listen and respond",
		"Student, learn from these words",
	}
)

// assemble applies the precedence rules: corrective warnings about the
// line just written come first, forward-looking prompts follow, with at
// most one elaboration and one quote suggestion per line.
func (s *Service) assemble(ctx context.Context, sess *domain.Session, in lineInput) []domain.Prompt {
	var prompts []domain.Prompt

	// Corrective, in every mode.
	for _, word := range in.violations {
		prompts = append(prompts, domain.Prompt{
			Kind:    domain.PromptBanishmentWarning,
			Subject: word,
			Text: fmt.Sprintf("%s\nI said not to sing of %s...",
				rotate(reproaches, in.lineNumber), word),
		})
	}
	for _, ev := range in.banishEvents {
		prompts = append(prompts, domain.Prompt{
			Kind:    domain.PromptBanishmentWarning,
			Subject: ev.Word,
			Text: fmt.Sprintf("I forbid you from singing of %s or this word's %s.",
				ev.Word, rotate(kinWords, in.lineNumber)),
		})
	}
	if in.repeated {
		n := len(in.tokens)
		if n > 4 {
			n = 4
		}
		prompts = append(prompts, domain.Prompt{
			Kind: domain.PromptRepetitionWarning,
			Text: fmt.Sprintf("Eschew this tired syntax:\n   %q",
				strings.Join(in.tokens[:n], " ")+"..."),
		})
	}

	// Forward-looking, filtered by the training mode.
	allowed := allowedKinds(in.mode)

	if allowed[domain.PromptImitationNote] && in.imitated.Verdict == domain.VerdictWeakMatch {
		prompts = append(prompts, domain.Prompt{
			Kind:    domain.PromptImitationNote,
			Subject: in.author.ID,
			Text: fmt.Sprintf("No, not that style --- imitate %s. %s",
				in.author.Name, in.imitated.Note),
		})
	}

	if allowed[domain.PromptCohesionPrompt] && len(in.staleThemes) > 0 {
		prompts = append(prompts, s.cohesionPrompt(in))
	}

	if allowed[domain.PromptElaboration] {
		if p, ok := s.elaborationPrompt(ctx, in); ok {
			prompts = append(prompts, p)
		}
	}

	if allowed[domain.PromptQuoteSuggestion] {
		if p, ok := s.quotePrompt(sess, in); ok {
			prompts = append(prompts, p)
		}
	}

	return prompts
}

func allowedKinds(mode domain.TrainingMode) map[domain.PromptKind]bool {
	switch mode {
	case domain.ModeElaboration:
		return map[domain.PromptKind]bool{domain.PromptElaboration: true}
	case domain.ModeImitation:
		return map[domain.PromptKind]bool{
			domain.PromptQuoteSuggestion: true,
			domain.PromptImitationNote:   true,
		}
	case domain.ModeVariation:
		return map[domain.PromptKind]bool{}
	case domain.ModeBacktracking:
		return map[domain.PromptKind]bool{domain.PromptCohesionPrompt: true}
	default:
		return map[domain.PromptKind]bool{
			domain.PromptElaboration:     true,
			domain.PromptQuoteSuggestion: true,
			domain.PromptImitationNote:   true,
			domain.PromptCohesionPrompt:  true,
		}
	}
}

// cohesionPrompt surfaces the oldest unresolved theme. With a noun in
// the current line it asks for a comparison; otherwise it commands a
// return to the dropped thread.
func (s *Service) cohesionPrompt(in lineInput) domain.Prompt {
	term := in.staleThemes[0]

	if noun, ok := firstNoun(in.tokens, in.tags); ok && noun != term {
		return domain.Prompt{
			Kind:    domain.PromptCohesionPrompt,
			Subject: term,
			Text: fmt.Sprintf("Now compare the %s to the %s. %s",
				term, noun, rotate(comparisonQuestions, in.lineNumber)),
		}
	}

	return domain.Prompt{
		Kind:    domain.PromptCohesionPrompt,
		Subject: term,
		Text: fmt.Sprintf("%s %s",
			rotate(wearyBeginnings, in.lineNumber),
			fmt.Sprintf(rotate(recallEndings, in.lineNumber), term)),
	}
}

// elaborationPrompt picks the single elaboration candidate for the line:
// the earliest-placed noun or named entity wins. The muse phrases it;
// a failing muse degrades to the deterministic backup, and a line with
// no candidate emits nothing.
func (s *Service) elaborationPrompt(ctx context.Context, in lineInput) (domain.Prompt, bool) {
	cand, ok := pickElaboration(in)
	if !ok {
		return domain.Prompt{}, false
	}

	text, err := s.muse.PhraseElaboration(ctx, cand)
	if err != nil && s.backup != nil {
		observability.LoggerFromContext(ctx).Warn("muse failed, using deterministic phrasing", "error", err)
		text, err = s.backup.PhraseElaboration(ctx, cand)
	}
	if err != nil || text == "" {
		return domain.Prompt{}, false
	}

	return domain.Prompt{
		Kind:    domain.PromptElaboration,
		Subject: cand.Subject,
		Text:    text,
	}, true
}

func pickElaboration(in lineInput) (domain.Elaboration, bool) {
	nounKinds := []domain.ElaborationKind{
		domain.ElaborateAdjective,
		domain.ElaborateVerb,
		domain.ElaborateObject,
		domain.ElaborateRelated,
	}

	best := domain.Elaboration{TokenIndex: len(in.tokens)}
	found := false

	if noun, idx, ok := firstNounIndexed(in.tokens, in.tags); ok {
		best = domain.Elaboration{
			Kind:       nounKinds[in.lineNumber%len(nounKinds)],
			Subject:    noun,
			TokenIndex: idx,
			LineNumber: in.lineNumber,
		}
		found = true
	}

	// Entities come in line order, so only the first one can win.
	if ents := lexicon.Entities(in.rawLine); len(ents) > 0 && ents[0].TokenIndex < best.TokenIndex {
		best = domain.Elaboration{
			Kind:       domain.ElaborateEntity,
			Subject:    ents[0].Word,
			TokenIndex: ents[0].TokenIndex,
			LineNumber: in.lineNumber,
		}
		found = true
	}

	return best, found
}

// quotePrompt offers one quote keyed off the line's first content word,
// never repeating a quote within the session.
func (s *Service) quotePrompt(sess *domain.Session, in lineInput) (domain.Prompt, bool) {
	keyword := in.tokens[0]
	if noun, ok := firstNoun(in.tokens, in.tags); ok {
		keyword = noun
	}

	for _, q := range s.quotes.QuotesFor(keyword) {
		if sess.UsedQuotes[q.Text] {
			continue
		}
		sess.UsedQuotes[q.Text] = true
		return domain.Prompt{
			Kind:    domain.PromptQuoteSuggestion,
			Subject: keyword,
			Text: fmt.Sprintf("%s:\n%q\n   (%s)",
				rotate(quotePrefixes, in.lineNumber), q.Text, q.Attribution),
		}, true
	}
	return domain.Prompt{}, false
}

func firstNoun(tokens []string, tags []domain.POSTag) (string, bool) {
	noun, _, ok := firstNounIndexed(tokens, tags)
	return noun, ok
}

func firstNounIndexed(tokens []string, tags []domain.POSTag) (string, int, bool) {
	for i, tag := range tags {
		if tag == domain.TagNoun && !lexicon.IsStopword(tokens[i]) {
			return tokens[i], i, true
		}
	}
	return "", 0, false
}

func rotate(options []string, n int) string {
	return options[n%len(options)]
}
