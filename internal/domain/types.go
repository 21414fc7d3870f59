package domain

type SessionID string

// Status of a training session. Ended is terminal.
type Status string

const (
	StatusActive Status = "active"
	StatusEnded  Status = "ended"
)

// TrainingMode selects which forward-looking prompt kinds the trainer may
// emit. Corrective warnings fire in every mode.
type TrainingMode string

const (
	ModeMixed        TrainingMode = "mixed"
	ModeElaboration  TrainingMode = "elaboration"
	ModeImitation    TrainingMode = "imitation"
	ModeVariation    TrainingMode = "variation"
	ModeBacktracking TrainingMode = "backtracking"
)

// PromptKind tags each prompt in a Feedback.
type PromptKind string

const (
	PromptElaboration       PromptKind = "elaboration"
	PromptQuoteSuggestion   PromptKind = "quote_suggestion"
	PromptImitationNote     PromptKind = "imitation_note"
	PromptBanishmentWarning PromptKind = "banishment_warning"
	PromptRepetitionWarning PromptKind = "repetition_warning"
	PromptCohesionPrompt    PromptKind = "cohesion_prompt"
	PromptReprompt          PromptKind = "reprompt"
)

// POSTag is the coarse part-of-speech class the tagger assigns.
type POSTag string

const (
	TagNoun      POSTag = "NOUN"
	TagVerb      POSTag = "VERB"
	TagAdjective POSTag = "ADJ"
	TagOther     POSTag = "OTHER"
)

// Verdict is the imitation tracker's judgment of one line.
type Verdict string

const (
	VerdictStrongMatch Verdict = "strong_match"
	VerdictWeakMatch   Verdict = "weak_match"
	VerdictNoTarget    Verdict = "no_target"
)
