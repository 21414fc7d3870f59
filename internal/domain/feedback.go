package domain

// Prompt is one piece of trainer feedback about a submitted line.
type Prompt struct {
	Kind    PromptKind
	Text    string
	Subject string // the word or author the prompt is about, when there is one
}

// Feedback is the single output of one analysis call. It carries the
// prompts in display order plus a snapshot of the session fields the
// caller needs to render. The engine does not retain it.
type Feedback struct {
	SessionID SessionID
	Prompts   []Prompt

	Status          Status
	LineCount       int
	WordCount       int
	BanishedWords   []string
	ImitationTarget string
}

// Snapshot builds a Feedback carrying only the session status fields.
func Snapshot(s *Session) *Feedback {
	return &Feedback{
		SessionID:       s.ID,
		Status:          s.Status,
		LineCount:       s.LineCount,
		WordCount:       s.TotalWords(),
		BanishedWords:   s.BanishedList(),
		ImitationTarget: s.ImitationTarget,
	}
}
