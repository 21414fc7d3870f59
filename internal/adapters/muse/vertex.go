package muse

import (
	"context"
	"fmt"
	"strings"

	"google.golang.org/genai"

	"github.com/gymnasion-dev/gymnasion/internal/domain"
)

const musePrompt = `You are Gymnasion, a stern classical trainer of poets.
Write exactly one short prompt (a single sentence or two) pushing the
student to elaborate on the word %q. Angle: %s. Address the student
directly, in the voice of a demanding teacher. Do not explain yourself.`

var angleDescriptions = map[domain.ElaborationKind]string{
	domain.ElaborateAdjective: "ask what qualities the thing has",
	domain.ElaborateVerb:      "ask what the thing does",
	domain.ElaborateObject:    "ask what the thing acts upon",
	domain.ElaborateRelated:   "suggest neighboring words to sing of",
	domain.ElaborateEntity:    "ask about this person or place by name",
}

// Vertex phrases elaboration prompts with Gemini on Vertex AI. Lexical
// judgment stays deterministic in the trainer; only the wording of the
// one elaboration prompt per line is generated.
type Vertex struct {
	client    *genai.Client
	modelName string
}

// NewVertex creates a generative muse. Project and location come from
// the caller (config), matching how the rest of the GCP adapters are
// wired.
func NewVertex(ctx context.Context, projectID, location, modelName string) (*Vertex, error) {
	if projectID == "" || location == "" {
		return nil, fmt.Errorf("projectID and location are required for the Vertex muse")
	}
	if modelName == "" {
		modelName = "gemini-2.5-flash"
	}

	client, err := genai.NewClient(ctx, &genai.ClientConfig{
		Project:  projectID,
		Location: location,
		Backend:  genai.BackendVertexAI,
	})
	if err != nil {
		return nil, fmt.Errorf("creating Vertex AI client: %w", err)
	}

	return &Vertex{client: client, modelName: modelName}, nil
}

// PhraseElaboration implements domain.Muse.
func (v *Vertex) PhraseElaboration(ctx context.Context, e domain.Elaboration) (string, error) {
	angle := angleDescriptions[e.Kind]
	if angle == "" {
		angle = "ask the student to elaborate"
	}

	contents := []*genai.Content{
		genai.NewContentFromText(fmt.Sprintf(musePrompt, e.Subject, angle), genai.RoleUser),
	}

	temp := float32(0.8)
	outputTokens := int32(128)
	cfg := &genai.GenerateContentConfig{
		Temperature:     &temp,
		MaxOutputTokens: outputTokens,
	}

	res, err := v.client.Models.GenerateContent(ctx, v.modelName, contents, cfg)
	if err != nil {
		return "", fmt.Errorf("vertex generate content: %w", err)
	}

	text := strings.TrimSpace(res.Text())
	if text == "" {
		return "", fmt.Errorf("vertex returned empty text")
	}
	return text, nil
}
