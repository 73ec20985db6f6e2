// Package gemini implements siteaudit's generation and fact-check
// collaborators using Google Gemini.
package gemini

import (
	"context"

	"github.com/auditkit/siteaudit"
	"google.golang.org/genai"
)

const model = "gemini-2.5-flash"

// Ensure Generator implements siteaudit.Generator at compile time.
var _ siteaudit.Generator = (*Generator)(nil)

// Generator implements siteaudit.Generator using Google Gemini.
type Generator struct {
	client *genai.Client
}

// NewGenerator creates a new Generator.
func NewGenerator(client *genai.Client) *Generator {
	return &Generator{client: client}
}

// Generate produces text for a prompt. Callers that expect structured
// output parse it with siteaudit.DecodePayload; the model is free to wrap
// the payload in prose or fences.
func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	if prompt == "" {
		return "", siteaudit.Errorf(siteaudit.EINVALID, "prompt required")
	}

	result, err := g.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: prompt}},
		}},
		GenerateConfig(),
	)
	if err != nil {
		return "", siteaudit.Errorf(siteaudit.EUNAVAILABLE, "gemini: %v", err)
	}
	if result == nil {
		return "", siteaudit.Errorf(siteaudit.EINTERNAL, "gemini returned nil result")
	}

	return result.Text(), nil
}

// GenerateConfig returns the GenerateContentConfig for rewrite calls.
// Temperature is kept low; rewrites should improve weak dimensions, not
// invent new claims.
func GenerateConfig() *genai.GenerateContentConfig {
	temp := float32(0.4)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a content editor improving web copy for search visibility, answer-engine citability, and readability. Preserve the author's meaning and facts. Respond only with the JSON object requested.",
			}},
		},
		Temperature: &temp,
	}
}
