package gemini

import (
	"context"
	"fmt"
	"strings"

	"github.com/auditkit/siteaudit"
	"google.golang.org/genai"
)

// Ensure FactChecker implements siteaudit.FactChecker at compile time.
var _ siteaudit.FactChecker = (*FactChecker)(nil)

// FactChecker implements siteaudit.FactChecker using Google Gemini.
// Callers treat it as optional: any error degrades the audit to scoring
// without a fact-check term rather than failing it.
type FactChecker struct {
	client *genai.Client
}

// NewFactChecker creates a new FactChecker.
func NewFactChecker(client *genai.Client) *FactChecker {
	return &FactChecker{client: client}
}

// Check extracts the factual claims in content and returns per-claim
// verdicts plus an aggregate 0-100 score.
func (f *FactChecker) Check(ctx context.Context, content string) (*siteaudit.FactCheckResult, error) {
	if strings.TrimSpace(content) == "" {
		return nil, siteaudit.Errorf(siteaudit.EINVALID, "content required")
	}

	result, err := f.client.Models.GenerateContent(ctx, model,
		[]*genai.Content{{
			Parts: []*genai.Part{{Text: BuildFactCheckPrompt(content)}},
		}},
		FactCheckConfig(),
	)
	if err != nil {
		return nil, siteaudit.Errorf(siteaudit.EUNAVAILABLE, "gemini: %v", err)
	}
	if result == nil {
		return nil, siteaudit.Errorf(siteaudit.EINTERNAL, "gemini returned nil result")
	}

	var parsed siteaudit.FactCheckResult
	if err := siteaudit.DecodePayload(result.Text(), &parsed); err != nil {
		return nil, err
	}

	if parsed.Score < 0 {
		parsed.Score = 0
	} else if parsed.Score > 100 {
		parsed.Score = 100
	}
	for i, c := range parsed.Claims {
		switch c.Status {
		case siteaudit.ClaimVerified, siteaudit.ClaimUncertain, siteaudit.ClaimUnverified:
		default:
			parsed.Claims[i].Status = siteaudit.ClaimUncertain
		}
	}

	return &parsed, nil
}

// FactCheckConfig returns the GenerateContentConfig for fact-check calls.
// Temperature is zero: verdicts should be as reproducible as the model
// allows.
func FactCheckConfig() *genai.GenerateContentConfig {
	temp := float32(0)
	return &genai.GenerateContentConfig{
		SystemInstruction: &genai.Content{
			Parts: []*genai.Part{{
				Text: "You are a meticulous fact checker. Judge only the verifiability of claims; do not rewrite them.",
			}},
		},
		Temperature: &temp,
	}
}

// BuildFactCheckPrompt builds the user prompt for a fact-check call.
func BuildFactCheckPrompt(content string) string {
	var sb strings.Builder
	sb.WriteString("Identify the factual claims in the content below and judge each one.\n")
	sb.WriteString("Respond with exactly one JSON object of the form:\n")
	sb.WriteString(`{"score": <0-100 aggregate verifiability>, "claims": [{"text": "...", "status": "verified|uncertain|unverified", "explanation": "..."}]}`)
	sb.WriteString("\n\n<content>\n")
	fmt.Fprintf(&sb, "%s\n", content)
	sb.WriteString("</content>")
	return sb.String()
}
