package siteaudit

import "context"

// Generator produces text from a prompt. It is the external generation
// collaborator behind content rewriting; output may arrive wrapped in
// extraneous formatting, so callers extract structured payloads with
// ExtractPayload/DecodePayload rather than trusting the raw text.
type Generator interface {
	Generate(ctx context.Context, prompt string) (string, error)
}
