package siteaudit

import "context"

// ClaimStatus is the verification verdict on a single factual claim.
type ClaimStatus string

// Claim verdicts.
const (
	ClaimVerified   ClaimStatus = "verified"
	ClaimUncertain  ClaimStatus = "uncertain"
	ClaimUnverified ClaimStatus = "unverified"
)

// Claim is a single factual statement with its verification verdict.
type Claim struct {
	Text        string      `json:"text"`
	Status      ClaimStatus `json:"status"`
	Explanation string      `json:"explanation,omitempty"`
}

// FactCheckResult is the aggregate verdict on a piece of content.
type FactCheckResult struct {
	// Score is the aggregate verifiability verdict, 0-100.
	Score int `json:"score"`

	Claims []Claim `json:"claims"`
}

// UnverifiedClaims returns the claims that failed verification outright.
// The rewrite controller names these in its improvement directives.
func (r *FactCheckResult) UnverifiedClaims() []Claim {
	var out []Claim
	for _, c := range r.Claims {
		if c.Status == ClaimUnverified {
			out = append(out, c)
		}
	}
	return out
}

// FactChecker verifies the factual claims in content. It is optional
// everywhere it appears: audits proceed with the fact-check term omitted
// when the collaborator is unavailable.
type FactChecker interface {
	Check(ctx context.Context, content string) (*FactCheckResult, error)
}
