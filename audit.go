package siteaudit

import (
	"context"
	"time"
)

// Audit is the terminal artifact of auditing a single URL: the stable
// contract consumed by reporting and export layers. It carries every
// sub-score with its detail breakdown, the accessibility scan, and the
// structural counts the scores were derived from.
type Audit struct {
	ID              string              `json:"id"`
	URL             string              `json:"url"`
	Title           string              `json:"title"`
	MetaDescription string              `json:"metaDescription"`
	Text            string              `json:"text"` // extracted main content as markdown
	ContentHash     string              `json:"contentHash"`
	Structure       HTMLStructure       `json:"structure"`
	Scores          ScoreComponents     `json:"scores"`
	Composite       int                 `json:"composite"`
	Accessibility   AccessibilityResult `json:"accessibility"`
	FetchedAt       time.Time           `json:"fetchedAt"`
}

// Validate returns an error if the audit contains invalid fields.
func (a *Audit) Validate() error {
	if a.URL == "" {
		return Errorf(EINVALID, "audit URL required")
	}
	return nil
}

// AuditService stores and retrieves audit snapshots. Snapshots are
// write-once: CreateAudit assigns the run ID and the stored record is
// never updated afterward.
type AuditService interface {
	// CreateAudit persists a new audit snapshot and assigns its ID.
	CreateAudit(ctx context.Context, audit *Audit) error

	// FindAuditByID retrieves a snapshot by run ID.
	// Returns ENOTFOUND if no such audit exists.
	FindAuditByID(ctx context.Context, id string) (*Audit, error)

	// FindAudits retrieves snapshots matching the filter, newest first.
	FindAudits(ctx context.Context, filter AuditFilter) ([]*Audit, error)
}

// AuditFilter selects stored audits.
type AuditFilter struct {
	URL *string `json:"url"`

	Offset int `json:"offset"`
	Limit  int `json:"limit"`
}
