package mock

import (
	"context"

	"github.com/auditkit/siteaudit"
)

var _ siteaudit.AuditService = (*AuditService)(nil)

// AuditService is a mock implementation of siteaudit.AuditService.
type AuditService struct {
	CreateAuditFn   func(ctx context.Context, audit *siteaudit.Audit) error
	FindAuditByIDFn func(ctx context.Context, id string) (*siteaudit.Audit, error)
	FindAuditsFn    func(ctx context.Context, filter siteaudit.AuditFilter) ([]*siteaudit.Audit, error)
}

func (s *AuditService) CreateAudit(ctx context.Context, audit *siteaudit.Audit) error {
	return s.CreateAuditFn(ctx, audit)
}

func (s *AuditService) FindAuditByID(ctx context.Context, id string) (*siteaudit.Audit, error) {
	return s.FindAuditByIDFn(ctx, id)
}

func (s *AuditService) FindAudits(ctx context.Context, filter siteaudit.AuditFilter) ([]*siteaudit.Audit, error) {
	return s.FindAuditsFn(ctx, filter)
}

var _ siteaudit.StructureAnalyzer = (*StructureAnalyzer)(nil)

// StructureAnalyzer is a mock implementation of siteaudit.StructureAnalyzer.
type StructureAnalyzer struct {
	AnalyzeFn func(rawHTML string, pageURL string) siteaudit.HTMLStructure
}

func (a *StructureAnalyzer) Analyze(rawHTML string, pageURL string) siteaudit.HTMLStructure {
	return a.AnalyzeFn(rawHTML, pageURL)
}

var _ siteaudit.AccessibilityScanner = (*AccessibilityScanner)(nil)

// AccessibilityScanner is a mock implementation of siteaudit.AccessibilityScanner.
type AccessibilityScanner struct {
	ScanFn func(rawHTML string) []siteaudit.Violation
}

func (s *AccessibilityScanner) Scan(rawHTML string) []siteaudit.Violation {
	return s.ScanFn(rawHTML)
}
