package main_test

import (
	"bytes"
	"context"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/auditkit/siteaudit"
	"github.com/auditkit/siteaudit/audit"
	main "github.com/auditkit/siteaudit/cmd/siteaudit"
	"github.com/auditkit/siteaudit/mock"
)

// testAuditor wires an Auditor whose collaborators all succeed without
// touching the network.
func testAuditor() *audit.Auditor {
	return &audit.Auditor{
		Fetcher: &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "<html><body><article><p>What is a heat pump? A heat pump moves heat instead of making it.</p></article></body></html>", nil
			},
		},
		Analyzer: &mock.StructureAnalyzer{
			AnalyzeFn: func(_, _ string) siteaudit.HTMLStructure {
				return siteaudit.HTMLStructure{H1: 1, H2: 2}
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (*siteaudit.ExtractResult, error) {
				return &siteaudit.ExtractResult{
					Title:       "Heat Pumps Explained",
					ContentHTML: "<p>What is a heat pump? A heat pump moves heat instead of making it.</p>",
				}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "What is a heat pump? A heat pump moves heat instead of making it.", nil
			},
		},
		Scanner: &mock.AccessibilityScanner{
			ScanFn: func(_ string) []siteaudit.Violation { return nil },
		},
		RetryDelays: []time.Duration{},
	}
}

func TestAuditCmd_Run(t *testing.T) {
	t.Parallel()

	t.Run("renders the audit report", func(t *testing.T) {
		t.Parallel()

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Auditor: testAuditor(),
		}

		cmd := &main.AuditCmd{URL: "https://example.com/heat-pumps"}

		require.NoError(t, cmd.Run(deps))

		output := stdout.String()
		assert.Contains(t, output, "https://example.com/heat-pumps")
		assert.Contains(t, output, "Overall score:")
		assert.Contains(t, output, "accessibility")
	})

	t.Run("saves the audit when asked", func(t *testing.T) {
		t.Parallel()

		var saved *siteaudit.Audit
		audits := &mock.AuditService{
			CreateAuditFn: func(_ context.Context, a *siteaudit.Audit) error {
				a.ID = "run-789"
				saved = a
				return nil
			},
		}

		stdout := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  stdout,
			Stderr:  &bytes.Buffer{},
			Auditor: testAuditor(),
			Audits:  audits,
		}

		cmd := &main.AuditCmd{URL: "https://example.com/heat-pumps", Save: true}

		require.NoError(t, cmd.Run(deps))
		require.NotNil(t, saved)
		assert.Equal(t, "https://example.com/heat-pumps", saved.URL)
		assert.Contains(t, stdout.String(), "Saved audit run-789")
	})

	t.Run("reports fetch failures", func(t *testing.T) {
		t.Parallel()

		auditor := testAuditor()
		auditor.Fetcher = &mock.Fetcher{
			FetchFn: func(_ context.Context, _ string) (string, error) {
				return "", siteaudit.Errorf(siteaudit.EUNAVAILABLE, "connection refused")
			},
		}

		stderr := &bytes.Buffer{}
		deps := &main.Dependencies{
			Ctx:     context.Background(),
			Stdout:  &bytes.Buffer{},
			Stderr:  stderr,
			Auditor: auditor,
		}

		cmd := &main.AuditCmd{URL: "https://example.com/heat-pumps"}

		err := cmd.Run(deps)
		require.Error(t, err)
		assert.Equal(t, siteaudit.EUNAVAILABLE, siteaudit.ErrorCode(err))
		assert.Contains(t, stderr.String(), "error:")
	})
}
