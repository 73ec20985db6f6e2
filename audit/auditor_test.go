package audit_test

import (
	"context"
	"testing"
	"time"

	"github.com/auditkit/siteaudit"
	"github.com/auditkit/siteaudit/audit"
	"github.com/auditkit/siteaudit/mock"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const page = `<html lang="en"><head><title>Test Page</title></head>
<body><article><p>Plenty of auditable text.</p></article></body></html>`

// newAuditor wires an Auditor whose collaborators all succeed; tests
// override the pieces they exercise.
func newAuditor() *audit.Auditor {
	return &audit.Auditor{
		Fetcher: &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				return page, nil
			},
		},
		Analyzer: &mock.StructureAnalyzer{
			AnalyzeFn: func(rawHTML, pageURL string) siteaudit.HTMLStructure {
				return siteaudit.HTMLStructure{H1: 1, InternalLinks: 3}
			},
		},
		Extractor: &mock.Extractor{
			ExtractFn: func(html string) (*siteaudit.ExtractResult, error) {
				return &siteaudit.ExtractResult{
					Title:       "Test Page",
					ContentHTML: "<p>Plenty of auditable text.</p>",
				}, nil
			},
		},
		Converter: &mock.Converter{
			ConvertFn: func(html string) (string, error) {
				return "Plenty of auditable text.", nil
			},
		},
		Scanner: &mock.AccessibilityScanner{
			ScanFn: func(rawHTML string) []siteaudit.Violation { return nil },
		},
		RetryDelays: []time.Duration{},
	}
}

func TestAuditor_Audit(t *testing.T) {
	t.Parallel()

	t.Run("assembles the full artifact", func(t *testing.T) {
		t.Parallel()

		auditor := newAuditor()

		result, err := auditor.Audit(context.Background(), audit.Request{URL: "https://example.com"})

		require.NoError(t, err)
		assert.Equal(t, "https://example.com", result.URL)
		assert.Equal(t, "Test Page", result.Title)
		assert.Equal(t, "Plenty of auditable text.", result.Text)
		assert.Equal(t, 1, result.Structure.H1)
		assert.Equal(t, 100, result.Accessibility.Score)
		assert.Equal(t, siteaudit.Composite(result.Scores), result.Composite)
		assert.False(t, result.FetchedAt.IsZero())
	})

	t.Run("requires a URL", func(t *testing.T) {
		t.Parallel()

		_, err := newAuditor().Audit(context.Background(), audit.Request{})

		assert.Equal(t, siteaudit.EINVALID, siteaudit.ErrorCode(err))
	})

	t.Run("propagates no-content extraction failures", func(t *testing.T) {
		t.Parallel()

		auditor := newAuditor()
		auditor.Extractor = &mock.Extractor{
			ExtractFn: func(html string) (*siteaudit.ExtractResult, error) {
				return nil, siteaudit.Errorf(siteaudit.ENOCONTENT, "no main content found")
			},
		}

		_, err := auditor.Audit(context.Background(), audit.Request{URL: "https://spa.example.com"})

		assert.Equal(t, siteaudit.ENOCONTENT, siteaudit.ErrorCode(err))
	})

	t.Run("retries transient fetch failures", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		auditor := newAuditor()
		auditor.RetryDelays = []time.Duration{0, 0}
		auditor.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				if attempts < 3 {
					return "", siteaudit.Errorf(siteaudit.EUNAVAILABLE, "HTTP 503")
				}
				return page, nil
			},
		}

		_, err := auditor.Audit(context.Background(), audit.Request{URL: "https://example.com"})

		require.NoError(t, err)
		assert.Equal(t, 3, attempts)
	})

	t.Run("does not retry invalid URLs", func(t *testing.T) {
		t.Parallel()

		attempts := 0
		auditor := newAuditor()
		auditor.RetryDelays = []time.Duration{0, 0}
		auditor.Fetcher = &mock.Fetcher{
			FetchFn: func(ctx context.Context, url string) (string, error) {
				attempts++
				return "", siteaudit.Errorf(siteaudit.EINVALID, "bad URL")
			},
		}

		_, err := auditor.Audit(context.Background(), audit.Request{URL: "::bad::"})

		require.Error(t, err)
		assert.Equal(t, 1, attempts)
	})

	t.Run("unavailable fact checker degrades instead of failing", func(t *testing.T) {
		t.Parallel()

		auditor := newAuditor()
		auditor.FactChecker = &mock.FactChecker{
			CheckFn: func(ctx context.Context, content string) (*siteaudit.FactCheckResult, error) {
				return nil, siteaudit.Errorf(siteaudit.EUNAVAILABLE, "collaborator down")
			},
		}

		result, err := auditor.Audit(context.Background(), audit.Request{
			URL:       "https://example.com",
			FactCheck: true,
		})

		require.NoError(t, err)
		assert.Nil(t, result.Scores.FactCheck)
	})

	t.Run("fact check verdict enters the composite", func(t *testing.T) {
		t.Parallel()

		auditor := newAuditor()
		auditor.FactChecker = &mock.FactChecker{
			CheckFn: func(ctx context.Context, content string) (*siteaudit.FactCheckResult, error) {
				return &siteaudit.FactCheckResult{Score: 85}, nil
			},
		}

		result, err := auditor.Audit(context.Background(), audit.Request{
			URL:       "https://example.com",
			FactCheck: true,
		})

		require.NoError(t, err)
		require.NotNil(t, result.Scores.FactCheck)
		assert.Equal(t, 85, *result.Scores.FactCheck)
	})

	t.Run("local context enables GEO scoring", func(t *testing.T) {
		t.Parallel()

		result, err := newAuditor().Audit(context.Background(), audit.Request{
			URL:   "https://example.com",
			Local: &siteaudit.LocalContext{City: "Austin"},
		})

		require.NoError(t, err)
		assert.NotNil(t, result.Scores.GEO)
	})
}

func TestDomainLimiter(t *testing.T) {
	t.Parallel()

	t.Run("different domains do not block each other", func(t *testing.T) {
		t.Parallel()

		limiter := audit.NewDomainLimiter(1)
		ctx := context.Background()

		start := time.Now()
		require.NoError(t, limiter.Wait(ctx, "a.example.com"))
		require.NoError(t, limiter.Wait(ctx, "b.example.com"))
		require.NoError(t, limiter.Wait(ctx, "c.example.com"))

		assert.Less(t, time.Since(start), 500*time.Millisecond)
	})

	t.Run("canceled context aborts the wait", func(t *testing.T) {
		t.Parallel()

		limiter := audit.NewDomainLimiter(0.001)
		ctx, cancel := context.WithCancel(context.Background())

		require.NoError(t, limiter.Wait(ctx, "slow.example.com"))
		cancel()

		assert.Error(t, limiter.Wait(ctx, "slow.example.com"))
	})
}
