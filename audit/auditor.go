// Package audit orchestrates the single-URL audit pipeline: fetch,
// structural analysis, content extraction, markdown conversion, scoring,
// and accessibility scanning.
package audit

import (
	"context"
	"net/url"
	"time"

	"github.com/auditkit/siteaudit"
)

// DefaultFetchTimeout bounds one fetch attempt inside an audit.
const DefaultFetchTimeout = 15 * time.Second

// Auditor coordinates the collaborators of one audit pipeline. FactChecker
// and Limiter are optional; everything else is required.
type Auditor struct {
	Fetcher     siteaudit.Fetcher
	Analyzer    siteaudit.StructureAnalyzer
	Extractor   siteaudit.Extractor
	Converter   siteaudit.Converter
	Scanner     siteaudit.AccessibilityScanner
	FactChecker siteaudit.FactChecker

	// Limiter throttles fetches per domain so benchmark fan-out stays
	// polite to the sites it audits.
	Limiter *DomainLimiter

	// FetchTimeout bounds each fetch attempt. Defaults to
	// DefaultFetchTimeout.
	FetchTimeout time.Duration

	// RetryDelays configures fetch retry backoff. Nil means the default
	// delays; an empty slice disables retries.
	RetryDelays []time.Duration
}

// Request describes one audit call.
type Request struct {
	URL string

	// Local enables GEO scoring and the local composite weight set.
	Local *siteaudit.LocalContext

	// FactCheck runs the fact-check collaborator when one is configured.
	// An unreachable collaborator degrades to scoring without the term.
	FactCheck bool
}

// Audit runs the full pipeline for one URL and returns the terminal audit
// artifact. The structure analysis runs against the original markup before
// the extractor's destructive noise stripping.
func (a *Auditor) Audit(ctx context.Context, req Request) (*siteaudit.Audit, error) {
	if req.URL == "" {
		return nil, siteaudit.Errorf(siteaudit.EINVALID, "audit URL required")
	}

	if a.Limiter != nil {
		if err := a.Limiter.Wait(ctx, domainOf(req.URL)); err != nil {
			return nil, err
		}
	}

	html, err := a.fetch(ctx, req.URL)
	if err != nil {
		return nil, err
	}

	structure := a.Analyzer.Analyze(html, req.URL)

	extracted, err := a.Extractor.Extract(html)
	if err != nil {
		return nil, err
	}

	text, err := a.Converter.Convert(extracted.ContentHTML)
	if err != nil {
		return nil, err
	}

	var factCheck *int
	if req.FactCheck && a.FactChecker != nil {
		// Unreachable fact checking never fails the audit; the composite
		// renormalizes without the term.
		if result, err := a.FactChecker.Check(ctx, text); err == nil {
			factCheck = &result.Score
		}
	}

	scores := siteaudit.Score(siteaudit.ScoreInput{
		Text:            text,
		Title:           extracted.Title,
		MetaDescription: extracted.MetaDescription,
		FactCheck:       factCheck,
		Local:           req.Local,
		Structure:       &structure,
	})

	return &siteaudit.Audit{
		URL:             req.URL,
		Title:           extracted.Title,
		MetaDescription: extracted.MetaDescription,
		Text:            text,
		Structure:       structure,
		Scores:          scores,
		Composite:       siteaudit.Composite(scores),
		Accessibility:   siteaudit.ScoreAccessibility(a.Scanner.Scan(html)),
		FetchedAt:       time.Now().UTC(),
	}, nil
}

// fetch retrieves the page with retry backoff, bounding each attempt with
// the configured timeout.
func (a *Auditor) fetch(ctx context.Context, pageURL string) (string, error) {
	timeout := a.FetchTimeout
	if timeout <= 0 {
		timeout = DefaultFetchTimeout
	}

	delays := a.RetryDelays
	if delays == nil {
		delays = DefaultRetryDelays()
	}

	return fetchWithRetry(ctx, pageURL, func(ctx context.Context, u string) (string, error) {
		fetchCtx, cancel := context.WithTimeout(ctx, timeout)
		defer cancel()
		return a.Fetcher.Fetch(fetchCtx, u)
	}, delays)
}

// domainOf extracts the host for rate limiting; an unparseable URL falls
// back to the raw string so it still shares one limiter bucket.
func domainOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil || u.Host == "" {
		return rawURL
	}
	return u.Host
}
