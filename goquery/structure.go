// Package goquery provides CSS-selector-based implementations of
// siteaudit's document analysis interfaces: the structure analyzer, the
// content extractor, and the accessibility scanner.
package goquery

import (
	"net/url"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/auditkit/siteaudit"
)

// Ensure Analyzer implements siteaudit.StructureAnalyzer at compile time.
var _ siteaudit.StructureAnalyzer = (*Analyzer)(nil)

// Analyzer counts structural signals from raw markup.
type Analyzer struct{}

// NewAnalyzer creates a new Analyzer.
func NewAnalyzer() *Analyzer {
	return &Analyzer{}
}

// Analyze counts headings, links, images, and schema markers in rawHTML.
// It must run against the original markup, before any noise stripping.
// It never fails: unparseable input yields zero counts.
func (a *Analyzer) Analyze(rawHTML string, pageURL string) siteaudit.HTMLStructure {
	var s siteaudit.HTMLStructure

	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return s
	}

	s.H1 = doc.Find("h1").Length()
	s.H2 = doc.Find("h2").Length()
	s.H3 = doc.Find("h3").Length()
	s.H4 = doc.Find("h4").Length()

	pageHost := hostOf(pageURL)
	doc.Find("a[href]").Each(func(_ int, sel *goquery.Selection) {
		href, _ := sel.Attr("href")
		if href == "" || isNonHTTPLink(href) {
			return
		}
		if isInternalLink(href, pageHost) {
			s.InternalLinks++
		} else {
			s.ExternalLinks++
		}
	})

	doc.Find("img").Each(func(_ int, sel *goquery.Selection) {
		s.Images++
		if _, ok := sel.Attr("alt"); ok {
			s.ImagesWithAlt++
		}
	})

	s.HasSchema = doc.Find(`script[type="application/ld+json"]`).Length() > 0
	// Tolerate a space after the colon; JSON-LD is frequently pretty-printed.
	s.HasFAQSchema = strings.Contains(rawHTML, `"@type":"FAQPage"`) ||
		strings.Contains(rawHTML, `"@type": "FAQPage"`)
	s.HasCanonical = doc.Find(`link[rel="canonical"]`).Length() > 0
	s.HasOpenGraph = doc.Find(`meta[property^="og:"]`).Length() > 0

	return s
}

// hostOf returns the URL's host with any leading "www." stripped.
func hostOf(rawURL string) string {
	u, err := url.Parse(rawURL)
	if err != nil {
		return ""
	}
	return strings.TrimPrefix(strings.ToLower(u.Hostname()), "www.")
}

// isInternalLink reports whether href points at the page's own site:
// either a relative path or an absolute URL on the same host with any
// leading "www." stripped.
func isInternalLink(href string, pageHost string) bool {
	ref, err := url.Parse(href)
	if err != nil {
		return false
	}
	if ref.Host == "" {
		return true
	}
	refHost := strings.TrimPrefix(strings.ToLower(ref.Hostname()), "www.")
	return pageHost != "" && refHost == pageHost
}

// isNonHTTPLink checks if a href is a non-HTTP link that should be skipped.
func isNonHTTPLink(href string) bool {
	href = strings.ToLower(strings.TrimSpace(href))
	return strings.HasPrefix(href, "javascript:") ||
		strings.HasPrefix(href, "mailto:") ||
		strings.HasPrefix(href, "tel:") ||
		strings.HasPrefix(href, "data:") ||
		strings.HasPrefix(href, "#")
}
