package goquery

import (
	"bytes"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/auditkit/siteaudit"
	"golang.org/x/net/html"
)

// Ensure Extractor implements siteaudit.Extractor at compile time.
var _ siteaudit.Extractor = (*Extractor)(nil)

// MinContentLength is the minimum extracted text length for a candidate
// region to count as the page's main content.
const MinContentLength = 100

// noiseSelectors are removed from the document before content location.
// Order doesn't matter; the removals are destructive, which is why the
// structure analyzer must run on the original markup.
var noiseSelectors = []string{
	"script", "style", "noscript", "iframe",
	"nav", "footer", "aside", "header",
	".sidebar", ".side-bar", ".navigation", ".nav", ".menu",
	".footer", ".comments", "#comments", ".comment",
	".advertisement", ".ads", ".ad-container", ".cookie-banner",
}

// contentSelectors are tried in order; the first whose text length reaches
// MinContentLength wins. body comes last so that a script-rendered shell,
// which has nothing in its body, still fails with ENOCONTENT.
var contentSelectors = []string{
	"article",
	"main",
	`[role="main"]`,
	".post-content",
	".entry-content",
	".article-content",
	".article-body",
	".page-content",
	".main-content",
	"#content",
	".content",
	"body",
}

// Extractor locates the main content block using an ordered list of
// common content-region selectors.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract strips noise regions and returns the first content region with
// at least MinContentLength characters of text. Returns ENOCONTENT when no
// region qualifies, which usually means the site requires script execution
// to render its content.
func (e *Extractor) Extract(rawHTML string) (*siteaudit.ExtractResult, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil, siteaudit.Errorf(siteaudit.EINVALID, "failed to parse HTML: %v", err)
	}

	result := &siteaudit.ExtractResult{
		Title:           pageTitle(doc),
		MetaDescription: metaDescription(doc),
	}

	for _, selector := range noiseSelectors {
		doc.Find(selector).Remove()
	}

	for _, selector := range contentSelectors {
		sel := doc.Find(selector).First()
		if sel.Length() == 0 {
			continue
		}
		text := strings.TrimSpace(sel.Text())
		if len(text) < MinContentLength {
			continue
		}
		contentHTML, err := renderSelection(sel)
		if err != nil {
			return nil, err
		}
		result.ContentHTML = contentHTML
		return result, nil
	}

	return nil, siteaudit.Errorf(siteaudit.ENOCONTENT,
		"no main content found; the page may require script execution to render")
}

// pageTitle prefers the title element, falling back to og:title.
func pageTitle(doc *goquery.Document) string {
	if title := strings.TrimSpace(doc.Find("title").First().Text()); title != "" {
		return title
	}
	title, _ := doc.Find(`meta[property="og:title"]`).First().Attr("content")
	return strings.TrimSpace(title)
}

func metaDescription(doc *goquery.Document) string {
	desc, _ := doc.Find(`meta[name="description"]`).First().Attr("content")
	if desc == "" {
		desc, _ = doc.Find(`meta[property="og:description"]`).First().Attr("content")
	}
	return strings.TrimSpace(desc)
}

// renderSelection converts a selection's nodes back to an HTML string.
func renderSelection(sel *goquery.Selection) (string, error) {
	var buf bytes.Buffer
	for _, n := range sel.Nodes {
		if err := html.Render(&buf, n); err != nil {
			return "", siteaudit.Errorf(siteaudit.EINTERNAL, "failed to render content: %v", err)
		}
	}
	return buf.String(), nil
}
