// Package trafilatura provides a readability-algorithm implementation of
// siteaudit.Extractor. It handles markup the selector-based extractor
// misjudges, at the cost of less predictable region choice.
package trafilatura

import (
	"bytes"
	"strings"

	"github.com/auditkit/siteaudit"
	"github.com/markusmobius/go-trafilatura"
	"golang.org/x/net/html"
)

// Ensure Extractor implements siteaudit.Extractor at compile time.
var _ siteaudit.Extractor = (*Extractor)(nil)

// Extractor wraps go-trafilatura to extract main content from HTML.
type Extractor struct{}

// NewExtractor creates a new Extractor.
func NewExtractor() *Extractor {
	return &Extractor{}
}

// Extract processes raw HTML and returns the main content. The same
// minimum-length gate as the selector-based extractor applies, so callers
// see a consistent ENOCONTENT on script-rendered shells.
func (e *Extractor) Extract(rawHTML string) (*siteaudit.ExtractResult, error) {
	if rawHTML == "" {
		return nil, siteaudit.Errorf(siteaudit.EINVALID, "empty HTML input")
	}

	opts := trafilatura.Options{
		EnableFallback: true,
	}

	result, err := trafilatura.Extract(strings.NewReader(rawHTML), opts)
	if err != nil {
		return nil, siteaudit.Errorf(siteaudit.ENOCONTENT,
			"no main content found; the page may require script execution to render")
	}

	var contentHTML string
	if result.ContentNode != nil {
		contentHTML, err = renderNode(result.ContentNode)
		if err != nil {
			return nil, err
		}
	}
	if len(strings.TrimSpace(result.ContentText)) < 100 {
		return nil, siteaudit.Errorf(siteaudit.ENOCONTENT,
			"no main content found; the page may require script execution to render")
	}

	return &siteaudit.ExtractResult{
		Title:           result.Metadata.Title,
		MetaDescription: result.Metadata.Description,
		ContentHTML:     contentHTML,
	}, nil
}

// renderNode converts an html.Node to a string.
func renderNode(n *html.Node) (string, error) {
	var buf bytes.Buffer
	if err := html.Render(&buf, n); err != nil {
		return "", siteaudit.Errorf(siteaudit.EINTERNAL, "failed to render content: %v", err)
	}
	return buf.String(), nil
}
