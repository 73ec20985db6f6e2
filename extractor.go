package siteaudit

// ExtractResult holds the main content located in an HTML page.
type ExtractResult struct {
	// Title is the page title from metadata.
	Title string

	// MetaDescription is the meta description, if present.
	MetaDescription string

	// ContentHTML is the main content block with boilerplate
	// (nav, footer, sidebar, scripts) removed.
	ContentHTML string
}

// Extractor locates the main content block in raw HTML.
type Extractor interface {
	// Extract strips noise regions and returns the first content region
	// with enough text to audit. Returns ENOCONTENT when no region
	// qualifies, which usually means the site requires script execution
	// to render its content.
	Extract(html string) (*ExtractResult, error)
}

// Converter converts HTML to Markdown.
type Converter interface {
	// Convert transforms HTML content into Markdown.
	// The input should be clean HTML (e.g., from an Extractor).
	Convert(html string) (string, error)
}
