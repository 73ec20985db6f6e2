package siteaudit

// HTMLStructure captures structural signals counted from a page's raw
// markup. It must be produced from the original document before any
// noise-stripping step mutates the DOM, or the counts will be wrong.
// Values are never negative. Immutable once produced.
type HTMLStructure struct {
	H1 int `json:"h1"`
	H2 int `json:"h2"`
	H3 int `json:"h3"`
	H4 int `json:"h4"`

	InternalLinks int `json:"internalLinks"`
	ExternalLinks int `json:"externalLinks"`

	Images        int `json:"images"`
	ImagesWithAlt int `json:"imagesWithAlt"`

	HasSchema    bool `json:"hasSchema"`
	HasFAQSchema bool `json:"hasFaqSchema"`
	HasCanonical bool `json:"hasCanonical"`
	HasOpenGraph bool `json:"hasOpenGraph"`
}

// HeadingCount returns the total number of h1-h4 headings.
func (s HTMLStructure) HeadingCount() int {
	return s.H1 + s.H2 + s.H3 + s.H4
}

// AltCoverage returns the fraction of images carrying an alt attribute,
// or 1.0 when the page has no images.
func (s HTMLStructure) AltCoverage() float64 {
	if s.Images == 0 {
		return 1.0
	}
	return float64(s.ImagesWithAlt) / float64(s.Images)
}

// StructureAnalyzer produces an HTMLStructure from raw markup.
// The page URL is used to classify links as internal or external.
type StructureAnalyzer interface {
	// Analyze counts structural signals in rawHTML. It never fails:
	// unparseable input simply yields zero counts.
	Analyze(rawHTML string, pageURL string) HTMLStructure
}
