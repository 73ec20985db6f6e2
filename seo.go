package siteaudit

// SEOBreakdown details the components of the traditional-search sub-score.
type SEOBreakdown struct {
	Title    int `json:"title"`    // max 20
	Meta     int `json:"meta"`     // max 15
	Headings int `json:"headings"` // max 20
	Links    int `json:"links"`    // max 15
	Images   int `json:"images"`   // max 10
	Markup   int `json:"markup"`   // max 20
}

// Total sums the component scores. The caps guarantee a 0-100 range.
func (b SEOBreakdown) Total() int {
	return b.Title + b.Meta + b.Headings + b.Links + b.Images + b.Markup
}

// ScoreSEO computes the traditional-search sub-score from the title, meta
// description, and structural signals. structure may be nil; the
// corresponding components then contribute nothing.
func ScoreSEO(title, metaDescription string, structure *HTMLStructure) SEOBreakdown {
	var b SEOBreakdown

	if title != "" {
		b.Title += 8
		if n := len(title); n >= 30 && n <= 60 {
			b.Title += 12
		} else {
			b.Title += 6
		}
	}

	if metaDescription != "" {
		b.Meta += 7
		if n := len(metaDescription); n >= 120 && n <= 160 {
			b.Meta += 8
		} else {
			b.Meta += 4
		}
	}

	if structure == nil {
		return b
	}

	if structure.H1 == 1 {
		b.Headings += 10
	}
	if structure.H2 >= 2 {
		b.Headings += 6
	}
	if structure.H3 >= 1 {
		b.Headings += 4
	}

	b.Links = capInt(structure.InternalLinks*2, 10)
	if structure.ExternalLinks >= 1 {
		b.Links += 5
	}

	if structure.Images > 0 {
		b.Images += 4
		b.Images += int(structure.AltCoverage() * 6)
	}

	if structure.HasCanonical {
		b.Markup += 7
	}
	if structure.HasOpenGraph {
		b.Markup += 6
	}
	if structure.HasSchema {
		b.Markup += 7
	}

	return b
}
