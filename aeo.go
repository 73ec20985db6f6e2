package siteaudit

// AEOBreakdown details the five capped components of the answer-engine
// optimization sub-score.
type AEOBreakdown struct {
	AnswerQuality      int `json:"answerQuality"`      // max 30
	CitationWorthiness int `json:"citationWorthiness"` // max 25
	StructuredData     int `json:"structuredData"`     // max 20
	AIFormatting       int `json:"aiFormatting"`       // max 15
	TopicalAuthority   int `json:"topicalAuthority"`   // max 10
}

// Total sums the component scores. The caps guarantee a 0-100 range.
func (b AEOBreakdown) Total() int {
	return b.AnswerQuality + b.CitationWorthiness + b.StructuredData +
		b.AIFormatting + b.TopicalAuthority
}

// ScoreAEO computes the answer-engine optimization sub-score: how quotable
// and citable the content is to AI answer engines. Each component is capped
// independently. structure may be nil, in which case topical authority
// contributes nothing.
func ScoreAEO(text string, structure *HTMLStructure) AEOBreakdown {
	var b AEOBreakdown

	// Answer quality: a direct, liftable answer early in the content.
	detectable, firstParagraph := hasDirectAnswer(text)
	if detectable {
		b.AnswerQuality += 15
	}
	if firstParagraph {
		b.AnswerQuality += 15
	}

	// Citation-worthiness: evidence an engine can attribute.
	if hasStatistics(text) {
		b.CitationWorthiness += 10
	}
	quotable := countQuotableStatements(text)
	if quotable > 3 {
		quotable = 3
	}
	b.CitationWorthiness += quotable * 3
	if definesKeyTerms(text) {
		b.CitationWorthiness += 5
	}

	// Structured data signals in the content itself.
	if hasFAQBlock(text) {
		b.StructuredData += 10
	}
	if hasHowToSteps(text) {
		b.StructuredData += 5
	}
	if hasDataTable(text) {
		b.StructuredData += 5
	}

	// AI-friendly formatting: FAQ items and step-by-step structure.
	faqItems := countFAQItems(text)
	if faqItems > 5 {
		faqItems = 5
	}
	b.AIFormatting += faqItems * 2
	if hasHowToSteps(text) {
		b.AIFormatting += 5
	}

	// Topical authority: heading depth and internal linking.
	if structure != nil {
		depth := structure.H2 + structure.H3
		if depth > 5 {
			depth = 5
		}
		links := structure.InternalLinks
		if links > 5 {
			links = 5
		}
		b.TopicalAuthority = depth + links
	}

	return b
}
