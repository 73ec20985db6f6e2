package siteaudit

// EngagementBreakdown details the components of the engagement sub-score.
type EngagementBreakdown struct {
	Questions       int `json:"questions"`       // max 20
	Lists           int `json:"lists"`           // max 15
	DirectAddress   int `json:"directAddress"`   // max 20
	CallToAction    int `json:"callToAction"`    // max 15
	ParagraphRhythm int `json:"paragraphRhythm"` // max 15
	Media           int `json:"media"`           // max 15
}

// Total sums the component scores. The caps guarantee a 0-100 range.
func (b EngagementBreakdown) Total() int {
	return b.Questions + b.Lists + b.DirectAddress + b.CallToAction +
		b.ParagraphRhythm + b.Media
}

// ScoreEngagement computes a 0-100 engagement sub-score from hooks that
// keep readers on the page. structure may be nil; media then contributes
// nothing.
func ScoreEngagement(text string, structure *HTMLStructure) EngagementBreakdown {
	var b EngagementBreakdown

	b.Questions = capInt(countFAQItems(text)*4, 20)

	if bulletRe.MatchString(text) {
		b.Lists += 8
	}
	if hasHowToSteps(text) {
		b.Lists += 7
	}

	b.DirectAddress = capInt(len(directAddressRe.FindAllString(text, -1))*2, 20)

	b.CallToAction = capInt(len(ctaRe.FindAllString(text, -1))*5, 15)

	paragraphs := splitParagraphs(text)
	if len(paragraphs) > 0 {
		total := 0
		for _, p := range paragraphs {
			total += len(splitWords(p))
		}
		switch avg := total / len(paragraphs); {
		case avg <= 100:
			b.ParagraphRhythm = 15
		case avg <= longParagraphWords:
			b.ParagraphRhythm = 8
		default:
			b.ParagraphRhythm = 3
		}
	}

	if structure != nil {
		b.Media = capInt(structure.Images*5, 15)
	}

	return b
}
