package siteaudit

import "math"

// ScoreComponents holds the independent sub-scores of one audit, each an
// integer in [0, 100], plus their detail breakdowns for report consumption.
// GEO is present only when a local context was supplied; FactCheck only
// when the fact-check collaborator responded.
type ScoreComponents struct {
	SEO         int  `json:"seo"`
	Readability int  `json:"readability"`
	Engagement  int  `json:"engagement"`
	AEO         int  `json:"aeo"`
	GEO         *int `json:"geo,omitempty"`
	FactCheck   *int `json:"factCheck,omitempty"`

	SEODetail         SEOBreakdown         `json:"seoDetail"`
	ReadabilityDetail ReadabilityBreakdown `json:"readabilityDetail"`
	EngagementDetail  EngagementBreakdown  `json:"engagementDetail"`
	AEODetail         AEOBreakdown         `json:"aeoDetail"`
	GEODetail         *GEOBreakdown        `json:"geoDetail,omitempty"`
}

// Dimension returns the named sub-score and whether it is active.
// Recognized names: seo, readability, engagement, aeo, geo, factCheck.
func (sc ScoreComponents) Dimension(name string) (int, bool) {
	switch name {
	case "seo":
		return sc.SEO, true
	case "readability":
		return sc.Readability, true
	case "engagement":
		return sc.Engagement, true
	case "aeo":
		return sc.AEO, true
	case "geo":
		if sc.GEO != nil {
			return *sc.GEO, true
		}
	case "factCheck":
		if sc.FactCheck != nil {
			return *sc.FactCheck, true
		}
	}
	return 0, false
}

// ScoreInput carries everything the scorer consumes. All fields beyond Text
// are optional and degrade to zero contributions when absent.
type ScoreInput struct {
	Text            string
	Title           string
	MetaDescription string
	FactCheck       *int
	Local           *LocalContext
	Structure       *HTMLStructure
}

// Score computes every sub-score for the input. It is a pure function and
// never fails: missing optional inputs simply contribute nothing.
func Score(in ScoreInput) ScoreComponents {
	var sc ScoreComponents

	sc.SEODetail = ScoreSEO(in.Title, in.MetaDescription, in.Structure)
	sc.SEO = clampScore(sc.SEODetail.Total())

	sc.Readability, sc.ReadabilityDetail = ScoreReadability(in.Text)

	sc.EngagementDetail = ScoreEngagement(in.Text, in.Structure)
	sc.Engagement = clampScore(sc.EngagementDetail.Total())

	sc.AEODetail = ScoreAEO(in.Text, in.Structure)
	sc.AEO = clampScore(sc.AEODetail.Total())

	if in.Local.Enabled() {
		detail := ScoreGEO(in.Text, in.Local)
		geo := clampScore(detail.Total())
		sc.GEO = &geo
		sc.GEODetail = &detail
	}

	if in.FactCheck != nil {
		fc := clampScore(*in.FactCheck)
		sc.FactCheck = &fc
	}

	return sc
}

// weightedTerm pairs an active sub-score with its configured weight.
type weightedTerm struct {
	score  int
	weight float64
}

// Composite weight sets. Each set's values sum to 1.0; when an optional
// term is absent the remaining weights are renormalized so the composite
// stays on the 0-100 scale.
var (
	nationalWeights = map[string]float64{
		"factCheck":   0.30,
		"aeo":         0.25,
		"seo":         0.15,
		"readability": 0.15,
		"engagement":  0.15,
	}
	localWeights = map[string]float64{
		"factCheck":   0.25,
		"aeo":         0.20,
		"geo":         0.10,
		"seo":         0.15,
		"readability": 0.15,
		"engagement":  0.15,
	}
)

// Composite computes the single weighted 0-100 score from the active
// sub-scores. The local weight set is selected when a GEO sub-score is
// present; absent optional terms are omitted and the remaining weights
// renormalized. Deterministic: same components, same result.
func Composite(sc ScoreComponents) int {
	weights := nationalWeights
	if sc.GEO != nil {
		weights = localWeights
	}

	var terms []weightedTerm
	var total float64
	for name, w := range weights {
		if score, ok := sc.Dimension(name); ok {
			terms = append(terms, weightedTerm{score: score, weight: w})
			total += w
		}
	}
	if total == 0 {
		return 0
	}

	var sum float64
	for _, t := range terms {
		sum += float64(t.score) * t.weight
	}
	return clampScore(int(math.Round(sum / total)))
}
