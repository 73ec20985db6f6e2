package siteaudit

import "regexp"

// LocalContext describes the geographic market a piece of content targets.
// Supplying one enables the GEO sub-score and switches the composite to the
// local weight set.
type LocalContext struct {
	City         string   `json:"city"`
	State        string   `json:"state"`
	ServiceAreas []string `json:"serviceAreas"`
}

// Enabled reports whether the context carries enough information to score
// local intent.
func (lc *LocalContext) Enabled() bool {
	return lc != nil && lc.City != ""
}

// GEOBreakdown details the components of the local-intent sub-score.
type GEOBreakdown struct {
	LocationMentions int `json:"locationMentions"` // max 25
	ServiceArea      int `json:"serviceArea"`      // max 20
	NearMe           int `json:"nearMe"`           // max 15
	LocalIntent      int `json:"localIntent"`      // max 15
	BusinessInfo     int `json:"businessInfo"`     // max 15
	Neighborhoods    int `json:"neighborhoods"`    // max 10
}

// Total sums the component scores. The caps guarantee a 0-100 range.
func (b GEOBreakdown) Total() int {
	return b.LocationMentions + b.ServiceArea + b.NearMe + b.LocalIntent +
		b.BusinessInfo + b.Neighborhoods
}

var (
	serviceAreaRe = regexp.MustCompile(`(?i)\b(?:serving|service area|we serve|proudly serv)`)
	phoneRe       = regexp.MustCompile(`\(?\d{3}\)?[\s.-]\d{3}[\s.-]\d{4}`)
	addressRe     = regexp.MustCompile(`(?i)\b\d+\s+\w+\s+(?:st|street|ave|avenue|rd|road|blvd|boulevard|dr|drive|ln|lane|way)\b`)
	hoursRe       = regexp.MustCompile(`(?i)\b(?:open|hours?)\b.{0,40}\b(?:\d{1,2}\s*(?:am|pm)|daily|mon|weekday)`)
	localIntentRe = regexp.MustCompile(`(?i)\b(?:local|nearby|in your area|in the area|directions|visit us|community)\b`)
)

// ScoreGEO computes the geographic/local-intent sub-score. It is only
// meaningful when lc.Enabled(); callers gate on that, and the composite
// weight sets do the same.
func ScoreGEO(text string, lc *LocalContext) GEOBreakdown {
	var b GEOBreakdown
	if !lc.Enabled() {
		return b
	}

	mentions := countOccurrences(text, lc.City)
	if lc.State != "" {
		mentions += countOccurrences(text, lc.State)
	}
	b.LocationMentions = capInt(mentions*5, 25)

	if serviceAreaRe.MatchString(text) {
		b.ServiceArea += 10
	}
	areas := 0
	for _, area := range lc.ServiceAreas {
		if countOccurrences(text, area) > 0 {
			areas++
		}
	}
	b.ServiceArea += capInt(areas*5, 10)

	b.NearMe = capInt(countOccurrences(text, "near me")*5, 15)

	b.LocalIntent = capInt(len(localIntentRe.FindAllString(text, -1))*3, 15)

	if phoneRe.MatchString(text) {
		b.BusinessInfo += 5
	}
	if addressRe.MatchString(text) {
		b.BusinessInfo += 5
	}
	if hoursRe.MatchString(text) {
		b.BusinessInfo += 5
	}

	b.Neighborhoods = capInt(areas*5, 10)

	return b
}

func capInt(n, max int) int {
	if n > max {
		return max
	}
	return n
}
