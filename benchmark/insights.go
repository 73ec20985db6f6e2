package benchmark

import (
	"fmt"
	"math"

	"github.com/auditkit/siteaudit"
)

// insightThreshold is the per-dimension delta, in points, below which the
// gap to the competitor mean is treated as noise.
const insightThreshold = 10

// dimension pairs an insight label with its score accessor.
type dimension struct {
	name  string
	score func(*siteaudit.Audit) int
}

// insightDimensions fixes the dimensions insights are computed over, in
// report order.
var insightDimensions = []dimension{
	{"seo", func(a *siteaudit.Audit) int { return a.Scores.SEO }},
	{"readability", func(a *siteaudit.Audit) int { return a.Scores.Readability }},
	{"engagement", func(a *siteaudit.Audit) int { return a.Scores.Engagement }},
	{"aeo", func(a *siteaudit.Audit) int { return a.Scores.AEO }},
	{"accessibility", func(a *siteaudit.Audit) int { return a.Accessibility.Score }},
}

// BuildInsights compares the target audit against the mean of the
// successful competitor audits. Gaps of at least insightThreshold points
// become winning or losing statements; every losing statement also yields
// an opportunity naming the exact point gap to close.
func BuildInsights(target siteaudit.AuditOutcome, competitors []siteaudit.AuditOutcome, ranking siteaudit.Ranking) siteaudit.Insights {
	var insights siteaudit.Insights

	if !target.Succeeded() {
		insights.Narrative = fmt.Sprintf("The target %s could not be audited, so no comparison is available.", target.URL)
		return insights
	}

	audits := succeededAudits(competitors)
	if len(audits) == 0 {
		insights.Narrative = fmt.Sprintf("No competitor could be audited; %s scored %d with nothing to compare against.", target.URL, target.Audit.Composite)
		return insights
	}

	for _, dim := range insightDimensions {
		own := dim.score(target.Audit)
		mean := meanOf(audits, dim.score)
		delta := own - int(math.Round(mean))

		switch {
		case delta >= insightThreshold:
			insights.Winning = append(insights.Winning,
				fmt.Sprintf("%s: %d points ahead of the competitor average (%d vs %.0f)", dim.name, delta, own, mean))
		case delta <= -insightThreshold:
			insights.Losing = append(insights.Losing,
				fmt.Sprintf("%s: %d points behind the competitor average (%d vs %.0f)", dim.name, -delta, own, mean))
			insights.Opportunities = append(insights.Opportunities,
				fmt.Sprintf("Raising %s by %d points would match the competitor average.", dim.name, -delta))
		}
	}

	insights.Narrative = narrative(target, audits, ranking)
	return insights
}

// narrative renders the overall verdict from the composite gap to the
// competitor mean and the target's rank.
func narrative(target siteaudit.AuditOutcome, audits []*siteaudit.Audit, ranking siteaudit.Ranking) string {
	mean := meanOf(audits, func(a *siteaudit.Audit) int { return a.Composite })
	delta := target.Audit.Composite - int(math.Round(mean))

	var verdict string
	switch {
	case delta >= 10:
		verdict = fmt.Sprintf("%s leads the field by a wide margin, scoring %d points above the competitor average.", target.URL, delta)
	case delta >= 0:
		verdict = fmt.Sprintf("%s is competitive, scoring at or slightly above the competitor average.", target.URL)
	case delta >= -20:
		verdict = fmt.Sprintf("%s trails the competitor average by %d points; the gap is closable.", target.URL, -delta)
	default:
		verdict = fmt.Sprintf("%s is significantly behind, trailing the competitor average by %d points.", target.URL, -delta)
	}

	return fmt.Sprintf("%s Ranked %d of %d audited pages.", verdict, ranking.Position, len(ranking.OrderedScores))
}

func succeededAudits(outcomes []siteaudit.AuditOutcome) []*siteaudit.Audit {
	var audits []*siteaudit.Audit
	for _, o := range outcomes {
		if o.Succeeded() {
			audits = append(audits, o.Audit)
		}
	}
	return audits
}

func meanOf(audits []*siteaudit.Audit, score func(*siteaudit.Audit) int) float64 {
	total := 0
	for _, a := range audits {
		total += score(a)
	}
	return float64(total) / float64(len(audits))
}
