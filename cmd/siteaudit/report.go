package main

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/auditkit/siteaudit"
)

// printJSON writes v as indented JSON.
func printJSON(w io.Writer, v any) error {
	enc := json.NewEncoder(w)
	enc.SetIndent("", "  ")
	return enc.Encode(v)
}

// printAudit renders the human-readable audit report.
func printAudit(w io.Writer, a *siteaudit.Audit) {
	fmt.Fprintf(w, "%s\n", a.URL)
	if a.Title != "" {
		fmt.Fprintf(w, "%s\n", a.Title)
	}
	fmt.Fprintf(w, "\nOverall score: %d\n\n", a.Composite)

	fmt.Fprintf(w, "  seo           %3d\n", a.Scores.SEO)
	fmt.Fprintf(w, "  readability   %3d\n", a.Scores.Readability)
	fmt.Fprintf(w, "  engagement    %3d\n", a.Scores.Engagement)
	fmt.Fprintf(w, "  aeo           %3d\n", a.Scores.AEO)
	if a.Scores.GEO != nil {
		fmt.Fprintf(w, "  geo           %3d\n", *a.Scores.GEO)
	}
	if a.Scores.FactCheck != nil {
		fmt.Fprintf(w, "  fact check    %3d\n", *a.Scores.FactCheck)
	}
	fmt.Fprintf(w, "  accessibility %3d\n", a.Accessibility.Score)

	if len(a.Accessibility.Violations) > 0 {
		fmt.Fprintf(w, "\nAccessibility violations:\n")
		for _, v := range a.Accessibility.Violations {
			fmt.Fprintf(w, "  [%s] %s: %s (%d nodes)\n", v.Impact, v.Rule, v.Description, len(v.Nodes))
		}
	}
}

// printComparison renders the human-readable benchmark report.
func printComparison(w io.Writer, c *siteaudit.Comparison) {
	fmt.Fprintln(w, "Ranking:")
	for i, s := range c.Ranking.OrderedScores {
		marker := " "
		if s.URL == c.Target.URL {
			marker = "*"
		}
		fmt.Fprintf(w, " %s %d. %3d  %s\n", marker, i+1, s.Composite, s.URL)
	}

	for _, o := range append([]siteaudit.AuditOutcome{c.Target}, c.Competitors...) {
		if !o.Succeeded() {
			fmt.Fprintf(w, "   failed: %s (%s)\n", o.URL, o.Error)
		}
	}

	if len(c.Insights.Winning) > 0 {
		fmt.Fprintln(w, "\nWinning:")
		for _, s := range c.Insights.Winning {
			fmt.Fprintf(w, "  + %s\n", s)
		}
	}
	if len(c.Insights.Losing) > 0 {
		fmt.Fprintln(w, "\nLosing:")
		for _, s := range c.Insights.Losing {
			fmt.Fprintf(w, "  - %s\n", s)
		}
	}
	if len(c.Insights.Opportunities) > 0 {
		fmt.Fprintln(w, "\nOpportunities:")
		for _, s := range c.Insights.Opportunities {
			fmt.Fprintf(w, "  > %s\n", s)
		}
	}

	fmt.Fprintf(w, "\n%s\n", c.Insights.Narrative)
}
