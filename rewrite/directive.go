package rewrite

import (
	"fmt"
	"strings"

	"github.com/auditkit/siteaudit"
)

// diagnosisOrder fixes the order weak dimensions appear in directives so
// the same scores always produce the same prompt.
var diagnosisOrder = []string{"factCheck", "aeo", "seo", "readability", "engagement", "geo"}

// guidance maps each dimension to the concrete editing moves that raise it.
var guidance = map[string]string{
	"factCheck":   "Soften or remove claims that cannot be verified; attribute statistics to sources.",
	"aeo":         "Open with a direct 40-60 word answer to the main question. Add citable statistics, define key terms, and include an FAQ section.",
	"seo":         "Tighten the title to 30-60 characters and the meta description to 120-160. Use one clear question-style heading per section.",
	"readability": "Shorten sentences, break up paragraphs over 150 words, and prefer plain words over jargon.",
	"engagement":  "Add a clear call to action, address the reader directly, and break long runs of prose with lists or a comparison table.",
	"geo":         "Mention the city and state naturally, name the service area and nearby neighborhoods, and include hours or contact details.",
}

// Diagnose returns the active dimensions scoring below target, in fixed
// order. An empty result means every active dimension already meets the
// target even though the composite may not.
func Diagnose(scores siteaudit.ScoreComponents, target int) []string {
	var weak []string
	for _, name := range diagnosisOrder {
		if score, ok := scores.Dimension(name); ok && score < target {
			weak = append(weak, name)
		}
	}
	return weak
}

// BuildDirective assembles the rewrite instruction for one iteration. It
// names the weak dimensions with concrete guidance, lists any unverified
// claims, and pins the response shape to a single JSON object.
func BuildDirective(content string, weak []string, claims []siteaudit.Claim) string {
	var b strings.Builder
	b.WriteString("Rewrite the following content to improve its weak areas while preserving its meaning, factual claims, and approximate length.\n\n")

	if len(weak) > 0 {
		b.WriteString("Weak areas to address:\n")
		for _, name := range weak {
			fmt.Fprintf(&b, "- %s: %s\n", name, guidance[name])
		}
		b.WriteString("\n")
	}

	if len(claims) > 0 {
		b.WriteString("Unverified claims to fix or soften:\n")
		for _, claim := range claims {
			fmt.Fprintf(&b, "- %q", claim.Text)
			if claim.Explanation != "" {
				fmt.Fprintf(&b, " (%s)", claim.Explanation)
			}
			b.WriteString("\n")
		}
		b.WriteString("\n")
	}

	b.WriteString("Respond with a JSON object of the form {\"content\": \"...\"} and nothing else.\n\n")
	b.WriteString("Content:\n")
	b.WriteString(content)
	return b.String()
}
