package goquery

import (
	"fmt"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/auditkit/siteaudit"
)

// Ensure Scanner implements siteaudit.AccessibilityScanner at compile time.
var _ siteaudit.AccessibilityScanner = (*Scanner)(nil)

// Scanner runs WCAG-style rule checks against a parsed document. It is
// stateless and safe for concurrent use.
type Scanner struct{}

// NewScanner creates a new Scanner.
func NewScanner() *Scanner {
	return &Scanner{}
}

// ruleCheck produces at most one violation grouping all failing nodes.
type ruleCheck func(doc *goquery.Document) *siteaudit.Violation

// Scan runs every rule check in a fixed order and returns one violation
// per failing rule. It never fails: unparseable input yields no violations.
func (s *Scanner) Scan(rawHTML string) []siteaudit.Violation {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(rawHTML))
	if err != nil {
		return nil
	}

	checks := []ruleCheck{
		checkImageAlt,
		checkLinkName,
		checkButtonName,
		checkLabel,
		checkHTMLHasLang,
		checkHeadingOrder,
		checkEmptyHeading,
		checkDocumentTitle,
		checkTableHeader,
	}

	var violations []siteaudit.Violation
	for _, check := range checks {
		if v := check(doc); v != nil {
			violations = append(violations, *v)
		}
	}
	return violations
}

// checkImageAlt flags images with no alt attribute at all. An empty alt is
// a deliberate decorative marker and passes.
func checkImageAlt(doc *goquery.Document) *siteaudit.Violation {
	var nodes []siteaudit.ViolationNode
	doc.Find("img").Each(func(i int, sel *goquery.Selection) {
		if _, ok := sel.Attr("alt"); !ok {
			nodes = append(nodes, siteaudit.ViolationNode{
				Locator:       locator(sel, "img", i, "src"),
				FailureReason: "image has no alt attribute",
			})
		}
	})
	return violation(siteaudit.RuleImageAlt, siteaudit.ImpactCritical,
		"Images must have alternate text", nodes)
}

func checkLinkName(doc *goquery.Document) *siteaudit.Violation {
	var nodes []siteaudit.ViolationNode
	doc.Find("a").Each(func(i int, sel *goquery.Selection) {
		if hasAccessibleName(sel) {
			return
		}
		nodes = append(nodes, siteaudit.ViolationNode{
			Locator:       locator(sel, "a", i, "href"),
			FailureReason: "link has no text, aria-label, or title",
		})
	})
	return violation(siteaudit.RuleLinkName, siteaudit.ImpactSerious,
		"Links must have discernible text", nodes)
}

func checkButtonName(doc *goquery.Document) *siteaudit.Violation {
	var nodes []siteaudit.ViolationNode
	doc.Find(`button, [role="button"]`).Each(func(i int, sel *goquery.Selection) {
		if hasAccessibleName(sel) {
			return
		}
		nodes = append(nodes, siteaudit.ViolationNode{
			Locator:       locator(sel, "button", i, "id"),
			FailureReason: "button has no accessible name",
		})
	})
	return violation(siteaudit.RuleButtonName, siteaudit.ImpactCritical,
		"Buttons must have discernible text", nodes)
}

// checkLabel flags form controls with no associated label. A placeholder
// does not count as a label.
func checkLabel(doc *goquery.Document) *siteaudit.Violation {
	var nodes []siteaudit.ViolationNode
	doc.Find("input, select, textarea").Each(func(i int, sel *goquery.Selection) {
		switch inputType, _ := sel.Attr("type"); inputType {
		case "hidden", "submit", "button", "reset", "image":
			return
		}
		if label, ok := sel.Attr("aria-label"); ok && strings.TrimSpace(label) != "" {
			return
		}
		if _, ok := sel.Attr("aria-labelledby"); ok {
			return
		}
		if id, ok := sel.Attr("id"); ok && id != "" {
			if doc.Find(fmt.Sprintf(`label[for=%q]`, id)).Length() > 0 {
				return
			}
		}
		nodes = append(nodes, siteaudit.ViolationNode{
			Locator:       locator(sel, goquery.NodeName(sel), i, "name"),
			FailureReason: "form control has no associated label",
		})
	})
	return violation(siteaudit.RuleLabel, siteaudit.ImpactCritical,
		"Form elements must have labels", nodes)
}

func checkHTMLHasLang(doc *goquery.Document) *siteaudit.Violation {
	root := doc.Find("html").First()
	if lang, ok := root.Attr("lang"); ok && strings.TrimSpace(lang) != "" {
		return nil
	}
	return violation(siteaudit.RuleHTMLHasLang, siteaudit.ImpactSerious,
		"The html element must have a lang attribute",
		[]siteaudit.ViolationNode{{
			Locator:       "html",
			FailureReason: "root element is missing a lang attribute",
		}})
}

// checkHeadingOrder flags headings whose level increases by more than one
// step versus the previous heading (e.g., an h4 directly after an h2).
func checkHeadingOrder(doc *goquery.Document) *siteaudit.Violation {
	var nodes []siteaudit.ViolationNode
	prev := 0
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(i int, sel *goquery.Selection) {
		name := goquery.NodeName(sel)
		level := int(name[1] - '0')
		if prev > 0 && level > prev+1 {
			nodes = append(nodes, siteaudit.ViolationNode{
				Locator:       locator(sel, name, i, "id"),
				FailureReason: fmt.Sprintf("heading level jumps from h%d to h%d", prev, level),
			})
		}
		prev = level
	})
	return violation(siteaudit.RuleHeadingOrder, siteaudit.ImpactModerate,
		"Heading levels should only increase by one", nodes)
}

func checkEmptyHeading(doc *goquery.Document) *siteaudit.Violation {
	var nodes []siteaudit.ViolationNode
	doc.Find("h1, h2, h3, h4, h5, h6").Each(func(i int, sel *goquery.Selection) {
		if strings.TrimSpace(sel.Text()) == "" {
			nodes = append(nodes, siteaudit.ViolationNode{
				Locator:       locator(sel, goquery.NodeName(sel), i, "id"),
				FailureReason: "heading has no text content",
			})
		}
	})
	return violation(siteaudit.RuleEmptyHeading, siteaudit.ImpactMinor,
		"Headings should not be empty", nodes)
}

func checkDocumentTitle(doc *goquery.Document) *siteaudit.Violation {
	if strings.TrimSpace(doc.Find("head title").First().Text()) != "" {
		return nil
	}
	return violation(siteaudit.RuleDocumentTitle, siteaudit.ImpactSerious,
		"Documents must have a title element",
		[]siteaudit.ViolationNode{{
			Locator:       "head",
			FailureReason: "document title is missing or empty",
		}})
}

func checkTableHeader(doc *goquery.Document) *siteaudit.Violation {
	var nodes []siteaudit.ViolationNode
	doc.Find("table").Each(func(i int, sel *goquery.Selection) {
		if sel.Find("th").Length() == 0 {
			nodes = append(nodes, siteaudit.ViolationNode{
				Locator:       locator(sel, "table", i, "id"),
				FailureReason: "table has no header cells",
			})
		}
	})
	return violation(siteaudit.RuleTableHeader, siteaudit.ImpactSerious,
		"Data tables should have header cells", nodes)
}

// hasAccessibleName reports whether an interactive element exposes a name
// through text content, aria-label, or title.
func hasAccessibleName(sel *goquery.Selection) bool {
	if strings.TrimSpace(sel.Text()) != "" {
		return true
	}
	if label, ok := sel.Attr("aria-label"); ok && strings.TrimSpace(label) != "" {
		return true
	}
	if title, ok := sel.Attr("title"); ok && strings.TrimSpace(title) != "" {
		return true
	}
	// An image with alt text inside a link names the link.
	if alt, ok := sel.Find("img").First().Attr("alt"); ok && strings.TrimSpace(alt) != "" {
		return true
	}
	return false
}

// violation wraps failing nodes in a Violation, or returns nil when the
// rule passed.
func violation(rule string, impact siteaudit.Impact, description string, nodes []siteaudit.ViolationNode) *siteaudit.Violation {
	if len(nodes) == 0 {
		return nil
	}
	return &siteaudit.Violation{
		Rule:        rule,
		Impact:      impact,
		Description: description,
		Nodes:       nodes,
	}
}

// locator builds a short, human-usable node locator: the element name,
// its 1-based document position, and a hint attribute when present.
func locator(sel *goquery.Selection, tag string, index int, hintAttr string) string {
	if hint, ok := sel.Attr(hintAttr); ok && hint != "" {
		if len(hint) > 40 {
			hint = hint[:40] + "..."
		}
		return fmt.Sprintf("%s[%s=%q]", tag, hintAttr, hint)
	}
	return fmt.Sprintf("%s:nth(%d)", tag, index+1)
}
