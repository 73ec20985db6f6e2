package siteaudit

// Impact classifies the severity of an accessibility violation.
type Impact string

// Impact levels, ordered from most to least severe.
const (
	ImpactCritical Impact = "critical"
	ImpactSerious  Impact = "serious"
	ImpactModerate Impact = "moderate"
	ImpactMinor    Impact = "minor"
)

// Principle is one of the four WCAG principles used to group violations.
type Principle string

// WCAG principles.
const (
	PrinciplePerceivable    Principle = "perceivable"
	PrincipleOperable       Principle = "operable"
	PrincipleUnderstandable Principle = "understandable"
	PrincipleRobust         Principle = "robust"
)

// Accessibility rule identifiers. Each rule contributes either zero or one
// violation per scan, grouping all failing nodes.
const (
	RuleImageAlt      = "image-alt"
	RuleLinkName      = "link-name"
	RuleButtonName    = "button-name"
	RuleLabel         = "label"
	RuleHTMLHasLang   = "html-has-lang"
	RuleHeadingOrder  = "heading-order"
	RuleEmptyHeading  = "empty-heading"
	RuleDocumentTitle = "document-title"
	RuleTableHeader   = "table-header"
)

// TotalAccessibilityRules is the number of independent rule checks a scan
// runs. The pass bonus in ScoreAccessibility depends on it.
const TotalAccessibilityRules = 9

// ViolationNode identifies a single failing element within a violation.
type ViolationNode struct {
	Locator       string `json:"locator"`
	FailureReason string `json:"failureReason"`
}

// Violation groups all nodes failing one accessibility rule.
type Violation struct {
	Rule        string          `json:"ruleId"`
	Impact      Impact          `json:"impact"`
	Description string          `json:"description"`
	Nodes       []ViolationNode `json:"nodes"`
}

// PrincipleScores holds the per-principle WCAG breakdown. Each principle
// starts at 100 and is deducted independently.
type PrincipleScores struct {
	Perceivable    int `json:"perceivable"`
	Operable       int `json:"operable"`
	Understandable int `json:"understandable"`
	Robust         int `json:"robust"`
}

// AccessibilityResult aggregates a scan: violation counts by impact, the
// WCAG principle breakdown, and an overall 0-100 score.
type AccessibilityResult struct {
	Score      int             `json:"score"`
	Critical   int             `json:"critical"`
	Serious    int             `json:"serious"`
	Moderate   int             `json:"moderate"`
	Minor      int             `json:"minor"`
	Principles PrincipleScores `json:"wcagBreakdown"`
	Violations []Violation     `json:"violations"`
}

// AccessibilityScanner runs rule checks against raw markup and returns one
// violation per failing rule.
type AccessibilityScanner interface {
	// Scan never fails: unparseable input yields no violations.
	Scan(rawHTML string) []Violation
}

// impactDeductions weight each violation's score deduction, multiplied by
// its failing node count capped at 5.
var impactDeductions = map[Impact]int{
	ImpactCritical: 25,
	ImpactSerious:  15,
	ImpactModerate: 8,
	ImpactMinor:    3,
}

// principleDeductions are applied per violation to the violated principle.
var principleDeductions = map[Impact]int{
	ImpactCritical: 20,
	ImpactSerious:  12,
	ImpactModerate: 6,
	ImpactMinor:    3,
}

// rulePrinciples maps each rule to the WCAG principle it violates.
var rulePrinciples = map[string]Principle{
	RuleImageAlt:      PrinciplePerceivable,
	RuleHeadingOrder:  PrinciplePerceivable,
	RuleEmptyHeading:  PrinciplePerceivable,
	RuleTableHeader:   PrinciplePerceivable,
	RuleLinkName:      PrincipleOperable,
	RuleDocumentTitle: PrincipleOperable,
	RuleLabel:         PrincipleUnderstandable,
	RuleHTMLHasLang:   PrincipleUnderstandable,
	RuleButtonName:    PrincipleRobust,
}

// RulePrinciple returns the WCAG principle a rule belongs to.
func RulePrinciple(rule string) Principle {
	if p, ok := rulePrinciples[rule]; ok {
		return p
	}
	return PrincipleRobust
}

// ScoreAccessibility computes the overall accessibility score and WCAG
// principle breakdown for a set of violations. For each violation the
// deduction is impactWeight * min(nodeCount, 5); rules that pass earn a
// bonus of 2 points each, capped at 15. The result and every principle
// score are clamped to [0, 100].
func ScoreAccessibility(violations []Violation) AccessibilityResult {
	result := AccessibilityResult{
		Violations: violations,
		Principles: PrincipleScores{
			Perceivable:    100,
			Operable:       100,
			Understandable: 100,
			Robust:         100,
		},
	}

	var deducted int
	for _, v := range violations {
		nodes := len(v.Nodes)
		if nodes > 5 {
			nodes = 5
		}
		deducted += impactDeductions[v.Impact] * nodes

		switch v.Impact {
		case ImpactCritical:
			result.Critical++
		case ImpactSerious:
			result.Serious++
		case ImpactModerate:
			result.Moderate++
		case ImpactMinor:
			result.Minor++
		}

		p := principleScore(&result.Principles, RulePrinciple(v.Rule))
		*p = clampScore(*p - principleDeductions[v.Impact])
	}

	passed := TotalAccessibilityRules - len(violations)
	if passed < 0 {
		passed = 0
	}
	bonus := passed * 2
	if bonus > 15 {
		bonus = 15
	}

	result.Score = clampScore(100 - deducted + bonus)
	return result
}

func principleScore(ps *PrincipleScores, p Principle) *int {
	switch p {
	case PrinciplePerceivable:
		return &ps.Perceivable
	case PrincipleOperable:
		return &ps.Operable
	case PrincipleUnderstandable:
		return &ps.Understandable
	default:
		return &ps.Robust
	}
}

// clampScore clamps a score to the [0, 100] range.
func clampScore(n int) int {
	if n < 0 {
		return 0
	}
	if n > 100 {
		return 100
	}
	return n
}
