package siteaudit_test

import (
	"testing"

	"github.com/auditkit/siteaudit"
	"github.com/stretchr/testify/assert"
)

func nodes(n int) []siteaudit.ViolationNode {
	out := make([]siteaudit.ViolationNode, n)
	for i := range out {
		out[i] = siteaudit.ViolationNode{Locator: "node", FailureReason: "missing"}
	}
	return out
}

func TestScoreAccessibility(t *testing.T) {
	t.Parallel()

	t.Run("clean document scores 100", func(t *testing.T) {
		t.Parallel()

		result := siteaudit.ScoreAccessibility(nil)

		assert.Equal(t, 100, result.Score)
		assert.Equal(t, 100, result.Principles.Perceivable)
		assert.Equal(t, 100, result.Principles.Operable)
		assert.Equal(t, 100, result.Principles.Understandable)
		assert.Equal(t, 100, result.Principles.Robust)
	})

	t.Run("three images without alt score 40", func(t *testing.T) {
		t.Parallel()

		// deduction 25*3=75, pass bonus min(8*2,15)=15, 100-75+15=40
		result := siteaudit.ScoreAccessibility([]siteaudit.Violation{{
			Rule:   siteaudit.RuleImageAlt,
			Impact: siteaudit.ImpactCritical,
			Nodes:  nodes(3),
		}})

		assert.Equal(t, 40, result.Score)
		assert.Equal(t, 1, result.Critical)
		assert.Equal(t, 80, result.Principles.Perceivable)
		assert.Equal(t, 100, result.Principles.Operable)
	})

	t.Run("node count caps at five", func(t *testing.T) {
		t.Parallel()

		many := siteaudit.ScoreAccessibility([]siteaudit.Violation{{
			Rule:   siteaudit.RuleImageAlt,
			Impact: siteaudit.ImpactCritical,
			Nodes:  nodes(50),
		}})
		five := siteaudit.ScoreAccessibility([]siteaudit.Violation{{
			Rule:   siteaudit.RuleImageAlt,
			Impact: siteaudit.ImpactCritical,
			Nodes:  nodes(5),
		}})

		assert.Equal(t, five.Score, many.Score)
	})

	t.Run("principles deduct independently", func(t *testing.T) {
		t.Parallel()

		result := siteaudit.ScoreAccessibility([]siteaudit.Violation{
			{Rule: siteaudit.RuleLinkName, Impact: siteaudit.ImpactSerious, Nodes: nodes(1)},
			{Rule: siteaudit.RuleLabel, Impact: siteaudit.ImpactCritical, Nodes: nodes(2)},
			{Rule: siteaudit.RuleHTMLHasLang, Impact: siteaudit.ImpactSerious, Nodes: nodes(1)},
		})

		assert.Equal(t, 88, result.Principles.Operable)       // 100-12
		assert.Equal(t, 68, result.Principles.Understandable) // 100-20-12
		assert.Equal(t, 100, result.Principles.Perceivable)
		assert.Equal(t, 100, result.Principles.Robust)
	})

	t.Run("scores stay within bounds under worst case", func(t *testing.T) {
		t.Parallel()

		// Every rule fails with many nodes.
		rules := []struct {
			rule   string
			impact siteaudit.Impact
		}{
			{siteaudit.RuleImageAlt, siteaudit.ImpactCritical},
			{siteaudit.RuleLinkName, siteaudit.ImpactSerious},
			{siteaudit.RuleButtonName, siteaudit.ImpactCritical},
			{siteaudit.RuleLabel, siteaudit.ImpactCritical},
			{siteaudit.RuleHTMLHasLang, siteaudit.ImpactSerious},
			{siteaudit.RuleHeadingOrder, siteaudit.ImpactModerate},
			{siteaudit.RuleEmptyHeading, siteaudit.ImpactMinor},
			{siteaudit.RuleDocumentTitle, siteaudit.ImpactSerious},
			{siteaudit.RuleTableHeader, siteaudit.ImpactSerious},
		}
		var violations []siteaudit.Violation
		for _, r := range rules {
			violations = append(violations, siteaudit.Violation{
				Rule:   r.rule,
				Impact: r.impact,
				Nodes:  nodes(25),
			})
		}

		result := siteaudit.ScoreAccessibility(violations)

		assert.GreaterOrEqual(t, result.Score, 0)
		assert.LessOrEqual(t, result.Score, 100)
		for _, p := range []int{
			result.Principles.Perceivable,
			result.Principles.Operable,
			result.Principles.Understandable,
			result.Principles.Robust,
		} {
			assert.GreaterOrEqual(t, p, 0)
			assert.LessOrEqual(t, p, 100)
		}
	})

	t.Run("pass bonus never pushes past 100", func(t *testing.T) {
		t.Parallel()

		result := siteaudit.ScoreAccessibility([]siteaudit.Violation{{
			Rule:   siteaudit.RuleEmptyHeading,
			Impact: siteaudit.ImpactMinor,
			Nodes:  nodes(1),
		}})

		// 100-3+15 would be 112 unclamped.
		assert.Equal(t, 100, result.Score)
	})
}
