// Package rewrite implements the iterative content optimization loop:
// score, diagnose weak dimensions, ask the generation collaborator for a
// rewrite, rescore, and keep the best version seen so far.
package rewrite

import (
	"context"
	"strings"
	"time"

	"github.com/auditkit/siteaudit"
)

// Defaults for caller-supplied policy. Both are policy, not protocol:
// product flows run the loop with different targets.
const (
	DefaultTarget        = 80
	DefaultMaxIterations = 3
	DefaultTimeout       = 90 * time.Second
)

// Config carries one session's policy and scoring context.
type Config struct {
	// Target is the composite score at which the session converges.
	Target int

	// MaxIterations bounds the number of rewrite attempts.
	MaxIterations int

	// Timeout bounds each generation call so one slow call cannot hang
	// the loop.
	Timeout time.Duration

	// Title, MetaDescription, Structure, and Local feed the scorer so
	// in-loop scores stay comparable with the original audit's.
	Title           string
	MetaDescription string
	Structure       *siteaudit.HTMLStructure
	Local           *siteaudit.LocalContext

	// FactCheck is the audit's claim verification result, if any. Its
	// score keeps the fact-check term in in-loop composites, and its
	// unverified claims are named in improvement directives.
	FactCheck *siteaudit.FactCheckResult
}

// Iteration records one pass of the loop. The first entry is the initial
// scoring pass with a zero delta; later entries are rewrite attempts.
type Iteration struct {
	Content     string
	Scores      siteaudit.ScoreComponents
	Composite   int
	Delta       int
	ParseFailed bool
}

// Session is the terminal result of one optimization run. BestScore is
// monotonically non-decreasing across iterations even when individual
// rewrites regress.
type Session struct {
	Iterations  []Iteration
	BestContent string
	BestScore   int
	Converged   bool
}

// Controller runs rewrite sessions. A session is strictly sequential;
// independent sessions may run concurrently.
type Controller struct {
	Generator siteaudit.Generator

	// Timeout is the default per-generation timeout when the config
	// leaves it unset.
	Timeout time.Duration
}

// Optimize runs the loop until the target composite is reached or the
// iteration budget is exhausted. A generation call that fails, times out,
// or returns an unparseable payload becomes a no-op iteration: the
// previous content is kept and rescored, and the session continues.
func (c *Controller) Optimize(ctx context.Context, content string, cfg Config) (*Session, error) {
	if strings.TrimSpace(content) == "" {
		return nil, siteaudit.Errorf(siteaudit.EINVALID, "content required")
	}

	target := cfg.Target
	if target <= 0 {
		target = DefaultTarget
	}
	maxIterations := cfg.MaxIterations
	if maxIterations <= 0 {
		maxIterations = DefaultMaxIterations
	}
	timeout := cfg.Timeout
	if timeout <= 0 {
		timeout = c.Timeout
	}
	if timeout <= 0 {
		timeout = DefaultTimeout
	}

	scores, composite := c.score(content, cfg)
	session := &Session{
		Iterations: []Iteration{{Content: content, Scores: scores, Composite: composite}},
	}
	session.BestContent, session.BestScore = foldBest(session.Iterations)

	current := content
	previous := composite
	for i := 0; i < maxIterations && session.BestScore < target; i++ {
		iteration := c.attempt(ctx, current, scores, cfg, target, timeout, previous)
		session.Iterations = append(session.Iterations, iteration)
		session.BestContent, session.BestScore = foldBest(session.Iterations)

		current = iteration.Content
		previous = iteration.Composite
		scores = iteration.Scores
	}

	session.Converged = session.BestScore >= target
	return session, nil
}

// attempt runs one rewrite iteration: build the directive, call the
// generator under its own timeout, and rescore whatever content survives.
func (c *Controller) attempt(ctx context.Context, current string, scores siteaudit.ScoreComponents, cfg Config, target int, timeout time.Duration, previous int) Iteration {
	directive := BuildDirective(current, Diagnose(scores, target), unverifiedClaims(cfg.FactCheck))

	genCtx, cancel := context.WithTimeout(ctx, timeout)
	defer cancel()

	next := current
	parseFailed := false
	response, err := c.Generator.Generate(genCtx, directive)
	if err != nil {
		parseFailed = true
	} else {
		var payload struct {
			Content string `json:"content"`
		}
		if err := siteaudit.DecodePayload(response, &payload); err != nil || strings.TrimSpace(payload.Content) == "" {
			parseFailed = true
		} else {
			next = payload.Content
		}
	}

	nextScores, composite := c.score(next, cfg)
	return Iteration{
		Content:     next,
		Scores:      nextScores,
		Composite:   composite,
		Delta:       composite - previous,
		ParseFailed: parseFailed,
	}
}

func (c *Controller) score(content string, cfg Config) (siteaudit.ScoreComponents, int) {
	var factCheck *int
	if cfg.FactCheck != nil {
		factCheck = &cfg.FactCheck.Score
	}
	scores := siteaudit.Score(siteaudit.ScoreInput{
		Text:            content,
		Title:           cfg.Title,
		MetaDescription: cfg.MetaDescription,
		FactCheck:       factCheck,
		Local:           cfg.Local,
		Structure:       cfg.Structure,
	})
	return scores, siteaudit.Composite(scores)
}

// foldBest folds the best-so-far content over the iteration sequence.
// Ties keep the earlier iteration, so a regressing rewrite never replaces
// an equally good predecessor.
func foldBest(iterations []Iteration) (string, int) {
	best := iterations[0]
	for _, it := range iterations[1:] {
		if it.Composite > best.Composite {
			best = it
		}
	}
	return best.Content, best.Composite
}

func unverifiedClaims(result *siteaudit.FactCheckResult) []siteaudit.Claim {
	if result == nil {
		return nil
	}
	return result.UnverifiedClaims()
}
