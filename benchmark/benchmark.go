// Package benchmark runs competitive audits: the target URL and its
// competitors are audited concurrently, ranked by composite score, and
// distilled into per-dimension insights.
package benchmark

import (
	"context"
	"sort"

	"golang.org/x/sync/errgroup"

	"github.com/auditkit/siteaudit"
	"github.com/auditkit/siteaudit/audit"
)

// Competitor count bounds. The upper bound keeps one benchmark's fetch
// load within what a single polite client should put on the network.
const (
	MinCompetitors = 1
	MaxCompetitors = 3

	DefaultConcurrency = 4
)

// Auditor audits a single URL. Implemented by audit.Auditor.
type Auditor interface {
	Audit(ctx context.Context, req audit.Request) (*siteaudit.Audit, error)
}

// Runner executes competitive benchmarks. Local and FactCheck apply to
// every URL in the batch so the composites stay comparable.
type Runner struct {
	Auditor     Auditor
	Concurrency int

	Local     *siteaudit.LocalContext
	FactCheck bool
}

// Compare audits the target and its competitors concurrently and returns
// the ranked comparison. Individual audit failures never abort the batch:
// a failed URL carries its error in the outcome and is excluded from the
// ranking and the aggregate math.
func (r *Runner) Compare(ctx context.Context, target string, competitors []string) (*siteaudit.Comparison, error) {
	if target == "" {
		return nil, siteaudit.Errorf(siteaudit.EINVALID, "target URL required")
	}
	if len(competitors) < MinCompetitors || len(competitors) > MaxCompetitors {
		return nil, siteaudit.Errorf(siteaudit.EINVALID, "between %d and %d competitor URLs required", MinCompetitors, MaxCompetitors)
	}

	urls := append([]string{target}, competitors...)
	outcomes := make([]siteaudit.AuditOutcome, len(urls))

	concurrency := r.Concurrency
	if concurrency <= 0 {
		concurrency = DefaultConcurrency
	}

	var g errgroup.Group
	g.SetLimit(concurrency)
	for i, u := range urls {
		g.Go(func() error {
			outcomes[i] = r.auditOne(ctx, u)
			return nil
		})
	}
	// Workers report failures through their outcome, never the group.
	_ = g.Wait()

	comparison := &siteaudit.Comparison{
		Target:      outcomes[0],
		Competitors: outcomes[1:],
	}
	comparison.Ranking = rank(target, outcomes)
	comparison.Insights = BuildInsights(comparison.Target, comparison.Competitors, comparison.Ranking)
	return comparison, nil
}

func (r *Runner) auditOne(ctx context.Context, u string) siteaudit.AuditOutcome {
	outcome := siteaudit.AuditOutcome{URL: u}
	a, err := r.Auditor.Audit(ctx, audit.Request{
		URL:       u,
		Local:     r.Local,
		FactCheck: r.FactCheck,
	})
	if err != nil {
		outcome.Err = err
		outcome.Error = siteaudit.ErrorMessage(err)
		return outcome
	}
	outcome.Audit = a
	return outcome
}

// rank orders the successful outcomes by composite score, descending.
// Ties keep batch order, so the target sorts ahead of a competitor with
// an equal score.
func rank(target string, outcomes []siteaudit.AuditOutcome) siteaudit.Ranking {
	var ranking siteaudit.Ranking
	for _, o := range outcomes {
		if !o.Succeeded() {
			continue
		}
		ranking.OrderedScores = append(ranking.OrderedScores, siteaudit.RankedScore{
			URL:       o.URL,
			Composite: o.Audit.Composite,
		})
	}

	sort.SliceStable(ranking.OrderedScores, func(i, j int) bool {
		return ranking.OrderedScores[i].Composite > ranking.OrderedScores[j].Composite
	})

	for i, s := range ranking.OrderedScores {
		if s.URL == target {
			ranking.Position = i + 1
			break
		}
	}
	return ranking
}
