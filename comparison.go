package siteaudit

// AuditOutcome is the tagged result of auditing one URL within a
// benchmark batch. Failures are isolated per URL: a failed outcome carries
// its error and is excluded from aggregate math, never aborting the batch.
type AuditOutcome struct {
	URL   string `json:"url"`
	Audit *Audit `json:"audit,omitempty"`
	Err   error  `json:"-"`
	Error string `json:"error,omitempty"`
}

// Succeeded reports whether the audit completed.
func (o AuditOutcome) Succeeded() bool {
	return o.Err == nil && o.Audit != nil
}

// RankedScore is one entry in a benchmark ranking.
type RankedScore struct {
	URL       string `json:"url"`
	Composite int    `json:"composite"`
}

// Ranking orders the successful audits of a benchmark by composite score,
// descending. Position is the 1-based position of the target URL, or 0
// when the target audit failed.
type Ranking struct {
	Position      int           `json:"position"`
	OrderedScores []RankedScore `json:"orderedScores"`
}

// Insights is the narrative output of a benchmark: per-dimension
// statements about where the target wins or loses against the competitor
// mean, and a templated overall narrative.
type Insights struct {
	Winning       []string `json:"winning"`
	Losing        []string `json:"losing"`
	Opportunities []string `json:"opportunities"`
	Narrative     string   `json:"narrative"`
}

// Comparison is the terminal output of a competitive benchmark.
type Comparison struct {
	Target      AuditOutcome   `json:"target"`
	Competitors []AuditOutcome `json:"competitors"`
	Ranking     Ranking        `json:"ranking"`
	Insights    Insights       `json:"insights"`
}
