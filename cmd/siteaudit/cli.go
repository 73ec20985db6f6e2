package main

import (
	"context"
	"io"
	"log/slog"
	"time"

	"github.com/auditkit/siteaudit"
	"github.com/auditkit/siteaudit/audit"
)

// Dependencies holds all services and configuration for command execution.
type Dependencies struct {
	Ctx    context.Context
	Stdout io.Writer
	Stderr io.Writer
	Logger *slog.Logger

	Auditor   *audit.Auditor
	Audits    siteaudit.AuditService
	Generator siteaudit.Generator
}

// CLI defines the command-line interface structure for Kong.
type CLI struct {
	Render  bool          `help:"Render pages with headless Chrome before auditing"`
	Timeout time.Duration `short:"t" default:"15s" help:"Fetch timeout per page"`
	DB      string        `help:"Audit database path" env:"SITEAUDIT_DB"`
	Verbose bool          `short:"v" help:"Enable debug logging"`

	Audit   AuditCmd   `cmd:"" help:"Audit a single URL"`
	Rewrite RewriteCmd `cmd:"" help:"Iteratively rewrite content to reach a target score"`
	Compare CompareCmd `cmd:"" help:"Benchmark a URL against competitors"`
	Show    ShowCmd    `cmd:"" help:"Show a stored audit"`
	List    ListCmd    `cmd:"" help:"List stored audits"`
}

// AuditCmd is the "audit" subcommand.
type AuditCmd struct {
	URL        string `arg:"" help:"Page URL to audit"`
	LocalCity  string `help:"City for local search scoring"`
	LocalState string `help:"State for local search scoring"`
	FactCheck  bool   `help:"Verify factual claims with Gemini"`
	Save       bool   `short:"s" help:"Persist the audit snapshot"`
	JSON       bool   `help:"Emit the audit as JSON"`
}

// RewriteCmd is the "rewrite" subcommand.
type RewriteCmd struct {
	File          string `arg:"" help:"Markdown file to rewrite, or '-' for stdin"`
	Target        int    `default:"80" help:"Composite score to reach"`
	MaxIterations int    `default:"3" help:"Rewrite attempt budget"`
	Title         string `help:"Page title for scoring context"`
	Meta          string `help:"Meta description for scoring context"`
	LocalCity     string `help:"City for local search scoring"`
	LocalState    string `help:"State for local search scoring"`
	JSON          bool   `help:"Emit the session as JSON"`
}

// CompareCmd is the "compare" subcommand.
type CompareCmd struct {
	Target      string   `arg:"" help:"Your page URL"`
	Competitors []string `arg:"" help:"Competitor page URLs (1-3)"`
	Concurrency int      `short:"c" default:"4" help:"Concurrent audit limit"`
	LocalCity   string   `help:"City for local search scoring"`
	LocalState  string   `help:"State for local search scoring"`
	FactCheck   bool     `help:"Verify factual claims with Gemini"`
	JSON        bool     `help:"Emit the comparison as JSON"`
}

// ShowCmd is the "show" subcommand.
type ShowCmd struct {
	ID   string `arg:"" help:"Audit run ID"`
	JSON bool   `help:"Emit the audit as JSON"`
}

// ListCmd is the "list" subcommand.
type ListCmd struct {
	URL    string `help:"Only audits of this URL"`
	Limit  int    `default:"20" help:"Maximum audits to list"`
	Offset int    `help:"Audits to skip"`
}

// localContext builds the optional local scoring context from city/state
// flags. Returns nil when no city was given, which disables GEO scoring.
func localContext(city, state string) *siteaudit.LocalContext {
	if city == "" {
		return nil
	}
	return &siteaudit.LocalContext{City: city, State: state}
}
