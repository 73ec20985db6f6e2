package main

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"path/filepath"

	"github.com/alecthomas/kong"
	"google.golang.org/genai"

	"github.com/auditkit/siteaudit"
	"github.com/auditkit/siteaudit/audit"
	"github.com/auditkit/siteaudit/gemini"
	"github.com/auditkit/siteaudit/goquery"
	audithttp "github.com/auditkit/siteaudit/http"
	"github.com/auditkit/siteaudit/htmltomarkdown"
	"github.com/auditkit/siteaudit/rod"
	auditslog "github.com/auditkit/siteaudit/slog"
	"github.com/auditkit/siteaudit/sqlite"
)

func main() {
	ctx := context.Background()

	m := NewMain()

	if err := m.Run(ctx, os.Args[1:], os.Stdout, os.Stderr); err != nil {
		fmt.Fprintln(os.Stderr, err)
		os.Exit(1)
	}
}

// Main represents the program.
type Main struct {
	// Database path. Set before calling Run().
	DBPath string

	// SQLite database used by the stored-audit commands.
	DB *sqlite.DB
}

// NewMain returns a new instance of Main with defaults.
func NewMain() *Main {
	return &Main{
		DBPath: defaultDBPath(),
	}
}

// Close gracefully stops the program.
func (m *Main) Close() error {
	if m.DB != nil {
		return m.DB.Close()
	}
	return nil
}

// Run executes the CLI with the given arguments.
func (m *Main) Run(ctx context.Context, args []string, stdout, stderr io.Writer) error {
	deps := &Dependencies{
		Ctx:    ctx,
		Stdout: stdout,
		Stderr: stderr,
	}

	cli := &CLI{}
	parser, err := kong.New(cli,
		kong.Name("siteaudit"),
		kong.Description("Audit web content for SEO, readability, AI answer visibility and accessibility"),
		kong.Writers(stdout, stderr),
		kong.Exit(func(int) {}), // Don't exit on help
		kong.Bind(deps),
	)
	if err != nil {
		return fmt.Errorf("failed to create parser: %w", err)
	}

	if len(args) == 0 {
		_, _ = parser.Parse([]string{"--help"})
		return fmt.Errorf("no command specified. Run 'siteaudit --help' to see available commands")
	}

	cmd := args[0]
	if cmd == "help" || cmd == "--help" || cmd == "-h" {
		_, _ = parser.Parse([]string{"--help"})
		return nil
	}

	kongCtx, err := parser.Parse(args)
	if err != nil {
		return err
	}

	level := slog.LevelWarn
	if cli.Verbose {
		level = slog.LevelDebug
	}
	deps.Logger = slog.New(slog.NewTextHandler(stderr, &slog.HandlerOptions{Level: level}))

	// Open database
	if cli.DB != "" {
		m.DBPath = cli.DB
	}
	m.DB = sqlite.NewDB(m.DBPath)
	if err := m.DB.Open(); err != nil {
		fmt.Fprintf(stderr, "Hint: Set SITEAUDIT_DB to use a different database path\n")
		return fmt.Errorf("failed to open database at %q: %w", m.DBPath, err)
	}
	defer m.Close()
	deps.Audits = sqlite.NewAuditService(m.DB)

	// Commands that audit pages need the fetch pipeline.
	if cmd == "audit" || cmd == "compare" {
		var fetcher siteaudit.Fetcher
		if cli.Render {
			rodFetcher, err := rod.NewFetcher()
			if err != nil {
				fmt.Fprintln(stderr, "Hint: Chrome or Chromium must be installed for --render")
				return fmt.Errorf("failed to start browser: %w", err)
			}
			fetcher = rodFetcher
		} else {
			fetcher = audithttp.NewFetcher(audithttp.WithTimeout(cli.Timeout))
		}
		defer fetcher.Close()

		deps.Auditor = &audit.Auditor{
			Fetcher:      auditslog.NewLoggingFetcher(fetcher, deps.Logger),
			Analyzer:     goquery.NewAnalyzer(),
			Extractor:    goquery.NewExtractor(),
			Converter:    htmltomarkdown.NewConverter(),
			Scanner:      goquery.NewScanner(),
			Limiter:      audit.NewDomainLimiter(1.0),
			FetchTimeout: cli.Timeout,
		}
	}

	// Fact checking and rewriting talk to Gemini.
	needsGemini := cmd == "rewrite" ||
		(cmd == "audit" && cli.Audit.FactCheck) ||
		(cmd == "compare" && cli.Compare.FactCheck)
	if needsGemini {
		apiKey := os.Getenv("GEMINI_API_KEY")
		if apiKey == "" {
			fmt.Fprintln(stderr, "GEMINI_API_KEY environment variable not set. Get an API key at https://aistudio.google.com/apikey")
			return fmt.Errorf("GEMINI_API_KEY not set. Get a key at https://aistudio.google.com/apikey")
		}

		client, err := genai.NewClient(ctx, &genai.ClientConfig{
			APIKey:  apiKey,
			Backend: genai.BackendGeminiAPI,
		})
		if err != nil {
			fmt.Fprintln(stderr, "Hint: Check your GEMINI_API_KEY is valid")
			return fmt.Errorf("failed to connect to Gemini API: %w", err)
		}

		deps.Generator = gemini.NewGenerator(client)
		if deps.Auditor != nil {
			deps.Auditor.FactChecker = gemini.NewFactChecker(client)
		}
	}

	return kongCtx.Run(deps)
}

func defaultDBPath() string {
	if path := os.Getenv("SITEAUDIT_DB"); path != "" {
		return path
	}
	home, err := os.UserHomeDir()
	if err != nil {
		return "siteaudit.db"
	}
	dir := filepath.Join(home, ".siteaudit")
	_ = os.MkdirAll(dir, 0755)
	return filepath.Join(dir, "siteaudit.db")
}
