// Package slog provides logging decorators for siteaudit services.
package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/auditkit/siteaudit"
)

// Ensure LoggingFetcher implements siteaudit.Fetcher.
var _ siteaudit.Fetcher = (*LoggingFetcher)(nil)

// LoggingFetcher wraps a Fetcher with per-fetch logging.
type LoggingFetcher struct {
	next   siteaudit.Fetcher
	logger *slog.Logger
}

// NewLoggingFetcher creates a new LoggingFetcher.
func NewLoggingFetcher(next siteaudit.Fetcher, logger *slog.Logger) *LoggingFetcher {
	return &LoggingFetcher{next: next, logger: logger}
}

// Fetch delegates to the wrapped fetcher, logging the URL, the byte count,
// and the duration of every attempt.
func (f *LoggingFetcher) Fetch(ctx context.Context, url string) (string, error) {
	begin := time.Now()
	html, err := f.next.Fetch(ctx, url)
	if err != nil {
		f.logger.Error("fetch",
			slog.String("url", url),
			slog.Duration("duration", time.Since(begin)),
			slog.String("err", err.Error()),
		)
		return "", err
	}

	f.logger.Info("fetch",
		slog.String("url", url),
		slog.Int("bytes", len(html)),
		slog.Duration("duration", time.Since(begin)),
	)
	return html, nil
}

// Close delegates to the wrapped fetcher.
func (f *LoggingFetcher) Close() error {
	return f.next.Close()
}
