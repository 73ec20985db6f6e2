// Package rod provides a browser-based implementation of siteaudit.Fetcher
// for pages that only render their content through JavaScript. It is the
// recovery path when a plain HTTP fetch leads to ENOCONTENT at extraction.
package rod

import (
	"context"

	"github.com/auditkit/siteaudit"
	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
)

// Ensure Fetcher implements siteaudit.Fetcher at compile time.
var _ siteaudit.Fetcher = (*Fetcher)(nil)

// Fetcher retrieves rendered HTML using headless Chrome.
// Fetcher is safe for concurrent use by multiple goroutines.
type Fetcher struct {
	browser *rod.Browser
}

// NewFetcher launches a headless Chrome browser.
// Close must be called when the Fetcher is no longer needed.
//
// Returns EUNAVAILABLE if Chrome/Chromium cannot be found or launched.
func NewFetcher() (*Fetcher, error) {
	l := launcher.New().Headless(true)
	u, err := l.Launch()
	if err != nil {
		return nil, siteaudit.Errorf(siteaudit.EUNAVAILABLE, "launching browser: %v", err)
	}

	browser := rod.New().ControlURL(u)
	if err := browser.Connect(); err != nil {
		l.Kill() // clean up launched process on connection failure
		return nil, siteaudit.Errorf(siteaudit.EUNAVAILABLE, "connecting to browser: %v", err)
	}

	return &Fetcher{browser: browser}, nil
}

// Fetch navigates to the URL, waits for the page to load, and returns the
// rendered HTML. The context bounds the whole navigation.
func (f *Fetcher) Fetch(ctx context.Context, url string) (string, error) {
	if err := ctx.Err(); err != nil {
		return "", err
	}

	page, err := f.browser.Page(proto.TargetCreateTarget{})
	if err != nil {
		return "", siteaudit.Errorf(siteaudit.EUNAVAILABLE, "opening page: %v", err)
	}
	defer page.Close()

	page = page.Context(ctx)

	if err := page.Navigate(url); err != nil {
		return "", siteaudit.Errorf(siteaudit.EUNAVAILABLE, "navigate %s: %v", url, err)
	}
	if err := page.WaitLoad(); err != nil {
		return "", siteaudit.Errorf(siteaudit.EUNAVAILABLE, "waiting for %s to load: %v", url, err)
	}

	html, err := page.HTML()
	if err != nil {
		return "", siteaudit.Errorf(siteaudit.EUNAVAILABLE, "reading rendered HTML: %v", err)
	}

	return html, nil
}

// Close releases browser resources.
func (f *Fetcher) Close() error {
	return f.browser.Close()
}
