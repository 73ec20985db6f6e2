package mock

import "github.com/auditkit/siteaudit"

var _ siteaudit.Extractor = (*Extractor)(nil)

// Extractor is a mock implementation of siteaudit.Extractor.
type Extractor struct {
	ExtractFn func(html string) (*siteaudit.ExtractResult, error)
}

func (e *Extractor) Extract(html string) (*siteaudit.ExtractResult, error) {
	return e.ExtractFn(html)
}

var _ siteaudit.Converter = (*Converter)(nil)

// Converter is a mock implementation of siteaudit.Converter.
type Converter struct {
	ConvertFn func(html string) (string, error)
}

func (c *Converter) Convert(html string) (string, error) {
	return c.ConvertFn(html)
}
