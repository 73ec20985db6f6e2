package mock

import (
	"context"

	"github.com/auditkit/siteaudit"
)

var _ siteaudit.Generator = (*Generator)(nil)

// Generator is a mock implementation of siteaudit.Generator.
type Generator struct {
	GenerateFn func(ctx context.Context, prompt string) (string, error)
}

func (g *Generator) Generate(ctx context.Context, prompt string) (string, error) {
	return g.GenerateFn(ctx, prompt)
}

var _ siteaudit.FactChecker = (*FactChecker)(nil)

// FactChecker is a mock implementation of siteaudit.FactChecker.
type FactChecker struct {
	CheckFn func(ctx context.Context, content string) (*siteaudit.FactCheckResult, error)
}

func (f *FactChecker) Check(ctx context.Context, content string) (*siteaudit.FactCheckResult, error) {
	return f.CheckFn(ctx, content)
}
