package main

import (
	"fmt"
	"io"
	"os"

	"github.com/auditkit/siteaudit"
	"github.com/auditkit/siteaudit/rewrite"
)

// Run executes the rewrite command.
func (c *RewriteCmd) Run(deps *Dependencies) error {
	content, err := c.readContent()
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %v\n", err)
		return err
	}

	controller := &rewrite.Controller{Generator: deps.Generator}
	session, err := controller.Optimize(deps.Ctx, content, rewrite.Config{
		Target:          c.Target,
		MaxIterations:   c.MaxIterations,
		Title:           c.Title,
		MetaDescription: c.Meta,
		Local:           localContext(c.LocalCity, c.LocalState),
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteaudit.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, session)
	}

	for i, it := range session.Iterations {
		if i == 0 {
			fmt.Fprintf(deps.Stdout, "initial score: %d\n", it.Composite)
			continue
		}
		note := ""
		if it.ParseFailed {
			note = "  (rewrite failed, kept previous version)"
		}
		fmt.Fprintf(deps.Stdout, "iteration %d: %d (%+d)%s\n", i, it.Composite, it.Delta, note)
	}

	if session.Converged {
		fmt.Fprintf(deps.Stdout, "\nReached target with score %d.\n", session.BestScore)
	} else {
		fmt.Fprintf(deps.Stdout, "\nBudget exhausted; best score %d.\n", session.BestScore)
	}

	fmt.Fprintf(deps.Stdout, "\n---\n%s\n", session.BestContent)
	return nil
}

func (c *RewriteCmd) readContent() (string, error) {
	if c.File == "-" {
		b, err := io.ReadAll(os.Stdin)
		if err != nil {
			return "", fmt.Errorf("failed to read stdin: %w", err)
		}
		return string(b), nil
	}

	b, err := os.ReadFile(c.File)
	if err != nil {
		return "", fmt.Errorf("failed to read %s: %w", c.File, err)
	}
	return string(b), nil
}
