package main

import (
	"fmt"

	"github.com/auditkit/siteaudit"
	"github.com/auditkit/siteaudit/benchmark"
)

// Run executes the compare command.
func (c *CompareCmd) Run(deps *Dependencies) error {
	runner := &benchmark.Runner{
		Auditor:     deps.Auditor,
		Concurrency: c.Concurrency,
		Local:       localContext(c.LocalCity, c.LocalState),
		FactCheck:   c.FactCheck,
	}

	comparison, err := runner.Compare(deps.Ctx, c.Target, c.Competitors)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteaudit.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, comparison)
	}

	printComparison(deps.Stdout, comparison)
	return nil
}
