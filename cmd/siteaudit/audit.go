package main

import (
	"fmt"

	"github.com/auditkit/siteaudit"
	"github.com/auditkit/siteaudit/audit"
)

// Run executes the audit command.
func (c *AuditCmd) Run(deps *Dependencies) error {
	result, err := deps.Auditor.Audit(deps.Ctx, audit.Request{
		URL:       c.URL,
		Local:     localContext(c.LocalCity, c.LocalState),
		FactCheck: c.FactCheck,
	})
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteaudit.ErrorMessage(err))
		return err
	}

	if c.Save {
		if err := deps.Audits.CreateAudit(deps.Ctx, result); err != nil {
			fmt.Fprintf(deps.Stderr, "error saving audit: %s\n", siteaudit.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stdout, "Saved audit %s\n", result.ID)
	}

	if c.JSON {
		return printJSON(deps.Stdout, result)
	}

	printAudit(deps.Stdout, result)
	return nil
}
