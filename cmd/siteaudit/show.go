package main

import (
	"fmt"

	"github.com/auditkit/siteaudit"
)

// Run executes the show command.
func (c *ShowCmd) Run(deps *Dependencies) error {
	audit, err := deps.Audits.FindAuditByID(deps.Ctx, c.ID)
	if err != nil {
		if siteaudit.ErrorCode(err) == siteaudit.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: audit %q not found. Use 'siteaudit list' to see stored audits.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteaudit.ErrorMessage(err))
		return err
	}

	if c.JSON {
		return printJSON(deps.Stdout, audit)
	}

	printAudit(deps.Stdout, audit)
	return nil
}
