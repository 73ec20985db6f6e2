package main

import (
	"fmt"

	"github.com/auditkit/siteaudit"
)

// Run executes the list command.
func (c *ListCmd) Run(deps *Dependencies) error {
	filter := siteaudit.AuditFilter{Limit: c.Limit, Offset: c.Offset}
	if c.URL != "" {
		filter.URL = &c.URL
	}

	audits, err := deps.Audits.FindAudits(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siteaudit.ErrorMessage(err))
		return err
	}

	if len(audits) == 0 {
		fmt.Fprintln(deps.Stdout, "No audits found. Use 'siteaudit audit --save' to store one.")
		return nil
	}

	for _, a := range audits {
		fmt.Fprintf(deps.Stdout, "%s  %s  score %3d  %s\n",
			a.ID, a.FetchedAt.Format("2006-01-02 15:04"), a.Composite, a.URL)
	}

	return nil
}
