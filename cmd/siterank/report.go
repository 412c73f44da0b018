package main

import (
	"fmt"

	"github.com/fwojciec/siterank"
)

// Run executes the report command.
func (c *ReportCmd) Run(deps *Dependencies) error {
	run, err := deps.Runs.FindRunByID(deps.Ctx, c.ID)
	if err != nil {
		if siterank.ErrorCode(err) == siterank.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'siterank history' to see saved runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", siterank.ErrorMessage(err))
		return err
	}

	if err := writeOutput(deps.Stdout, c.Output, c.Format, &runOutput{Run: run}); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siterank.ErrorMessage(err))
		return err
	}
	return nil
}
