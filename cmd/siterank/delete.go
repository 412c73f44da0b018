package main

import (
	"fmt"

	"github.com/fwojciec/siterank"
)

// Run executes the delete command.
func (c *DeleteCmd) Run(deps *Dependencies) error {
	if !c.Force {
		fmt.Fprintf(deps.Stderr, "error: use --force to confirm deletion\n")
		return siterank.Errorf(siterank.EINVALID, "use --force to confirm deletion")
	}

	if err := deps.Runs.DeleteRun(deps.Ctx, c.ID); err != nil {
		if siterank.ErrorCode(err) == siterank.ENOTFOUND {
			fmt.Fprintf(deps.Stderr, "error: run %q not found. Use 'siterank history' to see saved runs.\n", c.ID)
			return err
		}
		fmt.Fprintf(deps.Stderr, "error: %s\n", siterank.ErrorMessage(err))
		return err
	}

	fmt.Fprintf(deps.Stdout, "Deleted run %s\n", c.ID)
	return nil
}
