package main

import (
	"fmt"

	"github.com/fwojciec/siterank"
)

// Run executes the history command.
func (c *HistoryCmd) Run(deps *Dependencies) error {
	filter := siterank.RunFilter{Limit: c.Limit}
	if c.Target != "" {
		filter.Target = &c.Target
	}

	runs, err := deps.Runs.FindRuns(deps.Ctx, filter)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siterank.ErrorMessage(err))
		return err
	}

	if len(runs) == 0 {
		fmt.Fprintln(deps.Stdout, "No runs found. Use 'siterank analyze --save' to record one.")
		return nil
	}

	for _, r := range runs {
		fmt.Fprintf(deps.Stdout, "%s  %s  %3d  %s\n", r.ID, r.CreatedAt.Format("2006-01-02 15:04"), r.Score, r.Target)
	}

	return nil
}
