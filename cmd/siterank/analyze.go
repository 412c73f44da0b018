package main

import (
	"fmt"

	"github.com/fwojciec/siterank"
	"github.com/fwojciec/siterank/pipeline"
)

// Run executes the analyze command.
func (c *AnalyzeCmd) Run(deps *Dependencies) error {
	var cfg *siterank.SiteConfig
	if c.Config != "" {
		var err error
		if cfg, err = deps.Config.Load(c.Config); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", siterank.ErrorMessage(err))
			return err
		}
	}

	site, err := deps.Sites.ReadSite(deps.Ctx, c.Dir)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siterank.ErrorMessage(err))
		return err
	}

	analyzer := deps.NewAnalyzer(
		pipeline.WithConcurrency(c.Concurrency),
		pipeline.WithProgress(func(event pipeline.ProgressEvent) {
			switch event.Type {
			case pipeline.ProgressStarted:
				fmt.Fprintf(deps.Stderr, "  Found %d pages\n", event.Total)
			case pipeline.ProgressFailed:
				fmt.Fprintf(deps.Stderr, "  skip %s: %s\n", event.Path, siterank.ErrorMessage(event.Error))
			}
		}),
	)

	analysis, err := analyzer.AnalyzeSite(deps.Ctx, site)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siterank.ErrorMessage(err))
		return err
	}

	report, err := deps.Scorer.ScoreProfile(analysis.Merged)
	if err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siterank.ErrorMessage(err))
		return err
	}

	run := &siterank.Run{
		Target:      site.Root,
		Framework:   site.Framework,
		PageCount:   len(analysis.Pages),
		FailedCount: len(analysis.Failed()),
		Score:       report.OptimizationScore,
		Category:    analysis.Merged.BusinessCategory,
		ContentHash: site.ContentHash,
		Profile:     analysis.Merged,
		Report:      report,
	}

	if c.Save {
		if err := deps.Runs.CreateRun(deps.Ctx, run); err != nil {
			fmt.Fprintf(deps.Stderr, "error: %s\n", siterank.ErrorMessage(err))
			return err
		}
		fmt.Fprintf(deps.Stderr, "  Saved run %s\n", run.ID)
	}

	out := &runOutput{Run: run, Pages: analysis.Pages}
	if cfg != nil {
		inputs := cfg.GenerationInputs(analysis.Merged)
		out.Inputs = &inputs
	}

	if err := writeOutput(deps.Stdout, c.Output, c.Format, out); err != nil {
		fmt.Fprintf(deps.Stderr, "error: %s\n", siterank.ErrorMessage(err))
		return err
	}
	return nil
}
