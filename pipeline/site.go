package pipeline

import (
	"context"

	"github.com/fwojciec/siterank"
	"golang.org/x/sync/errgroup"
)

// ProgressEvent reports progress during a site analysis.
type ProgressEvent struct {
	Type      ProgressType
	Completed int
	Total     int
	Path      string
	Error     error
}

// ProgressType indicates the type of progress event.
type ProgressType int

const (
	ProgressStarted ProgressType = iota
	ProgressCompleted
	ProgressFailed
	ProgressFinished
)

// ProgressFunc is a callback for reporting site analysis progress.
type ProgressFunc func(event ProgressEvent)

type pageResult struct {
	position int
	analysis *siterank.PageAnalysis
}

// AnalyzeSite runs AnalyzeDocument over every page of site concurrently.
// A page that fails is recorded with its error and does not stop the others.
// The merged profile folds the successful pages in page order.
func (p *Pipeline) AnalyzeSite(ctx context.Context, site *siterank.Site) (*siterank.SiteAnalysis, error) {
	if site == nil {
		return nil, siterank.Errorf(siterank.EINVALID, "site required")
	}

	total := len(site.Pages)
	p.notify(ProgressEvent{Type: ProgressStarted, Total: total})

	resultCh := make(chan pageResult, total)

	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(max(p.concurrency, 1))

	go func() {
		for i, page := range site.Pages {
			if gctx.Err() != nil {
				break
			}
			g.Go(func() error {
				resultCh <- pageResult{position: i, analysis: p.analyzePage(gctx, page)}
				return nil
			})
		}
		_ = g.Wait()
		close(resultCh)
	}()

	// Collect results in page order.
	pages := make([]*siterank.PageAnalysis, total)
	var completed int
	for result := range resultCh {
		completed++
		pages[result.position] = result.analysis

		event := ProgressEvent{
			Type:      ProgressCompleted,
			Completed: completed,
			Total:     total,
			Path:      result.analysis.Path,
		}
		if result.analysis.Err != nil {
			event.Type = ProgressFailed
			event.Error = result.analysis.Err
		}
		p.notify(event)
	}

	if err := ctx.Err(); err != nil {
		return nil, err
	}

	merged := &siterank.AnalysisProfile{}
	for _, page := range pages {
		merged.Merge(page.Profile)
	}
	if err := merged.Validate(); err != nil {
		return nil, err
	}

	p.notify(ProgressEvent{Type: ProgressFinished, Completed: total, Total: total})

	return &siterank.SiteAnalysis{
		Root:      site.Root,
		MainFile:  site.MainFile,
		Framework: site.Framework,
		Pages:     pages,
		Merged:    merged,
	}, nil
}

func (p *Pipeline) analyzePage(ctx context.Context, page *siterank.Page) *siterank.PageAnalysis {
	result := &siterank.PageAnalysis{Path: page.Path}
	if page.Err != nil {
		result.Err = page.Err
		result.Error = siterank.ErrorMessage(page.Err)
		return result
	}
	if err := ctx.Err(); err != nil {
		result.Err = err
		result.Error = err.Error()
		return result
	}

	profile, err := p.AnalyzeDocument(page.Content)
	if err != nil {
		result.Err = err
		result.Error = siterank.ErrorMessage(err)
		return result
	}
	result.Profile = profile
	return result
}

func (p *Pipeline) notify(event ProgressEvent) {
	if p.progress != nil {
		p.progress(event)
	}
}
