package pipeline_test

import (
	"context"
	"sync/atomic"
	"testing"
	"time"

	"github.com/fwojciec/siterank"
	"github.com/fwojciec/siterank/mock"
	"github.com/fwojciec/siterank/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPipeline_AnalyzeSite(t *testing.T) {
	t.Parallel()

	t.Run("records page failures without aborting siblings", func(t *testing.T) {
		t.Parallel()

		site := &siterank.Site{
			Root:      "/srv/site",
			MainFile:  "index.html",
			Framework: siterank.FrameworkVanillaHTML,
			Pages: []*siterank.Page{
				{Path: "index.html", Content: servicePage},
				{Path: "broken.html", Content: "<html>\xff</html>"},
				{Path: "empty.html", Content: ""},
				{Path: "about.html", Content: bareTwoHeadingPage},
			},
		}

		analysis, err := pipeline.Default().AnalyzeSite(context.Background(), site)

		require.NoError(t, err)
		require.Len(t, analysis.Pages, 4)
		assert.Equal(t, "index.html", analysis.Pages[0].Path)
		assert.NotNil(t, analysis.Pages[0].Profile)
		assert.Equal(t, siterank.EPARSE, siterank.ErrorCode(analysis.Pages[1].Err))
		assert.Equal(t, siterank.EINVALID, siterank.ErrorCode(analysis.Pages[2].Err))
		assert.NotEmpty(t, analysis.Pages[2].Error)
		assert.NotNil(t, analysis.Pages[3].Profile)
		assert.Len(t, analysis.Failed(), 2)

		assert.Equal(t, "/srv/site", analysis.Root)
		assert.Equal(t, siterank.FrameworkVanillaHTML, analysis.Framework)
		assert.Equal(t, 3, analysis.Merged.ExistingSeo.H1Count)
		assert.True(t, analysis.Merged.ExistingSeo.HasTitle)
	})

	t.Run("reports pages that could not be read", func(t *testing.T) {
		t.Parallel()

		readErr := siterank.Errorf(siterank.EINVALID, "cannot read broken.html")
		site := &siterank.Site{Pages: []*siterank.Page{
			{Path: "broken.html", Err: readErr},
			{Path: "index.html", Content: servicePage},
		}}

		analysis, err := pipeline.Default().AnalyzeSite(context.Background(), site)

		require.NoError(t, err)
		require.Len(t, analysis.Pages, 2)
		assert.Same(t, readErr, analysis.Pages[0].Err)
		assert.Equal(t, "cannot read broken.html", analysis.Pages[0].Error)
		assert.Nil(t, analysis.Pages[0].Profile)
		assert.NotNil(t, analysis.Pages[1].Profile)
		assert.Len(t, analysis.Failed(), 1)
		assert.Equal(t, siterank.BusinessService, analysis.Merged.BusinessCategory)
	})

	t.Run("merges page profiles in page order", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New([]siterank.Analyzer{
			&mock.Analyzer{
				AnalyzeFn: func(markup string) (*siterank.AnalysisProfile, error) {
					return &siterank.AnalysisProfile{
						Keywords: []siterank.Keyword{{Word: "shared", Frequency: len(markup)}},
						Language: markup,
					}, nil
				},
			},
		}, nil, pipeline.WithConcurrency(3))
		site := &siterank.Site{Pages: []*siterank.Page{
			{Path: "a", Content: "a"},
			{Path: "b", Content: "bb"},
			{Path: "c", Content: "ccc"},
		}}

		analysis, err := p.AnalyzeSite(context.Background(), site)

		require.NoError(t, err)
		require.Len(t, analysis.Merged.Keywords, 1)
		assert.Equal(t, 1, analysis.Merged.Keywords[0].Frequency)
		assert.Equal(t, "ccc", analysis.Merged.Language)
	})

	t.Run("bounds the number of pages analyzed at once", func(t *testing.T) {
		t.Parallel()

		var inFlight, peak atomic.Int64
		p := pipeline.New([]siterank.Analyzer{
			&mock.Analyzer{
				AnalyzeFn: func(string) (*siterank.AnalysisProfile, error) {
					n := inFlight.Add(1)
					for {
						old := peak.Load()
						if n <= old || peak.CompareAndSwap(old, n) {
							break
						}
					}
					time.Sleep(5 * time.Millisecond)
					inFlight.Add(-1)
					return &siterank.AnalysisProfile{}, nil
				},
			},
		}, nil, pipeline.WithConcurrency(2))

		var pages []*siterank.Page
		for range 8 {
			pages = append(pages, &siterank.Page{Path: "p.html", Content: "<p>x</p>"})
		}

		_, err := p.AnalyzeSite(context.Background(), &siterank.Site{Pages: pages})

		require.NoError(t, err)
		assert.LessOrEqual(t, peak.Load(), int64(2))
	})

	t.Run("reports progress for every page", func(t *testing.T) {
		t.Parallel()

		var events []pipeline.ProgressEvent
		p := pipeline.Default().With(pipeline.WithProgress(func(event pipeline.ProgressEvent) {
			events = append(events, event)
		}))
		site := &siterank.Site{Pages: []*siterank.Page{
			{Path: "index.html", Content: servicePage},
			{Path: "empty.html", Content: ""},
		}}

		_, err := p.AnalyzeSite(context.Background(), site)

		require.NoError(t, err)
		require.Len(t, events, 4)
		assert.Equal(t, pipeline.ProgressStarted, events[0].Type)
		assert.Equal(t, 2, events[0].Total)
		assert.Equal(t, pipeline.ProgressFinished, events[3].Type)

		var failed int
		for _, e := range events[1:3] {
			if e.Type == pipeline.ProgressFailed {
				failed++
				assert.Equal(t, "empty.html", e.Path)
				assert.Error(t, e.Error)
			}
		}
		assert.Equal(t, 1, failed)
		assert.Equal(t, 2, events[2].Completed)
	})

	t.Run("stops on a canceled context", func(t *testing.T) {
		t.Parallel()

		ctx, cancel := context.WithCancel(context.Background())
		cancel()

		_, err := pipeline.Default().AnalyzeSite(ctx, &siterank.Site{Pages: []*siterank.Page{
			{Path: "index.html", Content: servicePage},
		}})

		assert.ErrorIs(t, err, context.Canceled)
	})

	t.Run("rejects a nil site", func(t *testing.T) {
		t.Parallel()

		_, err := pipeline.Default().AnalyzeSite(context.Background(), nil)

		assert.Equal(t, siterank.EINVALID, siterank.ErrorCode(err))
	})
}

func TestPipeline_With(t *testing.T) {
	t.Parallel()

	t.Run("configures a copy and leaves the original unchanged", func(t *testing.T) {
		t.Parallel()

		base := pipeline.Default()
		var events int
		configured := base.With(
			pipeline.WithConcurrency(2),
			pipeline.WithProgress(func(pipeline.ProgressEvent) { events++ }),
		)

		_, err := base.AnalyzeSite(context.Background(), &siterank.Site{Pages: []*siterank.Page{
			{Path: "index.html", Content: servicePage},
		}})
		require.NoError(t, err)

		assert.Equal(t, pipeline.DefaultConcurrency, base.Concurrency())
		assert.Equal(t, 2, configured.Concurrency())
		assert.Zero(t, events)
	})

	t.Run("ignores a non-positive concurrency", func(t *testing.T) {
		t.Parallel()

		p := pipeline.Default().With(pipeline.WithConcurrency(0))

		assert.Equal(t, pipeline.DefaultConcurrency, p.Concurrency())
	})
}
