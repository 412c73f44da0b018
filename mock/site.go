package mock

import (
	"context"

	"github.com/fwojciec/siterank"
)

var (
	_ siterank.SiteReader   = (*SiteReader)(nil)
	_ siterank.SiteAnalyzer = (*SiteAnalyzer)(nil)
)

// SiteReader is a mock implementation of siterank.SiteReader.
type SiteReader struct {
	ReadSiteFn func(ctx context.Context, dir string) (*siterank.Site, error)
}

func (r *SiteReader) ReadSite(ctx context.Context, dir string) (*siterank.Site, error) {
	return r.ReadSiteFn(ctx, dir)
}

// SiteAnalyzer is a mock implementation of siterank.SiteAnalyzer.
type SiteAnalyzer struct {
	AnalyzeSiteFn func(ctx context.Context, site *siterank.Site) (*siterank.SiteAnalysis, error)
}

func (a *SiteAnalyzer) AnalyzeSite(ctx context.Context, site *siterank.Site) (*siterank.SiteAnalysis, error) {
	return a.AnalyzeSiteFn(ctx, site)
}
