package slog

import (
	"context"
	"log/slog"
	"time"

	"github.com/fwojciec/siterank"
)

// Ensure the logging decorators implement the site interfaces.
var (
	_ siterank.SiteReader   = (*LoggingSiteReader)(nil)
	_ siterank.SiteAnalyzer = (*LoggingSiteAnalyzer)(nil)
)

// LoggingSiteReader wraps a SiteReader with logging.
type LoggingSiteReader struct {
	next   siterank.SiteReader
	logger *slog.Logger
}

// NewLoggingSiteReader creates a new LoggingSiteReader.
func NewLoggingSiteReader(next siterank.SiteReader, logger *slog.Logger) *LoggingSiteReader {
	return &LoggingSiteReader{next: next, logger: logger}
}

// ReadSite delegates to the wrapped reader and logs the operation.
func (r *LoggingSiteReader) ReadSite(ctx context.Context, dir string) (site *siterank.Site, err error) {
	defer func(begin time.Time) {
		var pages int
		var framework siterank.Framework
		if site != nil {
			pages = len(site.Pages)
			framework = site.Framework
		}
		r.logger.Info("read site",
			"dir", dir,
			"pages", pages,
			"framework", string(framework),
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return r.next.ReadSite(ctx, dir)
}

// LoggingSiteAnalyzer wraps a SiteAnalyzer with logging. Failed pages are
// logged individually at warn level.
type LoggingSiteAnalyzer struct {
	next   siterank.SiteAnalyzer
	logger *slog.Logger
}

// NewLoggingSiteAnalyzer creates a new LoggingSiteAnalyzer.
func NewLoggingSiteAnalyzer(next siterank.SiteAnalyzer, logger *slog.Logger) *LoggingSiteAnalyzer {
	return &LoggingSiteAnalyzer{next: next, logger: logger}
}

// AnalyzeSite delegates to the wrapped analyzer and logs the operation.
func (a *LoggingSiteAnalyzer) AnalyzeSite(ctx context.Context, site *siterank.Site) (analysis *siterank.SiteAnalysis, err error) {
	defer func(begin time.Time) {
		var failed int
		if analysis != nil {
			for _, p := range analysis.Failed() {
				failed++
				a.logger.Warn("page analysis failed", "path", p.Path, "err", p.Err)
			}
		}
		var pages int
		if site != nil {
			pages = len(site.Pages)
		}
		a.logger.Info("analyze site",
			"pages", pages,
			"failed", failed,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.AnalyzeSite(ctx, site)
}
