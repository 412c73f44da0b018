package slog

import (
	"log/slog"
	"time"

	"github.com/fwojciec/siterank"
)

// Ensure the logging decorators implement the stage interfaces.
var (
	_ siterank.Analyzer = (*LoggingAnalyzer)(nil)
	_ siterank.Scorer   = (*LoggingScorer)(nil)
)

// LoggingAnalyzer wraps an Analyzer with debug logging.
type LoggingAnalyzer struct {
	next   siterank.Analyzer
	logger *slog.Logger
}

// NewLoggingAnalyzer creates a new LoggingAnalyzer.
func NewLoggingAnalyzer(next siterank.Analyzer, logger *slog.Logger) *LoggingAnalyzer {
	return &LoggingAnalyzer{next: next, logger: logger}
}

// Name returns the name of the wrapped stage.
func (a *LoggingAnalyzer) Name() string {
	return a.next.Name()
}

// Analyze delegates to the wrapped stage and logs the outcome.
func (a *LoggingAnalyzer) Analyze(markup string) (profile *siterank.AnalysisProfile, err error) {
	defer func(begin time.Time) {
		var keywords int
		if profile != nil {
			keywords = len(profile.Keywords)
		}
		a.logger.Debug("analyze",
			"stage", a.next.Name(),
			"bytes", len(markup),
			"keywords", keywords,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return a.next.Analyze(markup)
}

// LoggingScorer wraps a Scorer with debug logging.
type LoggingScorer struct {
	next   siterank.Scorer
	logger *slog.Logger
}

// NewLoggingScorer creates a new LoggingScorer.
func NewLoggingScorer(next siterank.Scorer, logger *slog.Logger) *LoggingScorer {
	return &LoggingScorer{next: next, logger: logger}
}

// Name returns the name of the wrapped stage.
func (s *LoggingScorer) Name() string {
	return s.next.Name()
}

// Score delegates to the wrapped stage and logs the outcome.
func (s *LoggingScorer) Score(profile *siterank.AnalysisProfile) (report *siterank.OptimizationReport, err error) {
	defer func(begin time.Time) {
		var recommendations int
		if report != nil {
			recommendations = len(report.Recommendations)
		}
		s.logger.Debug("score",
			"stage", s.next.Name(),
			"recommendations", recommendations,
			"duration", time.Since(begin),
			"err", err,
		)
	}(time.Now())
	return s.next.Score(profile)
}

// WrapAnalyzers decorates every analyzer with logging, keeping their order.
func WrapAnalyzers(analyzers []siterank.Analyzer, logger *slog.Logger) []siterank.Analyzer {
	wrapped := make([]siterank.Analyzer, len(analyzers))
	for i, a := range analyzers {
		wrapped[i] = NewLoggingAnalyzer(a, logger)
	}
	return wrapped
}

// WrapScorers decorates every scorer with logging, keeping their order.
func WrapScorers(scorers []siterank.Scorer, logger *slog.Logger) []siterank.Scorer {
	wrapped := make([]siterank.Scorer, len(scorers))
	for i, s := range scorers {
		wrapped[i] = NewLoggingScorer(s, logger)
	}
	return wrapped
}
