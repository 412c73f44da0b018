// Package pipeline runs ordered analysis and scoring stages over documents
// and merges their partial results.
package pipeline

import (
	"fmt"
	"strings"

	"github.com/fwojciec/siterank"
	"github.com/fwojciec/siterank/goquery"
	"github.com/fwojciec/siterank/scoring"
)

// Ensure Pipeline implements the domain interfaces.
var (
	_ siterank.DocumentAnalyzer = (*Pipeline)(nil)
	_ siterank.ProfileScorer    = (*Pipeline)(nil)
	_ siterank.SiteAnalyzer     = (*Pipeline)(nil)
)

// DefaultConcurrency is the number of pages analyzed at once by AnalyzeSite.
const DefaultConcurrency = 4

// Pipeline holds an ordered list of analysis stages and a separately ordered
// list of scoring stages. Stages run in registration order. A Pipeline does
// not change after construction and is safe for concurrent use.
type Pipeline struct {
	analyzers   []siterank.Analyzer
	scorers     []siterank.Scorer
	concurrency int
	progress    ProgressFunc
}

// Option configures a Pipeline.
type Option func(*Pipeline)

// WithConcurrency bounds the pages AnalyzeSite analyzes at once. Values below
// one keep DefaultConcurrency.
func WithConcurrency(n int) Option {
	return func(p *Pipeline) {
		if n > 0 {
			p.concurrency = n
		}
	}
}

// WithProgress sets a callback that receives an event as each page of a site
// finishes.
func WithProgress(fn ProgressFunc) Option {
	return func(p *Pipeline) {
		p.progress = fn
	}
}

// New creates a pipeline running the given stages in order.
func New(analyzers []siterank.Analyzer, scorers []siterank.Scorer, opts ...Option) *Pipeline {
	p := &Pipeline{
		analyzers:   analyzers,
		scorers:     scorers,
		concurrency: DefaultConcurrency,
	}
	for _, opt := range opts {
		opt(p)
	}
	return p
}

// With returns a copy of p with opts applied. The stages are shared and p is
// left unchanged.
func (p *Pipeline) With(opts ...Option) *Pipeline {
	c := *p
	for _, opt := range opts {
		opt(&c)
	}
	return &c
}

// Concurrency returns the number of pages AnalyzeSite analyzes at once.
func (p *Pipeline) Concurrency() int {
	return p.concurrency
}

// Default creates a pipeline with the standard stages: SEO audit, keyword
// extraction and business classification, then sentiment, content
// optimization and trend prediction.
func Default() *Pipeline {
	return New(DefaultAnalyzers(), DefaultScorers())
}

// DefaultAnalyzers returns the standard analysis stages in order.
func DefaultAnalyzers() []siterank.Analyzer {
	return []siterank.Analyzer{
		goquery.NewSeoAuditAnalyzer(),
		goquery.NewKeywordAnalyzer(),
		goquery.NewBusinessAnalyzer(),
	}
}

// DefaultScorers returns the standard scoring stages in order.
func DefaultScorers() []siterank.Scorer {
	return []siterank.Scorer{
		scoring.NewSentimentScorer(),
		scoring.NewContentOptimizer(),
		scoring.NewTrendPredictor(),
	}
}

// AnalyzeDocument runs every analysis stage over markup and merges the
// partial profiles in stage order.
func (p *Pipeline) AnalyzeDocument(markup string) (*siterank.AnalysisProfile, error) {
	if strings.TrimSpace(markup) == "" {
		return nil, siterank.Errorf(siterank.EINVALID, "markup required")
	}

	profile := &siterank.AnalysisProfile{}
	for _, a := range p.analyzers {
		partial, err := a.Analyze(markup)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", a.Name(), err)
		}
		profile.Merge(partial)
		if err := profile.Validate(); err != nil {
			return nil, fmt.Errorf("%s: %w", a.Name(), err)
		}
	}
	return profile, nil
}

// ScoreProfile runs every scoring stage over profile, merges the partial
// reports, then records the authoritative optimization score and the sorted
// recommendations.
func (p *Pipeline) ScoreProfile(profile *siterank.AnalysisProfile) (*siterank.OptimizationReport, error) {
	if profile == nil {
		return nil, siterank.Errorf(siterank.EINVALID, "profile required")
	}

	report := &siterank.OptimizationReport{}
	for _, s := range p.scorers {
		partial, err := s.Score(profile)
		if err != nil {
			return nil, fmt.Errorf("%s: %w", s.Name(), err)
		}
		report.Merge(partial)
	}

	report.OptimizationScore = siterank.OptimizationScore(profile, report)
	report.Recommendations = append(report.Recommendations, siterank.SynthesizeRecommendations(profile)...)
	siterank.SortRecommendations(report.Recommendations)

	return report, nil
}
