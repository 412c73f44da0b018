package mock

import (
	"github.com/fwojciec/siterank"
)

var (
	_ siterank.Analyzer         = (*Analyzer)(nil)
	_ siterank.Scorer           = (*Scorer)(nil)
	_ siterank.DocumentAnalyzer = (*DocumentAnalyzer)(nil)
	_ siterank.ProfileScorer    = (*ProfileScorer)(nil)
)

// Analyzer is a mock implementation of siterank.Analyzer.
type Analyzer struct {
	NameFn    func() string
	AnalyzeFn func(markup string) (*siterank.AnalysisProfile, error)
}

func (a *Analyzer) Name() string {
	if a.NameFn == nil {
		return "mock_analyzer"
	}
	return a.NameFn()
}

func (a *Analyzer) Analyze(markup string) (*siterank.AnalysisProfile, error) {
	return a.AnalyzeFn(markup)
}

// Scorer is a mock implementation of siterank.Scorer.
type Scorer struct {
	NameFn  func() string
	ScoreFn func(profile *siterank.AnalysisProfile) (*siterank.OptimizationReport, error)
}

func (s *Scorer) Name() string {
	if s.NameFn == nil {
		return "mock_scorer"
	}
	return s.NameFn()
}

func (s *Scorer) Score(profile *siterank.AnalysisProfile) (*siterank.OptimizationReport, error) {
	return s.ScoreFn(profile)
}

// DocumentAnalyzer is a mock implementation of siterank.DocumentAnalyzer.
type DocumentAnalyzer struct {
	AnalyzeDocumentFn func(markup string) (*siterank.AnalysisProfile, error)
}

func (a *DocumentAnalyzer) AnalyzeDocument(markup string) (*siterank.AnalysisProfile, error) {
	return a.AnalyzeDocumentFn(markup)
}

// ProfileScorer is a mock implementation of siterank.ProfileScorer.
type ProfileScorer struct {
	ScoreProfileFn func(profile *siterank.AnalysisProfile) (*siterank.OptimizationReport, error)
}

func (s *ProfileScorer) ScoreProfile(profile *siterank.AnalysisProfile) (*siterank.OptimizationReport, error) {
	return s.ScoreProfileFn(profile)
}
