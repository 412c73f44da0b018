package siterank

// Analyzer is one pluggable analysis stage. It reads raw markup and returns
// a partial profile holding only the fields it is responsible for.
// Implementations must not retain or mutate shared state between calls.
type Analyzer interface {
	// Name identifies the stage in logs and metrics.
	Name() string

	// Analyze returns the stage's partial profile for markup.
	// Returns EPARSE if the markup cannot be parsed.
	Analyze(markup string) (*AnalysisProfile, error)
}

// Scorer is one pluggable scoring stage. It reads a merged profile and
// returns a partial report.
type Scorer interface {
	// Name identifies the stage in logs and metrics.
	Name() string

	// Score returns the stage's partial report for profile.
	Score(profile *AnalysisProfile) (*OptimizationReport, error)
}

// DocumentAnalyzer runs every analysis stage over one document.
type DocumentAnalyzer interface {
	// AnalyzeDocument returns the merged profile of markup.
	// Returns EINVALID for empty markup and EPARSE for unparseable markup.
	AnalyzeDocument(markup string) (*AnalysisProfile, error)
}

// ProfileScorer runs every scoring stage over one profile.
type ProfileScorer interface {
	// ScoreProfile returns the final report for profile, including the
	// authoritative optimization score and sorted recommendations.
	// Returns EINVALID for a nil profile.
	ScoreProfile(profile *AnalysisProfile) (*OptimizationReport, error)
}
