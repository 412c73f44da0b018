package pipeline_test

import (
	"errors"
	"testing"

	"github.com/fwojciec/siterank"
	"github.com/fwojciec/siterank/mock"
	"github.com/fwojciec/siterank/pipeline"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

const servicePage = `<!DOCTYPE html>
<html lang="en-US">
<head>
<meta charset="UTF-8">
<title>Professional Web Services</title>
<meta name="description" content="Trusted web services for growing companies">
</head>
<body>
<h1>Web Services</h1>
<main>
<p>We offer consulting for growing companies.</p>
<p>Our engineers handle development, migration and assessment.</p>
</main>
</body>
</html>`

const bareTwoHeadingPage = `<html><body><h1>First</h1><h1>Second</h1><p>Plain text only.</p></body></html>`

func ptr[T any](v T) *T { return &v }

func fixedAnalyzer(name string, profile *siterank.AnalysisProfile) *mock.Analyzer {
	return &mock.Analyzer{
		NameFn:    func() string { return name },
		AnalyzeFn: func(string) (*siterank.AnalysisProfile, error) { return profile, nil },
	}
}

func fixedScorer(name string, report *siterank.OptimizationReport) *mock.Scorer {
	return &mock.Scorer{
		NameFn:  func() string { return name },
		ScoreFn: func(*siterank.AnalysisProfile) (*siterank.OptimizationReport, error) { return report, nil },
	}
}

func TestPipeline_AnalyzeDocument(t *testing.T) {
	t.Parallel()

	t.Run("rejects empty markup", func(t *testing.T) {
		t.Parallel()

		for _, markup := range []string{"", "  \n\t "} {
			_, err := pipeline.Default().AnalyzeDocument(markup)

			assert.Equal(t, siterank.EINVALID, siterank.ErrorCode(err))
		}
	})

	t.Run("merges stages in registration order", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New([]siterank.Analyzer{
			fixedAnalyzer("first", &siterank.AnalysisProfile{
				Keywords:    []siterank.Keyword{{Word: "cloud", Frequency: 1, Score: 1}},
				Language:    "en",
				ExistingSeo: siterank.ExistingSeoAudit{H1Count: 1},
			}),
			fixedAnalyzer("second", &siterank.AnalysisProfile{
				Keywords:         []siterank.Keyword{{Word: "cloud", Frequency: 9, Score: 9}, {Word: "data", Frequency: 2, Score: 2}},
				BusinessCategory: siterank.BusinessTechnology,
				ExistingSeo:      siterank.ExistingSeoAudit{H1Count: 1},
			}),
		}, nil)

		profile, err := p.AnalyzeDocument("<html></html>")

		require.NoError(t, err)
		require.Len(t, profile.Keywords, 2)
		assert.Equal(t, 1, profile.Keywords[0].Frequency)
		assert.Equal(t, "data", profile.Keywords[1].Word)
		assert.Equal(t, "en", profile.Language)
		assert.Equal(t, siterank.BusinessTechnology, profile.BusinessCategory)
		assert.Equal(t, 2, profile.ExistingSeo.H1Count)
	})

	t.Run("wraps stage errors with the stage name", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New([]siterank.Analyzer{
			&mock.Analyzer{
				NameFn: func() string { return "broken" },
				AnalyzeFn: func(string) (*siterank.AnalysisProfile, error) {
					return nil, siterank.Errorf(siterank.EPARSE, "bad markup")
				},
			},
		}, nil)

		_, err := p.AnalyzeDocument("<html>")

		require.Error(t, err)
		assert.Contains(t, err.Error(), "broken:")
		assert.Equal(t, siterank.EPARSE, siterank.ErrorCode(err))
	})

	t.Run("reports inconsistent merges as internal errors", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New([]siterank.Analyzer{
			fixedAnalyzer("sentiment", &siterank.AnalysisProfile{SentimentScore: ptr(2.0)}),
		}, nil)

		_, err := p.AnalyzeDocument("<html></html>")

		assert.Equal(t, siterank.EINTERNAL, siterank.ErrorCode(err))
	})

	t.Run("rejects markup that is not valid UTF-8", func(t *testing.T) {
		t.Parallel()

		_, err := pipeline.Default().AnalyzeDocument("<html>\xff</html>")

		assert.Equal(t, siterank.EPARSE, siterank.ErrorCode(err))
	})

	t.Run("classifies a service page", func(t *testing.T) {
		t.Parallel()

		profile, err := pipeline.Default().AnalyzeDocument(servicePage)

		require.NoError(t, err)
		assert.Equal(t, siterank.BusinessService, profile.BusinessCategory)
		assert.True(t, profile.ExistingSeo.HasTitle)
		assert.True(t, profile.ExistingSeo.HasDescription)
		assert.Equal(t, "en", profile.Language)

		var top []string
		for _, k := range profile.TopKeywords(10) {
			top = append(top, k.Word)
		}
		assert.Contains(t, top, "services")
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		p := pipeline.Default()
		first, err := p.AnalyzeDocument(servicePage)
		require.NoError(t, err)
		second, err := p.AnalyzeDocument(servicePage)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}

func TestPipeline_ScoreProfile(t *testing.T) {
	t.Parallel()

	t.Run("rejects a nil profile", func(t *testing.T) {
		t.Parallel()

		_, err := pipeline.Default().ScoreProfile(nil)

		assert.Equal(t, siterank.EINVALID, siterank.ErrorCode(err))
	})

	t.Run("recomputes the score and sorts recommendations", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(nil, []siterank.Scorer{
			fixedScorer("tone", &siterank.OptimizationReport{
				Sentiment:         &siterank.Sentiment{Score: 0},
				OptimizationScore: 80,
			}),
			fixedScorer("density", &siterank.OptimizationReport{
				KeywordDensity: &siterank.KeywordDensity{DensityScore: 1},
				Recommendations: []siterank.Recommendation{
					{Category: siterank.CategoryKeywords, Priority: siterank.PriorityLow, Message: "Add more keywords"},
				},
			}),
		})

		report, err := p.ScoreProfile(&siterank.AnalysisProfile{})

		require.NoError(t, err)
		assert.Equal(t, 30, report.OptimizationScore)
		var messages []string
		for _, r := range report.Recommendations {
			messages = append(messages, r.Message)
		}
		assert.Equal(t, []string{
			"Missing title tag",
			"Missing meta description",
			"Missing Schema.org structured data",
			"Missing Open Graph tags",
			"Missing H1 heading",
			"Missing Twitter Cards",
			"Add more keywords",
		}, messages)
	})

	t.Run("wraps scorer errors with the stage name", func(t *testing.T) {
		t.Parallel()

		p := pipeline.New(nil, []siterank.Scorer{
			&mock.Scorer{
				NameFn: func() string { return "failing" },
				ScoreFn: func(*siterank.AnalysisProfile) (*siterank.OptimizationReport, error) {
					return nil, errors.New("boom")
				},
			},
		})

		_, err := p.ScoreProfile(&siterank.AnalysisProfile{})

		require.Error(t, err)
		assert.Contains(t, err.Error(), "failing: boom")
	})

	t.Run("scores a service page end to end", func(t *testing.T) {
		t.Parallel()

		p := pipeline.Default()
		profile, err := p.AnalyzeDocument(servicePage)
		require.NoError(t, err)

		report, err := p.ScoreProfile(profile)

		require.NoError(t, err)
		assert.Equal(t, 54, report.OptimizationScore)
		require.NotNil(t, report.Sentiment)
		require.NotNil(t, report.KeywordDensity)
		require.NotEmpty(t, report.SchemaTrends)
		assert.Equal(t, "FAQPage", report.SchemaTrends[0].SchemaType)
		assert.NotEmpty(t, report.TitleSuggestions)
		for i := 1; i < len(report.Recommendations); i++ {
			assert.GreaterOrEqual(t, report.Recommendations[i-1].Priority, report.Recommendations[i].Priority)
		}
	})

	t.Run("flags a bare page with two headings", func(t *testing.T) {
		t.Parallel()

		p := pipeline.Default()
		profile, err := p.AnalyzeDocument(bareTwoHeadingPage)
		require.NoError(t, err)

		report, err := p.ScoreProfile(profile)

		require.NoError(t, err)
		assert.Equal(t, 0, profile.ExistingSeo.CompletenessScore())
		require.GreaterOrEqual(t, len(report.Recommendations), 2)
		assert.Equal(t, siterank.Recommendation{
			Category: siterank.CategoryTitle,
			Priority: siterank.PriorityCritical,
			Message:  "Missing title tag",
			Action:   "Add a descriptive title tag (50-60 characters)",
		}, report.Recommendations[0])
		assert.Equal(t, "Missing meta description", report.Recommendations[1].Message)
		assert.Equal(t, siterank.PriorityCritical, report.Recommendations[1].Priority)
		assert.Contains(t, report.Recommendations, siterank.Recommendation{
			Category: siterank.CategoryTechnical,
			Priority: siterank.PriorityMedium,
			Message:  "Multiple H1 headings (2)",
			Action:   "Use only one H1 heading per page",
		})
	})

	t.Run("is deterministic", func(t *testing.T) {
		t.Parallel()

		p := pipeline.Default()
		profile, err := p.AnalyzeDocument(servicePage)
		require.NoError(t, err)

		first, err := p.ScoreProfile(profile)
		require.NoError(t, err)
		second, err := p.ScoreProfile(profile)
		require.NoError(t, err)

		assert.Equal(t, first, second)
	})
}
