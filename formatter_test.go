package siterank_test

import (
	"testing"

	"github.com/fwojciec/siterank"
	"github.com/stretchr/testify/assert"
)

func TestFormatRun(t *testing.T) {
	t.Parallel()

	t.Run("formats summary lines", func(t *testing.T) {
		t.Parallel()

		run := &siterank.Run{
			Target:    "/srv/site",
			Framework: siterank.FrameworkVanillaHTML,
			Category:  siterank.BusinessService,
			PageCount: 3,
			Score:     54,
		}

		result := siterank.FormatRun(run)

		expected := "Site: /srv/site\n" +
			"Framework: vanilla-html (inject into index.html)\n" +
			"Category: Service\n" +
			"Pages: 3\n" +
			"Score: 54/100\n"
		assert.Equal(t, expected, result)
	})

	t.Run("shows failed pages", func(t *testing.T) {
		t.Parallel()

		result := siterank.FormatRun(&siterank.Run{PageCount: 4, FailedCount: 2})

		assert.Contains(t, result, "Pages: 4 (2 failed)\n")
	})

	t.Run("includes report sections", func(t *testing.T) {
		t.Parallel()

		run := &siterank.Run{
			Target: "/srv/site",
			Profile: &siterank.AnalysisProfile{
				Keywords: []siterank.Keyword{
					{Word: "web", Frequency: 2, Score: 5},
					{Word: "services", Frequency: 3, Score: 9},
				},
			},
			Report: &siterank.OptimizationReport{
				Sentiment:      &siterank.Sentiment{Score: 0.25, Label: siterank.SentimentPositive},
				KeywordDensity: &siterank.KeywordDensity{Density: 4.5},
				Recommendations: []siterank.Recommendation{{
					Category: siterank.CategoryTitle,
					Priority: siterank.PriorityCritical,
					Message:  "Missing title tag",
					Action:   "Add a descriptive title tag (50-60 characters)",
				}},
				TitleSuggestions: []siterank.TitleSuggestion{{Text: "Services Guide", Score: 0.8}},
				SchemaTrends:     []siterank.SchemaTrend{{SchemaType: "FAQPage", TrendScore: 0.95}},
			},
		}

		result := siterank.FormatRun(run)

		assert.Contains(t, result, "Keywords: services, web\n")
		assert.Contains(t, result, "Sentiment: Positive (0.25)\n")
		assert.Contains(t, result, "Keyword density: 4.5%\n")
		assert.Contains(t, result, "\nRecommendations:\n  [Critical] Title: Missing title tag\n      Add a descriptive title tag (50-60 characters)\n")
		assert.Contains(t, result, "\nTitle suggestions:\n  0.80  Services Guide\n")
		assert.Contains(t, result, "\nSchema trends:\n  0.95  FAQPage\n")
	})

	t.Run("omits empty report sections", func(t *testing.T) {
		t.Parallel()

		result := siterank.FormatRun(&siterank.Run{Report: &siterank.OptimizationReport{}})

		assert.NotContains(t, result, "Recommendations")
		assert.NotContains(t, result, "Sentiment")
	})
}
