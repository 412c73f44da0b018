package scoring_test

import (
	"testing"

	"github.com/fwojciec/siterank"
	"github.com/fwojciec/siterank/scoring"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func schemaTypes(trends []siterank.SchemaTrend) []string {
	var out []string
	for _, t := range trends {
		out = append(out, t.SchemaType)
	}
	return out
}

func TestTrendPredictor_Score(t *testing.T) {
	t.Parallel()

	t.Run("orders service trends by descending trend score", func(t *testing.T) {
		t.Parallel()

		report, err := scoring.NewTrendPredictor().Score(&siterank.AnalysisProfile{BusinessCategory: siterank.BusinessService})

		require.NoError(t, err)
		assert.Equal(t, []string{"FAQPage", "HowTo", "Review", "VideoObject", "Organization", "BreadcrumbList"}, schemaTypes(report.SchemaTrends))
		assert.Equal(t, "Add FAQPage schema to your page", report.SchemaTrends[0].Action)
		assert.True(t, report.SchemaTrends[0].HasRichSnippets)
	})

	t.Run("recommends FAQ and review markup for services", func(t *testing.T) {
		t.Parallel()

		report, err := scoring.NewTrendPredictor().Score(&siterank.AnalysisProfile{BusinessCategory: siterank.BusinessService})

		require.NoError(t, err)
		require.Len(t, report.Recommendations, 2)
		assert.Equal(t, "FAQPage schema is trending - 30%+ CTR increase potential", report.Recommendations[0].Message)
		assert.Equal(t, "Review/Rating schema drives highest CTR improvements", report.Recommendations[1].Message)
		for _, r := range report.Recommendations {
			assert.Equal(t, siterank.PriorityHigh, r.Priority)
			assert.Equal(t, siterank.CategorySchema, r.Category)
		}
	})

	t.Run("skips recommendations for declared types", func(t *testing.T) {
		t.Parallel()

		profile := &siterank.AnalysisProfile{
			BusinessCategory: siterank.BusinessService,
			SchemaTypes:      []string{"FAQPage", "AggregateRating"},
		}

		report, err := scoring.NewTrendPredictor().Score(profile)

		require.NoError(t, err)
		assert.Empty(t, report.Recommendations)
		assert.Contains(t, schemaTypes(report.SchemaTrends), "FAQPage")
	})

	t.Run("lists declared types among the trends", func(t *testing.T) {
		t.Parallel()

		profile := &siterank.AnalysisProfile{
			BusinessCategory: siterank.BusinessEcommerce,
			SchemaTypes:      []string{"Product", "FAQPage"},
		}

		report, err := scoring.NewTrendPredictor().Score(profile)

		require.NoError(t, err)
		assert.Equal(t, []string{"FAQPage", "Product", "Review", "BreadcrumbList"}, schemaTypes(report.SchemaTrends))
		require.Len(t, report.Recommendations, 1)
		assert.Equal(t, "Review/Rating schema drives highest CTR improvements", report.Recommendations[0].Message)
	})

	t.Run("includes product markup for stores", func(t *testing.T) {
		t.Parallel()

		report, err := scoring.NewTrendPredictor().Score(&siterank.AnalysisProfile{BusinessCategory: siterank.BusinessEcommerce})

		require.NoError(t, err)
		assert.Equal(t, []string{"FAQPage", "Product", "Review", "BreadcrumbList"}, schemaTypes(report.SchemaTrends))
	})

	t.Run("recommends only review markup for restaurants", func(t *testing.T) {
		t.Parallel()

		report, err := scoring.NewTrendPredictor().Score(&siterank.AnalysisProfile{BusinessCategory: siterank.BusinessRestaurant})

		require.NoError(t, err)
		assert.Equal(t, []string{"Review", "LocalBusiness"}, schemaTypes(report.SchemaTrends))
		require.Len(t, report.Recommendations, 1)
		assert.Equal(t, "Add customer reviews with Review/AggregateRating schema", report.Recommendations[0].Action)
	})

	t.Run("blogs get no hard-coded recommendations", func(t *testing.T) {
		t.Parallel()

		report, err := scoring.NewTrendPredictor().Score(&siterank.AnalysisProfile{BusinessCategory: siterank.BusinessBlog})

		require.NoError(t, err)
		assert.Equal(t, []string{"HowTo", "VideoObject", "Article", "BreadcrumbList"}, schemaTypes(report.SchemaTrends))
		assert.Empty(t, report.Recommendations)
	})

	t.Run("unknown category has no applicable trends", func(t *testing.T) {
		t.Parallel()

		report, err := scoring.NewTrendPredictor().Score(&siterank.AnalysisProfile{})

		require.NoError(t, err)
		assert.Empty(t, report.SchemaTrends)
		assert.Empty(t, report.Recommendations)
	})

	t.Run("rejects a nil profile", func(t *testing.T) {
		t.Parallel()

		_, err := scoring.NewTrendPredictor().Score(nil)

		assert.Equal(t, siterank.EINVALID, siterank.ErrorCode(err))
	})
}
