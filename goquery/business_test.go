package goquery_test

import (
	"testing"

	"github.com/fwojciec/siterank"
	"github.com/fwojciec/siterank/goquery"
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

func TestBusinessAnalyzer_Analyze(t *testing.T) {
	t.Parallel()

	t.Run("classifies a consulting page as a service business", func(t *testing.T) {
		t.Parallel()

		profile, err := goquery.NewBusinessAnalyzer().Analyze(servicePage)

		require.NoError(t, err)
		assert.Equal(t, siterank.BusinessService, profile.BusinessCategory)
		assert.Equal(t, "en", profile.Language)
	})

	t.Run("ignores script text when classifying", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><main><script>cart cart cart checkout shop</script><p>Our restaurant menu</p></main></body></html>`

		profile, err := goquery.NewBusinessAnalyzer().Analyze(html)

		require.NoError(t, err)
		assert.Equal(t, siterank.BusinessRestaurant, profile.BusinessCategory)
	})

	t.Run("falls back to the content-language declaration", func(t *testing.T) {
		t.Parallel()

		html := `<html><head><meta http-equiv="content-language" content="fr-CA"></head><body></body></html>`

		profile, err := goquery.NewBusinessAnalyzer().Analyze(html)

		require.NoError(t, err)
		assert.Equal(t, "fr", profile.Language)
	})

	t.Run("leaves language unset without declarations", func(t *testing.T) {
		t.Parallel()

		profile, err := goquery.NewBusinessAnalyzer().Analyze(`<html><body><p>hello</p></body></html>`)

		require.NoError(t, err)
		assert.Empty(t, profile.Language)
		assert.Equal(t, siterank.BusinessUnknown, profile.BusinessCategory)
	})

	t.Run("summarizes main content", func(t *testing.T) {
		t.Parallel()

		html := `<html><body><article>Short one. This article explains cloud migration in depth! Teams learn how to plan a safe cutover?</article></body></html>`

		profile, err := goquery.NewBusinessAnalyzer().Analyze(html)

		require.NoError(t, err)
		assert.Equal(t, "this article explains cloud migration in depth. teams learn how to plan a safe cutover", profile.ContentSummary)
	})
}

func TestClassify(t *testing.T) {
	t.Parallel()

	t.Run("resolves ties to unknown", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, siterank.BusinessUnknown, goquery.Classify("cart blog"))
	})

	t.Run("resolves empty scores to unknown", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, siterank.BusinessUnknown, goquery.Classify("zzz"))
		assert.Equal(t, siterank.BusinessUnknown, goquery.Classify(""))
	})

	t.Run("picks the strictly highest score", func(t *testing.T) {
		t.Parallel()

		assert.Equal(t, siterank.BusinessRestaurant, goquery.Classify("menu menu menu"))
	})

	t.Run("is deterministic across runs", func(t *testing.T) {
		t.Parallel()

		text := "shop with us for home decor and more"
		first := goquery.Classify(text)
		for i := 0; i < 50; i++ {
			assert.Equal(t, first, goquery.Classify(text))
		}
	})
}

func TestCategoryScores(t *testing.T) {
	t.Parallel()

	t.Run("adds a bonus per two repeated occurrences", func(t *testing.T) {
		t.Parallel()

		scores := goquery.CategoryScores("menu menu menu")

		assert.Equal(t, 2, scores[siterank.BusinessRestaurant])
		assert.Equal(t, 0, scores[siterank.BusinessBlog])
	})

	t.Run("counts each distinct term once before the bonus", func(t *testing.T) {
		t.Parallel()

		scores := goquery.CategoryScores("consulting migration assessment")

		assert.Equal(t, 3, scores[siterank.BusinessService])
	})
}

func TestSummarize(t *testing.T) {
	t.Parallel()

	text := "tiny. first sentence that is long enough! second sentence that is long enough? third sentence that is long enough. fourth sentence that is long enough."

	assert.Equal(t,
		"first sentence that is long enough. second sentence that is long enough. third sentence that is long enough",
		goquery.Summarize(text))
	assert.Empty(t, goquery.Summarize("too short. also short"))
}
