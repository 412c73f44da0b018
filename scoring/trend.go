package scoring

import (
	"cmp"
	"fmt"
	"slices"

	"github.com/fwojciec/siterank"
)

var _ siterank.Scorer = (*TrendPredictor)(nil)

type trendingSchema struct {
	schemaType      string
	trendScore      float64
	hasRichSnippets bool
	applicableTo    []siterank.BusinessCategory
	description     string
}

// An entry applicable to BusinessUnknown applies to every category.
var trendingSchemas = []trendingSchema{
	{
		schemaType:      "FAQPage",
		trendScore:      0.95,
		hasRichSnippets: true,
		applicableTo: []siterank.BusinessCategory{
			siterank.BusinessService,
			siterank.BusinessSaaS,
			siterank.BusinessEcommerce,
			siterank.BusinessHealthcare,
			siterank.BusinessEducation,
		},
		description: "FAQ rich results are appearing more frequently in SERPs",
	},
	{
		schemaType:      "HowTo",
		trendScore:      0.90,
		hasRichSnippets: true,
		applicableTo: []siterank.BusinessCategory{
			siterank.BusinessService,
			siterank.BusinessEducation,
			siterank.BusinessBlog,
		},
		description: "How-to rich results with step-by-step instructions",
	},
	{
		schemaType:      "Product",
		trendScore:      0.92,
		hasRichSnippets: true,
		applicableTo:    []siterank.BusinessCategory{siterank.BusinessEcommerce},
		description:     "Product rich results with price, availability, reviews",
	},
	{
		schemaType:      "Review",
		trendScore:      0.88,
		hasRichSnippets: true,
		applicableTo: []siterank.BusinessCategory{
			siterank.BusinessEcommerce,
			siterank.BusinessService,
			siterank.BusinessLocalBusiness,
			siterank.BusinessRestaurant,
		},
		description: "Star ratings in search results dramatically increase CTR",
	},
	{
		schemaType:      "LocalBusiness",
		trendScore:      0.85,
		hasRichSnippets: true,
		applicableTo: []siterank.BusinessCategory{
			siterank.BusinessLocalBusiness,
			siterank.BusinessRestaurant,
			siterank.BusinessHealthcare,
		},
		description: "Local business info in maps and search",
	},
	{
		schemaType:      "Organization",
		trendScore:      0.80,
		hasRichSnippets: true,
		applicableTo: []siterank.BusinessCategory{
			siterank.BusinessService,
			siterank.BusinessSaaS,
			siterank.BusinessAgency,
			siterank.BusinessTechnology,
		},
		description: "Knowledge panel for brand recognition",
	},
	{
		schemaType:      "SoftwareApplication",
		trendScore:      0.82,
		hasRichSnippets: true,
		applicableTo:    []siterank.BusinessCategory{siterank.BusinessSaaS, siterank.BusinessTechnology},
		description:     "Software rich results with ratings and pricing",
	},
	{
		schemaType:      "Article",
		trendScore:      0.75,
		hasRichSnippets: true,
		applicableTo:    []siterank.BusinessCategory{siterank.BusinessBlog, siterank.BusinessEducation},
		description:     "Article rich results for news and blog content",
	},
	{
		schemaType:      "BreadcrumbList",
		trendScore:      0.70,
		hasRichSnippets: true,
		applicableTo: []siterank.BusinessCategory{
			siterank.BusinessEcommerce,
			siterank.BusinessService,
			siterank.BusinessBlog,
		},
		description: "Breadcrumb navigation in search results",
	},
	{
		schemaType:      "VideoObject",
		trendScore:      0.85,
		hasRichSnippets: true,
		applicableTo: []siterank.BusinessCategory{
			siterank.BusinessEducation,
			siterank.BusinessBlog,
			siterank.BusinessService,
		},
		description: "Video thumbnails and duration in search results",
	},
	{
		schemaType:      "Event",
		trendScore:      0.72,
		hasRichSnippets: true,
		applicableTo: []siterank.BusinessCategory{
			siterank.BusinessLocalBusiness,
			siterank.BusinessEducation,
			siterank.BusinessNonProfit,
		},
		description: "Event rich results with dates and locations",
	},
	{
		schemaType:      "Course",
		trendScore:      0.78,
		hasRichSnippets: true,
		applicableTo:    []siterank.BusinessCategory{siterank.BusinessEducation, siterank.BusinessSaaS},
		description:     "Course rich results for educational content",
	},
}

func (t trendingSchema) appliesTo(category siterank.BusinessCategory) bool {
	return slices.Contains(t.applicableTo, category) ||
		slices.Contains(t.applicableTo, siterank.BusinessUnknown)
}

// TrendPredictor lists the structured-data types that earn rich results for
// a profile's business category and recommends the high-value ones the page
// does not declare yet.
type TrendPredictor struct{}

// NewTrendPredictor creates a new TrendPredictor.
func NewTrendPredictor() *TrendPredictor {
	return &TrendPredictor{}
}

// Name returns the stage identifier.
func (p *TrendPredictor) Name() string {
	return "trend_predictor"
}

// Score returns the applicable schema trends, highest trend score first, and
// recommendations for missing FAQ and review markup.
func (p *TrendPredictor) Score(profile *siterank.AnalysisProfile) (*siterank.OptimizationReport, error) {
	if profile == nil {
		return nil, siterank.Errorf(siterank.EINVALID, "profile required")
	}

	report := &siterank.OptimizationReport{}
	applicable := map[string]bool{}
	for _, t := range trendingSchemas {
		if !t.appliesTo(profile.BusinessCategory) {
			continue
		}
		applicable[t.schemaType] = true
		report.SchemaTrends = append(report.SchemaTrends, siterank.SchemaTrend{
			SchemaType:      t.schemaType,
			TrendScore:      t.trendScore,
			HasRichSnippets: t.hasRichSnippets,
			Description:     t.description,
			Action:          fmt.Sprintf("Add %s schema to your page", t.schemaType),
		})
	}
	slices.SortStableFunc(report.SchemaTrends, func(a, b siterank.SchemaTrend) int {
		return cmp.Compare(b.TrendScore, a.TrendScore)
	})

	if applicable["FAQPage"] && !profile.HasSchemaType("FAQPage") {
		report.Recommendations = append(report.Recommendations, siterank.Recommendation{
			Category: siterank.CategorySchema,
			Priority: siterank.PriorityHigh,
			Message:  "FAQPage schema is trending - 30%+ CTR increase potential",
			Action:   "Add FAQ section with FAQPage structured data",
		})
	}
	if applicable["Review"] && !profile.HasSchemaType("Review") && !profile.HasSchemaType("AggregateRating") {
		report.Recommendations = append(report.Recommendations, siterank.Recommendation{
			Category: siterank.CategorySchema,
			Priority: siterank.PriorityHigh,
			Message:  "Review/Rating schema drives highest CTR improvements",
			Action:   "Add customer reviews with Review/AggregateRating schema",
		})
	}

	return report, nil
}
