package siterank

import (
	"fmt"
	"slices"
	"unicode/utf8"
)

// Priority ranks recommendations. Higher values are more urgent.
type Priority int

// Priorities, lowest first.
const (
	PriorityLow Priority = iota
	PriorityMedium
	PriorityHigh
	PriorityCritical
)

var priorityNames = [...]string{
	PriorityLow:      "Low",
	PriorityMedium:   "Medium",
	PriorityHigh:     "High",
	PriorityCritical: "Critical",
}

func (p Priority) String() string {
	if p < 0 || int(p) >= len(priorityNames) {
		return fmt.Sprintf("Priority(%d)", int(p))
	}
	return priorityNames[p]
}

// MarshalText encodes the priority by name.
func (p Priority) MarshalText() ([]byte, error) {
	return []byte(p.String()), nil
}

// UnmarshalText decodes a priority name.
func (p *Priority) UnmarshalText(text []byte) error {
	for i, n := range priorityNames {
		if n == string(text) {
			*p = Priority(i)
			return nil
		}
	}
	return Errorf(EINVALID, "unknown priority %q", string(text))
}

// Category groups recommendations by the part of the page they concern.
type Category string

// Recommendation categories.
const (
	CategoryTitle       Category = "Title"
	CategoryDescription Category = "Description"
	CategoryKeywords    Category = "Keywords"
	CategorySchema      Category = "Schema"
	CategoryPerformance Category = "Performance"
	CategorySocial      Category = "Social"
	CategoryTechnical   Category = "Technical"
)

// Recommendation is one suggested improvement.
type Recommendation struct {
	Category Category `json:"category"`
	Priority Priority `json:"priority"`
	Message  string   `json:"message"`
	Action   string   `json:"action"`
}

// SortRecommendations orders recs by descending priority. Recommendations
// with equal priority keep their generation order.
func SortRecommendations(recs []Recommendation) {
	slices.SortStableFunc(recs, func(a, b Recommendation) int {
		return int(b.Priority) - int(a.Priority)
	})
}

// SentimentLabel names a band of the sentiment score range.
type SentimentLabel string

// Sentiment labels.
const (
	SentimentVeryNegative SentimentLabel = "VeryNegative"
	SentimentNegative     SentimentLabel = "Negative"
	SentimentNeutral      SentimentLabel = "Neutral"
	SentimentPositive     SentimentLabel = "Positive"
	SentimentVeryPositive SentimentLabel = "VeryPositive"
)

// LabelForScore maps a score to its label. Each band excludes its upper bound.
func LabelForScore(score float64) SentimentLabel {
	switch {
	case score < -0.6:
		return SentimentVeryNegative
	case score < -0.2:
		return SentimentNegative
	case score < 0.2:
		return SentimentNeutral
	case score < 0.6:
		return SentimentPositive
	default:
		return SentimentVeryPositive
	}
}

// Polarity collapses the label to Negative, Neutral or Positive.
func (l SentimentLabel) Polarity() SentimentLabel {
	switch l {
	case SentimentVeryNegative, SentimentNegative:
		return SentimentNegative
	case SentimentVeryPositive, SentimentPositive:
		return SentimentPositive
	default:
		return SentimentNeutral
	}
}

// Sentiment is the tone of a document's text.
type Sentiment struct {
	Score             float64        `json:"score"`
	Confidence        float64        `json:"confidence"`
	Label             SentimentLabel `json:"label"`
	EmotionalTriggers []string       `json:"emotionalTriggers"`
	PowerWords        []string       `json:"powerWords"`
	NegativeWords     []string       `json:"negativeWords"`
}

// TitleSuggestion is a candidate title with its expected effectiveness.
type TitleSuggestion struct {
	Text      string  `json:"text"`
	Score     float64 `json:"score"`
	Reasoning string  `json:"reasoning"`
}

// DescriptionSuggestion is a candidate meta description.
type DescriptionSuggestion struct {
	Text              string   `json:"text"`
	Score             float64  `json:"score"`
	EmotionalTriggers []string `json:"emotionalTriggers"`
	CTAIncluded       bool     `json:"ctaIncluded"`
}

// KeywordDensity describes how heavily keywords occur in the body text.
type KeywordDensity struct {
	// Density is the keyword share of all words, as a percentage.
	Density float64 `json:"density"`

	// DensityScore is 1 inside the optimal band and falls toward 0 outside it.
	DensityScore         float64  `json:"densityScore"`
	IsStuffed            bool     `json:"isStuffed"`
	RecommendedAdditions []string `json:"recommendedAdditions"`
	OverUsed             []string `json:"overUsed"`
}

// SchemaTrend is a structured-data type relevant to the profile.
type SchemaTrend struct {
	SchemaType      string  `json:"schemaType"`
	TrendScore      float64 `json:"trendScore"`
	HasRichSnippets bool    `json:"hasRichSnippets"`
	Description     string  `json:"description"`
	Action          string  `json:"action"`
}

// OptimizationReport is the scored outcome of one profile.
type OptimizationReport struct {
	Sentiment              *Sentiment              `json:"sentiment,omitempty"`
	TitleSuggestions       []TitleSuggestion       `json:"titleSuggestions"`
	DescriptionSuggestions []DescriptionSuggestion `json:"descriptionSuggestions"`
	KeywordDensity         *KeywordDensity         `json:"keywordDensity,omitempty"`
	SchemaTrends           []SchemaTrend           `json:"schemaTrends"`
	OptimizationScore      int                     `json:"optimizationScore"`
	Recommendations        []Recommendation        `json:"recommendations"`

	// Sum and count of the non-zero stage scores merged so far.
	scoreTotal int
	scored     int
}

// Merge folds other into r. List fields concatenate, optional fields take
// the incoming value when present, and OptimizationScore is the mean of the
// non-zero scores merged so far.
func (r *OptimizationReport) Merge(other *OptimizationReport) {
	if other == nil {
		return
	}
	if other.Sentiment != nil {
		r.Sentiment = other.Sentiment
	}
	r.TitleSuggestions = append(r.TitleSuggestions, other.TitleSuggestions...)
	r.DescriptionSuggestions = append(r.DescriptionSuggestions, other.DescriptionSuggestions...)
	if other.KeywordDensity != nil {
		r.KeywordDensity = other.KeywordDensity
	}
	r.SchemaTrends = append(r.SchemaTrends, other.SchemaTrends...)
	r.Recommendations = append(r.Recommendations, other.Recommendations...)

	if other.OptimizationScore > 0 {
		if r.scored == 0 && r.OptimizationScore > 0 {
			r.scoreTotal, r.scored = r.OptimizationScore, 1
		}
		r.scoreTotal += other.OptimizationScore
		r.scored++
		r.OptimizationScore = r.scoreTotal / r.scored
	}
}

// ContentVolumeCap is the keyword count at which content volume earns full credit.
const ContentVolumeCap = 10

// OptimizationScore computes the authoritative 0-100 score for a profile and
// its merged report. Markup completeness contributes up to 40 points, while
// sentiment, keyword density and content volume contribute up to 20 each.
func OptimizationScore(profile *AnalysisProfile, report *OptimizationReport) int {
	score := profile.ExistingSeo.CompletenessScore() * 40 / 100

	if report != nil && report.Sentiment != nil {
		score += int((report.Sentiment.Score + 1) / 2 * 20)
	}
	if report != nil && report.KeywordDensity != nil {
		score += int(report.KeywordDensity.DensityScore * 20)
	}
	score += min(len(profile.Keywords), ContentVolumeCap) * 2

	return min(score, 100)
}

// Title length band outside of which a title is flagged.
const (
	MinTitleLength = 30
	MaxTitleLength = 60
)

// SynthesizeRecommendations applies the fixed markup rule set to a profile.
// The result is in generation order and is not sorted.
func SynthesizeRecommendations(profile *AnalysisProfile) []Recommendation {
	seo := profile.ExistingSeo
	var recs []Recommendation

	if !seo.HasTitle {
		recs = append(recs, Recommendation{
			Category: CategoryTitle,
			Priority: PriorityCritical,
			Message:  "Missing title tag",
			Action:   "Add a descriptive title tag (50-60 characters)",
		})
	} else if n := utf8.RuneCountInString(seo.Title); n < MinTitleLength {
		recs = append(recs, Recommendation{
			Category: CategoryTitle,
			Priority: PriorityMedium,
			Message:  "Title too short",
			Action:   "Expand title to 50-60 characters for better CTR",
		})
	} else if n > MaxTitleLength {
		recs = append(recs, Recommendation{
			Category: CategoryTitle,
			Priority: PriorityMedium,
			Message:  "Title too long",
			Action:   "Shorten title to 60 characters to avoid truncation",
		})
	}

	if !seo.HasDescription {
		recs = append(recs, Recommendation{
			Category: CategoryDescription,
			Priority: PriorityCritical,
			Message:  "Missing meta description",
			Action:   "Add a compelling meta description (150-160 characters)",
		})
	}

	if !seo.HasSchema {
		recs = append(recs, Recommendation{
			Category: CategorySchema,
			Priority: PriorityHigh,
			Message:  "Missing Schema.org structured data",
			Action:   "Add JSON-LD schema for rich snippets in search results",
		})
	}

	if !seo.HasOpenGraph {
		recs = append(recs, Recommendation{
			Category: CategorySocial,
			Priority: PriorityHigh,
			Message:  "Missing Open Graph tags",
			Action:   "Add OG tags for better social media sharing",
		})
	}
	if !seo.HasTwitterCards {
		recs = append(recs, Recommendation{
			Category: CategorySocial,
			Priority: PriorityMedium,
			Message:  "Missing Twitter Cards",
			Action:   "Add Twitter Card meta tags for better Twitter previews",
		})
	}

	if seo.H1Count == 0 {
		recs = append(recs, Recommendation{
			Category: CategoryTechnical,
			Priority: PriorityHigh,
			Message:  "Missing H1 heading",
			Action:   "Add exactly one H1 heading per page",
		})
	} else if seo.H1Count > 1 {
		recs = append(recs, Recommendation{
			Category: CategoryTechnical,
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("Multiple H1 headings (%d)", seo.H1Count),
			Action:   "Use only one H1 heading per page",
		})
	}

	if seo.ImagesMissingAlt > 0 {
		recs = append(recs, Recommendation{
			Category: CategoryTechnical,
			Priority: PriorityMedium,
			Message:  fmt.Sprintf("%d images missing alt text", seo.ImagesMissingAlt),
			Action:   "Add descriptive alt text to all images",
		})
	}

	return recs
}
