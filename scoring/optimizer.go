package scoring

import (
	"cmp"
	"fmt"
	"slices"
	"strings"
	"time"
	"unicode/utf8"

	"github.com/fwojciec/siterank"
)

var _ siterank.Scorer = (*ContentOptimizer)(nil)

// Keyword density thresholds, as percentages of all words.
const (
	MinOptimalDensity = 1.0
	MaxOptimalDensity = 3.0
	DensityDecay      = 10.0
	StuffedDensity    = 5.0
	OverUsedShare     = 2.0
)

// Suggestion length limits.
const (
	MaxSuggestedTitle       = 60
	MaxSuggestedDescription = 160
)

// ContentOptimizer analyzes keyword density and proposes titles and meta
// descriptions built from the profile's top keywords.
type ContentOptimizer struct {
	// Now returns the current time. The year appears in one title pattern.
	Now func() time.Time
}

// NewContentOptimizer creates a new ContentOptimizer using the wall clock.
func NewContentOptimizer() *ContentOptimizer {
	return &ContentOptimizer{Now: time.Now}
}

// Name returns the stage identifier.
func (o *ContentOptimizer) Name() string {
	return "content_optimizer"
}

// Score returns a report with keyword density and title and description
// suggestions.
func (o *ContentOptimizer) Score(profile *siterank.AnalysisProfile) (*siterank.OptimizationReport, error) {
	if profile == nil {
		return nil, siterank.Errorf(siterank.EINVALID, "profile required")
	}

	density := AnalyzeDensity(profile)
	return &siterank.OptimizationReport{
		KeywordDensity:         &density,
		TitleSuggestions:       o.titleSuggestions(profile),
		DescriptionSuggestions: descriptionSuggestions(profile),
	}, nil
}

// AnalyzeDensity measures keyword occurrences against the whitespace word
// count of the profile's raw text.
func AnalyzeDensity(profile *siterank.AnalysisProfile) siterank.KeywordDensity {
	wordCount := float64(len(strings.Fields(profile.RawText)))
	if wordCount == 0 {
		return siterank.KeywordDensity{}
	}

	var total int
	for _, k := range profile.Keywords {
		total += k.Frequency
	}
	density := float64(total) / wordCount * 100

	var score float64
	switch {
	case density < MinOptimalDensity:
		score = density / MinOptimalDensity
	case density > MaxOptimalDensity:
		score = 1 - min((density-MaxOptimalDensity)/DensityDecay, 1)
	default:
		score = 1
	}

	var overUsed []string
	for _, k := range profile.Keywords {
		if float64(k.Frequency)/wordCount*100 > OverUsedShare {
			overUsed = append(overUsed, k.Word)
		}
	}

	var additions []string
	if density < MinOptimalDensity {
		for _, k := range profile.TopKeywords(3) {
			additions = append(additions, k.Word)
		}
	}

	return siterank.KeywordDensity{
		Density:              density,
		DensityScore:         score,
		IsStuffed:            density > StuffedDensity,
		RecommendedAdditions: additions,
		OverUsed:             overUsed,
	}
}

func (o *ContentOptimizer) titleSuggestions(profile *siterank.AnalysisProfile) []siterank.TitleSuggestion {
	top := profile.TopKeywords(3)
	if len(top) == 0 {
		return nil
	}

	topic := siterank.Capitalize(top[0].Word)
	second := "Business"
	if len(top) > 1 {
		second = siterank.Capitalize(top[1].Word)
	}
	now := time.Now
	if o.Now != nil {
		now = o.Now
	}

	candidates := []siterank.TitleSuggestion{
		{
			Text:      fmt.Sprintf("%s - Professional %s Solutions", topic, second),
			Score:     0.85,
			Reasoning: "Combines primary keyword with benefit-focused language",
		},
		{
			Text:      fmt.Sprintf("Need %s? Get Expert Help Today", topic),
			Score:     0.80,
			Reasoning: "Question format triggers curiosity and engagement",
		},
		{
			Text:      fmt.Sprintf("Top %s Services | Trusted Experts", topic),
			Score:     0.75,
			Reasoning: "Authority positioning with trust signal",
		},
		{
			Text:      fmt.Sprintf("%s Guide %d - Expert Resources", topic, now().Year()),
			Score:     0.78,
			Reasoning: "Year signals freshness, improves CTR",
		},
	}

	var suggestions []siterank.TitleSuggestion
	for _, c := range candidates {
		if utf8.RuneCountInString(c.Text) <= MaxSuggestedTitle {
			suggestions = append(suggestions, c)
		}
	}
	slices.SortStableFunc(suggestions, func(a, b siterank.TitleSuggestion) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return suggestions
}

func descriptionSuggestions(profile *siterank.AnalysisProfile) []siterank.DescriptionSuggestion {
	top := profile.TopKeywords(5)
	if len(top) == 0 {
		return nil
	}

	first := top[0].Word
	second, third := first, "proven"
	if len(top) > 1 {
		second = top[1].Word
	}
	if len(top) > 2 {
		third = top[2].Word
	}

	candidates := []siterank.DescriptionSuggestion{
		{
			Text: fmt.Sprintf("Looking for %s? Our %s experts deliver %s results. Get started today with a free consultation.",
				first, second, third),
			Score:             0.90,
			EmotionalTriggers: []string{"free", "expert"},
			CTAIncluded:       true,
		},
		{
			Text: fmt.Sprintf("Transform your %s with our professional %s services. Trusted by businesses worldwide for quality and reliability.",
				first, second),
			Score:             0.85,
			EmotionalTriggers: []string{"transform", "trusted"},
		},
		{
			Text: fmt.Sprintf("Join thousands who trust us for %s. %s solutions backed by expertise and dedication. Contact us now.",
				first, siterank.Capitalize(second)),
			Score:             0.82,
			EmotionalTriggers: []string{"trust", "join"},
			CTAIncluded:       true,
		},
	}

	var suggestions []siterank.DescriptionSuggestion
	for _, c := range candidates {
		if utf8.RuneCountInString(c.Text) <= MaxSuggestedDescription {
			suggestions = append(suggestions, c)
		}
	}
	slices.SortStableFunc(suggestions, func(a, b siterank.DescriptionSuggestion) int {
		return cmp.Compare(b.Score, a.Score)
	})
	return suggestions
}
