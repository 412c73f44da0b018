// Package scoring implements the rule-based scoring stages that turn a merged
// analysis profile into a partial optimization report.
package scoring

import (
	"strings"
	"unicode"

	"github.com/fwojciec/siterank"
)

var _ siterank.Scorer = (*SentimentScorer)(nil)

// Sentiment boost weights and caps.
const (
	PowerWordBoost        = 0.05
	MaxPowerWordBoost     = 0.2
	EmotionalTriggerBoost = 0.03
	MaxEmotionalBoost     = 0.15
)

// SentimentScorer scores the tone of a profile's title, description and
// body text against fixed word lists.
type SentimentScorer struct{}

// NewSentimentScorer creates a new SentimentScorer.
func NewSentimentScorer() *SentimentScorer {
	return &SentimentScorer{}
}

// Name returns the stage identifier.
func (s *SentimentScorer) Name() string {
	return "sentiment"
}

// Score returns a report carrying only the sentiment of the profile.
func (s *SentimentScorer) Score(profile *siterank.AnalysisProfile) (*siterank.OptimizationReport, error) {
	if profile == nil {
		return nil, siterank.Errorf(siterank.EINVALID, "profile required")
	}

	text := profile.ExistingSeo.Title + " " + profile.ExistingSeo.Description + " " + profile.RawText
	sentiment := AnalyzeSentiment(text)

	return &siterank.OptimizationReport{Sentiment: &sentiment}, nil
}

// AnalyzeSentiment scores text. Text without any words is neutral with zero
// confidence.
func AnalyzeSentiment(text string) siterank.Sentiment {
	tokens := tokenize(text)
	if len(tokens) == 0 {
		return siterank.Sentiment{Label: siterank.SentimentNeutral}
	}

	var positive, negative int
	var power, triggers, negatives []string
	for _, token := range tokens {
		if _, ok := positiveWords[token]; ok {
			positive++
		}
		if _, ok := negativeWords[token]; ok {
			negative++
			negatives = append(negatives, token)
		}
		if _, ok := powerWords[token]; ok {
			power = append(power, token)
		}
		if _, ok := emotionalTriggers[token]; ok {
			triggers = append(triggers, token)
		}
	}

	hits := positive + negative
	base := float64(positive-negative) / float64(max(hits, 1))
	boost := min(float64(len(power))*PowerWordBoost, MaxPowerWordBoost) +
		min(float64(len(triggers))*EmotionalTriggerBoost, MaxEmotionalBoost)
	score := clamp(base+boost, -1, 1)

	return siterank.Sentiment{
		Score:             score,
		Confidence:        min(float64(hits)/float64(len(tokens))*5, 1),
		Label:             siterank.LabelForScore(score),
		EmotionalTriggers: triggers,
		PowerWords:        power,
		NegativeWords:     negatives,
	}
}

// tokenize lower-cases text and splits it on anything that is neither a
// letter, a digit nor a hyphen.
func tokenize(text string) []string {
	return strings.FieldsFunc(strings.ToLower(text), func(r rune) bool {
		return !unicode.IsLetter(r) && !unicode.IsDigit(r) && r != '-'
	})
}

func clamp(v, lo, hi float64) float64 {
	return max(lo, min(v, hi))
}
