package goquery

import (
	"regexp"
	"slices"
	"strings"

	"github.com/fwojciec/siterank"
)

var _ siterank.Analyzer = (*KeywordAnalyzer)(nil)

// Keyword extraction limits.
const (
	MinWordLength = 3
	MaxWords      = 50
	MaxPhrases    = 10
	MaxPhraseLen  = 4
)

var (
	wordPattern   = regexp.MustCompile(`[a-zA-Z]+`)
	phrasePattern = regexp.MustCompile(`[A-Z][a-z]+(?:\s+[A-Z][a-z]+)+`)
)

// KeywordAnalyzer ranks the words and capitalized phrases of a document.
type KeywordAnalyzer struct{}

// NewKeywordAnalyzer creates a new KeywordAnalyzer.
func NewKeywordAnalyzer() *KeywordAnalyzer {
	return &KeywordAnalyzer{}
}

// Name returns the stage identifier.
func (a *KeywordAnalyzer) Name() string {
	return "keywords"
}

// Analyze returns a profile holding the ranked keywords and the extracted
// body text.
func (a *KeywordAnalyzer) Analyze(markup string) (*siterank.AnalysisProfile, error) {
	doc, err := parseDocument(markup)
	if err != nil {
		return nil, err
	}

	var b strings.Builder
	b.WriteString(visibleText(doc.FindMatcher(selBody)))
	if title := doc.FindMatcher(selTitle).First(); title.Length() > 0 {
		b.WriteString(title.Text())
		b.WriteByte(' ')
	}
	if desc, ok := firstAttr(doc, selDescription, "content"); ok {
		b.WriteString(desc)
	}
	text := normalize(b.String())

	return &siterank.AnalysisProfile{
		Keywords: ExtractKeywords(text),
		RawText:  text,
	}, nil
}

// ExtractKeywords ranks the words of text, then appends its top phrases.
// Equal scores keep first-occurrence order.
func ExtractKeywords(text string) []siterank.Keyword {
	words := Tokenize(text)
	keywords := rank(words, func(word string, freq int) float64 {
		tf := float64(freq) / float64(max(len(words), 1))
		lengthBonus := min(float64(len(word))/10, 1)
		return tf * 100 * (1 + lengthBonus)
	})
	if len(keywords) > MaxWords {
		keywords = keywords[:MaxWords]
	}

	phrases := rank(ExtractPhrases(text), func(_ string, freq int) float64 {
		return float64(freq) * 5
	})
	if len(phrases) > MaxPhrases {
		phrases = phrases[:MaxPhrases]
	}
	for i := range phrases {
		phrases[i].IsPhrase = true
	}

	return append(keywords, phrases...)
}

// Tokenize returns the lower-cased alphabetic runs of text that are long
// enough and not stop words.
func Tokenize(text string) []string {
	var tokens []string
	for _, m := range wordPattern.FindAllString(text, -1) {
		w := strings.ToLower(m)
		if len(w) < MinWordLength {
			continue
		}
		if _, stop := stopWords[w]; stop {
			continue
		}
		tokens = append(tokens, w)
	}
	return tokens
}

// ExtractPhrases returns runs of two to four capitalized words, lower-cased.
func ExtractPhrases(text string) []string {
	var phrases []string
	for _, m := range phrasePattern.FindAllString(text, -1) {
		fields := strings.Fields(m)
		if len(fields) > MaxPhraseLen {
			continue
		}
		phrases = append(phrases, strings.ToLower(strings.Join(fields, " ")))
	}
	return phrases
}

// rank counts terms in first-occurrence order, scores them and sorts by
// descending score with a stable sort.
func rank(terms []string, score func(term string, freq int) float64) []siterank.Keyword {
	counts := make(map[string]int, len(terms))
	var order []string
	for _, t := range terms {
		if counts[t] == 0 {
			order = append(order, t)
		}
		counts[t]++
	}

	keywords := make([]siterank.Keyword, 0, len(order))
	for _, t := range order {
		keywords = append(keywords, siterank.Keyword{
			Word:      t,
			Frequency: counts[t],
			Score:     score(t, counts[t]),
		})
	}
	slices.SortStableFunc(keywords, func(a, b siterank.Keyword) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	return keywords
}
