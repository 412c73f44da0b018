package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/siterank"
)

var _ siterank.Analyzer = (*BusinessAnalyzer)(nil)

// Summary limits.
const (
	MinSummarySentence  = 20
	MaxSummarySentence  = 200
	MaxSummarySentences = 3
)

// BusinessAnalyzer classifies a document's business category and detects
// its language and a short content summary.
type BusinessAnalyzer struct{}

// NewBusinessAnalyzer creates a new BusinessAnalyzer.
func NewBusinessAnalyzer() *BusinessAnalyzer {
	return &BusinessAnalyzer{}
}

// Name returns the stage identifier.
func (a *BusinessAnalyzer) Name() string {
	return "business_category"
}

// Analyze returns a profile holding the business category, language and
// content summary.
func (a *BusinessAnalyzer) Analyze(markup string) (*siterank.AnalysisProfile, error) {
	doc, err := parseDocument(markup)
	if err != nil {
		return nil, err
	}

	text := signalText(doc)

	return &siterank.AnalysisProfile{
		BusinessCategory: Classify(text),
		Language:         detectLanguage(doc),
		ContentSummary:   Summarize(text),
	}, nil
}

// signalText concatenates the title, meta description, headings, navigation
// link text and main content regions, lower-cased.
func signalText(doc *goquery.Document) string {
	var b strings.Builder

	if title := doc.FindMatcher(selTitle).First(); title.Length() > 0 {
		b.WriteString(title.Text())
		b.WriteByte(' ')
	}
	if desc, ok := firstAttr(doc, selDescription, "content"); ok {
		b.WriteString(desc)
		b.WriteByte(' ')
	}
	for _, sel := range []cascadia.Selector{selH1, selH2, selH3, selNavLinks, selContentRegions} {
		doc.FindMatcher(sel).Each(func(_ int, s *goquery.Selection) {
			b.WriteString(visibleText(s))
		})
	}

	return strings.ToLower(normalize(b.String()))
}

// CategoryScores returns the indicator score of every category for the
// lower-cased text. Each indicator found scores one point plus a bonus of
// one point per two repeated occurrences.
func CategoryScores(text string) map[siterank.BusinessCategory]int {
	scores := make(map[siterank.BusinessCategory]int, len(categoryIndicators))
	for category, indicators := range categoryIndicators {
		var score int
		for _, term := range indicators {
			n := strings.Count(text, term)
			if n == 0 {
				continue
			}
			score += 1 + (n-1)/2
		}
		scores[category] = score
	}
	return scores
}

// Classify returns the category with the strictly highest score for text.
// Ties and texts with no indicators resolve to BusinessUnknown.
func Classify(text string) siterank.BusinessCategory {
	scores := CategoryScores(text)

	best, bestScore, tied := siterank.BusinessUnknown, 0, false
	for _, category := range siterank.BusinessCategories() {
		score := scores[category]
		switch {
		case score > bestScore:
			best, bestScore, tied = category, score, false
		case score == bestScore && score > 0:
			tied = true
		}
	}
	if tied {
		return siterank.BusinessUnknown
	}
	return best
}

// detectLanguage reads the root lang attribute, then a content-language meta
// declaration, dropping any regional subtag.
func detectLanguage(doc *goquery.Document) string {
	if lang, ok := firstAttr(doc, selHTML, "lang"); ok {
		return primarySubtag(lang)
	}
	if lang, ok := firstAttr(doc, selContentLanguage, "content"); ok {
		return primarySubtag(lang)
	}
	return ""
}

func primarySubtag(lang string) string {
	primary, _, _ := strings.Cut(strings.TrimSpace(lang), "-")
	return primary
}

// Summarize returns up to three sentences of text whose trimmed length is
// strictly between the summary limits, joined with ". ".
func Summarize(text string) string {
	var sentences []string
	for _, s := range strings.FieldsFunc(text, isSentenceEnd) {
		s = strings.TrimSpace(s)
		n := utf8.RuneCountInString(s)
		if n <= MinSummarySentence || n >= MaxSummarySentence {
			continue
		}
		sentences = append(sentences, s)
		if len(sentences) == MaxSummarySentences {
			break
		}
	}
	return strings.Join(sentences, ". ")
}

func isSentenceEnd(r rune) bool {
	return r == '.' || r == '!' || r == '?'
}
