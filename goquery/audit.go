package goquery

import (
	"encoding/json"
	"strings"

	"github.com/PuerkitoBio/goquery"
	"github.com/fwojciec/siterank"
)

var _ siterank.Analyzer = (*SeoAuditAnalyzer)(nil)

// SeoAuditAnalyzer records which SEO markup a document already carries.
type SeoAuditAnalyzer struct{}

// NewSeoAuditAnalyzer creates a new SeoAuditAnalyzer.
func NewSeoAuditAnalyzer() *SeoAuditAnalyzer {
	return &SeoAuditAnalyzer{}
}

// Name returns the stage identifier.
func (a *SeoAuditAnalyzer) Name() string {
	return "seo_audit"
}

// Analyze returns a profile holding only the audit record and the
// structured-data types declared by JSON-LD blocks.
func (a *SeoAuditAnalyzer) Analyze(markup string) (*siterank.AnalysisProfile, error) {
	doc, err := parseDocument(markup)
	if err != nil {
		return nil, err
	}

	title := normalize(firstText(doc, selTitle))
	description, _ := firstAttr(doc, selDescription, "content")
	description = normalize(strings.TrimSpace(description))

	images := doc.FindMatcher(selImage).Length()
	imagesWithAlt := doc.FindMatcher(selImageWithAlt).Length()

	return &siterank.AnalysisProfile{
		ExistingSeo: siterank.ExistingSeoAudit{
			HasTitle:         title != "",
			Title:            title,
			HasDescription:   description != "",
			Description:      description,
			HasOpenGraph:     exists(doc, selOpenGraph),
			HasTwitterCards:  exists(doc, selTwitterCard),
			HasSchema:        exists(doc, selJSONLD),
			HasCanonical:     exists(doc, selCanonical),
			HasViewport:      exists(doc, selViewport),
			HasCharset:       exists(doc, selCharset) || exists(doc, selContentType),
			H1Count:          doc.FindMatcher(selH1).Length(),
			ImagesMissingAlt: max(images-imagesWithAlt, 0),
		},
		SchemaTypes: schemaTypes(doc),
	}, nil
}

// schemaTypes collects @type values from every JSON-LD block in document
// order. Blocks that are not valid JSON are skipped.
func schemaTypes(doc *goquery.Document) []string {
	var types []string
	add := func(t string) {
		for _, existing := range types {
			if existing == t {
				return
			}
		}
		types = append(types, t)
	}

	doc.FindMatcher(selJSONLD).Each(func(_ int, s *goquery.Selection) {
		var data any
		if err := json.Unmarshal([]byte(s.Text()), &data); err != nil {
			return
		}
		for _, t := range collectTypes(data) {
			add(t)
		}
	})
	return types
}

// collectTypes reads @type from a top-level object, each object of a
// top-level array, and each member of an @graph.
func collectTypes(data any) []string {
	var types []string
	switch v := data.(type) {
	case []any:
		for _, item := range v {
			types = append(types, collectTypes(item)...)
		}
	case map[string]any:
		switch t := v["@type"].(type) {
		case string:
			types = append(types, t)
		case []any:
			for _, item := range t {
				if s, ok := item.(string); ok {
					types = append(types, s)
				}
			}
		}
		if graph, ok := v["@graph"].([]any); ok {
			types = append(types, collectTypes(graph)...)
		}
	}
	return types
}
