// Package etree encodes analysis runs as XML documents.
package etree

import (
	"io"
	"strconv"
	"time"

	"github.com/beevik/etree"
	"github.com/fwojciec/siterank"
)

// WriteRun writes run to w as an indented XML document rooted at <run>.
func WriteRun(w io.Writer, run *siterank.Run) error {
	if run == nil {
		return siterank.Errorf(siterank.EINVALID, "run required")
	}

	doc := etree.NewDocument()
	doc.CreateProcInst("xml", `version="1.0" encoding="UTF-8"`)

	root := doc.CreateElement("run")
	if run.ID != "" {
		root.CreateAttr("id", run.ID)
	}
	if !run.CreatedAt.IsZero() {
		root.CreateAttr("createdAt", run.CreatedAt.UTC().Format(time.RFC3339))
	}

	addText(root, "target", run.Target)
	addText(root, "framework", string(run.Framework))
	addText(root, "category", run.Category.String())
	addText(root, "score", strconv.Itoa(run.Score))
	if run.ContentHash != "" {
		addText(root, "contentHash", run.ContentHash)
	}
	pages := root.CreateElement("pages")
	pages.CreateAttr("total", strconv.Itoa(run.PageCount))
	pages.CreateAttr("failed", strconv.Itoa(run.FailedCount))

	if run.Profile != nil {
		writeProfile(root.CreateElement("profile"), run.Profile)
	}
	if run.Report != nil {
		writeReport(root.CreateElement("report"), run.Report)
	}

	doc.Indent(2)
	_, err := doc.WriteTo(w)
	return err
}

func writeProfile(el *etree.Element, p *siterank.AnalysisProfile) {
	if p.Language != "" {
		addText(el, "language", p.Language)
	}
	if p.ContentSummary != "" {
		addText(el, "summary", p.ContentSummary)
	}

	seo := el.CreateElement("existingSeo")
	seo.CreateAttr("completeness", strconv.Itoa(p.ExistingSeo.CompletenessScore()))
	for _, check := range []struct {
		name string
		ok   bool
	}{
		{"title", p.ExistingSeo.HasTitle},
		{"description", p.ExistingSeo.HasDescription},
		{"openGraph", p.ExistingSeo.HasOpenGraph},
		{"twitterCards", p.ExistingSeo.HasTwitterCards},
		{"schema", p.ExistingSeo.HasSchema},
		{"canonical", p.ExistingSeo.HasCanonical},
		{"viewport", p.ExistingSeo.HasViewport},
		{"charset", p.ExistingSeo.HasCharset},
	} {
		seo.CreateAttr(check.name, strconv.FormatBool(check.ok))
	}
	addText(seo, "h1Count", strconv.Itoa(p.ExistingSeo.H1Count))
	addText(seo, "imagesMissingAlt", strconv.Itoa(p.ExistingSeo.ImagesMissingAlt))

	keywords := el.CreateElement("keywords")
	for _, kw := range p.TopKeywords(len(p.Keywords)) {
		k := keywords.CreateElement("keyword")
		k.CreateAttr("frequency", strconv.Itoa(kw.Frequency))
		k.CreateAttr("score", formatFloat(kw.Score))
		if kw.IsPhrase {
			k.CreateAttr("phrase", "true")
		}
		k.SetText(kw.Word)
	}
}

func writeReport(el *etree.Element, r *siterank.OptimizationReport) {
	if s := r.Sentiment; s != nil {
		sentiment := el.CreateElement("sentiment")
		sentiment.CreateAttr("label", string(s.Label))
		sentiment.CreateAttr("score", formatFloat(s.Score))
		sentiment.CreateAttr("confidence", formatFloat(s.Confidence))
	}
	if d := r.KeywordDensity; d != nil {
		density := el.CreateElement("keywordDensity")
		density.CreateAttr("density", formatFloat(d.Density))
		density.CreateAttr("score", formatFloat(d.DensityScore))
		density.CreateAttr("stuffed", strconv.FormatBool(d.IsStuffed))
	}

	recs := el.CreateElement("recommendations")
	for _, rec := range r.Recommendations {
		e := recs.CreateElement("recommendation")
		e.CreateAttr("priority", rec.Priority.String())
		e.CreateAttr("category", string(rec.Category))
		addText(e, "message", rec.Message)
		addText(e, "action", rec.Action)
	}

	titles := el.CreateElement("titleSuggestions")
	for _, s := range r.TitleSuggestions {
		e := titles.CreateElement("title")
		e.CreateAttr("score", formatFloat(s.Score))
		e.SetText(s.Text)
	}

	descriptions := el.CreateElement("descriptionSuggestions")
	for _, s := range r.DescriptionSuggestions {
		e := descriptions.CreateElement("description")
		e.CreateAttr("score", formatFloat(s.Score))
		e.CreateAttr("cta", strconv.FormatBool(s.CTAIncluded))
		e.SetText(s.Text)
	}

	trends := el.CreateElement("schemaTrends")
	for _, t := range r.SchemaTrends {
		e := trends.CreateElement("schema")
		e.CreateAttr("type", t.SchemaType)
		e.CreateAttr("score", formatFloat(t.TrendScore))
		e.CreateAttr("richSnippets", strconv.FormatBool(t.HasRichSnippets))
		e.SetText(t.Action)
	}
}

func addText(parent *etree.Element, tag, text string) {
	parent.CreateElement(tag).SetText(text)
}

func formatFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
