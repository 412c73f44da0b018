package siterank

import (
	"fmt"
	"strings"
)

// FormatRun renders a run as plain text for terminal display.
// Sections without content are omitted.
func FormatRun(run *Run) string {
	var b strings.Builder

	fmt.Fprintf(&b, "Site: %s\n", run.Target)
	fmt.Fprintf(&b, "Framework: %s (inject into %s)\n", run.Framework, run.Framework.InjectionTarget())
	fmt.Fprintf(&b, "Category: %s\n", run.Category)
	if run.FailedCount > 0 {
		fmt.Fprintf(&b, "Pages: %d (%d failed)\n", run.PageCount, run.FailedCount)
	} else {
		fmt.Fprintf(&b, "Pages: %d\n", run.PageCount)
	}
	fmt.Fprintf(&b, "Score: %d/100\n", run.Score)

	if run.Profile != nil {
		var words []string
		for _, kw := range run.Profile.TopKeywords(10) {
			words = append(words, kw.Word)
		}
		if len(words) > 0 {
			fmt.Fprintf(&b, "Keywords: %s\n", strings.Join(words, ", "))
		}
	}

	report := run.Report
	if report == nil {
		return b.String()
	}

	if s := report.Sentiment; s != nil {
		fmt.Fprintf(&b, "Sentiment: %s (%.2f)\n", s.Label, s.Score)
	}
	if d := report.KeywordDensity; d != nil {
		fmt.Fprintf(&b, "Keyword density: %.1f%%\n", d.Density)
	}

	if len(report.Recommendations) > 0 {
		b.WriteString("\nRecommendations:\n")
		for _, rec := range report.Recommendations {
			fmt.Fprintf(&b, "  [%s] %s: %s\n", rec.Priority, rec.Category, rec.Message)
			fmt.Fprintf(&b, "      %s\n", rec.Action)
		}
	}

	if len(report.TitleSuggestions) > 0 {
		b.WriteString("\nTitle suggestions:\n")
		for _, s := range report.TitleSuggestions {
			fmt.Fprintf(&b, "  %.2f  %s\n", s.Score, s.Text)
		}
	}

	if len(report.SchemaTrends) > 0 {
		b.WriteString("\nSchema trends:\n")
		for _, t := range report.SchemaTrends {
			fmt.Fprintf(&b, "  %.2f  %s\n", t.TrendScore, t.SchemaType)
		}
	}

	return b.String()
}
