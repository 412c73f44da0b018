package main

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/fwojciec/siterank"
	"github.com/fwojciec/siterank/etree"
	"github.com/fwojciec/siterank/fs"
)

// Output formats.
const (
	FormatText = "text"
	FormatJSON = "json"
	FormatXML  = "xml"
)

// runOutput is a run together with the details only available right after
// an analysis.
type runOutput struct {
	*siterank.Run

	Pages  []*siterank.PageAnalysis    `json:"pages,omitempty"`
	Inputs *siterank.GenerationInputs `json:"inputs,omitempty"`
}

// writeOutput renders out in format to path, or to w when path is empty.
func writeOutput(w io.Writer, path, format string, out *runOutput) error {
	var buf bytes.Buffer
	if err := render(&buf, format, out); err != nil {
		return err
	}
	if path == "" {
		_, err := w.Write(buf.Bytes())
		return err
	}
	if err := fs.WriteFile(path, buf.Bytes()); err != nil {
		return fmt.Errorf("failed to write %s: %w", path, err)
	}
	return nil
}

func render(w io.Writer, format string, out *runOutput) error {
	switch format {
	case FormatJSON:
		enc := json.NewEncoder(w)
		enc.SetIndent("", "  ")
		return enc.Encode(out)
	case FormatXML:
		return etree.WriteRun(w, out.Run)
	case FormatText, "":
		_, err := io.WriteString(w, formatText(out))
		return err
	default:
		return siterank.Errorf(siterank.EINVALID, "unknown format %q", format)
	}
}

func formatText(out *runOutput) string {
	var b strings.Builder
	if out.ID != "" {
		fmt.Fprintf(&b, "Run: %s (%s)\n", out.ID, out.CreatedAt.Format("2006-01-02 15:04"))
	}
	b.WriteString(siterank.FormatRun(out.Run))

	var failed []string
	for _, page := range out.Pages {
		if page.Err != nil || page.Error != "" {
			failed = append(failed, fmt.Sprintf("  %s: %s", page.Path, page.Error))
		}
	}
	if len(failed) > 0 {
		b.WriteString("\nFailed pages:\n")
		b.WriteString(strings.Join(failed, "\n"))
		b.WriteString("\n")
	}

	if in := out.Inputs; in != nil {
		b.WriteString("\nGeneration inputs:\n")
		fmt.Fprintf(&b, "  Title: %s\n", in.Title)
		fmt.Fprintf(&b, "  Description: %s\n", in.Description)
		if len(in.Keywords) > 0 {
			fmt.Fprintf(&b, "  Keywords: %s\n", strings.Join(in.Keywords, ", "))
		}
	}

	return b.String()
}
