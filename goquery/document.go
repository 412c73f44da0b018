// Package goquery implements the document analysis stages on top of
// goquery and cascadia selectors.
package goquery

import (
	"strings"
	"unicode/utf8"

	"github.com/PuerkitoBio/goquery"
	"github.com/andybalholm/cascadia"
	"github.com/fwojciec/siterank"
	"golang.org/x/net/html"
	"golang.org/x/text/unicode/norm"
)

// Compile compiles a CSS selector. A selector that fails to compile matches
// nothing, so a broken expression reads as an absent feature instead of
// failing the document.
func Compile(expr string) cascadia.Selector {
	sel, err := cascadia.Compile(expr)
	if err != nil {
		return func(*html.Node) bool { return false }
	}
	return sel
}

// Selectors shared by the analysis stages. Compiled once and never mutated.
var (
	selTitle            = Compile("title")
	selDescription      = Compile("meta[name='description']")
	selOpenGraph        = Compile("meta[property^='og:']")
	selTwitterCard      = Compile("meta[name^='twitter:']")
	selJSONLD           = Compile("script[type='application/ld+json']")
	selCanonical        = Compile("link[rel='canonical']")
	selViewport         = Compile("meta[name='viewport']")
	selCharset          = Compile("meta[charset]")
	selContentType      = Compile("meta[http-equiv='Content-Type']")
	selH1               = Compile("h1")
	selH2               = Compile("h2")
	selH3               = Compile("h3")
	selImage            = Compile("img")
	selImageWithAlt     = Compile("img[alt]:not([alt=''])")
	selNavLinks         = Compile("nav a, header a")
	selContentRegions   = Compile("main, article, section, .content")
	selBody             = Compile("body")
	selHTML             = Compile("html")
	selContentLanguage  = Compile("meta[http-equiv='content-language']")
	selExcludedFromText = Compile("script, style, noscript")
)

// parseDocument parses markup into a queryable document.
// Returns EPARSE if the markup is not valid UTF-8 or cannot be parsed.
func parseDocument(markup string) (*goquery.Document, error) {
	if !utf8.ValidString(markup) {
		return nil, siterank.Errorf(siterank.EPARSE, "markup is not valid UTF-8")
	}
	root, err := html.Parse(strings.NewReader(markup))
	if err != nil {
		return nil, siterank.Errorf(siterank.EPARSE, "failed to parse markup: %v", err)
	}
	return goquery.NewDocumentFromNode(root), nil
}

// visibleText returns the text of every node in sel, skipping script, style
// and noscript subtrees. Each text node is followed by a single space.
func visibleText(sel *goquery.Selection) string {
	var b strings.Builder
	for _, n := range sel.Nodes {
		writeVisibleText(&b, n)
	}
	return b.String()
}

func writeVisibleText(b *strings.Builder, n *html.Node) {
	switch n.Type {
	case html.TextNode:
		b.WriteString(n.Data)
		b.WriteByte(' ')
		return
	case html.ElementNode:
		if selExcludedFromText.Match(n) {
			return
		}
	}
	for c := n.FirstChild; c != nil; c = c.NextSibling {
		writeVisibleText(b, c)
	}
}

// firstText returns the trimmed text of the first match of sel.
func firstText(doc *goquery.Document, sel cascadia.Selector) string {
	return strings.TrimSpace(doc.FindMatcher(sel).First().Text())
}

// firstAttr returns attribute attr of the first match of sel.
func firstAttr(doc *goquery.Document, sel cascadia.Selector, attr string) (string, bool) {
	return doc.FindMatcher(sel).First().Attr(attr)
}

func exists(doc *goquery.Document, sel cascadia.Selector) bool {
	return doc.FindMatcher(sel).Length() > 0
}

// normalize applies NFKC so compatibility forms match the ASCII vocabularies.
func normalize(s string) string {
	return norm.NFKC.String(s)
}
