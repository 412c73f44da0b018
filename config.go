package siterank

import (
	"fmt"
	"slices"
	"strings"
	"unicode"
	"unicode/utf8"
)

// Address is a postal address used in structured data.
type Address struct {
	Street     string `json:"street"`
	City       string `json:"city"`
	State      string `json:"state"`
	PostalCode string `json:"postalCode"`
	Country    string `json:"country"`
}

// SiteConfig describes the site a generator writes markup for. The analysis
// core only reads it to build generation inputs.
type SiteConfig struct {
	SiteName             string   `json:"siteName"`
	SiteURL              string   `json:"siteUrl"`
	DefaultImage         string   `json:"defaultImage,omitempty"`
	TwitterHandle        string   `json:"twitterHandle,omitempty"`
	FacebookAppID        string   `json:"facebookAppId,omitempty"`
	ContactEmail         string   `json:"contactEmail,omitempty"`
	Phone                string   `json:"phone,omitempty"`
	Address              *Address `json:"address,omitempty"`
	TitleOverride        string   `json:"titleOverride,omitempty"`
	DescriptionOverride  string   `json:"descriptionOverride,omitempty"`
	ExtraKeywords        []string `json:"extraKeywords,omitempty"`
	Locale               string   `json:"locale"`
	GenerateCanonical    bool     `json:"generateCanonical"`
	MaxTitleLength       int      `json:"maxTitleLength"`
	MaxDescriptionLength int      `json:"maxDescriptionLength"`
}

// Site configuration defaults.
const (
	DefaultLocale               = "en_US"
	DefaultMaxTitleLength       = 60
	DefaultMaxDescriptionLength = 160
)

// NewSiteConfig returns a SiteConfig with defaults applied.
func NewSiteConfig() *SiteConfig {
	return &SiteConfig{
		Locale:               DefaultLocale,
		GenerateCanonical:    true,
		MaxTitleLength:       DefaultMaxTitleLength,
		MaxDescriptionLength: DefaultMaxDescriptionLength,
	}
}

// Validate returns an error if the configuration contains invalid fields.
func (c *SiteConfig) Validate() error {
	if c.MaxTitleLength <= 0 {
		return Errorf(EINVALID, "max title length must be positive")
	}
	if c.MaxDescriptionLength <= 0 {
		return Errorf(EINVALID, "max description length must be positive")
	}
	if c.TwitterHandle != "" && strings.HasPrefix(c.TwitterHandle, "@") {
		return Errorf(EINVALID, "twitter handle must not include @")
	}
	return nil
}

// GenerationInputs are the title, description and keywords a markup
// generator should use for a profile.
type GenerationInputs struct {
	Title       string   `json:"title"`
	Description string   `json:"description"`
	Keywords    []string `json:"keywords"`
}

// GenerationInputs picks the title and description for profile. An override
// wins over existing markup, which wins over generated text. Both are
// truncated to the configured limits.
func (c *SiteConfig) GenerationInputs(profile *AnalysisProfile) GenerationInputs {
	return GenerationInputs{
		Title:       c.title(profile),
		Description: c.description(profile),
		Keywords:    c.keywords(profile),
	}
}

func (c *SiteConfig) title(profile *AnalysisProfile) string {
	if c.TitleOverride != "" {
		return Truncate(c.TitleOverride, c.MaxTitleLength)
	}
	if profile.ExistingSeo.Title != "" {
		return Truncate(profile.ExistingSeo.Title, c.MaxTitleLength)
	}

	var words []string
	for _, kw := range profile.TopKeywords(3) {
		words = append(words, Capitalize(kw.Word))
	}
	if len(words) == 0 {
		return Truncate(c.SiteName, c.MaxTitleLength)
	}
	return Truncate(fmt.Sprintf("%s | %s", strings.Join(words, " - "), c.SiteName), c.MaxTitleLength)
}

func (c *SiteConfig) description(profile *AnalysisProfile) string {
	if c.DescriptionOverride != "" {
		return Truncate(c.DescriptionOverride, c.MaxDescriptionLength)
	}
	if profile.ExistingSeo.Description != "" {
		return Truncate(profile.ExistingSeo.Description, c.MaxDescriptionLength)
	}
	if profile.ContentSummary != "" {
		return Truncate(profile.ContentSummary, c.MaxDescriptionLength)
	}

	var words []string
	for _, kw := range profile.TopKeywords(5) {
		words = append(words, kw.Word)
	}
	desc := fmt.Sprintf("%s offers %s. Professional solutions for your needs.", c.SiteName, strings.Join(words, ", "))
	return Truncate(desc, c.MaxDescriptionLength)
}

func (c *SiteConfig) keywords(profile *AnalysisProfile) []string {
	var keywords []string
	for _, kw := range profile.TopKeywords(10) {
		keywords = append(keywords, kw.Word)
	}
	for _, kw := range c.ExtraKeywords {
		if !slices.Contains(keywords, kw) {
			keywords = append(keywords, kw)
		}
	}
	return keywords
}

// Truncate shortens s to at most maxLen characters, breaking at the last
// space when there is one, and appends "...". Strings within the limit are
// returned unchanged.
func Truncate(s string, maxLen int) string {
	if utf8.RuneCountInString(s) <= maxLen {
		return s
	}
	cut := string([]rune(s)[:maxLen])
	if i := strings.LastIndex(cut, " "); i >= 0 {
		cut = cut[:i]
	}
	return cut + "..."
}

// Capitalize upper-cases the first letter of s.
func Capitalize(s string) string {
	r, size := utf8.DecodeRuneInString(s)
	if size == 0 {
		return s
	}
	return string(unicode.ToUpper(r)) + s[size:]
}
