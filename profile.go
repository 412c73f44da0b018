package siterank

import (
	"fmt"
	"slices"
)

// BusinessCategory classifies the kind of site a page belongs to.
// The zero value is BusinessUnknown, which never overwrites a known
// category during a merge.
type BusinessCategory int

// Business categories, in classification order.
const (
	BusinessUnknown BusinessCategory = iota
	BusinessService
	BusinessEcommerce
	BusinessBlog
	BusinessPortfolio
	BusinessSaaS
	BusinessLocalBusiness
	BusinessRestaurant
	BusinessAgency
	BusinessNonProfit
	BusinessEducation
	BusinessHealthcare
	BusinessRealEstate
	BusinessTechnology
)

var businessCategoryNames = [...]string{
	BusinessUnknown:       "Unknown",
	BusinessService:       "Service",
	BusinessEcommerce:     "Ecommerce",
	BusinessBlog:          "Blog",
	BusinessPortfolio:     "Portfolio",
	BusinessSaaS:          "SaaS",
	BusinessLocalBusiness: "LocalBusiness",
	BusinessRestaurant:    "Restaurant",
	BusinessAgency:        "Agency",
	BusinessNonProfit:     "NonProfit",
	BusinessEducation:     "Education",
	BusinessHealthcare:    "Healthcare",
	BusinessRealEstate:    "RealEstate",
	BusinessTechnology:    "Technology",
}

var businessSchemaTypes = [...]string{
	BusinessUnknown:       "Organization",
	BusinessService:       "ProfessionalService",
	BusinessEcommerce:     "Store",
	BusinessBlog:          "Blog",
	BusinessPortfolio:     "Person",
	BusinessSaaS:          "SoftwareApplication",
	BusinessLocalBusiness: "LocalBusiness",
	BusinessRestaurant:    "Restaurant",
	BusinessAgency:        "Organization",
	BusinessNonProfit:     "NGO",
	BusinessEducation:     "EducationalOrganization",
	BusinessHealthcare:    "MedicalOrganization",
	BusinessRealEstate:    "RealEstateAgent",
	BusinessTechnology:    "TechArticle",
}

// BusinessCategories returns every category in classification order.
func BusinessCategories() []BusinessCategory {
	categories := make([]BusinessCategory, len(businessCategoryNames))
	for i := range businessCategoryNames {
		categories[i] = BusinessCategory(i)
	}
	return categories
}

// ParseBusinessCategory returns the category with the given name.
func ParseBusinessCategory(name string) (BusinessCategory, error) {
	for i, n := range businessCategoryNames {
		if n == name {
			return BusinessCategory(i), nil
		}
	}
	return BusinessUnknown, Errorf(EINVALID, "unknown business category %q", name)
}

func (c BusinessCategory) String() string {
	if c < 0 || int(c) >= len(businessCategoryNames) {
		return fmt.Sprintf("BusinessCategory(%d)", int(c))
	}
	return businessCategoryNames[c]
}

// SchemaType returns the Schema.org type that best describes the category.
func (c BusinessCategory) SchemaType() string {
	if c < 0 || int(c) >= len(businessSchemaTypes) {
		return businessSchemaTypes[BusinessUnknown]
	}
	return businessSchemaTypes[c]
}

// MarshalText encodes the category by name.
func (c BusinessCategory) MarshalText() ([]byte, error) {
	return []byte(c.String()), nil
}

// UnmarshalText decodes a category name.
func (c *BusinessCategory) UnmarshalText(text []byte) error {
	v, err := ParseBusinessCategory(string(text))
	if err != nil {
		return err
	}
	*c = v
	return nil
}

// Keyword is a ranked term or phrase extracted from a document.
type Keyword struct {
	Word      string  `json:"word"`
	Frequency int     `json:"frequency"`
	Score     float64 `json:"score"`
	IsPhrase  bool    `json:"isPhrase"`
}

// Audit field weights used by CompletenessScore. They sum to 100.
const (
	WeightTitle        = 15
	WeightDescription  = 15
	WeightOpenGraph    = 20
	WeightTwitterCards = 15
	WeightSchema       = 20
	WeightCanonical    = 5
	WeightViewport     = 5
	WeightCharset      = 5
)

// ExistingSeoAudit records which SEO markup a document already carries.
type ExistingSeoAudit struct {
	HasTitle         bool   `json:"hasTitle"`
	Title            string `json:"title,omitempty"`
	HasDescription   bool   `json:"hasDescription"`
	Description      string `json:"description,omitempty"`
	HasOpenGraph     bool   `json:"hasOpenGraph"`
	HasTwitterCards  bool   `json:"hasTwitterCards"`
	HasSchema        bool   `json:"hasSchema"`
	HasCanonical     bool   `json:"hasCanonical"`
	HasViewport      bool   `json:"hasViewport"`
	HasCharset       bool   `json:"hasCharset"`
	H1Count          int    `json:"h1Count"`
	ImagesMissingAlt int    `json:"imagesMissingAlt"`
}

// Merge folds other into a. Presence flags are ORed, counters are summed and
// text fields take the incoming value only when it is non-empty.
func (a *ExistingSeoAudit) Merge(other ExistingSeoAudit) {
	a.HasTitle = a.HasTitle || other.HasTitle
	a.HasDescription = a.HasDescription || other.HasDescription
	a.HasOpenGraph = a.HasOpenGraph || other.HasOpenGraph
	a.HasTwitterCards = a.HasTwitterCards || other.HasTwitterCards
	a.HasSchema = a.HasSchema || other.HasSchema
	a.HasCanonical = a.HasCanonical || other.HasCanonical
	a.HasViewport = a.HasViewport || other.HasViewport
	a.HasCharset = a.HasCharset || other.HasCharset
	a.H1Count += other.H1Count
	a.ImagesMissingAlt += other.ImagesMissingAlt

	if other.Title != "" {
		a.Title = other.Title
	}
	if other.Description != "" {
		a.Description = other.Description
	}
}

// CompletenessScore returns the weighted share of present markup, 0 to 100.
func (a ExistingSeoAudit) CompletenessScore() int {
	var score int
	if a.HasTitle {
		score += WeightTitle
	}
	if a.HasDescription {
		score += WeightDescription
	}
	if a.HasOpenGraph {
		score += WeightOpenGraph
	}
	if a.HasTwitterCards {
		score += WeightTwitterCards
	}
	if a.HasSchema {
		score += WeightSchema
	}
	if a.HasCanonical {
		score += WeightCanonical
	}
	if a.HasViewport {
		score += WeightViewport
	}
	if a.HasCharset {
		score += WeightCharset
	}
	return score
}

// AnalysisProfile is the consolidated result of analyzing one document, or
// a whole site when page profiles are merged together.
type AnalysisProfile struct {
	Keywords         []Keyword        `json:"keywords"`
	BusinessCategory BusinessCategory `json:"businessCategory"`
	Language         string           `json:"language,omitempty"`
	ExistingSeo      ExistingSeoAudit `json:"existingSeo"`
	ContentSummary   string           `json:"contentSummary,omitempty"`
	SentimentScore   *float64         `json:"sentimentScore,omitempty"`
	RawText          string           `json:"rawText,omitempty"`

	// Structured-data types declared by JSON-LD blocks, in first-seen order.
	SchemaTypes []string `json:"schemaTypes,omitempty"`
}

// Merge folds other into p.
//
// Keywords are appended only when their text is not already present, so the
// earlier stage wins. Scalar fields take the incoming value only when it is
// set, so the later stage wins. The audit record merges by its own rules.
func (p *AnalysisProfile) Merge(other *AnalysisProfile) {
	if other == nil {
		return
	}

	seen := make(map[string]struct{}, len(p.Keywords)+len(other.Keywords))
	for _, kw := range p.Keywords {
		seen[kw.Word] = struct{}{}
	}
	for _, kw := range other.Keywords {
		if _, ok := seen[kw.Word]; ok {
			continue
		}
		seen[kw.Word] = struct{}{}
		p.Keywords = append(p.Keywords, kw)
	}

	if other.BusinessCategory != BusinessUnknown {
		p.BusinessCategory = other.BusinessCategory
	}
	if other.Language != "" {
		p.Language = other.Language
	}
	if other.ContentSummary != "" {
		p.ContentSummary = other.ContentSummary
	}
	if other.SentimentScore != nil {
		score := *other.SentimentScore
		p.SentimentScore = &score
	}
	if other.RawText != "" {
		p.RawText = other.RawText
	}

	p.ExistingSeo.Merge(other.ExistingSeo)

	for _, t := range other.SchemaTypes {
		if !slices.Contains(p.SchemaTypes, t) {
			p.SchemaTypes = append(p.SchemaTypes, t)
		}
	}
}

// MergeProfiles folds profiles left to right into a new profile.
// Nil profiles are skipped.
func MergeProfiles(profiles ...*AnalysisProfile) *AnalysisProfile {
	merged := &AnalysisProfile{}
	for _, p := range profiles {
		merged.Merge(p)
	}
	return merged
}

// TopKeywords returns up to n keywords ordered by descending score.
// Keywords with equal scores keep their list order.
func (p *AnalysisProfile) TopKeywords(n int) []Keyword {
	sorted := slices.Clone(p.Keywords)
	slices.SortStableFunc(sorted, func(a, b Keyword) int {
		switch {
		case a.Score > b.Score:
			return -1
		case a.Score < b.Score:
			return 1
		}
		return 0
	})
	if n < len(sorted) {
		sorted = sorted[:n]
	}
	return sorted
}

// HasSchemaType reports whether a JSON-LD block declared the given type.
func (p *AnalysisProfile) HasSchemaType(schemaType string) bool {
	return slices.Contains(p.SchemaTypes, schemaType)
}

// Validate returns an EINTERNAL error if the profile violates its invariants.
// A violation indicates a defect in a stage or reducer, not bad input.
func (p *AnalysisProfile) Validate() error {
	seen := make(map[string]struct{}, len(p.Keywords))
	for _, kw := range p.Keywords {
		if _, ok := seen[kw.Word]; ok {
			return Errorf(EINTERNAL, "duplicate keyword %q", kw.Word)
		}
		seen[kw.Word] = struct{}{}
		if kw.Frequency < 0 {
			return Errorf(EINTERNAL, "keyword %q has negative frequency", kw.Word)
		}
	}
	if p.SentimentScore != nil && (*p.SentimentScore < -1 || *p.SentimentScore > 1) {
		return Errorf(EINTERNAL, "sentiment score %v out of range", *p.SentimentScore)
	}
	if p.ExistingSeo.H1Count < 0 || p.ExistingSeo.ImagesMissingAlt < 0 {
		return Errorf(EINTERNAL, "audit counters must not be negative")
	}
	if p.BusinessCategory < 0 || int(p.BusinessCategory) >= len(businessCategoryNames) {
		return Errorf(EINTERNAL, "invalid business category %d", int(p.BusinessCategory))
	}
	return nil
}
