package siterank

import "context"

// Framework identifies the tooling a site is built with.
type Framework string

// Supported frameworks.
const (
	FrameworkVanillaHTML Framework = "vanilla-html"
	FrameworkReact       Framework = "react"
	FrameworkNextJS      Framework = "nextjs"
	FrameworkVue         Framework = "vue"
	FrameworkNuxt        Framework = "nuxt"
	FrameworkSvelte      Framework = "svelte"
	FrameworkVite        Framework = "vite"
	FrameworkAngular     Framework = "angular"
	FrameworkUnknown     Framework = "unknown"
)

// InjectionTarget names the file a generator should place head markup in.
func (f Framework) InjectionTarget() string {
	switch f {
	case FrameworkReact:
		return "public/index.html"
	case FrameworkNextJS:
		return "app/layout.tsx or pages/_document.tsx"
	case FrameworkNuxt:
		return "nuxt.config.ts"
	case FrameworkSvelte:
		return "src/app.html"
	case FrameworkAngular:
		return "src/index.html"
	default:
		return "index.html"
	}
}

// Page is one document of a site. Err is set when the page could not be
// read, in which case Content is empty.
type Page struct {
	Path    string `json:"path"`
	Content string `json:"-"`
	Err     error  `json:"-"`
}

// Site is a set of pages read from one directory.
type Site struct {
	Root      string    `json:"root"`
	MainFile  string    `json:"mainFile,omitempty"`
	Framework Framework `json:"framework"`
	Pages     []*Page   `json:"pages"`

	// ContentHash fingerprints the paths and contents of all pages.
	ContentHash string `json:"contentHash,omitempty"`
}

// SiteReader loads a site from a directory.
type SiteReader interface {
	// ReadSite reads every HTML page under dir. A page or subdirectory that
	// cannot be read is kept as a Page with Err set and the walk continues.
	// Returns ENOTFOUND if dir does not exist or holds no HTML pages.
	ReadSite(ctx context.Context, dir string) (*Site, error)
}

// PageAnalysis is the outcome of analyzing one page. Exactly one of Profile
// and Err is set.
type PageAnalysis struct {
	Path    string           `json:"path"`
	Profile *AnalysisProfile `json:"profile,omitempty"`
	Err     error            `json:"-"`
	Error   string           `json:"error,omitempty"`
}

// SiteAnalysis is the outcome of analyzing every page of a site.
type SiteAnalysis struct {
	Root      string          `json:"root"`
	MainFile  string          `json:"mainFile,omitempty"`
	Framework Framework       `json:"framework"`
	Pages     []*PageAnalysis `json:"pages"`

	// Merged folds the profiles of all successfully analyzed pages in page order.
	Merged *AnalysisProfile `json:"merged"`
}

// Failed returns the pages whose analysis failed.
func (a *SiteAnalysis) Failed() []*PageAnalysis {
	var failed []*PageAnalysis
	for _, p := range a.Pages {
		if p.Err != nil || p.Error != "" {
			failed = append(failed, p)
		}
	}
	return failed
}

// SiteAnalyzer analyzes every page of a site.
type SiteAnalyzer interface {
	// AnalyzeSite analyzes each page independently. A page failure is
	// recorded on its PageAnalysis and never aborts the other pages.
	AnalyzeSite(ctx context.Context, site *Site) (*SiteAnalysis, error)
}
