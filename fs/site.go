// Package fs reads sites from the local file system and writes reports to it.
package fs

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/cespare/xxhash/v2"
	"github.com/fwojciec/siterank"
)

// Ensure SiteReader implements siterank.SiteReader at compile time.
var _ siterank.SiteReader = (*SiteReader)(nil)

// MaxDepth is the deepest level, counted from the site root, at which pages
// are read.
const MaxDepth = 5

var mainFileNames = []string{"index.html", "index.htm", "_document.tsx", "layout.tsx"}

// SiteReader reads every HTML page of a directory tree.
type SiteReader struct{}

// NewSiteReader creates a new SiteReader.
func NewSiteReader() *SiteReader {
	return &SiteReader{}
}

// ReadSite walks dir in lexical order and reads its .html and .htm files.
// Hidden directories and node_modules are skipped. Files and subdirectories
// that cannot be read are recorded as failed pages.
func (r *SiteReader) ReadSite(ctx context.Context, dir string) (*siterank.Site, error) {
	info, err := os.Stat(dir)
	if errors.Is(err, fs.ErrNotExist) {
		return nil, siterank.Errorf(siterank.ENOTFOUND, "directory not found: %s", dir)
	}
	if err != nil {
		return nil, err
	}
	if !info.IsDir() {
		return nil, siterank.Errorf(siterank.EINVALID, "not a directory: %s", dir)
	}

	site := &siterank.Site{
		Root:      dir,
		Framework: DetectFramework(dir),
	}
	digest := xxhash.New()

	err = filepath.WalkDir(dir, func(path string, d fs.DirEntry, walkErr error) error {
		if err := ctx.Err(); err != nil {
			return err
		}
		if walkErr != nil && path == dir {
			return walkErr
		}

		rel, err := filepath.Rel(dir, path)
		if err != nil {
			return err
		}
		if walkErr != nil {
			site.Pages = append(site.Pages, unreadablePage(rel, walkErr))
			return nil
		}
		depth := strings.Count(filepath.ToSlash(rel), "/") + 1

		if d.IsDir() {
			if path == dir {
				return nil
			}
			name := d.Name()
			if strings.HasPrefix(name, ".") || name == "node_modules" || depth >= MaxDepth {
				return filepath.SkipDir
			}
			return nil
		}
		if !isHTMLFile(path) {
			return nil
		}

		content, err := os.ReadFile(path)
		if err != nil {
			site.Pages = append(site.Pages, unreadablePage(rel, err))
			return nil
		}

		page := &siterank.Page{Path: filepath.ToSlash(rel), Content: string(content)}
		site.Pages = append(site.Pages, page)
		if site.MainFile == "" && isMainFile(path) {
			site.MainFile = page.Path
		}

		_, _ = digest.WriteString(page.Path)
		_, _ = digest.Write([]byte{0})
		_, _ = digest.Write(content)
		_, _ = digest.Write([]byte{0})
		return nil
	})
	if err != nil {
		return nil, err
	}

	if len(site.Pages) == 0 {
		return nil, siterank.Errorf(siterank.ENOTFOUND, "no HTML files in %s", dir)
	}
	site.ContentHash = fmt.Sprintf("%016x", digest.Sum64())

	return site, nil
}

func unreadablePage(rel string, err error) *siterank.Page {
	path := filepath.ToSlash(rel)
	return &siterank.Page{
		Path: path,
		Err:  siterank.Errorf(siterank.EINVALID, "cannot read %s: %v", path, err),
	}
}

func isHTMLFile(path string) bool {
	ext := filepath.Ext(path)
	return ext == ".html" || ext == ".htm"
}

func isMainFile(path string) bool {
	name := filepath.Base(path)
	for _, n := range mainFileNames {
		if name == n {
			return true
		}
	}
	return false
}

// DetectFramework identifies the tooling of the project in dir from its
// configuration files.
func DetectFramework(dir string) siterank.Framework {
	switch {
	case exists(filepath.Join(dir, "next.config.js")), exists(filepath.Join(dir, "next.config.mjs")):
		return siterank.FrameworkNextJS
	case exists(filepath.Join(dir, "vite.config.js")), exists(filepath.Join(dir, "vite.config.ts")):
		return siterank.FrameworkVite
	}

	pkg, err := os.ReadFile(filepath.Join(dir, "package.json"))
	if err != nil {
		return siterank.FrameworkVanillaHTML
	}
	manifest := string(pkg)
	switch {
	case strings.Contains(manifest, `"react"`):
		return siterank.FrameworkReact
	case strings.Contains(manifest, `"vue"`):
		return siterank.FrameworkVue
	case strings.Contains(manifest, `"svelte"`):
		return siterank.FrameworkSvelte
	default:
		return siterank.FrameworkUnknown
	}
}

func exists(path string) bool {
	_, err := os.Stat(path)
	return err == nil
}
