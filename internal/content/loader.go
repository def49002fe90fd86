// Package content loads the page being previewed: its HTML document, the
// directory its assets resolve against, and a file watcher for live reload.
package content

import (
	_ "embed"
	"fmt"
	"os"
	"path/filepath"
	"strings"

	"folio/internal/dom"
)

//go:embed page.html
var samplePage string

// Page is a loaded page: the parsed document plus where it came from.
type Page struct {
	Doc  *dom.Document
	Path string // "" when the embedded sample page is loaded
	Dir  string // base directory local assets resolve against
}

// Load reads and parses the page at path. An empty path loads the embedded
// sample page.
func Load(path string) (*Page, error) {
	if path == "" {
		doc, err := dom.ParseString(samplePage)
		if err != nil {
			return nil, fmt.Errorf("parsing embedded page: %w", err)
		}
		return &Page{Doc: doc}, nil
	}

	f, err := os.Open(path)
	if err != nil {
		return nil, fmt.Errorf("opening page: %w", err)
	}
	defer f.Close()

	doc, err := dom.Parse(f)
	if err != nil {
		return nil, fmt.Errorf("parsing %s: %w", path, err)
	}
	return &Page{Doc: doc, Path: path, Dir: filepath.Dir(path)}, nil
}

// CheckAssets resolves every image source against the page directory and
// reports the ones that don't exist. Remote and data URLs are skipped; the
// embedded sample page has no checkable assets.
func (p *Page) CheckAssets(report func(src string)) {
	if p.Dir == "" {
		return
	}
	for _, img := range p.Doc.ElementsByTag("img") {
		for _, attr := range []string{"src", "data-src"} {
			src := img.Attr(attr)
			if src == "" || isRemote(src) {
				continue
			}
			if _, err := os.Stat(filepath.Join(p.Dir, filepath.FromSlash(src))); err != nil {
				report(src)
			}
		}
	}
}

func isRemote(src string) bool {
	return strings.HasPrefix(src, "http://") ||
		strings.HasPrefix(src, "https://") ||
		strings.HasPrefix(src, "//") ||
		strings.HasPrefix(src, "data:")
}
