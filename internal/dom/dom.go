// Package dom is a small facade over golang.org/x/net/html that gives the
// behavior engine the only things it needs from a visual tree: element
// lookup, class and attribute mutation, and text access.
//
// Lookups return Ref values. A Ref may be absent (the page simply doesn't
// have that element), in which case every operation on it is a no-op. This
// replaces ad hoc nil checks at every call site.
package dom

import (
	"fmt"
	"io"
	"strings"

	"golang.org/x/net/html"
)

// Document wraps a parsed HTML page.
type Document struct {
	root *html.Node
}

// Parse reads and parses an HTML page.
func Parse(r io.Reader) (*Document, error) {
	root, err := html.Parse(r)
	if err != nil {
		return nil, fmt.Errorf("parsing page: %w", err)
	}
	return &Document{root: root}, nil
}

// ParseString parses an HTML page held in memory.
func ParseString(s string) (*Document, error) {
	return Parse(strings.NewReader(s))
}

// DocumentElement returns the <html> element.
func (d *Document) DocumentElement() Ref {
	return d.firstByTag("html")
}

// Body returns the <body> element.
func (d *Document) Body() Ref {
	return d.firstByTag("body")
}

// Title returns the page title, or "" when the page has none.
func (d *Document) Title() string {
	return d.firstByTag("title").Text()
}

// ElementByID returns the first element whose id attribute equals id.
func (d *Document) ElementByID(id string) Ref {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if attrVal(n, "id") == id {
			found = n
			return false
		}
		return true
	})
	return Ref{node: found}
}

// ElementsByClass returns every element carrying the given class.
func (d *Document) ElementsByClass(class string) []Ref {
	var out []Ref
	walk(d.root, func(n *html.Node) bool {
		if hasClass(n, class) {
			out = append(out, Ref{node: n})
		}
		return true
	})
	return out
}

// ElementsByTag returns every element with the given tag name.
func (d *Document) ElementsByTag(tag string) []Ref {
	var out []Ref
	walk(d.root, func(n *html.Node) bool {
		if n.Data == tag {
			out = append(out, Ref{node: n})
		}
		return true
	})
	return out
}

// ElementsWithAttr returns every <tag> element carrying the named attribute.
func (d *Document) ElementsWithAttr(tag, attr string) []Ref {
	var out []Ref
	walk(d.root, func(n *html.Node) bool {
		if n.Data == tag && hasAttr(n, attr) {
			out = append(out, Ref{node: n})
		}
		return true
	})
	return out
}

func (d *Document) firstByTag(tag string) Ref {
	var found *html.Node
	walk(d.root, func(n *html.Node) bool {
		if n.Data == tag {
			found = n
			return false
		}
		return true
	})
	return Ref{node: found}
}

// walk visits every element node under root in document order.
// The visitor returns false to stop the walk.
func walk(root *html.Node, visit func(*html.Node) bool) {
	var rec func(n *html.Node) bool
	rec = func(n *html.Node) bool {
		if n.Type == html.ElementNode {
			if !visit(n) {
				return false
			}
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			if !rec(c) {
				return false
			}
		}
		return true
	}
	rec(root)
}

func attrVal(n *html.Node, name string) string {
	for _, a := range n.Attr {
		if a.Key == name {
			return a.Val
		}
	}
	return ""
}

func hasAttr(n *html.Node, name string) bool {
	for _, a := range n.Attr {
		if a.Key == name {
			return true
		}
	}
	return false
}

func hasClass(n *html.Node, class string) bool {
	for _, c := range strings.Fields(attrVal(n, "class")) {
		if c == class {
			return true
		}
	}
	return false
}
