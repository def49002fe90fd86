package dom

import (
	"strconv"

	"golang.org/x/net/html"
)

// Focusables returns the element's focusable descendants in document order:
// buttons, links with an href, form controls, and anything with an explicit
// non-negative tabindex. Elements with tabindex="-1" are excluded.
//
// The scan is performed live on every call so that elements added or removed
// since the panel opened are always reflected.
func (r Ref) Focusables() []Ref {
	if r.node == nil {
		return nil
	}
	var out []Ref
	walk(r.node, func(n *html.Node) bool {
		if isFocusable(n) {
			out = append(out, Ref{node: n})
		}
		return true
	})
	return out
}

func isFocusable(n *html.Node) bool {
	if ti, ok := tabIndex(n); ok {
		return ti >= 0
	}
	switch n.Data {
	case "button", "input", "select", "textarea":
		return true
	case "a":
		return hasAttr(n, "href")
	}
	return false
}

func tabIndex(n *html.Node) (int, bool) {
	v := attrVal(n, "tabindex")
	if v == "" {
		return 0, false
	}
	ti, err := strconv.Atoi(v)
	if err != nil {
		return 0, false
	}
	return ti, true
}
