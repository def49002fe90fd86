package dom

import (
	"strings"

	"golang.org/x/net/html"
)

// Ref is an optional reference to a single element. The zero value is
// absent: mutations are no-ops and accessors return zero values. Two Refs
// are comparable with ==; they are equal when they point at the same node.
type Ref struct {
	node *html.Node
}

// Present reports whether the reference points at an element.
func (r Ref) Present() bool { return r.node != nil }

// Tag returns the element's tag name, or "" when absent.
func (r Ref) Tag() string {
	if r.node == nil {
		return ""
	}
	return r.node.Data
}

// ID returns the element's id attribute.
func (r Ref) ID() string { return r.Attr("id") }

// Attr returns the named attribute's value, or "" when unset or absent.
func (r Ref) Attr(name string) string {
	if r.node == nil {
		return ""
	}
	return attrVal(r.node, name)
}

// HasAttr reports whether the named attribute is set.
func (r Ref) HasAttr(name string) bool {
	return r.node != nil && hasAttr(r.node, name)
}

// SetAttr sets the named attribute, replacing any existing value.
func (r Ref) SetAttr(name, value string) {
	if r.node == nil {
		return
	}
	for i, a := range r.node.Attr {
		if a.Key == name {
			r.node.Attr[i].Val = value
			return
		}
	}
	r.node.Attr = append(r.node.Attr, html.Attribute{Key: name, Val: value})
}

// RemoveAttr removes the named attribute if present.
func (r Ref) RemoveAttr(name string) {
	if r.node == nil {
		return
	}
	attrs := r.node.Attr[:0]
	for _, a := range r.node.Attr {
		if a.Key != name {
			attrs = append(attrs, a)
		}
	}
	r.node.Attr = attrs
}

// HasClass reports whether the element carries the given class.
func (r Ref) HasClass(class string) bool {
	return r.node != nil && hasClass(r.node, class)
}

// AddClass adds the given class if not already present.
func (r Ref) AddClass(class string) {
	if r.node == nil || hasClass(r.node, class) {
		return
	}
	cur := attrVal(r.node, "class")
	if cur == "" {
		r.SetAttr("class", class)
		return
	}
	r.SetAttr("class", cur+" "+class)
}

// RemoveClass removes the given class if present.
func (r Ref) RemoveClass(class string) {
	if r.node == nil {
		return
	}
	fields := strings.Fields(attrVal(r.node, "class"))
	kept := fields[:0]
	for _, c := range fields {
		if c != class {
			kept = append(kept, c)
		}
	}
	r.SetAttr("class", strings.Join(kept, " "))
}

// ToggleClass adds or removes the class depending on on.
func (r Ref) ToggleClass(class string, on bool) {
	if on {
		r.AddClass(class)
	} else {
		r.RemoveClass(class)
	}
}

// Text returns the concatenated text content of the element's subtree.
func (r Ref) Text() string {
	if r.node == nil {
		return ""
	}
	var sb strings.Builder
	var rec func(n *html.Node)
	rec = func(n *html.Node) {
		if n.Type == html.TextNode {
			sb.WriteString(n.Data)
		}
		for c := n.FirstChild; c != nil; c = c.NextSibling {
			rec(c)
		}
	}
	rec(r.node)
	return sb.String()
}

// SetText replaces the element's children with a single text node.
func (r Ref) SetText(s string) {
	if r.node == nil {
		return
	}
	for r.node.FirstChild != nil {
		r.node.RemoveChild(r.node.FirstChild)
	}
	r.node.AppendChild(&html.Node{Type: html.TextNode, Data: s})
}

// Children returns the element's direct element children.
func (r Ref) Children() []Ref {
	if r.node == nil {
		return nil
	}
	var out []Ref
	for c := r.node.FirstChild; c != nil; c = c.NextSibling {
		if c.Type == html.ElementNode {
			out = append(out, Ref{node: c})
		}
	}
	return out
}

// Contains reports whether other is r or a descendant of r.
func (r Ref) Contains(other Ref) bool {
	if r.node == nil || other.node == nil {
		return false
	}
	for n := other.node; n != nil; n = n.Parent {
		if n == r.node {
			return true
		}
	}
	return false
}
