package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/charmbracelet/x/ansi"

	"folio/internal/dom"
	"folio/internal/page"
)

// bodyRenderer turns the document into the scrollable body, recording each
// tracked element's line range into the layout as it goes.
type bodyRenderer struct {
	pal     palette
	focused dom.Ref
	width   int
	layout  *pageLayout
	lines   []string
}

// renderBody produces the full body text and refreshes the layout geometry.
func renderBody(doc *dom.Document, refs page.Refs, pal palette, focused dom.Ref, width, viewportRows int, layout *pageLayout) string {
	layout.reset(viewportRows)

	r := &bodyRenderer{pal: pal, focused: focused, width: width, layout: layout}

	for _, sec := range doc.ElementsByTag("section") {
		r.block(sec)
	}
	for _, foot := range doc.ElementsByTag("footer") {
		r.block(foot)
	}

	layout.docRows = len(r.lines)
	return strings.Join(r.lines, "\n")
}

// block renders a section, article, or footer and records its geometry.
func (r *bodyRenderer) block(el dom.Ref) {
	start := len(r.lines)

	dimmed := el.HasClass("fade-in") && !el.HasClass("visible")
	for _, child := range el.Children() {
		r.element(child, dimmed)
	}
	r.add("", false)

	r.layout.record(el, start, len(r.lines)-start)
}

func (r *bodyRenderer) element(el dom.Ref, dimmed bool) {
	switch el.Tag() {
	case "h1":
		r.add(r.pal.heading().Render(strings.ToUpper(collapse(el.Text()))), dimmed)
	case "h2", "h3":
		r.add(r.pal.heading().Render(collapse(el.Text())), dimmed)
	case "p":
		r.paragraph(el, dimmed)
	case "ul", "ol":
		for _, li := range el.Children() {
			r.add(r.styled(dimmed).Render("• "+collapse(li.Text())), dimmed)
		}
	case "a":
		r.anchor(el, dimmed)
	case "img":
		r.image(el, dimmed)
	case "article":
		r.block(el)
	case "span":
		r.add(r.styled(dimmed).Render(collapse(el.Text())), dimmed)
	case "div":
		r.div(el, dimmed)
	default:
		for _, child := range el.Children() {
			r.element(child, dimmed)
		}
	}
}

func (r *bodyRenderer) div(el dom.Ref, dimmed bool) {
	switch {
	case el.HasClass("hero-background"):
		// The decorative layer: a band whose live transform is the visible
		// output of the parallax update.
		band := lipgloss.NewStyle().Background(r.pal.heroBg).Width(r.width).Render("")
		r.add(band, dimmed)
		if style := el.Attr("style"); style != "" {
			r.add(r.pal.muted().Render(style), dimmed)
		}
		r.layout.record(el, len(r.lines)-1, 1)
	case el.HasClass("stat"):
		r.stat(el, dimmed)
	default:
		for _, child := range el.Children() {
			r.element(child, dimmed)
		}
	}
}

// stat renders one counter line: the live counter text plus its label.
func (r *bodyRenderer) stat(el dom.Ref, dimmed bool) {
	var value, label string
	for _, child := range el.Children() {
		switch {
		case child.HasClass("counter"):
			value = collapse(child.Text())
		case child.HasClass("stat-label"):
			label = collapse(child.Text())
		}
	}
	line := r.pal.heading().Render(value) + " " + r.styled(dimmed).Render(label)
	r.add(line, dimmed)
}

func (r *bodyRenderer) paragraph(el dom.Ref, dimmed bool) {
	text := collapse(el.Text())
	if text == "" {
		return
	}
	r.add(r.styled(dimmed).Width(r.width).Render(text), dimmed)
}

func (r *bodyRenderer) anchor(el dom.Ref, dimmed bool) {
	label := "→ " + collapse(el.Text())
	style := r.styled(dimmed)
	if el == r.focused {
		style = r.pal.focusRing()
	}
	r.add(style.Render(label), dimmed)
}

func (r *bodyRenderer) image(el dom.Ref, dimmed bool) {
	alt := el.Attr("alt")
	if alt == "" {
		alt = "image"
	}
	if el.HasAttr("data-src") {
		r.add(r.pal.muted().Render("▢ "+alt+" (deferred)"), dimmed)
		return
	}
	r.add(r.pal.muted().Render("▣ "+alt+" — "+el.Attr("src")), dimmed)
}

func (r *bodyRenderer) styled(dimmed bool) lipgloss.Style {
	if dimmed {
		return r.pal.muted()
	}
	return r.pal.text()
}

// add appends a rendered block, splitting it into physical lines.
func (r *bodyRenderer) add(s string, dimmed bool) {
	if dimmed {
		// Unrevealed fade-in content renders faint, standing in for the
		// pre-reveal transparent state.
		s = r.pal.muted().Faint(true).Render(ansi.Strip(s))
	}
	r.lines = append(r.lines, strings.Split(s, "\n")...)
}

func collapse(s string) string {
	return strings.Join(strings.Fields(s), " ")
}
