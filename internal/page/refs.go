package page

import (
	"strings"

	"folio/internal/dom"
)

// Selector contract consumed from the page. Every element is optional;
// a page missing one simply doesn't get that behavior.
const (
	idNavToggle   = "nav-toggle"
	idNavMenu     = "nav-menu"
	idNavOverlay  = "nav-overlay"
	idNavClose    = "nav-close"
	idStats       = "stats"
	idThemeLabel  = "theme-label"
	idSystemLabel = "system-theme-label"

	classNavLink     = "nav-link"
	classThemeToggle = "theme-toggle"
	classHeroLayer   = "hero-background"
	classCounter     = "counter"
	classFadeIn      = "fade-in"
)

// Refs holds the tracked element references resolved once at startup.
type Refs struct {
	Root   dom.Ref // <html>
	Body   dom.Ref
	Header dom.Ref

	NavToggle  dom.Ref
	NavPanel   dom.Ref
	NavOverlay dom.Ref
	NavClose   dom.Ref
	NavLinks   []dom.Ref

	ThemeToggles []dom.Ref
	ThemeLabel   dom.Ref
	SystemLabel  dom.Ref

	Hero     dom.Ref
	Stats    dom.Ref
	Counters []dom.Ref
	Reveals  []dom.Ref

	DeferredImages []dom.Ref
	Anchors        []dom.Ref // in-page anchors present at resolve time
}

// ResolveRefs looks up every tracked element in the document.
func ResolveRefs(doc *dom.Document) Refs {
	r := Refs{
		Root:   doc.DocumentElement(),
		Body:   doc.Body(),
		Header: first(doc.ElementsByTag("header")),

		NavToggle:  doc.ElementByID(idNavToggle),
		NavPanel:   doc.ElementByID(idNavMenu),
		NavOverlay: doc.ElementByID(idNavOverlay),
		NavClose:   doc.ElementByID(idNavClose),
		NavLinks:   doc.ElementsByClass(classNavLink),

		ThemeToggles: doc.ElementsByClass(classThemeToggle),
		ThemeLabel:   doc.ElementByID(idThemeLabel),
		SystemLabel:  doc.ElementByID(idSystemLabel),

		Hero:     first(doc.ElementsByClass(classHeroLayer)),
		Stats:    doc.ElementByID(idStats),
		Counters: doc.ElementsByClass(classCounter),
		Reveals:  doc.ElementsByClass(classFadeIn),

		DeferredImages: doc.ElementsWithAttr("img", "data-src"),
	}

	for _, a := range doc.ElementsByTag("a") {
		if strings.HasPrefix(a.Attr("href"), "#") {
			r.Anchors = append(r.Anchors, a)
		}
	}

	return r
}

func first(els []dom.Ref) dom.Ref {
	if len(els) == 0 {
		return dom.Ref{}
	}
	return els[0]
}
