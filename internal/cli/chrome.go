package cli

import (
	"strings"

	"github.com/charmbracelet/lipgloss"

	"folio/internal/dom"
	"folio/internal/page"
)

// renderHeader draws the sticky header bar: brand, navigation (inline links
// on desktop widths, the menu trigger below the breakpoint), and the theme
// status. Its tint follows the engine's scrolled state.
func renderHeader(doc *dom.Document, refs page.Refs, pal palette, focused dom.Ref, width int, desktop bool) string {
	bg := pal.headerBg
	if refs.Header.HasClass("scrolled") {
		bg = pal.headerScrolledBg
	}
	bar := lipgloss.NewStyle().Background(bg).Width(width)
	on := func(s lipgloss.Style) lipgloss.Style { return s.Background(bg) }

	var parts []string

	brand := firstByClass(doc, "brand")
	parts = append(parts, on(pal.heading()).Render(" "+collapse(brand.Text())+" "))

	if desktop {
		for _, link := range refs.NavLinks {
			style := on(pal.text())
			if link == focused {
				style = pal.focusRing()
			}
			parts = append(parts, style.Render(" "+collapse(link.Text())+" "))
		}
	} else {
		label := " ≡ menu "
		style := on(pal.text())
		if refs.NavToggle.HasClass("active") {
			label = " ✕ menu "
		}
		if refs.NavToggle == focused {
			style = pal.focusRing()
		}
		parts = append(parts, style.Render(label))
	}

	parts = append(parts, on(pal.muted()).Render(" theme:"+collapse(refs.ThemeLabel.Text())+
		" system:"+collapse(refs.SystemLabel.Text())+" "))

	line := strings.Join(parts, "")
	sep := pal.muted().Render(strings.Repeat("─", max(width, 1)))
	return bar.Render(line) + "\n" + sep
}

// renderDrawer draws the open navigation panel. The panel is modal: it
// replaces the content area and the scroll lock keeps the page beneath it
// still.
func renderDrawer(refs page.Refs, pal palette, focused dom.Ref, width, height int) string {
	var rows []string

	closeStyle := pal.text()
	if refs.NavClose == focused {
		closeStyle = pal.focusRing()
	}
	rows = append(rows, closeStyle.Render("✕ close"), "")

	for _, link := range refs.NavLinks {
		style := pal.text()
		if link == focused {
			style = pal.focusRing()
		}
		rows = append(rows, style.Render(collapse(link.Text())))
	}

	for _, toggle := range refs.ThemeToggles {
		mark := "[ ]"
		if toggle.HasAttr("checked") {
			mark = "[x]"
		}
		style := pal.text()
		if toggle == focused {
			style = pal.focusRing()
		}
		rows = append(rows, "", style.Render(mark+" dark theme"))
	}

	box := lipgloss.NewStyle().
		Background(pal.panelBg).
		Padding(1, 3).
		Render(strings.Join(rows, "\n"))

	return lipgloss.Place(width, height, lipgloss.Right, lipgloss.Top, box)
}

func firstByClass(doc *dom.Document, class string) dom.Ref {
	els := doc.ElementsByClass(class)
	if len(els) == 0 {
		return dom.Ref{}
	}
	return els[0]
}
