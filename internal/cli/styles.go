package cli

import "github.com/charmbracelet/lipgloss"

// palette is the set of colors one theme renders with.
type palette struct {
	fg       lipgloss.Color
	dim      lipgloss.Color
	accent   lipgloss.Color
	headerBg lipgloss.Color
	// headerScrolledBg tints the header once the page is scrolled past
	// the shading boundary.
	headerScrolledBg lipgloss.Color
	panelBg          lipgloss.Color
	heroBg           lipgloss.Color
}

var darkPalette = palette{
	fg:               lipgloss.Color("#ebdbb2"),
	dim:              lipgloss.Color("#928374"),
	accent:           lipgloss.Color("#8ec07c"),
	headerBg:         lipgloss.Color("#1d2021"),
	headerScrolledBg: lipgloss.Color("#0f172a"),
	panelBg:          lipgloss.Color("#282828"),
	heroBg:           lipgloss.Color("#3c3836"),
}

var lightPalette = palette{
	fg:               lipgloss.Color("#3c3836"),
	dim:              lipgloss.Color("#a89984"),
	accent:           lipgloss.Color("#427b58"),
	headerBg:         lipgloss.Color("#f9f5d7"),
	headerScrolledBg: lipgloss.Color("#ffffff"),
	panelBg:          lipgloss.Color("#ebdbb2"),
	heroBg:           lipgloss.Color("#d5c4a1"),
}

func activePalette(dark bool) palette {
	if dark {
		return darkPalette
	}
	return lightPalette
}

func (p palette) text() lipgloss.Style    { return lipgloss.NewStyle().Foreground(p.fg) }
func (p palette) muted() lipgloss.Style   { return lipgloss.NewStyle().Foreground(p.dim) }
func (p palette) heading() lipgloss.Style { return lipgloss.NewStyle().Foreground(p.accent).Bold(true) }

func (p palette) focusRing() lipgloss.Style {
	return lipgloss.NewStyle().Foreground(p.headerBg).Background(p.accent)
}
