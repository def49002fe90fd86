package page

import "context"

// Theme preference values as persisted. An absent key means "follow the
// system signal until the user makes an explicit choice".
const (
	PrefKeyTheme = "theme"
	ThemeDark    = "dark"
	ThemeLight   = "light"

	classDarkTheme  = "dark-theme"
	attrAriaLabel   = "aria-label"
	labelToLight    = "Switch to light theme"
	labelToDark     = "Switch to dark theme"
	labelThemeDark  = "Dark"
	labelThemeLight = "Light"
)

// ThemeCoordinator applies the light/dark visual state and reconciles it
// with the stored preference and the system dark-mode signal.
type ThemeCoordinator struct {
	ctx *Context

	pref string // "", ThemeDark or ThemeLight
	dark bool   // applied theme

	// onChange lets the engine refresh theme-dependent chrome (header
	// shading) when the applied theme flips.
	onChange func()
}

// NewThemeCoordinator creates the coordinator. onChange may be nil.
func NewThemeCoordinator(ctx *Context, onChange func()) *ThemeCoordinator {
	return &ThemeCoordinator{ctx: ctx, onChange: onChange}
}

// Dark reports the currently applied theme.
func (t *ThemeCoordinator) Dark() bool { return t.dark }

// Preference returns the stored preference: ThemeDark, ThemeLight, or ""
// when the user has never made an explicit choice.
func (t *ThemeCoordinator) Preference() string { return t.pref }

// LoadSaved runs once at init: the stored preference wins; otherwise the
// live system signal decides. It also registers the system-change listener
// and seeds the system-preference label.
func (t *ThemeCoordinator) LoadSaved(ctx context.Context) {
	value, ok, err := t.ctx.Store.Get(ctx, PrefKeyTheme)
	if err != nil {
		t.ctx.Log.Warn("reading theme preference", "err", err)
	}
	if ok {
		t.pref = value
		t.apply(value == ThemeDark)
	} else {
		t.pref = ""
		t.apply(t.ctx.Signal.Dark())
	}

	t.setSystemLabel(t.ctx.Signal.Dark())
	t.ctx.Signal.Notify(t.handleSystemChange)
}

// HandleToggle reacts to an explicit user toggle: checked means dark. The
// exact choice is persisted, so the preference never reverts to unset.
func (t *ThemeCoordinator) HandleToggle(ctx context.Context, checked bool) {
	if checked {
		t.pref = ThemeDark
	} else {
		t.pref = ThemeLight
	}
	if err := t.ctx.Store.Set(ctx, PrefKeyTheme, t.pref); err != nil {
		t.ctx.Log.Warn("persisting theme preference", "err", err)
	}
	t.apply(checked)
}

// handleSystemChange follows the system only while no explicit preference
// is stored; otherwise it only refreshes the informational label.
func (t *ThemeCoordinator) handleSystemChange(dark bool) {
	t.setSystemLabel(dark)
	if t.pref == "" {
		t.apply(dark)
	}
}

// apply reflects the theme as a class on the document root and keeps every
// toggle control, its accessible label, and the visible theme label
// mutually consistent.
func (t *ThemeCoordinator) apply(dark bool) {
	t.dark = dark
	refs := t.ctx.Refs

	refs.Root.ToggleClass(classDarkTheme, dark)

	for _, toggle := range refs.ThemeToggles {
		if dark {
			toggle.SetAttr("checked", "")
			toggle.SetAttr(attrAriaLabel, labelToLight)
		} else {
			toggle.RemoveAttr("checked")
			toggle.SetAttr(attrAriaLabel, labelToDark)
		}
	}

	if dark {
		refs.ThemeLabel.SetText(labelThemeDark)
	} else {
		refs.ThemeLabel.SetText(labelThemeLight)
	}

	if t.onChange != nil {
		t.onChange()
	}
}

func (t *ThemeCoordinator) setSystemLabel(dark bool) {
	if dark {
		t.ctx.Refs.SystemLabel.SetText(labelThemeDark)
	} else {
		t.ctx.Refs.SystemLabel.SetText(labelThemeLight)
	}
}
