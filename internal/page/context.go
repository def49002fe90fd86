// Package page implements the behavior layer of a single-page site: the
// modal navigation state machine with focus containment, the theme
// coordinator, the scroll-driven animation coordinator, the smooth-scroll
// router, and the page lifecycle trimmer.
//
// The engine is headless. It mutates a dom.Document and is driven entirely
// by events injected from a host (scroll, resize, clicks, keys, frames).
// Everything runs on the host's single event loop; nothing here is safe for
// concurrent use and nothing needs to be.
package page

import (
	"context"
	"log/slog"

	"folio/internal/dom"
)

// PrefStore is the durable key/value store the engine persists the theme
// preference in. Get reports ok=false when the key has never been set.
type PrefStore interface {
	Get(ctx context.Context, key string) (value string, ok bool, err error)
	Set(ctx context.Context, key, value string) error
}

// SystemSignal reports the host system's dark-mode preference and notifies
// listeners when it changes. Terminal hosts detect the value once at
// startup and never fire the listener; tests do.
type SystemSignal interface {
	Dark() bool
	Notify(fn func(dark bool))
}

// Layout answers geometry questions about the rendered page. The engine
// works in page pixels; the host decides what a pixel is.
type Layout interface {
	// Top returns the element's offset from the top of the document.
	Top(el dom.Ref) int
	// Height returns the element's rendered height.
	Height(el dom.Ref) int
	ViewportHeight() int
	DocumentHeight() int
}

// Context is the UI context injected into every component: the tracked
// element references, the collaborators the core needs from its host, and
// the current focus holder.
type Context struct {
	Doc    *dom.Document
	Refs   Refs
	Store  PrefStore
	Signal SystemSignal
	Layout Layout
	Clock  *Clock
	Log    *slog.Logger

	focused dom.Ref
}

// SetFocus transfers input focus to el. Absent references are ignored so
// that focus is never lost to a missing element.
func (c *Context) SetFocus(el dom.Ref) {
	if !el.Present() {
		return
	}
	c.focused = el
}

// Focused returns the element currently holding input focus.
func (c *Context) Focused() dom.Ref { return c.focused }
