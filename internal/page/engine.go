package page

import (
	"context"
	"strings"
	"time"

	"folio/internal/dom"
)

// Key is the subset of keyboard input the engine reacts to.
type Key int

const (
	KeyTab Key = iota
	KeyShiftTab
	KeyEscape
)

// Engine composes the behavior components and is the host's single entry
// point. All methods must be called from one event loop; handlers run to
// completion before the next event.
type Engine struct {
	ctx *Context

	Nav    *NavController
	Theme  *ThemeCoordinator
	Scroll *ScrollCoordinator
	Router *Router
	Trim   *Trimmer

	scrollTop int
	width     int
}

// NewEngine wires the components around the given context.
func NewEngine(ctx *Context) *Engine {
	e := &Engine{ctx: ctx}
	e.Nav = NewNavController(ctx)
	e.Theme = NewThemeCoordinator(ctx, func() {
		// Header shading depends on the applied theme.
		e.Scroll.Schedule()
	})
	e.Scroll = NewScrollCoordinator(ctx, e.Theme)
	e.Router = NewRouter(ctx)
	e.Trim = NewTrimmer(ctx)
	return e
}

// Init runs the load-time work: theme reconciliation, deferred image
// promotion, and an initial visibility pass at offset zero.
func (e *Engine) Init(ctx context.Context) {
	e.Theme.LoadSaved(ctx)
	e.Trim.PromoteImages()
	e.ctx.SetFocus(e.ctx.Refs.NavToggle)
	e.Scroll.OnScroll(e.scrollTop)
}

// ScrollTop returns the current scroll offset in page pixels.
func (e *Engine) ScrollTop() int { return e.scrollTop }

// Width returns the viewport width last reported by Resize.
func (e *Engine) Width() int { return e.width }

// Focused returns the element currently holding input focus.
func (e *Engine) Focused() dom.Ref { return e.ctx.Focused() }

// ScrollTo handles a user scroll to the given offset. Input is ignored
// while the navigation panel holds the scroll lock.
func (e *Engine) ScrollTo(top int) {
	if e.ctx.Refs.Body.HasClass(classNoScroll) {
		return
	}
	e.applyScroll(top)
}

// ScrollBy handles a relative user scroll.
func (e *Engine) ScrollBy(delta int) {
	e.ScrollTo(e.scrollTop + delta)
}

// Resize handles a viewport width change.
func (e *Engine) Resize(width int) {
	e.width = width
	e.Nav.HandleResize(width)
	// Layout shifted under the current offset; re-run the scroll pipeline.
	e.Scroll.OnScroll(e.scrollTop)
}

// Click routes an activation on the given element and reports whether the
// engine consumed it.
func (e *Engine) Click(ctx context.Context, el dom.Ref) bool {
	if !el.Present() {
		return false
	}
	refs := e.ctx.Refs

	switch el {
	case refs.NavToggle:
		e.Nav.Toggle()
		return true
	case refs.NavOverlay:
		e.Nav.Close()
		return true
	case refs.NavClose:
		e.Nav.Close()
		return true
	}

	for _, toggle := range refs.ThemeToggles {
		if el == toggle {
			e.Theme.HandleToggle(ctx, !toggle.HasAttr("checked"))
			return true
		}
	}

	for _, link := range refs.NavLinks {
		if el == link {
			e.Nav.Close()
			e.anchorFrom(el)
			return true
		}
	}

	for _, a := range refs.Anchors {
		if el == a {
			e.anchorFrom(el)
			return true
		}
	}

	return false
}

// HandleKey routes a key event and reports whether the engine consumed it.
func (e *Engine) HandleKey(k Key) bool {
	switch k {
	case KeyEscape:
		if e.Nav.State() == NavOpen {
			e.Nav.HandleEscape()
			return true
		}
	case KeyTab:
		return e.Nav.TrapFocus(false)
	case KeyShiftTab:
		return e.Nav.TrapFocus(true)
	}
	return false
}

// SetHidden forwards the page hidden/visible transition.
func (e *Engine) SetHidden(hidden bool) {
	e.Trim.SetHidden(hidden)
}

// ResourceError forwards a resource load failure.
func (e *Engine) ResourceError(src string) {
	e.Trim.ResourceError(src)
}

// Anchor starts a smooth scroll to the named fragment.
func (e *Engine) Anchor(fragment string) {
	e.Router.Anchor(fragment, e.scrollTop)
}

// Frame advances all deferred work for one rendered frame.
func (e *Engine) Frame(now time.Time) {
	e.ctx.Clock.Frame(now)

	if pos, changed := e.Router.Step(now); changed {
		e.applyScroll(pos)
	}

	if e.Scroll.CountersRunning() {
		e.Scroll.StepCounters()
	}
}

// Active reports whether the engine still needs frames.
func (e *Engine) Active() bool {
	return e.ctx.Clock.Active() || e.Router.Animating() || e.Scroll.CountersRunning()
}

func (e *Engine) applyScroll(top int) {
	maxTop := e.ctx.Layout.DocumentHeight() - e.ctx.Layout.ViewportHeight()
	top = max(0, min(top, max(0, maxTop)))
	if top == e.scrollTop {
		return
	}
	e.scrollTop = top
	e.Scroll.OnScroll(top)
}

func (e *Engine) anchorFrom(el dom.Ref) {
	href := el.Attr("href")
	if !strings.HasPrefix(href, "#") {
		return
	}
	e.Anchor(strings.TrimPrefix(href, "#"))
}
