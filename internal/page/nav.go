package page

import (
	"time"

	"github.com/google/uuid"

	"folio/internal/dom"
)

// NavState is the open/closed state of the off-canvas navigation panel.
type NavState int

const (
	NavClosed NavState = iota
	NavOpen
)

func (s NavState) String() string {
	if s == NavOpen {
		return "open"
	}
	return "closed"
}

const (
	// DesktopBreakpoint is the viewport width above which the off-canvas
	// panel is force-closed on resize.
	DesktopBreakpoint = 768

	// focusDelay lets the open transition begin before focus jumps to the
	// close affordance, avoiding a focus flash on elements mid-transition.
	focusDelay = 300 * time.Millisecond

	classActive   = "active"
	classNoScroll = "no-scroll"
)

// NavController owns the navigation panel state machine. While the panel is
// open it locks background scrolling and contains keyboard focus inside the
// panel.
type NavController struct {
	ctx   *Context
	state NavState

	// Pending deferred focus move, canceled if the panel closes first.
	focusTask    uuid.UUID
	hasFocusTask bool
}

// NewNavController creates the controller in the Closed state.
func NewNavController(ctx *Context) *NavController {
	return &NavController{ctx: ctx}
}

// State returns the current panel state.
func (n *NavController) State() NavState { return n.state }

// Toggle opens a closed panel and closes an open one.
func (n *NavController) Toggle() {
	if n.state == NavOpen {
		n.Close()
	} else {
		n.Open()
	}
}

// Open marks the trigger, panel, and overlay active, locks background
// scrolling, and after a short delay moves focus to the panel's close
// affordance.
func (n *NavController) Open() {
	if n.state == NavOpen {
		return
	}
	n.state = NavOpen

	refs := n.ctx.Refs
	refs.NavToggle.AddClass(classActive)
	refs.NavPanel.AddClass(classActive)
	refs.NavOverlay.AddClass(classActive)
	refs.Body.AddClass(classNoScroll)

	n.cancelFocusTask()
	n.focusTask = n.ctx.Clock.After(focusDelay, func() {
		n.hasFocusTask = false
		n.ctx.SetFocus(refs.NavClose)
	})
	n.hasFocusTask = true

	n.ctx.Log.Debug("nav opened")
}

// Close clears the active markers, restores background scrolling, cancels
// any pending deferred focus move, and returns focus to the trigger.
func (n *NavController) Close() {
	if n.state == NavClosed {
		return
	}
	n.state = NavClosed

	refs := n.ctx.Refs
	refs.NavToggle.RemoveClass(classActive)
	refs.NavPanel.RemoveClass(classActive)
	refs.NavOverlay.RemoveClass(classActive)
	refs.Body.RemoveClass(classNoScroll)

	n.cancelFocusTask()
	n.ctx.SetFocus(refs.NavToggle)

	n.ctx.Log.Debug("nav closed")
}

// HandleResize force-closes the panel when the viewport grows past the
// desktop breakpoint, where the off-canvas layout no longer applies.
func (n *NavController) HandleResize(width int) {
	if width > DesktopBreakpoint {
		n.Close()
	}
}

// HandleEscape closes an open panel.
func (n *NavController) HandleEscape() {
	if n.state == NavOpen {
		n.Close()
	}
}

// TrapFocus implements focus containment for Tab (shift=false) and
// Shift+Tab (shift=true) while the panel is open. The focusable set is
// computed live on every press. It reports whether the key was consumed;
// with no focusable descendants the trap is a no-op.
func (n *NavController) TrapFocus(shift bool) bool {
	if n.state != NavOpen {
		return false
	}
	focusables := n.ctx.Refs.NavPanel.Focusables()
	if len(focusables) == 0 {
		return false
	}

	first := focusables[0]
	last := focusables[len(focusables)-1]
	cur := n.ctx.Focused()

	if !shift && cur == last {
		n.ctx.SetFocus(first)
		return true
	}
	if shift && cur == first {
		n.ctx.SetFocus(last)
		return true
	}

	// Focus outside the panel (or mid-list): move it to the next stop so
	// containment holds regardless of where focus currently sits.
	idx := indexOf(focusables, cur)
	if idx < 0 {
		n.ctx.SetFocus(first)
		return true
	}
	if shift {
		n.ctx.SetFocus(focusables[idx-1])
	} else {
		n.ctx.SetFocus(focusables[idx+1])
	}
	return true
}

func (n *NavController) cancelFocusTask() {
	if n.hasFocusTask {
		n.ctx.Clock.Cancel(n.focusTask)
		n.hasFocusTask = false
	}
}

func indexOf(els []dom.Ref, el dom.Ref) int {
	for i, e := range els {
		if e == el {
			return i
		}
	}
	return -1
}
