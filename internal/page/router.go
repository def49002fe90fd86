package page

import (
	"math"
	"time"
)

// scrollDuration is how long an animated in-page scroll takes.
const scrollDuration = 400 * time.Millisecond

// Router intercepts in-page anchor activation and performs an offset-aware
// smooth scroll: the target's top ends up exactly the header's rendered
// height below the viewport top.
type Router struct {
	ctx *Context

	animating bool
	from      float64
	to        float64
	start     time.Time
}

// NewRouter creates the router.
func NewRouter(ctx *Context) *Router {
	return &Router{ctx: ctx}
}

// Animating reports whether a smooth scroll is in flight.
func (r *Router) Animating() bool { return r.animating }

// Anchor resolves the fragment and starts a smooth scroll toward it from
// the given offset. Unknown fragments are a no-op.
func (r *Router) Anchor(fragment string, scrollTop int) {
	target := r.ctx.Doc.ElementByID(fragment)
	if !target.Present() {
		return
	}

	layout := r.ctx.Layout
	dest := layout.Top(target) - layout.Height(r.ctx.Refs.Header)
	maxTop := layout.DocumentHeight() - layout.ViewportHeight()
	dest = max(0, min(dest, max(0, maxTop)))

	r.from = float64(scrollTop)
	r.to = float64(dest)
	r.start = r.ctx.Clock.Now()
	r.animating = true
}

// Step advances the animation for the frame at now. It returns the new
// scroll offset and whether the offset changed. The final frame lands on
// the destination exactly.
func (r *Router) Step(now time.Time) (int, bool) {
	if !r.animating {
		return 0, false
	}

	elapsed := now.Sub(r.start)
	if elapsed >= scrollDuration {
		r.animating = false
		return int(r.to), true
	}

	t := float64(elapsed) / float64(scrollDuration)
	eased := 1 - math.Pow(1-t, 3) // ease-out cubic
	pos := r.from + (r.to-r.from)*eased
	return int(math.Round(pos)), true
}
