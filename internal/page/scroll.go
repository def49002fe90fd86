package page

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"folio/internal/dom"
)

const (
	revealThreshold = 0.10
	revealMargin    = 50 // px pulled up from the viewport's bottom edge

	counterThreshold = 0.50
	counterDuration  = 2000 * time.Millisecond
	frameInterval    = 16 * time.Millisecond

	headerScrollBoundary = 100

	parallaxTranslateFactor = 0.5
	parallaxRotateFactor    = 0.02

	classVisible  = "visible"
	classScrolled = "scrolled"

	headerStyleDark  = "background: rgba(15, 23, 42, 0.95); backdrop-filter: blur(10px)"
	headerStyleLight = "background: rgba(255, 255, 255, 0.95); backdrop-filter: blur(10px)"
)

// counter animates a numeric stat from 0 toward its target with fixed-step
// increments sized to finish in counterDuration at the nominal frame rate.
type counter struct {
	target  dom.Ref
	goal    int
	step    float64
	value   float64
	running bool
	done    bool
}

func (c *counter) stepOnce() {
	if !c.running {
		return
	}
	c.value += c.step
	if c.value >= float64(c.goal) {
		c.running = false
		c.done = true
		c.target.SetText(strconv.Itoa(c.goal) + "+")
		return
	}
	c.target.SetText(strconv.Itoa(int(math.Ceil(c.value))) + "+")
}

// ScrollCoordinator owns the three scroll-driven behaviors: fade-in reveal
// on first visibility, the one-shot counter animation, and the
// frame-throttled parallax/header-shading update.
type ScrollCoordinator struct {
	ctx   *Context
	theme *ThemeCoordinator

	reveals  *Observer
	stats    *Observer
	counters []*counter

	scrollTop int
}

// NewScrollCoordinator builds the observers from the tracked references.
func NewScrollCoordinator(ctx *Context, theme *ThemeCoordinator) *ScrollCoordinator {
	s := &ScrollCoordinator{ctx: ctx, theme: theme}

	// Already-revealed nodes marked again are harmless; never unmarked.
	s.reveals = NewObserver(revealThreshold, revealMargin, false, func(t dom.Ref) {
		t.AddClass(classVisible)
	})
	for _, t := range ctx.Refs.Reveals {
		s.reveals.Observe(t)
	}

	// The stats container is unobserved on first fire, so re-entering the
	// viewport never restarts the counts.
	s.stats = NewObserver(counterThreshold, revealMargin, true, func(dom.Ref) {
		s.startCounters()
	})
	s.stats.Observe(ctx.Refs.Stats)

	steps := float64(counterDuration / frameInterval)
	for _, el := range ctx.Refs.Counters {
		goal, err := strconv.Atoi(el.Attr("data-target"))
		if err != nil || goal <= 0 {
			ctx.Log.Warn("counter has no usable data-target", "id", el.ID())
			continue
		}
		s.counters = append(s.counters, &counter{
			target: el,
			goal:   goal,
			step:   float64(goal) / steps,
		})
	}

	return s
}

// OnScroll runs the visibility observers for the new offset and schedules
// one frame-aligned parallax/header update. Repeated calls before the next
// frame coalesce into that single pending update.
func (s *ScrollCoordinator) OnScroll(scrollTop int) {
	s.scrollTop = scrollTop
	s.reveals.Check(s.ctx.Layout, scrollTop)
	s.stats.Check(s.ctx.Layout, scrollTop)
	s.Schedule()
}

// Schedule requests a frame-aligned chrome update if none is pending.
func (s *ScrollCoordinator) Schedule() {
	s.ctx.Clock.RequestFrame(s.update)
}

// update recomputes the parallax transform and the header shading. It runs
// at most once per rendered frame.
func (s *ScrollCoordinator) update() {
	refs := s.ctx.Refs

	translate := float64(s.scrollTop) * parallaxTranslateFactor
	rotate := float64(s.scrollTop) * parallaxRotateFactor
	refs.Hero.SetAttr("style",
		fmt.Sprintf("transform: translateY(%.1fpx) rotate(%.2fdeg)", translate, rotate))

	if s.scrollTop > headerScrollBoundary {
		refs.Header.AddClass(classScrolled)
		if s.theme.Dark() {
			refs.Header.SetAttr("style", headerStyleDark)
		} else {
			refs.Header.SetAttr("style", headerStyleLight)
		}
	} else {
		refs.Header.RemoveClass(classScrolled)
		refs.Header.RemoveAttr("style")
	}
}

// startCounters begins all counter animations. The terminal done flag keeps
// a second trigger from ever restarting a finished count.
func (s *ScrollCoordinator) startCounters() {
	for _, c := range s.counters {
		if c.done || c.running {
			continue
		}
		c.running = true
		c.target.SetText("0+")
	}
	s.ctx.Log.Debug("counters started", "n", len(s.counters))
}

// StepCounters advances every running counter by one frame.
func (s *ScrollCoordinator) StepCounters() {
	for _, c := range s.counters {
		c.stepOnce()
	}
}

// CountersRunning reports whether any counter still needs frames.
func (s *ScrollCoordinator) CountersRunning() bool {
	for _, c := range s.counters {
		if c.running {
			return true
		}
	}
	return false
}
