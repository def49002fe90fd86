package page

import "folio/internal/dom"

// Observer is a trigger-on-visibility primitive: it watches a set of
// elements and runs a side effect when one intersects the viewport by at
// least the configured threshold. The viewport's bottom edge is pulled up
// by marginBottom pixels so elements trigger slightly before reaching it.
//
// In one-shot mode a fired element is unobserved immediately, so no later
// visibility can re-trigger it. In continuous mode the side effect runs on
// every qualifying check and must therefore be idempotent.
type Observer struct {
	threshold    float64 // fraction of the element that must be visible
	marginBottom int     // px subtracted from the viewport's bottom edge
	once         bool
	action       func(target dom.Ref)

	targets []dom.Ref
}

// NewObserver creates an observer with the given trigger condition.
func NewObserver(threshold float64, marginBottom int, once bool, action func(dom.Ref)) *Observer {
	return &Observer{
		threshold:    threshold,
		marginBottom: marginBottom,
		once:         once,
		action:       action,
	}
}

// Observe adds a target. Absent references are ignored.
func (o *Observer) Observe(target dom.Ref) {
	if !target.Present() {
		return
	}
	o.targets = append(o.targets, target)
}

// Unobserve removes a target.
func (o *Observer) Unobserve(target dom.Ref) {
	kept := o.targets[:0]
	for _, t := range o.targets {
		if t != target {
			kept = append(kept, t)
		}
	}
	o.targets = kept
}

// Check evaluates every observed target against the current scroll offset
// and fires the side effect for those meeting the threshold.
func (o *Observer) Check(layout Layout, scrollTop int) {
	if len(o.targets) == 0 {
		return
	}

	viewTop := scrollTop
	viewBottom := scrollTop + layout.ViewportHeight() - o.marginBottom

	var fired []dom.Ref
	for _, t := range o.targets {
		if o.visibleFraction(layout, t, viewTop, viewBottom) >= o.threshold {
			fired = append(fired, t)
		}
	}
	for _, t := range fired {
		if o.once {
			o.Unobserve(t)
		}
		o.action(t)
	}
}

func (o *Observer) visibleFraction(layout Layout, t dom.Ref, viewTop, viewBottom int) float64 {
	top := layout.Top(t)
	height := layout.Height(t)
	if height <= 0 {
		// Zero-height elements count as visible when their edge is in view.
		if top >= viewTop && top < viewBottom {
			return 1
		}
		return 0
	}

	overlap := min(top+height, viewBottom) - max(top, viewTop)
	if overlap <= 0 {
		return 0
	}
	return float64(overlap) / float64(height)
}
