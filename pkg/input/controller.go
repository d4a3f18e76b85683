package input

import (
	"github.com/go-loom/loom/pkg/dom"
)

// Controller reconciles one element property between a reactive value source
// and user-driven DOM events. Exactly one controller may be live per
// (element, property) pair; the claim is made at mount and released when the
// mount's subscription is killed.
//
// prevValue and the latest-source tracking are owned exclusively by the
// controller instance; nothing else reads or writes them.
type Controller[A comparable, B any] struct {
	el  *dom.Element
	cfg Config[A]

	// prevValue is the last value written to the DOM or accepted from
	// upstream.
	prevValue A

	// latestSource is the last value received from the upstream source this
	// mount. hasSource distinguishes it from the zero value; both reset to
	// unknown on every (re)mount because a fresh controller is built then.
	latestSource A
	hasSource    bool
}

// newController builds a controller and immediately forces the initial value
// into the DOM, so the property has a known baseline before any reactive
// value or event arrives.
func newController[A comparable, B any](el *dom.Element, cfg Config[A]) *Controller[A, B] {
	c := &Controller[A, B]{el: el, cfg: cfg}
	c.setValue(cfg.Initial, true)
	return c
}

// setValue is the core write rule. The live DOM value is read first and the
// write is skipped when it already equals next (unless forced): redundant
// writes reposition the text caret in some browsers. prevValue updates
// regardless of whether a write occurred, so values filtered out upstream
// are not mistaken for values that should be restored on the next event.
func (c *Controller[A, B]) setValue(next A, force bool) {
	live := c.cfg.Get(c.el)
	if force || live != next {
		c.cfg.Set(c.el, next)
	}
	c.prevValue = next
}

// onSourceValue handles one upstream value: record it as the latest source
// value, then push it to the DOM (non-forced).
func (c *Controller[A, B]) onSourceValue(v A) {
	c.latestSource = v
	c.hasSource = true
	c.setValue(v, false)
}

// resetAfterAccepted re-applies the authoritative value after the user's
// observer has fully run for an accepted event. If upstream chose not to
// propagate the observed value, this snaps the DOM back to the last source
// value instead of letting it drift; if upstream did propagate, the write is
// a no-op because the live value already matches.
func (c *Controller[A, B]) resetAfterAccepted() {
	if c.hasSource {
		c.setValue(c.latestSource, false)
	} else {
		c.setValue(c.prevValue, false)
	}
}

// resetAfterRejected restores prevValue after a filtered-out event. The
// upstream write path never ran, so the DOM must not diverge from the last
// accepted value.
func (c *Controller[A, B]) resetAfterRejected() {
	c.setValue(c.prevValue, false)
}
