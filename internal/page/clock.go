package page

import (
	"time"

	"github.com/google/uuid"
)

// Clock owns the engine's deferred work: one-shot delayed tasks (keyed so
// their owners can cancel them) and the single pending-frame slot used to
// throttle scroll recomputation to one update per rendered frame.
//
// The host calls Frame on every rendered frame; tests call it with
// synthetic times. Only the event loop touches a Clock, so there is no
// locking.
type Clock struct {
	now     time.Time
	tasks   map[uuid.UUID]*clockTask
	pending func() // at most one frame-aligned update in flight
}

type clockTask struct {
	due time.Time
	fn  func()
}

// NewClock creates a Clock whose idea of "now" starts at now.
func NewClock(now time.Time) *Clock {
	return &Clock{now: now, tasks: make(map[uuid.UUID]*clockTask)}
}

// Now returns the clock's current time, advanced by each Frame call.
func (c *Clock) Now() time.Time { return c.now }

// After schedules fn to run on the first frame at or past now+d and returns
// a handle the owner can pass to Cancel.
func (c *Clock) After(d time.Duration, fn func()) uuid.UUID {
	id := uuid.New()
	c.tasks[id] = &clockTask{due: c.now.Add(d), fn: fn}
	return id
}

// Cancel drops a scheduled task. Canceling an already-fired or unknown
// handle is a no-op.
func (c *Clock) Cancel(id uuid.UUID) {
	delete(c.tasks, id)
}

// RequestFrame schedules fn for the next frame. While an update is already
// pending the request is coalesced and RequestFrame reports false.
func (c *Clock) RequestFrame(fn func()) bool {
	if c.pending != nil {
		return false
	}
	c.pending = fn
	return true
}

// Frame advances the clock to now, runs the pending frame update if any,
// then fires every due task. The pending slot is cleared before the update
// runs so the update itself may schedule the next frame.
func (c *Clock) Frame(now time.Time) {
	if now.After(c.now) {
		c.now = now
	}

	if fn := c.pending; fn != nil {
		c.pending = nil
		fn()
	}

	for id, t := range c.tasks {
		if !t.due.After(c.now) {
			delete(c.tasks, id)
			t.fn()
		}
	}
}

// Active reports whether any deferred work is outstanding.
func (c *Clock) Active() bool {
	return c.pending != nil || len(c.tasks) > 0
}
