package header

import "go.uber.org/zap"

// guard protects one mutator against re-entry. A layout pass triggered by a
// write can call straight back into the same mutator; that nested call is
// queued for the next event-loop turn instead of running inline.
type guard struct {
	name string
	busy bool
}

// DeferredMsg asks the owner of a Controller to call RunDeferred.
// UI layers return it from a command so queued work runs on the next turn
// of the event loop.
type DeferredMsg struct{}

// run executes fn under g, or queues it if g is already held.
func (c *Controller) run(g *guard, fn func()) {
	if g.busy {
		c.deferred = append(c.deferred, func() { c.run(g, fn) })
		c.log.Debug("deferred re-entrant update", zap.String("mutator", g.name))
		return
	}
	g.busy = true
	defer func() { g.busy = false }()
	fn()
}

// HasDeferred reports whether work is waiting for the next turn.
func (c *Controller) HasDeferred() bool {
	return len(c.deferred) > 0
}

// RunDeferred executes the work queued so far. Work queued while draining
// waits for the following call.
func (c *Controller) RunDeferred() {
	if len(c.deferred) == 0 {
		return
	}
	pending := c.deferred
	c.deferred = nil
	for _, fn := range pending {
		fn()
	}
}
