package header

import (
	"time"

	"go.uber.org/zap"
)

// Controller composes the progress model, the adapters, the animator and the
// spacer bridge. Every method must be called from the single UI goroutine.
type Controller struct {
	tun Tunables
	geo Geometry

	model   *ProgressModel
	gesture *GestureAdapter
	scroll  *ScrollAdapter
	anim    Animator
	bridge  *SpacerBridge

	frame   Frame
	laidOut bool

	expandGuard guard
	scrollGuard guard
	spacerGuard guard
	deferred    []func()

	log *zap.Logger
}

// Option configures a Controller.
type Option func(*Controller)

// WithLogger sets the logger used for state transitions.
func WithLogger(l *zap.Logger) Option {
	return func(c *Controller) {
		if l != nil {
			c.log = l
		}
	}
}

// WithSpacerSink sets the host spacer.
func WithSpacerSink(s SpacerSink) Option {
	return func(c *Controller) { c.bridge.SetSink(s) }
}

// WithIntercept sets the host notified of gesture ownership.
func WithIntercept(ic InterceptController) Option {
	return func(c *Controller) { c.gesture.SetIntercept(ic) }
}

// New returns a collapsed controller. The geometry is treated as a reference
// estimate until Layout is called.
func New(t Tunables, g Geometry, opts ...Option) *Controller {
	c := &Controller{
		tun:         t,
		geo:         g.Normalize(),
		model:       NewProgressModel(t.Epsilon),
		gesture:     NewGestureAdapter(t),
		scroll:      NewScrollAdapter(t),
		bridge:      NewSpacerBridge(nil),
		expandGuard: guard{name: "expand"},
		scrollGuard: guard{name: "minimize"},
		spacerGuard: guard{name: "spacer"},
		log:         zap.NewNop(),
	}
	for _, opt := range opts {
		opt(c)
	}
	c.recompute()
	return c
}

// SetSpacerSink replaces the host spacer and publishes the current extent.
func (c *Controller) SetSpacerSink(s SpacerSink) {
	c.bridge.SetSink(s)
	c.syncSpacer()
}

// SetIntercept replaces the host notified of gesture ownership.
func (c *Controller) SetIntercept(ic InterceptController) {
	c.gesture.SetIntercept(ic)
}

// Layout applies measured geometry. Until the first call, the spacer is fed
// from the reference estimate.
func (c *Controller) Layout(g Geometry) {
	c.geo = g.Normalize()
	c.laidOut = true
	c.recompute()
}

// Geometry returns the geometry in use.
func (c *Controller) Geometry() Geometry { return c.geo }

// Tunables returns the thresholds in use.
func (c *Controller) Tunables() Tunables { return c.tun }

// Frame returns the frame for the current progress.
func (c *Controller) Frame() Frame { return c.frame }

// State returns the lifecycle state.
func (c *Controller) State() State { return c.model.State() }

// IsExpanded reports whether the header rests in the photo view.
func (c *Controller) IsExpanded() bool { return c.model.State() == Expanded }

// ExpandProgress returns the expand axis.
func (c *Controller) ExpandProgress() float64 { return c.model.Expand() }

// MinimizeProgress returns the minimize axis.
func (c *Controller) MinimizeProgress() float64 { return c.model.Minimize() }

// SpacerHeight returns the last height published to the host.
func (c *Controller) SpacerHeight() int { return c.bridge.Height() }

// Animating reports whether the animator is in flight.
func (c *Controller) Animating() bool { return c.anim.Running() }

// Dragging reports whether a drag owns the pointer.
func (c *Controller) Dragging() bool { return c.gesture.Active() }

// PointerDown starts a drag when the header is at a rest point and y falls
// inside the header. Returns true if the drag was claimed.
func (c *Controller) PointerDown(y float64, now time.Time) bool {
	if y < 0 || y >= c.frame.Extent {
		return false
	}
	return c.begin(y, now)
}

// Handoff starts a drag on behalf of the host container, which detected an
// overscroll at its top edge. No bounds check is made.
func (c *Controller) Handoff(y float64, now time.Time) bool {
	return c.begin(y, now)
}

func (c *Controller) begin(y float64, now time.Time) bool {
	if c.gesture.Active() || !c.model.State().Terminal() {
		return false
	}
	c.gesture.begin(y, now, c.model.State() == Expanded)
	c.log.Debug("drag started", zap.Float64("y", y), zap.Stringer("state", c.model.State()))
	return true
}

// PointerMove feeds drag progress straight into the expand axis.
// Returns false if no drag is active.
func (c *Controller) PointerMove(y float64, now time.Time) bool {
	if !c.gesture.Active() {
		return false
	}
	c.setExpand(c.gesture.move(y, now))
	return true
}

// PointerUp ends the drag and hands the decided target to the animator.
func (c *Controller) PointerUp(y float64, now time.Time) (Release, bool) {
	if !c.gesture.Active() {
		return Release{}, false
	}
	expanded := c.model.State() == Expanded
	r := c.gesture.release(y, now, c.model.Expand(), expanded)
	c.log.Debug("drag released",
		zap.Stringer("decision", r.Decision),
		zap.Float64("delta", r.DeltaY),
		zap.Float64("velocity", r.Velocity),
		zap.Bool("tap", r.Tap))
	c.settle(r.Decision, now)
	return r, true
}

// Cancel abandons the drag and springs back to the rest point.
func (c *Controller) Cancel(now time.Time) {
	if !c.gesture.Active() {
		return
	}
	c.gesture.end()
	c.settle(DecisionSnapBack, now)
}

func (c *Controller) settle(d Decision, now time.Time) {
	switch d {
	case DecisionExpand:
		if c.AnimateTo(1, c.tun.ExpandDuration, Decelerate, now) {
			return
		}
		// Minimized headers cannot open; fall back to the rest point.
		c.AnimateTo(0, c.tun.SnapDuration, AccelerateDecelerate, now)
	case DecisionCollapse:
		c.AnimateTo(0, c.tun.CollapseDuration, AccelerateDecelerate, now)
	default:
		rest := 0.0
		if c.model.State() == Expanded {
			rest = 1
		}
		c.AnimateTo(rest, c.tun.SnapDuration, AccelerateDecelerate, now)
	}
}

// Expand animates to the photo view. Returns false if already there, if
// the header is minimized or while a drag owns the pointer.
func (c *Controller) Expand(now time.Time) bool {
	if c.gesture.Active() {
		return false
	}
	switch c.model.State() {
	case Expanded, Expanding:
		return false
	}
	return c.AnimateTo(1, c.tun.ExpandDuration, Decelerate, now)
}

// Collapse animates back to the default header. Returns false while a drag
// owns the pointer.
func (c *Controller) Collapse(now time.Time) bool {
	if c.gesture.Active() {
		return false
	}
	switch c.model.State() {
	case Collapsing:
		return false
	case Collapsed:
		if c.model.AtRest() {
			return false
		}
	}
	return c.AnimateTo(0, c.tun.CollapseDuration, AccelerateDecelerate, now)
}

// Toggle expands a collapsed header and collapses an expanded one.
func (c *Controller) Toggle(now time.Time) bool {
	if c.gesture.Active() {
		return false
	}
	switch c.model.State() {
	case Expanded, Expanding:
		return c.Collapse(now)
	default:
		return c.Expand(now)
	}
}

// AnimateTo drives the expand axis to target (0 or 1; other values round to
// the nearer one). An animation in flight is replaced, starting from its
// value at now. Returns false while a drag owns the pointer, or if target
// is 1 while the header is minimized.
func (c *Controller) AnimateTo(target float64, d time.Duration, e Easing, now time.Time) bool {
	if c.gesture.Active() {
		return false
	}
	if target >= 0.5 {
		target = 1
	} else {
		target = 0
	}
	if target == 1 && c.model.Minimize() > c.model.Epsilon() {
		return false
	}
	if c.anim.Running() {
		v, _ := c.anim.Value(now)
		c.anim.Stop()
		c.setExpand(v)
	}

	from := c.model.Expand()
	if from == target {
		c.finish(target)
		return true
	}

	c.anim.Start(from, target, d, e, now)
	if target == 1 {
		c.setState(Expanding)
	} else {
		c.setState(Collapsing)
	}
	return true
}

// Tick advances the animation to now. Returns true while frames are still
// needed.
func (c *Controller) Tick(now time.Time) bool {
	if !c.anim.Running() {
		return false
	}
	v, done := c.anim.Value(now)
	if done {
		c.finish(c.anim.Target())
		return false
	}
	c.setExpand(v)
	return true
}

// finish lands exactly on target and enters the matching terminal state.
func (c *Controller) finish(target float64) {
	c.anim.Stop()
	c.setExpand(target)
	if target >= 1 {
		c.setState(Expanded)
		return
	}
	c.setState(Collapsed)
	// Minimize tracking resumes from wherever the content was left.
	c.OnScroll(c.scroll.Offset(), time.Time{})
}

func (c *Controller) setState(s State) {
	prev := c.model.State()
	if prev == s {
		return
	}
	c.model.setState(s)
	c.log.Debug("header state", zap.Stringer("from", prev), zap.Stringer("to", s))
}

// OnScroll receives the host scroll offset in rows. While a drag owns the
// pointer the offset is only recorded.
func (c *Controller) OnScroll(offset float64, now time.Time) ScrollEffect {
	if c.gesture.Active() {
		c.scroll.Record(offset)
		return ScrollIgnored
	}
	effect := ScrollIgnored
	ran := false
	c.run(&c.scrollGuard, func() {
		ran = true
		var v float64
		effect, v = c.scroll.Classify(offset, c.model)
		switch effect {
		case ScrollForcedCollapse:
			c.log.Debug("content scrolled while expanded, collapsing", zap.Float64("offset", offset))
			c.Collapse(now)
		case ScrollTracked:
			if c.model.SetMinimize(v) {
				c.recompute()
			}
		}
	})
	if !ran {
		return ScrollDeferred
	}
	return effect
}

func (c *Controller) setExpand(v float64) {
	c.run(&c.expandGuard, func() {
		if c.model.SetExpand(v) {
			c.recompute()
		}
	})
}

func (c *Controller) recompute() {
	c.frame = Compute(c.geo, c.model.Expand(), c.model.Minimize())
	c.syncSpacer()
}

func (c *Controller) syncSpacer() {
	c.run(&c.spacerGuard, func() {
		measured := 0
		if c.laidOut {
			measured = c.frame.Rows()
		}
		c.bridge.Sync(measured, c.geo, c.model.Expand(), c.model.Minimize())
	})
}
