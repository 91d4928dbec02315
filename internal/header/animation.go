package header

import "time"

// Animator interpolates a value from a start to a target over time.
// It keeps no clock of its own: callers pass the frame time.
type Animator struct {
	running  bool
	start    float64
	target   float64
	began    time.Time
	duration time.Duration
	easing   Easing
}

// Start begins a new animation, replacing any in flight.
func (a *Animator) Start(from, to float64, d time.Duration, e Easing, now time.Time) {
	if e == nil {
		e = Linear
	}
	a.running = true
	a.start = from
	a.target = to
	a.began = now
	a.duration = d
	a.easing = e
}

// Running reports whether an animation is in flight.
func (a *Animator) Running() bool { return a.running }

// Target returns the value the current animation is heading to.
func (a *Animator) Target() float64 { return a.target }

// From returns the start value of the current animation.
func (a *Animator) From() float64 { return a.start }

// Value returns the interpolated value at now and whether the animation has
// reached its end. At the end the exact target is returned.
func (a *Animator) Value(now time.Time) (float64, bool) {
	if !a.running {
		return a.target, true
	}
	if a.duration <= 0 {
		return a.target, true
	}
	elapsed := now.Sub(a.began)
	if elapsed >= a.duration {
		return a.target, true
	}
	if elapsed < 0 {
		elapsed = 0
	}
	t := float64(elapsed) / float64(a.duration)
	return a.start + (a.target-a.start)*a.easing(t), false
}

// Stop ends the animation without touching the value.
func (a *Animator) Stop() {
	a.running = false
}
