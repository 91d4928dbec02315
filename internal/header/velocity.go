package header

import "time"

type velocitySample struct {
	y float64
	t time.Time
}

// VelocityTracker estimates vertical pointer velocity over a rolling window.
// The zero value is unusable; use NewVelocityTracker.
type VelocityTracker struct {
	window  time.Duration
	samples []velocitySample
}

// NewVelocityTracker returns a tracker that keeps samples younger than window.
func NewVelocityTracker(window time.Duration) *VelocityTracker {
	return &VelocityTracker{
		window:  window,
		samples: make([]velocitySample, 0, 16),
	}
}

// Add records a pointer position. Samples older than the window, measured
// from t, are dropped.
func (v *VelocityTracker) Add(y float64, t time.Time) {
	v.samples = append(v.samples, velocitySample{y: y, t: t})

	cutoff := t.Add(-v.window)
	drop := 0
	for drop < len(v.samples)-1 && v.samples[drop].t.Before(cutoff) {
		drop++
	}
	if drop > 0 {
		v.samples = append(v.samples[:0], v.samples[drop:]...)
	}
}

// Velocity returns rows per second, positive when moving down.
// Returns 0 with fewer than two samples or no elapsed time.
func (v *VelocityTracker) Velocity() float64 {
	if len(v.samples) < 2 {
		return 0
	}
	first := v.samples[0]
	last := v.samples[len(v.samples)-1]
	dt := last.t.Sub(first.t).Seconds()
	if dt <= 0 {
		return 0
	}
	return (last.y - first.y) / dt
}
