package header

import (
	"math"
	"time"
)

// InterceptController is implemented by the host container. While a drag
// is owned by the header, the host must not consume pointer events itself.
type InterceptController interface {
	DisallowIntercept(disallow bool)
}

// GestureSample is the state of one drag, from pointer-down to release.
type GestureSample struct {
	StartY   float64
	CurrentY float64
	LastY    float64
	Started  time.Time
	LastAt   time.Time

	// restExpanded records which rest point the drag started from.
	restExpanded bool
	maxTravel    float64
	velocity     *VelocityTracker
}

// DeltaY returns the travel since the drag started, positive downward.
func (s *GestureSample) DeltaY() float64 {
	return s.CurrentY - s.StartY
}

// Decision is the outcome of a released drag.
type Decision int

const (
	DecisionSnapBack Decision = iota
	DecisionExpand
	DecisionCollapse
)

func (d Decision) String() string {
	switch d {
	case DecisionExpand:
		return "expand"
	case DecisionCollapse:
		return "collapse"
	default:
		return "snap-back"
	}
}

// Release describes a finished drag.
type Release struct {
	Decision Decision
	DeltaY   float64
	Velocity float64
	// Tap is set when the pointer never travelled beyond the tap slop.
	Tap bool
}

// GestureAdapter converts raw pointer events into elastic drag progress and
// a release decision.
type GestureAdapter struct {
	tun       Tunables
	sample    *GestureSample
	intercept InterceptController
}

// NewGestureAdapter returns an idle adapter.
func NewGestureAdapter(t Tunables) *GestureAdapter {
	return &GestureAdapter{tun: t}
}

// SetIntercept sets the host notified when gesture ownership changes.
func (g *GestureAdapter) SetIntercept(ic InterceptController) {
	g.intercept = ic
}

// Active reports whether a drag is in progress.
func (g *GestureAdapter) Active() bool {
	return g.sample != nil
}

// Sample returns the current drag, or nil.
func (g *GestureAdapter) Sample() *GestureSample {
	return g.sample
}

func (g *GestureAdapter) begin(y float64, t time.Time, restExpanded bool) {
	vt := NewVelocityTracker(g.tun.VelocityWindow)
	vt.Add(y, t)
	g.sample = &GestureSample{
		StartY:       y,
		CurrentY:     y,
		LastY:        y,
		Started:      t,
		LastAt:       t,
		restExpanded: restExpanded,
		velocity:     vt,
	}
	if g.intercept != nil {
		g.intercept.DisallowIntercept(true)
	}
}

// move records a pointer position and returns the drag progress.
func (g *GestureAdapter) move(y float64, t time.Time) float64 {
	s := g.sample
	s.LastY = s.CurrentY
	s.CurrentY = y
	s.LastAt = t
	s.velocity.Add(y, t)
	s.maxTravel = math.Max(s.maxTravel, math.Abs(s.DeltaY()))

	if s.restExpanded {
		return 1 - ElasticProgress(-s.DeltaY(), g.tun)
	}
	return ElasticProgress(s.DeltaY(), g.tun)
}

// release closes the drag and decides where the header should settle.
func (g *GestureAdapter) release(y float64, t time.Time, progress float64, expanded bool) Release {
	s := g.sample
	if y != s.CurrentY || t.After(s.LastAt) {
		s.LastY = s.CurrentY
		s.CurrentY = y
		s.LastAt = t
		s.velocity.Add(y, t)
		s.maxTravel = math.Max(s.maxTravel, math.Abs(s.DeltaY()))
	}

	r := Release{
		DeltaY:   s.DeltaY(),
		Velocity: s.velocity.Velocity(),
		Tap:      s.maxTravel < g.tun.TapSlop,
	}
	r.Decision = Decide(g.tun, expanded, r.DeltaY, r.Velocity, progress)
	g.end()
	return r
}

func (g *GestureAdapter) end() {
	g.sample = nil
	if g.intercept != nil {
		g.intercept.DisallowIntercept(false)
	}
}

// ElasticProgress maps downward drag distance to progress with a dead zone
// and rubber-band resistance. deltaY at or below the dead zone yields
// exactly 0.
func ElasticProgress(deltaY float64, t Tunables) float64 {
	if deltaY <= t.MinPullDistance {
		return 0
	}
	adjusted := deltaY - t.MinPullDistance
	elastic := adjusted / (adjusted + t.ElasticConstant)
	return clamp01(elastic * t.ElasticScale)
}

// Decide evaluates the release table. The first matching rule wins.
func Decide(t Tunables, expanded bool, deltaY, velocity, progress float64) Decision {
	fast := math.Abs(velocity) > t.MinVelocity
	if !expanded {
		if deltaY > t.PullThreshold ||
			(progress > t.ExpandMinProgress && fast && velocity > 0) ||
			progress > t.ExpandCommitProgress {
			return DecisionExpand
		}
		return DecisionSnapBack
	}
	if deltaY < -t.PullThreshold ||
		(progress < t.CollapseMaxProgress && fast && velocity < 0) ||
		progress < t.CollapseCommitProgress {
		return DecisionCollapse
	}
	return DecisionSnapBack
}
