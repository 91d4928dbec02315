package header

// ScrollEffect is what a scroll report did to the header.
type ScrollEffect int

const (
	ScrollIgnored ScrollEffect = iota
	ScrollTracked
	ScrollForcedCollapse
	// ScrollDeferred means the report arrived while a minimize update was
	// already running; it is replayed by RunDeferred.
	ScrollDeferred
)

func (e ScrollEffect) String() string {
	switch e {
	case ScrollTracked:
		return "tracked"
	case ScrollForcedCollapse:
		return "forced-collapse"
	case ScrollDeferred:
		return "deferred"
	default:
		return "ignored"
	}
}

// ScrollAdapter maps the host's scroll offset onto minimize progress.
type ScrollAdapter struct {
	tun    Tunables
	offset float64
}

// NewScrollAdapter returns an adapter that has seen offset 0.
func NewScrollAdapter(t Tunables) *ScrollAdapter {
	return &ScrollAdapter{tun: t}
}

// Offset returns the last reported scroll offset.
func (s *ScrollAdapter) Offset() float64 {
	return s.offset
}

// Record stores offset without classifying it.
func (s *ScrollAdapter) Record(offset float64) {
	s.offset = offset
}

// MinimizeFor returns the minimize progress for a scroll offset.
func (s *ScrollAdapter) MinimizeFor(offset float64) float64 {
	if s.tun.MinimizeDistance <= 0 {
		if offset > 0 {
			return 1
		}
		return 0
	}
	return clamp01(offset / s.tun.MinimizeDistance)
}

// Classify records offset and decides what it means for the header in its
// current state. It does not mutate m.
//
// An expanded header forces a collapse once content scrolls past the slop.
// A collapsed header at rest tracks the offset. Every other combination is
// ignored: transient states belong to the animator, and an active expand
// axis owns the header until it returns to rest.
func (s *ScrollAdapter) Classify(offset float64, m *ProgressModel) (ScrollEffect, float64) {
	s.Record(offset)

	switch m.State() {
	case Expanded:
		if offset > s.tun.CollapseScrollSlop {
			return ScrollForcedCollapse, 0
		}
		return ScrollIgnored, 0
	case Expanding, Collapsing:
		return ScrollIgnored, 0
	}

	if !m.AtRest() {
		return ScrollIgnored, 0
	}
	return ScrollTracked, s.MinimizeFor(offset)
}
