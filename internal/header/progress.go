package header

// State is the header lifecycle state.
type State int

const (
	Collapsed State = iota
	Expanding
	Expanded
	Collapsing
)

func (s State) String() string {
	switch s {
	case Collapsed:
		return "collapsed"
	case Expanding:
		return "expanding"
	case Expanded:
		return "expanded"
	case Collapsing:
		return "collapsing"
	default:
		return "unknown"
	}
}

// Terminal reports whether s is a rest point.
func (s State) Terminal() bool {
	return s == Collapsed || s == Expanded
}

// ProgressModel owns the two progress axes and the lifecycle state.
//
// At most one axis may exceed epsilon at any instant. Writes that would break
// that rule are refused rather than clamped, so the caller keeps whatever
// value was there before.
type ProgressModel struct {
	expand   float64
	minimize float64
	state    State
	epsilon  float64
}

// NewProgressModel returns a collapsed model at rest.
func NewProgressModel(epsilon float64) *ProgressModel {
	return &ProgressModel{epsilon: epsilon}
}

// Expand returns the progress toward the full-bleed photo view.
func (p *ProgressModel) Expand() float64 { return p.expand }

// Minimize returns the progress toward the compact bar.
func (p *ProgressModel) Minimize() float64 { return p.minimize }

// State returns the lifecycle state.
func (p *ProgressModel) State() State { return p.state }

// Epsilon returns the rest tolerance.
func (p *ProgressModel) Epsilon() float64 { return p.epsilon }

// SetExpand writes the expand axis. Returns false if the minimize axis is
// active and v would make both axes non-zero.
func (p *ProgressModel) SetExpand(v float64) bool {
	v = clamp01(v)
	if v > p.epsilon && p.minimize > p.epsilon {
		return false
	}
	p.expand = v
	return true
}

// SetMinimize writes the minimize axis. Returns false if the expand axis is
// active and v would make both axes non-zero.
func (p *ProgressModel) SetMinimize(v float64) bool {
	v = clamp01(v)
	if v > p.epsilon && p.expand > p.epsilon {
		return false
	}
	p.minimize = v
	return true
}

func (p *ProgressModel) setState(s State) {
	p.state = s
}

// Exclusive reports whether the mutual exclusion invariant holds.
func (p *ProgressModel) Exclusive() bool {
	return min(p.expand, p.minimize) < p.epsilon
}

// AtRest reports whether the expand axis is within epsilon of zero.
func (p *ProgressModel) AtRest() bool {
	return p.expand < p.epsilon
}

func clamp01(v float64) float64 {
	switch {
	case v < 0:
		return 0
	case v > 1:
		return 1
	default:
		return v
	}
}

func lerp(a, b, t float64) float64 {
	return a + (b-a)*t
}
