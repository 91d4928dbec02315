// Package header implements the scroll-linked expandable profile header:
// the progress model, gesture and scroll adapters, the animation driver,
// the frame transform and the spacer bridge.
//
// Nothing in this package renders. Every distance is a terminal cell count
// expressed as float64 so intermediate frames stay smooth; callers round when
// they draw.
package header

import "time"

// Tunables holds gesture thresholds and animation timings.
// All distances are in rows, velocities in rows per second.
type Tunables struct {
	// Epsilon is the progress below which an axis counts as at rest.
	Epsilon float64

	// MinPullDistance is the dead zone before a drag produces progress.
	MinPullDistance float64
	// ElasticConstant is the distance at which the rubber band gives half
	// of its asymptotic progress.
	ElasticConstant float64
	// ElasticScale stretches the rubber band so progress can reach 1
	// before the pointer reaches the screen edge.
	ElasticScale float64

	PullThreshold float64
	MinVelocity   float64

	// Release decision thresholds, expressed as expand progress.
	ExpandMinProgress      float64 // velocity-assisted expand needs at least this
	ExpandCommitProgress   float64 // expand unconditionally above this
	CollapseMaxProgress    float64 // velocity-assisted collapse needs at most this
	CollapseCommitProgress float64 // collapse unconditionally below this

	// TapSlop is the largest vertical travel still treated as a tap.
	TapSlop float64

	// MinimizeDistance is the scroll offset at which the header is fully minimized.
	MinimizeDistance float64
	// CollapseScrollSlop is the content scroll that forces an expanded header closed.
	CollapseScrollSlop float64

	VelocityWindow time.Duration

	ExpandDuration   time.Duration
	CollapseDuration time.Duration
	SnapDuration     time.Duration
	FrameInterval    time.Duration
}

// DefaultTunables returns thresholds sized for a terminal grid.
func DefaultTunables() Tunables {
	return Tunables{
		Epsilon:                0.001,
		MinPullDistance:        2,
		ElasticConstant:        10,
		ElasticScale:           1.2,
		PullThreshold:          4,
		MinVelocity:            30,
		ExpandMinProgress:      0.15,
		ExpandCommitProgress:   0.4,
		CollapseMaxProgress:    0.8,
		CollapseCommitProgress: 0.3,
		TapSlop:                1,
		MinimizeDistance:       6,
		CollapseScrollSlop:     0.5,
		VelocityWindow:         100 * time.Millisecond,
		ExpandDuration:         500 * time.Millisecond,
		CollapseDuration:       350 * time.Millisecond,
		SnapDuration:           200 * time.Millisecond,
		FrameInterval:          16 * time.Millisecond,
	}
}

// Geometry describes the reference layout the transform interpolates between.
// Rows are counted from the top edge of the header, columns from its left edge.
type Geometry struct {
	Width float64

	DefaultHeight   float64
	ExpandedHeight  float64
	MinimizedHeight float64

	// Intrinsic widths of the centred elements.
	TitleWidth     float64
	SubtitleWidth  float64
	ActionRowWidth float64

	// Rest rows in the default layout.
	AvatarRow       float64
	AvatarHeight    float64
	TitleRow        float64
	SubtitleRow     float64
	ActionRowHeight float64
	BottomMargin    float64

	// LeftMargin is where text and actions settle in the expanded layout.
	LeftMargin float64

	// Docked positions in the compact bar.
	DockX           float64
	DockTitleRow    float64
	DockSubtitleRow float64
}

// DefaultGeometry returns the reference layout for an 80x24 terminal.
func DefaultGeometry() Geometry {
	return Geometry{
		Width:           80,
		DefaultHeight:   12,
		ExpandedHeight:  24,
		MinimizedHeight: 3,
		TitleWidth:      16,
		SubtitleWidth:   12,
		ActionRowWidth:  40,
		AvatarRow:       1,
		AvatarHeight:    4,
		TitleRow:        6,
		SubtitleRow:     7,
		ActionRowHeight: 3,
		BottomMargin:    1,
		LeftMargin:      2,
		DockX:           4,
		DockTitleRow:    0,
		DockSubtitleRow: 1,
	}
}

// ActionRowTop returns the rest row of the action row's top edge.
func (g Geometry) ActionRowTop() float64 {
	return g.DefaultHeight - g.ActionRowHeight - g.BottomMargin
}

// Normalize clamps reference heights into a usable order:
// minimized <= default <= expanded.
func (g Geometry) Normalize() Geometry {
	if g.DefaultHeight < 1 {
		g.DefaultHeight = 1
	}
	if g.MinimizedHeight < 1 {
		g.MinimizedHeight = 1
	}
	if g.MinimizedHeight > g.DefaultHeight {
		g.MinimizedHeight = g.DefaultHeight
	}
	if g.ExpandedHeight < g.DefaultHeight {
		g.ExpandedHeight = g.DefaultHeight
	}
	return g
}
