package header

import "math"

// Element names one visual part of the header.
type Element int

const (
	Background Element = iota
	Hero
	Avatar
	Title
	Subtitle
	ActionRow
	PullHint
	PageIndicator

	elementCount
)

var elementNames = [elementCount]string{
	"background", "hero", "avatar", "title", "subtitle", "action-row", "pull-hint", "page-indicator",
}

func (e Element) String() string {
	if e < 0 || e >= elementCount {
		return "unknown"
	}
	return elementNames[e]
}

// Elements lists every element in drawing order.
func Elements() []Element {
	out := make([]Element, 0, elementCount)
	for e := range elementCount {
		out = append(out, e)
	}
	return out
}

// Transform is the derived placement of one element, relative to its rest
// position in the default layout.
type Transform struct {
	Opacity    float64
	TranslateX float64
	TranslateY float64
	ScaleX     float64
	ScaleY     float64
}

var identity = Transform{Opacity: 1, ScaleX: 1, ScaleY: 1}

// Frame is the derived visual state for one (expand, minimize) pair.
// Frames are comparable: equal inputs give == frames.
type Frame struct {
	Extent   float64
	Elements [elementCount]Transform
}

// Get returns the transform of e.
func (f Frame) Get(e Element) Transform {
	return f.Elements[e]
}

// Rows returns the extent rounded to whole rows.
func (f Frame) Rows() int {
	return int(math.Round(f.Extent))
}

// Compute derives the frame for the given progress pair.
// It is a pure function of its arguments.
func Compute(g Geometry, expand, minimize float64) Frame {
	e := clamp01(expand)
	m := clamp01(minimize)
	eased := EaseOutCubic(e)

	var f Frame
	f.Extent = EstimateExtent(g, e, m)

	// Vertical shift that keeps bottom-anchored elements on the bottom edge
	// while expanding, and the bar contents docked while minimizing.
	expandShift := (g.ExpandedHeight - g.DefaultHeight) * e
	minimizeShift := (g.MinimizedHeight - g.DefaultHeight) * m

	bg := identity
	bg.Opacity = 1 - e
	f.Elements[Background] = bg

	hero := identity
	hero.Opacity = math.Min(1, 2*e)
	f.Elements[Hero] = hero

	avatarScale := 1 - 0.3*m
	f.Elements[Avatar] = Transform{
		Opacity: math.Max(0, 1-2*e) * (1 - m),
		ScaleX:  avatarScale,
		ScaleY:  avatarScale,
	}

	f.Elements[Title] = textTransform(g, g.TitleWidth, g.TitleRow, g.DockTitleRow, 0.2, eased, m, expandShift)
	f.Elements[Subtitle] = textTransform(g, g.SubtitleWidth, g.SubtitleRow, g.DockSubtitleRow, 0.5, eased, m, expandShift)

	actionScale := 1 - 0.1*eased
	f.Elements[ActionRow] = Transform{
		Opacity:    actionFade(m),
		TranslateX: (g.LeftMargin - centerX(g.Width, g.ActionRowWidth)) * eased,
		TranslateY: expandShift + minimizeShift,
		ScaleX:     actionScale,
		ScaleY:     actionScale,
	}

	hintScale := 1 + 0.2*math.Min(e, 0.5)
	f.Elements[PullHint] = Transform{
		Opacity:    pullHintOpacity(e),
		TranslateY: expandShift,
		ScaleX:     hintScale,
		ScaleY:     hintScale,
	}

	indicator := identity
	indicator.Opacity = pageIndicatorOpacity(e)
	f.Elements[PageIndicator] = indicator

	return f
}

// EstimateExtent returns the header height for a progress pair from the
// reference heights alone. The axes are exclusive, so this is a single
// interpolation along whichever one is active.
func EstimateExtent(g Geometry, expand, minimize float64) float64 {
	if minimize > 0 {
		return lerp(g.DefaultHeight, g.MinimizedHeight, clamp01(minimize))
	}
	return lerp(g.DefaultHeight, g.ExpandedHeight, clamp01(expand))
}

func textTransform(g Geometry, width, restRow, dockRow, shrink, eased, m, expandShift float64) Transform {
	cx := centerX(g.Width, width)
	scale := 1 - shrink*m
	return Transform{
		Opacity:    1,
		TranslateX: (g.LeftMargin-cx)*eased + (g.DockX-cx)*m,
		TranslateY: expandShift + (dockRow-restRow)*m,
		ScaleX:     scale,
		ScaleY:     scale,
	}
}

func centerX(total, width float64) float64 {
	return (total - width) / 2
}

// actionFade keeps the action row opaque until half minimized, then fades
// it out linearly by 0.8.
func actionFade(m float64) float64 {
	const start, end = 0.5, 0.8
	switch {
	case m <= start:
		return 1
	case m >= end:
		return 0
	default:
		return 1 - (m-start)/(end-start)
	}
}

// pullHintOpacity rises early in the drag and is gone by 0.8.
func pullHintOpacity(p float64) float64 {
	switch {
	case p < 0.5:
		return math.Min(1, 3*p)
	case p < 0.8:
		return math.Max(0, 1-(p-0.5)/0.3)
	default:
		return 0
	}
}

// pageIndicatorOpacity only shows once the photo view is nearly open.
func pageIndicatorOpacity(p float64) float64 {
	if p <= 0.7 {
		return 0
	}
	return math.Min(1, (p-0.7)*3.33)
}
