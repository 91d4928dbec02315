// Package layout provides pure functions for UI dimension calculations.
package layout

import "github.com/llehouerou/portrait/internal/header"

// CompactThreshold is the content area height below which the header
// switches to its compact default layout.
const CompactThreshold = 24

// ContentOpts contains the parameters needed to calculate content height.
type ContentOpts struct {
	StatusBarHeight int
	HelpHeight      int // 0 when help is hidden
}

// ContentHeight returns the rows left for the profile screen (header plus
// scroll content) after the bottom bars.
func ContentHeight(windowHeight int, opts ContentOpts) int {
	return max(windowHeight-opts.StatusBarHeight-opts.HelpHeight, 0)
}

// HeaderOpts describes what the header has to fit.
type HeaderOpts struct {
	Width      int
	AreaHeight int // rows available to the profile screen

	TitleWidth    int
	SubtitleWidth int
	Actions       int // number of action buttons
}

// Button sizes in the action row.
const (
	ActionButtonWidth = 10
	ActionButtonGap   = 1
)

// ActionRowWidth returns the width of n buttons laid out in one row,
// capped to the available width.
func ActionRowWidth(n, width int) int {
	if n <= 0 {
		return 0
	}
	w := n*ActionButtonWidth + (n-1)*ActionButtonGap
	return min(w, max(width-2, 0))
}

// IsCompact reports whether the area is too short for the regular header.
func IsCompact(areaHeight int) bool {
	return areaHeight < CompactThreshold
}

// HeaderGeometry returns the reference header layout for the given area.
//
// The expanded header shows the photo at a 1:1 pixel aspect: terminal cells
// are twice as tall as wide, so a square photo needs width/2 rows. It never
// grows past the area.
func HeaderGeometry(o HeaderOpts) header.Geometry {
	g := header.Geometry{
		Width:          float64(o.Width),
		TitleWidth:     float64(min(o.TitleWidth, o.Width)),
		SubtitleWidth:  float64(min(o.SubtitleWidth, o.Width)),
		ActionRowWidth: float64(ActionRowWidth(o.Actions, o.Width)),

		MinimizedHeight: 3,
		LeftMargin:      2,
		DockX:           4,
		DockTitleRow:    0,
		DockSubtitleRow: 1,
		BottomMargin:    1,
	}

	if IsCompact(o.AreaHeight) {
		g.DefaultHeight = 8
		g.AvatarRow = 1
		g.AvatarHeight = 2
		g.TitleRow = 3
		g.SubtitleRow = 4
		g.ActionRowHeight = 1
	} else {
		g.DefaultHeight = 12
		g.AvatarRow = 1
		g.AvatarHeight = 4
		g.TitleRow = 6
		g.SubtitleRow = 7
		g.ActionRowHeight = 3
	}

	area := float64(o.AreaHeight)
	g.DefaultHeight = min(g.DefaultHeight, area)
	g.ExpandedHeight = min(max(g.DefaultHeight, float64(o.Width/2)), area)

	return g.Normalize()
}
