package profileheader

import (
	"math"

	"github.com/llehouerou/portrait/internal/header"
	"github.com/llehouerou/portrait/internal/ui/layout"
)

// rect is a cell rectangle.
type rect struct {
	X, Y, W, H int
}

func (r rect) contains(x, y int) bool {
	return x >= r.X && y >= r.Y && x < r.X+r.W && y < r.Y+r.H
}

// placement is where each element lands for the current frame, in cells.
type placement struct {
	frame header.Frame
	rows  int

	avatar   rect
	title    pos
	subtitle pos
	buttons  []rect
	hintRow  int
}

type pos struct {
	X, Y float64
}

// place derives cell positions from the current frame.
func (m Model) place() placement {
	f := m.ctrl.Frame()
	g := m.ctrl.Geometry()
	p := placement{frame: f, rows: f.Rows()}

	av := f.Get(header.Avatar)
	ah := max(int(math.Round(g.AvatarHeight*av.ScaleY)), 1)
	aw := ah * 2
	cy := g.AvatarRow + g.AvatarHeight/2 + av.TranslateY
	p.avatar = rect{
		X: int(math.Round((g.Width-float64(aw))/2 + av.TranslateX)),
		Y: int(math.Round(cy - float64(ah)/2)),
		W: aw,
		H: ah,
	}

	t := f.Get(header.Title)
	p.title = pos{X: (g.Width-g.TitleWidth)/2 + t.TranslateX, Y: g.TitleRow + t.TranslateY}
	st := f.Get(header.Subtitle)
	p.subtitle = pos{X: (g.Width-g.SubtitleWidth)/2 + st.TranslateX, Y: g.SubtitleRow + st.TranslateY}

	ar := f.Get(header.ActionRow)
	if n := len(m.subject.ActionLabels()); n > 0 && ar.Opacity > 0 {
		bw := max(int(math.Round(layout.ActionButtonWidth*ar.ScaleX)), 3)
		x := (g.Width-g.ActionRowWidth)/2 + ar.TranslateX
		y := int(math.Round(g.ActionRowTop() + ar.TranslateY))
		for i := range n {
			p.buttons = append(p.buttons, rect{
				X: int(math.Round(x)) + i*(bw+layout.ActionButtonGap),
				Y: y,
				W: bw,
				H: int(g.ActionRowHeight),
			})
		}
	}

	p.hintRow = p.rows - 1
	return p
}

// HitKind names the chrome element under a tap.
type HitKind int

const (
	HitNone HitKind = iota
	HitBack
	HitMenu
	HitAvatar
	HitButton
	HitPhotoLeft
	HitPhotoRight
)

// Hit is the result of a hit test.
type Hit struct {
	Kind  HitKind
	Label string // button label for HitButton
}

// HitTest resolves cell (x, y) against the header chrome for the current
// frame. Back and menu sit in the corners of the top row; photo halves
// only count while the photo view is open.
func (m Model) HitTest(x, y int) Hit {
	w := m.Width()
	p := m.place()
	if y < 0 || y >= p.rows || x < 0 || x >= w {
		return Hit{}
	}

	if y == 0 {
		switch {
		case x <= 2:
			return Hit{Kind: HitBack}
		case x >= w-3:
			return Hit{Kind: HitMenu}
		}
	}

	if m.ctrl.IsExpanded() {
		if x < w/2 {
			return Hit{Kind: HitPhotoLeft}
		}
		return Hit{Kind: HitPhotoRight}
	}

	if p.frame.Get(header.Avatar).Opacity > 0 && p.avatar.contains(x, y) {
		return Hit{Kind: HitAvatar}
	}

	labels := m.subject.ActionLabels()
	for i, b := range p.buttons {
		if b.contains(x, y) {
			return Hit{Kind: HitButton, Label: labels[i]}
		}
	}
	return Hit{}
}
