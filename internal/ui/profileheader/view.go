package profileheader

import (
	"math"
	"strings"

	"github.com/charmbracelet/lipgloss"

	"github.com/llehouerou/portrait/internal/header"
	"github.com/llehouerou/portrait/internal/icons"
	"github.com/llehouerou/portrait/internal/profile"
	"github.com/llehouerou/portrait/internal/ui/canvas"
	"github.com/llehouerou/portrait/internal/ui/gallery"
	"github.com/llehouerou/portrait/internal/ui/render"
	"github.com/llehouerou/portrait/internal/ui/styles"
)

const (
	hintPull    = "Pull to view photo"
	hintRelease = "Release to expand"
)

// View renders the header at its current extent.
func (m Model) View() string {
	return strings.Join(m.Lines(), "\n")
}

// Lines renders the header as one string per row.
func (m Model) Lines() []string {
	if m.Width() <= 0 {
		return nil
	}
	p := m.place()
	if p.rows <= 0 {
		return nil
	}
	cv := canvas.New(m.Width(), p.rows, styles.T().BgBase)

	m.drawBackground(cv, p)
	m.drawAvatar(cv, p)
	m.drawText(cv, p)
	m.drawActions(cv, p)
	m.drawHint(cv, p)
	m.drawIndicator(cv, p)
	m.drawChrome(cv)

	return cv.Lines()
}

// drawBackground lays the photo down first and the gradient over it; the
// gradient fades out as the photo fades in.
func (m Model) drawBackground(cv *canvas.Canvas, p placement) {
	t := styles.T()
	hero := p.frame.Get(header.Hero).Opacity
	if hero > 0 {
		m.drawHero(cv, p.rows)
	}

	alpha := math.Max(p.frame.Get(header.Background).Opacity, 1-hero)
	for y, c := range styles.VerticalGradient(p.rows, t.HeaderTop, t.HeaderBottom) {
		cv.Tint(0, y, cv.Width(), 1, c, alpha)
	}
}

// drawHero fills the header with the current photo, cropped evenly top and
// bottom while the header is shorter than the expanded height.
func (m Model) drawHero(cv *canvas.Canvas, rows int) {
	full := int(m.ctrl.Geometry().ExpandedHeight)
	px, ok := m.gallery.Pixels(cv.Width(), full)
	if !ok {
		m.drawPlaceholder(cv, rect{W: cv.Width(), H: rows}, render.Spaced(m.subject.Initials()))
		return
	}
	off := max((full-rows)/2, 0)
	drawPixels(cv, px, rect{W: cv.Width(), H: rows}, off)
}

// drawPixels blits px into r, starting at terminal row off of the photo.
// px is sampled nearest-neighbour when r is smaller than the photo.
func drawPixels(cv *canvas.Canvas, px *gallery.Pixels, r rect, off int) {
	sx := float64(px.Cols) / float64(max(r.W, 1))
	for y := range r.H {
		top := (y + off) * 2
		for x := range r.W {
			col := int(float64(x) * sx)
			cv.HalfBlock(r.X+x, r.Y+y, px.At(col, top), px.At(col, top+1))
		}
	}
}

func (m Model) drawPlaceholder(cv *canvas.Canvas, r rect, label string) {
	tone := styles.Tone(m.subject.Name)
	cv.Fill(r.X, r.Y, r.W, r.H, tone)
	cv.Text(float64(r.X), float64(r.Y+r.H/2), render.Center(label, r.W), styles.T().OnPhoto, true, 1)
}

func (m Model) drawAvatar(cv *canvas.Canvas, p placement) {
	op := p.frame.Get(header.Avatar).Opacity
	if op <= 0 {
		return
	}
	a := p.avatar
	under := cv.At(a.X+a.W/2, a.Y+a.H/2).BG

	rest := m.ctrl.Geometry().AvatarHeight
	cols, rows := avatarSize(rest)
	if px, ok := m.gallery.Pixels(cols, rows); ok {
		drawScaled(cv, px, a)
	} else {
		label := m.subject.Initials()
		if a.H < 2 {
			label = string([]rune(label)[:1])
		}
		m.drawPlaceholder(cv, a, label)
	}
	cv.Tint(a.X, a.Y, a.W, a.H, under, 1-op)
}

// drawScaled fits the whole of px into r.
func drawScaled(cv *canvas.Canvas, px *gallery.Pixels, r rect) {
	sx := float64(px.Cols) / float64(max(r.W, 1))
	sy := float64(px.Rows) / float64(max(r.H*2, 1))
	for y := range r.H {
		for x := range r.W {
			col := int(float64(x) * sx)
			top := int(float64(y*2) * sy)
			bottom := int(float64(y*2+1) * sy)
			cv.HalfBlock(r.X+x, r.Y+y, px.At(col, top), px.At(col, bottom))
		}
	}
}

// textColor moves from the gradient text color to the on-photo color as
// the photo view opens.
func (m Model) textColor(base lipgloss.Color) lipgloss.Color {
	return styles.Blend(base, styles.T().OnPhoto, m.ctrl.ExpandProgress())
}

func (m Model) drawText(cv *canvas.Canvas, p placement) {
	t := styles.T()
	limit := max(cv.Width()-textMargin/2, 1)

	tt := p.frame.Get(header.Title)
	title := m.title()
	bold := tt.ScaleX >= 0.95
	cv.Text(p.title.X, p.title.Y, render.Truncate(title, limit-int(p.title.X)), m.textColor(t.FgBase), bold, tt.Opacity)

	st := p.frame.Get(header.Subtitle)
	sub := m.subtitle()
	fg := t.FgMuted
	if m.subject.Online && m.subject.Kind == profile.User {
		fg = t.Secondary
	}
	cv.Text(p.subtitle.X, p.subtitle.Y, render.Truncate(sub, limit-int(p.subtitle.X)), m.textColor(fg), false, st.Opacity)
}

func (m Model) drawActions(cv *canvas.Canvas, p placement) {
	ar := p.frame.Get(header.ActionRow)
	if ar.Opacity <= 0 {
		return
	}
	t := styles.T()
	labels := m.subject.ActionLabels()
	for i, b := range p.buttons {
		cv.Tint(b.X, b.Y, b.W, b.H, t.BgCursor, 0.85*ar.Opacity)
		mid := b.Y + b.H/2
		cv.Text(float64(b.X), float64(mid), render.Center(labels[i], b.W), t.Primary, false, ar.Opacity)
	}
}

func (m Model) drawHint(cv *canvas.Canvas, p placement) {
	h := p.frame.Get(header.PullHint)
	if h.Opacity <= 0 {
		return
	}
	text := hintPull
	if m.ctrl.ExpandProgress() >= m.ctrl.Tunables().ExpandCommitProgress {
		text = hintRelease
	}
	bold := h.ScaleX > 1.05
	if h.ScaleX >= 1.08 {
		text = render.Spaced(text)
	}
	cv.Text(0, float64(p.hintRow), render.Center(text, cv.Width()), styles.T().OnPhoto, bold, h.Opacity)
}

func (m Model) drawIndicator(cv *canvas.Canvas, p placement) {
	n := m.gallery.Len()
	op := p.frame.Get(header.PageIndicator).Opacity
	if n < 2 || op <= 0 {
		return
	}
	dots := make([]string, n)
	for i := range dots {
		dots[i] = icons.Page(i == m.gallery.Index())
	}
	cv.Text(0, 1, render.Center(strings.Join(dots, " "), cv.Width()), styles.T().OnPhoto, false, op)
}

func (m Model) drawChrome(cv *canvas.Canvas) {
	c := m.textColor(styles.T().FgBase)
	cv.Text(1, 0, icons.Back(), c, true, 1)
	cv.Text(float64(cv.Width()-2), 0, icons.Menu(), c, true, 1)
}
