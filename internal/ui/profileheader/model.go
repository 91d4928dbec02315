// Package profileheader is the terminal rendition of the expandable profile
// header: it feeds mouse input and animation frames to a header.Controller
// and draws the resulting frame.
package profileheader

import (
	"math"
	"time"

	tea "github.com/charmbracelet/bubbletea"
	"github.com/mattn/go-runewidth"
	"go.uber.org/zap"

	"github.com/llehouerou/portrait/internal/header"
	"github.com/llehouerou/portrait/internal/profile"
	"github.com/llehouerou/portrait/internal/ui"
	"github.com/llehouerou/portrait/internal/ui/gallery"
	"github.com/llehouerou/portrait/internal/ui/layout"
	"github.com/llehouerou/portrait/internal/ui/render"
)

// textMargin keeps centred text clear of the back and menu glyphs.
const textMargin = 8

// FrameMsg advances the header animation by one frame.
type FrameMsg struct{}

// Model is the header sub-model. The controller and gallery are shared by
// copies of the model; all calls happen on the bubbletea goroutine.
type Model struct {
	ui.Base

	ctrl    *header.Controller
	gallery *gallery.Gallery
	actions Actions
	subject profile.Subject

	now     func() time.Time
	log     *zap.Logger
	ticking bool

	pressX int
}

// Option configures a Model.
type Option func(*Model)

// WithClock sets the time source used to stamp input and frames.
func WithClock(now func() time.Time) Option {
	return func(m *Model) { m.now = now }
}

// WithActions sets the capability invoked by chrome taps.
func WithActions(a Actions) Option {
	return func(m *Model) { m.actions = a }
}

// WithGallery sets the photo source.
func WithGallery(g *gallery.Gallery) Option {
	return func(m *Model) { m.gallery = g }
}

// WithLogger sets the logger shared with the controller.
func WithLogger(l *zap.Logger) Option {
	return func(m *Model) {
		if l != nil {
			m.log = l
		}
	}
}

// New returns a collapsed header with the given thresholds.
func New(t header.Tunables, opts ...Option) Model {
	m := Model{
		now:     time.Now,
		actions: DefaultActions{},
		log:     zap.NewNop(),
	}
	for _, opt := range opts {
		opt(&m)
	}
	if m.gallery == nil {
		m.gallery = gallery.New(nil, nil)
	}
	m.ctrl = header.New(t, header.DefaultGeometry(), header.WithLogger(m.log))
	return m
}

// Controller exposes the header state machine, for wiring the host.
func (m Model) Controller() *header.Controller { return m.ctrl }

// Gallery returns the photo source.
func (m Model) Gallery() *gallery.Gallery { return m.gallery }

// Subject returns the profile on display.
func (m Model) Subject() profile.Subject { return m.subject }

// Extent returns the header height in whole rows.
func (m Model) Extent() int { return m.ctrl.Frame().Rows() }

// IsExpanded reports whether the photo view is open.
func (m Model) IsExpanded() bool { return m.ctrl.IsExpanded() }

// SetSize lays the header out for a width and the rows available to the
// whole profile screen. Returns the command loading photos at the new size.
func (m *Model) SetSize(width, areaHeight int) tea.Cmd {
	m.Base.SetSize(width, areaHeight)
	m.relayout()
	return m.preparePhotos()
}

// SetSubject binds the profile and reloads its photos.
func (m *Model) SetSubject(s profile.Subject) tea.Cmd {
	m.subject = s
	m.gallery.SetHandles(s.Photos)
	if m.Width() > 0 {
		m.relayout()
	}
	return m.preparePhotos()
}

func (m *Model) relayout() {
	m.ctrl.Layout(layout.HeaderGeometry(layout.HeaderOpts{
		Width:         m.Width(),
		AreaHeight:    m.Height(),
		TitleWidth:    runewidth.StringWidth(m.title()),
		SubtitleWidth: runewidth.StringWidth(m.subtitle()),
		Actions:       len(m.subject.ActionLabels()),
	}))
}

// title and subtitle are the texts as drawn in the default layout.
func (m Model) title() string {
	return render.Truncate(m.subject.Title(), max(m.Width()-textMargin, 1))
}

func (m Model) subtitle() string {
	return render.Truncate(m.subject.Status(m.now()), max(m.Width()-textMargin, 1))
}

// preparePhotos requests the current photo at hero and avatar sizes.
func (m Model) preparePhotos() tea.Cmd {
	if m.Width() <= 0 {
		return nil
	}
	g := m.ctrl.Geometry()
	heroRows := int(g.ExpandedHeight)
	ac, ar := avatarSize(g.AvatarHeight)
	return tea.Batch(
		m.gallery.Prepare(m.Width(), heroRows),
		m.gallery.Prepare(ac, ar),
	)
}

// avatarSize returns the avatar box in cells for a row count; cells are
// twice as tall as wide, so the box is twice as wide as tall.
func avatarSize(rows float64) (cols, r int) {
	r = max(int(math.Round(rows)), 1)
	return r * 2, r
}
