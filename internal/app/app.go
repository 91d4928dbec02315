// Package app is the root bubbletea model: the profile header over its
// scroll content, plus a status bar and key help.
package app

import (
	"fmt"
	"math"
	"strconv"
	"time"

	"github.com/charmbracelet/bubbles/help"
	tea "github.com/charmbracelet/bubbletea"
	"go.uber.org/zap"

	"github.com/llehouerou/portrait/internal/config"
	"github.com/llehouerou/portrait/internal/errmsg"
	"github.com/llehouerou/portrait/internal/keymap"
	"github.com/llehouerou/portrait/internal/logging"
	"github.com/llehouerou/portrait/internal/profile"
	"github.com/llehouerou/portrait/internal/state"
	"github.com/llehouerou/portrait/internal/ui/gallery"
	"github.com/llehouerou/portrait/internal/ui/profilecontent"
	"github.com/llehouerou/portrait/internal/ui/profileheader"
)

// Options carries what New needs beyond the config file.
type Options struct {
	// Subject is a username or numeric id to open, overriding both the
	// config default and the saved view state.
	Subject string

	Logging *logging.Manager // nil means no logging
	Loader  gallery.Loader   // nil means gallery.FileLoader
	Now     func() time.Time // nil means time.Now
}

// Model is the root application model.
type Model struct {
	Header   profileheader.Model
	Content  *profilecontent.Pane
	StateMgr state.Interface
	Keys     *keymap.Resolver
	Help     help.Model
	HelpKeys keymap.Help

	ShowFullHelp bool

	Subjects []profile.Subject
	Current  int

	Notice   string
	ErrorMsg string

	Width  int
	Height int

	noticeID     int
	saved        state.ViewState
	expandOnSize bool

	log *zap.Logger
	now func() time.Time
}

// New builds the profile screen from configuration and the state store.
// The start subject is, in order: opts.Subject, the saved view state, the
// config default, the first stored profile.
func New(cfg *config.Config, st state.Interface, opts Options) (Model, error) {
	now := opts.Now
	if now == nil {
		now = time.Now
	}
	logs := opts.Logging
	if logs == nil {
		logs = logging.Nop()
	}
	log := logs.For("app")

	var cache *gallery.Cache
	if !cfg.Gallery.NoCache {
		c, err := gallery.NewCache(cfg.Gallery.CacheDir)
		if err != nil {
			log.Warn(errmsg.Format(errmsg.OpPhotoCache, err))
		} else {
			cache = c
		}
	}
	loader := opts.Loader
	if loader == nil {
		loader = gallery.FileLoader{}
	}

	tun := cfg.HeaderTunables()
	hdr := profileheader.New(tun,
		profileheader.WithClock(now),
		profileheader.WithGallery(gallery.New(loader, cache)),
		profileheader.WithLogger(logs.For("header")),
	)
	pane := profilecontent.New(
		profilecontent.WithMinScroll(int(math.Ceil(tun.MinimizeDistance))),
	)

	ctrl := hdr.Controller()
	pane.SetScrollHandler(func(offset int) {
		ctrl.OnScroll(float64(offset), now())
	})
	ctrl.SetSpacerSink(pane)
	ctrl.SetIntercept(pane)

	subjects, err := st.ListProfiles()
	if err != nil {
		return Model{}, fmt.Errorf("list profiles: %w", err)
	}
	if len(subjects) == 0 {
		subjects = []profile.Subject{emptySubject()}
	}

	m := Model{
		Header:   hdr,
		Content:  pane,
		StateMgr: st,
		Keys:     keymap.Default(),
		Help:     help.New(),
		HelpKeys: keymap.DefaultHelp(),
		Subjects: subjects,
		log:      log,
		now:      now,
	}

	saved, err := st.GetViewState()
	if err != nil {
		log.Warn(errmsg.Format(errmsg.OpViewStateLoad, err))
		saved = nil
	}

	start := 0
	restore := false
	switch {
	case opts.Subject != "":
		i, err := m.lookup(opts.Subject)
		if err != nil {
			return Model{}, err
		}
		start = i
	case saved != nil && m.indexOf(saved.ProfileID) >= 0:
		start = m.indexOf(saved.ProfileID)
		restore = true
	case cfg.DefaultSubject != "":
		if i, err := m.lookup(cfg.DefaultSubject); err == nil {
			start = i
		} else {
			log.Warn(errmsg.FormatWith(errmsg.OpProfileLoad, cfg.DefaultSubject, err))
		}
	}

	m.showSubject(start)
	if restore {
		m.Header.Gallery().SetIndex(saved.PhotoIndex)
		m.Content.SetTab(saved.Tab)
		m.expandOnSize = saved.Expanded
		m.saved = *saved
	} else {
		m.saved = m.viewState()
	}

	return m, nil
}

// Init implements tea.Model.
func (m Model) Init() tea.Cmd {
	return tea.SetWindowTitle(m.windowTitle())
}

// CurrentSubject returns the profile on display.
func (m Model) CurrentSubject() profile.Subject {
	return m.Subjects[m.Current]
}

func (m Model) windowTitle() string {
	return "portrait · " + m.CurrentSubject().Title()
}

// lookup resolves a username (with or without @) or numeric id.
func (m Model) lookup(ref string) (int, error) {
	if id, err := strconv.ParseInt(ref, 10, 64); err == nil {
		if i := m.indexOf(id); i >= 0 {
			return i, nil
		}
	}
	s, err := m.StateMgr.FindProfile(ref)
	if err != nil {
		return 0, fmt.Errorf("find profile %q: %w", ref, err)
	}
	if i := m.indexOf(s.ID); i >= 0 {
		return i, nil
	}
	return 0, fmt.Errorf("find profile %q: %w", ref, state.ErrNotFound)
}

func (m Model) indexOf(id int64) int {
	for i, s := range m.Subjects {
		if s.ID == id {
			return i
		}
	}
	return -1
}

// emptySubject stands in when the store has no profiles yet.
func emptySubject() profile.Subject {
	return profile.Subject{
		Kind: profile.User,
		Name: "No profiles",
		Bio:  "Import some with portrait-seed",
	}
}
