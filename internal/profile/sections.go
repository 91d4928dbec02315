package profile

import (
	"path/filepath"

	"github.com/dustin/go-humanize"
)

// Row is one label/value line inside a section.
type Row struct {
	Label string
	Value string
}

// Section is a titled block in the content pane.
type Section struct {
	Title string
	Rows  []Row
}

// Sections returns the info blocks shown under the header. Empty fields
// produce no rows; sections without rows are dropped.
func (s Subject) Sections() []Section {
	info := Section{Title: "Info"}
	add := func(label, value string) {
		if value != "" {
			info.Rows = append(info.Rows, Row{Label: label, Value: value})
		}
	}

	switch s.Kind {
	case User:
		add("Mobile", s.Phone)
		add("Username", handle(s.Username))
		add("Bio", s.Bio)
	case Bot:
		add("Username", handle(s.Username))
		add("About", s.Bio)
	case Group, Channel:
		add("Description", s.Bio)
		add("Link", link(s.Username))
	case Business:
		add("Username", handle(s.Username))
		add("Bio", s.Bio)
		add("Hours", s.BusinessHours)
		add("Location", s.Location)
	}

	var out []Section
	if len(info.Rows) > 0 {
		out = append(out, info)
	}
	if post := s.latestPost(); len(post.Rows) > 0 {
		out = append(out, post)
	}
	if s.Kind != Channel && s.Kind != Group {
		out = append(out, Section{
			Title: "Notifications",
			Rows:  []Row{{Label: "Sound", Value: "Default"}},
		})
	}
	return out
}

// latestPost previews the newest post of a channel, or of the channel a
// user pins to their profile.
func (s Subject) latestPost() Section {
	sec := Section{Title: "Latest post"}
	if s.LatestPost == "" || (s.Kind != Channel && s.Kind != User) {
		return sec
	}
	label := "Channel post"
	if !s.PostedAt.IsZero() {
		label = s.PostedAt.Format("Jan 2, 15:04")
	}
	sec.Rows = []Row{{Label: label, Value: s.LatestPost}}
	return sec
}

// Tab is one shared-content list.
type Tab int

const (
	TabMedia Tab = iota
	TabFiles
	TabLinks
	TabMembers
)

func (t Tab) String() string {
	switch t {
	case TabMedia:
		return "Media"
	case TabFiles:
		return "Files"
	case TabLinks:
		return "Links"
	case TabMembers:
		return "Members"
	default:
		return "?"
	}
}

// Tabs lists the shared-content tabs available for this subject.
func (s Subject) Tabs() []Tab {
	tabs := []Tab{TabMedia, TabFiles, TabLinks}
	if s.Kind == Group {
		tabs = append(tabs, TabMembers)
	}
	return tabs
}

// TabItems returns the rows listed under tab.
func (s Subject) TabItems(tab Tab) []string {
	var items []string
	switch tab {
	case TabMedia:
		for _, p := range s.Photos {
			items = append(items, filepath.Base(p))
		}
	case TabFiles:
		for _, f := range s.Files {
			items = append(items, f.Name+"  "+humanize.Bytes(f.Size))
		}
	case TabLinks:
		items = append(items, s.Links...)
	case TabMembers:
		if s.Members > 0 {
			items = append(items, countLabel(s.Members, "member"))
		}
	}
	return items
}

func handle(username string) string {
	if username == "" {
		return ""
	}
	return "@" + username
}

func link(username string) string {
	if username == "" {
		return ""
	}
	return "t.me/" + username
}
