// Package seed imports profiles described in TOML files into the state store.
//
//	[[profile]]
//	kind = "user"
//	name = "Ada Lovelace"
//	username = "ada"
//	photos = ["photos/ada.jpg"]
//
//	[[profile.files]]
//	name = "notes.pdf"
//	size = "2.5 MB"
package seed

import (
	"errors"
	"fmt"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/dustin/go-humanize"
	"github.com/knadh/koanf/parsers/toml"
	"github.com/knadh/koanf/providers/file"
	"github.com/knadh/koanf/v2"

	"github.com/llehouerou/portrait/internal/profile"
	"github.com/llehouerou/portrait/internal/state"
)

// Document is the top level of a seed file.
type Document struct {
	Profiles []Entry `koanf:"profile"`
}

// Entry is one [[profile]] table.
type Entry struct {
	Kind     string    `koanf:"kind"` // empty means "user"
	Name     string    `koanf:"name"`
	Username string    `koanf:"username"`
	Bio      string    `koanf:"bio"`
	Phone    string    `koanf:"phone"`
	Verified bool      `koanf:"verified"`
	Online   bool      `koanf:"online"`
	LastSeen time.Time `koanf:"last_seen"`

	Members     int `koanf:"members"`
	Subscribers int `koanf:"subscribers"`

	BusinessHours string `koanf:"business_hours"`
	Location      string `koanf:"location"`

	LatestPost string    `koanf:"latest_post"`
	PostedAt   time.Time `koanf:"posted_at"`

	Photos []string    `koanf:"photos"` // relative paths resolve against the seed file
	Links  []string    `koanf:"links"`
	Files  []FileEntry `koanf:"files"`
}

// FileEntry is a shared document. Size accepts "2.5 MB" or plain bytes.
type FileEntry struct {
	Name string `koanf:"name"`
	Size string `koanf:"size"`
}

// Load parses a seed file into subjects.
func Load(path string) ([]profile.Subject, error) {
	k := koanf.New(".")
	if err := k.Load(file.Provider(path), toml.Parser()); err != nil {
		return nil, err
	}

	var doc Document
	if err := k.Unmarshal("", &doc); err != nil {
		return nil, err
	}

	baseDir := filepath.Dir(path)
	subjects := make([]profile.Subject, 0, len(doc.Profiles))
	for i, e := range doc.Profiles {
		s, err := e.Subject(baseDir)
		if err != nil {
			return nil, fmt.Errorf("profile %d: %w", i+1, err)
		}
		subjects = append(subjects, s)
	}
	return subjects, nil
}

// Subject converts the entry, resolving photo paths against baseDir.
func (e Entry) Subject(baseDir string) (profile.Subject, error) {
	if strings.TrimSpace(e.Name) == "" {
		return profile.Subject{}, errors.New("missing name")
	}

	kind := profile.User
	if e.Kind != "" {
		k, err := profile.ParseKind(e.Kind)
		if err != nil {
			return profile.Subject{}, err
		}
		kind = k
	}

	s := profile.Subject{
		Kind:          kind,
		Name:          strings.TrimSpace(e.Name),
		Username:      strings.TrimPrefix(strings.TrimSpace(e.Username), "@"),
		Bio:           e.Bio,
		Phone:         e.Phone,
		Verified:      e.Verified,
		Online:        e.Online,
		LastSeen:      e.LastSeen,
		Members:       e.Members,
		Subscribers:   e.Subscribers,
		BusinessHours: e.BusinessHours,
		Location:      e.Location,
		LatestPost:    e.LatestPost,
		PostedAt:      e.PostedAt,
		Links:         e.Links,
	}

	for _, p := range e.Photos {
		s.Photos = append(s.Photos, resolvePath(baseDir, p))
	}
	for _, f := range e.Files {
		size, err := humanize.ParseBytes(f.Size)
		if err != nil && f.Size != "" {
			return profile.Subject{}, fmt.Errorf("file %q: %w", f.Name, err)
		}
		s.Files = append(s.Files, profile.File{Name: f.Name, Size: size})
	}

	return s, nil
}

func resolvePath(baseDir, p string) string {
	if p != "" && p[0] == '~' {
		if home, err := os.UserHomeDir(); err == nil {
			return filepath.Join(home, p[1:])
		}
	}
	if filepath.IsAbs(p) {
		return p
	}
	return filepath.Join(baseDir, p)
}

// Import saves every subject. Profiles with a username already in the
// store are updated in place. Returns the number saved.
func Import(st state.Interface, subjects []profile.Subject) (int, error) {
	for i, s := range subjects {
		if _, err := st.SaveProfile(s); err != nil {
			return i, fmt.Errorf("save %q: %w", s.Name, err)
		}
	}
	return len(subjects), nil
}
