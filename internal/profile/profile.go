// Package profile holds the identity shown on the profile screen and the
// per-kind text builders: status line, info sections, tabs and action labels.
package profile

import (
	"fmt"
	"strings"
	"time"
	"unicode"

	"github.com/dustin/go-humanize"

	"github.com/llehouerou/portrait/internal/icons"
)

// Kind is the type of identity a profile describes.
type Kind int

const (
	User Kind = iota
	Bot
	Group
	Channel
	Business
)

var kindNames = map[Kind]string{
	User:     "user",
	Bot:      "bot",
	Group:    "group",
	Channel:  "channel",
	Business: "business",
}

func (k Kind) String() string {
	if s, ok := kindNames[k]; ok {
		return s
	}
	return "unknown"
}

// ParseKind converts a stored name back to a Kind.
func ParseKind(s string) (Kind, error) {
	for k, name := range kindNames {
		if strings.EqualFold(s, name) {
			return k, nil
		}
	}
	return User, fmt.Errorf("unknown profile kind %q", s)
}

// File is a shared document listed under the Files tab.
type File struct {
	Name string
	Size uint64
}

// Subject is one profile.
type Subject struct {
	ID       int64
	Kind     Kind
	Name     string
	Username string
	Bio      string
	Phone    string
	Verified bool

	Online   bool
	LastSeen time.Time

	Members     int
	Subscribers int

	BusinessHours string
	Location      string

	// LatestPost previews the newest channel post.
	LatestPost string
	PostedAt   time.Time

	// Photos are image handles, newest first.
	Photos []string
	Files  []File
	Links  []string
}

// Title is the header title.
func (s Subject) Title() string {
	name := strings.TrimSpace(s.Name)
	if name == "" {
		name = "Unknown"
	}
	if s.Verified {
		return name + " " + icons.Verified()
	}
	return name
}

// Initials returns up to two uppercase letters for the avatar placeholder.
func (s Subject) Initials() string {
	var out []rune
	for _, word := range strings.Fields(s.Name) {
		for _, r := range word {
			if unicode.IsLetter(r) || unicode.IsDigit(r) {
				out = append(out, unicode.ToUpper(r))
				break
			}
		}
		if len(out) == 2 {
			break
		}
	}
	if len(out) == 0 {
		return "?"
	}
	return string(out)
}

// Status returns the subtitle line under the title.
func (s Subject) Status(now time.Time) string {
	switch s.Kind {
	case Bot:
		return "bot"
	case Group:
		return countLabel(s.Members, "member")
	case Channel:
		return countLabel(s.Subscribers, "subscriber")
	case Business:
		if s.BusinessHours != "" {
			return "business · " + s.BusinessHours
		}
		return "business account"
	}

	switch {
	case s.Online:
		return "online"
	case s.LastSeen.IsZero():
		return "last seen recently"
	default:
		return "last seen " + humanize.RelTime(s.LastSeen, now, "ago", "from now")
	}
}

func countLabel(n int, noun string) string {
	if n == 1 {
		return "1 " + noun
	}
	return humanize.Comma(int64(n)) + " " + noun + "s"
}

// ActionLabels returns the buttons shown in the action row.
func (s Subject) ActionLabels() []string {
	switch s.Kind {
	case Bot:
		return []string{"Message", "Mute", "Share"}
	case Group:
		return []string{"Message", "Mute", "Search", "Leave"}
	case Channel:
		return []string{"Mute", "Search", "Share"}
	case Business:
		return []string{"Message", "Call", "Location"}
	default:
		return []string{"Message", "Call", "Video", "Mute"}
	}
}
