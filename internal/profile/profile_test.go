//nolint:goconst // test cases intentionally repeat strings for readability
package profile

import (
	"testing"
	"time"
)

func TestSubject_Status(t *testing.T) {
	now := time.Date(2026, 3, 1, 12, 0, 0, 0, time.UTC)

	tests := []struct {
		name    string
		subject Subject
		want    string
	}{
		{"online user", Subject{Kind: User, Online: true}, "online"},
		{"unknown last seen", Subject{Kind: User}, "last seen recently"},
		{"last seen", Subject{Kind: User, LastSeen: now.Add(-3 * time.Minute)}, "last seen 3 minutes ago"},
		{"bot", Subject{Kind: Bot, Online: true}, "bot"},
		{"group", Subject{Kind: Group, Members: 1204}, "1,204 members"},
		{"single member", Subject{Kind: Group, Members: 1}, "1 member"},
		{"channel", Subject{Kind: Channel, Subscribers: 52000}, "52,000 subscribers"},
		{"business with hours", Subject{Kind: Business, BusinessHours: "9-18"}, "business · 9-18"},
		{"business", Subject{Kind: Business}, "business account"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := tt.subject.Status(now); got != tt.want {
				t.Errorf("Status() = %q, want %q", got, tt.want)
			}
		})
	}
}

func TestSubject_Initials(t *testing.T) {
	tests := []struct {
		name string
		want string
	}{
		{"Ada Lovelace", "AL"},
		{"grace", "G"},
		{"  ", "?"},
		{"Jean-Luc Picard Smith", "JP"},
		{"@bot 42", "B4"},
	}

	for _, tt := range tests {
		if got := (Subject{Name: tt.name}).Initials(); got != tt.want {
			t.Errorf("Initials(%q) = %q, want %q", tt.name, got, tt.want)
		}
	}
}

func TestSubject_Title(t *testing.T) {
	if got := (Subject{Name: "Ada", Verified: true}).Title(); got != "Ada ✓" {
		t.Errorf("Title() = %q, want %q", got, "Ada ✓")
	}
	if got := (Subject{}).Title(); got != "Unknown" {
		t.Errorf("Title() = %q, want %q", got, "Unknown")
	}
}

func TestSubject_Sections(t *testing.T) {
	s := Subject{Kind: User, Phone: "+1 555 0100", Username: "ada"}
	sections := s.Sections()

	if len(sections) != 2 {
		t.Fatalf("len(Sections()) = %d, want 2", len(sections))
	}
	info := sections[0]
	if len(info.Rows) != 2 {
		t.Fatalf("info rows = %d, want 2", len(info.Rows))
	}
	if info.Rows[1].Value != "@ada" {
		t.Errorf("username row = %q, want %q", info.Rows[1].Value, "@ada")
	}

	empty := Subject{Kind: Channel}.Sections()
	if len(empty) != 0 {
		t.Errorf("channel without fields has %d sections, want 0", len(empty))
	}
}

func TestSubject_LatestPostSection(t *testing.T) {
	posted := time.Date(2026, 3, 1, 10, 30, 0, 0, time.UTC)
	tests := []struct {
		name      string
		subject   Subject
		wantTitle string
		wantLabel string
	}{
		{"channel with date", Subject{Kind: Channel, LatestPost: "Engine update", PostedAt: posted}, "Latest post", "Mar 1, 10:30"},
		{"user without date", Subject{Kind: User, LatestPost: "Engine update"}, "Latest post", "Channel post"},
		{"group ignores post", Subject{Kind: Group, LatestPost: "Engine update"}, "", ""},
		{"channel without post", Subject{Kind: Channel, PostedAt: posted}, "", ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var found *Section
			for _, sec := range tt.subject.Sections() {
				if sec.Title == "Latest post" {
					found = &sec
				}
			}
			if tt.wantTitle == "" {
				if found != nil {
					t.Errorf("Sections() has a latest post section, want none")
				}
				return
			}
			if found == nil {
				t.Fatalf("Sections() has no latest post section")
			}
			if len(found.Rows) != 1 || found.Rows[0].Label != tt.wantLabel || found.Rows[0].Value != "Engine update" {
				t.Errorf("latest post rows = %+v, want label %q", found.Rows, tt.wantLabel)
			}
		})
	}
}

func TestSubject_Tabs(t *testing.T) {
	if got := len(Subject{Kind: Group}.Tabs()); got != 4 {
		t.Errorf("group tabs = %d, want 4", got)
	}
	if got := len(Subject{Kind: User}.Tabs()); got != 3 {
		t.Errorf("user tabs = %d, want 3", got)
	}
}

func TestSubject_TabItems(t *testing.T) {
	s := Subject{
		Photos: []string{"/photos/a.jpg", "/photos/b.png"},
		Files:  []File{{Name: "report.pdf", Size: 2_500_000}},
	}

	media := s.TabItems(TabMedia)
	if len(media) != 2 || media[0] != "a.jpg" {
		t.Errorf("TabItems(Media) = %v", media)
	}
	files := s.TabItems(TabFiles)
	if len(files) != 1 || files[0] != "report.pdf  2.5 MB" {
		t.Errorf("TabItems(Files) = %v", files)
	}
}

func TestParseKind(t *testing.T) {
	for k, name := range kindNames {
		got, err := ParseKind(name)
		if err != nil || got != k {
			t.Errorf("ParseKind(%q) = %v, %v", name, got, err)
		}
	}
	if _, err := ParseKind("robot"); err == nil {
		t.Error("ParseKind(robot) expected error")
	}
}
