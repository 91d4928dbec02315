//nolint:goconst // test cases intentionally repeat strings for readability
package icons

import (
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestInit(t *testing.T) {
	tests := []struct {
		name     string
		style    string
		expected Icons
	}{
		{"nerd style", "nerd", nerdIcons},
		{"unicode style", "unicode", unicodeIcons},
		{"none style", "none", noneIcons},
		{"empty string defaults to unicode", "", unicodeIcons},
		{"unknown style defaults to unicode", "invalid", unicodeIcons},
		{"case sensitive - NERD defaults to unicode", "NERD", unicodeIcons},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			Init(tt.style)
			if current != tt.expected {
				t.Errorf("Init(%q) selected %+v, want %+v", tt.style, current, tt.expected)
			}
		})
	}

	Init("unicode")
}

func TestChromeGlyphsAreOneCell(t *testing.T) {
	for name, set := range map[string]Icons{"nerd": nerdIcons, "unicode": unicodeIcons, "none": noneIcons} {
		for _, g := range []string{set.Back, set.Menu, set.PageOn, set.PageOff} {
			if w := runewidth.StringWidth(g); w != 1 {
				t.Errorf("%s glyph %q width = %d, want 1", name, g, w)
			}
		}
	}
}

func TestPage(t *testing.T) {
	tests := []struct {
		style    string
		active   bool
		expected string
	}{
		{"unicode", true, "●"},
		{"unicode", false, "○"},
		{"none", true, "*"},
		{"none", false, "o"},
		{"nerd", true, "\uf111"},
	}

	for _, tt := range tests {
		Init(tt.style)
		if got := Page(tt.active); got != tt.expected {
			t.Errorf("[%s] Page(%v) = %q, want %q", tt.style, tt.active, got, tt.expected)
		}
	}
	Init("unicode")
}

func TestFormatItem(t *testing.T) {
	tests := []struct {
		style    string
		kind     Kind
		name     string
		expected string
	}{
		{"none", KindMedia, "a.jpg", "a.jpg"},
		{"none", KindLink, "t.me/ada", "t.me/ada"},
		{"unicode", KindMedia, "a.jpg", "▣ a.jpg"},
		{"unicode", KindFile, "notes.pdf", "▤ notes.pdf"},
		{"unicode", KindLink, "t.me/ada", "↗ t.me/ada"},
		{"unicode", KindMember, "42 members", "• 42 members"},
		{"nerd", KindFile, "notes.pdf", "\uf15b notes.pdf"},
		{"unicode", Kind(99), "odd", "odd"},
	}

	for _, tt := range tests {
		t.Run(tt.style+"/"+tt.name, func(t *testing.T) {
			Init(tt.style)
			if got := FormatItem(tt.kind, tt.name); got != tt.expected {
				t.Errorf("FormatItem(%d, %q) = %q, want %q", tt.kind, tt.name, got, tt.expected)
			}
		})
	}
	Init("unicode")
}

func TestBackAndMenu(t *testing.T) {
	Init("none")
	if Back() != "<" || Menu() != ":" || Verified() != "+" {
		t.Errorf("none set = %q %q %q", Back(), Menu(), Verified())
	}
	Init("unicode")
	if Back() != "‹" || Menu() != "⋮" || Verified() != "✓" {
		t.Errorf("unicode set = %q %q %q", Back(), Menu(), Verified())
	}
}
