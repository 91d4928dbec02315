package render

import (
	"strings"
	"testing"

	"github.com/mattn/go-runewidth"
)

func TestSanitize(t *testing.T) {
	tests := []struct {
		name  string
		input string
		want  string
	}{
		{"clean", "Ada Lovelace", "Ada Lovelace"},
		{"control chars", "Ada\x07 \x1bLovelace", "Ada Lovelace"},
		{"newline in bio", "line one\nline two", "line oneline two"},
		{"nbsp", "Ada\u00a0L", "Ada L"},
		{"invalid utf8", "Ada\xffL", "AdaL"},
		{"tab kept", "a\tb", "a\tb"},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Sanitize(tt.input); got != tt.want {
				t.Errorf("Sanitize(%q) = %q, want %q", tt.input, got, tt.want)
			}
		})
	}
}

func TestTruncate(t *testing.T) {
	tests := []struct {
		name     string
		input    string
		maxWidth int
		want     string
	}{
		{"fits", "Ada", 10, "Ada"},
		{"exact fit", "Ada", 3, "Ada"},
		{"cut", "Ada Lovelace", 6, "Ada L…"},
		{"wide runes", "日本語テキスト", 5, "日本…"},
		{"zero width", "Ada", 0, ""},
		{"empty", "", 4, ""},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Truncate(tt.input, tt.maxWidth); got != tt.want {
				t.Errorf("Truncate(%q, %d) = %q, want %q", tt.input, tt.maxWidth, got, tt.want)
			}
		})
	}
}

func TestCenter(t *testing.T) {
	tests := []struct {
		input string
		width int
		want  string
	}{
		{"ab", 6, "  ab  "},
		{"ab", 5, " ab  "},
		{"abcdef", 4, "abc…"},
		{"", 3, "   "},
	}

	for _, tt := range tests {
		got := Center(tt.input, tt.width)
		if got != tt.want {
			t.Errorf("Center(%q, %d) = %q, want %q", tt.input, tt.width, got, tt.want)
		}
		if w := runewidth.StringWidth(got); w != tt.width {
			t.Errorf("Center(%q, %d) width = %d", tt.input, tt.width, w)
		}
	}
}

func TestTruncateAndPad(t *testing.T) {
	if got := TruncateAndPad("Ada", 5); got != "Ada  " {
		t.Errorf("TruncateAndPad = %q, want %q", got, "Ada  ")
	}
	if got := TruncateAndPad("Ada Lovelace", 5); runewidth.StringWidth(got) != 5 {
		t.Errorf("TruncateAndPad width = %d, want 5", runewidth.StringWidth(got))
	}
}

func TestSpaced(t *testing.T) {
	tests := []struct {
		input string
		want  string
	}{
		{"Ada", "A d a"},
		{"Ada L", "A d a   L"},
		{"日本", "日 本"},
		{"", ""},
	}

	for _, tt := range tests {
		if got := Spaced(tt.input); got != tt.want {
			t.Errorf("Spaced(%q) = %q, want %q", tt.input, got, tt.want)
		}
	}
}

func TestRow(t *testing.T) {
	got := Row("Mobile", "+1 555", 20)
	if runewidth.StringWidth(got) != 20 {
		t.Errorf("Row width = %d, want 20", runewidth.StringWidth(got))
	}
	if !strings.HasPrefix(got, "Mobile") || !strings.HasSuffix(got, "+1 555") {
		t.Errorf("Row = %q", got)
	}
	if got := Row("left", "right", 4); got != "left right" {
		t.Errorf("Row tight = %q, want minimum gap of one", got)
	}
}

func TestSeparator(t *testing.T) {
	if got := Separator(4); got != "────" {
		t.Errorf("Separator(4) = %q", got)
	}
	if got := Separator(-1); got != "" {
		t.Errorf("Separator(-1) = %q, want empty", got)
	}
}
