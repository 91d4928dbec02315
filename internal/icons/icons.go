// Package icons holds the glyph sets used by the header chrome and the
// content lists.
package icons

// Style represents the icon style to use.
type Style string

const (
	StyleNerd    Style = "nerd"
	StyleUnicode Style = "unicode"
	StyleNone    Style = "none"
)

// Icons holds the icon characters for the current style. Back, Menu and
// the page marks must be one cell wide.
type Icons struct {
	Back     string
	Menu     string
	PageOn   string
	PageOff  string
	Verified string

	Media  string
	File   string
	Link   string
	Member string
}

var (
	nerdIcons = Icons{
		Back:     "\uf053",  // nf-fa-chevron_left
		Menu:     "\uf142",  // nf-fa-ellipsis_v
		PageOn:   "\uf111",  // nf-fa-circle
		PageOff:  "\uf10c",  // nf-fa-circle_o
		Verified: "\uf058",  // nf-fa-check_circle
		Media:    "\uf03e ", // nf-fa-image
		File:     "\uf15b ", // nf-fa-file
		Link:     "\uf0c1 ", // nf-fa-link
		Member:   "\uf007 ", // nf-fa-user
	}

	unicodeIcons = Icons{
		Back:     "‹",
		Menu:     "⋮",
		PageOn:   "●",
		PageOff:  "○",
		Verified: "✓",
		Media:    "▣ ",
		File:     "▤ ",
		Link:     "↗ ",
		Member:   "• ",
	}

	noneIcons = Icons{
		Back:     "<",
		Menu:     ":",
		PageOn:   "*",
		PageOff:  "o",
		Verified: "+",
	}

	// current holds the active icon set
	current = unicodeIcons
)

// Init selects the icon set. Call this once at startup with the config
// value; unknown values keep the unicode set.
func Init(style string) {
	switch Style(style) {
	case StyleNerd:
		current = nerdIcons
	case StyleNone:
		current = noneIcons
	default:
		current = unicodeIcons
	}
}

// Back returns the back chevron.
func Back() string { return current.Back }

// Menu returns the overflow menu glyph.
func Menu() string { return current.Menu }

// Page returns the page indicator mark for the active or an inactive photo.
func Page(active bool) string {
	if active {
		return current.PageOn
	}
	return current.PageOff
}

// Verified returns the verified badge.
func Verified() string { return current.Verified }

// Kind selects a list item icon.
type Kind int

const (
	KindMedia Kind = iota
	KindFile
	KindLink
	KindMember
)

// FormatItem prefixes a list item with the icon for its kind.
func FormatItem(k Kind, name string) string {
	var icon string
	switch k {
	case KindMedia:
		icon = current.Media
	case KindFile:
		icon = current.File
	case KindLink:
		icon = current.Link
	case KindMember:
		icon = current.Member
	}
	return icon + name
}
