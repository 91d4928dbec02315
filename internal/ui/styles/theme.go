package styles

import "github.com/charmbracelet/lipgloss"

// Theme defines the color palette and pre-built styles for the application.
type Theme struct {
	// Brand/accent colors
	Primary   lipgloss.Color // Links, active tab, action icons
	Secondary lipgloss.Color // Online status

	// Text hierarchy (most to least prominent)
	FgBase   lipgloss.Color // Primary text (bright)
	FgMuted  lipgloss.Color // Secondary text (dimmed)
	FgSubtle lipgloss.Color // Tertiary text (very dim)

	// Backgrounds
	BgBase   lipgloss.Color // Content pane
	BgCursor lipgloss.Color // Action buttons, selected tab

	// Header gradient, top to bottom
	HeaderTop    lipgloss.Color
	HeaderBottom lipgloss.Color

	// Text drawn over photos
	OnPhoto lipgloss.Color

	Border  lipgloss.Color
	Error   lipgloss.Color
	Warning lipgloss.Color

	styles *Styles
}

// Styles contains pre-built lipgloss styles for common UI patterns.
type Styles struct {
	Base      lipgloss.Style // Default text
	Muted     lipgloss.Style // Dimmed text
	Subtle    lipgloss.Style // Very dim text
	Title     lipgloss.Style // Bold, bright
	Label     lipgloss.Style // Row labels
	Link      lipgloss.Style
	TabActive lipgloss.Style
	Tab       lipgloss.Style
	StatusBar lipgloss.Style
	Error     lipgloss.Style
	Warning   lipgloss.Style
}

var defaultTheme = Theme{
	Primary:   lipgloss.Color("#5eb5f7"),
	Secondary: lipgloss.Color("#42b883"),

	// Text hierarchy (grayscale)
	FgBase:   lipgloss.Color("#e6e6e6"),
	FgMuted:  lipgloss.Color("#8a8a8a"),
	FgSubtle: lipgloss.Color("#585858"),

	BgBase:   lipgloss.Color("#17212b"),
	BgCursor: lipgloss.Color("#2b3947"),

	HeaderTop:    lipgloss.Color("#3d6a97"),
	HeaderBottom: lipgloss.Color("#243447"),

	OnPhoto: lipgloss.Color("#ffffff"),

	Border:  lipgloss.Color("#2b3947"),
	Error:   lipgloss.Color("#ff5555"),
	Warning: lipgloss.Color("#f1a208"),
}

// T returns the default theme.
func T() *Theme {
	return &defaultTheme
}

// S returns the pre-built styles for this theme.
func (t *Theme) S() *Styles {
	if t.styles == nil {
		t.styles = t.buildStyles()
	}
	return t.styles
}

func (t *Theme) buildStyles() *Styles {
	base := lipgloss.NewStyle().Foreground(t.FgBase)

	return &Styles{
		Base:   base,
		Muted:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Subtle: lipgloss.NewStyle().Foreground(t.FgSubtle),
		Title:  base.Bold(true),
		Label:  lipgloss.NewStyle().Foreground(t.FgMuted),
		Link:   lipgloss.NewStyle().Foreground(t.Primary).Underline(true),
		TabActive: lipgloss.NewStyle().
			Foreground(t.Primary).
			Bold(true),
		Tab: lipgloss.NewStyle().Foreground(t.FgMuted),
		StatusBar: lipgloss.NewStyle().
			Background(t.BgCursor).
			Foreground(t.FgBase),
		Error:   lipgloss.NewStyle().Foreground(t.Error),
		Warning: lipgloss.NewStyle().Foreground(t.Warning),
	}
}
